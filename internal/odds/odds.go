// Package odds estimates prop-bet market frequencies by Monte Carlo: it
// runs many independent battles and reports how often each wagering outcome
// occurred. The engine is pure and takes its RNG as an argument, so the
// batch is sharded across goroutines without coordination.
package odds

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/David2024patton/primordial-tyrants/internal/engine"
	"github.com/David2024patton/primordial-tyrants/internal/game"
)

// Estimate holds observed outcome frequencies over a batch of battles.
// All rates are in [0, 1].
type Estimate struct {
	Battles int `json:"battles"`

	WinA float64 `json:"win_a"`
	WinB float64 `json:"win_b"`
	Tie  float64 `json:"tie"`

	AnyFled    float64 `json:"any_fled"`
	BleedKill  float64 `json:"bleed_kill"`
	FirstCritA float64 `json:"first_crit_a"`
	FirstCritB float64 `json:"first_crit_b"`
	// KOsTwoPlus is the "KOs: 2+" market; its complement is "KOs: 0-1".
	KOsTwoPlus float64 `json:"kos_two_plus"`
	AvgKOs     float64 `json:"avg_kos"`
}

// tally is the mergeable per-shard counter set.
type tally struct {
	battles                int
	winA, winB, tie        int
	anyFled, bleedKill     int
	firstCritA, firstCritB int
	kosTwoPlus, totalKOs   int
}

func (t *tally) observe(res *engine.Result) {
	t.battles++
	switch res.Winner {
	case engine.SideA:
		t.winA++
	case engine.SideB:
		t.winB++
	default:
		t.tie++
	}
	if res.AnyFled {
		t.anyFled++
	}
	if res.BleedKills > 0 {
		t.bleedKill++
	}
	switch res.FirstCritSide {
	case engine.SideA:
		t.firstCritA++
	case engine.SideB:
		t.firstCritB++
	}
	if res.TotalKOs >= 2 {
		t.kosTwoPlus++
	}
	t.totalKOs += res.TotalKOs
}

func (t *tally) merge(other *tally) {
	t.battles += other.battles
	t.winA += other.winA
	t.winB += other.winB
	t.tie += other.tie
	t.anyFled += other.anyFled
	t.bleedKill += other.bleedKill
	t.firstCritA += other.firstCritA
	t.firstCritB += other.firstCritB
	t.kosTwoPlus += other.kosTwoPlus
	t.totalKOs += other.totalKOs
}

// Run simulates battles-many independent matchups of a vs b and aggregates the
// outcome frequencies. The work is split across workers goroutines (zero
// means GOMAXPROCS). Each shard derives its RNG from seed and its shard
// index, so a fixed seed yields a deterministic estimate regardless of
// scheduling.
func Run(ctx context.Context, a, b *game.Species, opt engine.Options, battles int, seed int64, workers int) (Estimate, error) {
	if battles < 1 {
		return Estimate{}, fmt.Errorf("battles must be >= 1, got %d", battles)
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > battles {
		workers = battles
	}

	var (
		mu    sync.Mutex
		total tally
	)
	g, ctx := errgroup.WithContext(ctx)
	for shard := 0; shard < workers; shard++ {
		shard := shard
		count := battles / workers
		if shard < battles%workers {
			count++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(shard)*7919))
			var t tally
			for i := 0; i < count; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				o := opt
				o.Rand = rng
				t.observe(engine.Simulate(a, b, o))
			}
			mu.Lock()
			total.merge(&t)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Estimate{}, err
	}

	n := float64(total.battles)
	return Estimate{
		Battles:    total.battles,
		WinA:       float64(total.winA) / n,
		WinB:       float64(total.winB) / n,
		Tie:        float64(total.tie) / n,
		AnyFled:    float64(total.anyFled) / n,
		BleedKill:  float64(total.bleedKill) / n,
		FirstCritA: float64(total.firstCritA) / n,
		FirstCritB: float64(total.firstCritB) / n,
		KOsTwoPlus: float64(total.kosTwoPlus) / n,
		AvgKOs:     float64(total.totalKOs) / n,
	}, nil
}
