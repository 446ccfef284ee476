package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/David2024patton/primordial-tyrants/internal/game"
)

// DefaultMaxTurns bounds the round loop when Options leaves it unset.
const DefaultMaxTurns = 15

const (
	orderFlipChance   = 0.15
	extraAttackChance = 0.60
)

// Options configures one simulation. Zero values select the defaults:
// packs of one, DefaultMaxTurns rounds, a time-seeded RNG.
type Options struct {
	PackA    int
	PackB    int
	MaxTurns int
	// Rand is the randomness source for every roll in the battle. Pass a
	// seeded rand.New(rand.NewSource(seed)) for reproducible results.
	Rand *rand.Rand
}

// battleContext accumulates the state of one running simulation.
type battleContext struct {
	a, b *Side
	rng  *rand.Rand

	turns     [][]string
	current   []string
	snapshots []HPSnapshot

	anyFled    bool
	bleedKills int
	firstCrit  string
	totalKOs   int
}

func (bc *battleContext) add(line string)       { bc.current = append(bc.current, line) }
func (bc *battleContext) addAll(lines []string) { bc.current = append(bc.current, lines...) }

// closeTurn seals the current round's log and records the HP snapshot, so
// every turn has a matching snapshot even when the battle stops mid-round.
func (bc *battleContext) closeTurn() {
	aHP, _ := bc.a.hpTotals()
	bHP, _ := bc.b.hpTotals()
	bc.turns = append(bc.turns, bc.current)
	bc.snapshots = append(bc.snapshots, HPSnapshot{AHP: aHP, BHP: bHP})
	bc.current = nil
}

func (bc *battleContext) opponent(s *Side) *Side {
	if s == bc.a {
		return bc.b
	}
	return bc.a
}

// countKO records a member's death exactly once, no matter how many round
// checks observe it.
func (bc *battleContext) countKO(c *Combatant, byBleed bool) {
	if c.koCounted || c.HP > 0 {
		return
	}
	c.koCounted = true
	bc.totalKOs++
	if byBleed {
		bc.bleedKills++
	}
	bc.add(fmt.Sprintf("%s has been defeated!", c.Name))
}

// Simulate runs a full battle between two species profiles and returns the
// aggregated result. The engine performs no I/O and touches no global state
// beyond the read-only species catalog, so any number of simulations may run
// concurrently, each with its own RNG.
func Simulate(speciesA, speciesB *game.Species, opt Options) *Result {
	if opt.PackA < 1 {
		opt.PackA = 1
	}
	if opt.PackB < 1 {
		opt.PackB = 1
	}
	if opt.MaxTurns < 1 {
		opt.MaxTurns = DefaultMaxTurns
	}
	rng := opt.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	bc := &battleContext{
		a:   newSide(SideA, speciesA, opt.PackA),
		b:   newSide(SideB, speciesB, opt.PackB),
		rng: rng,
	}
	bc.a.applyPassives()
	bc.b.applyPassives()

	for round := 1; round <= opt.MaxTurns; round++ {
		bc.add(fmt.Sprintf("Round %d", round))
		if done := bc.playRound(); done {
			bc.closeTurn()
			break
		}
		bc.closeTurn()
	}

	return bc.result()
}

// playRound advances the battle by one round. It reports true when a
// termination condition was reached.
func (bc *battleContext) playRound() bool {
	// Status effect ticks on every living member; bleed can kill here.
	for _, side := range []*Side{bc.a, bc.b} {
		for _, m := range side.Members {
			if !m.Alive() {
				continue
			}
			bc.addAll(m.TickStatusEffects())
			bc.countKO(m, true)
		}
	}
	if !bc.a.Alive() || !bc.b.Alive() {
		return true
	}

	// Flee checks, independent of and before attack resolution.
	for _, side := range []*Side{bc.a, bc.b} {
		for _, m := range side.Members {
			if m.Alive() && m.CheckFlee(bc.rng) {
				bc.anyFled = true
				bc.add(fmt.Sprintf("%s flees the battle!", m.Name))
			}
		}
	}
	if !bc.a.Alive() || !bc.b.Alive() {
		return true
	}

	for _, side := range []*Side{bc.a, bc.b} {
		for _, m := range side.Members {
			m.acted = false
		}
	}

	// The lighter side's designated attacker acts first, with a 15% chance
	// to flip the order regardless of weight.
	first, second := bc.a, bc.b
	if bc.a.Species.CombatWeight > bc.b.Species.CombatWeight {
		first, second = bc.b, bc.a
	}
	if bc.rng.Float64() < orderFlipChance {
		first, second = second, first
	}

	if bc.sideAttack(first) {
		return true
	}
	if bc.sideAttack(second) {
		return true
	}

	// Extra pack attacks: members that have not acted yet each get an
	// independent chance to pile on. This is what separates pack battles
	// from a 1v1 exchange.
	for _, side := range []*Side{first, second} {
		for _, m := range side.Members {
			if !m.Alive() || m.acted {
				continue
			}
			if bc.rng.Float64() >= extraAttackChance {
				continue
			}
			if bc.attack(side, m) {
				return true
			}
		}
	}

	for _, side := range []*Side{bc.a, bc.b} {
		for _, m := range side.Members {
			m.TickCooldowns()
		}
	}
	return false
}

// sideAttack runs one side's designated exchange for the round.
func (bc *battleContext) sideAttack(side *Side) bool {
	attacker := side.PickAttacker(bc.rng)
	if attacker == nil {
		return false
	}
	return bc.attack(side, attacker)
}

// attack resolves a single attacker/target exchange and reports true when
// the defending side was wiped out.
func (bc *battleContext) attack(side *Side, attacker *Combatant) bool {
	opponent := bc.opponent(side)
	target := opponent.PickTarget(bc.rng)
	if target == nil {
		return !opponent.Alive()
	}
	attacker.acted = true

	ability, slot := attacker.PickAbility(bc.rng)
	if slot >= 0 {
		attacker.Cooldowns[slot] = ability.Cooldown
	}
	side.AbilitiesUsed[ability.Name]++

	hit := resolveStrike(attacker, target, ability, bc.rng)
	switch {
	case hit.Dodged:
		bc.add(fmt.Sprintf("%s uses %s but %s dodges!", attacker.Name, ability.Name, target.Name))
	case hit.Damage > 0:
		note := string(hit.Zone)
		if hit.Crit {
			note += ", critical"
		}
		bc.add(fmt.Sprintf("%s uses %s for %d damage (%s), %s HP %d/%d",
			attacker.Name, ability.Name, hit.Damage, note, target.Name, target.HP, target.MaxHP))
	default:
		bc.add(fmt.Sprintf("%s uses %s!", attacker.Name, ability.Name))
	}
	if hit.Crit && bc.firstCrit == "" {
		bc.firstCrit = side.Label
	}

	bc.addAll(applyAbilityEffects(attacker, target, ability))
	bc.countKO(target, false)
	return !opponent.Alive()
}

func (bc *battleContext) result() *Result {
	res := &Result{
		Turns:         bc.turns,
		HPSnapshots:   bc.snapshots,
		FighterA:      summarize(bc.a),
		FighterB:      summarize(bc.b),
		AnyFled:       bc.anyFled,
		BleedKills:    bc.bleedKills,
		FirstCritSide: bc.firstCrit,
		TotalKOs:      bc.totalKOs,
	}

	aAlive, bAlive := bc.a.Alive(), bc.b.Alive()
	switch {
	case aAlive && !bAlive:
		res.Winner = SideA
	case bAlive && !aAlive:
		res.Winner = SideB
	default:
		// Turn limit reached or simultaneous wipe: higher aggregate HP
		// percentage wins, exact equality is a tie.
		aHP, aMax := bc.a.hpTotals()
		bHP, bMax := bc.b.hpTotals()
		if aMax < 1 {
			aMax = 1
		}
		if bMax < 1 {
			bMax = 1
		}
		aPct := float64(aHP) / float64(aMax)
		bPct := float64(bHP) / float64(bMax)
		switch {
		case aPct > bPct:
			res.Winner = SideA
		case bPct > aPct:
			res.Winner = SideB
		}
	}

	switch res.Winner {
	case SideA:
		res.WinnerName, res.LoserName = bc.a.Name, bc.b.Name
	case SideB:
		res.WinnerName, res.LoserName = bc.b.Name, bc.a.Name
	}
	return res
}
