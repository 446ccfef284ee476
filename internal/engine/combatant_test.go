package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/David2024patton/primordial-tyrants/internal/game"
)

func raptorCombatant() *Combatant {
	s := &game.Species{
		ID: "utahraptor", Name: "Utahraptor", Diet: game.DietCarnivore,
		CombatWeight: 700, HitPoints: 400, Attack: 60, Armor: 1.0, Speed: 900,
	}
	return newCombatant(s, 0, 1)
}

func TestPickAbilityRespectsCooldowns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := raptorCombatant()
	// Put every cooldown-tracked ability on cooldown.
	for i := range c.Abilities {
		if c.Abilities[i].Cooldown > 0 {
			c.Cooldowns[i] = c.Abilities[i].Cooldown
		}
	}
	for i := 0; i < 500; i++ {
		ability, slot := c.PickAbility(rng)
		if slot < 0 {
			t.Fatalf("raptor still has a zero-cooldown move, Struggle is wrong")
		}
		if c.Cooldowns[slot] > 0 {
			t.Fatalf("picked %s while on cooldown", ability.Name)
		}
	}
}

func TestPickAbilityStruggleFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	s := &game.Species{
		ID: "customsaurus", Name: "Customsaurus", Diet: game.DietCarnivore,
		CombatWeight: 3000, HitPoints: 500, Attack: 90, Armor: 1.0, Speed: 500,
		Abilities: []game.CustomAbility{
			{Name: "Big Swing", PowerPercent: 200, Cooldown: 3},
		},
	}
	c := newCombatant(s, 0, 1)
	c.Cooldowns[0] = 3
	ability, slot := c.PickAbility(rng)
	if slot != -1 || ability.Name != "Struggle" {
		t.Fatalf("expected Struggle fallback, got %s (slot %d)", ability.Name, slot)
	}
	if ability.Power != 30 {
		t.Fatalf("Struggle power must be a third of attack, got %d", ability.Power)
	}
}

func TestPickAbilityPrefersSpecials(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	c := raptorCombatant()
	specials := 0
	const n = 10000
	for i := 0; i < n; i++ {
		ability, _ := c.PickAbility(rng)
		if ability.Cooldown > 0 {
			specials++
		}
	}
	// Weights 30+30 vs 10: specials should take ~6/7 of the draws.
	rate := float64(specials) / n
	if rate < 0.80 {
		t.Fatalf("cooldown moves picked %.3f of the time, expected a strong preference", rate)
	}
}

func TestPickAbilityDefensiveBiasWhenHurt(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	s := &game.Species{
		ID: "therizinosaurus", Name: "Therizinosaurus", Diet: game.DietHerbivore,
		CombatWeight: 2500, HitPoints: 600, Attack: 70, Armor: 1.0, Speed: 600,
	}
	const n = 10000

	countStance := func(c *Combatant) int {
		picks := 0
		for i := 0; i < n; i++ {
			if ability, _ := c.PickAbility(rng); ability.Name == "Raise Your Claws" {
				picks++
			}
		}
		return picks
	}

	healthy := newCombatant(s, 0, 1)
	hurt := newCombatant(s, 0, 1)
	hurt.HP = hurt.MaxHP / 10

	healthyPicks := countStance(healthy)
	hurtPicks := countStance(hurt)
	// Healthy weights 10/30/30 put the stance at ~43%; hurt adds +40 to it
	// (10/70/30) for ~64%.
	if float64(hurtPicks) < float64(healthyPicks)*1.2 {
		t.Fatalf("low HP must bias toward the defensive move: healthy %d vs hurt %d", healthyPicks, hurtPicks)
	}
}

func TestTickCooldowns(t *testing.T) {
	c := raptorCombatant()
	c.Cooldowns[1] = 2
	c.TickCooldowns()
	if c.Cooldowns[1] != 1 {
		t.Fatalf("expected cooldown 1, got %d", c.Cooldowns[1])
	}
	c.TickCooldowns()
	c.TickCooldowns()
	if c.Cooldowns[1] != 0 {
		t.Fatalf("cooldowns must floor at 0, got %d", c.Cooldowns[1])
	}
}

func TestTickStatusEffectsBleed(t *testing.T) {
	c := raptorCombatant()
	c.Effects = []game.StatusEffect{{Kind: game.EffectBleed, Remaining: 2, Value: 0.03}}
	logs := c.TickStatusEffects()
	if len(logs) != 1 {
		t.Fatalf("expected one bleed log line, got %d", len(logs))
	}
	if c.HP != 400-12 {
		t.Fatalf("expected 12 bleed damage (3%% of 400), HP is %d", c.HP)
	}
	if len(c.Effects) != 1 || c.Effects[0].Remaining != 1 {
		t.Fatalf("bleed must persist with one round left, got %+v", c.Effects)
	}
	c.TickStatusEffects()
	if len(c.Effects) != 0 {
		t.Fatalf("bleed must expire after its last tick, got %+v", c.Effects)
	}
}

func TestTickStatusEffectsBleedMinimumAndClamp(t *testing.T) {
	c := raptorCombatant()
	c.MaxHP = 10
	c.HP = 1
	c.Effects = []game.StatusEffect{{Kind: game.EffectBleed, Remaining: 3, Value: 0.001}}
	c.TickStatusEffects()
	if c.HP != 0 {
		t.Fatalf("bleed deals at least 1 and HP clamps at 0, got %d", c.HP)
	}
	c.TickStatusEffects()
	if c.HP != 0 {
		t.Fatalf("HP must stay clamped at 0, got %d", c.HP)
	}
}

func TestDefenseStanceDecay(t *testing.T) {
	c := raptorCombatant()
	c.Effects = []game.StatusEffect{
		{Kind: game.EffectDefenseStance, Remaining: 2, Value: 0.5},
		{Kind: game.EffectDefenseStance, Remaining: 1, Value: 0.9},
	}
	c.TickStatusEffects()
	// The 0.9 stance expired; the 0.5 one is still live.
	if c.DefenseUp != 0.5 {
		t.Fatalf("defenseUp must track the strongest live stance, got %.2f", c.DefenseUp)
	}
	c.TickStatusEffects()
	if c.DefenseUp != 0 {
		t.Fatalf("defenseUp must reset when no stance is active, got %.2f", c.DefenseUp)
	}
}

func TestCheckFleeAboveThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	c := raptorCombatant()
	c.HP = c.MaxHP * 26 / 100
	for i := 0; i < 10000; i++ {
		if c.CheckFlee(rng) {
			t.Fatalf("members above 25%% HP never flee")
		}
	}
}

func TestCheckFleeProbabilityAtTenPercent(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	fled := 0
	const n = 10000
	for i := 0; i < n; i++ {
		c := raptorCombatant()
		c.HP = c.MaxHP / 10
		if c.CheckFlee(rng) {
			fled++
		}
	}
	// 0.10 + (0.25 - 0.10) * 1.6 = 0.34
	rate := float64(fled) / n
	if math.Abs(rate-0.34) > 0.02 {
		t.Fatalf("flee rate at 10%% HP is %.4f, want 0.34 +/- 0.02", rate)
	}
}

func TestFleeIsTerminal(t *testing.T) {
	c := raptorCombatant()
	c.Fled = true
	c.HP = c.MaxHP
	if c.Alive() {
		t.Fatalf("a fled member is out of the battle even at full HP")
	}
	rng := rand.New(rand.NewSource(7))
	if c.CheckFlee(rng) {
		t.Fatalf("a fled member cannot flee again")
	}
}
