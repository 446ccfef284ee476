package engine

import (
	"fmt"
	"math/rand"

	"github.com/David2024patton/primordial-tyrants/internal/game"
)

// Combatant holds the mutable combat state of one pack member. It is built
// once at battle start and mutated every round by the orchestrator; it is
// never reconstructed mid-battle.
type Combatant struct {
	Species *game.Species
	Index   int
	Name    string

	HP    int
	MaxHP int

	// Additive percentage bonuses installed by family passives.
	AtkBonus   float64
	ArmorBonus float64

	// DefenseUp is the strongest active stance reduction, recomputed every
	// round from the live status effects. Stances must be recast to persist.
	DefenseUp float64

	Fled bool

	Abilities []game.Ability
	// Cooldowns is indexed in lockstep with Abilities so renaming a move
	// cannot orphan its cooldown.
	Cooldowns []int

	Effects []game.StatusEffect

	// Bookkeeping owned by the orchestrator.
	koCounted bool
	acted     bool
}

func newCombatant(s *game.Species, index, packSize int) *Combatant {
	name := s.Name
	if packSize > 1 {
		name = fmt.Sprintf("%s #%d", s.Name, index+1)
	}
	abilities := game.AbilityPool(s)
	return &Combatant{
		Species:   s,
		Index:     index,
		Name:      name,
		HP:        s.HitPoints,
		MaxHP:     s.HitPoints,
		Abilities: abilities,
		Cooldowns: make([]int, len(abilities)),
	}
}

// Alive reports whether the member can still act or be targeted.
func (c *Combatant) Alive() bool { return c.HP > 0 && !c.Fled }

// HasEffect reports whether an effect of the given kind is active.
func (c *Combatant) HasEffect(kind game.EffectKind) bool {
	for _, e := range c.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// struggle is the last-resort move when no ability is usable.
func (c *Combatant) struggle() game.Ability {
	power := c.Species.Attack / 3
	if power < 1 {
		power = 1
	}
	return game.Ability{Name: "Struggle", Power: power}
}

// PickAbility chooses the member's next move by cumulative-weight roulette.
// Candidates are abilities off cooldown, falling back to the always-ready
// pool and finally to Struggle. Special (cooldown-tracked) moves get weight
// 30 against 10 for basics, and defensive or healing moves gain +40 when the
// member is below 30% HP, so a hurt member leans toward defense without ever
// guaranteeing the strongest move. The returned index is
// -1 for Struggle, otherwise the slot whose cooldown the caller must set.
func (c *Combatant) PickAbility(rng *rand.Rand) (game.Ability, int) {
	candidates := make([]int, 0, len(c.Abilities))
	for i := range c.Abilities {
		if c.Cooldowns[i] <= 0 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := range c.Abilities {
			if c.Abilities[i].Cooldown == 0 {
				candidates = append(candidates, i)
			}
		}
	}
	if len(candidates) == 0 {
		return c.struggle(), -1
	}

	lowHP := c.HP < c.MaxHP*30/100
	weights := make([]float64, len(candidates))
	total := 0.0
	for n, i := range candidates {
		w := 10.0
		if c.Abilities[i].Cooldown > 0 {
			w = 30.0
		}
		if lowHP && c.Abilities[i].IsDefensive() {
			w += 40.0
		}
		weights[n] = w
		total += w
	}

	r := rng.Float64() * total
	cumulative := 0.0
	for n, w := range weights {
		cumulative += w
		if r <= cumulative {
			return c.Abilities[candidates[n]], candidates[n]
		}
	}
	last := candidates[len(candidates)-1]
	return c.Abilities[last], last
}

// TickCooldowns decrements every non-zero ability cooldown by one round.
func (c *Combatant) TickCooldowns() {
	for i := range c.Cooldowns {
		if c.Cooldowns[i] > 0 {
			c.Cooldowns[i]--
		}
	}
}

// TickStatusEffects applies bleed damage, decrements every effect's
// remaining duration, drops expired effects and recomputes the stance
// reduction. Returns the log lines produced.
func (c *Combatant) TickStatusEffects() []string {
	var logs []string
	kept := c.Effects[:0]
	for _, eff := range c.Effects {
		switch eff.Kind {
		case game.EffectBleed:
			dmg := int(float64(c.MaxHP) * eff.Value)
			if dmg < 1 {
				dmg = 1
			}
			c.HP -= dmg
			if c.HP < 0 {
				c.HP = 0
			}
			logs = append(logs, fmt.Sprintf("%s bleeds for %d damage (%d rounds left)", c.Name, dmg, eff.Remaining))
		case game.EffectBonebreak:
			logs = append(logs, fmt.Sprintf("%s is hampered by broken bones", c.Name))
		}
		eff.Remaining--
		if eff.Remaining > 0 {
			kept = append(kept, eff)
		}
	}
	c.Effects = kept

	c.DefenseUp = 0
	for _, eff := range c.Effects {
		if eff.Kind == game.EffectDefenseStance && eff.Value > c.DefenseUp {
			c.DefenseUp = eff.Value
		}
	}
	return logs
}

// CheckFlee rolls the member's flee check. Members above 25% HP never flee;
// below that, the chance grows linearly with the missing fraction, capped at
// 50%. A successful roll is terminal for the rest of the battle.
func (c *Combatant) CheckFlee(rng *rand.Rand) bool {
	if c.Fled || c.MaxHP <= 0 {
		return false
	}
	hpPct := float64(c.HP) / float64(c.MaxHP)
	if hpPct > 0.25 {
		return false
	}
	chance := 0.10 + (0.25-hpPct)*1.6
	if chance > 0.50 {
		chance = 0.50
	}
	if rng.Float64() < chance {
		c.Fled = true
		return true
	}
	return false
}
