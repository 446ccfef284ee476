package engine

import (
	"fmt"
	"math/rand"

	"github.com/David2024patton/primordial-tyrants/internal/game"
)

// Side is a group of combatants sharing one species profile.
type Side struct {
	Label   string
	Species *game.Species
	Name    string
	Passive *game.Passive
	Members []*Combatant

	AbilitiesUsed map[string]int
}

func newSide(label string, s *game.Species, packSize int) *Side {
	if packSize < 1 {
		packSize = 1
	}
	name := s.Name
	if packSize > 1 {
		name = fmt.Sprintf("Pack of %d %s's", packSize, s.Name)
	}
	side := &Side{
		Label:         label,
		Species:       s,
		Name:          name,
		Passive:       game.PassiveOf(s.Family()),
		Members:       make([]*Combatant, 0, packSize),
		AbilitiesUsed: make(map[string]int),
	}
	for i := 0; i < packSize; i++ {
		side.Members = append(side.Members, newCombatant(s, i, packSize))
	}
	return side
}

// applyPassives installs the family passive on every member. Per-ally
// bonuses scale with the count of other pack members, fixed once at battle
// start; solo-only bonuses apply only to a pack of one.
func (s *Side) applyPassives() {
	if s.Passive == nil {
		return
	}
	allies := len(s.Members) - 1
	for _, m := range s.Members {
		switch s.Passive.Kind {
		case game.PassiveAttackPerAlly:
			m.AtkBonus += s.Passive.Value * float64(allies)
		case game.PassiveArmorPerAlly:
			m.ArmorBonus += s.Passive.Value * float64(allies)
		case game.PassiveSoloArmor:
			if len(s.Members) == 1 {
				m.ArmorBonus += s.Passive.Value
			}
		}
	}
}

// AliveCount counts members that are neither dead nor fled.
func (s *Side) AliveCount() int {
	n := 0
	for _, m := range s.Members {
		if m.Alive() {
			n++
		}
	}
	return n
}

// FledCount counts members that ran from the battle.
func (s *Side) FledCount() int {
	n := 0
	for _, m := range s.Members {
		if m.Fled {
			n++
		}
	}
	return n
}

// Alive reports whether the side can still fight.
func (s *Side) Alive() bool { return s.AliveCount() > 0 }

// alive returns the members still able to act or be targeted.
func (s *Side) alive() []*Combatant {
	out := make([]*Combatant, 0, len(s.Members))
	for _, m := range s.Members {
		if m.Alive() {
			out = append(out, m)
		}
	}
	return out
}

// PickAttacker returns a uniform-random living member, or nil if none.
func (s *Side) PickAttacker(rng *rand.Rand) *Combatant { return s.pickAlive(rng) }

// PickTarget returns a uniform-random living member, or nil if none.
func (s *Side) PickTarget(rng *rand.Rand) *Combatant { return s.pickAlive(rng) }

func (s *Side) pickAlive(rng *rand.Rand) *Combatant {
	alive := s.alive()
	if len(alive) == 0 {
		return nil
	}
	return alive[rng.Intn(len(alive))]
}

// hpTotals sums current and maximum HP across the side's original members,
// including dead and fled ones.
func (s *Side) hpTotals() (hp, maxHP int) {
	for _, m := range s.Members {
		hp += m.HP
		maxHP += m.MaxHP
	}
	return hp, maxHP
}
