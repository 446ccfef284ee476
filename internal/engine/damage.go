package engine

import (
	"math"
	"math/rand"

	"github.com/David2024patton/primordial-tyrants/internal/game"
)

// Zone is the body region a strike lands on. Each zone carries an
// independent hit probability and damage multiplier.
type Zone string

const (
	ZoneNone  Zone = ""
	ZoneHead  Zone = "head"
	ZoneBody  Zone = "body"
	ZoneTail  Zone = "tail"
	ZoneFlank Zone = "flank"
)

const (
	critChance     = 0.12
	critMult       = 1.5
	bonebreakDodge = 0.02
)

// strike is one resolved damage roll.
type strike struct {
	Damage int
	Zone   Zone
	Crit   bool
	Dodged bool
}

// rollZone draws the hit zone and its damage multiplier:
// HEAD 20% x1.20, BODY 55% x1.00, TAIL 15% x0.25, FLANK 10% x0.80.
func rollZone(rng *rand.Rand) (Zone, float64) {
	r := rng.Float64()
	switch {
	case r < 0.20:
		return ZoneHead, 1.20
	case r < 0.75:
		return ZoneBody, 1.00
	case r < 0.90:
		return ZoneTail, 0.25
	default:
		return ZoneFlank, 0.80
	}
}

// resolveStrike computes and applies one attack. Utility moves (power <= 0)
// resolve to zero without consuming any randomness. The dodge roll comes
// first: a dodged strike deals no damage, hits no zone and cannot crit. A
// landed strike scales the ability power by the attacker/defender weight
// ratio, rolls zone and crit, applies armor, stance and attack-bonus
// mitigation, a 0.80-1.20 variance draw, and floors the result at 1 before
// subtracting it from the defender's HP (clamped at zero).
func resolveStrike(attacker, defender *Combatant, ability game.Ability, rng *rand.Rand) strike {
	if ability.Power <= 0 {
		return strike{}
	}

	dodgeChance := float64(defender.Species.Speed) / 12000.0
	if dodgeChance > 0.15 {
		dodgeChance = 0.15
	}
	if defender.HasEffect(game.EffectBonebreak) {
		dodgeChance = bonebreakDodge
	}
	if rng.Float64() < dodgeChance {
		return strike{Dodged: true}
	}

	defenderCW := defender.Species.CombatWeight
	if defenderCW < 1 {
		defenderCW = 1
	}
	raw := float64(ability.Power) * float64(attacker.Species.CombatWeight) / float64(defenderCW)

	zone, zoneMult := rollZone(rng)
	raw *= zoneMult

	crit := rng.Float64() < critChance
	if crit {
		raw *= critMult
	}

	armorTotal := defender.Species.Armor * (1 + defender.ArmorBonus)
	reduction := armorTotal * 0.10
	if reduction > 0.50 {
		reduction = 0.50
	}
	raw *= 1 - reduction

	if defender.DefenseUp > 0 {
		stance := defender.DefenseUp
		if stance > 0.90 {
			stance = 0.90
		}
		raw *= 1 - stance
	}

	raw *= 1 + attacker.AtkBonus
	raw *= 0.80 + rng.Float64()*0.40

	damage := int(math.Floor(raw))
	if damage < 1 {
		damage = 1
	}
	defender.HP -= damage
	if defender.HP < 0 {
		defender.HP = 0
	}
	return strike{Damage: damage, Zone: zone, Crit: crit}
}
