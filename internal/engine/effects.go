package engine

import (
	"fmt"
	"math"

	"github.com/David2024patton/primordial-tyrants/internal/game"
)

// scaledDuration stretches an affliction by the attacker/defender weight
// ratio: heavier attackers inflict proportionally longer bleeds and breaks,
// capped at spec duration +2 and floored at one round.
func scaledDuration(spec game.EffectSpec, attacker, defender *Combatant) int {
	defenderCW := defender.Species.CombatWeight
	if defenderCW < 1 {
		defenderCW = 1
	}
	ratio := float64(attacker.Species.CombatWeight) / float64(defenderCW)
	dur := int(math.Floor(float64(spec.Duration) * ratio))
	if dur > spec.Duration+2 {
		dur = spec.Duration + 2
	}
	if dur < 1 {
		dur = 1
	}
	return dur
}

// applyAbilityEffects installs every effect attached to the ability just
// used. Bleed and bonebreak land on the defender; a defense stance protects
// the caster; heals restore the caster immediately and leave no status
// instance behind. Returns the log lines produced.
func applyAbilityEffects(attacker, defender *Combatant, ability game.Ability) []string {
	var logs []string
	for _, spec := range ability.Effects {
		switch spec.Kind {
		case game.EffectBleed, game.EffectBonebreak:
			dur := scaledDuration(spec, attacker, defender)
			defender.Effects = append(defender.Effects, game.StatusEffect{
				Kind:      spec.Kind,
				Remaining: dur,
				Value:     spec.Value,
			})
			logs = append(logs, fmt.Sprintf("%s is afflicted with %s for %d rounds", defender.Name, spec.Kind, dur))
		case game.EffectDefenseStance:
			attacker.Effects = append(attacker.Effects, game.StatusEffect{
				Kind:      spec.Kind,
				Remaining: spec.Duration,
				Value:     spec.Value,
			})
			if spec.Value > attacker.DefenseUp {
				attacker.DefenseUp = spec.Value
			}
			logs = append(logs, fmt.Sprintf("%s enters a defensive stance (-%d%% incoming damage)", attacker.Name, int(spec.Value*100)))
		case game.EffectHeal:
			heal := int(float64(attacker.MaxHP) * spec.Value)
			attacker.HP += heal
			if attacker.HP > attacker.MaxHP {
				attacker.HP = attacker.MaxHP
			}
			logs = append(logs, fmt.Sprintf("%s heals for %d HP (%d/%d)", attacker.Name, heal, attacker.HP, attacker.MaxHP))
		}
	}
	return logs
}
