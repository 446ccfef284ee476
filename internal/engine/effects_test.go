package engine

import (
	"testing"

	"github.com/David2024patton/primordial-tyrants/internal/game"
)

func TestScaledDurationWeightRatio(t *testing.T) {
	spec := game.EffectSpec{Kind: game.EffectBleed, Duration: 3, Value: 0.03}
	cases := []struct {
		attCW, defCW int
		want         int
	}{
		{3000, 3000, 3},  // even match keeps the spec duration
		{6000, 3000, 5},  // 2x ratio capped at duration + 2
		{9000, 1000, 5},  // extreme ratios still cap
		{1000, 4000, 1},  // light attackers floor at 1 round
		{4500, 3000, 4},  // 1.5x ratio: floor(3 * 1.5) = 4
		{5000, 0, 5},     // zero defender weight floors the divisor at 1
	}
	for _, c := range cases {
		att := testCombatant(c.attCW, 500, 50, 1.0, 500)
		def := testCombatant(c.defCW, 500, 50, 1.0, 500)
		if got := scaledDuration(spec, att, def); got != c.want {
			t.Fatalf("scaledDuration(cw %d vs %d) = %d, want %d", c.attCW, c.defCW, got, c.want)
		}
	}
}

func TestAfflictionsLandOnDefender(t *testing.T) {
	att := testCombatant(3000, 500, 50, 1.0, 500)
	def := testCombatant(3000, 500, 50, 1.0, 500)
	ability := game.Ability{
		Name: "Crushing Bite", Power: 75,
		Effects: []game.EffectSpec{{Kind: game.EffectBonebreak, Duration: 2, Value: 0.25}},
	}
	logs := applyAbilityEffects(att, def, ability)
	if len(logs) != 1 {
		t.Fatalf("expected one affliction log line, got %d", len(logs))
	}
	if len(att.Effects) != 0 {
		t.Fatalf("bonebreak must not land on the attacker")
	}
	if len(def.Effects) != 1 || def.Effects[0].Kind != game.EffectBonebreak || def.Effects[0].Remaining != 2 {
		t.Fatalf("expected bonebreak on defender for 2 rounds, got %+v", def.Effects)
	}
}

func TestDefenseStanceProtectsCaster(t *testing.T) {
	att := testCombatant(3000, 500, 50, 1.0, 500)
	def := testCombatant(3000, 500, 50, 1.0, 500)
	ability := game.Ability{
		Name: "Raise Your Claws",
		Effects: []game.EffectSpec{{Kind: game.EffectDefenseStance, Duration: 2, Value: 0.9}},
	}
	applyAbilityEffects(att, def, ability)
	if len(def.Effects) != 0 {
		t.Fatalf("a defensive move must not touch the target")
	}
	if len(att.Effects) != 1 || att.Effects[0].Remaining != 2 {
		t.Fatalf("expected stance on the caster with its literal duration, got %+v", att.Effects)
	}
	if att.DefenseUp != 0.9 {
		t.Fatalf("stance must take effect immediately, defenseUp = %.2f", att.DefenseUp)
	}
}

func TestHealIsInstantAndClamped(t *testing.T) {
	att := testCombatant(3000, 500, 50, 1.0, 500)
	def := testCombatant(3000, 500, 50, 1.0, 500)
	att.HP = 490
	ability := game.Ability{
		Name: "Alarm Call",
		Effects: []game.EffectSpec{{Kind: game.EffectHeal, Value: 0.05}},
	}
	applyAbilityEffects(att, def, ability)
	if att.HP != 500 {
		t.Fatalf("heal must clamp at max HP, got %d", att.HP)
	}
	if len(att.Effects) != 0 {
		t.Fatalf("heals are instantaneous and leave no status instance")
	}

	att.HP = 100
	applyAbilityEffects(att, def, ability)
	if att.HP != 125 {
		t.Fatalf("expected +25 HP (5%% of 500), got %d", att.HP)
	}
}
