package game

// AbilityPool returns the resolved ability list for a profile. A
// caller-supplied custom list takes precedence; otherwise the family pool
// applies, and generic families fall back to a diet-based pair. Every
// returned Power is already scaled to the profile's Attack.
func AbilityPool(s *Species) []Ability {
	if len(s.Abilities) > 0 {
		out := make([]Ability, 0, len(s.Abilities))
		for _, ca := range s.Abilities {
			out = append(out, Ability{
				Name:        ca.Name,
				Power:       s.Attack * ca.PowerPercent / 100,
				Cooldown:    ca.Cooldown,
				Effects:     ca.Effects,
				Description: ca.Description,
			})
		}
		return out
	}
	return familyPool(s.Family(), s.Diet, s.Attack)
}

func familyPool(family Family, diet Diet, atk int) []Ability {
	scale := func(mult float64) int { return int(float64(atk) * mult) }

	switch family {
	case FamilyTyrannosaurid:
		return []Ability{
			{Name: "Bite", Power: scale(1.0)},
			{Name: "Charged Bite", Power: scale(2.2), Cooldown: 3},
			{Name: "Crushing Bite", Power: scale(1.5), Cooldown: 2,
				Effects: []EffectSpec{{Kind: EffectBonebreak, Duration: 2, Value: 0.25}}},
		}
	case FamilyRaptor:
		return []Ability{
			{Name: "Claw Slash", Power: scale(0.8)},
			{Name: "Pounce", Power: scale(1.8), Cooldown: 2,
				Effects: []EffectSpec{{Kind: EffectBleed, Duration: 3, Value: 0.03}}},
			{Name: "Pack Frenzy", Power: scale(1.2), Cooldown: 1,
				Effects: []EffectSpec{{Kind: EffectBleed, Duration: 2, Value: 0.02}}},
		}
	case FamilyTherizinosaur:
		return []Ability{
			{Name: "Scythe Swipe", Power: scale(1.2)},
			{Name: "Raise Your Claws", Power: 0, Cooldown: 3,
				Effects: []EffectSpec{{Kind: EffectDefenseStance, Duration: 2, Value: 0.9}}},
			{Name: "Rending Slash", Power: scale(2.0), Cooldown: 2,
				Effects: []EffectSpec{{Kind: EffectBleed, Duration: 3, Value: 0.04}}},
		}
	case FamilyCeratopsian:
		return []Ability{
			{Name: "Horn Thrust", Power: scale(1.0)},
			{Name: "Charge", Power: scale(2.0), Cooldown: 3,
				Effects: []EffectSpec{{Kind: EffectBonebreak, Duration: 1, Value: 0.15}}},
			{Name: "Headbutt", Power: scale(1.3), Cooldown: 1},
		}
	case FamilyAnkylosaur:
		return []Ability{
			{Name: "Tail Club", Power: scale(1.1)},
			{Name: "Tail Slam", Power: scale(1.8), Cooldown: 2,
				Effects: []EffectSpec{{Kind: EffectBonebreak, Duration: 2, Value: 0.2}}},
			{Name: "Spike Guard", Power: scale(0.5), Cooldown: 2,
				Effects: []EffectSpec{{Kind: EffectDefenseStance, Duration: 1, Value: 0.5}}},
		}
	case FamilyHadrosaur:
		return []Ability{
			{Name: "Kick", Power: scale(0.9)},
			{Name: "Tail Sweep", Power: scale(1.4), Cooldown: 2},
			{Name: "Alarm Call", Power: 0, Cooldown: 3,
				Effects: []EffectSpec{{Kind: EffectHeal, Value: 0.05}}},
		}
	case FamilySauropod:
		return []Ability{
			{Name: "Stomp", Power: scale(1.0)},
			{Name: "Tail Whip", Power: scale(1.6), Cooldown: 2},
			{Name: "Tremor", Power: scale(0.6), Cooldown: 3,
				Effects: []EffectSpec{{Kind: EffectBonebreak, Duration: 1, Value: 0.1}}},
		}
	}

	if diet == DietCarnivore {
		return []Ability{
			{Name: "Bite", Power: scale(1.0)},
			{Name: "Lunge", Power: scale(1.6), Cooldown: 2,
				Effects: []EffectSpec{{Kind: EffectBleed, Duration: 2, Value: 0.02}}},
		}
	}
	return []Ability{
		{Name: "Kick", Power: scale(0.9)},
		{Name: "Tail Sweep", Power: scale(1.5), Cooldown: 2},
	}
}

// PassiveOf returns the family passive, or nil for families without one.
func PassiveOf(family Family) *Passive {
	switch family {
	case FamilyTyrannosaurid:
		return &Passive{
			Name:        "Tyrant Roar",
			Description: "+10% ATK per Tyrannosaurid ally in group",
			Kind:        PassiveAttackPerAlly,
			Value:       0.10,
		}
	case FamilyRaptor:
		return &Passive{
			Name:        "Pack Bark",
			Description: "+8% ATK per Raptor ally in group",
			Kind:        PassiveAttackPerAlly,
			Value:       0.08,
		}
	case FamilyCeratopsian:
		return &Passive{
			Name:        "Herd Shield",
			Description: "+5% Armor per Ceratopsian ally",
			Kind:        PassiveArmorPerAlly,
			Value:       0.05,
		}
	case FamilyAnkylosaur:
		return &Passive{
			Name:        "Shell Wall",
			Description: "+8% Armor per Ankylosaur ally",
			Kind:        PassiveArmorPerAlly,
			Value:       0.08,
		}
	case FamilyTherizinosaur:
		return &Passive{
			Name:        "Lone Survivor",
			Description: "+10% Armor when fighting alone",
			Kind:        PassiveSoloArmor,
			Value:       0.10,
		}
	}
	return nil
}
