package game

// Diet buckets used when a species has no family-specific ability pool.
type Diet string

const (
	DietCarnivore Diet = "carnivore"
	DietHerbivore Diet = "herbivore"
)

// Species is the immutable combat profile for one creature kind. The fields
// mirror the roster JSON produced by the wiki scraper; missing stats are
// replaced with roster defaults by the config loader, and the engine floors
// denominators at 1 so a partially filled profile never divides by zero.
type Species struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Diet Diet   `json:"type"`

	// CombatWeight is the primary multiplier of the damage formula: a 2x
	// heavier attacker deals roughly 2x the nominal ability power.
	CombatWeight int     `json:"cw"`
	HitPoints    int     `json:"hp"`
	Attack       int     `json:"atk"`
	Armor        float64 `json:"armor"`
	Speed        int     `json:"spd"`

	// Abilities optionally overrides the family ability pool. Power is
	// stored as a percentage of Attack (150 = 1.5x).
	Abilities []CustomAbility `json:"abilities,omitempty"`
}

// CustomAbility is a caller-supplied ability entry on a Species profile.
type CustomAbility struct {
	Name         string       `json:"name"`
	PowerPercent int          `json:"power_percent"`
	Cooldown     int          `json:"cooldown"`
	Effects      []EffectSpec `json:"effects,omitempty"`
	Description  string       `json:"description,omitempty"`
}

// Ability is a resolved move: Power is already scaled to the owner's Attack.
type Ability struct {
	Name        string       `json:"name"`
	Power       int          `json:"power"`
	Cooldown    int          `json:"cooldown"`
	Effects     []EffectSpec `json:"effects,omitempty"`
	Description string       `json:"description,omitempty"`
}

// IsDefensive reports whether the ability carries a stance or heal effect.
// The ability picker snaps toward these moves when the owner is low on HP.
func (a Ability) IsDefensive() bool {
	for _, e := range a.Effects {
		if e.Kind == EffectDefenseStance || e.Kind == EffectHeal {
			return true
		}
	}
	return false
}

// EffectKind discriminates the payload of an EffectSpec.
type EffectKind string

const (
	// EffectBleed deals Value * maxHP damage to the afflicted member each
	// round for Duration rounds.
	EffectBleed EffectKind = "bleed"
	// EffectBonebreak pins the afflicted member's dodge chance to a low
	// constant for Duration rounds. Value is unused.
	EffectBonebreak EffectKind = "bonebreak"
	// EffectDefenseStance protects the caster: incoming damage is reduced
	// by Value for Duration rounds unless recast.
	EffectDefenseStance EffectKind = "defense_stance"
	// EffectHeal restores Value * maxHP to the caster immediately; it never
	// becomes a status instance.
	EffectHeal EffectKind = "heal"
)

// EffectSpec describes one status payload attached to an ability. Duration
// is in rounds; the meaning of Value depends on Kind (see the constants).
type EffectSpec struct {
	Kind     EffectKind `json:"type"`
	Duration int        `json:"duration"`
	Value    float64    `json:"value"`
}

// StatusEffect is a live instance of an EffectSpec on a combatant. Remaining
// decrements exactly once per round and the instance is dropped at zero.
type StatusEffect struct {
	Kind      EffectKind
	Remaining int
	Value     float64
}

// PassiveKind selects how a family passive modifies pack members.
type PassiveKind string

const (
	// PassiveAttackPerAlly adds Value to the attack bonus per living
	// same-pack ally, applied once at battle start.
	PassiveAttackPerAlly PassiveKind = "atk_per_ally"
	// PassiveArmorPerAlly adds Value to the armor bonus per living
	// same-pack ally.
	PassiveArmorPerAlly PassiveKind = "armor_per_ally"
	// PassiveSoloArmor adds Value to the armor bonus only when the member
	// fights alone.
	PassiveSoloArmor PassiveKind = "solo_armor"
)

// Passive is a persistent family bonus.
type Passive struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Kind        PassiveKind `json:"kind"`
	Value       float64     `json:"value"`
}
