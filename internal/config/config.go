package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/David2024patton/primordial-tyrants/internal/game"
)

// Stat defaults applied to roster entries that omit a field. These match
// the values the battle caller has always assumed for incomplete wiki data.
const (
	DefaultCombatWeight = 3000
	DefaultHitPoints    = 500
	DefaultAttack       = 50
	DefaultArmor        = 1.0
	DefaultSpeed        = 500
)

// LoadRoster reads a species roster JSON file (the dinos.json format: an
// array of profiles with id/name/type/cw/hp/atk/armor/spd and optional
// custom abilities), applies stat defaults and validates the entries.
func LoadRoster(path string) ([]game.Species, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}
	var roster []game.Species
	if err := json.Unmarshal(b, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("roster file %s: no species entries", path)
	}

	seen := make(map[string]struct{}, len(roster))
	for i := range roster {
		s := &roster[i]
		if strings.TrimSpace(s.ID) == "" {
			return nil, fmt.Errorf("roster file %s: entry %d missing 'id'", path, i)
		}
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("roster file %s: species '%s' missing 'name'", path, s.ID)
		}
		key := strings.ToLower(s.ID)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("roster file %s: duplicate species id '%s'", path, s.ID)
		}
		seen[key] = struct{}{}

		if s.CombatWeight <= 0 {
			s.CombatWeight = DefaultCombatWeight
		}
		if s.HitPoints <= 0 {
			s.HitPoints = DefaultHitPoints
		}
		if s.Attack <= 0 {
			s.Attack = DefaultAttack
		}
		if s.Armor <= 0 {
			s.Armor = DefaultArmor
		}
		if s.Speed <= 0 {
			s.Speed = DefaultSpeed
		}
		if s.Diet == "" {
			s.Diet = game.DietCarnivore
		}

		for j, ab := range s.Abilities {
			if strings.TrimSpace(ab.Name) == "" {
				return nil, fmt.Errorf("roster file %s: species '%s' ability %d missing 'name'", path, s.ID, j)
			}
			if ab.Cooldown < 0 {
				return nil, fmt.Errorf("roster file %s: species '%s' ability '%s' has negative cooldown", path, s.ID, ab.Name)
			}
			for _, eff := range ab.Effects {
				switch eff.Kind {
				case game.EffectBleed, game.EffectBonebreak, game.EffectDefenseStance, game.EffectHeal:
				default:
					return nil, fmt.Errorf("roster file %s: species '%s' ability '%s' has unknown effect type '%s'", path, s.ID, ab.Name, eff.Kind)
				}
			}
		}
	}
	return roster, nil
}

// FindSpecies returns the roster entry with the given id (case-insensitive).
func FindSpecies(roster []game.Species, id string) (*game.Species, error) {
	for i := range roster {
		if strings.EqualFold(roster[i].ID, id) {
			return &roster[i], nil
		}
	}
	return nil, fmt.Errorf("species '%s' not found in roster", id)
}

// Scenario describes one matchup for the simulator CLI.
type Scenario struct {
	SideA    string `yaml:"side_a"`
	SideB    string `yaml:"side_b"`
	PackA    int    `yaml:"pack_a"`
	PackB    int    `yaml:"pack_b"`
	MaxTurns int    `yaml:"max_turns"`
	Seed     int64  `yaml:"seed"`
	// Battles > 1 switches the CLI into batch odds estimation.
	Battles int `yaml:"battles"`
}

// LoadScenario reads a YAML scenario file and validates it.
func LoadScenario(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}
	if strings.TrimSpace(sc.SideA) == "" || strings.TrimSpace(sc.SideB) == "" {
		return nil, fmt.Errorf("scenario file %s: both 'side_a' and 'side_b' species ids are required", path)
	}
	if sc.PackA < 0 || sc.PackB < 0 {
		return nil, fmt.Errorf("scenario file %s: pack sizes must be positive", path)
	}
	return &sc, nil
}
