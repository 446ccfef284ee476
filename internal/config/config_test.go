package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/David2024patton/primordial-tyrants/internal/game"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadRosterDefaults(t *testing.T) {
	path := writeFile(t, "dinos.json", `[
		{"id": "tyrannosaurus", "name": "Tyrannosaurus", "type": "carnivore", "cw": 8000, "hp": 3000, "atk": 120, "armor": 1.5, "spd": 400},
		{"id": "mysterysaurus", "name": "Mysterysaurus"}
	]`)
	roster, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 species, got %d", len(roster))
	}

	m := roster[1]
	if m.CombatWeight != DefaultCombatWeight || m.HitPoints != DefaultHitPoints ||
		m.Attack != DefaultAttack || m.Armor != DefaultArmor || m.Speed != DefaultSpeed {
		t.Fatalf("stat defaults not applied: %+v", m)
	}
	if m.Diet != game.DietCarnivore {
		t.Fatalf("diet must default to carnivore, got %q", m.Diet)
	}
}

func TestLoadRosterDuplicateID(t *testing.T) {
	path := writeFile(t, "dinos.json", `[
		{"id": "utahraptor", "name": "Utahraptor"},
		{"id": "UtahRaptor", "name": "Also Utahraptor"}
	]`)
	if _, err := LoadRoster(path); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestLoadRosterRejectsBadAbility(t *testing.T) {
	path := writeFile(t, "dinos.json", `[
		{"id": "x", "name": "X", "abilities": [
			{"name": "Zap", "power_percent": 100, "effects": [{"type": "poison", "duration": 2, "value": 0.1}]}
		]}
	]`)
	if _, err := LoadRoster(path); err == nil {
		t.Fatalf("expected unknown effect type error")
	}
}

func TestLoadRosterMissingFields(t *testing.T) {
	for name, body := range map[string]string{
		"empty":        `[]`,
		"missing id":   `[{"name": "Nameless"}]`,
		"missing name": `[{"id": "anon"}]`,
	} {
		path := writeFile(t, "dinos.json", body)
		if _, err := LoadRoster(path); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestFindSpecies(t *testing.T) {
	roster := []game.Species{{ID: "tyrannosaurus", Name: "Tyrannosaurus"}}
	if _, err := FindSpecies(roster, "TYRANNOSAURUS"); err != nil {
		t.Fatalf("lookup must be case-insensitive: %v", err)
	}
	if _, err := FindSpecies(roster, "stegosaurus"); err == nil {
		t.Fatalf("expected not-found error")
	}
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
side_a: tyrannosaurus
side_b: utahraptor
pack_b: 5
max_turns: 20
seed: 42
battles: 1000
`)
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if sc.SideA != "tyrannosaurus" || sc.SideB != "utahraptor" {
		t.Fatalf("unexpected sides: %+v", sc)
	}
	if sc.PackB != 5 || sc.MaxTurns != 20 || sc.Seed != 42 || sc.Battles != 1000 {
		t.Fatalf("unexpected scenario values: %+v", sc)
	}
}

func TestLoadScenarioRequiresSides(t *testing.T) {
	path := writeFile(t, "scenario.yaml", "side_a: tyrannosaurus\n")
	if _, err := LoadScenario(path); err == nil {
		t.Fatalf("expected missing side_b error")
	}
}
