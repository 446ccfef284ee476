package engine

import "github.com/David2024patton/primordial-tyrants/internal/game"

// Side labels used in Result.Winner and Result.FirstCritSide. An empty
// winner means the battle ended in a tie.
const (
	SideA = "a"
	SideB = "b"
)

// HPSnapshot is the aggregate HP of both sides at the end of one turn.
type HPSnapshot struct {
	AHP int `json:"a_hp"`
	BHP int `json:"b_hp"`
}

// FighterSummary is the per-side aggregate view of the finished battle,
// shaped for the leaderboard and wagering layers.
type FighterSummary struct {
	Name       string      `json:"name"`
	SpeciesID  string      `json:"id"`
	Family     game.Family `json:"family"`
	Diet       game.Diet   `json:"type"`
	CW         int         `json:"cw"`
	HP         int         `json:"hp"`
	MaxHP      int         `json:"max_hp"`
	PackSize   int         `json:"pack_size"`
	AliveCount int         `json:"alive_count"`
	FledCount  int         `json:"fled_count"`
	GroupSlots int         `json:"group_slots"`
	Passive    string      `json:"passive,omitempty"`

	AbilitiesUsed map[string]int `json:"abilities_used"`
}

// Result is the full outcome of one simulated battle. Turns holds the
// ordered per-round log lines; rendering them is the caller's concern.
type Result struct {
	Winner     string `json:"winner"`
	WinnerName string `json:"winner_name,omitempty"`
	LoserName  string `json:"loser_name,omitempty"`

	Turns       [][]string   `json:"turns"`
	HPSnapshots []HPSnapshot `json:"hp_snapshots"`

	FighterA FighterSummary `json:"fighter_a"`
	FighterB FighterSummary `json:"fighter_b"`

	// Markers consumed by the external wagering feature.
	AnyFled       bool   `json:"any_fled"`
	BleedKills    int    `json:"bleed_kills"`
	FirstCritSide string `json:"first_crit_side,omitempty"`
	TotalKOs      int    `json:"total_kos"`
}

func summarize(s *Side) FighterSummary {
	hp, maxHP := s.hpTotals()
	passive := ""
	if s.Passive != nil {
		passive = s.Passive.Name + ": " + s.Passive.Description
	}
	return FighterSummary{
		Name:          s.Name,
		SpeciesID:     s.Species.ID,
		Family:        s.Species.Family(),
		Diet:          s.Species.Diet,
		CW:            s.Species.CombatWeight,
		HP:            hp,
		MaxHP:         maxHP,
		PackSize:      len(s.Members),
		AliveCount:    s.AliveCount(),
		FledCount:     s.FledCount(),
		GroupSlots:    game.GroupSlots(s.Species.CombatWeight),
		Passive:       passive,
		AbilitiesUsed: s.AbilitiesUsed,
	}
}
