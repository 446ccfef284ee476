package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/David2024patton/primordial-tyrants/internal/config"
	"github.com/David2024patton/primordial-tyrants/internal/engine"
	"github.com/David2024patton/primordial-tyrants/internal/game"
	"github.com/David2024patton/primordial-tyrants/internal/logging"
	"github.com/David2024patton/primordial-tyrants/internal/odds"
	"github.com/David2024patton/primordial-tyrants/internal/version"
)

var (
	flagRoster   string
	flagScenario string
	flagSideA    string
	flagSideB    string
	flagPackA    int
	flagPackB    int
	flagTurns    int
	flagSeed     int64
	flagBattles  int
	flagWorkers  int
	flagOutJSON  string
	flagVersion  bool
)

func init() {
	flag.StringVar(&flagRoster, "roster", "./dinos.json", "species roster JSON file")
	flag.StringVar(&flagScenario, "scenario", "", "YAML scenario file (overrides matchup flags)")
	flag.StringVar(&flagSideA, "a", "", "species id for side A")
	flag.StringVar(&flagSideB, "b", "", "species id for side B")
	flag.IntVar(&flagPackA, "packa", 1, "pack size for side A")
	flag.IntVar(&flagPackB, "packb", 1, "pack size for side B")
	flag.IntVar(&flagTurns, "turns", engine.DefaultMaxTurns, "maximum rounds per battle")
	flag.Int64Var(&flagSeed, "seed", 0, "random seed (0 = derive from time)")
	flag.IntVar(&flagBattles, "battles", 1, "number of battles; >1 switches to odds estimation")
	flag.IntVar(&flagWorkers, "workers", 0, "odds-mode worker goroutines (0 = GOMAXPROCS)")
	flag.StringVar(&flagOutJSON, "outjson", "", "write the result JSON to a file instead of stdout text")
	flag.BoolVar(&flagVersion, "version", false, "print version and exit")
}

func main() {
	flag.Parse()
	if flagVersion {
		fmt.Println("tyrantsim " + version.String())
		return
	}

	roster, err := config.LoadRoster(flagRoster)
	if err != nil {
		logging.Fatal("Missing or invalid species roster", err, logging.Fields{"roster_path": flagRoster, "hint": "point -roster at a dinos.json array of species objects (id,name,type,cw,hp,atk,armor,spd)"})
	}

	idA, idB := flagSideA, flagSideB
	packA, packB := flagPackA, flagPackB
	turns, seed, battles := flagTurns, flagSeed, flagBattles
	if flagScenario != "" {
		sc, err := config.LoadScenario(flagScenario)
		if err != nil {
			logging.Fatal("Invalid scenario file", err, logging.Fields{"scenario_path": flagScenario})
		}
		idA, idB = sc.SideA, sc.SideB
		if sc.PackA > 0 {
			packA = sc.PackA
		}
		if sc.PackB > 0 {
			packB = sc.PackB
		}
		if sc.MaxTurns > 0 {
			turns = sc.MaxTurns
		}
		if sc.Seed != 0 {
			seed = sc.Seed
		}
		if sc.Battles > 0 {
			battles = sc.Battles
		}
	}
	if idA == "" || idB == "" {
		logging.Fatal("No matchup given", nil, logging.Fields{"hint": "pass -a and -b species ids or a -scenario file"})
	}

	speciesA, err := config.FindSpecies(roster, idA)
	if err != nil {
		logging.Fatal("Unknown species for side A", err, logging.Fields{"id": idA})
	}
	speciesB, err := config.FindSpecies(roster, idB)
	if err != nil {
		logging.Fatal("Unknown species for side B", err, logging.Fields{"id": idB})
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opt := engine.Options{PackA: packA, PackB: packB, MaxTurns: turns}

	if battles > 1 {
		runOdds(speciesA, speciesB, opt, battles, seed)
		return
	}
	runBattle(speciesA, speciesB, opt, seed)
}

func runBattle(a, b *game.Species, opt engine.Options, seed int64) {
	opt.Rand = rand.New(rand.NewSource(seed))
	res := engine.Simulate(a, b, opt)

	if flagOutJSON != "" {
		writeJSON(flagOutJSON, res)
		return
	}

	fmt.Printf("%s vs %s (seed %d)\n\n", res.FighterA.Name, res.FighterB.Name, seed)
	for _, turn := range res.Turns {
		for _, line := range turn {
			fmt.Println(line)
		}
		fmt.Println()
	}
	switch res.Winner {
	case "":
		fmt.Println("Result: tie")
	default:
		fmt.Printf("Result: %s defeats %s\n", res.WinnerName, res.LoserName)
	}
	fmt.Printf("KOs: %d, bleed kills: %d, fled: %v, first crit: %q\n",
		res.TotalKOs, res.BleedKills, res.AnyFled, res.FirstCritSide)
}

func runOdds(a, b *game.Species, opt engine.Options, battles int, seed int64) {
	est, err := odds.Run(context.Background(), a, b, opt, battles, seed, flagWorkers)
	if err != nil {
		logging.Fatal("Odds estimation failed", err, nil)
	}

	if flagOutJSON != "" {
		writeJSON(flagOutJSON, est)
		return
	}

	fmt.Printf("%s vs %s over %d battles (seed %d)\n", a.Name, b.Name, est.Battles, seed)
	fmt.Printf("  win A      %.1f%%\n", est.WinA*100)
	fmt.Printf("  win B      %.1f%%\n", est.WinB*100)
	fmt.Printf("  tie        %.1f%%\n", est.Tie*100)
	fmt.Printf("  any flee   %.1f%%\n", est.AnyFled*100)
	fmt.Printf("  bleed kill %.1f%%\n", est.BleedKill*100)
	fmt.Printf("  1st crit A %.1f%%\n", est.FirstCritA*100)
	fmt.Printf("  1st crit B %.1f%%\n", est.FirstCritB*100)
	fmt.Printf("  KOs 2+     %.1f%%\n", est.KOsTwoPlus*100)
	fmt.Printf("  avg KOs    %.2f\n", est.AvgKOs)
}

func writeJSON(path string, v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logging.Fatal("Failed to encode result", err, nil)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		logging.Fatal("Failed to write result file", err, logging.Fields{"path": path})
	}
	logging.Info("Result written", logging.Fields{"path": path})
}
