package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"harvest/config"
	"harvest/engine"
	"harvest/experiments"
	"harvest/game"
	"harvest/searcher"
)

func main() {
	mode := flag.String("mode", "solve", "solve, match or experiment")
	mapName := flag.String("map", "A", "map name (built-in A/B/C, or a map from -config)")
	configPath := flag.String("config", "", "optional YAML episode config")
	heuristicName := flag.String("heuristic", "max", "A* heuristic: zero, nearest, trips or max")
	depth := flag.Int("depth", 4, "minimax search depth")
	opponent := flag.String("opponent", "minimax", "agent B policy: minimax or random")
	seed := flag.Uint64("seed", 1, "seed for the random policy")
	games := flag.Int("games", 10, "games per matchup in experiment mode")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch *mode {
	case "solve":
		err = runSolve(*mapName, *configPath, *heuristicName)
	case "match":
		err = runMatch(*mapName, *configPath, *opponent, *depth, *seed)
	case "experiment":
		if err = experiments.RunHeuristicComparison(); err == nil {
			err = experiments.RunMatchups(*games, *depth, *seed)
		}
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func loadGrid(mapName, configPath string) (*game.Grid, error) {
	if configPath == "" {
		return game.BuiltinMap(mapName)
	}
	file, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return file.Grid(mapName)
}

func runSolve(mapName, configPath, heuristicName string) error {
	grid, err := loadGrid(mapName, configPath)
	if err != nil {
		return err
	}
	heuristic, err := game.ParseHeuristic(heuristicName)
	if err != nil {
		return err
	}

	result, err := searcher.NewAStar(searcher.WithHeuristic(heuristic)).Solve(grid)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", game.Render(grid, result.Path))
	fmt.Printf("path: %s\n", game.FormatPath(result.Path))
	fmt.Printf("cost=%d length=%d expanded=%d elapsed=%s delivered=%s\n",
		result.Cost, result.Length, result.Expanded, result.Elapsed,
		game.FormatDelivered(result.Final.Delivered))
	return nil
}

func runMatch(mapName, configPath, opponent string, depth int, seed uint64) error {
	grid, err := loadGrid(mapName, configPath)
	if err != nil {
		return err
	}

	agentA := searcher.NewMinimax(searcher.WithDepth(depth))
	var agentB searcher.Agent
	switch opponent {
	case "minimax":
		agentB = searcher.NewMinimax(searcher.WithDepth(depth))
	case "random":
		agentB = searcher.NewRandom(seed)
	default:
		return fmt.Errorf("unknown opponent %q", opponent)
	}

	e := engine.New(grid, agentA, agentB)
	final, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Printf("game over after %d moves\n", final.Moves)
	fmt.Printf("delivered A=%d B=%d utility=%d\n",
		final.Players[game.AgentA].Delivered,
		final.Players[game.AgentB].Delivered,
		final.Utility())
	return nil
}
