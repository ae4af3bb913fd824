package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"harvest/engine"
	"harvest/experiments/metrics"
	"harvest/game"
	"harvest/searcher"
)

var allHeuristics = []game.HeuristicID{
	game.HeuristicZero,
	game.HeuristicNearest,
	game.HeuristicTrips,
	game.HeuristicMax,
}

// RunHeuristicComparison solves every built-in map with every heuristic and
// writes the comparison table. The zero heuristic is the Dijkstra oracle: any
// informed heuristic returning a different cost on the same map is a bug, so
// the run fails loudly on a mismatch.
func RunHeuristicComparison() error {
	records := []metrics.SolveRecord{}

	for _, name := range game.MapNames() {
		grid, err := game.BuiltinMap(name)
		if err != nil {
			return err
		}

		oracleCost := -1
		for _, id := range allHeuristics {
			result, err := searcher.NewAStar(searcher.WithHeuristic(id)).Solve(grid)
			solved := err == nil
			if solved {
				if id == game.HeuristicZero {
					oracleCost = result.Cost
				} else if result.Cost != oracleCost {
					return fmt.Errorf("heuristic %s found cost %d on map %s, oracle found %d",
						id, result.Cost, name, oracleCost)
				}
			}

			log.Info().
				Str("map", name).
				Str("heuristic", id.String()).
				Bool("solved", solved).
				Int("cost", result.Cost).
				Int("expanded", result.Expanded).
				Dur("elapsed", result.Elapsed).
				Msg("solved map")

			records = append(records, metrics.SolveRecord{
				Map:       name,
				Heuristic: id.String(),
				Solved:    solved,
				Cost:      result.Cost,
				Length:    result.Length,
				Expanded:  result.Expanded,
				Elapsed:   result.Elapsed,
			})
		}
	}

	writer, err := metrics.NewWriter("heuristics")
	if err != nil {
		return err
	}
	if err := writer.WriteSolveRecords(records); err != nil {
		return err
	}
	log.Info().Str("dir", writer.BaseDir()).Msg("wrote heuristic comparison")
	return nil
}

// RunMatchups plays minimax-A against both opponent policies for B on every
// built-in map and records the outcomes.
func RunMatchups(games int, depth int, seed uint64) error {
	records := []metrics.GameRecord{}
	id := 0

	for _, name := range game.MapNames() {
		grid, err := game.BuiltinMap(name)
		if err != nil {
			return err
		}

		for _, opponent := range []string{"random", "minimax"} {
			for i := 0; i < games; i++ {
				agentA := searcher.NewMinimax(searcher.WithDepth(depth))
				var agentB searcher.Agent
				if opponent == "minimax" {
					agentB = searcher.NewMinimax(searcher.WithDepth(depth))
				} else {
					agentB = searcher.NewRandom(seed + uint64(id))
				}

				e := engine.New(grid, agentA, agentB)
				t0 := time.Now()
				final, err := e.Run()
				if err != nil {
					return err
				}

				id++
				records = append(records, metrics.GameRecord{
					ID:         id,
					Map:        name,
					AgentB:     opponent,
					Depth:      depth,
					Turns:      final.Moves,
					DeliveredA: final.Players[game.AgentA].Delivered,
					DeliveredB: final.Players[game.AgentB].Delivered,
					Utility:    final.Utility(),
					Elapsed:    time.Since(t0),
				})

				log.Info().
					Str("map", name).
					Str("agent_b", opponent).
					Int("game", id).
					Int("utility", final.Utility()).
					Int("turns", final.Moves).
					Msg("finished match")
			}
		}
	}

	writer, err := metrics.NewWriter("matchups")
	if err != nil {
		return err
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return err
	}
	log.Info().Str("dir", writer.BaseDir()).Msg("wrote matchup records")
	return nil
}
