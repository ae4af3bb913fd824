package metrics

import "time"

// SolveRecord is one A* run: a map, a heuristic, and what the search did.
type SolveRecord struct {
	Map       string
	Heuristic string
	Solved    bool
	Cost      int
	Length    int
	Expanded  int
	Elapsed   time.Duration
}

// GameRecord is one adversarial match.
type GameRecord struct {
	ID         int
	Map        string
	AgentB     string // "minimax" or "random"
	Depth      int
	Turns      int
	DeliveredA int
	DeliveredB int
	Utility    int // A minus B at the end
	Elapsed    time.Duration
}
