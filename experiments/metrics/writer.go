package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records as CSV files under a timestamped
// directory, one directory per experiment run.
type Writer struct {
	baseDir string
}

func NewWriter(experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", experiment, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory this writer writes into.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WriteSolveRecords writes the A* comparison table to solves.csv.
func (w *Writer) WriteSolveRecords(records []SolveRecord) error {
	path := filepath.Join(w.baseDir, "solves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create solves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"map", "heuristic", "solved", "cost", "length", "expanded", "elapsed_ms"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write solves header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Map,
			r.Heuristic,
			strconv.FormatBool(r.Solved),
			strconv.Itoa(r.Cost),
			strconv.Itoa(r.Length),
			strconv.Itoa(r.Expanded),
			strconv.FormatFloat(float64(r.Elapsed.Microseconds())/1000.0, 'f', 3, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write solve record: %w", err)
		}
	}
	return nil
}

// WriteGameRecords writes the matchup table to games.csv.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create games file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "map", "agent_b", "depth", "turns", "delivered_a", "delivered_b", "utility", "elapsed_ms"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write games header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Map,
			r.AgentB,
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.DeliveredA),
			strconv.Itoa(r.DeliveredB),
			strconv.Itoa(r.Utility),
			strconv.FormatFloat(float64(r.Elapsed.Microseconds())/1000.0, 'f', 3, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record: %w", err)
		}
	}
	return nil
}
