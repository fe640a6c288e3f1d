package stats

import "time"

// Stats is the persisted record of one generation run's accretion.Stats,
// queryable on its own for aggregate reporting without re-running
// generation.
type Stats struct {
	ID             int       `json:"id"`
	SystemID       int       `json:"system_id"`
	InjectedNuclei int       `json:"injected_nuclei"`
	MergedNuclei   int       `json:"merged_nuclei"`
	ElapsedMs      int64     `json:"elapsed_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// Aggregate summarizes Stats across every run recorded so far.
type Aggregate struct {
	RunCount              int64   `json:"run_count"`
	AverageInjectedNuclei float64 `json:"average_injected_nuclei"`
	AverageMergedNuclei   float64 `json:"average_merged_nuclei"`
	AverageElapsedMs      float64 `json:"average_elapsed_ms"`
	MaxElapsedMs          int64   `json:"max_elapsed_ms"`
}
