package bulkops

import "fmt"

// ItemSuccess is one per-item success entry in a bulk result.
type ItemSuccess struct {
	ID     string `json:"id"`
	Result string `json:"result"`
}

// ItemFailure is one per-item failure entry in a bulk result.
type ItemFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// Summary aggregates the per-item outcomes. SuccessRate is a whole
// percentage of Total.
type Summary struct {
	SuccessfulCount int `json:"successful_count"`
	FailedCount     int `json:"failed_count"`
	SuccessRate     int `json:"success_rate"`
}

// Result is the backend's per-item report for one bulk invocation. It
// is created fresh per invocation and never merged with a prior
// result.
type Result struct {
	Operation  Operation     `json:"operation"`
	Total      int           `json:"total"`
	Successful []ItemSuccess `json:"successful"`
	Failed     []ItemFailure `json:"failed"`
	Summary    Summary       `json:"summary"`
}

// Recompute derives Total and Summary from the per-item entries.
// Applied once at the decode boundary so internal code can trust the
// counts regardless of what the backend populated.
func (r *Result) Recompute() {
	r.Summary.SuccessfulCount = len(r.Successful)
	r.Summary.FailedCount = len(r.Failed)
	r.Total = r.Summary.SuccessfulCount + r.Summary.FailedCount
	if r.Total > 0 {
		r.Summary.SuccessRate = r.Summary.SuccessfulCount * 100 / r.Total
	} else {
		r.Summary.SuccessRate = 0
	}
}

// PartiallyFailed reports whether any per-item failures occurred.
func (r *Result) PartiallyFailed() bool {
	return r.Summary.FailedCount > 0
}

// FailedIDs returns the identifiers that failed, for caller-side
// cross-referencing against the selection.
func (r *Result) FailedIDs() []string {
	ids := make([]string, len(r.Failed))
	for i, failure := range r.Failed {
		ids[i] = failure.ID
	}
	return ids
}

// FormatResults renders the human-readable outcome summary, e.g.
// "3 successful, 2 failed out of 5".
func (r *Result) FormatResults() string {
	return fmt.Sprintf("%d successful, %d failed out of %d",
		r.Summary.SuccessfulCount, r.Summary.FailedCount, r.Total)
}
