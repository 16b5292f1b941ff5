package bulkops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resultWith(successful, failed int) *Result {
	r := &Result{Operation: OpDeactivate}
	for i := 0; i < successful; i++ {
		r.Successful = append(r.Successful, ItemSuccess{ID: "ok", Result: "deactivated"})
	}
	for i := 0; i < failed; i++ {
		r.Failed = append(r.Failed, ItemFailure{ID: "bad", Error: "not found"})
	}
	r.Recompute()
	return r
}

func TestResult_Recompute(t *testing.T) {
	tests := []struct {
		name         string
		successful   int
		failed       int
		expectedRate int
	}{
		{"all_successful", 5, 0, 100},
		{"all_failed", 0, 4, 0},
		{"three_of_five", 3, 2, 60},
		{"rounds_down", 2, 1, 66},
		{"empty_result", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resultWith(tt.successful, tt.failed)

			assert.Equal(t, tt.successful+tt.failed, r.Total)
			assert.Equal(t, tt.successful, r.Summary.SuccessfulCount)
			assert.Equal(t, tt.failed, r.Summary.FailedCount)
			assert.Equal(t, tt.expectedRate, r.Summary.SuccessRate)
		})
	}
}

func TestResult_Recompute_OverwritesBackendCounts(t *testing.T) {
	// Decode boundary: whatever the backend claimed, the counts are
	// rederived from the per-item entries.
	r := &Result{
		Total:      99,
		Successful: []ItemSuccess{{ID: "a"}},
		Summary:    Summary{SuccessfulCount: 42, FailedCount: 7, SuccessRate: 1},
	}
	r.Recompute()

	assert.Equal(t, 1, r.Total)
	assert.Equal(t, Summary{SuccessfulCount: 1, FailedCount: 0, SuccessRate: 100}, r.Summary)
}

func TestResult_FormatResults(t *testing.T) {
	assert.Equal(t, "3 successful, 2 failed out of 5", resultWith(3, 2).FormatResults())
	assert.Equal(t, "0 successful, 0 failed out of 0", resultWith(0, 0).FormatResults())
}

func TestResult_PartiallyFailedAndFailedIDs(t *testing.T) {
	r := &Result{
		Successful: []ItemSuccess{{ID: "u1"}},
		Failed:     []ItemFailure{{ID: "u2", Error: "not found"}, {ID: "u3", Error: "conflict"}},
	}
	r.Recompute()

	assert.True(t, r.PartiallyFailed())
	assert.Equal(t, []string{"u2", "u3"}, r.FailedIDs())

	assert.False(t, resultWith(2, 0).PartiallyFailed())
}
