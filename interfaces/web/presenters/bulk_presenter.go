package presenters

import (
	"eduadmin/domain/bulkops"
)

// FailedItemVM is one failed identifier with its backend error, kept
// available so the operator can cross-reference against the
// selection and retry.
type FailedItemVM struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BulkResultVM is the view model for a completed bulk invocation.
type BulkResultVM struct {
	Operation       string         `json:"operation"`
	Total           int            `json:"total"`
	SuccessfulCount int            `json:"successful_count"`
	FailedCount     int            `json:"failed_count"`
	SuccessRate     int            `json:"success_rate"`
	PartiallyFailed bool           `json:"partially_failed"`
	Summary         string         `json:"summary"`
	FailedItems     []FailedItemVM `json:"failed_items,omitempty"`
}

// BulkPresenter formats bulk operation results for display.
type BulkPresenter struct{}

// NewBulkPresenter creates a bulk presenter.
func NewBulkPresenter() *BulkPresenter {
	return &BulkPresenter{}
}

// ToBulkResultVM converts a bulk result into its view model. Returns
// safe defaults if result is nil.
func (p *BulkPresenter) ToBulkResultVM(result *bulkops.Result) *BulkResultVM {
	if result == nil {
		return &BulkResultVM{FailedItems: []FailedItemVM{}}
	}

	failed := make([]FailedItemVM, len(result.Failed))
	for i, failure := range result.Failed {
		failed[i] = FailedItemVM{ID: failure.ID, Error: failure.Error}
	}

	return &BulkResultVM{
		Operation:       string(result.Operation),
		Total:           result.Total,
		SuccessfulCount: result.Summary.SuccessfulCount,
		FailedCount:     result.Summary.FailedCount,
		SuccessRate:     result.Summary.SuccessRate,
		PartiallyFailed: result.PartiallyFailed(),
		Summary:         result.FormatResults(),
		FailedItems:     failed,
	}
}
