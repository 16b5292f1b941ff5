package presenters

import (
	"encoding/json"
	"time"

	"eduadmin/domain/events"
)

// ToastVM is one toast notification pushed to the operator shell.
type ToastVM struct {
	Title     string        `json:"title,omitempty"`
	Message   string        `json:"message"`
	Type      string        `json:"type"`
	Summary   *BulkResultVM `json:"bulk_result,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// ToastPresenter handles toast notification view logic and formatting.
type ToastPresenter struct {
	bulk *BulkPresenter
}

// NewToastPresenter creates a new toast presenter.
func NewToastPresenter() *ToastPresenter {
	return &ToastPresenter{bulk: NewBulkPresenter()}
}

// FormatToastNotification renders a plain toast as the SSE payload.
func (p *ToastPresenter) FormatToastNotification(message, toastType string) (string, error) {
	return marshalToast(ToastVM{
		Message:   message,
		Type:      toastType,
		Timestamp: time.Now(),
	})
}

// FormatBulkToastNotification creates a rich toast from a completed
// bulk operation, carrying the per-item failure list for inspection.
func (p *ToastPresenter) FormatBulkToastNotification(event events.BulkCompletedEvent) (string, error) {
	toastType := "success"
	title := "Bulk " + string(event.Result.Operation) + " complete"
	if event.Result.PartiallyFailed() {
		toastType = "warning"
		title = "Bulk " + string(event.Result.Operation) + " partially failed"
	}

	return marshalToast(ToastVM{
		Title:     title,
		Message:   event.Result.FormatResults(),
		Type:      toastType,
		Summary:   p.bulk.ToBulkResultVM(event.Result),
		Timestamp: event.Timestamp,
	})
}

func marshalToast(toast ToastVM) (string, error) {
	payload, err := json.Marshal(toast)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
