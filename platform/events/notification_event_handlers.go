package events

import (
	"eduadmin/domain/events"
	"eduadmin/logging"
)

// ToastBroadcaster defines the interface for pushing toast
// notifications to connected operator sessions.
type ToastBroadcaster interface {
	BroadcastToast(message, toastType string)
	BroadcastBulkResult(event events.BulkCompletedEvent)
}

// NotificationEventHandlers converts bulk lifecycle events into
// operator-facing toast notifications.
type NotificationEventHandlers struct {
	broadcaster ToastBroadcaster
	logger      *logging.Logger
}

// NewNotificationEventHandlers creates event handlers for notifications.
func NewNotificationEventHandlers(broadcaster ToastBroadcaster) *NotificationEventHandlers {
	return &NotificationEventHandlers{
		broadcaster: broadcaster,
		logger:      logging.Default().WithComponent("notification_events"),
	}
}

// RegisterHandlers registers all notification handlers with the event bus.
func (h *NotificationEventHandlers) RegisterHandlers(eventBus *BulkEventBus) {
	eventBus.OnBulkCompleted(h.handleBulkCompleted)
	eventBus.OnBulkRejected(h.handleBulkRejected)
	eventBus.OnBulkFailed(h.handleBulkFailed)
}

func (h *NotificationEventHandlers) handleBulkCompleted(event events.BulkCompletedEvent) {
	h.logger.Info("Handling bulk completed event",
		"invocation_id", event.InvocationID,
		"entity", event.Entity,
		"summary", event.Result.FormatResults())

	h.broadcaster.BroadcastBulkResult(event)
}

func (h *NotificationEventHandlers) handleBulkRejected(event events.BulkRejectedEvent) {
	h.logger.Info("Handling bulk rejected event",
		"invocation_id", event.InvocationID,
		"entity", event.Entity,
		"reason", event.Reason)

	h.broadcaster.BroadcastToast(event.Reason, "warning")
}

func (h *NotificationEventHandlers) handleBulkFailed(event events.BulkFailedEvent) {
	h.logger.Info("Handling bulk failed event",
		"invocation_id", event.InvocationID,
		"entity", event.Entity,
		"error", event.Error)

	h.broadcaster.BroadcastToast("Bulk "+string(event.Operation)+" on "+event.Entity+" failed: "+event.Error, "error")
}
