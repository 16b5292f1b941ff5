package events

// BulkEventPublisher defines the interface for publishing bulk
// operation lifecycle events.
type BulkEventPublisher interface {
	PublishBulkCompleted(event BulkCompletedEvent)
	PublishBulkRejected(event BulkRejectedEvent)
	PublishBulkFailed(event BulkFailedEvent)
}
