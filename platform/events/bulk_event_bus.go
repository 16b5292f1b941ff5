package events

import (
	"sync"

	"eduadmin/domain/events"
	"eduadmin/logging"
)

// BulkEventBus provides type-safe publishing and subscription for
// bulk operation lifecycle events.
type BulkEventBus struct {
	mu     sync.RWMutex
	logger *logging.Logger

	completedHandlers []func(events.BulkCompletedEvent)
	rejectedHandlers  []func(events.BulkRejectedEvent)
	failedHandlers    []func(events.BulkFailedEvent)
}

// NewBulkEventBus creates a new typed bulk event bus.
func NewBulkEventBus() *BulkEventBus {
	return &BulkEventBus{
		logger:            logging.Default().WithComponent("bulk_event_bus"),
		completedHandlers: make([]func(events.BulkCompletedEvent), 0),
		rejectedHandlers:  make([]func(events.BulkRejectedEvent), 0),
		failedHandlers:    make([]func(events.BulkFailedEvent), 0),
	}
}

// Subscribe methods for each event type

func (bus *BulkEventBus) OnBulkCompleted(handler func(events.BulkCompletedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.completedHandlers = append(bus.completedHandlers, handler)
}

func (bus *BulkEventBus) OnBulkRejected(handler func(events.BulkRejectedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.rejectedHandlers = append(bus.rejectedHandlers, handler)
}

func (bus *BulkEventBus) OnBulkFailed(handler func(events.BulkFailedEvent)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.failedHandlers = append(bus.failedHandlers, handler)
}

// Publish methods for each event type. Handlers run asynchronously so
// the orchestrator never blocks on notification delivery.

func (bus *BulkEventBus) PublishBulkCompleted(event events.BulkCompletedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.BulkCompletedEvent), len(bus.completedHandlers))
	copy(handlers, bus.completedHandlers)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		go func(h func(events.BulkCompletedEvent)) {
			defer bus.recoverHandler("BulkCompleted", event.InvocationID)
			h(event)
		}(handler)
	}
}

func (bus *BulkEventBus) PublishBulkRejected(event events.BulkRejectedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.BulkRejectedEvent), len(bus.rejectedHandlers))
	copy(handlers, bus.rejectedHandlers)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		go func(h func(events.BulkRejectedEvent)) {
			defer bus.recoverHandler("BulkRejected", event.InvocationID)
			h(event)
		}(handler)
	}
}

func (bus *BulkEventBus) PublishBulkFailed(event events.BulkFailedEvent) {
	bus.mu.RLock()
	handlers := make([]func(events.BulkFailedEvent), len(bus.failedHandlers))
	copy(handlers, bus.failedHandlers)
	bus.mu.RUnlock()

	for _, handler := range handlers {
		go func(h func(events.BulkFailedEvent)) {
			defer bus.recoverHandler("BulkFailed", event.InvocationID)
			h(event)
		}(handler)
	}
}

func (bus *BulkEventBus) recoverHandler(eventType, invocationID string) {
	if r := recover(); r != nil {
		bus.logger.Error("Event handler panicked",
			"event_type", eventType,
			"invocation_id", invocationID,
			"panic", r)
	}
}
