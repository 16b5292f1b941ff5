package mocks

import (
	"github.com/stretchr/testify/mock"

	"eduadmin/domain/events"
)

// MockBulkEventPublisher is a mock implementation of BulkEventPublisher for testing.
type MockBulkEventPublisher struct {
	mock.Mock
}

func (m *MockBulkEventPublisher) PublishBulkCompleted(event events.BulkCompletedEvent) {
	m.Called(event)
}

func (m *MockBulkEventPublisher) PublishBulkRejected(event events.BulkRejectedEvent) {
	m.Called(event)
}

func (m *MockBulkEventPublisher) PublishBulkFailed(event events.BulkFailedEvent) {
	m.Called(event)
}
