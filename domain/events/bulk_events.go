package events

import (
	"time"

	"eduadmin/domain/bulkops"
)

// BulkCompletedEvent represents a bulk operation whose request
// succeeded, including results with per-item failures.
type BulkCompletedEvent struct {
	InvocationID string
	Entity       string
	Result       *bulkops.Result
	Timestamp    time.Time
}

// BulkRejectedEvent represents a bulk operation blocked before
// dispatch by validation or the permission gate.
type BulkRejectedEvent struct {
	InvocationID string
	Entity       string
	Operation    bulkops.Operation
	Reason       string
	Timestamp    time.Time
}

// BulkFailedEvent represents a bulk operation that failed at the
// transport or server level; no partial result exists.
type BulkFailedEvent struct {
	InvocationID string
	Entity       string
	Operation    bulkops.Operation
	Error        string
	Timestamp    time.Time
}
