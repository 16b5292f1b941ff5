package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"eduadmin/domain/bulkops"
	"eduadmin/domain/contracts"
	"eduadmin/domain/events"
	"eduadmin/logging"
)

// Refresher reconciles displayed list state after a mutation. The
// list service satisfies this.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// BulkService orchestrates the validate → permission gate → execute →
// reconcile pipeline for one entity's bulk operations. Each invocation
// walks idle → validating → (rejected | permission_denied | executing)
// → (succeeded | partially_failed | failed) → idle and produces a
// fresh result, never merged with a prior one.
type BulkService struct {
	api       contracts.BulkAPI
	perms     contracts.PermissionContext
	store     Refresher
	publisher events.BulkEventPublisher
	logger    *logging.Logger
	entity    string

	mu          sync.Mutex
	phase       bulkops.Phase
	lastOutcome bulkops.Phase
	lastResult  *bulkops.Result
}

// NewBulkService creates a bulk orchestrator. entity names the
// collection for logs and events ("users", "packages").
func NewBulkService(
	entity string,
	api contracts.BulkAPI,
	perms contracts.PermissionContext,
	store Refresher,
	publisher events.BulkEventPublisher,
	logger *logging.Logger,
) *BulkService {
	return &BulkService{
		api:       api,
		perms:     perms,
		store:     store,
		publisher: publisher,
		logger:    logger.WithComponent("bulk_service"),
		entity:    entity,
		phase:     bulkops.PhaseIdle,
	}
}

// Execute runs one bulk invocation. Validation and permission
// failures return typed errors before any network call; transport and
// server failures return typed errors with no partial result. A
// request that reaches the backend returns its per-item result even
// when some items failed, after triggering a cache refresh to
// reconcile displayed state. The selection set is deliberately left
// alone so the caller can cross-reference failures against it.
func (s *BulkService) Execute(ctx context.Context, req bulkops.Request) (*bulkops.Result, error) {
	invocationID := uuid.NewString()
	s.setPhase(bulkops.PhaseValidating)
	defer s.finishInvocation()

	if details := req.Validate(s.perms.ManageableRoles()); len(details) > 0 {
		s.setPhase(bulkops.PhaseRejected)
		err := contracts.NewValidationError(details...)
		s.publisher.PublishBulkRejected(events.BulkRejectedEvent{
			InvocationID: invocationID,
			Entity:       s.entity,
			Operation:    req.Operation,
			Reason:       err.Error(),
			Timestamp:    time.Now(),
		})
		return nil, err
	}

	if !s.perms.CanPerformOperation(req.Operation, req.Role) {
		s.setPhase(bulkops.PhasePermissionDenied)
		err := contracts.NewPermissionError(fmt.Sprintf("not permitted to perform bulk %s on %s", req.Operation, s.entity))
		s.publisher.PublishBulkRejected(events.BulkRejectedEvent{
			InvocationID: invocationID,
			Entity:       s.entity,
			Operation:    req.Operation,
			Reason:       err.Error(),
			Timestamp:    time.Now(),
		})
		return nil, err
	}

	s.setPhase(bulkops.PhaseExecuting)
	s.logger.Bulk("dispatching bulk operation", invocationID,
		slog.String("entity", s.entity),
		slog.String("operation", string(req.Operation)),
		slog.Int("targets", len(req.TargetIDs)),
	)

	result, err := s.api.Bulk(ctx, req)
	if err != nil {
		s.setPhase(bulkops.PhaseFailed)
		s.logger.BulkError("bulk operation failed", err, invocationID)
		s.publisher.PublishBulkFailed(events.BulkFailedEvent{
			InvocationID: invocationID,
			Entity:       s.entity,
			Operation:    req.Operation,
			Error:        err.Error(),
			Timestamp:    time.Now(),
		})
		return nil, err
	}
	result.Recompute()

	// Reconcile the visible window: deactivated or deleted items now
	// show their new state or disappear depending on active filters. A
	// partial refresh failure does not demote the bulk outcome.
	if refreshErr := s.store.Refresh(ctx); refreshErr != nil {
		s.logger.BulkError("refresh after bulk operation incomplete", refreshErr, invocationID)
	}

	if result.PartiallyFailed() {
		s.setPhase(bulkops.PhasePartiallyFailed)
	} else {
		s.setPhase(bulkops.PhaseSucceeded)
	}
	s.setLastResult(result)

	s.publisher.PublishBulkCompleted(events.BulkCompletedEvent{
		InvocationID: invocationID,
		Entity:       s.entity,
		Result:       result,
		Timestamp:    time.Now(),
	})
	s.logger.Bulk("bulk operation completed", invocationID,
		slog.String("summary", result.FormatResults()),
	)
	return result, nil
}

// Phase returns the current lifecycle phase; idle between
// invocations.
func (s *BulkService) Phase() bulkops.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// LastOutcome returns the terminal phase of the most recent
// invocation.
func (s *BulkService) LastOutcome() bulkops.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOutcome
}

// LastResult returns the most recent result, held until superseded by
// the next invocation.
func (s *BulkService) LastResult() *bulkops.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

func (s *BulkService) setPhase(phase bulkops.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
	if phase != bulkops.PhaseIdle && phase != bulkops.PhaseValidating && phase != bulkops.PhaseExecuting {
		s.lastOutcome = phase
	}
}

func (s *BulkService) setLastResult(result *bulkops.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResult = result
}

func (s *BulkService) finishInvocation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = bulkops.PhaseIdle
}
