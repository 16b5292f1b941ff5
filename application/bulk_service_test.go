package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eduadmin/domain/accounts"
	"eduadmin/domain/bulkops"
	"eduadmin/domain/contracts"
	"eduadmin/domain/events"
	"eduadmin/logging"
	"eduadmin/test/mocks"
)

type bulkFixture struct {
	api       *mocks.MockBulkAPI
	perms     *mocks.MockPermissionContext
	store     *mocks.MockRefresher
	publisher *mocks.MockBulkEventPublisher
	service   *BulkService
}

func newBulkFixture() *bulkFixture {
	f := &bulkFixture{
		api:       &mocks.MockBulkAPI{},
		perms:     &mocks.MockPermissionContext{},
		store:     &mocks.MockRefresher{},
		publisher: &mocks.MockBulkEventPublisher{},
	}
	f.service = NewBulkService("users", f.api, f.perms, f.store, f.publisher,
		logging.NewLogger(logging.DefaultConfig()))
	return f
}

func validRequest() bulkops.Request {
	return bulkops.Request{
		Operation: bulkops.OpDeactivate,
		TargetIDs: []string{"u1", "u2", "u3", "u4", "u5"},
		Reason:    "seasonal cleanup",
	}
}

func TestBulkService_Execute_Success(t *testing.T) {
	f := newBulkFixture()
	req := validRequest()

	backendResult := &bulkops.Result{
		Operation: req.Operation,
		Successful: []bulkops.ItemSuccess{
			{ID: "u1"}, {ID: "u2"}, {ID: "u3"}, {ID: "u4"}, {ID: "u5"},
		},
	}

	f.perms.On("ManageableRoles").Return([]accounts.Role{accounts.RoleStudent})
	f.perms.On("CanPerformOperation", req.Operation, req.Role).Return(true)
	f.api.On("Bulk", mock.Anything, req).Return(backendResult, nil)
	f.store.On("Refresh", mock.Anything).Return(nil)
	f.publisher.On("PublishBulkCompleted", mock.AnythingOfType("events.BulkCompletedEvent")).Return()

	result, err := f.service.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 100, result.Summary.SuccessRate)
	assert.Equal(t, bulkops.PhaseSucceeded, f.service.LastOutcome())
	assert.Equal(t, bulkops.PhaseIdle, f.service.Phase())
	f.store.AssertCalled(t, "Refresh", mock.Anything)
	f.publisher.AssertExpectations(t)
}

func TestBulkService_Execute_PartialFailure(t *testing.T) {
	f := newBulkFixture()
	req := validRequest()

	backendResult := &bulkops.Result{
		Operation:  req.Operation,
		Successful: []bulkops.ItemSuccess{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}},
		Failed: []bulkops.ItemFailure{
			{ID: "u4", Error: "not found"},
			{ID: "u5", Error: "already inactive"},
		},
	}

	f.perms.On("ManageableRoles").Return(nil)
	f.perms.On("CanPerformOperation", req.Operation, req.Role).Return(true)
	f.api.On("Bulk", mock.Anything, req).Return(backendResult, nil)
	f.store.On("Refresh", mock.Anything).Return(nil)

	var published events.BulkCompletedEvent
	f.publisher.On("PublishBulkCompleted", mock.AnythingOfType("events.BulkCompletedEvent")).
		Run(func(args mock.Arguments) { published = args.Get(0).(events.BulkCompletedEvent) }).Return()

	result, err := f.service.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "3 successful, 2 failed out of 5", result.FormatResults())
	assert.Equal(t, 60, result.Summary.SuccessRate)
	assert.Equal(t, []string{"u4", "u5"}, result.FailedIDs())
	assert.Equal(t, bulkops.PhasePartiallyFailed, f.service.LastOutcome())

	assert.Equal(t, "users", published.Entity)
	assert.NotEmpty(t, published.InvocationID)
	assert.Same(t, result, published.Result)
}

func TestBulkService_Execute_ValidationRejectionMakesNoNetworkCall(t *testing.T) {
	f := newBulkFixture()
	f.perms.On("ManageableRoles").Return(nil)
	f.publisher.On("PublishBulkRejected", mock.AnythingOfType("events.BulkRejectedEvent")).Return()

	tests := []struct {
		name string
		req  bulkops.Request
	}{
		{"empty_target_set", bulkops.Request{Operation: bulkops.OpActivate}},
		{"missing_reason", bulkops.Request{Operation: bulkops.OpDelete, TargetIDs: []string{"u1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.service.Execute(context.Background(), tt.req)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, contracts.ErrorKindValidation, contracts.KindOf(err))
			assert.Equal(t, bulkops.PhaseRejected, f.service.LastOutcome())
		})
	}

	f.api.AssertNotCalled(t, "Bulk", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestBulkService_Execute_PermissionDenied(t *testing.T) {
	f := newBulkFixture()
	req := validRequest()

	f.perms.On("ManageableRoles").Return(nil)
	f.perms.On("CanPerformOperation", req.Operation, req.Role).Return(false)
	f.publisher.On("PublishBulkRejected", mock.AnythingOfType("events.BulkRejectedEvent")).Return()

	result, err := f.service.Execute(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, contracts.ErrorKindPermission, contracts.KindOf(err))
	assert.Equal(t, bulkops.PhasePermissionDenied, f.service.LastOutcome())
	f.api.AssertNotCalled(t, "Bulk", mock.Anything, mock.Anything)
}

func TestBulkService_Execute_TransportFailure(t *testing.T) {
	f := newBulkFixture()
	req := validRequest()

	transportErr := contracts.NewTransportError("connection refused", false)
	f.perms.On("ManageableRoles").Return(nil)
	f.perms.On("CanPerformOperation", req.Operation, req.Role).Return(true)
	f.api.On("Bulk", mock.Anything, req).Return(nil, transportErr)
	f.publisher.On("PublishBulkFailed", mock.AnythingOfType("events.BulkFailedEvent")).Return()

	result, err := f.service.Execute(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, bulkops.PhaseFailed, f.service.LastOutcome())
	// No partial result, no refresh.
	f.store.AssertNotCalled(t, "Refresh", mock.Anything)
	assert.Nil(t, f.service.LastResult())
}

func TestBulkService_Execute_RefreshFailureDoesNotDemoteOutcome(t *testing.T) {
	f := newBulkFixture()
	req := validRequest()

	backendResult := &bulkops.Result{
		Operation:  req.Operation,
		Successful: []bulkops.ItemSuccess{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}, {ID: "u4"}, {ID: "u5"}},
	}

	f.perms.On("ManageableRoles").Return(nil)
	f.perms.On("CanPerformOperation", req.Operation, req.Role).Return(true)
	f.api.On("Bulk", mock.Anything, req).Return(backendResult, nil)
	f.store.On("Refresh", mock.Anything).Return(contracts.NewTransportError("refresh failed", false))
	f.publisher.On("PublishBulkCompleted", mock.AnythingOfType("events.BulkCompletedEvent")).Return()

	result, err := f.service.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, bulkops.PhaseSucceeded, f.service.LastOutcome())
}

func TestBulkService_LastResultHeldUntilSuperseded(t *testing.T) {
	f := newBulkFixture()
	req := validRequest()

	f.perms.On("ManageableRoles").Return(nil)
	f.perms.On("CanPerformOperation", req.Operation, req.Role).Return(true)
	f.api.On("Bulk", mock.Anything, req).
		Return(&bulkops.Result{Operation: req.Operation, Successful: []bulkops.ItemSuccess{{ID: "u1"}}}, nil).Once()
	f.api.On("Bulk", mock.Anything, req).
		Return(&bulkops.Result{Operation: req.Operation, Successful: []bulkops.ItemSuccess{{ID: "u2"}}}, nil).Once()
	f.store.On("Refresh", mock.Anything).Return(nil)
	f.publisher.On("PublishBulkCompleted", mock.AnythingOfType("events.BulkCompletedEvent")).Return()

	_, err := f.service.Execute(context.Background(), req)
	require.NoError(t, err)

	first := f.service.LastResult()
	require.NotNil(t, first)

	_, err = f.service.Execute(context.Background(), req)
	require.NoError(t, err)

	// A fresh result per invocation; never merged with the prior one.
	assert.NotSame(t, first, f.service.LastResult())
}
