package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eduadmin/domain/accounts"
	"eduadmin/domain/bulkops"
	"eduadmin/domain/catalog"
	"eduadmin/domain/contracts"
	"eduadmin/domain/inbox"
	"eduadmin/domain/listing"
)

// MockListAPI implements ListAPI for testing.
type MockListAPI[T any] struct {
	mock.Mock
}

func (m *MockListAPI[T]) FetchPage(ctx context.Context, page, perPage int, filters listing.Filters, sort listing.Sort) (*contracts.Page[T], error) {
	args := m.Called(ctx, page, perPage, filters, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.Page[T]), args.Error(1)
}

// MockSearchAPI implements SearchAPI for testing.
type MockSearchAPI[T any] struct {
	mock.Mock
}

func (m *MockSearchAPI[T]) Search(ctx context.Context, query string) ([]T, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

// MockBulkAPI implements BulkAPI for testing.
type MockBulkAPI struct {
	mock.Mock
}

func (m *MockBulkAPI) Bulk(ctx context.Context, req bulkops.Request) (*bulkops.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bulkops.Result), args.Error(1)
}

// MockUserMutationAPI implements UserMutationAPI for testing.
type MockUserMutationAPI struct {
	mock.Mock
}

func (m *MockUserMutationAPI) Update(ctx context.Context, id string, user accounts.User) (*accounts.User, error) {
	args := m.Called(ctx, id, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserMutationAPI) Activate(ctx context.Context, id string) (*accounts.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserMutationAPI) Deactivate(ctx context.Context, id, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockUserMutationAPI) ChangeRole(ctx context.Context, id string, role accounts.Role) (*accounts.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

// MockPackageMutationAPI implements PackageMutationAPI for testing.
type MockPackageMutationAPI struct {
	mock.Mock
}

func (m *MockPackageMutationAPI) Create(ctx context.Context, draft catalog.Draft) (*catalog.Package, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Package), args.Error(1)
}

func (m *MockPackageMutationAPI) Update(ctx context.Context, id string, draft catalog.Draft) (*catalog.Package, error) {
	args := m.Called(ctx, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Package), args.Error(1)
}

func (m *MockPackageMutationAPI) Delete(ctx context.Context, id, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

// MockMessageMutationAPI implements MessageMutationAPI for testing.
type MockMessageMutationAPI struct {
	mock.Mock
}

func (m *MockMessageMutationAPI) UpdateStatus(ctx context.Context, id string, status inbox.Status) (*inbox.Message, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbox.Message), args.Error(1)
}

// MockPermissionContext implements PermissionContext for testing.
type MockPermissionContext struct {
	mock.Mock
}

func (m *MockPermissionContext) CanPerformOperation(op bulkops.Operation, targetRole accounts.Role) bool {
	args := m.Called(op, targetRole)
	return args.Bool(0)
}

func (m *MockPermissionContext) CanManageRole(role accounts.Role) bool {
	args := m.Called(role)
	return args.Bool(0)
}

func (m *MockPermissionContext) ManageableRoles() []accounts.Role {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]accounts.Role)
}

// MockRefresher implements the bulk orchestrator's store dependency
// for testing.
type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
