package contracts

import (
	"context"

	"eduadmin/domain/accounts"
	"eduadmin/domain/bulkops"
	"eduadmin/domain/catalog"
	"eduadmin/domain/inbox"
	"eduadmin/domain/listing"
)

// Page is one fetched batch of items plus the backend-reported
// pagination block.
type Page[T any] struct {
	Items      []T
	Pagination listing.PaginationInfo
}

// ListAPI fetches paginated, filtered, sorted collections of one
// entity type.
type ListAPI[T any] interface {
	FetchPage(ctx context.Context, page, perPage int, filters listing.Filters, sort listing.Sort) (*Page[T], error)
}

// SearchAPI serves free-text queries for one entity type. Results are
// displayed in place of the paginated collection without touching its
// cache.
type SearchAPI[T any] interface {
	Search(ctx context.Context, query string) ([]T, error)
}

// BulkAPI dispatches one bulk request carrying the whole target set.
// The backend processes per item and reports a mixed-outcome result
// rather than all-or-nothing.
type BulkAPI interface {
	Bulk(ctx context.Context, req bulkops.Request) (*bulkops.Result, error)
}

// UserMutationAPI covers the single-item user mutations outside the
// bulk path.
type UserMutationAPI interface {
	Update(ctx context.Context, id string, user accounts.User) (*accounts.User, error)
	Activate(ctx context.Context, id string) (*accounts.User, error)
	Deactivate(ctx context.Context, id, reason string) error
	ChangeRole(ctx context.Context, id string, role accounts.Role) (*accounts.User, error)
}

// PackageMutationAPI covers the single-item package mutations.
type PackageMutationAPI interface {
	Create(ctx context.Context, draft catalog.Draft) (*catalog.Package, error)
	Update(ctx context.Context, id string, draft catalog.Draft) (*catalog.Package, error)
	Delete(ctx context.Context, id, reason string) error
}

// MessageMutationAPI covers contact-message triage transitions.
type MessageMutationAPI interface {
	UpdateStatus(ctx context.Context, id string, status inbox.Status) (*inbox.Message, error)
}

// PermissionContext answers capability questions for the acting
// principal. Implemented over the exhaustive role/operation table in
// bulkops.
type PermissionContext interface {
	CanPerformOperation(op bulkops.Operation, targetRole accounts.Role) bool
	CanManageRole(role accounts.Role) bool
	ManageableRoles() []accounts.Role
}
