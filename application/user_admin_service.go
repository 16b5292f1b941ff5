package application

import (
	"context"
	"strings"

	"eduadmin/domain/accounts"
	"eduadmin/domain/contracts"
	"eduadmin/logging"
)

// UserAdminService composes the listing core with the user mutation
// API for the user-management screen. Bulk operations run through the
// shared orchestrator; single-item mutations reconcile optimistically
// through the store's item transitions instead of a full refresh.
type UserAdminService struct {
	list   *ListService[accounts.User]
	search *SearchService[accounts.User]
	bulk   *BulkService
	api    contracts.UserMutationAPI
	perms  contracts.PermissionContext
	logger *logging.Logger
}

// NewUserAdminService wires the user-management service.
func NewUserAdminService(
	list *ListService[accounts.User],
	search *SearchService[accounts.User],
	bulk *BulkService,
	api contracts.UserMutationAPI,
	perms contracts.PermissionContext,
	logger *logging.Logger,
) *UserAdminService {
	return &UserAdminService{
		list:   list,
		search: search,
		bulk:   bulk,
		api:    api,
		perms:  perms,
		logger: logger.WithComponent("user_admin"),
	}
}

// List exposes the paginated cache store and selection tracker.
func (s *UserAdminService) List() *ListService[accounts.User] {
	return s.list
}

// Search exposes the search overlay.
func (s *UserAdminService) Search() *SearchService[accounts.User] {
	return s.search
}

// Bulk exposes the bulk operation orchestrator.
func (s *UserAdminService) Bulk() *BulkService {
	return s.bulk
}

// UpdateUser applies a single-item edit and reconciles the loaded
// collection in place.
func (s *UserAdminService) UpdateUser(ctx context.Context, id string, user accounts.User) (*accounts.User, error) {
	updated, err := s.api.Update(ctx, id, user)
	if err != nil {
		return nil, err
	}
	s.list.ApplyItemUpdate(*updated)
	return updated, nil
}

// ActivateUser re-enables one account.
func (s *UserAdminService) ActivateUser(ctx context.Context, id string) (*accounts.User, error) {
	updated, err := s.api.Activate(ctx, id)
	if err != nil {
		return nil, err
	}
	s.list.ApplyItemUpdate(*updated)
	return updated, nil
}

// DeactivateUser soft-deletes one account. A non-empty reason is
// required, matching the bulk path's rule for destructive operations.
func (s *UserAdminService) DeactivateUser(ctx context.Context, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return contracts.NewValidationError("a reason is required to deactivate an account")
	}
	if err := s.api.Deactivate(ctx, id, reason); err != nil {
		return err
	}
	if current, ok := s.list.State().ItemByID(id); ok {
		current.Active = false
		s.list.ApplyItemUpdate(current)
	}
	return nil
}

// ChangeUserRole assigns a new role to one account, gated by the
// acting principal's manageable-role set.
func (s *UserAdminService) ChangeUserRole(ctx context.Context, id string, role accounts.Role) (*accounts.User, error) {
	if !role.Valid() {
		return nil, contracts.NewValidationError("unknown role " + string(role))
	}
	if !s.perms.CanManageRole(role) {
		return nil, contracts.NewPermissionError("role " + string(role) + " is not manageable by the acting principal")
	}
	updated, err := s.api.ChangeRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.list.ApplyItemUpdate(*updated)
	return updated, nil
}
