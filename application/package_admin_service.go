package application

import (
	"context"
	"strings"

	"eduadmin/domain/catalog"
	"eduadmin/domain/contracts"
	"eduadmin/logging"
)

// PackageAdminService composes the listing core with the package
// mutation API for the package-management screen. Same list/bulk/
// selection pattern as users, parameterized by entity rather than
// duplicated.
type PackageAdminService struct {
	list   *ListService[catalog.Package]
	search *SearchService[catalog.Package]
	bulk   *BulkService
	api    contracts.PackageMutationAPI
	logger *logging.Logger
}

// NewPackageAdminService wires the package-management service.
func NewPackageAdminService(
	list *ListService[catalog.Package],
	search *SearchService[catalog.Package],
	bulk *BulkService,
	api contracts.PackageMutationAPI,
	logger *logging.Logger,
) *PackageAdminService {
	return &PackageAdminService{
		list:   list,
		search: search,
		bulk:   bulk,
		api:    api,
		logger: logger.WithComponent("package_admin"),
	}
}

// List exposes the paginated cache store and selection tracker.
func (s *PackageAdminService) List() *ListService[catalog.Package] {
	return s.list
}

// Search exposes the search overlay.
func (s *PackageAdminService) Search() *SearchService[catalog.Package] {
	return s.search
}

// Bulk exposes the bulk operation orchestrator.
func (s *PackageAdminService) Bulk() *BulkService {
	return s.bulk
}

// CreatePackage adds a new package. The collection is re-fetched
// rather than patched: the backend decides placement under the active
// sort.
func (s *PackageAdminService) CreatePackage(ctx context.Context, draft catalog.Draft) (*catalog.Package, error) {
	if details := validateDraft(draft); len(details) > 0 {
		return nil, contracts.NewValidationError(details...)
	}
	created, err := s.api.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	if err := s.list.Refresh(ctx); err != nil {
		s.logger.Warn("refresh after package create incomplete", "error", err)
	}
	return created, nil
}

// UpdatePackage applies a single-item edit and reconciles the loaded
// collection in place.
func (s *PackageAdminService) UpdatePackage(ctx context.Context, id string, draft catalog.Draft) (*catalog.Package, error) {
	if details := validateDraft(draft); len(details) > 0 {
		return nil, contracts.NewValidationError(details...)
	}
	updated, err := s.api.Update(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	s.list.ApplyItemUpdate(*updated)
	return updated, nil
}

// DeletePackage removes one package. A non-empty reason is required,
// matching the bulk path's rule for destructive operations.
func (s *PackageAdminService) DeletePackage(ctx context.Context, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return contracts.NewValidationError("a reason is required to delete a package")
	}
	if err := s.api.Delete(ctx, id, reason); err != nil {
		return err
	}
	s.list.RemoveItem(id)
	return nil
}

func validateDraft(draft catalog.Draft) []string {
	var details []string
	if strings.TrimSpace(draft.Name) == "" {
		details = append(details, "package name is required")
	}
	if draft.Price < 0 {
		details = append(details, "price cannot be negative")
	}
	if draft.Coins < 0 {
		details = append(details, "coin amount cannot be negative")
	}
	if draft.DurationDays < 0 {
		details = append(details, "duration cannot be negative")
	}
	return details
}
