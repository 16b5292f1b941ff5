package apiclient

import (
	"context"

	"eduadmin/domain/bulkops"
	"eduadmin/domain/catalog"
	"eduadmin/domain/contracts"
	"eduadmin/domain/listing"
)

// PackageAPI implements the package list, search, bulk, and mutation
// contracts over the backend's /packages endpoints. Same pagination,
// filter, and bulk shape as users with package fields.
type PackageAPI struct {
	client *Client
}

// NewPackageAPI wraps the shared client for package endpoints.
func NewPackageAPI(client *Client) *PackageAPI {
	return &PackageAPI{client: client}
}

type packageListPayload struct {
	Packages   []catalog.Package      `json:"packages"`
	Pagination listing.PaginationInfo `json:"pagination"`
}

// FetchPage implements contracts.ListAPI.
func (a *PackageAPI) FetchPage(ctx context.Context, page, perPage int, filters listing.Filters, sort listing.Sort) (*contracts.Page[catalog.Package], error) {
	var payload packageListPayload
	if err := a.client.get(ctx, "/packages", listQuery(page, perPage, filters, sort), &payload); err != nil {
		return nil, err
	}
	return &contracts.Page[catalog.Package]{
		Items:      payload.Packages,
		Pagination: payload.Pagination,
	}, nil
}

type packageSearchPayload struct {
	Results []catalog.Package `json:"results"`
	Count   int               `json:"count"`
}

// Search implements contracts.SearchAPI.
func (a *PackageAPI) Search(ctx context.Context, query string) ([]catalog.Package, error) {
	var payload packageSearchPayload
	if err := a.client.get(ctx, "/packages/search", map[string]string{"q": query}, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Bulk implements contracts.BulkAPI.
func (a *PackageAPI) Bulk(ctx context.Context, req bulkops.Request) (*bulkops.Result, error) {
	var result bulkops.Result
	if err := a.client.post(ctx, "/packages/bulk", req, &result); err != nil {
		return nil, err
	}
	result.Recompute()
	return &result, nil
}

type packagePayload struct {
	Package catalog.Package `json:"package"`
}

// Create implements contracts.PackageMutationAPI.
func (a *PackageAPI) Create(ctx context.Context, draft catalog.Draft) (*catalog.Package, error) {
	var payload packagePayload
	if err := a.client.post(ctx, "/packages", draft, &payload); err != nil {
		return nil, err
	}
	return &payload.Package, nil
}

// Update implements contracts.PackageMutationAPI.
func (a *PackageAPI) Update(ctx context.Context, id string, draft catalog.Draft) (*catalog.Package, error) {
	var payload packagePayload
	if err := a.client.put(ctx, "/packages/"+id, draft, &payload); err != nil {
		return nil, err
	}
	return &payload.Package, nil
}

// Delete implements contracts.PackageMutationAPI.
func (a *PackageAPI) Delete(ctx context.Context, id, reason string) error {
	return a.client.delete(ctx, "/packages/"+id, map[string]string{"reason": reason})
}
