package apiclient

import (
	"context"

	"eduadmin/domain/accounts"
	"eduadmin/domain/bulkops"
	"eduadmin/domain/contracts"
	"eduadmin/domain/listing"
)

// UserAPI implements the user list, search, bulk, and single-item
// mutation contracts over the backend's /users endpoints.
type UserAPI struct {
	client *Client
}

// NewUserAPI wraps the shared client for user endpoints.
func NewUserAPI(client *Client) *UserAPI {
	return &UserAPI{client: client}
}

type userListPayload struct {
	Users      []accounts.User        `json:"users"`
	Pagination listing.PaginationInfo `json:"pagination"`
}

// FetchPage implements contracts.ListAPI.
func (a *UserAPI) FetchPage(ctx context.Context, page, perPage int, filters listing.Filters, sort listing.Sort) (*contracts.Page[accounts.User], error) {
	var payload userListPayload
	if err := a.client.get(ctx, "/users", listQuery(page, perPage, filters, sort), &payload); err != nil {
		return nil, err
	}
	return &contracts.Page[accounts.User]{
		Items:      payload.Users,
		Pagination: payload.Pagination,
	}, nil
}

type userSearchPayload struct {
	Results []accounts.User `json:"results"`
	Count   int             `json:"count"`
}

// Search implements contracts.SearchAPI.
func (a *UserAPI) Search(ctx context.Context, query string) ([]accounts.User, error) {
	var payload userSearchPayload
	if err := a.client.get(ctx, "/users/search", map[string]string{"q": query}, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Bulk implements contracts.BulkAPI. The whole target set travels in
// one request; the backend processes per item.
func (a *UserAPI) Bulk(ctx context.Context, req bulkops.Request) (*bulkops.Result, error) {
	var result bulkops.Result
	if err := a.client.post(ctx, "/users/bulk", req, &result); err != nil {
		return nil, err
	}
	result.Recompute()
	return &result, nil
}

type userPayload struct {
	User accounts.User `json:"user"`
}

// Update implements contracts.UserMutationAPI.
func (a *UserAPI) Update(ctx context.Context, id string, user accounts.User) (*accounts.User, error) {
	var payload userPayload
	if err := a.client.put(ctx, "/users/"+id, user, &payload); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

// Activate implements contracts.UserMutationAPI.
func (a *UserAPI) Activate(ctx context.Context, id string) (*accounts.User, error) {
	var payload userPayload
	if err := a.client.post(ctx, "/users/"+id+"/activate", nil, &payload); err != nil {
		return nil, err
	}
	return &payload.User, nil
}

// Deactivate implements contracts.UserMutationAPI. The backend treats
// DELETE as a soft-delete.
func (a *UserAPI) Deactivate(ctx context.Context, id, reason string) error {
	return a.client.delete(ctx, "/users/"+id, map[string]string{"reason": reason})
}

// ChangeRole implements contracts.UserMutationAPI.
func (a *UserAPI) ChangeRole(ctx context.Context, id string, role accounts.Role) (*accounts.User, error) {
	var payload userPayload
	body := map[string]string{"role": string(role)}
	if err := a.client.put(ctx, "/users/"+id+"/role", body, &payload); err != nil {
		return nil, err
	}
	return &payload.User, nil
}
