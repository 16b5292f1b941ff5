package apiclient

import (
	"context"

	"eduadmin/domain/contracts"
	"eduadmin/domain/inbox"
	"eduadmin/domain/listing"
)

// MessageAPI implements the contact-message list, search, and triage
// contracts over the backend's /contact-messages endpoints.
type MessageAPI struct {
	client *Client
}

// NewMessageAPI wraps the shared client for contact-message
// endpoints.
func NewMessageAPI(client *Client) *MessageAPI {
	return &MessageAPI{client: client}
}

type messageListPayload struct {
	Messages   []inbox.Message        `json:"messages"`
	Pagination listing.PaginationInfo `json:"pagination"`
}

// FetchPage implements contracts.ListAPI.
func (a *MessageAPI) FetchPage(ctx context.Context, page, perPage int, filters listing.Filters, sort listing.Sort) (*contracts.Page[inbox.Message], error) {
	var payload messageListPayload
	if err := a.client.get(ctx, "/contact-messages", listQuery(page, perPage, filters, sort), &payload); err != nil {
		return nil, err
	}
	return &contracts.Page[inbox.Message]{
		Items:      payload.Messages,
		Pagination: payload.Pagination,
	}, nil
}

type messageSearchPayload struct {
	Results []inbox.Message `json:"results"`
	Count   int             `json:"count"`
}

// Search implements contracts.SearchAPI.
func (a *MessageAPI) Search(ctx context.Context, query string) ([]inbox.Message, error) {
	var payload messageSearchPayload
	if err := a.client.get(ctx, "/contact-messages/search", map[string]string{"q": query}, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

type messagePayload struct {
	Message inbox.Message `json:"contact_message"`
}

// UpdateStatus implements contracts.MessageMutationAPI.
func (a *MessageAPI) UpdateStatus(ctx context.Context, id string, status inbox.Status) (*inbox.Message, error) {
	var payload messagePayload
	body := map[string]string{"status": string(status)}
	if err := a.client.put(ctx, "/contact-messages/"+id+"/status", body, &payload); err != nil {
		return nil, err
	}
	return &payload.Message, nil
}
