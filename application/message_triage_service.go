package application

import (
	"context"

	"eduadmin/domain/contracts"
	"eduadmin/domain/inbox"
	"eduadmin/logging"
)

// MessageTriageService drives the contact-message triage screen: the
// same paginated/filtered listing core, plus status transitions.
type MessageTriageService struct {
	list   *ListService[inbox.Message]
	search *SearchService[inbox.Message]
	api    contracts.MessageMutationAPI
	logger *logging.Logger
}

// NewMessageTriageService wires the triage service.
func NewMessageTriageService(
	list *ListService[inbox.Message],
	search *SearchService[inbox.Message],
	api contracts.MessageMutationAPI,
	logger *logging.Logger,
) *MessageTriageService {
	return &MessageTriageService{
		list:   list,
		search: search,
		api:    api,
		logger: logger.WithComponent("message_triage"),
	}
}

// List exposes the paginated cache store.
func (s *MessageTriageService) List() *ListService[inbox.Message] {
	return s.list
}

// Search exposes the search overlay.
func (s *MessageTriageService) Search() *SearchService[inbox.Message] {
	return s.search
}

// SetStatus transitions one message's triage state and reconciles the
// loaded collection in place.
func (s *MessageTriageService) SetStatus(ctx context.Context, id string, status inbox.Status) (*inbox.Message, error) {
	if !status.Valid() {
		return nil, contracts.NewValidationError("unknown message status " + string(status))
	}
	updated, err := s.api.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.list.ApplyItemUpdate(*updated)
	return updated, nil
}
