package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"eduadmin/application"
	"eduadmin/domain/inbox"
	"eduadmin/interfaces/web/presenters"
)

// MessageHandlers handles contact-message triage HTTP endpoints.
type MessageHandlers struct {
	messageService *application.MessageTriageService
	listPresenter  *presenters.ListPresenter
}

// NewMessageHandlers creates a new message handlers instance with required dependencies.
func NewMessageHandlers(
	messageService *application.MessageTriageService,
	listPresenter *presenters.ListPresenter,
) *MessageHandlers {
	return &MessageHandlers{
		messageService: messageService,
		listPresenter:  listPresenter,
	}
}

func (h *MessageHandlers) viewModel() *presenters.ListVM[presenters.MessageRowVM] {
	return h.listPresenter.ToMessageListVM(
		h.messageService.List().State(),
		h.messageService.Search().Snapshot(),
	)
}

// ListPage loads the requested page (a no-op when cached) and renders
// the list view model.
func (h *MessageHandlers) ListPage(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		RenderError(w, err)
		return
	}

	if err := h.messageService.List().LoadPage(r.Context(), page, false); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// SetFilters replaces the active filters and reloads page one.
func (h *MessageHandlers) SetFilters(w http.ResponseWriter, r *http.Request) {
	var body filterBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	h.messageService.List().SetFilters(body.Filters)
	if err := h.messageService.List().LoadPage(r.Context(), 1, false); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// SetSort replaces the active sort predicate and reloads page one.
func (h *MessageHandlers) SetSort(w http.ResponseWriter, r *http.Request) {
	var body sortBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	sortPred, err := parseSort(body.Sort)
	if err != nil {
		RenderError(w, err)
		return
	}

	h.messageService.List().SetSort(sortPred)
	if err := h.messageService.List().LoadPage(r.Context(), 1, false); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// Search runs an overlay query, debounced unless immediate.
func (h *MessageHandlers) Search(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	if body.Immediate {
		if err := h.messageService.Search().SearchNow(r.Context(), body.Query); err != nil {
			RenderError(w, err)
			return
		}
	} else {
		h.messageService.Search().Search(r.Context(), body.Query)
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// Refresh forces a reload of page one plus every previously cached
// page.
func (h *MessageHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.messageService.List().Refresh(r.Context()); err != nil {
		RenderError(w, err)
		return
	}
	RenderJSON(w, http.StatusOK, h.viewModel())
}

// statusBody is the request payload for triage status changes.
type statusBody struct {
	Status inbox.Status `json:"status"`
}

// SetStatus moves one message through the triage workflow.
func (h *MessageHandlers) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "messageID")

	var body statusBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	if _, err := h.messageService.SetStatus(r.Context(), id, body.Status); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}
