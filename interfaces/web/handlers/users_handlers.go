package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"eduadmin/application"
	"eduadmin/domain/accounts"
	"eduadmin/domain/bulkops"
	"eduadmin/interfaces/web/presenters"
)

// UserHandlers handles user management HTTP endpoints.
// Orchestrates between the user admin service and presentation logic.
type UserHandlers struct {
	userService   *application.UserAdminService
	listPresenter *presenters.ListPresenter
	bulkPresenter *presenters.BulkPresenter
}

// NewUserHandlers creates a new user handlers instance with required dependencies.
func NewUserHandlers(
	userService *application.UserAdminService,
	listPresenter *presenters.ListPresenter,
	bulkPresenter *presenters.BulkPresenter,
) *UserHandlers {
	return &UserHandlers{
		userService:   userService,
		listPresenter: listPresenter,
		bulkPresenter: bulkPresenter,
	}
}

// viewModel builds the current list view model from store and overlay
// state.
func (h *UserHandlers) viewModel() *presenters.ListVM[presenters.UserRowVM] {
	return h.listPresenter.ToUserListVM(
		h.userService.List().State(),
		h.userService.Search().Snapshot(),
	)
}

// ListPage loads the requested page (a no-op when cached) and renders
// the list view model.
func (h *UserHandlers) ListPage(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		RenderError(w, err)
		return
	}

	if err := h.userService.List().LoadPage(r.Context(), page, false); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// SetFilters replaces the active filters, invalidating the page cache,
// then loads the first page under the new predicate.
func (h *UserHandlers) SetFilters(w http.ResponseWriter, r *http.Request) {
	var body filterBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	h.userService.List().SetFilters(body.Filters)
	if err := h.userService.List().LoadPage(r.Context(), 1, false); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// SetSort replaces the active sort predicate and reloads page one.
func (h *UserHandlers) SetSort(w http.ResponseWriter, r *http.Request) {
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

	h.userService.List().SetSort(sortPred)
	if err := h.userService.List().LoadPage(r.Context(), 1, false); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// ToggleSelection flips one row's membership in the selection set.
func (h *UserHandlers) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	var body selectionToggleBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	h.userService.List().ToggleSelection(body.ID)
	RenderJSON(w, http.StatusOK, h.viewModel())
}

// SelectAll selects or deselects every currently loaded row.
func (h *UserHandlers) SelectAll(w http.ResponseWriter, r *http.Request) {
	var body selectionAllBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	h.userService.List().SelectAllLoaded(body.Selected)
	RenderJSON(w, http.StatusOK, h.viewModel())
}

// ClearSelection empties the selection set.
func (h *UserHandlers) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.userService.List().ClearSelection()
	RenderJSON(w, http.StatusOK, h.viewModel())
}

// Search runs an overlay query. Immediate queries execute
// synchronously; otherwise the query is debounced and the current
// (possibly stale) snapshot is returned right away.
func (h *UserHandlers) Search(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	if body.Immediate {
		if err := h.userService.Search().SearchNow(r.Context(), body.Query); err != nil {
			RenderError(w, err)
			return
		}
	} else {
		h.userService.Search().Search(r.Context(), body.Query)
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// Refresh forces a reload of page one plus every previously cached
// page.
func (h *UserHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.List().Refresh(r.Context()); err != nil {
		RenderError(w, err)
		return
	}
	RenderJSON(w, http.StatusOK, h.viewModel())
}

// ExecuteBulk runs one bulk operation against the selected accounts.
func (h *UserHandlers) ExecuteBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkops.Request
	if err := DecodeJSON(r, &req); err != nil {
		RenderError(w, err)
		return
	}

	result, err := h.userService.Bulk().Execute(r.Context(), req)
	if err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.bulkPresenter.ToBulkResultVM(result))
}

// UpdateUser edits one account in place.
func (h *UserHandlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var user accounts.User
	if err := DecodeJSON(r, &user); err != nil {
		RenderError(w, err)
		return
	}

	if _, err := h.userService.UpdateUser(r.Context(), id, user); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// ActivateUser re-enables one account.
func (h *UserHandlers) ActivateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	if _, err := h.userService.ActivateUser(r.Context(), id); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// DeactivateUser soft-deletes one account. A reason is required.
func (h *UserHandlers) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var body reasonBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	if err := h.userService.DeactivateUser(r.Context(), id, body.Reason); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// roleBody is the request payload for role changes.
type roleBody struct {
	Role accounts.Role `json:"role"`
}

// ChangeUserRole assigns a new role to one account.
func (h *UserHandlers) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var body roleBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	if _, err := h.userService.ChangeUserRole(r.Context(), id, body.Role); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}
