package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"eduadmin/application"
	"eduadmin/domain/bulkops"
	"eduadmin/domain/catalog"
	"eduadmin/interfaces/web/presenters"
)

// PackageHandlers handles course-package management HTTP endpoints.
type PackageHandlers struct {
	packageService *application.PackageAdminService
	listPresenter  *presenters.ListPresenter
	bulkPresenter  *presenters.BulkPresenter
}

// NewPackageHandlers creates a new package handlers instance with required dependencies.
func NewPackageHandlers(
	packageService *application.PackageAdminService,
	listPresenter *presenters.ListPresenter,
	bulkPresenter *presenters.BulkPresenter,
) *PackageHandlers {
	return &PackageHandlers{
		packageService: packageService,
		listPresenter:  listPresenter,
		bulkPresenter:  bulkPresenter,
	}
}

func (h *PackageHandlers) viewModel() *presenters.ListVM[presenters.PackageRowVM] {
	return h.listPresenter.ToPackageListVM(
		h.packageService.List().State(),
		h.packageService.Search().Snapshot(),
	)
}

// ListPage loads the requested page (a no-op when cached) and renders
// the list view model.
func (h *PackageHandlers) ListPage(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		RenderError(w, err)
		return
	}

	if err := h.packageService.List().LoadPage(r.Context(), page, false); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// SetFilters replaces the active filters and reloads page one.
func (h *PackageHandlers) SetFilters(w http.ResponseWriter, r *http.Request) {
	var body filterBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	h.packageService.List().SetFilters(body.Filters)
	if err := h.packageService.List().LoadPage(r.Context(), 1, false); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// SetSort replaces the active sort predicate and reloads page one.
func (h *PackageHandlers) SetSort(w http.ResponseWriter, r *http.Request) {
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

	h.packageService.List().SetSort(sortPred)
	if err := h.packageService.List().LoadPage(r.Context(), 1, false); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// ToggleSelection flips one row's membership in the selection set.
func (h *PackageHandlers) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	var body selectionToggleBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	h.packageService.List().ToggleSelection(body.ID)
	RenderJSON(w, http.StatusOK, h.viewModel())
}

// SelectAll selects or deselects every currently loaded row.
func (h *PackageHandlers) SelectAll(w http.ResponseWriter, r *http.Request) {
	var body selectionAllBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	h.packageService.List().SelectAllLoaded(body.Selected)
	RenderJSON(w, http.StatusOK, h.viewModel())
}

// ClearSelection empties the selection set.
func (h *PackageHandlers) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.packageService.List().ClearSelection()
	RenderJSON(w, http.StatusOK, h.viewModel())
}

// Search runs an overlay query, debounced unless immediate.
func (h *PackageHandlers) Search(w http.ResponseWriter, r *http.Request) {
	var body searchBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	if body.Immediate {
		if err := h.packageService.Search().SearchNow(r.Context(), body.Query); err != nil {
			RenderError(w, err)
			return
		}
	} else {
		h.packageService.Search().Search(r.Context(), body.Query)
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// Refresh forces a reload of page one plus every previously cached
// page.
func (h *PackageHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.packageService.List().Refresh(r.Context()); err != nil {
		RenderError(w, err)
		return
	}
	RenderJSON(w, http.StatusOK, h.viewModel())
}

// ExecuteBulk runs one bulk operation against the selected packages.
func (h *PackageHandlers) ExecuteBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkops.Request
	if err := DecodeJSON(r, &req); err != nil {
		RenderError(w, err)
		return
	}

	result, err := h.packageService.Bulk().Execute(r.Context(), req)
	if err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.bulkPresenter.ToBulkResultVM(result))
}

// CreatePackage adds a new course package and refreshes the list.
func (h *PackageHandlers) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var draft catalog.Draft
	if err := DecodeJSON(r, &draft); err != nil {
		RenderError(w, err)
		return
	}

	if _, err := h.packageService.CreatePackage(r.Context(), draft); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusCreated, h.viewModel())
}

// UpdatePackage edits one package in place.
func (h *PackageHandlers) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "packageID")

	var draft catalog.Draft
	if err := DecodeJSON(r, &draft); err != nil {
		RenderError(w, err)
		return
	}

	if _, err := h.packageService.UpdatePackage(r.Context(), id, draft); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}

// DeletePackage removes one package. A reason is required.
func (h *PackageHandlers) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "packageID")

	var body reasonBody
	if err := DecodeJSON(r, &body); err != nil {
		RenderError(w, err)
		return
	}

	if err := h.packageService.DeletePackage(r.Context(), id, body.Reason); err != nil {
		RenderError(w, err)
		return
	}

	RenderJSON(w, http.StatusOK, h.viewModel())
}
