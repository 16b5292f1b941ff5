package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"eduadmin/domain/contracts"
	"eduadmin/domain/listing"
)

// pageParam extracts a 1-indexed page number from the query string,
// defaulting to 1 when absent.
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, contracts.NewValidationError("page must be a positive integer, got " + raw)
	}
	return page, nil
}

// filterBody is the request payload for filter changes.
type filterBody struct {
	Filters map[string]string `json:"filters"`
}

// sortBody is the request payload for sort changes, using the
// "field:asc|desc" wire form shared with the backend.
type sortBody struct {
	Sort string `json:"sort"`
}

// parseSort decodes "field:asc|desc" into a sort predicate. An empty
// string clears sorting; a bare field name defaults to ascending.
func parseSort(raw string) (listing.Sort, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return listing.Sort{}, nil
	}
	field, dir, found := strings.Cut(raw, ":")
	if field == "" {
		return listing.Sort{}, contracts.NewValidationError("sort field must not be empty")
	}
	if !found || dir == "asc" {
		return listing.Sort{Field: field}, nil
	}
	if dir == "desc" {
		return listing.Sort{Field: field, Descending: true}, nil
	}
	return listing.Sort{}, contracts.NewValidationError("sort direction must be asc or desc, got " + dir)
}

// selectionToggleBody is the request payload for toggling one row.
type selectionToggleBody struct {
	ID string `json:"id"`
}

// selectionAllBody is the request payload for select/deselect-all.
type selectionAllBody struct {
	Selected bool `json:"selected"`
}

// searchBody is the request payload for overlay queries. Immediate
// bypasses the debounce window (enter key semantics).
type searchBody struct {
	Query     string `json:"query"`
	Immediate bool   `json:"immediate"`
}

// reasonBody is the request payload for destructive single-item
// operations.
type reasonBody struct {
	Reason string `json:"reason"`
}
