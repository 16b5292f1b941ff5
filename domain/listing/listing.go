// Package listing holds the entity-agnostic list-management core: a
// page-indexed item cache, filter/sort predicate, and selection set,
// expressed as a pure reducer over an immutable state value.
package listing

import "strings"

// Item is the constraint for entities managed by the listing core.
// Implementations must expose a stable unique identifier.
type Item interface {
	ItemID() string
}

// PaginationInfo mirrors the pagination block reported by the backend.
// It is never locally computed beyond what the last fetch returned.
type PaginationInfo struct {
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// Filters maps filter keys (role, provider, active, search text) to
// values. Unset keys are absent from the map and never leave the
// process in an outgoing request.
type Filters map[string]string

// NormalizeFilters converts raw UI control values into canonical
// filters. Empty strings and the "all" sentinel mean unset and are
// dropped.
func NormalizeFilters(raw map[string]string) Filters {
	f := Filters{}
	for key, value := range raw {
		value = strings.TrimSpace(value)
		if value == "" || strings.EqualFold(value, "all") {
			continue
		}
		f[key] = value
	}
	return f
}

// Clone returns an independent copy of the filter map.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Equal reports whether two filter maps hold the same keys and values.
func (f Filters) Equal(other Filters) bool {
	if len(f) != len(other) {
		return false
	}
	for k, v := range f {
		if other[k] != v {
			return false
		}
	}
	return true
}

// Sort describes the active sort predicate. The zero value means
// backend-default ordering.
type Sort struct {
	Field      string
	Descending bool
}

// IsZero reports whether no explicit sort is active.
func (s Sort) IsZero() bool {
	return s.Field == ""
}

// Param renders the sort as a "field:direction" request parameter.
func (s Sort) Param() string {
	if s.IsZero() {
		return ""
	}
	direction := "asc"
	if s.Descending {
		direction = "desc"
	}
	return s.Field + ":" + direction
}
