package listing

import "sort"

// State is the complete list-management state for one entity type.
// Invariant: a page number appears in Cached if and only if the items
// it contributed are present in Items (tracked through PageIDs).
type State[T Item] struct {
	// Items is the aggregate ordered collection across all cached pages.
	Items []T

	// PageIDs maps a 1-indexed page number to the ordered identifiers
	// that page contributed to Items.
	PageIDs map[int][]string

	// Cached is the set of page numbers considered loaded and valid.
	Cached map[int]bool

	// Pagination is the block reported by the most recent fetch, nil
	// until the first page loads or after a filter/sort reset.
	Pagination *PaginationInfo

	Filters   Filters
	Sort      Sort
	Selection SelectionSet

	// Loading marks an in-flight page load. The store does not
	// coalesce requests; callers consult this flag before issuing a
	// duplicate call.
	Loading bool

	// LastError holds the most recent load failure. Previous data is
	// left visible on failure.
	LastError string
}

// NewState returns an empty state with no filters, sort, or selection.
func NewState[T Item]() State[T] {
	return State[T]{
		PageIDs:   map[int][]string{},
		Cached:    map[int]bool{},
		Filters:   Filters{},
		Selection: NewSelectionSet(),
	}
}

// IsCached reports whether page is in the cache-set.
func (s State[T]) IsCached(page int) bool {
	return s.Cached[page]
}

// CachedPages returns the cached page numbers in ascending order.
func (s State[T]) CachedPages() []int {
	pages := make([]int, 0, len(s.Cached))
	for p := range s.Cached {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// LoadedIDs returns the identifiers of all currently loaded items in
// collection order.
func (s State[T]) LoadedIDs() []string {
	ids := make([]string, len(s.Items))
	for i, item := range s.Items {
		ids[i] = item.ItemID()
	}
	return ids
}

// ItemByID returns the loaded item with the given identifier.
func (s State[T]) ItemByID(id string) (T, bool) {
	for _, item := range s.Items {
		if item.ItemID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
