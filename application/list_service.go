// Package application provides the services driving the management
// console: the entity-parameterized list store, the bulk operation
// orchestrator, the debounced search overlay, and the per-entity
// admin services composed from them.
package application

import (
	"context"
	"fmt"
	"sync"

	"eduadmin/domain/contracts"
	"eduadmin/domain/listing"
	"eduadmin/logging"
)

// DefaultPerPage is the page size used when none is configured.
const DefaultPerPage = 20

// ListService owns the paginated cache store, filter/sort controller,
// and selection tracker for one entity type. All state mutations flow
// through listing.Reduce; reads return snapshots, so invariants are
// enforced in one place.
type ListService[T listing.Item] struct {
	mu      sync.Mutex
	api     contracts.ListAPI[T]
	logger  *logging.Logger
	perPage int
	state   listing.State[T]
}

// NewListService creates a list service for one entity type.
func NewListService[T listing.Item](api contracts.ListAPI[T], perPage int, logger *logging.Logger) *ListService[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &ListService[T]{
		api:     api,
		logger:  logger.WithComponent("list_service"),
		perPage: perPage,
		state:   listing.NewState[T](),
	}
}

// LoadPage fetches one page unless it is already cached. A cached page
// is an idempotent no-op with zero network calls. The response
// replaces the whole collection for the first page, a forced reset, or
// an empty collection; otherwise it is appended (load-more semantics).
// On failure previous data stays visible and the error is recorded.
func (s *ListService[T]) LoadPage(ctx context.Context, page int, forceReset bool) error {
	if page < 1 {
		return contracts.NewValidationError(fmt.Sprintf("page numbers are 1-indexed, got %d", page))
	}

	s.mu.Lock()
	if !forceReset && s.state.IsCached(page) {
		s.mu.Unlock()
		return nil
	}
	replace := page == 1 || forceReset || len(s.state.Items) == 0
	s.state = listing.Reduce(s.state, listing.LoadStarted[T]{Page: page})
	filters := s.state.Filters.Clone()
	sortPred := s.state.Sort
	perPage := s.perPage
	s.mu.Unlock()

	result, err := s.api.FetchPage(ctx, page, perPage, filters, sortPred)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Error("page load failed", "page", page, "error", err)
		s.state = listing.Reduce(s.state, listing.LoadFailed[T]{Page: page, Message: err.Error()})
		return err
	}

	s.state = listing.Reduce(s.state, listing.PageLoaded[T]{
		Page:       page,
		Items:      result.Items,
		Pagination: result.Pagination,
		Replace:    replace,
	})
	return nil
}

// Refresh reconciles displayed state with the server after a mutation:
// a forced reload of page 1 followed by sequential, ascending reloads
// of every page that was cached before the refresh began. The sequence
// is not atomic; a mid-sequence failure leaves earlier pages refreshed
// and is surfaced as a partial error.
func (s *ListService[T]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	pages := s.state.CachedPages()
	s.mu.Unlock()

	if err := s.LoadPage(ctx, 1, true); err != nil {
		return fmt.Errorf("refresh page 1: %w", err)
	}
	for _, page := range pages {
		if page == 1 {
			continue
		}
		if err := s.LoadPage(ctx, page, false); err != nil {
			return fmt.Errorf("refresh stopped at page %d: %w", page, err)
		}
	}
	return nil
}

// SetFilters replaces the active filter predicate. Sentinel values
// ("all", empty string) are normalized to unset. The page cache,
// pagination, and selection are invalidated; the next LoadPage(1) is
// a full replace.
func (s *ListService[T]) SetFilters(raw map[string]string) {
	filters := listing.NormalizeFilters(raw)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = listing.Reduce(s.state, listing.FiltersChanged[T]{Filters: filters})
}

// SetSort replaces the sort predicate with the same invalidation
// behavior as SetFilters.
func (s *ListService[T]) SetSort(sortPred listing.Sort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = listing.Reduce(s.state, listing.SortChanged[T]{Sort: sortPred})
}

// ToggleSelection flips one identifier's selection membership.
func (s *ListService[T]) ToggleSelection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = listing.Reduce(s.state, listing.SelectionToggled[T]{ID: id})
}

// SelectAllLoaded selects exactly the currently loaded items when
// selected is true (not everything matching the filter server-side),
// and clears the selection when false.
func (s *ListService[T]) SelectAllLoaded(selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = listing.Reduce(s.state, listing.AllLoadedSelected[T]{Selected: selected})
}

// ClearSelection empties the selection without touching the cache.
func (s *ListService[T]) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = listing.Reduce(s.state, listing.SelectionCleared[T]{})
}

// ApplyItemUpdate replaces one loaded item in place. Used by
// single-item mutations for optimistic reconciliation instead of a
// full refresh.
func (s *ListService[T]) ApplyItemUpdate(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = listing.Reduce(s.state, listing.ItemUpdated[T]{Item: item})
}

// RemoveItem drops one item from the collection and its page.
func (s *ListService[T]) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = listing.Reduce(s.state, listing.ItemRemoved[T]{ID: id})
}

// State returns a snapshot of the full listing state.
func (s *ListService[T]) State() listing.State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Items returns the loaded collection in display order.
func (s *ListService[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.state.Items...)
}

// Pagination returns the most recent backend-reported pagination, or
// nil before the first load.
func (s *ListService[T]) Pagination() *listing.PaginationInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Pagination == nil {
		return nil
	}
	p := *s.state.Pagination
	return &p
}

// IsSelected reports whether id is currently selected.
func (s *ListService[T]) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Selection.Has(id)
}

// SelectionCount returns the number of selected identifiers.
func (s *ListService[T]) SelectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Selection.Count()
}

// SelectedIDs returns the selected identifiers in lexical order.
func (s *ListService[T]) SelectedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Selection.IDs()
}

// IsLoading reports whether a page load is in flight. Callers consult
// this before issuing a duplicate call; the store does not coalesce
// requests.
func (s *ListService[T]) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Loading
}

// LastError returns the most recent load failure message, empty after
// a successful load.
func (s *ListService[T]) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LastError
}

// CachedPages returns the cache-set in ascending order.
func (s *ListService[T]) CachedPages() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CachedPages()
}

// Filters returns the active filter predicate.
func (s *ListService[T]) Filters() listing.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Filters.Clone()
}
