package listing

// Action is the closed set of transitions accepted by Reduce. Side
// effects (network fetches) happen outside the reducer; their results
// are fed back in as further actions.
type Action[T Item] interface {
	isAction()
}

// LoadStarted marks a page load as in flight.
type LoadStarted[T Item] struct {
	Page int
}

// PageLoaded records a successful fetch. Replace indicates whole-
// collection replacement (first load, filter change, forced refresh);
// otherwise the page is appended to the aggregate collection.
type PageLoaded[T Item] struct {
	Page       int
	Items      []T
	Pagination PaginationInfo
	Replace    bool
}

// LoadFailed records a fetch failure. Cached data is left untouched.
type LoadFailed[T Item] struct {
	Page    int
	Message string
}

// FiltersChanged replaces the filter predicate and invalidates the
// page cache, pagination, and selection.
type FiltersChanged[T Item] struct {
	Filters Filters
}

// SortChanged replaces the sort predicate with the same invalidation
// behavior as FiltersChanged: order changes invalidate page-index
// meaning.
type SortChanged[T Item] struct {
	Sort Sort
}

// SelectionToggled flips membership of one identifier.
type SelectionToggled[T Item] struct {
	ID string
}

// AllLoadedSelected sets the selection to exactly the identifiers of
// all currently loaded items when Selected is true, and clears it
// when false.
type AllLoadedSelected[T Item] struct {
	Selected bool
}

// SelectionCleared empties the selection without touching the cache.
type SelectionCleared[T Item] struct{}

// ItemUpdated replaces the loaded item carrying the same identifier.
type ItemUpdated[T Item] struct {
	Item T
}

// ItemRemoved drops an item from the collection and its page. The
// selection is deliberately not pruned; clearing it is the caller's
// decision.
type ItemRemoved[T Item] struct {
	ID string
}

func (LoadStarted[T]) isAction()       {}
func (PageLoaded[T]) isAction()        {}
func (LoadFailed[T]) isAction()        {}
func (FiltersChanged[T]) isAction()    {}
func (SortChanged[T]) isAction()       {}
func (SelectionToggled[T]) isAction()  {}
func (AllLoadedSelected[T]) isAction() {}
func (SelectionCleared[T]) isAction()  {}
func (ItemUpdated[T]) isAction()       {}
func (ItemRemoved[T]) isAction()       {}
