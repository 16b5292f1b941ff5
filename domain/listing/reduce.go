package listing

// Reduce applies one action to the state and returns the next state.
// It is pure: the input state is never mutated, so callers can hold
// snapshots across transitions.
func Reduce[T Item](s State[T], action Action[T]) State[T] {
	switch a := action.(type) {
	case LoadStarted[T]:
		s.Loading = true
		return s

	case PageLoaded[T]:
		return reducePageLoaded(s, a)

	case LoadFailed[T]:
		s.Loading = false
		s.LastError = a.Message
		return s

	case FiltersChanged[T]:
		s = resetCache(s)
		s.Filters = a.Filters.Clone()
		return s

	case SortChanged[T]:
		s = resetCache(s)
		s.Sort = a.Sort
		return s

	case SelectionToggled[T]:
		s.Selection = s.Selection.WithToggled(a.ID)
		return s

	case AllLoadedSelected[T]:
		if a.Selected {
			s.Selection = s.Selection.WithAll(s.LoadedIDs())
		} else {
			s.Selection = NewSelectionSet()
		}
		return s

	case SelectionCleared[T]:
		s.Selection = NewSelectionSet()
		return s

	case ItemUpdated[T]:
		s.Items = replaceItem(s.Items, a.Item)
		return s

	case ItemRemoved[T]:
		return reduceItemRemoved(s, a.ID)

	default:
		return s
	}
}

func reducePageLoaded[T Item](s State[T], a PageLoaded[T]) State[T] {
	pagination := a.Pagination
	ids := make([]string, len(a.Items))
	for i, item := range a.Items {
		ids[i] = item.ItemID()
	}

	if a.Replace {
		s.Items = append([]T(nil), a.Items...)
		s.PageIDs = map[int][]string{a.Page: ids}
		s.Cached = map[int]bool{a.Page: true}
	} else {
		s.Items = append(append([]T(nil), s.Items...), a.Items...)
		s.PageIDs = clonePageIDs(s.PageIDs)
		s.PageIDs[a.Page] = ids
		s.Cached = cloneCached(s.Cached)
		s.Cached[a.Page] = true
	}

	s.Pagination = &pagination
	s.Loading = false
	s.LastError = ""
	return s
}

func reduceItemRemoved[T Item](s State[T], id string) State[T] {
	items := make([]T, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ItemID() != id {
			items = append(items, item)
		}
	}
	s.Items = items

	pageIDs := make(map[int][]string, len(s.PageIDs))
	for page, ids := range s.PageIDs {
		kept := make([]string, 0, len(ids))
		for _, existing := range ids {
			if existing != id {
				kept = append(kept, existing)
			}
		}
		pageIDs[page] = kept
	}
	s.PageIDs = pageIDs
	return s
}

// resetCache empties the collection, cache-set, pagination, selection,
// and error. Filtered result sets are not a subset of cached pages, so
// partial cache reuse across predicate changes is not attempted.
func resetCache[T Item](s State[T]) State[T] {
	s.Items = nil
	s.PageIDs = map[int][]string{}
	s.Cached = map[int]bool{}
	s.Pagination = nil
	s.Selection = NewSelectionSet()
	s.Loading = false
	s.LastError = ""
	return s
}

func replaceItem[T Item](items []T, updated T) []T {
	out := append([]T(nil), items...)
	for i, item := range out {
		if item.ItemID() == updated.ItemID() {
			out[i] = updated
			break
		}
	}
	return out
}

func clonePageIDs(in map[int][]string) map[int][]string {
	out := make(map[int][]string, len(in))
	for page, ids := range in {
		out[page] = ids
	}
	return out
}

func cloneCached(in map[int]bool) map[int]bool {
	out := make(map[int]bool, len(in))
	for page, cached := range in {
		out[page] = cached
	}
	return out
}
