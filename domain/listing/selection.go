package listing

import "sort"

// SelectionSet is a set of selected item identifiers. It is decoupled
// from which pages are currently loaded: an identifier may stay
// selected after its page is evicted from cache. Mutating methods
// return a new set so reducer transitions stay pure.
type SelectionSet map[string]struct{}

// NewSelectionSet returns an empty selection.
func NewSelectionSet() SelectionSet {
	return SelectionSet{}
}

// Has reports whether id is selected.
func (s SelectionSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Count returns the number of selected identifiers.
func (s SelectionSet) Count() int {
	return len(s)
}

// IDs returns the selected identifiers in lexical order.
func (s SelectionSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WithToggled returns a copy of the set with id's membership flipped.
func (s SelectionSet) WithToggled(id string) SelectionSet {
	out := s.clone()
	if _, ok := out[id]; ok {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}

// WithAll returns a selection holding exactly the given identifiers.
func (s SelectionSet) WithAll(ids []string) SelectionSet {
	out := make(SelectionSet, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func (s SelectionSet) clone() SelectionSet {
	out := make(SelectionSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
