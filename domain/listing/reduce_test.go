package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   string
	Name string
}

func (t testItem) ItemID() string { return t.ID }

func items(ids ...string) []testItem {
	out := make([]testItem, len(ids))
	for i, id := range ids {
		out[i] = testItem{ID: id, Name: "item " + id}
	}
	return out
}

func pageLoaded(page int, replace bool, ids ...string) PageLoaded[testItem] {
	return PageLoaded[testItem]{
		Page:  page,
		Items: items(ids...),
		Pagination: PaginationInfo{
			Page:    page,
			Pages:   3,
			PerPage: len(ids),
			Total:   len(ids) * 3,
			HasNext: page < 3,
			HasPrev: page > 1,
		},
		Replace: replace,
	}
}

func TestReduce_PageLoaded_ReplaceResetsCollection(t *testing.T) {
	state := NewState[testItem]()
	state = Reduce(state, pageLoaded(1, true, "a", "b"))
	state = Reduce(state, pageLoaded(2, false, "c", "d"))

	// A replace (filter change, forced refresh) swaps the whole
	// collection and cache-set for just the new page.
	state = Reduce(state, pageLoaded(1, true, "x", "y"))

	assert.Equal(t, items("x", "y"), state.Items)
	assert.Equal(t, map[int]bool{1: true}, state.Cached)
	assert.Equal(t, map[int][]string{1: {"x", "y"}}, state.PageIDs)
	require.NotNil(t, state.Pagination)
	assert.Equal(t, 1, state.Pagination.Page)
	assert.False(t, state.Loading)
	assert.Empty(t, state.LastError)
}

func TestReduce_PageLoaded_AppendAccumulatesPages(t *testing.T) {
	state := NewState[testItem]()
	state = Reduce(state, pageLoaded(1, true, "a", "b"))
	state = Reduce(state, pageLoaded(2, false, "c", "d"))

	assert.Equal(t, items("a", "b", "c", "d"), state.Items)
	assert.True(t, state.IsCached(1))
	assert.True(t, state.IsCached(2))
	assert.Equal(t, []int{1, 2}, state.CachedPages())
	require.NotNil(t, state.Pagination)
	assert.Equal(t, 2, state.Pagination.Page)
}

func TestReduce_PageLoaded_DoesNotMutatePriorState(t *testing.T) {
	before := NewState[testItem]()
	before = Reduce(before, pageLoaded(1, true, "a", "b"))

	after := Reduce(before, pageLoaded(2, false, "c"))

	// The snapshot taken before the transition must be unaffected.
	assert.Equal(t, items("a", "b"), before.Items)
	assert.False(t, before.IsCached(2))
	assert.True(t, after.IsCached(2))
}

func TestReduce_LoadFailed_KeepsPreviousData(t *testing.T) {
	state := NewState[testItem]()
	state = Reduce(state, pageLoaded(1, true, "a", "b"))
	state = Reduce(state, LoadStarted[testItem]{Page: 2})
	assert.True(t, state.Loading)

	state = Reduce(state, LoadFailed[testItem]{Page: 2, Message: "backend unreachable"})

	assert.Equal(t, items("a", "b"), state.Items)
	assert.False(t, state.Loading)
	assert.Equal(t, "backend unreachable", state.LastError)
}

func TestReduce_FiltersChanged_InvalidatesCacheAndSelection(t *testing.T) {
	state := NewState[testItem]()
	state = Reduce(state, pageLoaded(1, true, "a", "b"))
	state = Reduce(state, pageLoaded(2, false, "c"))
	state = Reduce(state, SelectionToggled[testItem]{ID: "a"})

	state = Reduce(state, FiltersChanged[testItem]{Filters: Filters{"role": "admin"}})

	assert.Empty(t, state.Items)
	assert.Empty(t, state.CachedPages())
	assert.Nil(t, state.Pagination)
	assert.Zero(t, state.Selection.Count())
	assert.Equal(t, Filters{"role": "admin"}, state.Filters)
}

func TestReduce_SortChanged_InvalidatesCacheAndSelection(t *testing.T) {
	state := NewState[testItem]()
	state = Reduce(state, pageLoaded(1, true, "a", "b"))
	state = Reduce(state, SelectionToggled[testItem]{ID: "b"})

	state = Reduce(state, SortChanged[testItem]{Sort: Sort{Field: "name", Descending: true}})

	assert.Empty(t, state.Items)
	assert.Empty(t, state.CachedPages())
	assert.Zero(t, state.Selection.Count())
	assert.Equal(t, Sort{Field: "name", Descending: true}, state.Sort)
}

func TestReduce_SelectionToggled_FlipsMembership(t *testing.T) {
	state := NewState[testItem]()
	state = Reduce(state, pageLoaded(1, true, "a", "b"))

	state = Reduce(state, SelectionToggled[testItem]{ID: "a"})
	assert.True(t, state.Selection.Has("a"))

	state = Reduce(state, SelectionToggled[testItem]{ID: "a"})
	assert.False(t, state.Selection.Has("a"))
}

func TestReduce_AllLoadedSelected(t *testing.T) {
	state := NewState[testItem]()
	state = Reduce(state, pageLoaded(1, true, "a", "b"))
	state = Reduce(state, pageLoaded(2, false, "c"))

	state = Reduce(state, AllLoadedSelected[testItem]{Selected: true})
	assert.Equal(t, []string{"a", "b", "c"}, state.Selection.IDs())

	state = Reduce(state, AllLoadedSelected[testItem]{Selected: false})
	assert.Zero(t, state.Selection.Count())
}

func TestReduce_ItemUpdated_ReplacesInPlace(t *testing.T) {
	state := NewState[testItem]()
	state = Reduce(state, pageLoaded(1, true, "a", "b"))

	state = Reduce(state, ItemUpdated[testItem]{Item: testItem{ID: "b", Name: "renamed"}})

	updated, ok := state.ItemByID("b")
	require.True(t, ok)
	assert.Equal(t, "renamed", updated.Name)
	assert.Len(t, state.Items, 2)
}

func TestReduce_ItemRemoved_LeavesSelectionAlone(t *testing.T) {
	state := NewState[testItem]()
	state = Reduce(state, pageLoaded(1, true, "a", "b"))
	state = Reduce(state, SelectionToggled[testItem]{ID: "b"})

	state = Reduce(state, ItemRemoved[testItem]{ID: "b"})

	assert.Equal(t, items("a"), state.Items)
	assert.Equal(t, []string{"a"}, state.PageIDs[1])
	// Selection decisions are the operator's; the removed id stays
	// selected until they clear it.
	assert.True(t, state.Selection.Has("b"))
}
