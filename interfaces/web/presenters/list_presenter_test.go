package presenters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduadmin/application"
	"eduadmin/domain/accounts"
	"eduadmin/domain/catalog"
	"eduadmin/domain/inbox"
	"eduadmin/domain/listing"
	"eduadmin/test/helpers"
)

func userState(testData *helpers.TestData) listing.State[accounts.User] {
	state := listing.NewState[accounts.User]()
	page := testData.UserPage(1, 2,
		testData.SimpleUser("u1", "alice"),
		testData.SimpleUser("u2", "bob"))
	state = listing.Reduce(state, listing.PageLoaded[accounts.User]{
		Page:       1,
		Items:      page.Items,
		Pagination: page.Pagination,
		Replace:    true,
	})
	return listing.Reduce(state, listing.SelectionToggled[accounts.User]{ID: "u2"})
}

func TestListPresenter_ToUserListVM_ListMode(t *testing.T) {
	testData := helpers.NewTestData()
	presenter := NewListPresenter()

	vm := presenter.ToUserListVM(userState(testData), application.SearchState[accounts.User]{})

	assert.Equal(t, "list", vm.Mode)
	require.Len(t, vm.Rows, 2)
	assert.Equal(t, "u1", vm.Rows[0].ID)
	assert.False(t, vm.Rows[0].Selected)
	assert.True(t, vm.Rows[1].Selected)
	assert.Equal(t, 1, vm.SelectedCount)
	assert.Equal(t, []int{1}, vm.CachedPages)
	require.NotNil(t, vm.Pagination)
	assert.Equal(t, 1, vm.Pagination.Page)
	assert.Equal(t, 2, vm.Pagination.Pages)
	assert.Equal(t, "2025-01-15T09:00:00Z", vm.Rows[0].CreatedAt)
	assert.Empty(t, vm.Rows[0].LastLogin)
}

func TestListPresenter_ToUserListVM_SearchModeShadowsList(t *testing.T) {
	testData := helpers.NewTestData()
	presenter := NewListPresenter()

	search := application.SearchState[accounts.User]{
		Query:   "carol",
		Results: []accounts.User{testData.SimpleUser("u9", "carol")},
	}
	vm := presenter.ToUserListVM(userState(testData), search)

	assert.Equal(t, "search", vm.Mode)
	require.Len(t, vm.Rows, 1)
	assert.Equal(t, "u9", vm.Rows[0].ID)
	// Search results are unpaginated; the pager disappears.
	assert.Nil(t, vm.Pagination)
	assert.Equal(t, "carol", vm.SearchQuery)
	// The underlying cache and selection are untouched.
	assert.Equal(t, []int{1}, vm.CachedPages)
	assert.Equal(t, 1, vm.SelectedCount)
}

func TestListPresenter_ToUserListVM_SurfacesLoadError(t *testing.T) {
	state := listing.NewState[accounts.User]()
	state = listing.Reduce(state, listing.LoadFailed[accounts.User]{Page: 1, Message: "backend unreachable"})

	vm := NewListPresenter().ToUserListVM(state, application.SearchState[accounts.User]{})

	assert.Equal(t, "backend unreachable", vm.Error)
	assert.Empty(t, vm.Rows)
	assert.Nil(t, vm.Pagination)
}

func TestListPresenter_ToMessageListVM(t *testing.T) {
	testData := helpers.NewTestData()
	page := testData.MessagePage(1, 1, testData.SimpleMessage("m1", inbox.StatusNew))

	state := listing.NewState[inbox.Message]()
	state = listing.Reduce(state, listing.PageLoaded[inbox.Message]{
		Page:       1,
		Items:      page.Items,
		Pagination: page.Pagination,
		Replace:    true,
	})

	vm := NewListPresenter().ToMessageListVM(state, application.SearchState[inbox.Message]{})

	require.Len(t, vm.Rows, 1)
	assert.Equal(t, "m1", vm.Rows[0].ID)
	assert.Equal(t, "new", vm.Rows[0].Status)
	assert.Equal(t, "Sender m1", vm.Rows[0].SenderName)
}

func TestListPresenter_ToPackageListVM(t *testing.T) {
	testData := helpers.NewTestData()
	page := testData.PackagePage(1, 1, testData.SimplePackage("p1", "IELTS Prep"))

	state := listing.NewState[catalog.Package]()
	state = listing.Reduce(state, listing.PageLoaded[catalog.Package]{
		Page:       1,
		Items:      page.Items,
		Pagination: page.Pagination,
		Replace:    true,
	})
	state = listing.Reduce(state, listing.SelectionToggled[catalog.Package]{ID: "p1"})

	vm := NewListPresenter().ToPackageListVM(state, application.SearchState[catalog.Package]{})

	require.Len(t, vm.Rows, 1)
	assert.Equal(t, "IELTS Prep", vm.Rows[0].Name)
	assert.Equal(t, 49.90, vm.Rows[0].Price)
	assert.Equal(t, 500, vm.Rows[0].Coins)
	assert.True(t, vm.Rows[0].Selected)
}
