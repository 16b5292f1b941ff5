package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eduadmin/domain/accounts"
	"eduadmin/domain/listing"
	"eduadmin/logging"
	"eduadmin/test/helpers"
	"eduadmin/test/mocks"
)

func newUserListService(api *mocks.MockListAPI[accounts.User]) *ListService[accounts.User] {
	return NewListService[accounts.User](api, 2, logging.NewLogger(logging.DefaultConfig()))
}

func TestListService_LoadPage_CachedPageIsIdempotent(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	testData := helpers.NewTestData()
	service := newUserListService(api)

	page := testData.UserPage(1, 3, testData.SimpleUser("u1", "alice"), testData.SimpleUser("u2", "bob"))
	api.On("FetchPage", mock.Anything, 1, 2, mock.Anything, mock.Anything).Return(page, nil).Once()

	require.NoError(t, service.LoadPage(context.Background(), 1, false))

	// Second and third requests for the same page hit the cache and
	// make no network call.
	require.NoError(t, service.LoadPage(context.Background(), 1, false))
	require.NoError(t, service.LoadPage(context.Background(), 1, false))

	assert.Len(t, service.Items(), 2)
	api.AssertExpectations(t)
	api.AssertNumberOfCalls(t, "FetchPage", 1)
}

func TestListService_LoadPage_AppendsSubsequentPages(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	testData := helpers.NewTestData()
	service := newUserListService(api)

	api.On("FetchPage", mock.Anything, 1, 2, mock.Anything, mock.Anything).
		Return(testData.UserPage(1, 2, testData.SimpleUser("u1", "alice"), testData.SimpleUser("u2", "bob")), nil).Once()
	api.On("FetchPage", mock.Anything, 2, 2, mock.Anything, mock.Anything).
		Return(testData.UserPage(2, 2, testData.SimpleUser("u3", "carol")), nil).Once()

	require.NoError(t, service.LoadPage(context.Background(), 1, false))
	require.NoError(t, service.LoadPage(context.Background(), 2, false))

	assert.Equal(t, []int{1, 2}, service.CachedPages())
	assert.Len(t, service.Items(), 3)
	require.NotNil(t, service.Pagination())
	assert.Equal(t, 2, service.Pagination().Page)
	api.AssertExpectations(t)
}

func TestListService_LoadPage_RejectsNonPositivePages(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	service := newUserListService(api)

	err := service.LoadPage(context.Background(), 0, false)

	assert.Error(t, err)
	api.AssertNotCalled(t, "FetchPage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListService_LoadPage_FailureKeepsPreviousData(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	testData := helpers.NewTestData()
	service := newUserListService(api)

	api.On("FetchPage", mock.Anything, 1, 2, mock.Anything, mock.Anything).
		Return(testData.UserPage(1, 2, testData.SimpleUser("u1", "alice")), nil).Once()
	api.On("FetchPage", mock.Anything, 2, 2, mock.Anything, mock.Anything).
		Return(nil, errors.New("backend unreachable")).Once()

	require.NoError(t, service.LoadPage(context.Background(), 1, false))
	err := service.LoadPage(context.Background(), 2, false)

	assert.Error(t, err)
	assert.Len(t, service.Items(), 1)
	assert.Equal(t, "backend unreachable", service.LastError())
	assert.False(t, service.IsLoading())
	// The failed page was not marked cached; a retry fetches again.
	assert.Equal(t, []int{1}, service.CachedPages())
}

func TestListService_SetFilters_InvalidatesCacheAndRefetches(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	testData := helpers.NewTestData()
	service := newUserListService(api)

	api.On("FetchPage", mock.Anything, 1, 2, listing.Filters{}, listing.Sort{}).
		Return(testData.UserPage(1, 2, testData.SimpleUser("u1", "alice")), nil).Once()
	api.On("FetchPage", mock.Anything, 1, 2, listing.Filters{"role": "admin"}, listing.Sort{}).
		Return(testData.UserPage(1, 1, testData.SimpleUser("u9", "root")), nil).Once()

	require.NoError(t, service.LoadPage(context.Background(), 1, false))
	service.ToggleSelection("u1")

	// The "all" sentinel is normalized away; role survives.
	service.SetFilters(map[string]string{"role": "admin", "provider": "all"})

	assert.Empty(t, service.Items())
	assert.Zero(t, service.SelectionCount())
	assert.Equal(t, listing.Filters{"role": "admin"}, service.Filters())

	// Page 1 is no longer cached, so this fetches under the new filters.
	require.NoError(t, service.LoadPage(context.Background(), 1, false))
	assert.Equal(t, "u9", service.Items()[0].ID)
	api.AssertExpectations(t)
}

func TestListService_SetSort_InvalidatesCache(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	testData := helpers.NewTestData()
	service := newUserListService(api)

	api.On("FetchPage", mock.Anything, 1, 2, mock.Anything, listing.Sort{}).
		Return(testData.UserPage(1, 1, testData.SimpleUser("u1", "alice")), nil).Once()
	descending := listing.Sort{Field: "created_at", Descending: true}
	api.On("FetchPage", mock.Anything, 1, 2, mock.Anything, descending).
		Return(testData.UserPage(1, 1, testData.SimpleUser("u1", "alice")), nil).Once()

	require.NoError(t, service.LoadPage(context.Background(), 1, false))
	service.SetSort(descending)

	assert.Empty(t, service.CachedPages())
	require.NoError(t, service.LoadPage(context.Background(), 1, false))
	api.AssertExpectations(t)
}

func TestListService_SelectionPersistsAcrossPageLoads(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	testData := helpers.NewTestData()
	service := newUserListService(api)

	api.On("FetchPage", mock.Anything, 1, 2, mock.Anything, mock.Anything).
		Return(testData.UserPage(1, 2, testData.SimpleUser("u1", "alice"), testData.SimpleUser("u2", "bob")), nil).Once()
	api.On("FetchPage", mock.Anything, 2, 2, mock.Anything, mock.Anything).
		Return(testData.UserPage(2, 2, testData.SimpleUser("u3", "carol")), nil).Once()

	require.NoError(t, service.LoadPage(context.Background(), 1, false))
	service.ToggleSelection("u1")
	require.NoError(t, service.LoadPage(context.Background(), 2, false))
	service.ToggleSelection("u3")

	assert.Equal(t, []string{"u1", "u3"}, service.SelectedIDs())
	assert.True(t, service.IsSelected("u1"))
	assert.Equal(t, 2, service.SelectionCount())
}

func TestListService_SelectAllLoadedAndClear(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	testData := helpers.NewTestData()
	service := newUserListService(api)

	api.On("FetchPage", mock.Anything, 1, 2, mock.Anything, mock.Anything).
		Return(testData.UserPage(1, 1, testData.SimpleUser("u1", "alice"), testData.SimpleUser("u2", "bob")), nil).Once()

	require.NoError(t, service.LoadPage(context.Background(), 1, false))

	service.SelectAllLoaded(true)
	assert.Equal(t, []string{"u1", "u2"}, service.SelectedIDs())

	service.ClearSelection()
	assert.Zero(t, service.SelectionCount())
	// Clearing the selection never touches the cache.
	assert.Equal(t, []int{1}, service.CachedPages())
}

func TestListService_Refresh_ReloadsCachedPagesInOrder(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	testData := helpers.NewTestData()
	service := newUserListService(api)

	pages := map[int]*struct{ users []accounts.User }{
		1: {[]accounts.User{testData.SimpleUser("u1", "alice"), testData.SimpleUser("u2", "bob")}},
		2: {[]accounts.User{testData.SimpleUser("u3", "carol"), testData.SimpleUser("u42", "dave")}},
		3: {[]accounts.User{testData.SimpleUser("u5", "erin")}},
	}
	var fetched []int
	for page, fixture := range pages {
		page, fixture := page, fixture
		api.On("FetchPage", mock.Anything, page, 2, mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { fetched = append(fetched, page) }).
			Return(testData.UserPage(page, 3, fixture.users...), nil)
	}

	require.NoError(t, service.LoadPage(context.Background(), 1, false))
	require.NoError(t, service.LoadPage(context.Background(), 2, false))
	require.NoError(t, service.LoadPage(context.Background(), 3, false))
	service.ToggleSelection("u42")

	fetched = nil
	require.NoError(t, service.Refresh(context.Background()))

	// Page one is re-fetched first (forced), then the remaining cached
	// pages ascending.
	assert.Equal(t, []int{1, 2, 3}, fetched)
	assert.Equal(t, []int{1, 2, 3}, service.CachedPages())
	assert.Len(t, service.Items(), 5)
	// The selection survives the refresh.
	assert.True(t, service.IsSelected("u42"))
}

func TestListService_Refresh_StopsOnMidSequenceFailure(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	testData := helpers.NewTestData()
	service := newUserListService(api)

	api.On("FetchPage", mock.Anything, 1, 2, mock.Anything, mock.Anything).
		Return(testData.UserPage(1, 3, testData.SimpleUser("u1", "alice")), nil)
	api.On("FetchPage", mock.Anything, 2, 2, mock.Anything, mock.Anything).
		Return(testData.UserPage(2, 3, testData.SimpleUser("u2", "bob")), nil).Once()

	require.NoError(t, service.LoadPage(context.Background(), 1, false))
	require.NoError(t, service.LoadPage(context.Background(), 2, false))

	api.On("FetchPage", mock.Anything, 2, 2, mock.Anything, mock.Anything).
		Return(nil, errors.New("backend unreachable")).Once()

	err := service.Refresh(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh stopped at page 2")
	// Page one was refreshed before the failure.
	assert.Equal(t, []int{1}, service.CachedPages())
}

func TestListService_ApplyItemUpdateAndRemoveItem(t *testing.T) {
	api := &mocks.MockListAPI[accounts.User]{}
	testData := helpers.NewTestData()
	service := newUserListService(api)

	api.On("FetchPage", mock.Anything, 1, 2, mock.Anything, mock.Anything).
		Return(testData.UserPage(1, 1, testData.SimpleUser("u1", "alice"), testData.SimpleUser("u2", "bob")), nil).Once()
	require.NoError(t, service.LoadPage(context.Background(), 1, false))

	updated := testData.SimpleUser("u2", "bob")
	updated.Active = false
	service.ApplyItemUpdate(updated)

	current, ok := service.State().ItemByID("u2")
	require.True(t, ok)
	assert.False(t, current.Active)

	service.ToggleSelection("u2")
	service.RemoveItem("u2")

	assert.Len(t, service.Items(), 1)
	// Removal does not prune the selection.
	assert.True(t, service.IsSelected("u2"))
}
