// Package presenters transforms domain data into UI-ready view models.
package presenters

import (
	"time"

	"eduadmin/application"
	"eduadmin/domain/accounts"
	"eduadmin/domain/catalog"
	"eduadmin/domain/inbox"
	"eduadmin/domain/listing"
)

// PaginationVM mirrors the backend-reported pagination block for the
// shell's pager controls.
type PaginationVM struct {
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// UserRowVM is one row of the user-management table.
type UserRowVM struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Provider  string `json:"provider"`
	Active    bool   `json:"active"`
	Selected  bool   `json:"selected"`
	CreatedAt string `json:"created_at"`
	LastLogin string `json:"last_login,omitempty"`
}

// PackageRowVM is one row of the package-management table.
type PackageRowVM struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Coins        int     `json:"coins"`
	DurationDays int     `json:"duration_days"`
	Provider     string  `json:"provider"`
	Active       bool    `json:"active"`
	Selected     bool    `json:"selected"`
	CreatedAt    string  `json:"created_at"`
}

// MessageRowVM is one row of the contact-message triage table.
type MessageRowVM struct {
	ID         string `json:"id"`
	SenderName string `json:"sender_name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Status     string `json:"status"`
	ReceivedAt string `json:"received_at"`
}

// ListVM is the generic table view model. Mode tells the shell
// whether the search overlay is shadowing the paginated collection.
type ListVM[Row any] struct {
	Mode          string            `json:"mode"` // "list" or "search"
	Rows          []Row             `json:"rows"`
	Pagination    *PaginationVM     `json:"pagination,omitempty"`
	Filters       map[string]string `json:"filters"`
	CachedPages   []int             `json:"cached_pages"`
	SelectedCount int               `json:"selected_count"`
	Loading       bool              `json:"loading"`
	Error         string            `json:"error,omitempty"`
	SearchQuery   string            `json:"search_query,omitempty"`
	SearchLoading bool              `json:"search_loading,omitempty"`
}

// ListPresenter transforms listing state and search overlay state for
// table display.
type ListPresenter struct{}

// NewListPresenter creates a list presenter.
func NewListPresenter() *ListPresenter {
	return &ListPresenter{}
}

// ToUserListVM builds the user table view model. When the search
// overlay is active its results replace the paginated rows without
// touching the cache.
func (p *ListPresenter) ToUserListVM(state listing.State[accounts.User], search application.SearchState[accounts.User]) *ListVM[UserRowVM] {
	vm := newListVM[UserRowVM](state, search.Query, search.Loading)
	users := state.Items
	if search.Query != "" {
		users = search.Results
		vm.Pagination = nil
	}
	vm.Rows = make([]UserRowVM, len(users))
	for i, user := range users {
		vm.Rows[i] = UserRowVM{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      string(user.Role),
			Provider:  user.Provider,
			Active:    user.Active,
			Selected:  state.Selection.Has(user.ID),
			CreatedAt: formatTime(user.CreatedAt),
			LastLogin: formatTimePtr(user.LastLogin),
		}
	}
	return vm
}

// ToPackageListVM builds the package table view model.
func (p *ListPresenter) ToPackageListVM(state listing.State[catalog.Package], search application.SearchState[catalog.Package]) *ListVM[PackageRowVM] {
	vm := newListVM[PackageRowVM](state, search.Query, search.Loading)
	packages := state.Items
	if search.Query != "" {
		packages = search.Results
		vm.Pagination = nil
	}
	vm.Rows = make([]PackageRowVM, len(packages))
	for i, pkg := range packages {
		vm.Rows[i] = PackageRowVM{
			ID:           pkg.ID,
			Name:         pkg.Name,
			Description:  pkg.Description,
			Price:        pkg.Price,
			Coins:        pkg.Coins,
			DurationDays: pkg.DurationDays,
			Provider:     pkg.Provider,
			Active:       pkg.Active,
			Selected:     state.Selection.Has(pkg.ID),
			CreatedAt:    formatTime(pkg.CreatedAt),
		}
	}
	return vm
}

// ToMessageListVM builds the contact-message table view model.
func (p *ListPresenter) ToMessageListVM(state listing.State[inbox.Message], search application.SearchState[inbox.Message]) *ListVM[MessageRowVM] {
	vm := newListVM[MessageRowVM](state, search.Query, search.Loading)
	messages := state.Items
	if search.Query != "" {
		messages = search.Results
		vm.Pagination = nil
	}
	vm.Rows = make([]MessageRowVM, len(messages))
	for i, msg := range messages {
		vm.Rows[i] = MessageRowVM{
			ID:         msg.ID,
			SenderName: msg.SenderName,
			Email:      msg.Email,
			Subject:    msg.Subject,
			Status:     string(msg.Status),
			ReceivedAt: formatTime(msg.ReceivedAt),
		}
	}
	return vm
}

func newListVM[Row any, T listing.Item](state listing.State[T], query string, searchLoading bool) *ListVM[Row] {
	mode := "list"
	if query != "" {
		mode = "search"
	}
	return &ListVM[Row]{
		Mode:          mode,
		Pagination:    toPaginationVM(state.Pagination),
		Filters:       map[string]string(state.Filters),
		CachedPages:   state.CachedPages(),
		SelectedCount: state.Selection.Count(),
		Loading:       state.Loading,
		Error:         state.LastError,
		SearchQuery:   query,
		SearchLoading: searchLoading,
	}
}

func toPaginationVM(info *listing.PaginationInfo) *PaginationVM {
	if info == nil {
		return nil
	}
	return &PaginationVM{
		Page:    info.Page,
		Pages:   info.Pages,
		PerPage: info.PerPage,
		Total:   info.Total,
		HasNext: info.HasNext,
		HasPrev: info.HasPrev,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
