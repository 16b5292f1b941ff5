package helpers

import (
	"fmt"
	"time"

	"eduadmin/domain/accounts"
	"eduadmin/domain/catalog"
	"eduadmin/domain/contracts"
	"eduadmin/domain/inbox"
	"eduadmin/domain/listing"
)

// TestData provides simple builders for test data
type TestData struct{}

// NewTestData creates a test data builder
func NewTestData() *TestData {
	return &TestData{}
}

// SimpleUser creates a basic active student account for testing
func (td *TestData) SimpleUser(id, name string) accounts.User {
	return accounts.User{
		ID:        id,
		Email:     name + "@example.com",
		Name:      name,
		Role:      accounts.RoleStudent,
		Provider:  "local",
		Active:    true,
		CreatedAt: time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

// UserWithRole creates an account with a specific role
func (td *TestData) UserWithRole(id string, role accounts.Role) accounts.User {
	user := td.SimpleUser(id, "user-"+id)
	user.Role = role
	return user
}

// Users creates count sequential accounts with IDs "u1".."uN"
func (td *TestData) Users(count int) []accounts.User {
	users := make([]accounts.User, 0, count)
	for i := 1; i <= count; i++ {
		users = append(users, td.SimpleUser(fmt.Sprintf("u%d", i), fmt.Sprintf("user%d", i)))
	}
	return users
}

// SimplePackage creates a basic active course package for testing
func (td *TestData) SimplePackage(id, name string) catalog.Package {
	return catalog.Package{
		ID:           id,
		Name:         name,
		Description:  "Package " + name,
		Price:        49.90,
		Coins:        500,
		DurationDays: 90,
		Provider:     "inhouse",
		Active:       true,
		CreatedAt:    time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

// SimpleMessage creates a contact message in the given triage state
func (td *TestData) SimpleMessage(id string, status inbox.Status) inbox.Message {
	return inbox.Message{
		ID:         id,
		SenderName: "Sender " + id,
		Email:      "sender-" + id + "@example.com",
		Subject:    "Question about enrolment",
		Body:       "Hello, I have a question.",
		Status:     status,
		ReceivedAt: time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC),
	}
}

// Pagination creates a backend pagination block with derived
// has_next/has_prev flags
func (td *TestData) Pagination(page, pages, perPage, total int) listing.PaginationInfo {
	return listing.PaginationInfo{
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// UserPage creates one fetched page of user accounts with a
// consistent pagination block
func (td *TestData) UserPage(page, pages int, users ...accounts.User) *contracts.Page[accounts.User] {
	perPage := len(users)
	if perPage == 0 {
		perPage = 1
	}
	return &contracts.Page[accounts.User]{
		Items:      users,
		Pagination: td.Pagination(page, pages, perPage, perPage*pages),
	}
}

// PackagePage creates one fetched page of course packages
func (td *TestData) PackagePage(page, pages int, packages ...catalog.Package) *contracts.Page[catalog.Package] {
	perPage := len(packages)
	if perPage == 0 {
		perPage = 1
	}
	return &contracts.Page[catalog.Package]{
		Items:      packages,
		Pagination: td.Pagination(page, pages, perPage, perPage*pages),
	}
}

// MessagePage creates one fetched page of contact messages
func (td *TestData) MessagePage(page, pages int, messages ...inbox.Message) *contracts.Page[inbox.Message] {
	perPage := len(messages)
	if perPage == 0 {
		perPage = 1
	}
	return &contracts.Page[inbox.Message]{
		Items:      messages,
		Pagination: td.Pagination(page, pages, perPage, perPage*pages),
	}
}
