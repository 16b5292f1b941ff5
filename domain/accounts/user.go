// Package accounts holds the user entity and the closed role
// enumeration used by the management console.
package accounts

import "time"

// User is a platform account as reported by the user API.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	Provider  string     `json:"provider"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// ItemID implements listing.Item.
func (u User) ItemID() string {
	return u.ID
}
