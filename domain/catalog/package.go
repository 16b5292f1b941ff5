// Package catalog holds the billing package entity administered by the
// package-management screens.
package catalog

import "time"

// Package is a purchasable course/lab bundle as reported by the
// package API.
type Package struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Coins        int       `json:"coins"`
	DurationDays int       `json:"duration_days"`
	Provider     string    `json:"provider"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// ItemID implements listing.Item.
func (p Package) ItemID() string {
	return p.ID
}

// Draft carries the fields accepted by package create and update
// calls.
type Draft struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Coins        int     `json:"coins"`
	DurationDays int     `json:"duration_days"`
	Provider     string  `json:"provider"`
	Active       bool    `json:"active"`
}
