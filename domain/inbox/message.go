// Package inbox holds the contact message entity triaged on the
// management back-office screens.
package inbox

import "time"

// Status is the triage state of a contact message.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusResolved Status = "resolved"
	StatusArchived Status = "archived"
)

// Valid reports whether s is a known triage status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusResolved, StatusArchived:
		return true
	default:
		return false
	}
}

// Message is a contact form submission as reported by the backend.
type Message struct {
	ID         string    `json:"id"`
	SenderName string    `json:"sender_name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Status     Status    `json:"status"`
	ReceivedAt time.Time `json:"received_at"`
}

// ItemID implements listing.Item.
func (m Message) ItemID() string {
	return m.ID
}
