package models

import "time"

// Notification is a read-only feed record produced entirely upstream; the
// gateway only lists and displays it.
type Notification struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreatedByName  string    `json:"createdByName"`
	CreatedByEmail string    `json:"createdByEmail"`
	CreatedAt      time.Time `json:"createdAt"`
}
