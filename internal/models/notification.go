package models

import "time"

// Notification is the durable log entry behind every toast. Date round-trips
// through the store as an RFC 3339 string.
type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}
