package models

import "time"

// ErrorLog is one entry of the in-memory error ring exposed via the API.
type ErrorLog struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`   // ERROR, WARN
	Source    string    `json:"source"`  // originating component (database, settings, gallery)
	Message   string    `json:"message"` // short error message
	Detail    string    `json:"detail"`  // underlying driver/query error text
	Stack     string    `json:"stack"`   // capture site stack trace
}
