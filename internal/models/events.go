package models

import (
	"time"
)

// Event is the marketplace event row this engine computes budgets for.
// Owned by the platform's CRUD layer; read-only here.
type Event struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"owner_id"`
	EventType     EventType `json:"event_type"`
	AttendeeCount int       `json:"attendee_count"`
	DurationHours float64   `json:"duration_hours"`
	EventDate     time.Time `json:"event_date"`
	City          string    `json:"city,omitempty"`
	Region        string    `json:"region,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Location assembles the event's location fields
func (e Event) Location() Location {
	return Location{City: e.City, Region: e.Region}
}
