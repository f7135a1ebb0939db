package domain

import "time"

type EventStatus string

const (
	EventScheduled EventStatus = "scheduled"
	EventActive    EventStatus = "active"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventScheduled, EventActive, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the event lifecycle: scheduled events start or
// get cancelled, active events finish or get cancelled. Completed and
// cancelled are terminal.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	switch s {
	case EventScheduled:
		return next == EventActive || next == EventCancelled
	case EventActive:
		return next == EventCompleted || next == EventCancelled
	}
	return false
}

type Event struct {
	ID           uint        `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Location     string      `json:"location"`
	StartsAt     time.Time   `json:"starts_at"`
	EndsAt       time.Time   `json:"ends_at"`
	Status       EventStatus `json:"status"`
	Participants []User      `json:"participants,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
