package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Feedback struct {
	ID            uint      `json:"id"`
	ParticipantID uint      `json:"participant_id"`
	EventID       uint      `json:"event_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// FeedbackSummary is the per-event aggregate read model.
type FeedbackSummary struct {
	EventID       uint       `json:"event_id"`
	AverageRating float64    `json:"average_rating"`
	Count         int        `json:"count"`
	Entries       []Feedback `json:"entries"`
}
