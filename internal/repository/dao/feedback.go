package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrFeedbackExists = errors.New("feedback already submitted for this event")

type Feedback struct {
	ID uint `gorm:"primaryKey"`

	ParticipantID uint `gorm:"not null;uniqueIndex:idx_feedback_participant_event"`
	EventID       uint `gorm:"not null;uniqueIndex:idx_feedback_participant_event"`

	Rating  int `gorm:"not null"`
	Comment string

	CreatedAt time.Time `gorm:"not null"`
}

type FeedbackDAO struct {
	db *gorm.DB
}

func NewFeedbackDAO(db *gorm.DB) *FeedbackDAO {
	return &FeedbackDAO{
		db: db,
	}
}

func (d *FeedbackDAO) Insert(ctx context.Context, feedback Feedback) (Feedback, error) {
	result := d.db.WithContext(ctx).Create(&feedback)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_feedback_participant_event") {
			return Feedback{}, ErrFeedbackExists
		}

		return Feedback{}, result.Error
	}

	return feedback, nil
}

func (d *FeedbackDAO) ListByEvent(ctx context.Context, eventID uint) ([]Feedback, error) {
	var feedbacks []Feedback

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Order("id").Find(&feedbacks)
	if result.Error != nil {
		return nil, result.Error
	}

	return feedbacks, nil
}
