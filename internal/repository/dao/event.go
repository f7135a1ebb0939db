package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrAlreadyEnrolled = errors.New("participant already enrolled")
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string
	Location    string

	StartsAt time.Time `gorm:"not null"`
	EndsAt   time.Time `gorm:"not null"`

	Status string `gorm:"not null;default:scheduled"`

	Participants []User `gorm:"many2many:event_participants;"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).Preload("Participants").First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) List(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Order("starts_at").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) ListByParticipant(ctx context.Context, userID uint) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Joins("JOIN event_participants ep ON ep.event_id = events.id").
		Where("ep.user_id = ?", userID).
		Order("starts_at").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (d *EventDAO) Enroll(ctx context.Context, eventID, userID uint) error {
	event, err := d.FindByID(ctx, eventID)
	if err != nil {
		return err
	}

	for _, p := range event.Participants {
		if p.ID == userID {
			return ErrAlreadyEnrolled
		}
	}

	return d.db.WithContext(ctx).
		Model(&event).
		Association("Participants").
		Append(&User{ID: userID})
}

// EnrolledPushTokens returns the non-null push tokens of an event's enrollees.
func (d *EventDAO) EnrolledPushTokens(ctx context.Context, eventID uint) ([]string, error) {
	var tokens []string

	result := d.db.WithContext(ctx).
		Model(&User{}).
		Joins("JOIN event_participants ep ON ep.user_id = users.id").
		Where("ep.event_id = ? AND users.push_token IS NOT NULL AND users.push_token <> ''", eventID).
		Pluck("users.push_token", &tokens)
	if result.Error != nil {
		return nil, result.Error
	}

	return tokens, nil
}
