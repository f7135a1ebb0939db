package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrVolunteerNotFound = errors.New("volunteer not found")

type Volunteer struct {
	UserID uint `gorm:"primaryKey"`
	User   User `gorm:"foreignKey:UserID"`

	EventID *uint
	Event   *Event `gorm:"foreignKey:EventID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type VolunteerDAO struct {
	db *gorm.DB
}

func NewVolunteerDAO(db *gorm.DB) *VolunteerDAO {
	return &VolunteerDAO{
		db: db,
	}
}

func (d *VolunteerDAO) Insert(ctx context.Context, user User, volunteer Volunteer) (Volunteer, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&user); result.Error != nil {
			return result.Error
		}

		volunteer.UserID = user.ID
		if result := tx.Create(&volunteer); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err, "uni_users_email") {
			return Volunteer{}, ErrUserEmailExists
		}

		return Volunteer{}, err
	}

	volunteer.User = user

	return volunteer, nil
}

func (d *VolunteerDAO) FindByUserID(ctx context.Context, userID uint) (Volunteer, error) {
	var volunteer Volunteer

	result := d.db.WithContext(ctx).Preload("User").Preload("Event").First(&volunteer, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Volunteer{}, ErrVolunteerNotFound
		}

		return Volunteer{}, result.Error
	}

	return volunteer, nil
}

func (d *VolunteerDAO) AssignEvent(ctx context.Context, userID, eventID uint) error {
	result := d.db.WithContext(ctx).
		Model(&Volunteer{}).
		Where("user_id = ?", userID).
		Update("event_id", eventID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVolunteerNotFound
	}

	return nil
}
