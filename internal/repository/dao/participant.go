package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrAlreadyCheckedIn    = errors.New("participant is already checked in")
)

type Participant struct {
	UserID uint `gorm:"primaryKey"`
	User   User `gorm:"foreignKey:UserID"`

	Approved  bool `gorm:"not null;default:false"`
	CheckedIn bool `gorm:"not null;default:false"`

	XP    int `gorm:"not null;default:0"`
	Level int `gorm:"not null;default:1"`

	CheckInCode string `gorm:"uniqueIndex;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

// Insert creates the base user row and its participant row in one transaction.
func (d *ParticipantDAO) Insert(ctx context.Context, user User, participant Participant) (Participant, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&user); result.Error != nil {
			return result.Error
		}

		participant.UserID = user.ID
		if result := tx.Create(&participant); result.Error != nil {
			return result.Error
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err, "uni_users_email") {
			return Participant{}, ErrUserEmailExists
		}

		return Participant{}, err
	}

	participant.User = user

	return participant, nil
}

func (d *ParticipantDAO) FindByUserID(ctx context.Context, userID uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).Preload("User").First(&participant, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByCheckInCode(ctx context.Context, code string) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).Preload("User").First(&participant, "check_in_code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) List(ctx context.Context) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Preload("User").Order("user_id").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

// SetApproved flips the approval flag. The write is a plain row update, so
// two admins approving at once both land on approved=true.
func (d *ParticipantDAO) SetApproved(ctx context.Context, userID uint) error {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("user_id = ?", userID).
		Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

// SetCheckedIn is a test-and-set: the flag flips only when it was false, so
// of two concurrent check-ins exactly one sees RowsAffected == 1. The loser
// gets ErrAlreadyCheckedIn and must not award XP.
func (d *ParticipantDAO) SetCheckedIn(ctx context.Context, userID uint) error {
	result := d.db.WithContext(ctx).
		Model(&Participant{}).
		Where("user_id = ? AND checked_in = ?", userID, false).
		Update("checked_in", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := d.db.WithContext(ctx).
			Model(&Participant{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrParticipantNotFound
		}

		return ErrAlreadyCheckedIn
	}

	return nil
}

// AddXP applies an award under a row lock so concurrent awards to the same
// participant serialize instead of losing updates. Returns the pre- and
// post-award state.
func (d *ParticipantDAO) AddXP(ctx context.Context, userID uint, amount int, level func(xp int) int) (oldXP, newXP int, err error) {
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var participant Participant

		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&participant, "user_id = ?", userID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrParticipantNotFound
			}

			return result.Error
		}

		oldXP = participant.XP
		newXP = participant.XP + amount

		result = tx.Model(&Participant{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"xp":    newXP,
				"level": level(newXP),
			})

		return result.Error
	})
	if err != nil {
		return 0, 0, err
	}

	return oldXP, newXP, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.Message, constraint)
}
