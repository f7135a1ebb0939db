package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("lost-and-found item not found")

type LostFoundItem struct {
	ID uint `gorm:"primaryKey"`

	Type        string `gorm:"not null"` // "lost" or "found"
	Title       string `gorm:"not null"`
	Description string
	Location    string
	Category    string

	Status string `gorm:"not null;default:PENDING"`

	ReportedBy uint `gorm:"not null"`
	Reporter   User `gorm:"foreignKey:ReportedBy"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type LostFoundDAO struct {
	db *gorm.DB
}

func NewLostFoundDAO(db *gorm.DB) *LostFoundDAO {
	return &LostFoundDAO{
		db: db,
	}
}

func (d *LostFoundDAO) Insert(ctx context.Context, item LostFoundItem) (LostFoundItem, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return LostFoundItem{}, result.Error
	}

	return item, nil
}

func (d *LostFoundDAO) FindByID(ctx context.Context, id uint) (LostFoundItem, error) {
	var item LostFoundItem

	result := d.db.WithContext(ctx).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return LostFoundItem{}, ErrItemNotFound
		}

		return LostFoundItem{}, result.Error
	}

	return item, nil
}

func (d *LostFoundDAO) List(ctx context.Context) ([]LostFoundItem, error) {
	var items []LostFoundItem

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *LostFoundDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).
		Model(&LostFoundItem{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}
