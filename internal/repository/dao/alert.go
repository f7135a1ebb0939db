package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Alert rows are append-only. There is deliberately no update or delete.
type Alert struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Message     string `gorm:"not null"`
	SenderRole  string `gorm:"not null"`
	IsEmergency bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

type AlertDAO struct {
	db *gorm.DB
}

func NewAlertDAO(db *gorm.DB) *AlertDAO {
	return &AlertDAO{
		db: db,
	}
}

func (d *AlertDAO) Insert(ctx context.Context, alert Alert) (Alert, error) {
	result := d.db.WithContext(ctx).Create(&alert)
	if result.Error != nil {
		return Alert{}, result.Error
	}

	return alert, nil
}

func (d *AlertDAO) List(ctx context.Context) ([]Alert, error) {
	var alerts []Alert

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&alerts)
	if result.Error != nil {
		return nil, result.Error
	}

	return alerts, nil
}
