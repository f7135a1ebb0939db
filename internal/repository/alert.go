package repository

import (
	"context"
	"fmt"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/repository/dao"
)

type AlertDAO interface {
	Insert(ctx context.Context, alert dao.Alert) (dao.Alert, error)
	List(ctx context.Context) ([]dao.Alert, error)
}

type AlertRepository struct {
	dao AlertDAO
}

func NewAlertRepository(dao AlertDAO) *AlertRepository {
	return &AlertRepository{
		dao: dao,
	}
}

func (r *AlertRepository) Create(ctx context.Context, alert domain.Alert) (domain.Alert, error) {
	created, err := r.dao.Insert(ctx, dao.Alert{
		Title:       alert.Title,
		Message:     alert.Message,
		SenderRole:  string(alert.SenderRole),
		IsEmergency: alert.IsEmergency,
	})
	if err != nil {
		return domain.Alert{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return alertDaoToDomain(created), nil
}

func (r *AlertRepository) List(ctx context.Context) ([]domain.Alert, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	alerts := make([]domain.Alert, 0, len(found))
	for _, a := range found {
		alerts = append(alerts, alertDaoToDomain(a))
	}

	return alerts, nil
}

func alertDaoToDomain(a dao.Alert) domain.Alert {
	return domain.Alert{
		ID:          a.ID,
		Title:       a.Title,
		Message:     a.Message,
		SenderRole:  domain.Role(a.SenderRole),
		IsEmergency: a.IsEmergency,
		CreatedAt:   a.CreatedAt,
	}
}
