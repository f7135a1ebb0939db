package repository

import (
	"context"
	"fmt"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/repository/dao"
)

var ErrItemNotFound = dao.ErrItemNotFound

type LostFoundDAO interface {
	Insert(ctx context.Context, item dao.LostFoundItem) (dao.LostFoundItem, error)
	FindByID(ctx context.Context, id uint) (dao.LostFoundItem, error)
	List(ctx context.Context) ([]dao.LostFoundItem, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type LostFoundRepository struct {
	dao LostFoundDAO
}

func NewLostFoundRepository(dao LostFoundDAO) *LostFoundRepository {
	return &LostFoundRepository{
		dao: dao,
	}
}

func (r *LostFoundRepository) Create(ctx context.Context, item domain.LostFoundItem) (domain.LostFoundItem, error) {
	created, err := r.dao.Insert(ctx, dao.LostFoundItem{
		Type:        string(item.Type),
		Title:       item.Title,
		Description: item.Description,
		Location:    item.Location,
		Category:    item.Category,
		Status:      string(item.Status),
		ReportedBy:  item.ReportedBy,
	})
	if err != nil {
		return domain.LostFoundItem{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return itemDaoToDomain(created), nil
}

func (r *LostFoundRepository) FindByID(ctx context.Context, id uint) (domain.LostFoundItem, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.LostFoundItem{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return itemDaoToDomain(found), nil
}

func (r *LostFoundRepository) List(ctx context.Context) ([]domain.LostFoundItem, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	items := make([]domain.LostFoundItem, 0, len(found))
	for _, item := range found {
		items = append(items, itemDaoToDomain(item))
	}

	return items, nil
}

func (r *LostFoundRepository) UpdateStatus(ctx context.Context, id uint, status domain.LostFoundStatus) error {
	if err := r.dao.UpdateStatus(ctx, id, string(status)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return nil
}

func itemDaoToDomain(i dao.LostFoundItem) domain.LostFoundItem {
	return domain.LostFoundItem{
		ID:          i.ID,
		Type:        domain.LostFoundType(i.Type),
		Title:       i.Title,
		Description: i.Description,
		Location:    i.Location,
		Category:    i.Category,
		Status:      domain.LostFoundStatus(i.Status),
		ReportedBy:  i.ReportedBy,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
