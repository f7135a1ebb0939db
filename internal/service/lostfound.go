package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/repository"
)

var (
	ErrItemNotFound      = repository.ErrItemNotFound
	ErrInvalidItemStatus = errors.New("invalid item status transition")
	ErrNotItemReporter   = errors.New("only the reporter may close this item")
)

type LostFoundRepository interface {
	Create(ctx context.Context, item domain.LostFoundItem) (domain.LostFoundItem, error)
	FindByID(ctx context.Context, id uint) (domain.LostFoundItem, error)
	List(ctx context.Context) ([]domain.LostFoundItem, error)
	UpdateStatus(ctx context.Context, id uint, status domain.LostFoundStatus) error
}

type LostFoundService struct {
	repo LostFoundRepository
}

func NewLostFoundService(repo LostFoundRepository) *LostFoundService {
	return &LostFoundService{
		repo: repo,
	}
}

// Report files a new item. Every report starts pending moderation.
func (s *LostFoundService) Report(ctx context.Context, item domain.LostFoundItem) (domain.LostFoundItem, error) {
	item.Status = domain.ItemPending

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.LostFoundItem{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Moderate applies the admin decision on a pending item: open it to the
// public or reject it.
func (s *LostFoundService) Moderate(ctx context.Context, itemID uint, next domain.LostFoundStatus) (domain.LostFoundItem, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return domain.LostFoundItem{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !item.CanModerateTo(next) {
		return domain.LostFoundItem{}, ErrInvalidItemStatus
	}

	if err = s.repo.UpdateStatus(ctx, itemID, next); err != nil {
		return domain.LostFoundItem{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}
	item.Status = next

	return item, nil
}

// Close resolves an open item. Only the original reporter may close it,
// and a pending item cannot be closed directly.
func (s *LostFoundService) Close(ctx context.Context, itemID, userID uint) (domain.LostFoundItem, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return domain.LostFoundItem{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if item.ReportedBy != userID {
		return domain.LostFoundItem{}, ErrNotItemReporter
	}
	if !item.CanClose() {
		return domain.LostFoundItem{}, ErrInvalidItemStatus
	}

	if err = s.repo.UpdateStatus(ctx, itemID, domain.ItemClosed); err != nil {
		return domain.LostFoundItem{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}
	item.Status = domain.ItemClosed

	return item, nil
}

// ListVisible returns items a participant may see: everything past
// moderation plus their own reports in any state.
func (s *LostFoundService) ListVisible(ctx context.Context, userID uint) ([]domain.LostFoundItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	visible := make([]domain.LostFoundItem, 0, len(items))
	for _, item := range items {
		if item.IsApproved() || item.ReportedBy == userID {
			visible = append(visible, item)
		}
	}

	return visible, nil
}

// ListAll returns every item regardless of status, for moderation views.
func (s *LostFoundService) ListAll(ctx context.Context) ([]domain.LostFoundItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return items, nil
}
