package service

import (
	"context"
	"fmt"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/repository"
)

var ErrVolunteerNotFound = repository.ErrVolunteerNotFound

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindVolunteerByUserID(ctx context.Context, userID uint) (domain.Volunteer, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) GetVolunteer(ctx context.Context, userID uint) (domain.Volunteer, error) {
	volunteer, err := s.repo.FindVolunteerByUserID(ctx, userID)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("s.repo.FindVolunteerByUserID -> %w", err)
	}

	return volunteer, nil
}
