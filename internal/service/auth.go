package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/repository"
)

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrUserNotFound    = repository.ErrUserNotFound
	ErrWrongPassword   = errors.New("wrong password")
)

type AuthUserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	CreateVolunteer(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// SignupParticipant registers a new participant. New accounts start
// unapproved with zero XP; approval is a separate admin action.
func (s *AuthService) SignupParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(participant.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Participant{}, err
	}
	participant.Password = string(hash)
	participant.Role = domain.RoleParticipant
	participant.XP = 0
	participant.Level = domain.CalculateLevel(0)
	participant.CheckInCode = uuid.NewString()

	created, err := s.repo.CreateParticipant(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.CreateParticipant -> %w", err)
	}

	return created, nil
}

// CreateAdmin is restricted to superadmins at the routing layer.
func (s *AuthService) CreateAdmin(ctx context.Context, admin domain.Admin) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	admin.Password = string(hash)
	admin.Role = domain.RoleAdmin

	created, err := s.repo.CreateUser(ctx, admin.User)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.CreateUser -> %w", err)
	}

	return created, nil
}

func (s *AuthService) CreateVolunteer(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(volunteer.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Volunteer{}, err
	}
	volunteer.Password = string(hash)
	volunteer.Role = domain.RoleVolunteer

	created, err := s.repo.CreateVolunteer(ctx, volunteer)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("s.repo.CreateVolunteer -> %w", err)
	}

	return created, nil
}

func (s *AuthService) ListAdmins(ctx context.Context) ([]domain.User, error) {
	admins, err := s.repo.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByRole -> %w", err)
	}

	return admins, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}
