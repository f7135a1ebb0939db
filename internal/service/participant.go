package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/repository"
)

var (
	ErrParticipantNotFound = repository.ErrParticipantNotFound
	ErrNotApproved         = errors.New("participant is not approved")
	ErrAlreadyCheckedIn    = repository.ErrAlreadyCheckedIn
)

type ParticipantRepository interface {
	FindParticipantByUserID(ctx context.Context, userID uint) (domain.Participant, error)
	FindParticipantByCheckInCode(ctx context.Context, code string) (domain.Participant, error)
	ListParticipants(ctx context.Context) ([]domain.Participant, error)
	ApproveParticipant(ctx context.Context, userID uint) error
	MarkCheckedIn(ctx context.Context, userID uint) error
	AddXP(ctx context.Context, userID uint, amount int) (oldXP, newXP int, err error)
	UpdatePushToken(ctx context.Context, userID uint, token string) error
}

type ParticipantService struct {
	repo ParticipantRepository
}

func NewParticipantService(repo ParticipantRepository) *ParticipantService {
	return &ParticipantService{
		repo: repo,
	}
}

func (s *ParticipantService) GetParticipant(ctx context.Context, userID uint) (domain.Participant, error) {
	participant, err := s.repo.FindParticipantByUserID(ctx, userID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindParticipantByUserID -> %w", err)
	}

	return participant, nil
}

func (s *ParticipantService) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	participants, err := s.repo.ListParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListParticipants -> %w", err)
	}

	return participants, nil
}

// Approve flips a participant to approved. Approving an already-approved
// participant is a no-op, so concurrent admin approvals are harmless.
func (s *ParticipantService) Approve(ctx context.Context, userID uint) (domain.Participant, error) {
	participant, err := s.repo.FindParticipantByUserID(ctx, userID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindParticipantByUserID -> %w", err)
	}

	if participant.Approved {
		return participant, nil
	}

	if err = s.repo.ApproveParticipant(ctx, userID); err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.ApproveParticipant -> %w", err)
	}
	participant.Approved = true

	zap.L().Info("participant approved", zap.Uint("user_id", userID))

	return participant, nil
}

// CheckIn marks an approved participant as present and awards check-in XP.
// The checked-in flag is flipped with a test-and-set in storage, so when a
// volunteer scan and an admin check-in race, one of them loses the flip and
// XP is awarded exactly once.
func (s *ParticipantService) CheckIn(ctx context.Context, userID uint) (domain.XPResult, error) {
	participant, err := s.repo.FindParticipantByUserID(ctx, userID)
	if err != nil {
		return domain.XPResult{}, fmt.Errorf("s.repo.FindParticipantByUserID -> %w", err)
	}

	if !participant.Approved {
		return domain.XPResult{}, ErrNotApproved
	}
	if participant.CheckedIn {
		return domain.XPResult{}, ErrAlreadyCheckedIn
	}

	if err = s.repo.MarkCheckedIn(ctx, userID); err != nil {
		if errors.Is(err, ErrAlreadyCheckedIn) {
			return domain.XPResult{}, ErrAlreadyCheckedIn
		}

		return domain.XPResult{}, fmt.Errorf("s.repo.MarkCheckedIn -> %w", err)
	}

	result, err := s.AddXP(ctx, userID, domain.XPCheckIn)
	if err != nil {
		return domain.XPResult{}, fmt.Errorf("s.AddXP -> %w", err)
	}

	return result, nil
}

// CheckInByCode resolves a scanned QR payload to a participant and checks
// them in. Used by the volunteer scanning flow.
func (s *ParticipantService) CheckInByCode(ctx context.Context, code string) (domain.Participant, domain.XPResult, error) {
	participant, err := s.repo.FindParticipantByCheckInCode(ctx, code)
	if err != nil {
		return domain.Participant{}, domain.XPResult{}, fmt.Errorf("s.repo.FindParticipantByCheckInCode -> %w", err)
	}

	result, err := s.CheckIn(ctx, participant.ID)
	if err != nil {
		return domain.Participant{}, domain.XPResult{}, err
	}

	// The snapshot above predates the award; fold the outcome back in so
	// the projection and the award agree.
	participant.CheckedIn = true
	participant.XP = result.XP
	participant.Level = result.NewLevel

	return participant, result, nil
}

// AddXP atomically applies an award and recomputes the level. The
// repository serializes concurrent awards to the same participant.
func (s *ParticipantService) AddXP(ctx context.Context, userID uint, amount int) (domain.XPResult, error) {
	oldXP, newXP, err := s.repo.AddXP(ctx, userID, amount)
	if err != nil {
		return domain.XPResult{}, fmt.Errorf("s.repo.AddXP -> %w", err)
	}

	oldLevel := domain.CalculateLevel(oldXP)
	newLevel := domain.CalculateLevel(newXP)

	result := domain.XPResult{
		ParticipantID: userID,
		XP:            newXP,
		OldLevel:      oldLevel,
		NewLevel:      newLevel,
		LeveledUp:     newLevel > oldLevel,
	}

	if result.LeveledUp {
		zap.L().Info("participant leveled up",
			zap.Uint("user_id", userID),
			zap.Int("old_level", oldLevel),
			zap.Int("new_level", newLevel))
	}

	return result, nil
}

func (s *ParticipantService) RegisterPushToken(ctx context.Context, userID uint, token string) error {
	if err := s.repo.UpdatePushToken(ctx, userID, token); err != nil {
		return fmt.Errorf("s.repo.UpdatePushToken -> %w", err)
	}

	return nil
}
