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
	ErrEventNotFound          = repository.ErrEventNotFound
	ErrAlreadyEnrolled        = repository.ErrAlreadyEnrolled
	ErrFeedbackExists         = repository.ErrFeedbackExists
	ErrEventNotOpen           = errors.New("event is not open for enrollment")
	ErrInvalidStatusChange    = errors.New("invalid event status transition")
	ErrParticipantNotEnrolled = errors.New("participant is not enrolled in this event")
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	ListByParticipant(ctx context.Context, userID uint) ([]domain.Event, error)
	UpdateStatus(ctx context.Context, id uint, status domain.EventStatus) error
	Enroll(ctx context.Context, eventID, userID uint) error
	CreateFeedback(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error)
	ListFeedbackByEvent(ctx context.Context, eventID uint) ([]domain.Feedback, error)
}

// XPAwarder applies XP awards; implemented by ParticipantService.
type XPAwarder interface {
	AddXP(ctx context.Context, userID uint, amount int) (domain.XPResult, error)
}

// EventNotifier pushes a message to an event's enrollees; implemented by
// AlertService. Delivery is best-effort.
type EventNotifier interface {
	NotifyEventParticipants(ctx context.Context, eventID uint, title, message string) (int, error)
}

type EventService struct {
	repo     EventRepository
	xp       XPAwarder
	notifier EventNotifier
}

func NewEventService(repo EventRepository, xp XPAwarder, notifier EventNotifier) *EventService {
	return &EventService{
		repo:     repo,
		xp:       xp,
		notifier: notifier,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.Status = domain.EventScheduled

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListEventsForParticipant(ctx context.Context, userID uint) ([]domain.Event, error) {
	events, err := s.repo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByParticipant -> %w", err)
	}

	return events, nil
}

func (s *EventService) Enroll(ctx context.Context, eventID, userID uint) error {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if event.Status != domain.EventScheduled && event.Status != domain.EventActive {
		return ErrEventNotOpen
	}

	if err = s.repo.Enroll(ctx, eventID, userID); err != nil {
		return fmt.Errorf("s.repo.Enroll -> %w", err)
	}

	return nil
}

// UpdateStatus moves an event through its lifecycle. Completing an event
// awards completion XP to every enrollee and notifies them.
func (s *EventService) UpdateStatus(ctx context.Context, eventID uint, next domain.EventStatus) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !event.Status.CanTransitionTo(next) {
		return domain.Event{}, ErrInvalidStatusChange
	}

	if err = s.repo.UpdateStatus(ctx, eventID, next); err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}
	event.Status = next

	if next == domain.EventCompleted {
		s.completeEvent(ctx, event)
	}

	return event, nil
}

func (s *EventService) completeEvent(ctx context.Context, event domain.Event) {
	for _, p := range event.Participants {
		if _, err := s.xp.AddXP(ctx, p.ID, domain.XPEventCompletion); err != nil {
			zap.L().Error("failed to award completion XP",
				zap.Uint("event_id", event.ID),
				zap.Uint("user_id", p.ID),
				zap.Error(err))
		}
	}

	if _, err := s.notifier.NotifyEventParticipants(ctx, event.ID, event.Title, "Event completed, thanks for participating!"); err != nil {
		zap.L().Error("failed to notify event participants",
			zap.Uint("event_id", event.ID),
			zap.Error(err))
	}
}

// DeclareWinner awards the winner bonus to an enrolled participant.
func (s *EventService) DeclareWinner(ctx context.Context, eventID, userID uint) (domain.XPResult, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return domain.XPResult{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	enrolled := false
	for _, p := range event.Participants {
		if p.ID == userID {
			enrolled = true
			break
		}
	}
	if !enrolled {
		return domain.XPResult{}, ErrParticipantNotEnrolled
	}

	result, err := s.xp.AddXP(ctx, userID, domain.XPWinningEvent)
	if err != nil {
		return domain.XPResult{}, fmt.Errorf("s.xp.AddXP -> %w", err)
	}

	return result, nil
}

// SubmitFeedback records one feedback per (participant, event) and awards
// feedback XP. A duplicate submission fails without awarding XP.
func (s *EventService) SubmitFeedback(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	if _, err := s.repo.FindByID(ctx, feedback.EventID); err != nil {
		return domain.Feedback{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	created, err := s.repo.CreateFeedback(ctx, feedback)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("s.repo.CreateFeedback -> %w", err)
	}

	if _, err = s.xp.AddXP(ctx, feedback.ParticipantID, domain.XPFeedbackSubmission); err != nil {
		zap.L().Error("failed to award feedback XP",
			zap.Uint("user_id", feedback.ParticipantID),
			zap.Error(err))
	}

	return created, nil
}

// FeedbackSummary computes the per-event rating aggregate. The average is
// 0 when no feedback has been submitted.
func (s *EventService) FeedbackSummary(ctx context.Context, eventID uint) (domain.FeedbackSummary, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	entries, err := s.repo.ListFeedbackByEvent(ctx, eventID)
	if err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("s.repo.ListFeedbackByEvent -> %w", err)
	}

	summary := domain.FeedbackSummary{
		EventID: eventID,
		Count:   len(entries),
		Entries: entries,
	}

	if len(entries) > 0 {
		total := 0
		for _, f := range entries {
			total += f.Rating
		}
		summary.AverageRating = float64(total) / float64(len(entries))
	}

	return summary, nil
}
