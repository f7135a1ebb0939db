package repository

import (
	"context"
	"fmt"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/repository/dao"
)

var (
	ErrEventNotFound   = dao.ErrEventNotFound
	ErrAlreadyEnrolled = dao.ErrAlreadyEnrolled
	ErrFeedbackExists  = dao.ErrFeedbackExists
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	List(ctx context.Context) ([]dao.Event, error)
	ListByParticipant(ctx context.Context, userID uint) ([]dao.Event, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Enroll(ctx context.Context, eventID, userID uint) error
	EnrolledPushTokens(ctx context.Context, eventID uint) ([]string, error)
}

type FeedbackDAO interface {
	Insert(ctx context.Context, feedback dao.Feedback) (dao.Feedback, error)
	ListByEvent(ctx context.Context, eventID uint) ([]dao.Feedback, error)
}

type EventRepository struct {
	eventDAO    EventDAO
	feedbackDAO FeedbackDAO
}

func NewEventRepository(eventDAO EventDAO, feedbackDAO FeedbackDAO) *EventRepository {
	return &EventRepository{
		eventDAO:    eventDAO,
		feedbackDAO: feedbackDAO,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.eventDAO.Insert(ctx, dao.Event{
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		Status:      string(event.Status),
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.eventDAO.Insert -> %w", err)
	}

	return eventDaoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.eventDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.eventDAO.FindByID -> %w", err)
	}

	return eventDaoToDomain(found), nil
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	found, err := r.eventDAO.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.eventDAO.List -> %w", err)
	}

	return eventsDaoToDomain(found), nil
}

func (r *EventRepository) ListByParticipant(ctx context.Context, userID uint) ([]domain.Event, error) {
	found, err := r.eventDAO.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.eventDAO.ListByParticipant -> %w", err)
	}

	return eventsDaoToDomain(found), nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id uint, status domain.EventStatus) error {
	if err := r.eventDAO.UpdateStatus(ctx, id, string(status)); err != nil {
		return fmt.Errorf("r.eventDAO.UpdateStatus -> %w", err)
	}

	return nil
}

func (r *EventRepository) Enroll(ctx context.Context, eventID, userID uint) error {
	if err := r.eventDAO.Enroll(ctx, eventID, userID); err != nil {
		return fmt.Errorf("r.eventDAO.Enroll -> %w", err)
	}

	return nil
}

func (r *EventRepository) EnrolledPushTokens(ctx context.Context, eventID uint) ([]string, error) {
	tokens, err := r.eventDAO.EnrolledPushTokens(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.eventDAO.EnrolledPushTokens -> %w", err)
	}

	return tokens, nil
}

func (r *EventRepository) CreateFeedback(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	created, err := r.feedbackDAO.Insert(ctx, dao.Feedback{
		ParticipantID: feedback.ParticipantID,
		EventID:       feedback.EventID,
		Rating:        feedback.Rating,
		Comment:       feedback.Comment,
	})
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("r.feedbackDAO.Insert -> %w", err)
	}

	return feedbackDaoToDomain(created), nil
}

func (r *EventRepository) ListFeedbackByEvent(ctx context.Context, eventID uint) ([]domain.Feedback, error) {
	found, err := r.feedbackDAO.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.feedbackDAO.ListByEvent -> %w", err)
	}

	feedbacks := make([]domain.Feedback, 0, len(found))
	for _, f := range found {
		feedbacks = append(feedbacks, feedbackDaoToDomain(f))
	}

	return feedbacks, nil
}

func eventDaoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		Status:      domain.EventStatus(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	for _, p := range e.Participants {
		event.Participants = append(event.Participants, userDaoToDomain(p))
	}

	return event
}

func eventsDaoToDomain(found []dao.Event) []domain.Event {
	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, eventDaoToDomain(e))
	}

	return events
}

func feedbackDaoToDomain(f dao.Feedback) domain.Feedback {
	return domain.Feedback{
		ID:            f.ID,
		ParticipantID: f.ParticipantID,
		EventID:       f.EventID,
		Rating:        f.Rating,
		Comment:       f.Comment,
		CreatedAt:     f.CreatedAt,
	}
}
