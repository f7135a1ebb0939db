package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
)

type fakeEventRepo struct {
	events    map[uint]*domain.Event
	enrolled  map[uint][]uint // eventID -> userIDs
	feedback  []domain.Feedback
	nextEvent uint
}

func newFakeEventRepo(events ...domain.Event) *fakeEventRepo {
	repo := &fakeEventRepo{
		events:   make(map[uint]*domain.Event),
		enrolled: make(map[uint][]uint),
	}
	for i := range events {
		e := events[i]
		repo.events[e.ID] = &e
		if e.ID >= repo.nextEvent {
			repo.nextEvent = e.ID
		}
	}
	return repo
}

func (r *fakeEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	r.nextEvent++
	event.ID = r.nextEvent
	r.events[event.ID] = &event
	return event, nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uint) (domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return domain.Event{}, ErrEventNotFound
	}
	return *e, nil
}

func (r *fakeEventRepo) List(_ context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEventRepo) ListByParticipant(_ context.Context, userID uint) ([]domain.Event, error) {
	var out []domain.Event
	for eventID, users := range r.enrolled {
		for _, id := range users {
			if id == userID {
				out = append(out, *r.events[eventID])
			}
		}
	}
	return out, nil
}

func (r *fakeEventRepo) UpdateStatus(_ context.Context, id uint, status domain.EventStatus) error {
	e, ok := r.events[id]
	if !ok {
		return ErrEventNotFound
	}
	e.Status = status
	return nil
}

func (r *fakeEventRepo) Enroll(_ context.Context, eventID, userID uint) error {
	for _, id := range r.enrolled[eventID] {
		if id == userID {
			return ErrAlreadyEnrolled
		}
	}
	r.enrolled[eventID] = append(r.enrolled[eventID], userID)
	return nil
}

func (r *fakeEventRepo) CreateFeedback(_ context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	for _, f := range r.feedback {
		if f.ParticipantID == feedback.ParticipantID && f.EventID == feedback.EventID {
			return domain.Feedback{}, ErrFeedbackExists
		}
	}
	feedback.ID = uint(len(r.feedback) + 1)
	r.feedback = append(r.feedback, feedback)
	return feedback, nil
}

func (r *fakeEventRepo) ListFeedbackByEvent(_ context.Context, eventID uint) ([]domain.Feedback, error) {
	var out []domain.Feedback
	for _, f := range r.feedback {
		if f.EventID == eventID {
			out = append(out, f)
		}
	}
	return out, nil
}

// fakeXPAwarder records awards instead of touching storage.
type fakeXPAwarder struct {
	awards map[uint]int
}

func newFakeXPAwarder() *fakeXPAwarder {
	return &fakeXPAwarder{awards: make(map[uint]int)}
}

func (a *fakeXPAwarder) AddXP(_ context.Context, userID uint, amount int) (domain.XPResult, error) {
	a.awards[userID] += amount
	return domain.XPResult{ParticipantID: userID, XP: a.awards[userID]}, nil
}

type fakeEventNotifier struct {
	calls []uint
}

func (n *fakeEventNotifier) NotifyEventParticipants(_ context.Context, eventID uint, _, _ string) (int, error) {
	n.calls = append(n.calls, eventID)
	return 1, nil
}

func scheduledEvent(id uint, participants ...domain.User) domain.Event {
	return domain.Event{
		ID:           id,
		Title:        "Hackathon",
		Status:       domain.EventScheduled,
		Participants: participants,
	}
}

func TestEventService_CreateEvent(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, newFakeXPAwarder(), &fakeEventNotifier{})

	created, err := svc.CreateEvent(context.Background(), domain.Event{Title: "Quiz", Status: domain.EventActive})

	require.NoError(t, err)
	// New events always start scheduled, whatever the request carried.
	assert.Equal(t, domain.EventScheduled, created.Status)
	assert.NotZero(t, created.ID)
}

func TestEventService_Enroll(t *testing.T) {
	t.Run("enrolls into a scheduled event", func(t *testing.T) {
		repo := newFakeEventRepo(scheduledEvent(1))
		svc := NewEventService(repo, newFakeXPAwarder(), &fakeEventNotifier{})

		require.NoError(t, svc.Enroll(context.Background(), 1, 10))
	})

	t.Run("rejects a completed event", func(t *testing.T) {
		event := scheduledEvent(1)
		event.Status = domain.EventCompleted
		svc := NewEventService(newFakeEventRepo(event), newFakeXPAwarder(), &fakeEventNotifier{})

		err := svc.Enroll(context.Background(), 1, 10)

		assert.ErrorIs(t, err, ErrEventNotOpen)
	})

	t.Run("rejects a duplicate enrollment", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(scheduledEvent(1)), newFakeXPAwarder(), &fakeEventNotifier{})

		require.NoError(t, svc.Enroll(context.Background(), 1, 10))
		err := svc.Enroll(context.Background(), 1, 10)

		assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), newFakeXPAwarder(), &fakeEventNotifier{})

		err := svc.Enroll(context.Background(), 99, 10)

		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestEventService_UpdateStatus(t *testing.T) {
	t.Run("rejects an invalid transition", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(scheduledEvent(1)), newFakeXPAwarder(), &fakeEventNotifier{})

		_, err := svc.UpdateStatus(context.Background(), 1, domain.EventCompleted)

		assert.ErrorIs(t, err, ErrInvalidStatusChange)
	})

	t.Run("completing awards XP and notifies enrollees", func(t *testing.T) {
		event := scheduledEvent(1, domain.User{ID: 10}, domain.User{ID: 11})
		event.Status = domain.EventActive
		awarder := newFakeXPAwarder()
		notifier := &fakeEventNotifier{}
		svc := NewEventService(newFakeEventRepo(event), awarder, notifier)

		updated, err := svc.UpdateStatus(context.Background(), 1, domain.EventCompleted)

		require.NoError(t, err)
		assert.Equal(t, domain.EventCompleted, updated.Status)
		assert.Equal(t, domain.XPEventCompletion, awarder.awards[10])
		assert.Equal(t, domain.XPEventCompletion, awarder.awards[11])
		assert.Equal(t, []uint{1}, notifier.calls)
	})

	t.Run("cancelling awards nothing", func(t *testing.T) {
		awarder := newFakeXPAwarder()
		notifier := &fakeEventNotifier{}
		svc := NewEventService(newFakeEventRepo(scheduledEvent(1, domain.User{ID: 10})), awarder, notifier)

		_, err := svc.UpdateStatus(context.Background(), 1, domain.EventCancelled)

		require.NoError(t, err)
		assert.Empty(t, awarder.awards)
		assert.Empty(t, notifier.calls)
	})
}

func TestEventService_DeclareWinner(t *testing.T) {
	t.Run("awards the winner bonus to an enrollee", func(t *testing.T) {
		awarder := newFakeXPAwarder()
		svc := NewEventService(newFakeEventRepo(scheduledEvent(1, domain.User{ID: 10})), awarder, &fakeEventNotifier{})

		result, err := svc.DeclareWinner(context.Background(), 1, 10)

		require.NoError(t, err)
		assert.Equal(t, uint(10), result.ParticipantID)
		assert.Equal(t, domain.XPWinningEvent, awarder.awards[10])
	})

	t.Run("rejects a participant who is not enrolled", func(t *testing.T) {
		awarder := newFakeXPAwarder()
		svc := NewEventService(newFakeEventRepo(scheduledEvent(1)), awarder, &fakeEventNotifier{})

		_, err := svc.DeclareWinner(context.Background(), 1, 10)

		assert.ErrorIs(t, err, ErrParticipantNotEnrolled)
		assert.Empty(t, awarder.awards)
	})
}

func TestEventService_SubmitFeedback(t *testing.T) {
	t.Run("records feedback and awards XP", func(t *testing.T) {
		awarder := newFakeXPAwarder()
		svc := NewEventService(newFakeEventRepo(scheduledEvent(1)), awarder, &fakeEventNotifier{})

		created, err := svc.SubmitFeedback(context.Background(), domain.Feedback{ParticipantID: 10, EventID: 1, Rating: 4})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, domain.XPFeedbackSubmission, awarder.awards[10])
	})

	t.Run("duplicate feedback fails without XP", func(t *testing.T) {
		awarder := newFakeXPAwarder()
		svc := NewEventService(newFakeEventRepo(scheduledEvent(1)), awarder, &fakeEventNotifier{})

		_, err := svc.SubmitFeedback(context.Background(), domain.Feedback{ParticipantID: 10, EventID: 1, Rating: 4})
		require.NoError(t, err)

		_, err = svc.SubmitFeedback(context.Background(), domain.Feedback{ParticipantID: 10, EventID: 1, Rating: 5})

		assert.ErrorIs(t, err, ErrFeedbackExists)
		assert.Equal(t, domain.XPFeedbackSubmission, awarder.awards[10])
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), newFakeXPAwarder(), &fakeEventNotifier{})

		_, err := svc.SubmitFeedback(context.Background(), domain.Feedback{ParticipantID: 10, EventID: 9, Rating: 3})

		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestEventService_FeedbackSummary(t *testing.T) {
	t.Run("averages the ratings", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(scheduledEvent(1)), newFakeXPAwarder(), &fakeEventNotifier{})

		_, err := svc.SubmitFeedback(context.Background(), domain.Feedback{ParticipantID: 10, EventID: 1, Rating: 4})
		require.NoError(t, err)
		_, err = svc.SubmitFeedback(context.Background(), domain.Feedback{ParticipantID: 11, EventID: 1, Rating: 5})
		require.NoError(t, err)

		summary, err := svc.FeedbackSummary(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, 2, summary.Count)
		assert.InDelta(t, 4.5, summary.AverageRating, 0.001)
	})

	t.Run("average is zero with no feedback", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(scheduledEvent(1)), newFakeXPAwarder(), &fakeEventNotifier{})

		summary, err := svc.FeedbackSummary(context.Background(), 1)

		require.NoError(t, err)
		assert.Zero(t, summary.Count)
		assert.Zero(t, summary.AverageRating)
	})
}
