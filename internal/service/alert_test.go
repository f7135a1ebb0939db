package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
)

type fakeAlertRepo struct {
	alerts []domain.Alert
}

func (r *fakeAlertRepo) Create(_ context.Context, alert domain.Alert) (domain.Alert, error) {
	alert.ID = uint(len(r.alerts) + 1)
	r.alerts = append(r.alerts, alert)
	return alert, nil
}

func (r *fakeAlertRepo) List(_ context.Context) ([]domain.Alert, error) {
	return r.alerts, nil
}

type fakeTokenSource struct {
	byRole map[domain.Role][]string
}

func (s *fakeTokenSource) PushTokensByRoles(_ context.Context, roles []domain.Role) ([]string, error) {
	var out []string
	for _, role := range roles {
		out = append(out, s.byRole[role]...)
	}
	return out, nil
}

type fakeEventTokens struct {
	events map[uint][]string
}

func (s *fakeEventTokens) FindByID(_ context.Context, id uint) (domain.Event, error) {
	if _, ok := s.events[id]; !ok {
		return domain.Event{}, ErrEventNotFound
	}
	return domain.Event{ID: id}, nil
}

func (s *fakeEventTokens) EnrolledPushTokens(_ context.Context, eventID uint) ([]string, error) {
	return s.events[eventID], nil
}

// fakeNotifier records every Send call and its token batch.
type fakeNotifier struct {
	batches [][]string
	err     error
}

func (n *fakeNotifier) Send(_ context.Context, tokens []string, _, _ string, _ map[string]string) error {
	n.batches = append(n.batches, tokens)
	return n.err
}

type fakePublisher struct {
	published []domain.Alert
}

func (p *fakePublisher) Publish(alert domain.Alert) {
	p.published = append(p.published, alert)
}

func newAlertFixture() (*fakeAlertRepo, *fakeTokenSource, *fakeEventTokens, *fakeNotifier, *fakePublisher, *AlertService) {
	repo := &fakeAlertRepo{}
	tokens := &fakeTokenSource{byRole: map[domain.Role][]string{
		domain.RoleParticipant: {"tok-p1", "tok-p2"},
		domain.RoleAdmin:       {"tok-a1"},
		domain.RoleSuperAdmin:  {"tok-s1"},
		domain.RoleVolunteer:   {"tok-v1"},
	}}
	events := &fakeEventTokens{events: map[uint][]string{1: {"tok-p1", "tok-p1", "tok-p2", ""}}}
	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	svc := NewAlertService(repo, tokens, events, notifier, publisher)

	return repo, tokens, events, notifier, publisher, svc
}

func TestAlertService_CreateAlert(t *testing.T) {
	repo, _, _, notifier, publisher, svc := newAlertFixture()

	alert, notified, err := svc.CreateAlert(context.Background(), domain.Alert{
		Title:      "Venue change",
		Message:    "Track B moved to hall 2",
		SenderRole: domain.RoleAdmin,
	}, domain.TargetParticipants)

	require.NoError(t, err)
	assert.NotZero(t, alert.ID)
	assert.Equal(t, 2, notified)
	assert.Len(t, repo.alerts, 1)
	assert.Len(t, publisher.published, 1)
	assert.Equal(t, alert, publisher.published[0])
	// The whole audience goes out in one notifier call.
	require.Len(t, notifier.batches, 1)
	assert.ElementsMatch(t, []string{"tok-p1", "tok-p2"}, notifier.batches[0])
}

func TestAlertService_Broadcast(t *testing.T) {
	t.Run("admins audience includes superadmins", func(t *testing.T) {
		_, _, _, notifier, _, svc := newAlertFixture()

		notified, err := svc.Broadcast(context.Background(), "t", "m", domain.TargetAdmins)

		require.NoError(t, err)
		assert.Equal(t, 2, notified)
		require.Len(t, notifier.batches, 1)
		assert.ElementsMatch(t, []string{"tok-a1", "tok-s1"}, notifier.batches[0])
	})

	t.Run("all reaches every role", func(t *testing.T) {
		_, _, _, notifier, _, svc := newAlertFixture()

		notified, err := svc.Broadcast(context.Background(), "t", "m", domain.TargetAll)

		require.NoError(t, err)
		assert.Equal(t, 5, notified)
		require.Len(t, notifier.batches, 1)
	})

	t.Run("notifier failure does not fail the broadcast", func(t *testing.T) {
		_, _, _, notifier, _, svc := newAlertFixture()
		notifier.err = errors.New("gateway down")

		notified, err := svc.Broadcast(context.Background(), "t", "m", domain.TargetParticipants)

		require.NoError(t, err)
		assert.Equal(t, 2, notified)
	})

	t.Run("empty audience skips the notifier", func(t *testing.T) {
		_, tokens, _, notifier, _, svc := newAlertFixture()
		tokens.byRole = map[domain.Role][]string{}

		notified, err := svc.Broadcast(context.Background(), "t", "m", domain.TargetParticipants)

		require.NoError(t, err)
		assert.Zero(t, notified)
		assert.Empty(t, notifier.batches)
	})
}

func TestAlertService_NotifyEventParticipants(t *testing.T) {
	t.Run("de-duplicates tokens and drops empties", func(t *testing.T) {
		_, _, _, notifier, _, svc := newAlertFixture()

		notified, err := svc.NotifyEventParticipants(context.Background(), 1, "t", "m")

		require.NoError(t, err)
		assert.Equal(t, 2, notified)
		require.Len(t, notifier.batches, 1)
		assert.ElementsMatch(t, []string{"tok-p1", "tok-p2"}, notifier.batches[0])
	})

	t.Run("unknown event", func(t *testing.T) {
		_, _, _, _, _, svc := newAlertFixture()

		_, err := svc.NotifyEventParticipants(context.Background(), 99, "t", "m")

		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestAlertService_ListAlerts(t *testing.T) {
	repo, _, _, _, _, svc := newAlertFixture()
	repo.alerts = []domain.Alert{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}

	alerts, err := svc.ListAlerts(context.Background())

	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}
