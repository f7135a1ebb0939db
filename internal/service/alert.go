package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/notification"
)

type AlertRepository interface {
	Create(ctx context.Context, alert domain.Alert) (domain.Alert, error)
	List(ctx context.Context) ([]domain.Alert, error)
}

// PushTokenSource resolves the device tokens of a push audience.
type PushTokenSource interface {
	PushTokensByRoles(ctx context.Context, roles []domain.Role) ([]string, error)
}

// EventTokenSource resolves the device tokens of an event's enrollees.
type EventTokenSource interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	EnrolledPushTokens(ctx context.Context, eventID uint) ([]string, error)
}

// AlertPublisher fans a created alert out to live subscribers.
type AlertPublisher interface {
	Publish(alert domain.Alert)
}

type AlertService struct {
	repo      AlertRepository
	tokens    PushTokenSource
	events    EventTokenSource
	notifier  notification.Notifier
	publisher AlertPublisher
}

func NewAlertService(repo AlertRepository, tokens PushTokenSource, events EventTokenSource, notifier notification.Notifier, publisher AlertPublisher) *AlertService {
	return &AlertService{
		repo:      repo,
		tokens:    tokens,
		events:    events,
		notifier:  notifier,
		publisher: publisher,
	}
}

// CreateAlert appends an alert row, publishes it to live subscribers and
// pushes it to the target audience. Push failures never fail the request.
func (s *AlertService) CreateAlert(ctx context.Context, alert domain.Alert, targets domain.AlertTarget) (domain.Alert, int, error) {
	created, err := s.repo.Create(ctx, alert)
	if err != nil {
		return domain.Alert{}, 0, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.publisher.Publish(created)

	notified, err := s.Broadcast(ctx, created.Title, created.Message, targets)
	if err != nil {
		return domain.Alert{}, 0, fmt.Errorf("s.Broadcast -> %w", err)
	}

	return created, notified, nil
}

func (s *AlertService) ListAlerts(ctx context.Context) ([]domain.Alert, error) {
	alerts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return alerts, nil
}

// Broadcast collects the audience's push tokens, de-duplicates them and
// hands the whole batch to the notifier in a single call. Returns the
// number of tokens notified.
func (s *AlertService) Broadcast(ctx context.Context, title, message string, targets domain.AlertTarget) (int, error) {
	roles := audienceRoles(targets)

	tokens, err := s.tokens.PushTokensByRoles(ctx, roles)
	if err != nil {
		return 0, fmt.Errorf("s.tokens.PushTokensByRoles -> %w", err)
	}

	return s.send(ctx, tokens, title, message), nil
}

// NotifyEventParticipants restricts the audience to one event's enrollees.
func (s *AlertService) NotifyEventParticipants(ctx context.Context, eventID uint, title, message string) (int, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return 0, fmt.Errorf("s.events.FindByID -> %w", err)
	}

	tokens, err := s.events.EnrolledPushTokens(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("s.events.EnrolledPushTokens -> %w", err)
	}

	return s.send(ctx, tokens, title, message), nil
}

func (s *AlertService) send(ctx context.Context, tokens []string, title, message string) int {
	tokens = dedupe(tokens)
	if len(tokens) == 0 {
		return 0
	}

	if err := s.notifier.Send(ctx, tokens, title, message, nil); err != nil {
		// Best-effort delivery: a failed push is logged, not escalated.
		zap.L().Error("push delivery failed",
			zap.Int("tokens", len(tokens)),
			zap.Error(err))
	}

	return len(tokens)
}

func audienceRoles(targets domain.AlertTarget) []domain.Role {
	switch targets {
	case domain.TargetParticipants:
		return []domain.Role{domain.RoleParticipant}
	case domain.TargetAdmins:
		return []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin}
	default:
		return []domain.Role{domain.RoleParticipant, domain.RoleVolunteer, domain.RoleAdmin, domain.RoleSuperAdmin}
	}
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}
