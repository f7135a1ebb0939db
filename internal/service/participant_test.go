package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
)

// fakeParticipantRepo is an in-memory ParticipantRepository keyed by user ID.
type fakeParticipantRepo struct {
	mu           sync.Mutex
	participants map[uint]*domain.Participant
}

func newFakeParticipantRepo(participants ...domain.Participant) *fakeParticipantRepo {
	repo := &fakeParticipantRepo{
		participants: make(map[uint]*domain.Participant),
	}
	for i := range participants {
		p := participants[i]
		repo.participants[p.ID] = &p
	}
	return repo
}

func (r *fakeParticipantRepo) FindParticipantByUserID(_ context.Context, userID uint) (domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[userID]
	if !ok {
		return domain.Participant{}, ErrParticipantNotFound
	}
	return *p, nil
}

func (r *fakeParticipantRepo) FindParticipantByCheckInCode(_ context.Context, code string) (domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.participants {
		if p.CheckInCode == code {
			return *p, nil
		}
	}
	return domain.Participant{}, ErrParticipantNotFound
}

func (r *fakeParticipantRepo) ListParticipants(_ context.Context) ([]domain.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Participant, 0, len(r.participants))
	for _, p := range r.participants {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeParticipantRepo) ApproveParticipant(_ context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[userID]
	if !ok {
		return ErrParticipantNotFound
	}
	p.Approved = true
	return nil
}

func (r *fakeParticipantRepo) MarkCheckedIn(_ context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[userID]
	if !ok {
		return ErrParticipantNotFound
	}
	if p.CheckedIn {
		return ErrAlreadyCheckedIn
	}
	p.CheckedIn = true
	return nil
}

func (r *fakeParticipantRepo) AddXP(_ context.Context, userID uint, amount int) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[userID]
	if !ok {
		return 0, 0, ErrParticipantNotFound
	}
	oldXP := p.XP
	p.XP += amount
	p.Level = domain.CalculateLevel(p.XP)
	return oldXP, p.XP, nil
}

func (r *fakeParticipantRepo) UpdatePushToken(_ context.Context, userID uint, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[userID]
	if !ok {
		return ErrParticipantNotFound
	}
	p.PushToken = token
	return nil
}

// staleReadRepo always reports the pre-check-in snapshot, simulating two
// requests that both read before either writes.
type staleReadRepo struct {
	*fakeParticipantRepo
}

func (r *staleReadRepo) FindParticipantByUserID(ctx context.Context, userID uint) (domain.Participant, error) {
	p, err := r.fakeParticipantRepo.FindParticipantByUserID(ctx, userID)
	if err != nil {
		return domain.Participant{}, err
	}
	p.CheckedIn = false
	return p, nil
}

func newParticipant(id uint, approved, checkedIn bool) domain.Participant {
	return domain.Participant{
		User:        domain.User{ID: id, Role: domain.RoleParticipant},
		Approved:    approved,
		CheckedIn:   checkedIn,
		Level:       1,
		CheckInCode: "code-1",
	}
}

func TestParticipantService_Approve(t *testing.T) {
	t.Run("approves a pending participant", func(t *testing.T) {
		repo := newFakeParticipantRepo(newParticipant(1, false, false))
		svc := NewParticipantService(repo)

		got, err := svc.Approve(context.Background(), 1)

		require.NoError(t, err)
		assert.True(t, got.Approved)

		stored, _ := repo.FindParticipantByUserID(context.Background(), 1)
		assert.True(t, stored.Approved)
	})

	t.Run("approving twice is a no-op", func(t *testing.T) {
		repo := newFakeParticipantRepo(newParticipant(1, true, false))
		svc := NewParticipantService(repo)

		got, err := svc.Approve(context.Background(), 1)

		require.NoError(t, err)
		assert.True(t, got.Approved)
	})

	t.Run("unknown participant", func(t *testing.T) {
		svc := NewParticipantService(newFakeParticipantRepo())

		_, err := svc.Approve(context.Background(), 42)

		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})
}

func TestParticipantService_CheckIn(t *testing.T) {
	t.Run("awards check-in XP once", func(t *testing.T) {
		repo := newFakeParticipantRepo(newParticipant(1, true, false))
		svc := NewParticipantService(repo)

		result, err := svc.CheckIn(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, domain.XPCheckIn, result.XP)
		assert.Equal(t, 1, result.NewLevel)
		assert.False(t, result.LeveledUp)

		stored, _ := repo.FindParticipantByUserID(context.Background(), 1)
		assert.True(t, stored.CheckedIn)
	})

	t.Run("rejects unapproved participant", func(t *testing.T) {
		repo := newFakeParticipantRepo(newParticipant(1, false, false))
		svc := NewParticipantService(repo)

		_, err := svc.CheckIn(context.Background(), 1)

		assert.ErrorIs(t, err, ErrNotApproved)
	})

	t.Run("racing check-ins award XP exactly once", func(t *testing.T) {
		// Both callers observe the pre-check-in snapshot, as when a
		// volunteer scan and an admin check-in overlap. The storage
		// test-and-set decides the winner.
		repo := newFakeParticipantRepo(newParticipant(1, true, false))
		stale := &staleReadRepo{fakeParticipantRepo: repo}
		svc := NewParticipantService(stale)

		err1 := func() error { _, err := svc.CheckIn(context.Background(), 1); return err }()
		err2 := func() error { _, err := svc.CheckIn(context.Background(), 1); return err }()

		require.NoError(t, err1)
		assert.ErrorIs(t, err2, ErrAlreadyCheckedIn)

		stored, _ := repo.FindParticipantByUserID(context.Background(), 1)
		assert.Equal(t, domain.XPCheckIn, stored.XP)
	})

	t.Run("rejects a second check-in without awarding XP", func(t *testing.T) {
		repo := newFakeParticipantRepo(newParticipant(1, true, true))
		svc := NewParticipantService(repo)

		_, err := svc.CheckIn(context.Background(), 1)

		assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

		stored, _ := repo.FindParticipantByUserID(context.Background(), 1)
		assert.Equal(t, 0, stored.XP)
	})
}

func TestParticipantService_CheckInByCode(t *testing.T) {
	t.Run("resolves the code and checks in", func(t *testing.T) {
		repo := newFakeParticipantRepo(newParticipant(7, true, false))
		svc := NewParticipantService(repo)

		participant, result, err := svc.CheckInByCode(context.Background(), "code-1")

		require.NoError(t, err)
		assert.Equal(t, uint(7), participant.ID)
		assert.True(t, participant.CheckedIn)
		assert.Equal(t, domain.XPCheckIn, result.XP)
		// The projection reflects the award, not the pre-award snapshot.
		assert.Equal(t, result.XP, participant.XP)
		assert.Equal(t, result.NewLevel, participant.Level)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc := NewParticipantService(newFakeParticipantRepo())

		_, _, err := svc.CheckInByCode(context.Background(), "nope")

		assert.ErrorIs(t, err, ErrParticipantNotFound)
	})
}

func TestParticipantService_AddXP(t *testing.T) {
	t.Run("reports a level-up when crossing a boundary", func(t *testing.T) {
		p := newParticipant(1, true, true)
		p.XP = 90
		repo := newFakeParticipantRepo(p)
		svc := NewParticipantService(repo)

		result, err := svc.AddXP(context.Background(), 1, domain.XPCheckIn)

		require.NoError(t, err)
		assert.Equal(t, 110, result.XP)
		assert.Equal(t, 1, result.OldLevel)
		assert.Equal(t, 2, result.NewLevel)
		assert.True(t, result.LeveledUp)
	})

	t.Run("concurrent awards are all applied", func(t *testing.T) {
		repo := newFakeParticipantRepo(newParticipant(1, true, true))
		svc := NewParticipantService(repo)

		const workers = 8
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				_, err := svc.AddXP(context.Background(), 1, domain.XPFeedbackSubmission)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, _ := repo.FindParticipantByUserID(context.Background(), 1)
		assert.Equal(t, workers*domain.XPFeedbackSubmission, stored.XP)
	})
}

func TestParticipantService_RegisterPushToken(t *testing.T) {
	repo := newFakeParticipantRepo(newParticipant(1, true, false))
	svc := NewParticipantService(repo)

	err := svc.RegisterPushToken(context.Background(), 1, "ExponentPushToken[abc]")

	require.NoError(t, err)

	stored, _ := repo.FindParticipantByUserID(context.Background(), 1)
	assert.Equal(t, "ExponentPushToken[abc]", stored.PushToken)
}
