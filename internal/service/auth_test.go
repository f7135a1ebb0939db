package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
)

type fakeAuthRepo struct {
	usersByEmail map[string]domain.User
	nextID       uint
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{usersByEmail: make(map[string]domain.User)}
}

func (r *fakeAuthRepo) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := r.usersByEmail[user.Email]; ok {
		return domain.User{}, ErrUserEmailExists
	}
	r.nextID++
	user.ID = r.nextID
	r.usersByEmail[user.Email] = user
	return user, nil
}

func (r *fakeAuthRepo) CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	user, err := r.CreateUser(ctx, participant.User)
	if err != nil {
		return domain.Participant{}, err
	}
	participant.User = user
	return participant, nil
}

func (r *fakeAuthRepo) CreateVolunteer(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error) {
	user, err := r.CreateUser(ctx, volunteer.User)
	if err != nil {
		return domain.Volunteer{}, err
	}
	volunteer.User = user
	return volunteer, nil
}

func (r *fakeAuthRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.usersByEmail[email]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *fakeAuthRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.usersByEmail {
		if user.Role == role {
			out = append(out, user)
		}
	}
	return out, nil
}

func TestAuthService_SignupParticipant(t *testing.T) {
	t.Run("new accounts start unapproved at level 1", func(t *testing.T) {
		svc := NewAuthService(newFakeAuthRepo())

		created, err := svc.SignupParticipant(context.Background(), domain.Participant{
			User: domain.User{Email: "a@b.com", Password: "secret123", Name: "Ada"},
		})

		require.NoError(t, err)
		assert.Equal(t, domain.RoleParticipant, created.Role)
		assert.False(t, created.Approved)
		assert.Zero(t, created.XP)
		assert.Equal(t, 1, created.Level)
		assert.NotEmpty(t, created.CheckInCode)
		// Password is stored hashed.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := NewAuthService(newFakeAuthRepo())

		_, err := svc.SignupParticipant(context.Background(), domain.Participant{
			User: domain.User{Email: "a@b.com", Password: "secret123"},
		})
		require.NoError(t, err)

		_, err = svc.SignupParticipant(context.Background(), domain.Participant{
			User: domain.User{Email: "a@b.com", Password: "secret123"},
		})

		assert.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	_, err := svc.SignupParticipant(context.Background(), domain.Participant{
		User: domain.User{Email: "a@b.com", Password: "secret123"},
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "a@b.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "a@b.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "a@b.com", "nope")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "x@y.com", "secret123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestAuthService_CreateAdmin(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	created, err := svc.CreateAdmin(context.Background(), domain.Admin{
		User: domain.User{Email: "admin@b.com", Password: "secret123"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, created.Role)

	admins, err := svc.ListAdmins(context.Background())
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestAuthService_CreateVolunteer(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo())

	created, err := svc.CreateVolunteer(context.Background(), domain.Volunteer{
		User: domain.User{Email: "vol@b.com", Password: "secret123"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleVolunteer, created.Role)
}
