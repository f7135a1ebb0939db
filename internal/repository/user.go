package repository

import (
	"context"
	"fmt"

	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/repository/dao"
)

var (
	ErrUserEmailExists     = dao.ErrUserEmailExists
	ErrUserNotFound        = dao.ErrUserNotFound
	ErrParticipantNotFound = dao.ErrParticipantNotFound
	ErrAlreadyCheckedIn    = dao.ErrAlreadyCheckedIn
	ErrVolunteerNotFound   = dao.ErrVolunteerNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindByRole(ctx context.Context, role string) ([]dao.User, error)
	UpdatePushToken(ctx context.Context, userID uint, token string) error
	PushTokensByRoles(ctx context.Context, roles []string) ([]string, error)
}

type ParticipantDAO interface {
	Insert(ctx context.Context, user dao.User, participant dao.Participant) (dao.Participant, error)
	FindByUserID(ctx context.Context, userID uint) (dao.Participant, error)
	FindByCheckInCode(ctx context.Context, code string) (dao.Participant, error)
	List(ctx context.Context) ([]dao.Participant, error)
	SetApproved(ctx context.Context, userID uint) error
	SetCheckedIn(ctx context.Context, userID uint) error
	AddXP(ctx context.Context, userID uint, amount int, level func(xp int) int) (oldXP, newXP int, err error)
}

type VolunteerDAO interface {
	Insert(ctx context.Context, user dao.User, volunteer dao.Volunteer) (dao.Volunteer, error)
	FindByUserID(ctx context.Context, userID uint) (dao.Volunteer, error)
	AssignEvent(ctx context.Context, userID, eventID uint) error
}

type UserRepository struct {
	userDAO        UserDAO
	participantDAO ParticipantDAO
	volunteerDAO   VolunteerDAO
}

func NewUserRepository(userDAO UserDAO, participantDAO ParticipantDAO, volunteerDAO VolunteerDAO) *UserRepository {
	return &UserRepository{
		userDAO:        userDAO,
		participantDAO: participantDAO,
		volunteerDAO:   volunteerDAO,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.userDAO.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.userDAO.FindByID -> %w", err)
	}

	return userDaoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.userDAO.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.userDAO.FindByEmail -> %w", err)
	}

	return userDaoToDomain(found), nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	found, err := r.userDAO.FindByRole(ctx, string(role))
	if err != nil {
		return nil, fmt.Errorf("r.userDAO.FindByRole -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, u := range found {
		users = append(users, userDaoToDomain(u))
	}

	return users, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.userDAO.Insert(ctx, dao.User{
		Email:    user.Email,
		Password: user.Password,
		Name:     user.Name,
		Role:     string(user.Role),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.userDAO.Insert -> %w", err)
	}

	return userDaoToDomain(created), nil
}

func (r *UserRepository) UpdatePushToken(ctx context.Context, userID uint, token string) error {
	if err := r.userDAO.UpdatePushToken(ctx, userID, token); err != nil {
		return fmt.Errorf("r.userDAO.UpdatePushToken -> %w", err)
	}

	return nil
}

func (r *UserRepository) PushTokensByRoles(ctx context.Context, roles []domain.Role) ([]string, error) {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}

	tokens, err := r.userDAO.PushTokensByRoles(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("r.userDAO.PushTokensByRoles -> %w", err)
	}

	return tokens, nil
}

func (r *UserRepository) CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	daoUser := dao.User{
		Email:    participant.Email,
		Password: participant.Password,
		Name:     participant.Name,
		Role:     string(domain.RoleParticipant),
	}

	daoParticipant := dao.Participant{
		XP:          participant.XP,
		Level:       participant.Level,
		CheckInCode: participant.CheckInCode,
	}

	created, err := r.participantDAO.Insert(ctx, daoUser, daoParticipant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.participantDAO.Insert -> %w", err)
	}

	return participantDaoToDomain(created), nil
}

func (r *UserRepository) FindParticipantByUserID(ctx context.Context, userID uint) (domain.Participant, error) {
	found, err := r.participantDAO.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.participantDAO.FindByUserID -> %w", err)
	}

	return participantDaoToDomain(found), nil
}

func (r *UserRepository) FindParticipantByCheckInCode(ctx context.Context, code string) (domain.Participant, error) {
	found, err := r.participantDAO.FindByCheckInCode(ctx, code)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.participantDAO.FindByCheckInCode -> %w", err)
	}

	return participantDaoToDomain(found), nil
}

func (r *UserRepository) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	found, err := r.participantDAO.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.participantDAO.List -> %w", err)
	}

	participants := make([]domain.Participant, 0, len(found))
	for _, p := range found {
		participants = append(participants, participantDaoToDomain(p))
	}

	return participants, nil
}

func (r *UserRepository) ApproveParticipant(ctx context.Context, userID uint) error {
	if err := r.participantDAO.SetApproved(ctx, userID); err != nil {
		return fmt.Errorf("r.participantDAO.SetApproved -> %w", err)
	}

	return nil
}

func (r *UserRepository) MarkCheckedIn(ctx context.Context, userID uint) error {
	if err := r.participantDAO.SetCheckedIn(ctx, userID); err != nil {
		return fmt.Errorf("r.participantDAO.SetCheckedIn -> %w", err)
	}

	return nil
}

func (r *UserRepository) AddXP(ctx context.Context, userID uint, amount int) (oldXP, newXP int, err error) {
	oldXP, newXP, err = r.participantDAO.AddXP(ctx, userID, amount, domain.CalculateLevel)
	if err != nil {
		return 0, 0, fmt.Errorf("r.participantDAO.AddXP -> %w", err)
	}

	return oldXP, newXP, nil
}

func (r *UserRepository) CreateVolunteer(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error) {
	daoUser := dao.User{
		Email:    volunteer.Email,
		Password: volunteer.Password,
		Name:     volunteer.Name,
		Role:     string(domain.RoleVolunteer),
	}

	daoVolunteer := dao.Volunteer{
		EventID: volunteer.EventID,
	}

	created, err := r.volunteerDAO.Insert(ctx, daoUser, daoVolunteer)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("r.volunteerDAO.Insert -> %w", err)
	}

	return volunteerDaoToDomain(created), nil
}

func (r *UserRepository) FindVolunteerByUserID(ctx context.Context, userID uint) (domain.Volunteer, error) {
	found, err := r.volunteerDAO.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("r.volunteerDAO.FindByUserID -> %w", err)
	}

	return volunteerDaoToDomain(found), nil
}

func (r *UserRepository) AssignVolunteerEvent(ctx context.Context, userID, eventID uint) error {
	if err := r.volunteerDAO.AssignEvent(ctx, userID, eventID); err != nil {
		return fmt.Errorf("r.volunteerDAO.AssignEvent -> %w", err)
	}

	return nil
}

func userDaoToDomain(u dao.User) domain.User {
	user := domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Name:      u.Name,
		Role:      domain.Role(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.PushToken != nil {
		user.PushToken = *u.PushToken
	}

	return user
}

func participantDaoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		User:        userDaoToDomain(p.User),
		Approved:    p.Approved,
		CheckedIn:   p.CheckedIn,
		XP:          p.XP,
		Level:       p.Level,
		CheckInCode: p.CheckInCode,
	}
}

func volunteerDaoToDomain(v dao.Volunteer) domain.Volunteer {
	volunteer := domain.Volunteer{
		User:    userDaoToDomain(v.User),
		EventID: v.EventID,
	}
	if v.Event != nil {
		event := eventDaoToDomain(*v.Event)
		volunteer.Event = &event
	}

	return volunteer
}
