package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nst-sdc/nst-events-sub001/internal/api/middleware"
	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/service"
)

type fakeUserService struct {
	user      domain.User
	volunteer domain.Volunteer
	volErr    error
}

func (s *fakeUserService) GetUser(_ context.Context, _ uint) (domain.User, error) {
	return s.user, nil
}

func (s *fakeUserService) GetVolunteer(_ context.Context, _ uint) (domain.Volunteer, error) {
	return s.volunteer, s.volErr
}

func volunteerTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/v1/volunteer/event", nil)
	ctx.Set(middleware.ContextKeyUserID, uint(1))
	ctx.Set(middleware.ContextKeyRole, domain.RoleVolunteer)

	return ctx, w
}

func TestVolunteerHandler_HandleGetAssignedEvent(t *testing.T) {
	volunteerUser := domain.User{ID: 1, Role: domain.RoleVolunteer}

	t.Run("returns the assigned event payload", func(t *testing.T) {
		eventID := uint(5)
		uSvc := &fakeUserService{
			user: volunteerUser,
			volunteer: domain.Volunteer{
				User:    volunteerUser,
				EventID: &eventID,
				Event:   &domain.Event{ID: 5, Title: "Hackathon", Status: domain.EventActive},
			},
		}
		handler := NewVolunteerHandler(nil, uSvc)

		ctx, w := volunteerTestContext(t)
		handler.HandleGetAssignedEvent(ctx)

		require.Equal(t, http.StatusOK, w.Code)

		var got domain.Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, uint(5), got.ID)
		assert.Equal(t, "Hackathon", got.Title)
	})

	t.Run("unassigned volunteer gets 404", func(t *testing.T) {
		uSvc := &fakeUserService{
			user:      volunteerUser,
			volunteer: domain.Volunteer{User: volunteerUser},
		}
		handler := NewVolunteerHandler(nil, uSvc)

		ctx, w := volunteerTestContext(t)
		handler.HandleGetAssignedEvent(ctx)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown volunteer gets 404, not 500", func(t *testing.T) {
		uSvc := &fakeUserService{
			user:   volunteerUser,
			volErr: service.ErrVolunteerNotFound,
		}
		handler := NewVolunteerHandler(nil, uSvc)

		ctx, w := volunteerTestContext(t)
		handler.HandleGetAssignedEvent(ctx)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
