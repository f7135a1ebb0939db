package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/response"
	"github.com/nst-sdc/nst-events-sub001/internal/api/middleware"
	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
	GetVolunteer(ctx context.Context, userID uint) (domain.Volunteer, error)
}

func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	userID, _, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		return domain.User{}, response.ErrMissingCredentials(errors.New("no authenticated principal"))
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrNotFound("user", "ID", userID)
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("svc.GetUser -> %w", err))
	}

	return user, nil
}
