package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/request"
	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/response"
	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/service"
)

type SuperAdminHandler struct {
	authSvc AuthService
}

func NewSuperAdminHandler(authSvc AuthService) *SuperAdminHandler {
	return &SuperAdminHandler{
		authSvc: authSvc,
	}
}

// HandleCreateAdmin godoc
// @Summary      Create an admin account
// @Tags         superadmin
// @Accept       json
// @Produce      json
// @Param        request  body  request.CreateAdminRequest  true  "request body"
// @Success      201  {object}  domain.User
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /superadmin/create-admin [post]
// @Security     BearerAuth
func (h *SuperAdminHandler) HandleCreateAdmin(ctx *gin.Context) {
	var req request.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.authSvc.CreateAdmin(ctx.Request.Context(), domain.Admin{
		User: domain.User{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
		},
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateAdmin -> h.authSvc.CreateAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListAdmins godoc
// @Summary      List admin accounts
// @Tags         superadmin
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /superadmin/admins [get]
// @Security     BearerAuth
func (h *SuperAdminHandler) HandleListAdmins(ctx *gin.Context) {
	admins, err := h.authSvc.ListAdmins(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAdmins -> h.authSvc.ListAdmins -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, admins)
}
