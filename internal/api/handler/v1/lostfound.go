package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/request"
	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/response"
	"github.com/nst-sdc/nst-events-sub001/internal/api/middleware"
	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/service"
)

type LostFoundService interface {
	Report(ctx context.Context, item domain.LostFoundItem) (domain.LostFoundItem, error)
	Moderate(ctx context.Context, itemID uint, next domain.LostFoundStatus) (domain.LostFoundItem, error)
	Close(ctx context.Context, itemID, userID uint) (domain.LostFoundItem, error)
	ListVisible(ctx context.Context, userID uint) ([]domain.LostFoundItem, error)
	ListAll(ctx context.Context) ([]domain.LostFoundItem, error)
}

type LostFoundHandler struct {
	svc LostFoundService
}

func NewLostFoundHandler(svc LostFoundService) *LostFoundHandler {
	return &LostFoundHandler{
		svc: svc,
	}
}

// HandleReport godoc
// @Summary      Report a lost or found item
// @Description  Creates the item in the pending state, awaiting moderation.
// @Tags         lost-found
// @Accept       json
// @Produce      json
// @Param        request  body  request.ReportItemRequest  true  "request body"
// @Success      201  {object}  response.LostFoundItemResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /lost-found/report [post]
// @Security     BearerAuth
func (h *LostFoundHandler) HandleReport(ctx *gin.Context) {
	userID, _, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrMissingCredentials(errors.New("no authenticated principal")))
		return
	}

	var req request.ReportItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.Report(ctx.Request.Context(), domain.LostFoundItem{
		Type:        domain.LostFoundType(req.Type),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		ReportedBy:  userID,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleReport -> h.svc.Report -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewLostFoundItem(item))
}

// HandleList godoc
// @Summary      List lost and found items
// @Description  Participants see moderated items plus their own reports;
// admins see everything.
// @Tags         lost-found
// @Produce      json
// @Success      200  {array}   response.LostFoundItemResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /lost-found [get]
// @Security     BearerAuth
func (h *LostFoundHandler) HandleList(ctx *gin.Context) {
	userID, role, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrMissingCredentials(errors.New("no authenticated principal")))
		return
	}

	var (
		items []domain.LostFoundItem
		err   error
	)
	if role == domain.RoleAdmin || role == domain.RoleSuperAdmin {
		items, err = h.svc.ListAll(ctx.Request.Context())
	} else {
		items, err = h.svc.ListVisible(ctx.Request.Context(), userID)
	}
	if err != nil {
		err = fmt.Errorf("v1.HandleList -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewLostFoundItems(items))
}

// HandleUpdateStatus godoc
// @Summary      Moderate a reported item
// @Description  Admin decision on a pending item: open it to participants
// or reject it.
// @Tags         lost-found
// @Accept       json
// @Produce      json
// @Param        itemID   path  int                            true  "item ID"
// @Param        request  body  request.UpdateItemStatusRequest  true  "request body"
// @Success      200  {object}  response.LostFoundItemResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /lost-found/{itemID}/status [put]
// @Security     BearerAuth
func (h *LostFoundHandler) HandleUpdateStatus(ctx *gin.Context) {
	itemID, err := strconv.ParseUint(ctx.Param("itemID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateItemStatusRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.Moderate(ctx.Request.Context(), uint(itemID), domain.LostFoundStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("lost-found item", "ID", itemID))
		case errors.Is(err, service.ErrInvalidItemStatus):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateStatus -> h.svc.Moderate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewLostFoundItem(item))
}

// HandleClose godoc
// @Summary      Close a resolved item
// @Description  Only the participant who reported the item may close it,
// and only once it has been opened by moderation.
// @Tags         lost-found
// @Produce      json
// @Param        itemID  path  int  true  "item ID"
// @Success      200  {object}  response.LostFoundItemResponse
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /lost-found/{itemID}/close [put]
// @Security     BearerAuth
func (h *LostFoundHandler) HandleClose(ctx *gin.Context) {
	userID, _, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrMissingCredentials(errors.New("no authenticated principal")))
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("itemID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.Close(ctx.Request.Context(), uint(itemID), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("lost-found item", "ID", itemID))
		case errors.Is(err, service.ErrNotItemReporter):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrInvalidItemStatus):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleClose -> h.svc.Close -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.NewLostFoundItem(item))
}
