package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/request"
	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/response"
	"github.com/nst-sdc/nst-events-sub001/internal/service"
)

type VolunteerHandler struct {
	participantSvc ParticipantService
	uSvc           UserService
}

func NewVolunteerHandler(participantSvc ParticipantService, uSvc UserService) *VolunteerHandler {
	return &VolunteerHandler{
		participantSvc: participantSvc,
		uSvc:           uSvc,
	}
}

// HandleGetAssignedEvent godoc
// @Summary      Get the caller's assigned event
// @Tags         volunteer
// @Produce      json
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /volunteer/event [get]
// @Security     BearerAuth
func (h *VolunteerHandler) HandleGetAssignedEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	volunteer, err := h.uSvc.GetVolunteer(ctx.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrVolunteerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("volunteer", "userID", user.ID))
			return
		}

		err = fmt.Errorf("v1.HandleGetAssignedEvent -> h.uSvc.GetVolunteer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if volunteer.Event == nil {
		response.RenderErr(ctx, response.ErrNotFound("assigned event", "volunteer", user.ID))
		return
	}

	ctx.JSON(http.StatusOK, volunteer.Event)
}

// HandleScan godoc
// @Summary      Check a participant in by scanned QR code
// @Description  Resolves the scanned payload and checks the participant in,
// awarding check-in XP. Unapproved participants are rejected.
// @Tags         volunteer
// @Accept       json
// @Produce      json
// @Param        request  body  request.ScanRequest  true  "request body"
// @Success      200  {object}  response.CheckInResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /volunteer/scan [post]
// @Security     BearerAuth
func (h *VolunteerHandler) HandleScan(ctx *gin.Context) {
	var req request.ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, result, err := h.participantSvc.CheckInByCode(ctx.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantNotFound):
			response.RenderErr(ctx, response.ErrNotFound("participant", "code", req.Code))
		case errors.Is(err, service.ErrNotApproved):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotApproved))
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyCheckedIn))
		default:
			err = fmt.Errorf("v1.HandleScan -> h.participantSvc.CheckInByCode -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.CheckInResponse{
		Participant: response.NewParticipantStatus(participant),
		Award:       result,
	})
}
