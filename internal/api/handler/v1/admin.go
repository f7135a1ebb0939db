package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/request"
	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/response"
	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/service"
)

type AdminEventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	UpdateStatus(ctx context.Context, eventID uint, next domain.EventStatus) (domain.Event, error)
	DeclareWinner(ctx context.Context, eventID, userID uint) (domain.XPResult, error)
	FeedbackSummary(ctx context.Context, eventID uint) (domain.FeedbackSummary, error)
}

type AdminHandler struct {
	participantSvc ParticipantService
	eventSvc       AdminEventService
	authSvc        AuthService
}

func NewAdminHandler(participantSvc ParticipantService, eventSvc AdminEventService, authSvc AuthService) *AdminHandler {
	return &AdminHandler{
		participantSvc: participantSvc,
		eventSvc:       eventSvc,
		authSvc:        authSvc,
	}
}

// HandleListParticipants godoc
// @Summary      List all participants
// @Tags         admin
// @Produce      json
// @Success      200  {array}   response.ParticipantStatusResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/participants [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleListParticipants(ctx *gin.Context) {
	participants, err := h.participantSvc.ListParticipants(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListParticipants -> h.participantSvc.ListParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	out := make([]response.ParticipantStatusResponse, 0, len(participants))
	for _, p := range participants {
		out = append(out, response.NewParticipantStatus(p))
	}

	ctx.JSON(http.StatusOK, out)
}

// HandleApproveParticipant godoc
// @Summary      Approve a participant
// @Description  Idempotent: approving an approved participant is a no-op.
// @Tags         admin
// @Produce      json
// @Param        participantID  path  int  true  "Participant user ID"
// @Success      200  {object}  response.ParticipantStatusResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/participants/{participantID}/approve [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleApproveParticipant(ctx *gin.Context) {
	participantID, err := strconv.ParseUint(ctx.Param("participantID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid participant ID: %w", err)))
		return
	}

	participant, err := h.participantSvc.Approve(ctx.Request.Context(), uint(participantID))
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))
			return
		}

		err = fmt.Errorf("v1.HandleApproveParticipant -> h.participantSvc.Approve -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantStatus(participant))
}

// HandleCheckInParticipant godoc
// @Summary      Check a participant in
// @Description  Requires approval; awards check-in XP once.
// @Tags         admin
// @Produce      json
// @Param        participantID  path  int  true  "Participant user ID"
// @Success      200  {object}  domain.XPResult
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/participants/{participantID}/checkin [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleCheckInParticipant(ctx *gin.Context) {
	participantID, err := strconv.ParseUint(ctx.Param("participantID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid participant ID: %w", err)))
		return
	}

	result, err := h.participantSvc.CheckIn(ctx.Request.Context(), uint(participantID))
	if err != nil {
		renderCheckInErr(ctx, err, uint(participantID))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         admin,events
// @Accept       json
// @Produce      json
// @Param        request  body  request.CreateEventRequest  true  "request body"
// @Success      201  {object}  domain.Event
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/events [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid starts_at: %w", err)))
		return
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid ends_at: %w", err)))
		return
	}
	if !endsAt.After(startsAt) {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("ends_at must be after starts_at")))
		return
	}

	created, err := h.eventSvc.CreateEvent(ctx.Request.Context(), domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.eventSvc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEventStatus godoc
// @Summary      Update an event's status
// @Description  Completing an event awards completion XP to every enrollee.
// @Tags         admin,events
// @Accept       json
// @Produce      json
// @Param        eventID  path  int                               true  "Event ID"
// @Param        request  body  request.UpdateEventStatusRequest  true  "request body"
// @Success      200  {object}  domain.Event
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/events/{eventID}/status [put]
// @Security     BearerAuth
func (h *AdminHandler) HandleUpdateEventStatus(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	var req request.UpdateEventStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.eventSvc.UpdateStatus(ctx.Request.Context(), uint(eventID), domain.EventStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrInvalidStatusChange):
			response.RenderErr(ctx, response.ErrConflict(service.ErrInvalidStatusChange))
		default:
			err = fmt.Errorf("v1.HandleUpdateEventStatus -> h.eventSvc.UpdateStatus -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleDeclareWinner godoc
// @Summary      Declare an event winner
// @Description  Awards the winner bonus to an enrolled participant.
// @Tags         admin,events
// @Accept       json
// @Produce      json
// @Param        eventID  path  int                           true  "Event ID"
// @Param        request  body  request.DeclareWinnerRequest  true  "request body"
// @Success      200  {object}  domain.XPResult
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/events/{eventID}/winner [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleDeclareWinner(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	var req request.DeclareWinnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.eventSvc.DeclareWinner(ctx.Request.Context(), uint(eventID), req.ParticipantID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrParticipantNotEnrolled):
			response.RenderErr(ctx, response.ErrConflict(service.ErrParticipantNotEnrolled))
		default:
			err = fmt.Errorf("v1.HandleDeclareWinner -> h.eventSvc.DeclareWinner -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleEventFeedback godoc
// @Summary      Get an event's feedback summary
// @Tags         admin,feedback
// @Produce      json
// @Param        eventID  path  int  true  "Event ID"
// @Success      200  {object}  domain.FeedbackSummary
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/events/{eventID}/feedback [get]
// @Security     BearerAuth
func (h *AdminHandler) HandleEventFeedback(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	summary, err := h.eventSvc.FeedbackSummary(ctx.Request.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleEventFeedback -> h.eventSvc.FeedbackSummary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// HandleCreateVolunteer godoc
// @Summary      Create a volunteer account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body  request.CreateVolunteerRequest  true  "request body"
// @Success      201  {object}  domain.Volunteer
// @Failure      400  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/volunteers [post]
// @Security     BearerAuth
func (h *AdminHandler) HandleCreateVolunteer(ctx *gin.Context) {
	var req request.CreateVolunteerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.authSvc.CreateVolunteer(ctx.Request.Context(), domain.Volunteer{
		User: domain.User{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
		},
		EventID: req.EventID,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateVolunteer -> h.authSvc.CreateVolunteer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func renderCheckInErr(ctx *gin.Context, err error, participantID uint) {
	switch {
	case errors.Is(err, service.ErrParticipantNotFound):
		response.RenderErr(ctx, response.ErrNotFound("participant", "ID", participantID))
	case errors.Is(err, service.ErrNotApproved):
		response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotApproved))
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyCheckedIn))
	default:
		err = fmt.Errorf("v1.renderCheckInErr -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
