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
	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/service"
)

type ParticipantService interface {
	GetParticipant(ctx context.Context, userID uint) (domain.Participant, error)
	ListParticipants(ctx context.Context) ([]domain.Participant, error)
	Approve(ctx context.Context, userID uint) (domain.Participant, error)
	CheckIn(ctx context.Context, userID uint) (domain.XPResult, error)
	CheckInByCode(ctx context.Context, code string) (domain.Participant, domain.XPResult, error)
	RegisterPushToken(ctx context.Context, userID uint, token string) error
}

type ParticipantEventService interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListEventsForParticipant(ctx context.Context, userID uint) ([]domain.Event, error)
	Enroll(ctx context.Context, eventID, userID uint) error
	SubmitFeedback(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error)
}

type ParticipantHandler struct {
	svc      ParticipantService
	eventSvc ParticipantEventService
	uSvc     UserService
}

func NewParticipantHandler(svc ParticipantService, eventSvc ParticipantEventService, uSvc UserService) *ParticipantHandler {
	return &ParticipantHandler{
		svc:      svc,
		eventSvc: eventSvc,
		uSvc:     uSvc,
	}
}

// HandleGetStatus godoc
// @Summary      Get own participant status
// @Description  Returns the caller's approval, check-in and XP state. Reachable before approval.
// @Tags         participant
// @Produce      json
// @Success      200  {object}  response.ParticipantStatusResponse
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participant/status [get]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleGetStatus(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participant, err := h.svc.GetParticipant(ctx.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("participant", "userID", user.ID))
			return
		}

		err = fmt.Errorf("v1.HandleGetStatus -> h.svc.GetParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewParticipantStatus(participant))
}

// HandleGetMap godoc
// @Summary      Get the venue map
// @Description  Limited-mode payload reachable by unapproved participants.
// @Tags         participant
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.Err
// @Router       /participant/map [get]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleGetMap(ctx *gin.Context) {
	events, err := h.eventSvc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMap -> h.eventSvc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	// The map view only shows where and when things happen, nothing gated
	// behind approval.
	locations := make([]gin.H, 0, len(events))
	for _, e := range events {
		locations = append(locations, gin.H{
			"title":     e.Title,
			"location":  e.Location,
			"starts_at": e.StartsAt,
			"status":    e.Status,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"locations": locations})
}

// HandleGetQR godoc
// @Summary      Get own check-in code
// @Description  Returns the payload the participant encodes into their QR.
// @Tags         participant
// @Produce      json
// @Success      200  {object}  response.QRResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participant/qr [get]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleGetQR(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participant, err := h.svc.GetParticipant(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetQR -> h.svc.GetParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.QRResponse{Code: participant.CheckInCode})
}

// HandleGetEvents godoc
// @Summary      List events
// @Description  Returns all events plus the caller's enrollments.
// @Tags         participant,events
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participant/events [get]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleGetEvents(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	all, err := h.eventSvc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEvents -> h.eventSvc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	enrolled, err := h.eventSvc.ListEventsForParticipant(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEvents -> h.eventSvc.ListEventsForParticipant -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"events":   all,
		"enrolled": enrolled,
	})
}

// HandleEnroll godoc
// @Summary      Enroll in an event
// @Tags         participant,events
// @Produce      json
// @Param        eventID  path  int  true  "Event ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participant/events/{eventID}/enroll [post]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleEnroll(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	if err = h.eventSvc.Enroll(ctx.Request.Context(), uint(eventID), user.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrAlreadyEnrolled):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyEnrolled))
		case errors.Is(err, service.ErrEventNotOpen):
			response.RenderErr(ctx, response.ErrConflict(service.ErrEventNotOpen))
		default:
			err = fmt.Errorf("v1.HandleEnroll -> h.eventSvc.Enroll -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleSubmitFeedback godoc
// @Summary      Submit feedback for an event
// @Description  One feedback per participant per event. Awards feedback XP.
// @Tags         participant,feedback
// @Accept       json
// @Produce      json
// @Param        request  body  request.SubmitFeedbackRequest  true  "request body"
// @Success      201  {object}  domain.Feedback
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /feedback [post]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleSubmitFeedback(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.eventSvc.SubmitFeedback(ctx.Request.Context(), domain.Feedback{
		ParticipantID: user.ID,
		EventID:       req.EventID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))
		case errors.Is(err, service.ErrFeedbackExists):
			response.RenderErr(ctx, response.ErrConflict(service.ErrFeedbackExists))
		default:
			err = fmt.Errorf("v1.HandleSubmitFeedback -> h.eventSvc.SubmitFeedback -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleRegisterPushToken godoc
// @Summary      Register a push token
// @Tags         participant
// @Accept       json
// @Produce      json
// @Param        request  body  request.PushTokenRequest  true  "request body"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /participant/push-token [put]
// @Security     BearerAuth
func (h *ParticipantHandler) HandleRegisterPushToken(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PushTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.RegisterPushToken(ctx.Request.Context(), user.ID, req.Token); err != nil {
		err = fmt.Errorf("v1.HandleRegisterPushToken -> h.svc.RegisterPushToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
