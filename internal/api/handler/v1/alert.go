package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/request"
	"github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1/response"
	"github.com/nst-sdc/nst-events-sub001/internal/api/middleware"
	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

type subscriber struct {
	conn   *websocket.Conn
	send   chan []byte
	userID uint
}

// AlertHub fans created alerts out to connected clients. It replaces the
// mobile app's ambient realtime channel with an explicit subscription
// interface: the alert service publishes, subscribers receive.
type AlertHub struct {
	subscribers map[uint]*subscriber
	mu          sync.RWMutex

	broadcast  chan []byte
	register   chan *subscriber
	unregister chan *subscriber
}

func NewAlertHub() *AlertHub {
	return &AlertHub{
		subscribers: make(map[uint]*subscriber),
		broadcast:   make(chan []byte),
		register:    make(chan *subscriber),
		unregister:  make(chan *subscriber),
	}
}

func (h *AlertHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.subscribers[sub.userID] = sub
			h.mu.Unlock()
		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.subscribers[sub.userID]; ok {
				delete(h.subscribers, sub.userID)
				close(sub.send)
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for _, sub := range h.subscribers {
				select {
				case sub.send <- message:
				default:
					// Slow consumers are dropped rather than backing
					// up the hub.
					close(sub.send)
					delete(h.subscribers, sub.userID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish implements service.AlertPublisher.
func (h *AlertHub) Publish(alert domain.Alert) {
	payload, err := json.Marshal(alert)
	if err != nil {
		zap.L().Error("failed to marshal alert for publish", zap.Error(err))
		return
	}

	h.broadcast <- payload
}

type AlertService interface {
	CreateAlert(ctx context.Context, alert domain.Alert, targets domain.AlertTarget) (domain.Alert, int, error)
	ListAlerts(ctx context.Context) ([]domain.Alert, error)
	Broadcast(ctx context.Context, title, message string, targets domain.AlertTarget) (int, error)
}

type AlertHandler struct {
	svc AlertService
	hub *AlertHub
}

func NewAlertHandler(svc AlertService, hub *AlertHub) *AlertHandler {
	return &AlertHandler{
		svc: svc,
		hub: hub,
	}
}

// HandleSendAlert godoc
// @Summary      Create and broadcast an alert
// @Description  Appends an immutable alert row, publishes it to live
// subscribers and pushes it to the target audience.
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        request  body  request.SendAlertRequest  true  "request body"
// @Success      201  {object}  response.AlertCreatedResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /alerts/send [post]
// @Security     BearerAuth
func (h *AlertHandler) HandleSendAlert(ctx *gin.Context) {
	_, role, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrMissingCredentials(errors.New("no authenticated principal")))
		return
	}

	var req request.SendAlertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	targets := domain.AlertTarget(req.Targets)
	if req.Targets == "" {
		targets = domain.TargetAll
	}

	alert, notified, err := h.svc.CreateAlert(ctx.Request.Context(), domain.Alert{
		Title:       req.Title,
		Message:     req.Message,
		SenderRole:  role,
		IsEmergency: req.IsEmergency,
	}, targets)
	if err != nil {
		err = fmt.Errorf("v1.HandleSendAlert -> h.svc.CreateAlert -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.AlertCreatedResponse{
		Alert:    alert,
		Notified: notified,
	})
}

// HandleListAlerts godoc
// @Summary      List alerts
// @Description  Returns the alert log, newest first. Always reads storage.
// @Tags         alerts
// @Produce      json
// @Success      200  {array}   domain.Alert
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /alerts [get]
// @Security     BearerAuth
func (h *AlertHandler) HandleListAlerts(ctx *gin.Context) {
	alerts, err := h.svc.ListAlerts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAlerts -> h.svc.ListAlerts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, alerts)
}

// HandleBroadcast godoc
// @Summary      Push a message without creating an alert
// @Description  One push to the whole de-duplicated token batch of the
// target audience. Reports the token count notified.
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        request  body  request.BroadcastRequest  true  "request body"
// @Success      200  {object}  response.BroadcastResponse
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /notifications/broadcast [post]
// @Security     BearerAuth
func (h *AlertHandler) HandleBroadcast(ctx *gin.Context) {
	var req request.BroadcastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	notified, err := h.svc.Broadcast(ctx.Request.Context(), req.Title, req.Message, domain.AlertTarget(req.Targets))
	if err != nil {
		err = fmt.Errorf("v1.HandleBroadcast -> h.svc.Broadcast -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.BroadcastResponse{Notified: notified})
}

// HandleSubscribe godoc
// @Summary      Subscribe to the alert stream
// @Description  Upgrades to a websocket delivering each new alert as JSON.
// @Tags         alerts
// @Success      101
// @Failure      401  {object}  response.Err
// @Router       /alerts/subscribe [get]
// @Security     BearerAuth
func (h *AlertHandler) HandleSubscribe(ctx *gin.Context) {
	userID, _, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrMissingCredentials(errors.New("no authenticated principal")))
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Error("websocket upgrade failed", zap.Error(err))
		return
	}

	sub := &subscriber{
		conn:   conn,
		send:   make(chan []byte, 16),
		userID: userID,
	}
	h.hub.register <- sub

	go h.writeLoop(sub)
	go h.readLoop(sub)
}

func (h *AlertHandler) writeLoop(sub *subscriber) {
	defer sub.conn.Close()

	for message := range sub.send {
		if err := sub.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// readLoop drains the connection so pings are handled; clients never send
// application messages.
func (h *AlertHandler) readLoop(sub *subscriber) {
	defer func() {
		h.hub.unregister <- sub
		sub.conn.Close()
	}()

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}

var _ service.AlertPublisher = (*AlertHub)(nil)
