package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/nst-sdc/nst-events-sub001/docs"
	v1 "github.com/nst-sdc/nst-events-sub001/internal/api/handler/v1"
	"github.com/nst-sdc/nst-events-sub001/internal/api/middleware"
	"github.com/nst-sdc/nst-events-sub001/internal/config"
	"github.com/nst-sdc/nst-events-sub001/internal/domain"
	"github.com/nst-sdc/nst-events-sub001/internal/notification"
	"github.com/nst-sdc/nst-events-sub001/internal/repository"
	"github.com/nst-sdc/nst-events-sub001/internal/repository/dao"
	"github.com/nst-sdc/nst-events-sub001/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Hub is the live alert fan-out; the caller owns its lifecycle and
	// starts Run in its own goroutine.
	Hub *v1.AlertHub

	participantSvc *service.ParticipantService
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userRepo := repository.NewUserRepository(dao.NewUserDAO(db), dao.NewParticipantDAO(db), dao.NewVolunteerDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db), dao.NewFeedbackDAO(db))
	alertRepo := repository.NewAlertRepository(dao.NewAlertDAO(db))
	lostFoundRepo := repository.NewLostFoundRepository(dao.NewLostFoundDAO(db))

	hub := v1.NewAlertHub()
	s.Hub = hub

	pushClient := notification.NewPushClient(conf.Notification.Endpoint, conf.Notification.Timeout)

	authSvc := service.NewAuthService(userRepo)
	userSvc := service.NewUserService(userRepo)
	participantSvc := service.NewParticipantService(userRepo)
	alertSvc := service.NewAlertService(alertRepo, userRepo, eventRepo, pushClient, hub)
	eventSvc := service.NewEventService(eventRepo, participantSvc, alertSvc)
	lostFoundSvc := service.NewLostFoundService(lostFoundRepo)

	// The approval gate reads participant state on participant-restricted
	// routes, so approval revocation takes effect without reissuing tokens.
	s.participantSvc = participantSvc

	authHandler := v1.NewAuthHandler(conf.API, authSvc)
	participantHandler := v1.NewParticipantHandler(participantSvc, eventSvc, userSvc)
	adminHandler := v1.NewAdminHandler(participantSvc, eventSvc, authSvc)
	superAdminHandler := v1.NewSuperAdminHandler(authSvc)
	volunteerHandler := v1.NewVolunteerHandler(participantSvc, userSvc)
	alertHandler := v1.NewAlertHandler(alertSvc, hub)
	lostFoundHandler := v1.NewLostFoundHandler(lostFoundSvc)

	s.MountHandlers(authHandler, participantHandler, adminHandler, superAdminHandler, volunteerHandler, alertHandler, lostFoundHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	participantHandler *v1.ParticipantHandler,
	adminHandler *v1.AdminHandler,
	superAdminHandler *v1.SuperAdminHandler,
	volunteerHandler *v1.VolunteerHandler,
	alertHandler *v1.AlertHandler,
	lostFoundHandler *v1.LostFoundHandler,
) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)
	}

	// Unapproved participants reach only the limited surface.
	limited := s.Router.Group(basePath, verifyJWT, middleware.RequireGroup(domain.GroupParticipantLimited, s.participantSvc))
	{
		limited.GET("/participant/status", participantHandler.HandleGetStatus)
		limited.GET("/participant/map", participantHandler.HandleGetMap)
	}

	restricted := s.Router.Group(basePath, verifyJWT, middleware.RequireGroup(domain.GroupParticipantRestricted, s.participantSvc))
	{
		restricted.GET("/participant/qr", participantHandler.HandleGetQR)
		restricted.GET("/participant/events", participantHandler.HandleGetEvents)
		restricted.POST("/participant/events/:eventID/enroll", participantHandler.HandleEnroll)
		restricted.PUT("/participant/push-token", participantHandler.HandleRegisterPushToken)
		restricted.POST("/feedback", participantHandler.HandleSubmitFeedback)
		restricted.POST("/lost-found/report", lostFoundHandler.HandleReport)
		restricted.PUT("/lost-found/:itemID/close", lostFoundHandler.HandleClose)
		restricted.GET("/alerts", alertHandler.HandleListAlerts)
		restricted.GET("/alerts/subscribe", alertHandler.HandleSubscribe)
	}

	// Listing is shared: the handler narrows visibility by role, so admins
	// can find pending reports to moderate.
	authed := s.Router.Group(basePath, verifyJWT)
	{
		authed.GET("/lost-found", lostFoundHandler.HandleList)
	}

	admin := s.Router.Group(basePath, verifyJWT, middleware.RequireGroup(domain.GroupAdminOnly, s.participantSvc))
	{
		admin.GET("/admin/participants", adminHandler.HandleListParticipants)
		admin.POST("/admin/participants/:participantID/approve", adminHandler.HandleApproveParticipant)
		admin.POST("/admin/participants/:participantID/checkin", adminHandler.HandleCheckInParticipant)
		admin.POST("/admin/events", adminHandler.HandleCreateEvent)
		admin.PUT("/admin/events/:eventID/status", adminHandler.HandleUpdateEventStatus)
		admin.POST("/admin/events/:eventID/winner", adminHandler.HandleDeclareWinner)
		admin.GET("/admin/events/:eventID/feedback", adminHandler.HandleEventFeedback)
		admin.POST("/admin/volunteers", adminHandler.HandleCreateVolunteer)
		admin.POST("/alerts/send", alertHandler.HandleSendAlert)
		admin.POST("/notifications/broadcast", alertHandler.HandleBroadcast)
		admin.PUT("/lost-found/:itemID/status", lostFoundHandler.HandleUpdateStatus)
	}

	superadmin := s.Router.Group(basePath, verifyJWT, middleware.RequireGroup(domain.GroupSuperAdminOnly, s.participantSvc))
	{
		superadmin.POST("/superadmin/create-admin", superAdminHandler.HandleCreateAdmin)
		superadmin.GET("/superadmin/admins", superAdminHandler.HandleListAdmins)
	}

	volunteer := s.Router.Group(basePath, verifyJWT, middleware.RequireGroup(domain.GroupVolunteerOnly, s.participantSvc))
	{
		volunteer.GET("/volunteer/event", volunteerHandler.HandleGetAssignedEvent)
		volunteer.POST("/volunteer/scan", volunteerHandler.HandleScan)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "NST Events API"
	docs.SwaggerInfo.Description = "Event management backend with check-in, XP, alerts and lost-and-found."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
