package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Kevin-Guilherme/fluentify/docs"
	"github.com/Kevin-Guilherme/fluentify/middleware"
	"github.com/Kevin-Guilherme/fluentify/services/handlers"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// recordings up to MaxAudioSize plus multipart overhead
const bodyLimit = MaxAudioSize + 1024*1024

type HttpService struct {
	context.DefaultService

	port     int
	app      *fiber.App
	database *DatabaseService
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	jwtSvc := svc.Service(JWT_SVC).(*JWTService)
	userSvc := svc.Service(USER_SVC).(*UserService)
	conversationSvc := svc.Service(CONVERSATION_SVC).(*ConversationService)
	rateLimitSvc := svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	monitoringSvc, _ := svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.database, _ = svc.Service(DATABASE_SVC).(*DatabaseService)
	svc.app = newApp(monitoringSvc, svc.handleError)

	conversationHandler := handlers.NewConversationHandler(
		conversationSvc,
		svc.Service(TUTOR_SVC).(*TutorService),
		svc.Service(SPEECH_SVC).(*SpeechService),
	)
	userHandler := handlers.NewUserHandler(userSvc)
	topicHandler := handlers.NewTopicHandler(svc.Service(TOPIC_SVC).(*TopicService))
	storageHandler := handlers.NewStorageHandler(svc.Service(STORAGE_SVC).(*StorageService))

	docs.SwaggerInfo.BasePath = ""

	//Validation endpoints
	svc.app.Get("/ping", svc.ping)
	svc.app.Get("/swagger/*", swagger.HandlerDefault)
	if monitoringSvc != nil {
		svc.app.Get("/metrics", monitoringSvc.MetricsHandler())
	}

	v1 := svc.app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	auth := middleware.RequiredAuth(jwtSvc, userSvc)

	v1.Post("/auth/sync", auth, userHandler.SyncUser)

	topics := v1.Group("/topics", auth)
	topics.Get("/", topicHandler.ListTopics)
	topics.Get("/random", topicHandler.RandomTopic)
	topics.Get("/:id", topicHandler.GetTopic)

	conversations := v1.Group("/conversations", auth)
	conversations.Post("/", conversationHandler.CreateConversation)
	conversations.Get("/", conversationHandler.ListConversations)
	conversations.Get("/:id", conversationHandler.GetConversation)
	conversations.Post("/:id/messages", conversationHandler.SendMessage)
	conversations.Post("/:id/reply", middleware.RateLimit(rateLimitSvc, shared.EndpointReply), conversationHandler.Reply)
	conversations.Post("/:id/audio", middleware.RateLimit(rateLimitSvc, shared.EndpointAudio), conversationHandler.SendVoiceMessage)
	conversations.Post("/:id/complete", conversationHandler.CompleteConversation)
	conversations.Get("/:id/feedback", conversationHandler.GetFeedback)
	conversations.Patch("/:id/abandon", conversationHandler.AbandonConversation)

	users := v1.Group("/users/me", auth)
	users.Get("/", userHandler.GetMe)
	users.Patch("/", userHandler.UpdateMe)
	users.Get("/stats", userHandler.GetStats)
	users.Get("/history", userHandler.GetHistory)
	users.Get("/progress", userHandler.GetProgress)

	storage := v1.Group("/storage", auth)
	storage.Get("/presigned-url", storageHandler.PresignedURL)
	storage.Delete("/audio/*", storageHandler.DeleteAudio)

	svc.app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func newApp(monitoringSvc *MonitoringService, errorHandler fiber.ErrorHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      shared.ServiceName,
		JSONEncoder:  shared.JSONAPI.Marshal,
		JSONDecoder:  shared.JSONAPI.Unmarshal,
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if os.Getenv("LOG_LEVEL") == "TRACE" {
		app.Use(logger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: getEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if monitoringSvc != nil {
		app.Use(MonitoringMiddleware(monitoringSvc))
	}

	return app
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

// handleError classifies raw database errors before rendering them.
func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if _, ok := shared.GetAppError(err); ok || errors.As(err, &fiberErr) || svc.database == nil {
		return shared.ErrorHandler(c, err)
	}

	if appErr, ok := shared.GetAppError(svc.database.HandleError(err)); ok {
		return shared.ResponseAppError(c, appErr)
	}
	return shared.ResponseInternalError(c)
}
