package bootstrap

import (
	"log"
	"time"

	"mentorlink-be/internal/config"
	"mentorlink-be/internal/controller"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/internal/pkg/mailer"
	"mentorlink-be/internal/pkg/serverutils"
	"mentorlink-be/internal/repository/memory"
	"mentorlink-be/internal/repository/unitofwork"
	"mentorlink-be/internal/service"
	"mentorlink-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	MatchController   controller.IMatchController
	ChatbotController controller.IChatbotController
	PageController    controller.IPageController

	// Middleware shared between server assembly and controllers
	SessionMiddleware *serverutils.SessionMiddleware

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// In-process audit bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(cfg.App.AuditTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.AuditTopic, sysLogger)

	// Session store and conversation ledger share the session lifetime.
	maxAge := time.Duration(cfg.Session.MaxAgeSec) * time.Second
	sessionRepo := memory.NewSessionRepository(maxAge)
	conversationRepo := memory.NewConversationRepository(maxAge)

	sessionMiddleware := serverutils.NewSessionMiddleware(
		sessionRepo,
		cfg.Session.CookieName,
		maxAge,
		cfg.App.Environment == "production",
	)

	// LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.BaseURL,
		cfg.Ai.APIKey,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// Services
	authService := service.NewAuthService(uowFactory, emailService, publisherService, sysLogger)
	userService := service.NewUserService(uowFactory)
	matchService := service.NewMatchService(uowFactory)
	chatbotService := service.NewChatbotService(
		llmProvider,
		conversationRepo,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
		sysLogger,
	)

	return &Container{
		AuthController:    controller.NewAuthController(authService, sessionMiddleware),
		UserController:    controller.NewUserController(userService),
		MatchController:   controller.NewMatchController(matchService),
		ChatbotController: controller.NewChatbotController(chatbotService),
		PageController:    controller.NewPageController(cfg.App.ViewsDir),

		SessionMiddleware: sessionMiddleware,
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
