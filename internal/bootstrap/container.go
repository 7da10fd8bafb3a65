package bootstrap

import (
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"thrapy-be/internal/config"
	"thrapy-be/internal/controller"
	"thrapy-be/internal/pkg/logger"
	"thrapy-be/internal/pkg/serverutils"
	"thrapy-be/internal/repository/implementation"
	"thrapy-be/internal/service"
	"thrapy-be/pkg/llm/factory"

	"github.com/gofiber/fiber/v2"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	TherapistController controller.ITherapistController
	SessionController   controller.ISessionController
	ChatbotController   controller.IChatbotController
	PaymentController   controller.IPaymentController

	// Shared middleware and infrastructure
	AuthMiddleware fiber.Handler
	Logger         logger.ILogger
}

func NewContainer(db *mongo.Database, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Repositories
	userRepo := implementation.NewUserRepository(db)
	therapistRepo := implementation.NewTherapistRepository(db)
	availabilityRepo := implementation.NewAvailabilityRepository(db)
	sessionRepo := implementation.NewSessionRepository(db)
	paymentRepo := implementation.NewPaymentRepository(db)
	chatHistoryRepo := implementation.NewChatHistoryRepository(db)

	// LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.APIKey,
		cfg.Ai.BaseURL,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// Services
	authService := service.NewAuthService(userRepo)
	therapistService := service.NewTherapistService(therapistRepo, availabilityRepo)
	sessionService := service.NewSessionService(sessionRepo, therapistRepo, paymentRepo)
	chatbotService := service.NewChatbotService(sessionRepo, chatHistoryRepo, llmProvider)
	paymentService := service.NewPaymentService(paymentRepo)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		TherapistController: controller.NewTherapistController(therapistService),
		SessionController:   controller.NewSessionController(sessionService),
		ChatbotController:   controller.NewChatbotController(chatbotService),
		PaymentController:   controller.NewPaymentController(paymentService),

		AuthMiddleware: serverutils.AuthMiddleware(userRepo),
		Logger:         sysLogger,
	}
}
