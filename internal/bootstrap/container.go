package bootstrap

import (
	"log"

	"laptop-dss-be/internal/config"
	"laptop-dss-be/internal/controller"
	"laptop-dss-be/internal/pkg/logger"
	"laptop-dss-be/internal/repository/implementation"
	"laptop-dss-be/internal/repository/memory"
	"laptop-dss-be/internal/service"
	"laptop-dss-be/pkg/assistant"
	"laptop-dss-be/pkg/llm/factory"

	"gorm.io/gorm"
)

// Container wires repositories, services and controllers together.
type Container struct {
	Logger logger.ILogger

	DatasetService        service.IDatasetService
	RecommendationService service.IRecommendationService
	ChatService           service.IChatService

	LaptopController         controller.ILaptopController
	RecommendationController controller.IRecommendationController
	ChatController           controller.IChatController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	zapLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Repositories
	laptopRepo := implementation.NewLaptopRepository(db)
	sessionRepo := memory.NewSessionRepository()

	// Model provider and preference extractor
	provider, err := factory.NewProvider(cfg.Ai.Provider, cfg.Ai.Model, cfg.Ai.BaseURL)
	if err != nil {
		// The extractor degrades to keyword matching without a provider.
		zapLogger.Warn("BOOTSTRAP", "model provider unavailable, fallback extraction only", map[string]interface{}{
			"provider": cfg.Ai.Provider,
			"error":    err.Error(),
		})
		provider = nil
	}
	extractor := assistant.NewExtractor(provider, log.Default())

	// Services
	datasetService := service.NewDatasetService(laptopRepo, zapLogger)
	recommendationService := service.NewRecommendationService(datasetService, zapLogger)
	chatService := service.NewChatService(sessionRepo, extractor, datasetService, recommendationService, zapLogger)

	return &Container{
		Logger:                   zapLogger,
		DatasetService:           datasetService,
		RecommendationService:    recommendationService,
		ChatService:              chatService,
		LaptopController:         controller.NewLaptopController(datasetService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		ChatController:           controller.NewChatController(chatService),
	}
}
