package bootstrap

import (
	"log"

	"ai-chat-be/internal/config"
	"ai-chat-be/internal/controller"
	"ai-chat-be/internal/pkg/logger"
	"ai-chat-be/internal/repository/unitofwork"
	"ai-chat-be/internal/service"
	"ai-chat-be/pkg/embedding"
	"ai-chat-be/pkg/llm/factory"
	"ai-chat-be/pkg/vectorstore"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatSessionController controller.IChatSessionController
	ChatHistoryController controller.IChatHistoryController
	ChatController        controller.IChatController
	IngestionController   controller.IIngestionController
	DemoController        controller.IDemoController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	embeddingProvider, err := embedding.NewProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaEmbedModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s", cfg.Ai.EmbeddingProvider)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	store := vectorstore.NewStore(uowFactory, embeddingProvider)

	// 4. Services
	ingestPublisher := service.NewPublisherService(cfg.Chat.IngestTopicName, pubSub)
	chatPublisher := service.NewPublisherService(cfg.Chat.ChatTopicName, pubSub)

	consumerService := service.NewConsumerService(
		pubSub,
		[]string{cfg.Chat.IngestTopicName, cfg.Chat.ChatTopicName},
		uowFactory,
		sysLogger,
	)

	chatSessionService := service.NewChatSessionService(uowFactory)
	chatHistoryService := service.NewChatHistoryService(uowFactory, cfg.Chat.RecentHistoryLength)
	demoService := service.NewDemoService(uowFactory)

	chatService := service.NewChatService(
		chatHistoryService,
		llmProvider,
		chatPublisher,
		sysLogger,
	)

	ingestionService := service.NewIngestionService(
		store,
		llmProvider,
		ingestPublisher,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		ChatSessionController: controller.NewChatSessionController(chatSessionService),
		ChatHistoryController: controller.NewChatHistoryController(chatHistoryService),
		ChatController:        controller.NewChatController(chatService),
		IngestionController:   controller.NewIngestionController(ingestionService),
		DemoController:        controller.NewDemoController(demoService, cfg.App.DemoJWTSecret),

		ConsumerService: consumerService,
	}
}
