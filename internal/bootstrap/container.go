package bootstrap

import (
	"context"
	"log"

	"personal-assistant-be/internal/config"
	"personal-assistant-be/internal/controller"
	"personal-assistant-be/internal/pkg/logger"
	"personal-assistant-be/internal/pkg/mailer"
	"personal-assistant-be/internal/pkg/serverutils"
	"personal-assistant-be/internal/repository/implementation"
	"personal-assistant-be/internal/repository/session"
	"personal-assistant-be/internal/repository/unitofwork"
	"personal-assistant-be/internal/service"
	"personal-assistant-be/pkg/assistant/pipeline"
	"personal-assistant-be/pkg/embedding"
	"personal-assistant-be/pkg/llm/factory"
	"personal-assistant-be/pkg/memory"
	"personal-assistant-be/pkg/tools"

	pktNats "personal-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	TaskController   controller.ITaskController
	MemoryController controller.IMemoryController
	ToolController   controller.IToolController
	PlanController   controller.IPlanController

	// Route guard shared by the server
	JwtMiddleware fiber.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Session transcripts: redis when configured, process-local cache otherwise
	var transcripts session.TranscriptStore
	if cfg.App.SessionStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		transcripts = session.NewRedisStore(rdb)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		transcripts = session.NewCacheStore()
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	// 3. AI Providers
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaEmbedModel,
	)
	log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Semantic Memory & Tools
	memoryStore := memory.NewVectorStore(implementation.NewMemoryItemRepository(db), embeddingProvider)

	registry := tools.NewRegistry()
	registry.MustRegister(tools.NewTaskTools(uowFactory)...)
	registry.MustRegister(tools.NewPlannerTools(uowFactory, llmProvider)...)
	registry.MustRegister(tools.NewNoteTools(memoryStore)...)
	registry.MustRegister(tools.NewLearningTools(uowFactory, memoryStore, llmProvider)...)
	registry.MustRegister(tools.NewMemoryTools(uowFactory, memoryStore)...)
	registry.MustRegister(tools.NewDecisionTools(uowFactory, llmProvider)...)
	registry.MustRegister(tools.NewHabitTools(uowFactory)...)
	registry.MustRegister(tools.NewRewriteTools(llmProvider)...)

	// 5. Async Services
	publisherService := service.NewPublisherService(cfg.Topics.EmbedConversation, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.EmbedConversation,
		uowFactory,
		memoryStore,
	)
	recorder := service.NewRecorderService(uowFactory, publisherService, sysLogger)

	// 6. Assistant Pipeline
	orchestrator := pipeline.New(
		sysLogger,
		pipeline.NewIntentStage(llmProvider, sysLogger),
		pipeline.NewRetrievalStage(memoryStore, cfg.Memory.RetrievalLimit, sysLogger),
		pipeline.NewPlanStage(),
		pipeline.NewSynthesisStage(llmProvider, sysLogger),
		pipeline.NewPersistStage(recorder, sysLogger),
	)

	// 7. Services
	var eventBus service.EventPublisher
	if natsPub != nil {
		eventBus = natsPub
	}
	chatService := service.NewChatService(orchestrator, transcripts, eventBus, sysLogger)
	taskService := service.NewTaskService(uowFactory)
	memoryService := service.NewMemoryService(memoryStore)
	planService := service.NewPlanService(registry, uowFactory, emailService, sysLogger)

	// 8. Controllers
	return &Container{
		ChatController:   controller.NewChatController(chatService),
		TaskController:   controller.NewTaskController(taskService),
		MemoryController: controller.NewMemoryController(memoryService),
		ToolController:   controller.NewToolController(registry),
		PlanController:   controller.NewPlanController(planService),

		JwtMiddleware: serverutils.NewJwtMiddleware(cfg.App.JWTSecret),

		ConsumerService: consumerService,
	}
}
