package bootstrap

import (
	"context"
	"log"

	"sentinel-kyc-be/internal/config"
	"sentinel-kyc-be/internal/controller"
	"sentinel-kyc-be/internal/pkg/logger"
	"sentinel-kyc-be/internal/repository/memory"
	"sentinel-kyc-be/internal/repository/unitofwork"
	"sentinel-kyc-be/internal/service"
	"sentinel-kyc-be/internal/websocket"
	"sentinel-kyc-be/pkg/keystore"
	"sentinel-kyc-be/pkg/llm/anthropic"

	pktNats "sentinel-kyc-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const activityTopic = "activity.recorded"

type Container struct {
	// Controllers
	CustomerController  controller.ICustomerController
	AlertController     controller.IAlertController
	DocumentController  controller.IDocumentController
	CaseController      controller.ICaseController
	SearchController    controller.ISearchController
	DashboardController controller.IDashboardController
	ReportController    controller.IReportController
	ActivityController  controller.IActivityController
	AiController        controller.IAiController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WsHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	sysLogger.Info("Bootstrap", "Container wiring started", nil)

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

	// Redis
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
		rdb = nil
	}

	// WebSocket Hub for the live activity feed
	wsLogger := logger.NewIsolatedLogger("logs/activity_feed.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// AI Provider
	llmProvider := anthropic.NewAnthropicProvider(
		cfg.Ai.AnthropicBase,
		cfg.Ai.Model,
		cfg.Ai.MaxTokens,
	)
	log.Printf("[INFO] Using LLM Provider: anthropic (%s)", cfg.Ai.Model)
	keyStore := keystore.New(cfg.Ai.ApiKeyFile)

	// In-memory cache for filter lookup lists
	lookupRepo := memory.NewLookupRepository()

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, activityTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		activityTopic,
		uowFactory,
		wsHub,
		natsPub,
	)

	customerService := service.NewCustomerService(uowFactory, lookupRepo)
	alertService := service.NewAlertService(uowFactory, lookupRepo, publisherService)
	documentService := service.NewDocumentService(uowFactory, lookupRepo, publisherService)
	caseService := service.NewCaseService(uowFactory, lookupRepo, publisherService)
	searchService := service.NewSearchService(uowFactory)
	dashboardService := service.NewDashboardService(uowFactory, rdb)
	reportService := service.NewReportService(uowFactory)
	activityService := service.NewActivityService(uowFactory, publisherService)
	aiService := service.NewAiService(uowFactory, llmProvider, keyStore)

	// 4. Controllers
	return &Container{
		CustomerController:  controller.NewCustomerController(customerService),
		AlertController:     controller.NewAlertController(alertService),
		DocumentController:  controller.NewDocumentController(documentService),
		CaseController:      controller.NewCaseController(caseService),
		SearchController:    controller.NewSearchController(searchService),
		DashboardController: controller.NewDashboardController(dashboardService),
		ReportController:    controller.NewReportController(reportService),
		ActivityController:  controller.NewActivityController(activityService),
		AiController:        controller.NewAiController(aiService),

		ConsumerService: consumerService,
		WsHub:           wsHub,
	}
}
