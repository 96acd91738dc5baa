package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"storefront/backend"
	"storefront/config"
	"storefront/jobs"
	"storefront/routes"
	"storefront/services"
	"storefront/services/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c := config.InitApp()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	client := backend.NewClient(backend.ClientOptions{
		BaseURL: config.GetEnv("BACKEND_URL", "http://localhost:8083/api/v1"),
		Timeout: config.GetEnvDuration("BACKEND_TIMEOUT", 15*time.Second),
		Logger:  appLogger,
	})

	var draftStore services.DraftStore
	if rdb, err := config.ConnectRedis(); err != nil {
		log.Printf("Warning: không kết nối được Redis, draft chỉ lưu trong bộ nhớ: %v", err)
		draftStore = services.NewMemoryDraftStore()
	} else {
		draftStore = services.NewRedisDraftStore(rdb, config.GetEnvDuration("DRAFT_TTL", 30*time.Minute))
	}

	notifier := services.NewNotifyService(services.NotifyServiceOptions{
		Melody: m,
		Logger: appLogger,
	})
	drafts := services.NewDraftService(services.DraftServiceOptions{
		Store:  draftStore,
		Logger: appLogger,
	})
	drafts.Subscribe(notifier.DraftChanged)
	inventory := services.NewInventoryService(services.InventoryServiceOptions{
		Backend:  client,
		Notifier: notifier,
		Logger:   appLogger,
		Fanout:   config.GetEnvInt("AVAILABILITY_FANOUT", 4),
	})
	pricing := services.NewPricingService(services.PricingServiceOptions{
		Backend: client,
		Logger:  appLogger,
	})
	loyalty := services.NewLoyaltyService(services.LoyaltyServiceOptions{
		Backend:  client,
		Notifier: notifier,
		Logger:   appLogger,
	})
	orchestrator := services.NewPaymentOrchestrator(services.PaymentOrchestratorOptions{
		Backend:      client,
		Loyalty:      loyalty,
		Notifier:     notifier,
		Logger:       appLogger,
		InitialDelay: config.GetEnvDuration("DEADLINE_INITIAL_DELAY", 5*time.Second),
		PollInterval: config.GetEnvDuration("DEADLINE_POLL_INTERVAL", 30*time.Second),
	})
	defer orchestrator.Shutdown()

	if err := jobs.InitCronJobs(c, orchestrator); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, drafts, inventory, pricing, orchestrator, client)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8084"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
