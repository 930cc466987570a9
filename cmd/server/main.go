package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
	"github.com/sunubank/demobank/docs"
	"github.com/sunubank/demobank/internal/config"
	"github.com/sunubank/demobank/internal/database"
	"github.com/sunubank/demobank/internal/handlers"
	mW "github.com/sunubank/demobank/internal/middleware"
	"github.com/sunubank/demobank/internal/services"
	"github.com/sunubank/demobank/internal/store"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title SunuBank Demo API
// @version 1.0
// @description API powering the SunuBank demo banking experience
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Initialize config
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env
	viper.ReadInConfig()        // read .env file

	viper.SetEnvPrefix("")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("jwt.expiry_hours", "JWT_EXPIRY_HOURS")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	// Initialize Swagger docs
	docs.SwaggerInfo.Title = "SunuBank Demo API"
	docs.SwaggerInfo.Description = "API powering the SunuBank demo banking experience"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:8080"
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	cfg := config.LoadAppConfig()

	// State store: Redis when reachable, in-memory otherwise
	var st store.Store
	redisClient := database.InitRedis()
	if redisClient != nil {
		st = store.NewRedis(redisClient)
		defer redisClient.Close()
	} else {
		st = store.NewMemory()
	}
	defer st.Close()

	ctx := context.Background()
	if err := services.Seed(ctx, st, cfg); err != nil {
		log.Fatalf("Failed to seed demo state: %v", err)
	}

	// Initialize services
	settingsService := services.NewSettingsService(st, cfg)
	notificationService := services.NewNotificationService(st, cfg)
	accountService := services.NewAccountService(st, cfg)
	transactionService := services.NewTransactionService(st, cfg, accountService)
	sessionService := services.NewSessionService(st, cfg, notificationService, settingsService)
	cardService := services.NewCardService(st, notificationService, settingsService)
	goalService := services.NewGoalService(st, cfg, notificationService, settingsService)
	cashbackService := services.NewCashbackService(st, notificationService, settingsService)
	statsService := services.NewStatsService(transactionService, settingsService)
	transferService := services.NewTransferService(
		cfg,
		accountService,
		transactionService,
		notificationService,
		settingsService,
		services.AlwaysDeclinePolicy{},
	)
	qrService := services.NewQRService(cfg, sessionService, accountService)
	iso20022Service := services.NewISO20022Service(transactionService, sessionService)

	transferHandler := handlers.NewTransferHandler(transferService)
	qrHandler := handlers.NewQRHandler(qrService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Access-Control-Allow-Origin"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Static file server for avatars and merchant logos
	r.Handle("/static/assets/*", http.StripPrefix("/static/assets/",
		mW.StaticFileServer("./static/assets")))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints (no auth required)
		r.Post("/auth/login", sessionService.HandleLogin)
		r.Post("/auth/logout", sessionService.HandleLogout)
		r.Get("/settings/language", settingsService.GetLanguage)
		r.Put("/settings/language", settingsService.PutLanguage)

		// Protected endpoints (auth required)
		r.Group(func(r chi.Router) {
			r.Use(mW.AuthMiddleware)

			r.Get("/profile", sessionService.GetProfile)
			r.Put("/profile/avatar", sessionService.PutAvatar)

			r.Get("/accounts", accountService.ListAccounts)
			r.Get("/wallet/summary", accountService.WalletSummary)

			r.Get("/transactions", transactionService.ListTransactions)
			r.Get("/transactions/{txId}", transactionService.GetTransaction)
			r.Post("/transactions", transactionService.CreateTransaction)
			r.Get("/transactions/{txId}/iso20022", iso20022Service.ExportTransaction)

			// Transfer wizard
			r.Get("/transfers/wizard", transferHandler.GetWizard)
			r.Post("/transfers/wizard/account", transferHandler.SelectAccount)
			r.Post("/transfers/wizard/beneficiary", transferHandler.SetBeneficiary)
			r.Post("/transfers/wizard/amount", transferHandler.SetAmount)
			r.Post("/transfers/wizard/next", transferHandler.Next)
			r.Post("/transfers/wizard/back", transferHandler.Back)
			r.Post("/transfers/submit", transferHandler.Submit)
			r.Post("/transfers/reset", transferHandler.Reset)

			r.Get("/cards", cardService.ListCards)
			r.Put("/cards/{cardId}/freeze", cardService.FreezeToggle)

			r.Get("/goals", goalService.ListGoals)
			r.Post("/goals", goalService.CreateGoal)

			r.Get("/cashback", cashbackService.ListOffers)
			r.Post("/cashback/{offerId}/activate", cashbackService.ActivateOffer)

			r.Get("/statistics/monthly", statsService.MonthlyStats)

			r.Get("/notifications", notificationService.ListNotifications)
			r.Put("/notifications/read", notificationService.MarkNotificationsRead)
			r.Get("/toasts", notificationService.ListToasts)
			r.Delete("/toasts/{toastId}", notificationService.RemoveToast)

			// QR endpoints
			r.Get("/qr/account", qrHandler.GenerateQR)
			r.Post("/qr/decode", qrHandler.DecodeQR)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
