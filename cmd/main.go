package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"botforge/clients"
	anthropicclient "botforge/clients/anthropic"
	groqclient "botforge/clients/groq"
	"botforge/config"
	"botforge/db"
	"botforge/handlers"
	"botforge/middleware"
	"botforge/services/bots"
	"botforge/services/export"
	"botforge/services/generation"
	"botforge/services/txmanager"
	"botforge/services/validation"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.AlertConfig.SlackWebhookURL,
		Environment: cfg.Environment,
		AppName:     "botforge",
		LogsURL:     cfg.ServerLogsURL,
	})

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.EnsureSchema(context.Background(), dbConn, cfg.DatabaseSchema); err != nil {
		return err
	}

	botsRepo := db.NewPostgresBotsRepository(dbConn, cfg.DatabaseSchema)
	commandsRepo := db.NewPostgresCommandsRepository(dbConn, cfg.DatabaseSchema)
	envVarsRepo := db.NewPostgresEnvVarsRepository(dbConn, cfg.DatabaseSchema)

	txManager := txmanager.NewTransactionManager(dbConn)

	llmClient, err := newLLMClient(cfg.LLMConfig)
	if err != nil {
		return err
	}

	botsService := bots.NewBotsService(botsRepo, commandsRepo, envVarsRepo, txManager)
	exportService := export.NewExportService(botsRepo, commandsRepo, envVarsRepo, txManager)
	generationService := generation.NewGenerationService(llmClient)
	validationService := validation.NewValidationService(llmClient)

	authMiddleware := middleware.NewClerkAuthMiddleware(cfg.ClerkConfig.SecretKey)
	botsHTTPHandler := handlers.NewBotsHTTPHandler(botsService, exportService, alertMiddleware)
	commandsHTTPHandler := handlers.NewCommandsHTTPHandler(generationService, validationService, alertMiddleware)

	router := mux.NewRouter()

	botsHTTPHandler.SetupEndpoints(router, authMiddleware)
	commandsHTTPHandler.SetupEndpoints(router, authMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func newLLMClient(cfg config.LLMConfig) (clients.LLMClient, error) {
	switch cfg.Provider {
	case config.LLMProviderAnthropic:
		return anthropicclient.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	case config.LLMProviderGroq:
		return groqclient.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

func handleGracefulShutdown(server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
