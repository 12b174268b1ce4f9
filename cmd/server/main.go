package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dias221467/HealthHabit/internal/agents"
	"github.com/Dias221467/HealthHabit/internal/config"
	"github.com/Dias221467/HealthHabit/internal/handlers"
	"github.com/Dias221467/HealthHabit/internal/jobs"
	"github.com/Dias221467/HealthHabit/internal/llm"
	"github.com/Dias221467/HealthHabit/internal/repository"
	"github.com/Dias221467/HealthHabit/internal/scheduler"
	"github.com/Dias221467/HealthHabit/internal/services"
	"github.com/Dias221467/HealthHabit/pkg/logger"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	logger.Log.Info("Logger initialized")

	// --- Storage ---
	store, err := repository.NewHabitStore(cfg)
	if err != nil {
		logger.Log.Fatalf("Storage setup error: %v", err)
	}
	if err := store.Load(context.Background()); err != nil {
		logger.Log.Fatalf("Failed to load habits: %v", err)
	}
	defer store.Close()

	// --- Services ---
	habitService := services.NewHabitService(store)

	catalogue, err := agents.LoadCatalogue(cfg.PromptsFile)
	if err != nil {
		logger.Log.Fatalf("Prompt catalogue error: %v", err)
	}

	var executor agents.Executor
	if cfg.LLMAPIKey != "" {
		executor = llm.NewClient(llm.Options{
			BaseURL:     cfg.LLMBaseURL,
			APIKey:      cfg.LLMAPIKey,
			Model:       cfg.ModelName,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			Timeout:     cfg.LLMTimeout,
		})
	} else {
		logger.Log.Warn("TOGETHER_API_KEY not set, agent endpoints will return 503")
	}
	habitAgents := agents.New(catalogue, executor)

	// --- Handlers ---
	habitHandler := handlers.NewHabitHandler(habitService)
	agentHandler := handlers.NewAgentHandler(habitAgents)
	router := handlers.NewRouter(habitHandler, agentHandler)

	// --- Reminders ---
	if cfg.RemindersEnabled {
		reminders, err := scheduler.StartReminderCronJobs(jobs.NewReminderNotifier(habitService), cfg.ReminderSchedule)
		if err != nil {
			logger.Log.Fatalf("Reminder scheduler error: %v", err)
		}
		defer reminders.Stop()
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Graceful shutdown failed")
	}
}
