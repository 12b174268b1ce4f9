package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Dias221467/HealthHabit/internal/config"
	"github.com/Dias221467/HealthHabit/internal/mcptools"
	"github.com/Dias221467/HealthHabit/internal/repository"
	"github.com/Dias221467/HealthHabit/internal/services"
	"github.com/Dias221467/HealthHabit/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// stdout carries the MCP protocol, so logs go to stderr and the log file.
	logger.InitLogger(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, Output: os.Stderr})

	store, err := repository.NewHabitStore(cfg)
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	if err := store.Load(context.Background()); err != nil {
		return fmt.Errorf("loading habits: %w", err)
	}
	defer store.Close()

	s := mcptools.NewServer(services.NewHabitService(store))
	return server.ServeStdio(s)
}
