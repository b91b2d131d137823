package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MGhunch/dot-hub-api/config"
	_ "github.com/MGhunch/dot-hub-api/docs" // Swagger docs
	"github.com/MGhunch/dot-hub-api/internal/agent"
	"github.com/MGhunch/dot-hub-api/internal/agent/tools"
	assistantHTTP "github.com/MGhunch/dot-hub-api/internal/assistant/delivery/http"
	assistantUC "github.com/MGhunch/dot-hub-api/internal/assistant/usecase"
	"github.com/MGhunch/dot-hub-api/internal/httpserver"
	jobHTTP "github.com/MGhunch/dot-hub-api/internal/job/delivery/http"
	jobUC "github.com/MGhunch/dot-hub-api/internal/job/usecase"
	"github.com/MGhunch/dot-hub-api/internal/middleware"
	"github.com/MGhunch/dot-hub-api/internal/session"
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
	"github.com/MGhunch/dot-hub-api/pkg/anthropic"
	"github.com/MGhunch/dot-hub-api/pkg/log"
)

// @title       Dot Hub API
// @description Chat-style admin assistant for Hunch: answers questions about jobs, clients, people and budgets, backed by Airtable and an Anthropic model with tool calling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Dot Hub API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Record store client
	store, err := airtable.New(airtable.Config{
		APIKey:  cfg.Airtable.APIKey,
		BaseID:  cfg.Airtable.BaseID,
		BaseURL: cfg.Airtable.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Airtable client: ", err)
		return
	}

	// 4. Model client. A missing key is allowed: the board endpoints
	// keep working and /ask reports the model as unconfigured.
	llm := anthropic.New(anthropic.Config{
		APIKey: cfg.Anthropic.APIKey,
		Model:  cfg.Anthropic.Model,
	})
	if llm.Configured() {
		logger.Infof(ctx, "Model client ready (%s)", llm.Model())
	} else {
		logger.Warn(ctx, "ANTHROPIC_API_KEY not set, /ask will be unavailable")
	}

	// 5. Tools
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewSearchPeopleTool(store))
	registry.Register(tools.NewGetClientDetailTool(store))
	registry.Register(tools.NewGetSpendSummaryTool(store))
	registry.Register(tools.NewReserveJobNumberTool(store))

	// 6. Session memory
	sessions := session.NewMemoryStore(
		session.WithTimeout(time.Duration(cfg.Session.TimeoutMinutes)*time.Minute),
		session.WithMaxTurns(cfg.Session.MaxTurns),
	)

	// 7. UseCases and delivery
	assistantUseCase := assistantUC.New(logger, llm, registry, sessions, cfg.Anthropic.MaxTokens)
	assistantHandler := assistantHTTP.New(logger, assistantUseCase)

	jobUseCase := jobUC.New(logger, store)
	jobHandler := jobHTTP.New(logger, jobUseCase)

	mw := middleware.New(logger, cfg.RateLimit.AskPerMin)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: assistantHandler,
		JobHandler:       jobHandler,
		Middleware:       mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
