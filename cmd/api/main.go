package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inbox-triage/config"
	"inbox-triage/internal/extraction/usecase"
	"inbox-triage/internal/httpserver"
	"inbox-triage/pkg/datemath"
	"inbox-triage/pkg/log"
	"inbox-triage/pkg/openai"
)

// @title       Inbox Triage API
// @description Turns pasted email text into ranked, calendar-ready tasks. Heuristic extraction by default, OpenAI-assisted extraction when a key is available.
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

	logger.Info(ctx, "Starting Inbox Triage...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction domain
	resolver, err := datemath.NewResolver(cfg.Extraction.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Extraction.Timezone, err)
		resolver, _ = datemath.NewResolver("UTC")
	}

	openaiCfg := openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	}

	var llm openai.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		client, aiErr := openai.New(openaiCfg)
		if aiErr != nil {
			logger.Warnf(ctx, "OpenAI not available (optional): %v", aiErr)
		} else {
			llm = client
			logger.Infof(ctx, "OpenAI client initialized, model=%s", cfg.OpenAI.Model)
		}
	} else {
		logger.Info(ctx, "No OpenAI key configured, heuristic extraction only")
	}

	extractionUC := usecase.New(logger, llm, openaiCfg, resolver, time.Now)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ExtractionUC:    extractionUC,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
