package main

import (
	"context"
	"fmt"
	"os"

	"wallet-profiler/internal/interfaces"
	"wallet-profiler/internal/llm/grok"
	"wallet-profiler/internal/llm/llmobs"
	"wallet-profiler/internal/llm/noop"
	"wallet-profiler/internal/llm/openai"
	"wallet-profiler/internal/logger"
	"wallet-profiler/internal/polymarket"
	"wallet-profiler/internal/polymarket/pmobs"
	"wallet-profiler/internal/runlog"
	"wallet-profiler/internal/store"
	"wallet-profiler/internal/trace"

	"github.com/joho/godotenv"
)

// initializeSystem initializes environment, logger, and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// compressOldLogs compresses old run log files if retention is configured
func compressOldLogs(ctx context.Context) {
	if v := os.Getenv("PROFILER_LOG_RETENTION_DAYS"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		if err := runlog.CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old run logs", "error", err)
		}
	}
}

// initializeDataSource initializes the data-api client with observability
func initializeDataSource(ctx context.Context, cfg *store.Config) interfaces.WalletDataSource {
	client := polymarket.NewClient(cfg)

	if cfg.DataAPI.CacheTTLMinutes > 0 {
		logger.Info(ctx, "Response cache enabled",
			"dir", cfg.DataAPI.CacheDir,
			"ttl_minutes", cfg.DataAPI.CacheTTLMinutes,
		)
	}

	// Wrap with observability middleware
	return pmobs.Wrap(client)
}

// initializeJudge initializes and returns the LLM judge with observability
func initializeJudge(ctx context.Context, cfg *store.Config) interfaces.Judge {
	var judge interfaces.Judge

	switch cfg.LLM.Provider {
	case "OPENAI":
		judge = openai.NewOpenAIJudge(cfg)
	case "GROK":
		judge = grok.NewGrokJudge(cfg)
	default:
		judge = noop.NewNoopJudge()
		logger.Warn(ctx, "No LLM provider configured - using Noop judge (always neutral)")
	}

	// Wrap with observability middleware
	return llmobs.Wrap(judge)
}
