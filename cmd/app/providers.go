package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/itinerary-roaster/internal/domain/roast"
	"github.com/yanqian/itinerary-roaster/internal/infra/config"
	"github.com/yanqian/itinerary-roaster/internal/infra/llm"
	"github.com/yanqian/itinerary-roaster/internal/infra/personaassets"
	"github.com/yanqian/itinerary-roaster/internal/infra/ratelimit"
	"github.com/yanqian/itinerary-roaster/internal/infra/sheets"
	"github.com/yanqian/itinerary-roaster/pkg/metrics"
)

func provideRoastConfig(cfg *config.Config) roast.Config {
	return roast.Config{
		APIKey:          cfg.LLM.APIKey,
		Model:           cfg.LLM.Model,
		Temperature:     cfg.LLM.Temperature,
		MaxOutputTokens: cfg.LLM.MaxOutputTokens,
	}
}

func provideCompleter(cfg *config.Config) (roast.CompletionClient, error) {
	return llm.NewCompleter(context.Background(), cfg.LLM)
}

func provideSheetClient(cfg *config.Config) *sheets.Client {
	return sheets.NewClient(cfg.Sheets.Timeout, cfg.Sheets.MaxBytes)
}

func provideTokenCounter(cfg *config.Config) *metrics.TokenCounter {
	return metrics.NewTokenCounter(cfg.LLM.Model)
}

func providePersonaAssets(cfg *config.Config, logger *slog.Logger) personaassets.Resolver {
	static := personaassets.NewStatic(cfg.Personas.AssetBaseURL)
	storage := cfg.Personas.Storage
	if !storage.Enabled {
		return static
	}
	bucket, err := personaassets.NewBucket(storage.Endpoint, storage.AccessKey, storage.SecretKey, storage.Bucket, storage.Region, storage.PresignTTL, static, logger)
	if err != nil {
		logger.Error("persona asset storage unavailable, serving static urls", "error", err)
		return static
	}
	logger.Info("persona asset storage enabled", "bucket", storage.Bucket)
	return bucket
}

func provideRateLimiter(cfg *config.Config, logger *slog.Logger) (ratelimit.Limiter, func(), error) {
	rl := cfg.HTTP.RateLimit
	noop := func() {}
	if !rl.Enabled {
		return nil, noop, nil
	}
	memory := ratelimit.NewMemory(rl.RequestsPerMinute, rl.Burst)
	if rl.Backend != config.RateLimitBackendValkey {
		return memory, noop, nil
	}

	opt, err := buildValkeyOptions(rl.ValkeyAddr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory rate limiter", "error", err)
		return memory, noop, nil
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory rate limiter", "error", err)
		return memory, noop, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory rate limiter", "error", err)
		client.Close()
		return memory, noop, nil
	}
	logger.Info("valkey rate limiter enabled", "addr", rl.ValkeyAddr)
	return ratelimit.NewValkey(client, "roast:ratelimit", rl.RequestsPerMinute, rl.Burst), client.Close, nil
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
