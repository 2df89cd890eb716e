// go_rojgar is a job recommendation service for natural-language queries.
//
// It extracts a structured query from free text via an LLM, fans out to nine
// job providers concurrently and returns ranked recommendations. Served over
// HTTP (gin) and as an MCP tool (recommend_jobs).
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_rojgar/internal/engine"
	"github.com/anatolykoptev/go_rojgar/internal/engine/jobs"
	"github.com/anatolykoptev/go_rojgar/internal/jobserver"
	"github.com/anatolykoptev/go_rojgar/internal/server"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.Any("error", err))
	}

	ex := initEngine()

	httpPort := env.Str("PORT", "8000")
	mcpPort := env.Str("MCP_PORT", "8891")

	slog.Info("starting go_rojgar",
		slog.String("port", httpPort),
		slog.String("mcp_port", mcpPort),
		slog.Bool("extractor_ready", ex != nil),
	)

	if mcpPort != "" {
		mcpServer := mcp.NewServer(&mcp.Implementation{
			Name:    "go_rojgar",
			Version: version,
		}, nil)
		jobserver.RegisterTools(mcpServer, ex)

		go func() {
			if err := mcpserver.Run(mcpServer, mcpserver.Config{
				Name:         "go_rojgar",
				Version:      version,
				Port:         mcpPort,
				WriteTimeout: 600 * time.Second,
				Metrics:      engine.FormatMetrics,
			}); err != nil {
				slog.Error("mcp server failed", slog.Any("error", err))
			}
		}()
	}

	h := server.NewHandler(
		func(ctx context.Context, rawText string) (*engine.RecommendationResponse, error) {
			return jobs.Recommend(ctx, ex, rawText)
		},
		func() bool { return ex != nil },
	)
	if err := server.NewRouter(h).Run(":" + httpPort); err != nil {
		slog.Error("http server failed", slog.Any("error", err))
	}
}

// initEngine builds the engine configuration from the environment and
// returns the extractor, nil when no LLM key is configured.
func initEngine() *engine.Extractor {
	c := engine.Config{
		LLMAPIKey:          env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks: env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:         env.Str("LLM_API_BASE", "https://api.groq.com/openai/v1"),
		LLMModel:           env.Str("LLM_MODEL", "openai/gpt-oss-120b"),
		LLMTemperature:     env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:       env.Int("LLM_MAX_TOKENS", 1024),

		FetchTimeout: env.Duration("FETCH_TIMEOUT", 10*time.Second),

		AdzunaAppID:         env.Str("ADZUNA_APP_ID", ""),
		AdzunaAppKey:        env.Str("ADZUNA_APP_KEY", ""),
		JoobleAPIKey:        env.Str("JOOBLE_API_KEY", ""),
		TheMuseAPIKey:       env.Str("THE_MUSE_API_KEY", ""),
		RapidAPIKey:         env.Str("RAPIDAPI_KEY", ""),
		RapidAPIHost:        env.Str("RAPIDAPI_HOST", ""),
		DataGovInAPIKey:     env.Str("DATA_GOV_IN_API_KEY", ""),
		APISetuClientID:     env.Str("API_SETU_CLIENT_ID", ""),
		APISetuClientSecret: env.Str("API_SETU_CLIENT_SECRET", ""),
		NCSAPIKey:           env.Str("NCS_API_KEY", ""),
		USAJobsEmail:        env.Str("USAJOBS_EMAIL", ""),
		USAJobsAPIKey:       env.Str("USAJOBS_API_KEY", ""),
	}

	c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)

	engine.Init(c)

	if c.LLMAPIKey == "" {
		slog.Warn("LLM_API_KEY not set, extraction backend disabled")
		return nil
	}
	return engine.NewExtractor(c.LLMClient)
}
