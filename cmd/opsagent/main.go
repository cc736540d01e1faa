// opsagent server — runs fraud investigations over card transactions and
// serves the analyst worklist API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fraudops/opsagent/pkg/agent"
	"github.com/fraudops/opsagent/pkg/agent/tools"
	"github.com/fraudops/opsagent/pkg/api"
	"github.com/fraudops/opsagent/pkg/auth"
	"github.com/fraudops/opsagent/pkg/cleanup"
	"github.com/fraudops/opsagent/pkg/config"
	"github.com/fraudops/opsagent/pkg/database"
	"github.com/fraudops/opsagent/pkg/llm"
	"github.com/fraudops/opsagent/pkg/redact"
	"github.com/fraudops/opsagent/pkg/services"
	"github.com/fraudops/opsagent/pkg/tmapi"
	"github.com/fraudops/opsagent/pkg/vector"
	"github.com/fraudops/opsagent/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	settings, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting opsagent",
		"version", version.Full(),
		"environment", settings.Environment,
		"http_port", settings.HTTPPort)

	ctx := context.Background()

	// Database (runs embedded migrations).
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Collaborators.
	llmClient := llm.NewOpenAIClient(llm.Config{
		BaseURL:        settings.LLMBaseURL,
		APIKey:         settings.LLMAPIKey,
		EmbeddingModel: settings.EmbeddingModel,
		Dimensions:     settings.VectorDimension,
	})
	tmClient := tmapi.NewClient(tmapi.Config{
		BaseURL:                 settings.TMBaseURL,
		Timeout:                 settings.TMTimeout,
		CircuitBreakerThreshold: settings.TMCircuitBreakerThreshold,
		CircuitBreakerCooldown:  settings.TMCircuitBreakerCooldown,
		TokenURL:                settings.TMTokenURL,
		M2MClientID:             settings.TMM2MClientID,
		M2MClientSecret:         settings.TMM2MClientSecret,
		M2MAudience:             settings.TMM2MAudience,
	})
	vectorStore := vector.NewStore(dbClient.DB())
	guard := redact.NewGuard(settings.PromptGuardEnabled)

	// Tool suite and graph runtime.
	registry := agent.NewRegistry(
		tools.NewContextTool(tmClient),
		tools.NewPatternTool(settings.Scoring),
		tools.NewSimilarityTool(llmClient, vectorStore, tools.SimilarityConfig{
			Enabled:       settings.VectorEnabled,
			SearchLimit:   settings.VectorSearchLimit,
			MinSimilarity: settings.VectorMinSimilarity,
			WindowDays:    settings.VectorTimeWindowDays,
		}),
		tools.NewReasoningTool(llmClient, guard, tools.ReasoningConfig{
			LLMEnabled:          settings.ReasoningLLMEnabled,
			Model:               settings.PlannerModel,
			Temperature:         settings.PlannerTemperature,
			MaxCompletionTokens: settings.LLMMaxCompletionTokens,
		}),
		tools.NewRecommendationTool(settings.Scoring),
		tools.NewRuleDraftTool(settings.Scoring),
	)

	logger := slog.Default()
	stateStore := services.NewStateStore(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client)
	insightService := services.NewInsightService(dbClient.Client)
	completionService := services.NewCompletionService(dbClient.Client, stateStore, insightService, auditService, logger)
	recommendationService := services.NewRecommendationService(dbClient.Client, auditService, logger)

	planner := agent.NewPlanner(llmClient, guard, registry, agent.PlannerConfig{
		LLMEnabled:  settings.PlannerLLMEnabled,
		Model:       settings.PlannerModel,
		Temperature: settings.PlannerTemperature,
		Timeout:     settings.PlannerTimeout,
		MaxTokens:   settings.LLMMaxCompletionTokens,
	})
	executor := agent.NewExecutor(registry, settings.ToolTimeout)
	completion := agent.NewCompletion(settings.Scoring, completionService)
	runner := agent.NewRunner(planner, executor, completion, stateStore, settings.InvestigationTimeout)

	investigationService := services.NewInvestigationService(dbClient.Client, runner, stateStore, settings, logger)
	slog.Info("Services initialized")

	// Retention sweep.
	cleanupService := cleanup.NewService(cleanup.Config{
		RetentionDays: settings.StateRetentionDays,
		Interval:      settings.CleanupInterval,
	}, investigationService, stateStore, vectorStore)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// HTTP server.
	verifier := auth.NewVerifier(auth.NewKeyCache(settings.JWKSURL, settings.JWKSCacheTTL))
	httpServer := api.NewServer(settings, dbClient, investigationService, insightService, recommendationService, verifier)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + settings.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
