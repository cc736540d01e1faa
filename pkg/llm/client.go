// Package llm provides the LLM and embedding collaborator used by the
// planner and the reasoning/similarity tools. The provider is an
// OpenAI-compatible HTTP endpoint; its output is always validated by the
// caller and may be discarded in favor of deterministic fallbacks.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
)

// Client is the interface consumed by the agent runtime. Implementations
// must honor ctx cancellation promptly — planner and tool deadlines depend
// on it.
type Client interface {
	// CompleteJSON sends a system+user prompt and returns the model's raw
	// response text. The model is instructed to emit a single JSON object;
	// parsing and schema validation are the caller's responsibility.
	CompleteJSON(ctx context.Context, req CompletionRequest) (*CompletionResult, error)

	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
}

// CompletionRequest carries one structured-output completion call.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// CompletionResult is the raw model output plus token accounting.
type CompletionResult struct {
	Raw              string
	PromptTokens     int
	CompletionTokens int
}

// Config for the OpenAI-compatible client.
type Config struct {
	BaseURL        string
	APIKey         string
	EmbeddingModel string
	Dimensions     int
	MaxRetries     uint64
}

// OpenAIClient implements Client against an OpenAI-compatible API.
type OpenAIClient struct {
	client         *openai.Client
	embeddingModel string
	dimensions     int
	maxRetries     uint64
}

// NewOpenAIClient creates a client. BaseURL may point at any
// OpenAI-compatible gateway; empty means the provider default.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	retries := cfg.MaxRetries
	if retries == 0 {
		retries = 3
	}
	return &OpenAIClient{
		client:         openai.NewClientWithConfig(apiCfg),
		embeddingModel: cfg.EmbeddingModel,
		dimensions:     cfg.Dimensions,
		maxRetries:     retries,
	}
}

// CompleteJSON implements Client.
func (c *OpenAIClient) CompleteJSON(ctx context.Context, req CompletionRequest) (*CompletionResult, error) {
	apiReq := openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
	}

	var resp openai.ChatCompletionResponse
	op := func() error {
		var err error
		resp, err = c.client.CreateChatCompletion(ctx, apiReq)
		return classifyError(err)
	}
	if err := c.retry(ctx, op); err != nil {
		return nil, fmt.Errorf("LLM completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("LLM returned no choices")
	}

	return &CompletionResult{
		Raw:              resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

// Embed implements Client.
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	apiReq := openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      openai.EmbeddingModel(c.embeddingModel),
		Dimensions: c.dimensions,
	}

	var resp openai.EmbeddingResponse
	op := func() error {
		var err error
		resp, err = c.client.CreateEmbeddings(ctx, apiReq)
		return classifyError(err)
	}
	if err := c.retry(ctx, op); err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("embedding provider returned no data")
	}
	return resp.Data[0].Embedding, nil
}

// retry runs op with exponential backoff, bounded and ctx-aware.
func (c *OpenAIClient) retry(ctx context.Context, op backoff.Operation) error {
	policy := backoff.WithMaxRetries(backoff.WithContext(newBackoff(), ctx), c.maxRetries)
	return backoff.Retry(op, policy)
}

func newBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 0 // bounded by retry count and ctx
	return b
}

// classifyError marks non-retryable provider errors as permanent so the
// backoff loop stops immediately (4xx other than 429).
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500 && apiErr.HTTPStatusCode != 429 {
			slog.Debug("LLM error not retryable", "status", apiErr.HTTPStatusCode)
			return backoff.Permanent(err)
		}
	}
	return err
}
