package summary

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/reviewlens/backend/pkg/logger"
	"github.com/reviewlens/backend/pkg/retry"
)

// Embellisher optionally rewrites the template summary. Implementations
// must treat the template text as the source of truth for every figure.
type Embellisher interface {
	Embellish(ctx context.Context, templateSummary string) (string, error)
}

const embellishPrompt = "You are an analyst polishing an executive summary of customer review " +
	"sentiment. Rewrite the following summary for clarity and flow. Keep every number, " +
	"percentage, and category name exactly as given. Return plain text only."

// OpenAIEmbellisher rewrites summaries through the OpenAI chat API. It is
// only constructed when embellishment is enabled in config; pipeline
// output stays fully deterministic without it.
type OpenAIEmbellisher struct {
	client      *openai.Client
	model       string
	maxTokens   int
	retryConfig retry.Config
}

func NewOpenAIEmbellisher(apiKey, model string, maxTokens int) *OpenAIEmbellisher {
	cfg := retry.DefaultConfig()
	cfg.Logger = logger.GetLogger()
	return &OpenAIEmbellisher{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		retryConfig: cfg,
	}
}

// Embellish returns the rewritten summary, or an error after retries are
// exhausted. Callers fall back to the template text on error.
func (e *OpenAIEmbellisher) Embellish(ctx context.Context, templateSummary string) (string, error) {
	var content string

	err := retry.Do(ctx, e.retryConfig, func() error {
		resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:     e.model,
			MaxTokens: e.maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: embellishPrompt},
				{Role: openai.ChatMessageRoleUser, Content: templateSummary},
			},
		})
		if err != nil {
			return fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("chat completion returned no choices")
		}
		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}

	logger.Debug("summary embellished", zap.String("model", e.model))
	return content, nil
}
