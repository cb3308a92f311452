package service

import (
	"context"
	"fmt"
	"strings"

	"monastery-guide/internal/models"
	"monastery-guide/pkg/config"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"
	"github.com/hoangvvo/llm-sdk/sdk-go/anthropic"
	"github.com/hoangvvo/llm-sdk/sdk-go/openai"
	"go.uber.org/zap"
)

// CompletionRequest is one chat completion call: a system prompt, the prior
// turns of the session (oldest first), and the new user message. The session
// id is forwarded to the vendor as request metadata.
type CompletionRequest struct {
	SystemPrompt string
	SessionID    string
	History      []*models.ChatMessage
	UserMessage  string
}

// ChatCompleter is the narrow interface the chat relay needs from an LLM
// client.
type ChatCompleter interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// LLMService adapts a configured language model vendor to the chat relay.
type LLMService struct {
	model  llmsdk.LanguageModel
	logger *zap.Logger
}

func NewLLMService(cfg *config.AIConfig, logger *zap.Logger) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI API key is not set")
	}

	var model llmsdk.LanguageModel
	switch cfg.Provider {
	case "openai":
		model = openai.NewOpenAIModel(cfg.Model, openai.OpenAIModelOptions{
			APIKey: cfg.APIKey,
		})
	case "openai-chat-completion":
		model = openai.NewOpenAIChatModel(cfg.Model, openai.OpenAIChatModelOptions{
			APIKey: cfg.APIKey,
		})
	case "anthropic":
		model = anthropic.NewAnthropicModel(cfg.Model, anthropic.AnthropicModelOptions{
			APIKey: cfg.APIKey,
		})
	default:
		return nil, fmt.Errorf("unsupported AI provider: %q", cfg.Provider)
	}

	logger.Info("LLM service initialized",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
	)

	return &LLMService{
		model:  model,
		logger: logger,
	}, nil
}

func (s *LLMService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]llmsdk.Message, 0, len(req.History)*2+1)
	for _, turn := range req.History {
		messages = append(messages,
			llmsdk.NewUserMessage(textPart(turn.UserMessage)),
			llmsdk.NewAssistantMessage(textPart(turn.AIResponse)),
		)
	}
	messages = append(messages, llmsdk.NewUserMessage(textPart(req.UserMessage)))

	temperature := 0.3
	resp, err := s.model.Generate(ctx, &llmsdk.LanguageModelInput{
		SystemPrompt: &req.SystemPrompt,
		Messages:     messages,
		Temperature:  &temperature,
		Metadata:     map[string]string{"session_id": req.SessionID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	var parts []string
	for _, part := range resp.Content {
		if part.TextPart != nil {
			parts = append(parts, part.TextPart.Text)
		}
	}

	text := strings.TrimSpace(strings.Join(parts, "\n"))
	if text == "" {
		return "", fmt.Errorf("no text content in model response")
	}

	s.logger.Debug("Chat completion finished",
		zap.String("session_id", req.SessionID),
		zap.Int("response_length", len(text)),
	)

	return text, nil
}

func textPart(text string) llmsdk.Part {
	return llmsdk.Part{TextPart: &llmsdk.TextPart{Text: text}}
}
