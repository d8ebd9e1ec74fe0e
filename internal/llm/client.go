// Package llm provides the text-completion collaborator: a chat call taking
// a system prompt plus conversation history and returning assistant text with
// token usage. The core treats it as a pure function and never retries.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-interviewer/internal/types"
)

// Client is an abstraction over LLM providers.
type Client interface {
	// Complete generates the next assistant message for a conversation.
	Complete(ctx context.Context, systemPrompt string, history []types.Message) (*types.Completion, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a new LLM client based on configuration.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete sends the conversation to Gemini and returns the assistant reply
// with token usage.
func (c *GeminiClient) Complete(ctx context.Context, systemPrompt string, history []types.Message) (*types.Completion, error) {
	modelName := c.config.GetModel(TierStandard)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured")
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.3)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	contents, last, err := toGeminiHistory(history)
	if err != nil {
		return nil, err
	}

	chat := model.StartChat()
	chat.History = contents

	resp, err := chat.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	completion := &types.Completion{Text: text}
	if resp.UsageMetadata != nil {
		completion.Usage = types.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return completion, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// toGeminiHistory converts chat messages to Gemini content, splitting off the
// final user message, which the chat API sends separately.
func toGeminiHistory(history []types.Message) ([]*genai.Content, string, error) {
	if len(history) == 0 {
		return nil, "", fmt.Errorf("empty conversation history")
	}

	last := history[len(history)-1]
	if last.Role != types.RoleUser {
		return nil, "", fmt.Errorf("last history message must be from the user, got %q", last.Role)
	}

	contents := make([]*genai.Content, 0, len(history)-1)
	for _, msg := range history[:len(history)-1] {
		role := "user"
		if msg.Role == types.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents, last.Content, nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
