package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Client calls an OpenAI-compatible chat completion API. It does not
// retry, cache, or rate-limit; every failure propagates once.
type Client struct {
	api    *openai.Client
	apiKey string
}

// NewClient creates a client for the given endpoint. An empty baseURL
// uses the library default. The API key may be empty at construction
// time; Chat rejects calls until one is configured.
func NewClient(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:    openai.NewClientWithConfig(cfg),
		apiKey: apiKey,
	}
}

// Chat sends one chat completion request and returns the first choice.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	var msgs []openai.ChatCompletionMessage
	if req.SystemPrompt != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	for _, m := range req.Messages {
		msg := openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
		// Some providers reject empty string content
		if msg.Content == "" {
			msg.Content = " "
		}
		msgs = append(msgs, msg)
	}

	oaiReq := openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: msgs,
	}
	if req.ResponseSchema != nil {
		oaiReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.ResponseSchema.Name,
				Schema: req.ResponseSchema.Schema,
			},
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, oaiReq)
	if err != nil {
		slog.Error("chat completion failed", "model", req.Model, "error", err)
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return &ChatResponse{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
