// Package providers wraps the outbound call to the upstream
// OpenAI-compatible completion endpoint.
package providers

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrMissingAPIKey is returned before any network I/O when no API key is
// configured. Callers treat it as a recoverable per-call condition.
var ErrMissingAPIKey = errors.New("no API key configured")

// Provider is the upstream completion interface.
type Provider interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

type ChatRequest struct {
	Model        string    `json:"model"`
	Messages     []Message `json:"messages"`
	SystemPrompt string    `json:"-"` // prepended as a system message when set
	// ResponseSchema requests schema-constrained structured output.
	ResponseSchema *ResponseSchema `json:"-"`
}

type Message struct {
	Role    string `json:"role"` // "system" or "user"
	Content string `json:"content"`
}

// ResponseSchema describes the JSON schema attached to a completion call
// via response_format.
type ResponseSchema struct {
	Name   string
	Schema json.RawMessage
}

type ChatResponse struct {
	Content string `json:"content"`
	Usage   Usage  `json:"usage"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
