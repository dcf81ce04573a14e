package tools

import (
	"context"
	"log/slog"
	"strings"

	"github.com/coopco/ragbridge/internal/config"
	"github.com/coopco/ragbridge/internal/providers"
)

// Answer is the question-answer tool: free-text question in, a single
// prose answer out. The QA endpoint returns plain text, so no parsing or
// schema validation happens on this path.
type Answer struct {
	provider     providers.Provider
	model        string
	systemPrompt string
	name         string
	title        string
	description  string
}

func NewAnswer(p providers.Provider, cfg *config.Config) *Answer {
	return &Answer{
		provider:     p,
		model:        cfg.QAModel,
		systemPrompt: cfg.QASystemPrompt,
		name:         cfg.AskToolName(),
		title:        cfg.ProductName + " Q&A",
		description:  cfg.AskToolDescription(),
	}
}

func (t *Answer) Name() string        { return t.name }
func (t *Answer) Title() string       { return t.title }
func (t *Answer) Description() string { return t.description }

// Run asks the upstream one question and wraps the answer. Failures and
// blank answers both yield an empty slice.
func (t *Answer) Run(ctx context.Context, question string) []string {
	if strings.TrimSpace(question) == "" {
		slog.Warn("ask called without a question", "tool", t.name)
		return []string{}
	}

	resp, err := t.provider.Chat(ctx, providers.ChatRequest{
		Model:        t.model,
		SystemPrompt: t.systemPrompt,
		Messages:     []providers.Message{{Role: "user", Content: question}},
	})
	if err != nil {
		slog.Error("ask upstream call failed", "tool", t.name, "error", err)
		return []string{}
	}

	if strings.TrimSpace(resp.Content) == "" {
		return []string{}
	}
	return []string{resp.Content}
}
