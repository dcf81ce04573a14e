// Package tools implements the RAG tool entry points. Each tool makes at
// most one upstream call per invocation and degrades every failure to an
// empty result; failure detail goes to the log, never to the caller.
package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/coopco/ragbridge/internal/config"
	"github.com/coopco/ragbridge/internal/providers"
	"github.com/coopco/ragbridge/internal/rag"
)

// searchResponseSchema constrains the search completion to the document
// collection shape. Documents keep their open-ended source and any extra
// fields the upstream adds.
var searchResponseSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"content": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"type": {"type": "string"},
					"source": {},
					"title": {"type": "string"},
					"context": {"type": "string"},
					"record_type": {"type": "string"},
					"url": {"type": "string"}
				},
				"required": ["type", "source"],
				"additionalProperties": true
			}
		}
	},
	"required": ["content"]
}`)

// Search is the document search tool: free-text query in, normalized
// snippets out.
type Search struct {
	provider    providers.Provider
	model       string
	name        string
	title       string
	description string
}

func NewSearch(p providers.Provider, cfg *config.Config) *Search {
	return &Search{
		provider:    p,
		model:       cfg.SearchModel,
		name:        cfg.SearchToolName(),
		title:       cfg.ProductName + " document search",
		description: cfg.SearchToolDescription(),
	}
}

func (t *Search) Name() string        { return t.name }
func (t *Search) Title() string       { return t.title }
func (t *Search) Description() string { return t.description }

// Run performs one retrieval call and normalizes the response. It never
// fails: missing credentials, transport errors, and malformed payloads
// all yield an empty slice.
func (t *Search) Run(ctx context.Context, query string) []string {
	if strings.TrimSpace(query) == "" {
		slog.Warn("search called without a query", "tool", t.name)
		return []string{}
	}

	resp, err := t.provider.Chat(ctx, providers.ChatRequest{
		Model:    t.model,
		Messages: []providers.Message{{Role: "user", Content: query}},
		ResponseSchema: &providers.ResponseSchema{
			Name:   "retrieval_result",
			Schema: searchResponseSchema,
		},
	})
	if err != nil {
		slog.Error("search upstream call failed", "tool", t.name, "error", err)
		return []string{}
	}

	docs, err := rag.ParseValue(resp.Content)
	if err != nil {
		slog.Error("search payload rejected", "tool", t.name, "error", err)
		return []string{}
	}
	return rag.Snippets(docs)
}
