// Package mcp exposes the RAG tools over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/coopco/ragbridge/internal/config"
	"github.com/coopco/ragbridge/internal/tools"
)

// Server wraps the MCP SDK server around the two tool entry points.
type Server struct {
	mcpServer *mcp.Server
	search    *tools.Search
	answer    *tools.Answer
}

// SearchInput is the input schema for the document search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find relevant documentation"`
}

// AskInput is the input schema for the question-answer tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the documentation"`
}

// NewServer creates an MCP server named after the configured product and
// registers both tools.
func NewServer(cfg *config.Config, version string, search *tools.Search, answer *tools.Answer) (*Server, error) {
	if search == nil || answer == nil {
		return nil, fmt.Errorf("both tools are required")
	}

	s := &Server{
		mcpServer: mcp.NewServer(&mcp.Implementation{
			Name:    cfg.ProductSlug,
			Version: version,
		}, nil),
		search: search,
		answer: answer,
	}

	if err := s.registerTools(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) registerTools() error {
	searchSchema, err := jsonschema.For[SearchInput](nil)
	if err != nil {
		return fmt.Errorf("schema for search tool: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        s.search.Name(),
		Description: s.search.Description(),
		InputSchema: searchSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:         s.search.Title(),
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(true),
		},
	}, s.handleSearch)

	askSchema, err := jsonschema.For[AskInput](nil)
	if err != nil {
		return fmt.Errorf("schema for ask tool: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        s.answer.Name(),
		Description: s.answer.Description(),
		InputSchema: askSchema,
		Annotations: &mcp.ToolAnnotations{
			Title:         s.answer.Title(),
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(true),
		},
	}, s.handleAsk)

	return nil
}

// handleSearch handles the document search tool invocation. Tool-layer
// failures already degraded to an empty snippet list, so the result is
// never a protocol error.
func (s *Server) handleSearch(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, any, error) {
	return textResult(s.search.Run(ctx, in.Query)), nil, nil
}

// handleAsk handles the question-answer tool invocation.
func (s *Server) handleAsk(ctx context.Context, _ *mcp.CallToolRequest, in AskInput) (*mcp.CallToolResult, any, error) {
	return textResult(s.answer.Run(ctx, in.Question)), nil, nil
}

func textResult(texts []string) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(texts))
	for _, t := range texts {
		content = append(content, &mcp.TextContent{Text: t})
	}
	return &mcp.CallToolResult{Content: content}
}

func boolPtr(b bool) *bool { return &b }

// Run serves the MCP protocol over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
