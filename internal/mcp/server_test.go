package mcp

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/coopco/ragbridge/internal/config"
	"github.com/coopco/ragbridge/internal/providers"
	"github.com/coopco/ragbridge/internal/tools"
)

// stubProvider returns canned completion content.
type stubProvider struct {
	content string
	err     error
}

func (s *stubProvider) Chat(_ context.Context, _ providers.ChatRequest) (*providers.ChatResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &providers.ChatResponse{Content: s.content}, nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.ProductSlug = "acme"
	cfg.ProductName = "Acme"
	return cfg
}

// connectServer builds a server over the given provider and returns a
// client session connected via in-memory transports.
func connectServer(t *testing.T, p providers.Provider) *mcp.ClientSession {
	t.Helper()

	cfg := testConfig()
	server, err := NewServer(cfg, "0.1.0", tools.NewSearch(p, cfg), tools.NewAnswer(p, cfg))
	if err != nil {
		t.Fatalf("NewServer() unexpected error: %v", err)
	}

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server.Connect() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client.Connect() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}

func TestListTools(t *testing.T) {
	session := connectServer(t, &stubProvider{content: `{"content":[]}`})

	result, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() unexpected error: %v", err)
	}

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		if tool.Description == "" {
			t.Errorf("tool %q has empty description", tool.Name)
		}
		if tool.Annotations == nil || !tool.Annotations.ReadOnlyHint {
			t.Errorf("tool %q should carry a read-only annotation", tool.Name)
		}
	}
	sort.Strings(names)

	want := []string{"ask-question-about-acme", "search-acme-docs"}
	if len(names) != len(want) {
		t.Fatalf("ListTools() returned %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("tool[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestCallTool_Search(t *testing.T) {
	payload := `{"content":[{"type":"citation","title":"Intro","source":{"text":"Hello"},"url":"http://x"}]}`
	session := connectServer(t, &stubProvider{content: payload})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search-acme-docs",
		Arguments: map[string]any{"query": "getting started"},
	})
	if err != nil {
		t.Fatalf("CallTool() unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("CallTool() returned error result")
	}
	if len(result.Content) != 1 {
		t.Fatalf("len(Content) = %d, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("Content[0] type = %T, want *mcp.TextContent", result.Content[0])
	}
	want := "Intro\n\nHello\n\nSource: http://x"
	if text.Text != want {
		t.Errorf("text = %q, want %q", text.Text, want)
	}
}

func TestCallTool_Ask(t *testing.T) {
	session := connectServer(t, &stubProvider{content: "Paris is the capital of France."})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "ask-question-about-acme",
		Arguments: map[string]any{"question": "capital of France?"},
	})
	if err != nil {
		t.Fatalf("CallTool() unexpected error: %v", err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("len(Content) = %d, want 1", len(result.Content))
	}
	text := result.Content[0].(*mcp.TextContent)
	if text.Text != "Paris is the capital of France." {
		t.Errorf("text = %q, want literal upstream answer", text.Text)
	}
}

func TestCallTool_FailureYieldsEmptyResult(t *testing.T) {
	session := connectServer(t, &stubProvider{err: errors.New("connection refused")})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search-acme-docs",
		Arguments: map[string]any{"query": "anything"},
	})
	if err != nil {
		t.Fatalf("CallTool() unexpected error: %v", err)
	}
	if result.IsError {
		t.Error("upstream failure must not surface as a protocol error")
	}
	if len(result.Content) != 0 {
		t.Errorf("len(Content) = %d, want 0", len(result.Content))
	}
}

func TestNewServer_RequiresTools(t *testing.T) {
	cfg := testConfig()
	if _, err := NewServer(cfg, "0.1.0", nil, nil); err == nil {
		t.Error("expected error when tools are missing")
	}
}
