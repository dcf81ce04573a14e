// Package config resolves process configuration from the environment.
// Configuration is resolved once at startup and passed by value into
// constructors; nothing here mutates after load.
package config

import "fmt"

const (
	defaultSearchModel = "gpt-4o-mini"
	defaultQAModel     = "gpt-4o-mini"
	defaultSlug        = "product"
	defaultName        = "the product"
)

// Config is the full runtime configuration.
type Config struct {
	// APIBaseURL is the OpenAI-compatible endpoint. Empty means the
	// client library default (https://api.openai.com/v1).
	APIBaseURL string
	// APIKey may be empty; tools then degrade to empty results per call.
	APIKey string

	SearchModel    string
	QAModel        string
	QASystemPrompt string

	// ProductSlug and ProductName template the tools' discoverable
	// identity (names, titles, descriptions).
	ProductSlug string
	ProductName string
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		SearchModel: defaultSearchModel,
		QAModel:     defaultQAModel,
		ProductSlug: defaultSlug,
		ProductName: defaultName,
	}
}

// SearchToolName is the templated name of the document search tool.
func (c *Config) SearchToolName() string {
	return fmt.Sprintf("search-%s-docs", c.ProductSlug)
}

// SearchToolDescription describes the document search tool.
func (c *Config) SearchToolDescription() string {
	return fmt.Sprintf("Search the documentation of %s and return relevant text snippets.", c.ProductName)
}

// AskToolName is the templated name of the question-answer tool.
func (c *Config) AskToolName() string {
	return fmt.Sprintf("ask-question-about-%s", c.ProductSlug)
}

// AskToolDescription describes the question-answer tool.
func (c *Config) AskToolDescription() string {
	return fmt.Sprintf("Ask a question about %s and get a grounded answer.", c.ProductName)
}
