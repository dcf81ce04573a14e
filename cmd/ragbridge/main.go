// Command ragbridge serves RAG document search and question-answer tools
// over the Model Context Protocol.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coopco/ragbridge/internal/config"
	"github.com/coopco/ragbridge/internal/mcp"
	"github.com/coopco/ragbridge/internal/providers"
	"github.com/coopco/ragbridge/internal/tools"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string
	var verbose bool

	root := &cobra.Command{
		Use:           "ragbridge",
		Short:         "MCP server exposing RAG document search and Q&A tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// Stdout belongs to the stdio transport; logs go to stderr.
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return config.LoadDotEnv(envFile)
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load (missing file is ignored)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server for AI assistant integration.

By default the server communicates over stdio. Use --port to serve the
streamable HTTP transport instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromEnv()
			client := providers.NewClient(cfg.APIKey, cfg.APIBaseURL)

			server, err := mcp.NewServer(cfg, version,
				tools.NewSearch(client, cfg),
				tools.NewAnswer(client, cfg))
			if err != nil {
				return err
			}

			if port > 0 {
				addr := fmt.Sprintf(":%d", port)
				slog.Info("serving MCP over HTTP", "addr", addr, "product", cfg.ProductSlug)
				return server.RunHTTP(cmd.Context(), addr)
			}
			slog.Info("serving MCP over stdio", "product", cfg.ProductSlug)
			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (0 = use stdio)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("ragbridge version %s\n", version)
		},
	}
}
