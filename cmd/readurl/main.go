// Command readurl is the CLI front end for the readability pipeline:
// fetch-and-extract, extract-from-file, and an MCP stdio server mode.
package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hlfan/readurl-mcp/internal/config"
	"github.com/hlfan/readurl-mcp/internal/logging"
	"github.com/hlfan/readurl-mcp/pkg/article"
	"github.com/hlfan/readurl-mcp/pkg/fetch"
	"github.com/hlfan/readurl-mcp/pkg/rpc"
)

var (
	configPath string
	baseURLArg string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "readurl",
		Short: "readurl extracts clean Markdown articles from web pages",
		Long:  "readurl runs the readability pipeline: parse HTML, score and select the main content, render Markdown, and fall back to a whole-document conversion when the scored extraction looks poor.",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yml", "path to an optional config file")

	readCmd := &cobra.Command{
		Use:   "read <url>",
		Short: "Fetch a URL and print its extracted Markdown",
		Args:  cobra.ExactArgs(1),
		RunE:  runRead,
	}

	extractCmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract Markdown from a local HTML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVar(&baseURLArg, "base-url", "", "base URL for resolving relative links")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the line-delimited JSON-RPC tool server on stdio",
		RunE:  runServe,
	}

	rootCmd.AddCommand(readCmd, extractCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRead(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.NewDefault()
	}

	client := fetch.NewClient(time.Duration(cfg.Client.HTTPTimeoutSeconds) * time.Second)
	result, err := client.Get(cmd.Context(), rawURL)
	if err != nil {
		return err
	}

	base, _ := url.Parse(rawURL)
	a, err := article.Extract(result.Body, base)
	if err != nil {
		return err
	}

	fmt.Println(article.Render(a, rawURL))
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]

	html, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var base *url.URL
	if baseURLArg != "" {
		base, err = url.Parse(baseURLArg)
		if err != nil {
			return fmt.Errorf("parsing --base-url: %w", err)
		}
	}

	a, err := article.Extract(string(html), base)
	if err != nil {
		return err
	}

	fmt.Println(article.Render(a, baseURLArg))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.NewDefault()
	}

	log, err := logging.New(cfg.Logging.Debug)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting readurl mcp server")

	client := fetch.NewClient(time.Duration(cfg.Client.HTTPTimeoutSeconds) * time.Second)
	server := rpc.NewServer(client, log)

	return rpc.Serve(context.Background(), os.Stdin, os.Stdout, server, log)
}
