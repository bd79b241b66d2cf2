// Package mcptools exposes the two tool operations the process
// boundary offers: read_url, which runs the full readability
// pipeline, and fetch_raw, which bypasses it entirely.
package mcptools

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/hlfan/readurl-mcp/pkg/article"
	"github.com/hlfan/readurl-mcp/pkg/fetch"
)

// Fetcher is the HTTP collaborator a Tool calls through. *fetch.Client
// satisfies it; tests substitute a stub.
type Fetcher interface {
	Get(ctx context.Context, url string) (fetch.Result, error)
	GetRaw(ctx context.Context, url string) (string, error)
}

// Tool is one callable operation: its MCP-facing descriptor plus the
// function that runs it against decoded arguments.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
	Execute     func(ctx context.Context, arguments json.RawMessage) (string, error)
}

// Registry returns the process's two tools, backed by client.
func Registry(client Fetcher) []Tool {
	return []Tool{
		{
			Name:        "read_url",
			Description: readURLDescription,
			InputSchema: urlArgSchema("The URL of the web page to fetch content from. This should be a valid web address (e.g., https://www.example.com) of the specific page you want to retrieve information from. Ensure the URL is complete and correctly formatted for accurate results."),
			Execute: func(ctx context.Context, arguments json.RawMessage) (string, error) {
				rawURL, err := extractURL(arguments)
				if err != nil {
					return "", err
				}
				return readURL(ctx, client, rawURL)
			},
		},
		{
			Name:        "fetch_raw",
			Description: fetchRawDescription,
			InputSchema: urlArgSchema("The URL of the web page to fetch raw content from. This should be a valid web address (e.g., https://www.example.com) of the specific page you want to retrieve information from. Ensure the URL is complete and correctly formatted for accurate results."),
			Execute: func(ctx context.Context, arguments json.RawMessage) (string, error) {
				rawURL, err := extractURL(arguments)
				if err != nil {
					return "", err
				}
				return client.GetRaw(ctx, rawURL)
			},
		},
	}
}

const readURLDescription = `This tool retrieves the content of a target web page directly from the internet, allowing access to and extraction of textual information from online sources. It is used when you have a clear HTTP(s) URL and need to fetch content from the web, such as articles, documentation, product information, or real-time data.

The tool enables you to provide current and accurate information by directly accessing web content. It's particularly useful for answering questions that require up-to-date data or fact-checking information against online sources. Always ensure you have a valid and complete HTTP(s) URL before using this tool to retrieve web content.`

const fetchRawDescription = `This tool retrieves the raw content of a target web page directly from the internet, without any processing or formatting. It returns the original response text as-is. Use this when you need the unmodified HTML or other content from a URL. Ideal for TXT formats.

The tool is useful when you need to analyze the raw structure of a webpage or when dealing with non-HTML content types where processing might alter the data. Always ensure you have a valid and complete HTTP(s) URL before using this tool.`

func urlArgSchema(description string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"url"},
	}
}

// readURL fetches rawURL, runs it through the core extractor, and
// assembles the final Markdown document.
func readURL(ctx context.Context, client Fetcher, rawURL string) (string, error) {
	result, err := client.Get(ctx, rawURL)
	if err != nil {
		return "", err
	}

	var base *url.URL
	if parsed, parseErr := url.Parse(rawURL); parseErr == nil {
		base = parsed
	}

	a, err := article.Extract(result.Body, base)
	if err != nil {
		return "", err
	}
	return article.Render(a, rawURL), nil
}

// extractURL validates and pulls the url argument out of a tool
// call's raw JSON arguments, reporting the three distinct failure
// messages the process boundary's contract calls for.
func extractURL(arguments json.RawMessage) (string, error) {
	if len(arguments) == 0 || string(arguments) == "null" {
		return "", &article.Error{Kind: article.InputInvalid, Msg: "missing arguments"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(arguments, &fields); err != nil {
		return "", &article.Error{Kind: article.InputInvalid, Msg: "missing arguments"}
	}

	raw, ok := fields["url"]
	if !ok {
		return "", &article.Error{Kind: article.InputInvalid, Msg: "missing url"}
	}

	var rawURL string
	if err := json.Unmarshal(raw, &rawURL); err != nil {
		return "", &article.Error{Kind: article.InputInvalid, Msg: "url is not a string"}
	}
	return rawURL, nil
}
