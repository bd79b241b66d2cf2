// Package fetch is the HTTP collaborator the tool layer uses to
// retrieve a page before handing it to the core extractor. The core
// itself is transport-agnostic; it only ever sees the bytes a Result
// carries.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hlfan/readurl-mcp/pkg/article"
	"github.com/hlfan/readurl-mcp/pkg/htmldoc"
)

// userAgent identifies every request this process makes.
const userAgent = "think-it-mcp"

// Result carries a fetched page: its decoded body, the content-type
// header as sent by the server, and the final URL after redirects.
type Result struct {
	Body        string
	ContentType string
	FinalURL    string
}

// Client performs GET requests with the pipeline's fixed user agent
// and a bounded timeout.
type Client struct {
	http *http.Client
}

// defaultTimeout is used when NewClient is called with a non-positive
// timeout, e.g. from a caller that never loaded config.
const defaultTimeout = 30 * time.Second

// NewClient builds a Client bounded by timeout. A non-positive timeout
// falls back to defaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// Get retrieves url and decodes its body to UTF-8 using the
// Content-Type header and, failing that, charset sniffing.
func (c *Client) Get(ctx context.Context, url string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, &article.Error{Kind: article.FetchFailed, Msg: "building request", Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, &article.Error{Kind: article.FetchFailed, Msg: "performing request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &article.Error{Kind: article.FetchFailed, Msg: "reading response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, &article.Error{
			Kind: article.FetchFailed,
			Msg:  fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.Status),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	return Result{
		Body:        htmldoc.DecodeToUTF8(body, contentType),
		ContentType: contentType,
		FinalURL:    resp.Request.URL.String(),
	}, nil
}

// GetRaw retrieves url and returns its decoded body without any
// further processing, for the fetch_raw tool.
func (c *Client) GetRaw(ctx context.Context, url string) (string, error) {
	result, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return result.Body, nil
}
