package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/hlfan/readurl-mcp/pkg/fetch"
)

type stubFetcher struct{}

func (stubFetcher) Get(ctx context.Context, url string) (fetch.Result, error) {
	return fetch.Result{Body: "<html><body><p>hi</p></body></html>"}, nil
}

func (stubFetcher) GetRaw(ctx context.Context, url string) (string, error) {
	return "raw", nil
}

func testServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(stubFetcher{}, zaptest.NewLogger(t))
}

func TestHandleRequest_Ping(t *testing.T) {
	server := testServer(t)
	resp := server.HandleRequest(context.Background(), &Request{JSONRPC: "2.0", ID: 1, Method: "ping"})
	require.NotNil(t, resp)
	assert.Equal(t, json.RawMessage(`"pong"`), resp.Result)
}

func TestHandleRequest_UnknownMethod(t *testing.T) {
	server := testServer(t)
	resp := server.HandleRequest(context.Background(), &Request{JSONRPC: "2.0", ID: 1, Method: "nope"})
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, MethodNotFound, resp.Error.Code)
}

func TestHandleRequest_Notification_NoResponse(t *testing.T) {
	server := testServer(t)
	resp := server.HandleRequest(context.Background(), &Request{JSONRPC: "2.0", Method: "nope"})
	assert.Nil(t, resp)
}

func TestHandleRequest_ToolsList(t *testing.T) {
	server := testServer(t)
	resp := server.HandleRequest(context.Background(), &Request{JSONRPC: "2.0", ID: 1, Method: "tools/list"})
	require.NotNil(t, resp)

	var body struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &body))

	names := map[string]bool{}
	for _, tool := range body.Tools {
		names[tool.Name] = true
	}
	assert.True(t, names["read_url"])
	assert.True(t, names["fetch_raw"])
}

func TestHandleRequest_ToolsCall_Success(t *testing.T) {
	server := testServer(t)
	params, _ := json.Marshal(map[string]any{
		"name":      "fetch_raw",
		"arguments": map[string]any{"url": "https://example.com"},
	})
	resp := server.HandleRequest(context.Background(), &Request{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	var body struct {
		Content []toolContent `json:"content"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &body))
	require.Len(t, body.Content, 1)
	assert.Equal(t, "raw", body.Content[0].Text)
}

func TestHandleRequest_ToolsCall_InvalidArguments(t *testing.T) {
	server := testServer(t)
	params, _ := json.Marshal(map[string]any{
		"name":      "fetch_raw",
		"arguments": map[string]any{},
	})
	resp := server.HandleRequest(context.Background(), &Request{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, InvalidParams, resp.Error.Code)
}

func TestServe_SkipsMalformedLines(t *testing.T) {
	input := bytes.NewBufferString("not json\n" + `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	var output bytes.Buffer

	server := testServer(t)
	err := Serve(context.Background(), input, &output, server, zap.NewNop())
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(output.Bytes(), &resp))
	assert.Equal(t, json.RawMessage(`"pong"`), resp.Result)
}
