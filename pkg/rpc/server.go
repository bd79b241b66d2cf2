package rpc

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/hlfan/readurl-mcp/pkg/article"
	"github.com/hlfan/readurl-mcp/pkg/mcptools"
)

// Server dispatches JSON-RPC requests against the tool registry.
type Server struct {
	tools map[string]mcptools.Tool
	log   *zap.Logger
}

// NewServer builds a Server backed by client's tool registry.
func NewServer(client mcptools.Fetcher, log *zap.Logger) *Server {
	tools := make(map[string]mcptools.Tool)
	for _, tool := range mcptools.Registry(client) {
		tools[tool.Name] = tool
	}
	return &Server{tools: tools, log: log}
}

// HandleRequest processes one request and returns its response.
// Returns nil for notifications (requests without an ID).
func (s *Server) HandleRequest(ctx context.Context, req *Request) *Response {
	if req.ID == nil {
		return nil
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req.ID)
	case "tools/list":
		return s.handleToolsList(req.ID)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping":
		return &Response{JSONRPC: "2.0", ID: req.ID, Result: json.RawMessage(`"pong"`)}
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Error:   &ErrorObject{Code: MethodNotFound, Message: "Method not found"},
	}
}

func (s *Server) handleInitialize(id any) *Response {
	result, _ := json.Marshal(map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]any{"tools": map[string]any{}},
		"serverInfo":      map[string]any{"name": "readurl-mcp", "version": "1.0.0"},
	})
	return &Response{JSONRPC: "2.0", ID: id, Result: result}
}

func (s *Server) handleToolsList(id any) *Response {
	type toolDescriptor struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		InputSchema map[string]any `json:"inputSchema"`
	}

	var descriptors []toolDescriptor
	for _, tool := range s.tools {
		descriptors = append(descriptors, toolDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
		})
	}

	result, _ := json.Marshal(map[string]any{"tools": descriptors})
	return &Response{JSONRPC: "2.0", ID: id, Result: result}
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params toolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &ErrorObject{Code: InvalidParams, Message: "Invalid params"},
		}
	}

	tool, ok := s.tools[params.Name]
	if !ok {
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &ErrorObject{Code: MethodNotFound, Message: "Unknown tool: " + params.Name},
		}
	}

	text, err := tool.Execute(ctx, params.Arguments)
	if err != nil {
		s.log.Warn("tool call failed", zap.String("tool", params.Name), zap.Error(err))
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &ErrorObject{Code: errorCode(err), Message: err.Error()},
		}
	}

	result, _ := json.Marshal(map[string]any{
		"content": []toolContent{{Type: "text", Text: text}},
	})
	return &Response{JSONRPC: "2.0", ID: req.ID, Result: result}
}

// errorCode maps an article.Error's Kind to a JSON-RPC error code;
// anything else is treated as an internal error.
func errorCode(err error) int {
	var ae *article.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case article.InputInvalid:
			return InvalidParams
		default:
			return InternalError
		}
	}
	return InternalError
}
