package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"go.uber.org/zap"
)

// Serve reads one JSON-RPC request per line from r, dispatches it
// through server, and writes one response line to w. A line that
// fails to parse is logged and skipped; it never terminates the loop.
// Serve returns when r reaches EOF.
func Serve(ctx context.Context, r io.Reader, w io.Writer, server *Server, log *zap.Logger) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			log.Warn("malformed request line, skipping", zap.Error(err))
			continue
		}

		resp := server.HandleRequest(ctx, &req)
		if resp == nil {
			continue
		}
		if err := encoder.Encode(resp); err != nil {
			log.Error("failed to encode response", zap.Error(err))
		}
	}
	return scanner.Err()
}
