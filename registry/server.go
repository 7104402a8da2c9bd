package registry

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// ServeStdio runs the registry as an MCP server over stdio.
// Blocks until stdin is closed or context is cancelled.
func ServeStdio(ctx context.Context, r *Registry) error {
	return serve(ctx, r, os.Stdin, os.Stdout)
}

func serve(ctx context.Context, r *Registry, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var req MCPRequest
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			resp := MCPResponse{
				JSONRPC: "2.0",
				Error:   &MCPError{Code: ErrCodeParseError, Message: err.Error()},
			}
			if err := encoder.Encode(resp); err != nil {
				return fmt.Errorf("failed to encode error response: %w", err)
			}
			continue
		}

		resp := r.HandleRequest(ctx, req)
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// ServeHTTP returns an http.Handler for streamable HTTP transport.
// Handles POST requests with JSON-RPC bodies, returns JSON responses.
func ServeHTTP(r *Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var mcpReq MCPRequest
		if err := json.NewDecoder(req.Body).Decode(&mcpReq); err != nil {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(MCPResponse{
				JSONRPC: "2.0",
				Error:   &MCPError{Code: ErrCodeParseError, Message: err.Error()},
			})
			return
		}

		resp := r.HandleRequest(req.Context(), mcpReq)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})
}
