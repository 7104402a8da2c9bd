package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// MCPRequest represents an incoming MCP JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an MCP JSON-RPC response.
type MCPResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *MCPError `json:"error,omitempty"`
}

// MCPError is a JSON-RPC error object.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// HandleRequest processes an MCP request and returns a response.
func (r *Registry) HandleRequest(ctx context.Context, req MCPRequest) MCPResponse {
	switch req.Method {
	case "initialize":
		return r.handleInitialize(ctx, req.ID, req.Params)
	case "tools/list":
		return r.handleToolsList(ctx, req.ID, req.Params)
	case "tools/call":
		return r.handleToolsCall(ctx, req.ID, req.Params)
	case "resources/list":
		return r.handleResourcesList(ctx, req.ID, req.Params)
	case "resources/read":
		return r.handleResourcesRead(ctx, req.ID, req.Params)
	default:
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    ErrCodeMethodNotFound,
				Message: fmt.Sprintf("method %s not found", req.Method),
			},
		}
	}
}

func (r *Registry) handleInitialize(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	capabilities := map[string]any{
		"tools": map[string]any{},
	}
	r.mu.RLock()
	if r.listResources != nil {
		capabilities["resources"] = map[string]any{}
	}
	r.mu.RUnlock()

	result := map[string]any{
		"protocolVersion": "2024-11-05",
		"capabilities":    capabilities,
		"serverInfo": map[string]any{
			"name":    r.config.ServerInfo.Name,
			"version": r.config.ServerInfo.Version,
		},
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

func (r *Registry) handleToolsList(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	tools := r.Tools()

	mcpTools := make([]map[string]any, 0, len(tools))
	for _, tool := range tools {
		mcpTools = append(mcpTools, map[string]any{
			"name":        tool.Name,
			"description": tool.Description,
			"inputSchema": tool.InputSchema,
		})
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  map[string]any{"tools": mcpTools},
	}
}

type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func (r *Registry) handleToolsCall(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	var callParams toolsCallParams
	if err := json.Unmarshal(params, &callParams); err != nil {
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      id,
			Error: &MCPError{
				Code:    ErrCodeInvalidParams,
				Message: err.Error(),
			},
		}
	}

	text, err := r.Execute(ctx, callParams.Name, callParams.Arguments)
	if err != nil {
		code := ErrCodeToolExecFailed
		if errors.Is(err, ErrToolNotFound) {
			code = ErrCodeToolNotFound
		}
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      id,
			Error: &MCPError{
				Code:    code,
				Message: err.Error(),
			},
		}
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": text},
			},
		},
	}
}

func (r *Registry) handleResourcesList(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	r.mu.RLock()
	list := r.listResources
	r.mu.RUnlock()

	resources := make([]map[string]any, 0)
	if list != nil {
		for _, res := range list(ctx) {
			resources = append(resources, map[string]any{
				"uri":         res.URI,
				"name":        res.Name,
				"description": res.Description,
				"mimeType":    res.MIMEType,
			})
		}
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  map[string]any{"resources": resources},
	}
}

type resourcesReadParams struct {
	URI string `json:"uri"`
}

func (r *Registry) handleResourcesRead(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	var readParams resourcesReadParams
	if err := json.Unmarshal(params, &readParams); err != nil {
		return MCPResponse{
			JSONRPC: "2.0",
			ID:      id,
			Error: &MCPError{
				Code:    ErrCodeInvalidParams,
				Message: err.Error(),
			},
		}
	}

	r.mu.RLock()
	read := r.readResource
	r.mu.RUnlock()

	var contents ResourceContents
	found := false
	if read != nil {
		contents, found = read(ctx, readParams.URI)
	}
	if !found {
		// Unknown URIs get a text payload rather than a protocol error.
		contents = ResourceContents{
			URI:      readParams.URI,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Resource not found: %s", readParams.URI),
		}
	}

	entry := map[string]any{
		"uri":      contents.URI,
		"mimeType": contents.MIMEType,
	}
	if contents.Blob != "" {
		entry["blob"] = contents.Blob
	} else {
		entry["text"] = contents.Text
	}

	return MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  map[string]any{"contents": []map[string]any{entry}},
	}
}
