package registry

import "errors"

// Sentinel errors for consistent error handling.
var (
	ErrToolNotFound = errors.New("tool not found")
	ErrToolExists   = errors.New("tool already registered")
	ErrNilHandler   = errors.New("nil tool handler")
)

// MCP JSON-RPC 2.0 error codes.
const (
	ErrCodeParseError     = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
	ErrCodeToolNotFound   = -32001
	ErrCodeToolExecFailed = -32002
)
