package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Config configures a Registry.
type Config struct {
	ServerInfo ServerInfo
	// Logger receives one entry per tool call. Defaults to a no-op logger.
	Logger *zap.Logger
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// ToolHandler executes a tool with the given arguments. It returns the
// rendered text result; "not found" and "no match" outcomes are rendered
// text, not errors. An error reaches the caller as a JSON-RPC failure.
type ToolHandler func(ctx context.Context, args map[string]any) (string, error)

// ResourceInfo describes one resource for resources/list.
type ResourceInfo struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
}

// ResourceContents is the payload for resources/read. Exactly one of Text
// or Blob (base64) is set.
type ResourceContents struct {
	URI      string
	MIMEType string
	Text     string
	Blob     string
}

// ResourceLister enumerates the currently available resources.
type ResourceLister func(ctx context.Context) []ResourceInfo

// ResourceReader resolves a resource URI. The bool result reports whether
// the URI was recognized.
type ResourceReader func(ctx context.Context, uri string) (ResourceContents, bool)

// Registry is an MCP server with a fixed set of locally-handled tools and
// optional resource handlers. Registration happens at startup; request
// handling is read-only afterwards.
type Registry struct {
	mu       sync.RWMutex
	config   Config
	tools    []mcp.Tool
	handlers map[string]ToolHandler

	listResources ResourceLister
	readResource  ResourceReader
}

// New creates a new Registry with the given config.
func New(cfg Config) *Registry {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Registry{
		config:   cfg,
		handlers: make(map[string]ToolHandler),
	}
}

// Register adds a tool with its execution handler. Tool order is
// preserved for tools/list.
func (r *Registry) Register(tool mcp.Tool, handler ToolHandler) error {
	if handler == nil {
		return fmt.Errorf("%w: %s", ErrNilHandler, tool.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrToolExists, tool.Name)
	}
	r.tools = append(r.tools, tool)
	r.handlers[tool.Name] = handler
	return nil
}

// SetResourceHandlers installs the resources/list and resources/read
// handlers. Both may be nil, in which case the server advertises no
// resources.
func (r *Registry) SetResourceHandlers(list ResourceLister, read ResourceReader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listResources = list
	r.readResource = read
}

// Tools returns all registered tools in registration order.
func (r *Registry) Tools() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]mcp.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Execute runs a tool by name with the given arguments.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	r.mu.RLock()
	handler, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	r.config.Logger.Info("tool call",
		zap.String("tool", name),
		zap.Any("args", args),
	)

	result, err := handler(ctx, args)
	if err != nil {
		r.config.Logger.Error("tool failed",
			zap.String("tool", name),
			zap.Error(err),
		)
		return "", err
	}
	return result, nil
}
