package librarian

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonwraymond/standardslibrarian/library"
	"github.com/jonwraymond/standardslibrarian/registry"
)

// ErrMissingArgument reports a required tool argument that was absent or
// not a string.
var ErrMissingArgument = errors.New("missing required argument")

// Service answers librarian tool calls against one immutable library.
type Service struct {
	lib    *library.Library
	logger *zap.Logger
}

// New creates a Service over the given library. The library must be fully
// populated; the service never mutates it.
func New(lib *library.Library, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{lib: lib, logger: logger}
}

// Register installs all librarian tools and the PDF resource handlers on
// the registry.
func (s *Service) Register(reg *registry.Registry) error {
	for _, binding := range s.bindings() {
		if err := reg.Register(binding.tool, binding.handler); err != nil {
			return fmt.Errorf("register %s: %w", binding.tool.Name, err)
		}
	}
	reg.SetResourceHandlers(s.listResources, s.readResource)
	return nil
}

// stringArg extracts a required string argument.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	return v, nil
}

// intArg extracts an optional integer argument, tolerating the float64
// that JSON decoding produces.
func intArg(args map[string]any, name string, fallback int) int {
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}
