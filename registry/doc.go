// Package registry provides the MCP server plumbing for the standards
// librarian: tool and resource registration, JSON-RPC 2.0 request dispatch,
// and stdio/HTTP transports.
//
// Features:
//   - Local tool registration with text-returning handlers
//   - MCP protocol handlers (initialize, tools/list, tools/call,
//     resources/list, resources/read)
//   - stdio and streamable HTTP transports
//
// Example usage:
//
//	reg := registry.New(registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "standards-librarian",
//	        Version: "1.0.0",
//	    },
//	})
//
//	reg.Register(mcp.Tool{
//	    Name:        "lookup_topic",
//	    Description: "Look up a topic in the cross-reference index",
//	    InputSchema: map[string]any{
//	        "type": "object",
//	        "properties": map[string]any{
//	            "topic": map[string]any{"type": "string"},
//	        },
//	        "required": []string{"topic"},
//	    },
//	}, func(ctx context.Context, args map[string]any) (string, error) {
//	    return "...", nil
//	})
//
//	registry.ServeStdio(ctx, reg)
package registry
