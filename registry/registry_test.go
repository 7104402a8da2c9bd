package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func echoTool() mcp.Tool {
	return mcp.Tool{
		Name:        "echo",
		Description: "Echoes back the input",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"message": map[string]any{"type": "string"},
			},
		},
	}
}

func TestNew(t *testing.T) {
	reg := New(Config{
		ServerInfo: ServerInfo{Name: "test-server", Version: "1.0.0"},
	})

	if reg == nil {
		t.Fatal("expected non-nil registry")
	}
	if reg.config.ServerInfo.Name != "test-server" {
		t.Errorf("expected server name 'test-server', got %s", reg.config.ServerInfo.Name)
	}
}

func TestRegisterAndExecute(t *testing.T) {
	reg := New(Config{ServerInfo: ServerInfo{Name: "test", Version: "1.0.0"}})

	callCount := 0
	err := reg.Register(echoTool(), func(ctx context.Context, args map[string]any) (string, error) {
		callCount++
		return "echo: " + args["message"].(string), nil
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := reg.Execute(context.Background(), "echo", map[string]any{"message": "hello"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if callCount != 1 {
		t.Errorf("expected handler to be called once, got %d", callCount)
	}
	if result != "echo: hello" {
		t.Errorf("expected 'echo: hello', got %q", result)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := New(Config{})
	handler := func(ctx context.Context, args map[string]any) (string, error) { return "", nil }

	if err := reg.Register(echoTool(), handler); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := reg.Register(echoTool(), handler); !errors.Is(err, ErrToolExists) {
		t.Errorf("expected ErrToolExists, got %v", err)
	}
}

func TestRegisterNilHandler(t *testing.T) {
	reg := New(Config{})
	if err := reg.Register(echoTool(), nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("expected ErrNilHandler, got %v", err)
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	reg := New(Config{})
	_, err := reg.Execute(context.Background(), "missing", nil)
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	reg := New(Config{
		ServerInfo: ServerInfo{Name: "test-server", Version: "1.0.0"},
	})

	resp := reg.HandleRequest(context.Background(), MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatalf("expected map result, got %T", resp.Result)
	}
	info, ok := result["serverInfo"].(map[string]any)
	if !ok {
		t.Fatalf("expected serverInfo map, got %T", result["serverInfo"])
	}
	if info["name"] != "test-server" {
		t.Errorf("expected server name 'test-server', got %v", info["name"])
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	reg := New(Config{})
	_ = reg.Register(echoTool(), func(ctx context.Context, args map[string]any) (string, error) {
		return "", nil
	})

	resp := reg.HandleRequest(context.Background(), MCPRequest{
		JSONRPC: "2.0",
		ID:      2,
		Method:  "tools/list",
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	result := resp.Result.(map[string]any)
	tools := result["tools"].([]map[string]any)
	if len(tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(tools))
	}
	if tools[0]["name"] != "echo" {
		t.Errorf("expected tool name 'echo', got %v", tools[0]["name"])
	}
}

func TestHandleRequest_ToolsCall(t *testing.T) {
	reg := New(Config{})
	_ = reg.Register(echoTool(), func(ctx context.Context, args map[string]any) (string, error) {
		return "hello from echo", nil
	})

	params, _ := json.Marshal(map[string]any{
		"name":      "echo",
		"arguments": map[string]any{"message": "hi"},
	})
	resp := reg.HandleRequest(context.Background(), MCPRequest{
		JSONRPC: "2.0",
		ID:      3,
		Method:  "tools/call",
		Params:  params,
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	result := resp.Result.(map[string]any)
	content := result["content"].([]map[string]any)
	if len(content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(content))
	}
	if content[0]["text"] != "hello from echo" {
		t.Errorf("unexpected content text: %v", content[0]["text"])
	}
}

func TestHandleRequest_ToolsCallUnknownTool(t *testing.T) {
	reg := New(Config{})

	params, _ := json.Marshal(map[string]any{"name": "missing"})
	resp := reg.HandleRequest(context.Background(), MCPRequest{
		JSONRPC: "2.0",
		ID:      4,
		Method:  "tools/call",
		Params:  params,
	})

	if resp.Error == nil {
		t.Fatal("expected error response")
	}
	if resp.Error.Code != ErrCodeToolNotFound {
		t.Errorf("expected code %d, got %d", ErrCodeToolNotFound, resp.Error.Code)
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	reg := New(Config{})

	resp := reg.HandleRequest(context.Background(), MCPRequest{
		JSONRPC: "2.0",
		ID:      5,
		Method:  "bogus/method",
	})

	if resp.Error == nil || resp.Error.Code != ErrCodeMethodNotFound {
		t.Fatalf("expected method-not-found error, got %+v", resp.Error)
	}
}

func TestHandleRequest_Resources(t *testing.T) {
	reg := New(Config{})
	reg.SetResourceHandlers(
		func(ctx context.Context) []ResourceInfo {
			return []ResourceInfo{{
				URI:      "standards://IEC_60601-1/pdf",
				Name:     "IEC 60601-1 (PDF)",
				MIMEType: "application/pdf",
			}}
		},
		func(ctx context.Context, uri string) (ResourceContents, bool) {
			if uri != "standards://IEC_60601-1/pdf" {
				return ResourceContents{}, false
			}
			return ResourceContents{URI: uri, MIMEType: "application/pdf", Blob: "JVBERi0xLjQ="}, true
		},
	)

	resp := reg.HandleRequest(context.Background(), MCPRequest{JSONRPC: "2.0", ID: 6, Method: "resources/list"})
	if resp.Error != nil {
		t.Fatalf("resources/list error: %v", resp.Error)
	}
	resources := resp.Result.(map[string]any)["resources"].([]map[string]any)
	if len(resources) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(resources))
	}

	params, _ := json.Marshal(map[string]any{"uri": "standards://IEC_60601-1/pdf"})
	resp = reg.HandleRequest(context.Background(), MCPRequest{JSONRPC: "2.0", ID: 7, Method: "resources/read", Params: params})
	if resp.Error != nil {
		t.Fatalf("resources/read error: %v", resp.Error)
	}
	contents := resp.Result.(map[string]any)["contents"].([]map[string]any)
	if contents[0]["blob"] != "JVBERi0xLjQ=" {
		t.Errorf("unexpected blob: %v", contents[0]["blob"])
	}

	// Unknown URIs come back as a text payload, not a protocol error.
	params, _ = json.Marshal(map[string]any{"uri": "standards://NOPE/pdf"})
	resp = reg.HandleRequest(context.Background(), MCPRequest{JSONRPC: "2.0", ID: 8, Method: "resources/read", Params: params})
	if resp.Error != nil {
		t.Fatalf("resources/read error: %v", resp.Error)
	}
	contents = resp.Result.(map[string]any)["contents"].([]map[string]any)
	text, _ := contents[0]["text"].(string)
	if !strings.Contains(text, "Resource not found") {
		t.Errorf("expected not-found text, got %q", text)
	}
}

func TestServe(t *testing.T) {
	reg := New(Config{})
	_ = reg.Register(echoTool(), func(ctx context.Context, args map[string]any) (string, error) {
		return "ok", nil
	})

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}` + "\n" + `not json` + "\n")
	var out bytes.Buffer

	if err := serve(context.Background(), reg, in, &out); err != nil {
		t.Fatalf("serve failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(lines))
	}

	var first MCPResponse
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("bad first response: %v", err)
	}
	if first.Error != nil {
		t.Errorf("unexpected error: %+v", first.Error)
	}

	var second MCPResponse
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("bad second response: %v", err)
	}
	if second.Error == nil || second.Error.Code != ErrCodeParseError {
		t.Errorf("expected parse error, got %+v", second.Error)
	}
}

func TestServeHTTP(t *testing.T) {
	reg := New(Config{})
	_ = reg.Register(echoTool(), func(ctx context.Context, args map[string]any) (string, error) {
		return "ok", nil
	})

	srv := httptest.NewServer(ServeHTTP(reg))
	defer srv.Close()

	body := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	resp, err := http.Post(srv.URL, "application/json", body)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer resp.Body.Close()

	var mcpResp MCPResponse
	if err := json.NewDecoder(resp.Body).Decode(&mcpResp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if mcpResp.Error != nil {
		t.Errorf("unexpected error: %+v", mcpResp.Error)
	}

	getResp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer getResp.Body.Close()
	if getResp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for GET, got %d", getResp.StatusCode)
	}
}
