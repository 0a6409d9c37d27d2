//go:build !nofs

package mcp

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/Fuabioo/tzkit/internal/core"
)

// newTestServer creates a server backed by the embedded system database
// with the default zone set to defaultZone.
func newTestServer(t *testing.T, defaultZone string) *Server {
	t.Helper()

	cfg := core.DefaultConfig()
	cfg.TZ.Default = defaultZone

	svc, err := core.NewService(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return NewServer(svc)
}

// newTestRequest creates a CallToolRequest for testing
func newTestRequest(arguments map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: arguments,
		},
	}
}

// getResultText extracts the text from a CallToolResult for testing
func getResultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := mcp.AsTextContent(result.Content[0]); ok {
		return textContent.Text
	}
	return ""
}

// decodeResult parses the JSON body of a tool result.
func decodeResult(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.Unmarshal([]byte(getResultText(result)), &response); err != nil {
		t.Fatalf("failed to parse response %q: %v", getResultText(result), err)
	}
	return response
}

// errorMessage returns the message of an error result, failing the test
// if result is not an error.
func errorMessage(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if !result.IsError {
		t.Fatalf("expected error result, got %s", getResultText(result))
	}
	response := decodeResult(t, result)
	errObj, ok := response["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("error result missing error object: %v", response)
	}
	msg, _ := errObj["message"].(string)
	return msg
}
