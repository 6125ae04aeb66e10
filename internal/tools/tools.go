package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// GetOperand extracts a required numeric argument from an MCP request.
// Numbers and numeric strings are accepted; non-finite values are rejected.
func GetOperand(req mcp.CallToolRequest, key string) (float64, error) {
	raw := mcp.ParseArgument(req, key, nil)
	if raw == nil {
		return 0, fmt.Errorf("%s parameter is required", key)
	}

	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%s parameter must be a number: %v", key, err)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s parameter must be finite", key)
	}

	return value, nil
}

// NewJSONToolResult marshals v into an indented text tool result
func NewJSONToolResult(v any) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err))
	}
	return mcp.NewToolResultText(string(jsonBytes))
}
