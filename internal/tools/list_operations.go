package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/gocalc/internal/operations"
	"github.com/averycrespi/gocalc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListOperationsTool handles requests for the supported operations
type ListOperationsTool struct{}

// NewListOperationsTool creates a new list operations tool
func NewListOperationsTool() *ListOperationsTool {
	return &ListOperationsTool{}
}

// GetTool returns the MCP tool definition
func (t *ListOperationsTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolListOperations,
		mcp.WithDescription("List the arithmetic operations supported by the calculate tool"),
	)
	return tool
}

// Handle processes the tool request
func (t *ListOperationsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ops := operations.All()

	toolResult := results.ListOperationsToolResult{
		Message:    fmt.Sprintf("Found %d operations.", len(ops)),
		Operations: make([]results.OperationInfo, 0, len(ops)),
	}
	for _, op := range ops {
		toolResult.Operations = append(toolResult.Operations, results.OperationInfo{
			Name:        op.Name(),
			DisplayName: op.String(),
			Example:     fmt.Sprintf("%s 10 5", op.Name()),
		})
	}

	return NewJSONToolResult(toolResult), nil
}
