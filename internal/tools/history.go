package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/gocalc/internal/history"
	"github.com/averycrespi/gocalc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// HistoryTool handles history requests
type HistoryTool struct {
	history *history.History
}

// NewHistoryTool creates a new history tool reading from h
func NewHistoryTool(h *history.History) *HistoryTool {
	return &HistoryTool{
		history: h,
	}
}

// GetTool returns the MCP tool definition
func (t *HistoryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolHistory,
		mcp.WithDescription("List the calculations performed in this session, oldest first"),
	)
	return tool
}

// Handle processes the tool request
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := t.history.Entries()

	toolResult := results.HistoryToolResult{
		Count:        len(entries),
		Calculations: make([]results.CalculationRecord, 0, len(entries)),
	}
	for i, entry := range entries {
		toolResult.Calculations = append(toolResult.Calculations, results.NewCalculationRecord(entry, i+1))
	}

	switch len(entries) {
	case 0:
		toolResult.Message = "No calculations performed yet."
	case 1:
		toolResult.Message = "Found 1 calculation."
	default:
		toolResult.Message = fmt.Sprintf("Found %d calculations.", len(entries))
	}

	return NewJSONToolResult(toolResult), nil
}
