package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/averycrespi/gocalc/internal/calculation"
	"github.com/averycrespi/gocalc/internal/history"
	"github.com/averycrespi/gocalc/internal/operations"
	"github.com/averycrespi/gocalc/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateTool handles calculation requests
type CalculateTool struct {
	history *history.History
}

// NewCalculateTool creates a new calculate tool that records into h
func NewCalculateTool(h *history.History) *CalculateTool {
	return &CalculateTool{
		history: h,
	}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolCalculate,
		mcp.WithDescription("Apply an arithmetic operation to two numbers and record the calculation in the session history"),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Operation name, case-insensitive: one of %s", strings.Join(operations.Names(), ", "))),
		),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand")),
	)
	return tool
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operation := mcp.ParseString(req, "operation", "")
	if operation == "" {
		return mcp.NewToolResultError("operation parameter is required"), nil
	}

	a, err := GetOperand(req, "a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, err := GetOperand(req, "b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pending, err := calculation.Create(operation, a, b)
	if err != nil {
		var unsupported *calculation.UnsupportedOperationError
		if errors.As(err, &unsupported) {
			return mcp.NewToolResultError(fmt.Sprintf("Unsupported operation '%s'. Supported operations: %s",
				unsupported.Name, strings.Join(operations.Names(), ", "))), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create calculation: %v", err)), nil
	}

	evaluated, err := pending.Execute()
	if errors.Is(err, operations.ErrDivisionByZero) {
		return mcp.NewToolResultError("Division by zero is not allowed"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to execute calculation: %v", err)), nil
	}

	position := t.history.Append(evaluated)
	slog.Debug("Calculation evaluated", "operation", evaluated.Operation().Name(), "position", position)

	record := results.NewCalculationRecord(evaluated, position)
	toolResult := results.CalculateToolResult{
		Message: fmt.Sprintf("Result: %s", evaluated),
		Arguments: results.CalculateToolArgs{
			Operation: operation,
			A:         a,
			B:         b,
		},
		Calculation: &record,
	}

	return NewJSONToolResult(toolResult), nil
}
