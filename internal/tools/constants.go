package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "calc."

// Tool names
const (
	ToolCalculate      = ToolPrefix + "calculate"
	ToolHistory        = ToolPrefix + "history"
	ToolListOperations = ToolPrefix + "list_operations"
)
