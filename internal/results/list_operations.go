package results

// ListOperationsToolResult represents the result of the list_operations tool
type ListOperationsToolResult struct {
	Message    string          `json:"message"`
	Operations []OperationInfo `json:"operations"`
}

// OperationInfo describes a supported operation
type OperationInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Example     string `json:"example"`
}
