package results

// HistoryToolResult represents the result of the history tool
type HistoryToolResult struct {
	Message      string              `json:"message"`
	Count        int                 `json:"count"`
	Calculations []CalculationRecord `json:"calculations"`
}
