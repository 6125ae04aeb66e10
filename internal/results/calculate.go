package results

// CalculateToolResult represents the result of the calculate tool
type CalculateToolResult struct {
	Message     string             `json:"message"`
	Arguments   CalculateToolArgs  `json:"arguments"`
	Calculation *CalculationRecord `json:"calculation,omitempty"`
}

// CalculateToolArgs represents the input arguments for the calculate tool
type CalculateToolArgs struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
}
