package results

import (
	"math"

	"github.com/averycrespi/gocalc/internal/calculation"
)

// CalculationRecord represents an evaluated calculation.
// Non-finite numbers cannot be encoded as JSON numbers, so they are omitted
// from the numeric fields and only appear in Display.
type CalculationRecord struct {
	Position  int      `json:"position"` // 1-indexed position in the history
	Operation string   `json:"operation"`
	OperandA  *float64 `json:"operand_a,omitempty"`
	OperandB  *float64 `json:"operand_b,omitempty"`
	Result    *float64 `json:"result,omitempty"`
	Display   string   `json:"display"`
}

// NewCalculationRecord creates a CalculationRecord for the calculation at the given history position
func NewCalculationRecord(c calculation.Evaluated, position int) CalculationRecord {
	a, b := c.Operands()
	return CalculationRecord{
		Position:  position,
		Operation: c.Operation().Name(),
		OperandA:  finite(a),
		OperandB:  finite(b),
		Result:    finite(c.Result()),
		Display:   c.String(),
	}
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
