package operations

import (
	"fmt"
	"strings"
)

// Operation identifies one of the supported arithmetic operations
type Operation int

const (
	OperationUnknown Operation = iota
	OperationAdd
	OperationSubtract
	OperationMultiply
	OperationDivide
	OperationPower
	OperationModulo
)

// Func computes an operation over two operands
type Func func(a, b float64) (float64, error)

func total(fn func(a, b float64) float64) Func {
	return func(a, b float64) (float64, error) {
		return fn(a, b), nil
	}
}

var operationFuncs = map[Operation]Func{
	OperationAdd:      total(Addition),
	OperationSubtract: total(Subtraction),
	OperationMultiply: total(Multiplication),
	OperationDivide:   Division,
	OperationPower:    total(Power),
	OperationModulo:   Modulo,
}

var operationNames = map[Operation]string{
	OperationAdd:      "add",
	OperationSubtract: "subtract",
	OperationMultiply: "multiply",
	OperationDivide:   "divide",
	OperationPower:    "power",
	OperationModulo:   "modulo",
}

var displayNames = map[Operation]string{
	OperationAdd:      "Add",
	OperationSubtract: "Subtract",
	OperationMultiply: "Multiply",
	OperationDivide:   "Divide",
	OperationPower:    "Power",
	OperationModulo:   "Modulo",
}

// All returns every supported operation in declaration order
func All() []Operation {
	return []Operation{
		OperationAdd,
		OperationSubtract,
		OperationMultiply,
		OperationDivide,
		OperationPower,
		OperationModulo,
	}
}

// Names returns the lowercase name of every supported operation
func Names() []string {
	ops := All()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Name())
	}
	return names
}

// Parse resolves a case-insensitive operation name
func Parse(name string) (Operation, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for op, opName := range operationNames {
		if opName == normalized {
			return op, true
		}
	}
	return OperationUnknown, false
}

// Name returns the lowercase command token for the operation
func (o Operation) Name() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "unknown"
}

// String returns the capitalized display name for the operation
func (o Operation) String() string {
	if name, ok := displayNames[o]; ok {
		return name
	}
	return "Unknown"
}

// IsValid reports whether the operation is one of the supported set
func (o Operation) IsValid() bool {
	_, ok := operationFuncs[o]
	return ok
}

// Apply computes the operation over a and b
func (o Operation) Apply(a, b float64) (float64, error) {
	fn, ok := operationFuncs[o]
	if !ok {
		return 0, fmt.Errorf("unknown operation %d", int(o))
	}
	return fn(a, b)
}
