// Package calculation binds an operation to its operands and evaluates it.
//
// A calculation moves through two phases: Create validates the operation
// name and returns a Pending value, and Pending.Execute produces an
// Evaluated value carrying the result. Only Evaluated values can be rendered.
package calculation

import (
	"fmt"

	"github.com/averycrespi/gocalc/internal/operations"
)

// UnsupportedOperationError is returned by Create when the operation name is not recognized
type UnsupportedOperationError struct {
	Name string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation: '%s'", e.Name)
}

// Pending is a validated calculation that has not been executed yet
type Pending struct {
	operation operations.Operation
	a         float64
	b         float64
}

// Evaluated is an executed calculation together with its result
type Evaluated struct {
	operation operations.Operation
	a         float64
	b         float64
	result    float64
}

// Create resolves operationName (case-insensitive) and binds it to the operands.
// The operation is not evaluated.
func Create(operationName string, a, b float64) (Pending, error) {
	op, ok := operations.Parse(operationName)
	if !ok {
		return Pending{}, &UnsupportedOperationError{Name: operationName}
	}
	return Pending{operation: op, a: a, b: b}, nil
}

// Operation returns the bound operation
func (p Pending) Operation() operations.Operation {
	return p.operation
}

// Operands returns the bound operands
func (p Pending) Operands() (a, b float64) {
	return p.a, p.b
}

// Execute evaluates the calculation. Errors from the operation, such as
// operations.ErrDivisionByZero, are returned wrapped.
func (p Pending) Execute() (Evaluated, error) {
	result, err := p.operation.Apply(p.a, p.b)
	if err != nil {
		return Evaluated{}, fmt.Errorf("failed to execute %s calculation: %w", p.operation.Name(), err)
	}
	return Evaluated{
		operation: p.operation,
		a:         p.a,
		b:         p.b,
		result:    result,
	}, nil
}

// Operation returns the evaluated operation
func (e Evaluated) Operation() operations.Operation {
	return e.operation
}

// Operands returns the evaluated operands
func (e Evaluated) Operands() (a, b float64) {
	return e.a, e.b
}

// Result returns the computed value
func (e Evaluated) Result() float64 {
	return e.result
}

// String renders the calculation, e.g. "AddCalculation: 10.0 Add 5.0 = 15.0"
func (e Evaluated) String() string {
	op := e.operation.String()
	return fmt.Sprintf("%sCalculation: %s %s %s = %s",
		op, FormatFloat(e.a), op, FormatFloat(e.b), FormatFloat(e.result))
}
