package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/averycrespi/gocalc/internal/operations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAcceptsSupportedOperations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected operations.Operation
	}{
		{name: "add", input: "add", expected: operations.OperationAdd},
		{name: "subtract", input: "Subtract", expected: operations.OperationSubtract},
		{name: "multiply", input: "MULTIPLY", expected: operations.OperationMultiply},
		{name: "divide", input: "divide", expected: operations.OperationDivide},
		{name: "power", input: "pOwEr", expected: operations.OperationPower},
		{name: "modulo", input: "Modulo", expected: operations.OperationModulo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pending, err := Create(tt.input, 1, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pending.Operation())

			a, b := pending.Operands()
			assert.Equal(t, 1.0, a)
			assert.Equal(t, 2.0, b)
		})
	}
}

func TestCreateRejectsUnsupportedOperation(t *testing.T) {
	for _, name := range []string{"floor", "", "sqrt", "addition", "+"} {
		t.Run(name, func(t *testing.T) {
			_, err := Create(name, 5, 3)
			require.Error(t, err)

			var unsupported *UnsupportedOperationError
			require.True(t, errors.As(err, &unsupported))
			assert.Equal(t, name, unsupported.Name)
			assert.NotErrorIs(t, err, operations.ErrDivisionByZero)
		})
	}
}

func TestCreateDoesNotEvaluate(t *testing.T) {
	// Construction succeeds even when execution would fail
	pending, err := Create("divide", 5, 0)
	require.NoError(t, err)

	_, err = pending.Execute()
	assert.ErrorIs(t, err, operations.ErrDivisionByZero)
}

func TestExecute(t *testing.T) {
	tests := []struct {
		operation string
		a, b      float64
		expected  float64
		rendered  string
	}{
		{operation: "add", a: 2, b: 3, expected: 5, rendered: "AddCalculation: 2.0 Add 3.0 = 5.0"},
		{operation: "add", a: 10, b: 5, expected: 15, rendered: "AddCalculation: 10.0 Add 5.0 = 15.0"},
		{operation: "subtract", a: 20, b: 3, expected: 17, rendered: "SubtractCalculation: 20.0 Subtract 3.0 = 17.0"},
		{operation: "multiply", a: 4, b: 5, expected: 20, rendered: "MultiplyCalculation: 4.0 Multiply 5.0 = 20.0"},
		{operation: "divide", a: 10, b: 2, expected: 5, rendered: "DivideCalculation: 10.0 Divide 2.0 = 5.0"},
		{operation: "power", a: 2, b: 3, expected: 8, rendered: "PowerCalculation: 2.0 Power 3.0 = 8.0"},
		{operation: "modulo", a: 3, b: 2, expected: 1, rendered: "ModuloCalculation: 3.0 Modulo 2.0 = 1.0"},
		{operation: "subtract", a: 7.5, b: 2.25, expected: 5.25, rendered: "SubtractCalculation: 7.5 Subtract 2.25 = 5.25"},
	}

	for _, tt := range tests {
		t.Run(tt.rendered, func(t *testing.T) {
			pending, err := Create(tt.operation, tt.a, tt.b)
			require.NoError(t, err)

			evaluated, err := pending.Execute()
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, evaluated.Result(), 1e-9)
			assert.Equal(t, tt.rendered, evaluated.String())
		})
	}
}

func TestExecuteIsRepeatable(t *testing.T) {
	pending, err := Create("power", 1.5, 2.5)
	require.NoError(t, err)

	first, err := pending.Execute()
	require.NoError(t, err)
	second, err := pending.Execute()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExecutePropagatesDivisionByZero(t *testing.T) {
	for _, name := range []string{"divide", "modulo"} {
		t.Run(name, func(t *testing.T) {
			pending, err := Create(name, 5, 0)
			require.NoError(t, err)

			evaluated, err := pending.Execute()
			assert.ErrorIs(t, err, operations.ErrDivisionByZero)
			assert.Equal(t, Evaluated{}, evaluated)
		})
	}
}

func TestEvaluatedKeepsOperands(t *testing.T) {
	pending, err := Create("subtract", 20, 3)
	require.NoError(t, err)
	evaluated, err := pending.Execute()
	require.NoError(t, err)

	a, b := evaluated.Operands()
	assert.Equal(t, 20.0, a)
	assert.Equal(t, 3.0, b)
	assert.Equal(t, operations.OperationSubtract, evaluated.Operation())
}

func TestFormatFloat(t *testing.T) {
	// variables so the sum is computed in float64, not as an exact constant
	tenth, fifth := 0.1, 0.2

	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "integral value", input: 5, expected: "5.0"},
		{name: "zero", input: 0, expected: "0.0"},
		{name: "negative zero", input: math.Copysign(0, -1), expected: "-0.0"},
		{name: "negative integral", input: -4, expected: "-4.0"},
		{name: "fraction", input: 0.1, expected: "0.1"},
		{name: "sum with rounding error", input: tenth + fifth, expected: "0.30000000000000004"},
		{name: "small positional", input: 0.0001, expected: "0.0001"},
		{name: "small exponent", input: 0.00001, expected: "1e-05"},
		{name: "small exponent with mantissa", input: 0.000015, expected: "1.5e-05"},
		{name: "large positional", input: 1e15, expected: "1000000000000000.0"},
		{name: "large exponent", input: 1e16, expected: "1e+16"},
		{name: "large exponent with mantissa", input: 1.5e20, expected: "1.5e+20"},
		{name: "positive infinity", input: math.Inf(1), expected: "inf"},
		{name: "negative infinity", input: math.Inf(-1), expected: "-inf"},
		{name: "not a number", input: math.NaN(), expected: "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFloat(tt.input))
		})
	}
}

func TestUnsupportedOperationErrorMessage(t *testing.T) {
	err := &UnsupportedOperationError{Name: "floor"}
	assert.Equal(t, "unsupported operation: 'floor'", err.Error())
}
