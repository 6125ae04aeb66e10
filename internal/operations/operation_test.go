package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Operation
		ok       bool
	}{
		{name: "add", input: "add", expected: OperationAdd, ok: true},
		{name: "subtract uppercase", input: "SUBTRACT", expected: OperationSubtract, ok: true},
		{name: "multiply mixed case", input: "MuLtIpLy", expected: OperationMultiply, ok: true},
		{name: "divide with spaces", input: "  divide ", expected: OperationDivide, ok: true},
		{name: "power", input: "Power", expected: OperationPower, ok: true},
		{name: "modulo", input: "modulo", expected: OperationModulo, ok: true},
		{name: "unsupported name", input: "floor", expected: OperationUnknown, ok: false},
		{name: "empty name", input: "", expected: OperationUnknown, ok: false},
		{name: "display form of unknown", input: "unknown", expected: OperationUnknown, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestOperationNames(t *testing.T) {
	tests := []struct {
		op          Operation
		name        string
		displayName string
	}{
		{op: OperationAdd, name: "add", displayName: "Add"},
		{op: OperationSubtract, name: "subtract", displayName: "Subtract"},
		{op: OperationMultiply, name: "multiply", displayName: "Multiply"},
		{op: OperationDivide, name: "divide", displayName: "Divide"},
		{op: OperationPower, name: "power", displayName: "Power"},
		{op: OperationModulo, name: "modulo", displayName: "Modulo"},
		{op: OperationUnknown, name: "unknown", displayName: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.displayName, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.op.Name())
			assert.Equal(t, tt.displayName, tt.op.String())
		})
	}
}

func TestAllOperationsAreDispatchable(t *testing.T) {
	ops := All()
	assert.Len(t, ops, 6)
	assert.Equal(t, []string{"add", "subtract", "multiply", "divide", "power", "modulo"}, Names())

	for _, op := range ops {
		assert.True(t, op.IsValid(), "%s should be valid", op)
		parsed, ok := Parse(op.Name())
		require.True(t, ok)
		assert.Equal(t, op, parsed)
	}
	assert.False(t, OperationUnknown.IsValid())
}

func TestApply(t *testing.T) {
	tests := []struct {
		op       Operation
		a, b     float64
		expected float64
	}{
		{op: OperationAdd, a: 2, b: 3, expected: 5},
		{op: OperationSubtract, a: 20, b: 3, expected: 17},
		{op: OperationMultiply, a: 4, b: 5, expected: 20},
		{op: OperationDivide, a: 10, b: 2, expected: 5},
		{op: OperationPower, a: 2, b: 3, expected: 8},
		{op: OperationModulo, a: 3, b: 2, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			result, err := tt.op.Apply(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestApplyErrors(t *testing.T) {
	_, err := OperationDivide.Apply(5, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = OperationModulo.Apply(5, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = OperationUnknown.Apply(1, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDivisionByZero)
}
