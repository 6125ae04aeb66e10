// Package operations implements the arithmetic primitives of the calculator.
package operations

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned by Division and Modulo when the divisor is zero
var ErrDivisionByZero = errors.New("division by zero")

// Addition returns a + b
func Addition(a, b float64) float64 {
	return a + b
}

// Subtraction returns a - b
func Subtraction(a, b float64) float64 {
	return a - b
}

// Multiplication returns a * b
func Multiplication(a, b float64) float64 {
	return a * b
}

// Division returns a / b, or ErrDivisionByZero when b is zero
func Division(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns a raised to the power b
func Power(a, b float64) float64 {
	return math.Pow(a, b)
}

// Modulo returns the floating-point remainder of a / b, or ErrDivisionByZero when b is zero.
// The result has the sign of a.
func Modulo(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return math.Mod(a, b), nil
}
