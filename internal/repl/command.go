package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseError is returned when a line does not match "<operation> <num1> <num2>"
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// Command is a tokenized calculation request
type Command struct {
	Operation string
	A         float64
	B         float64
}

// ParseCommand splits line on whitespace into an operation name and two numeric operands.
// The operation name is not validated here. Out-of-range literals such as
// "1e400" parse to an infinity rather than failing.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Command{}, &ParseError{
			Input:  line,
			Reason: fmt.Sprintf("expected 3 fields, got %d", len(fields)),
		}
	}

	a, err := parseOperand(fields[1])
	if err != nil {
		return Command{}, &ParseError{Input: line, Reason: fmt.Sprintf("first operand: %v", err)}
	}

	b, err := parseOperand(fields[2])
	if err != nil {
		return Command{}, &ParseError{Input: line, Reason: fmt.Sprintf("second operand: %v", err)}
	}

	return Command{Operation: fields[0], A: a, B: b}, nil
}

func parseOperand(field string) (float64, error) {
	value, err := strconv.ParseFloat(field, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return value, nil
}
