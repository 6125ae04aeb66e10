package repl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/averycrespi/gocalc/internal/calculation"
	"github.com/averycrespi/gocalc/internal/operations"
)

const (
	Prompt = "Enter an operation (add, subtract, multiply, divide, power, modulo) and two numbers, or 'exit' to quit: "

	bannerMessage       = "Type 'help' for instructions or 'exit' to quit.\n\nWelcome to the calculator REPL! Type 'exit' to quit\n"
	exitMessage         = "Exiting calculator...\n"
	emptyHistoryMessage = "No calculations performed yet.\n"
	historyHeader       = "Calculation History:\n"

	InvalidInputMessage   = "Invalid input. Please follow the format: <operation> <num1> <num2>"
	DivisionByZeroMessage = "Division by zero is not allowed"
	HelpHintMessage       = "Type 'help' to see the list of supported operations.\n"
)

// Control commands, matched against the lowercased input line
const (
	CommandHelp    = "help"
	CommandHistory = "history"
	CommandExit    = "exit"
)

var operationDescriptions = map[operations.Operation]string{
	operations.OperationAdd:      "Adds two numbers.",
	operations.OperationSubtract: "Subtracts the second number from the first.",
	operations.OperationMultiply: "Multiplies two numbers.",
	operations.OperationDivide:   "Divides the first number by the second.",
	operations.OperationPower:    "Raises the first number to the power of the second.",
	operations.OperationModulo:   "Remainder of dividing the first number by the second.",
}

var helpExamples = []string{
	"add 10 5",
	"subtract 15.5 3.2",
	"multiply 7 8",
	"divide 20 4",
	"power 2 8",
	"modulo 17 5",
}

// HelpText returns the usage text listing the operations and control commands
func HelpText() string {
	var b strings.Builder
	b.WriteString("\nCalculator REPL Help\n")
	b.WriteString("--------------------\n")
	b.WriteString("Usage:\n")
	b.WriteString("    <operation> <number1> <number2>\n")
	b.WriteString("    - Perform a calculation with the specified operation and two numbers.\n")
	b.WriteString("    - Supported operations:\n")
	for _, op := range operations.All() {
		fmt.Fprintf(&b, "        %-9s : %s\n", op.Name(), operationDescriptions[op])
	}
	b.WriteString("\nSpecial Commands:\n")
	fmt.Fprintf(&b, "    %-9s : Display this help message.\n", CommandHelp)
	fmt.Fprintf(&b, "    %-9s : Show the history of calculations.\n", CommandHistory)
	fmt.Fprintf(&b, "    %-9s : Exit the calculator.\n", CommandExit)
	b.WriteString("\nExamples:\n")
	for _, example := range helpExamples {
		fmt.Fprintf(&b, "    %s\n", example)
	}
	return b.String()
}

// Evaluate parses, validates and executes a single "<operation> <num1> <num2>" line
func Evaluate(line string) (calculation.Evaluated, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return calculation.Evaluated{}, err
	}

	pending, err := calculation.Create(cmd.Operation, cmd.A, cmd.B)
	if err != nil {
		return calculation.Evaluated{}, err
	}

	return pending.Execute()
}

// ErrorMessage returns the user-facing text for an error returned by Evaluate
func ErrorMessage(err error) string {
	var parseErr *ParseError
	var unsupported *calculation.UnsupportedOperationError

	switch {
	case errors.As(err, &parseErr):
		return InvalidInputMessage + "\n"
	case errors.As(err, &unsupported):
		return fmt.Sprintf("Unsupported operation: '%s'\n%s\n", unsupported.Name, HelpHintMessage)
	case errors.Is(err, operations.ErrDivisionByZero):
		return DivisionByZeroMessage + "\n"
	default:
		return fmt.Sprintf("Error: %v\n", err)
	}
}

// ResultMessage returns the user-facing text for a successful calculation
func ResultMessage(c calculation.Evaluated) string {
	return fmt.Sprintf("Result: %s\n\n", c)
}
