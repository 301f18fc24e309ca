package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InvalidOperationMessage is the body text returned for unrecognized tags
const InvalidOperationMessage = "Invalid operation"

var (
	// ErrInvalidOperation is returned for tags outside add, sub, mul and div
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrDivisionByZero is returned by div when the divisor is zero
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonFiniteResult is returned when a result cannot be encoded as JSON
	ErrNonFiniteResult = errors.New("result is not a finite number")
)

// OperandError reports an operand that could not be parsed as a number
type OperandError struct {
	Name  string
	Value string
	Err   error
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("operand %s=%q is not a number: %v", e.Name, e.Value, e.Err)
}

func (e *OperandError) Unwrap() error {
	return e.Err
}

// ErrHexOperand is returned for operands written as hexadecimal floats
var ErrHexOperand = errors.New("hexadecimal notation is not accepted")

// ParseOperand parses a decimal operand. Empty input (a missing query
// parameter) and hexadecimal floats are rejected like any other
// non-numeric text.
func ParseOperand(name, raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if isHex(text) {
		return 0, &OperandError{Name: name, Value: raw, Err: ErrHexOperand}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &OperandError{Name: name, Value: raw, Err: err}
	}
	return v, nil
}

func isHex(text string) bool {
	text = strings.TrimLeft(text, "+-")
	return strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X")
}

// Calculate parses both operands, then applies the operation named by op.
// Operand errors take precedence over an unrecognized tag.
func Calculate(op, a, b string) (float64, error) {
	x, err := ParseOperand("a", a)
	if err != nil {
		return 0, err
	}
	y, err := ParseOperand("b", b)
	if err != nil {
		return 0, err
	}

	operation, ok := ParseOperation(op)
	if !ok {
		return 0, ErrInvalidOperation
	}

	result, err := operation.Apply(x, y)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", operation, err)
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("%s(%g, %g): %w", operation, x, y, ErrNonFiniteResult)
	}

	return result, nil
}

// Outcome classifies an error returned by Calculate for metrics labels
func Outcome(err error) string {
	var operandErr *OperandError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidOperation):
		return "invalid_operation"
	case errors.As(err, &operandErr):
		return "bad_operand"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrNonFiniteResult):
		return "non_finite"
	default:
		return "error"
	}
}
