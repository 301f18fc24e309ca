package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	testCases := []struct {
		name     string
		op, a, b string
		expected float64
	}{
		{"add", "add", "2", "3", 5},
		{"sub", "sub", "10", "4", 6},
		{"mul", "mul", "3", "5", 15},
		{"div", "div", "9", "3", 3},
		{"fractional div", "div", "1", "3", 1.0 / 3.0},
		{"negative operands", "add", "-1.5", "-2.25", -3.75},
		{"exponent notation", "mul", "1e3", "2", 2000},
		{"surrounding spaces", "sub", " 7 ", "2", 5},
		{"float rounding kept", "add", "0.1", "0.2", 0.30000000000000004},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Calculate(tc.op, tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestCalculateInvalidOperation(t *testing.T) {
	for _, op := range []string{"pow", "divv", "ADD", "", " add"} {
		t.Run(op, func(t *testing.T) {
			_, err := Calculate(op, "2", "3")
			assert.ErrorIs(t, err, ErrInvalidOperation)
			assert.Equal(t, "invalid_operation", Outcome(err))
		})
	}
}

func TestCalculateBadOperand(t *testing.T) {
	testCases := []struct {
		name     string
		op, a, b string
		operand  string
	}{
		{"missing a", "add", "", "1", "a"},
		{"missing b", "add", "1", "", "b"},
		{"text a", "add", "two", "1", "a"},
		{"text b", "mul", "2", "x", "b"},
		{"bad operand wins over bad op", "pow", "x", "1", "a"},
		{"hex float a", "add", "0x1p4", "1", "a"},
		{"signed hex float b", "add", "1", "-0X10", "b"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.op, tc.a, tc.b)

			var operandErr *OperandError
			require.True(t, errors.As(err, &operandErr))
			assert.Equal(t, tc.operand, operandErr.Name)
			assert.False(t, errors.Is(err, ErrInvalidOperation))
			assert.Equal(t, "bad_operand", Outcome(err))
		})
	}
}

func TestParseOperandRejectsHex(t *testing.T) {
	for _, raw := range []string{"0x1p4", "0X1P4", "+0x10", " -0x1 "} {
		_, err := ParseOperand("a", raw)
		assert.ErrorIs(t, err, ErrHexOperand, raw)
	}

	v, err := ParseOperand("a", "0.5e1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestCalculateDivisionByZero(t *testing.T) {
	for _, a := range []string{"1", "0", "-3"} {
		_, err := Calculate("div", a, "0")
		assert.ErrorIs(t, err, ErrDivisionByZero)
		assert.Equal(t, "division_by_zero", Outcome(err))
	}
}

func TestCalculateNonFinite(t *testing.T) {
	testCases := []struct {
		name     string
		op, a, b string
	}{
		{"overflow", "mul", "1e308", "10"},
		{"infinite operand", "add", "inf", "1"},
		{"nan operand", "sub", "nan", "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.op, tc.a, tc.b)
			assert.ErrorIs(t, err, ErrNonFiniteResult)
			assert.Equal(t, "non_finite", Outcome(err))
		})
	}
}

func TestParseOperation(t *testing.T) {
	for _, tag := range []string{"add", "sub", "mul", "div"} {
		op, ok := ParseOperation(tag)
		require.True(t, ok, tag)
		assert.Equal(t, tag, op.String())
	}

	op, ok := ParseOperation("divv")
	assert.False(t, ok)
	assert.Equal(t, OpInvalid, op)
	assert.Equal(t, "invalid", op.String())
}

func TestOperationApply(t *testing.T) {
	v, err := OpDiv.Apply(math.MaxFloat64, 0.5)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	_, err = OpInvalid.Apply(1, 2)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	assert.Equal(t, "ok", Outcome(nil))
}
