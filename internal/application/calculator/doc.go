// Package calculator implements the arithmetic dispatch behind GET /calculate.
//
// A request carries an operation tag and two operands as text. Operands are
// parsed first, then the tag is resolved to an Operation and applied:
//   - add, sub, mul and div map to the corresponding float64 operator
//   - any other tag yields ErrInvalidOperation
//   - a zero divisor yields ErrDivisionByZero
//
// Callers decide how each error is surfaced; the HTTP layer reports
// ErrInvalidOperation as a 200 JSON body and everything else as a bare 500.
package calculator
