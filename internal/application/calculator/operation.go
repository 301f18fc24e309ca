package calculator

// Operation is one of the arithmetic operations accepted by the calculator
type Operation int

const (
	OpInvalid Operation = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var operationTags = map[string]Operation{
	"add": OpAdd,
	"sub": OpSub,
	"mul": OpMul,
	"div": OpDiv,
}

// ParseOperation resolves an operation tag. Matching is exact and
// case-sensitive; unknown tags return OpInvalid and false.
func ParseOperation(tag string) (Operation, bool) {
	op, ok := operationTags[tag]
	if !ok {
		return OpInvalid, false
	}
	return op, true
}

// String returns the tag the operation is selected by
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return "invalid"
	}
}

// Apply evaluates the operation for a and b
func (o Operation) Apply(a, b float64) (float64, error) {
	switch o {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, ErrInvalidOperation
	}
}
