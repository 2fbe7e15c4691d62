package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opNeg operator = "neg"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

var binaryOperators = map[TokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

type operatorApply func(arguments ...interface{}) (interface{}, error)

// operable values provide their own implementation of an operator,
// the receiver being the left operand
type operable interface {
	getOperator(op operator) (operatorApply, error)
}

// operatorError is returned by operator implementations, the evaluator
// attaches the line of the operator token
type operatorError struct {
	kind    error
	message string
}

func (e *operatorError) Error() string {
	return e.message
}

func (e *operatorError) Unwrap() error {
	return e.kind
}

var (
	errOperandNumber   = &operatorError{ErrTypeMismatch, "Operand must be a number."}
	errOperandsNumbers = &operatorError{ErrTypeMismatch, "Operands must be numbers."}
	errOperandsAdd     = &operatorError{ErrTypeMismatch, "Operands must be two numbers or two strings."}
	errZeroDivision    = &operatorError{ErrDivisionByZero, "Division by zero."}
)

// operatorMismatch is the error for applying op to operands that do not support it
func operatorMismatch(op operator) error {
	switch op {
	case opAdd:
		return errOperandsAdd
	case opNeg:
		return errOperandNumber
	}
	return errOperandsNumbers
}

func getOperator(value interface{}, op operator) (operatorApply, error) {
	if o, ok := value.(operable); ok {
		return o.getOperator(op)
	}
	return nil, operatorMismatch(op)
}
