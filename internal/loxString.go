package internal

type loxString string

func applyOpToStrings(op operator, apply func(x, y string) interface{}, arguments ...interface{}) (interface{}, error) {
	x := arguments[0].(loxString)
	y, ok := arguments[1].(loxString)
	if !ok {
		return nil, operatorMismatch(op)
	}
	return apply(string(x), string(y)), nil
}

// Only concatenation is defined for strings, comparisons are numeric.
var stringBinaryOperations = map[operator]func(x, y string) interface{}{
	opAdd: func(x, y string) interface{} {
		return loxString(x + y)
	},
}

func (s loxString) getOperator(op operator) (operatorApply, error) {
	if apply, ok := stringBinaryOperations[op]; ok {
		return func(arguments ...interface{}) (interface{}, error) {
			return applyOpToStrings(op, apply, append([]interface{}{s}, arguments...)...)
		}, nil
	}
	return nil, operatorMismatch(op)
}

func (s loxString) String() string {
	return string(s)
}

// Repr quotes the string the way it appears in source
func (s loxString) Repr() string {
	return "\"" + string(s) + "\""
}
