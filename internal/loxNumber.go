package internal

type loxNumber float64

func applyOpToNumbers(op operator, apply func(x, y float64) (interface{}, error), arguments ...interface{}) (interface{}, error) {
	x := arguments[0].(loxNumber)
	y, ok := arguments[1].(loxNumber)
	if !ok {
		return nil, operatorMismatch(op)
	}
	return apply(float64(x), float64(y))
}

var numberBinaryOperations = map[operator]func(x, y float64) (interface{}, error){
	opAdd: func(x, y float64) (interface{}, error) {
		return loxNumber(x + y), nil
	},
	opSub: func(x, y float64) (interface{}, error) {
		return loxNumber(x - y), nil
	},
	opMul: func(x, y float64) (interface{}, error) {
		return loxNumber(x * y), nil
	},
	opDiv: func(x, y float64) (interface{}, error) {
		if y == 0 {
			return nil, errZeroDivision
		}
		return loxNumber(x / y), nil
	},
	opLt: func(x, y float64) (interface{}, error) {
		return loxBool(x < y), nil
	},
	opLte: func(x, y float64) (interface{}, error) {
		return loxBool(x <= y), nil
	},
	opGt: func(x, y float64) (interface{}, error) {
		return loxBool(x > y), nil
	},
	opGte: func(x, y float64) (interface{}, error) {
		return loxBool(x >= y), nil
	},
}

func (n loxNumber) getOperator(op operator) (operatorApply, error) {
	if apply, ok := numberBinaryOperations[op]; ok {
		return func(arguments ...interface{}) (interface{}, error) {
			return applyOpToNumbers(op, apply, append([]interface{}{n}, arguments...)...)
		}, nil
	}
	if op == opNeg {
		return func(arguments ...interface{}) (interface{}, error) {
			return -n, nil
		}, nil
	}
	return nil, operatorMismatch(op)
}

func (n loxNumber) String() string {
	return formatNumber(float64(n))
}
