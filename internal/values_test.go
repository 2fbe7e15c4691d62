package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, truthy(nil))
	assert.False(t, truthy(loxBool(false)))
	assert.True(t, truthy(loxBool(true)))
	assert.True(t, truthy(loxNumber(0)))
	assert.True(t, truthy(loxString("")))
	assert.True(t, truthy(&loxInstance{}))
}

func TestIsEqual(t *testing.T) {
	a := &loxInstance{}
	b := &loxInstance{}

	tests := []struct {
		name  string
		left  interface{}
		right interface{}
		equal bool
	}{
		{"nil", nil, nil, true},
		{"nil and false", nil, loxBool(false), false},
		{"numbers", loxNumber(1.5), loxNumber(1.5), true},
		{"number and string", loxNumber(1), loxString("1"), false},
		{"strings", loxString("a"), loxString("a"), true},
		{"different strings", loxString("a"), loxString("b"), false},
		{"same instance", a, a, true},
		{"different instances", a, b, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, isEqual(tt.left, tt.right))
			assert.Equal(t, tt.equal, isEqual(tt.right, tt.left))
		})
	}
}

func TestPrintObj(t *testing.T) {
	class := &loxClass{name: "A"}
	sub := &loxClass{name: "B", superclass: class}
	fn := &loxFunction{declaration: &functionStmt{name: ident("f")}}

	tests := []struct {
		value   interface{}
		display string
	}{
		{nil, "nil"},
		{loxBool(true), "true"},
		{loxBool(false), "false"},
		{loxNumber(3), "3"},
		{loxNumber(-0.5), "-0.5"},
		{loxNumber(1e21), "1e+21"},
		{loxNumber(123456789012), "123456789012"},
		{loxString("hi"), "hi"},
		{fn, "<fn f>"},
		{&nativeFn{}, "<native fn>"},
		{class, "<class A>"},
		{sub, "<class B extends A>"},
		{&loxInstance{class: sub}, "<instance B>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.display, printObj(tt.value))
	}
}

func TestOperators(t *testing.T) {
	apply, err := getOperator(loxNumber(6), opDiv)
	assert.NoError(t, err)
	result, err := apply(loxNumber(4))
	assert.NoError(t, err)
	assert.Equal(t, loxNumber(1.5), result)

	_, err = apply(loxNumber(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = apply(loxString("x"))
	assert.Equal(t, errOperandsNumbers, err)

	apply, err = getOperator(loxString("a"), opAdd)
	assert.NoError(t, err)
	result, err = apply(loxString("b"))
	assert.NoError(t, err)
	assert.Equal(t, loxString("ab"), result)

	_, err = getOperator(loxString("a"), opLt)
	assert.Equal(t, errOperandsNumbers, err)

	_, err = getOperator(nil, opNeg)
	assert.Equal(t, errOperandNumber, err)

	_, err = getOperator(loxBool(true), opAdd)
	assert.Equal(t, errOperandsAdd, err)
}
