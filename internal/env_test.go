package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string) *Token {
	return &Token{Type: tkIdentifier, Lexeme: name, Line: 7}
}

func TestEnvDefineAndGet(t *testing.T) {
	globals := newEnv(nil)
	globals.define("a", loxNumber(1))

	value, err := globals.get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, loxNumber(1), value)

	// Redefinition overwrites
	globals.define("a", loxString("x"))
	value, err = globals.get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, loxString("x"), value)

	// Defined as nil is still defined
	globals.define("n", nil)
	value, err = globals.get(ident("n"))
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestEnvUndefined(t *testing.T) {
	e := newEnv(newEnv(nil))

	_, err := e.get(ident("missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndefinedVariable))
	assert.Equal(t, "Runtime error [line 7]: Undefined variable 'missing'.", err.Error())

	err = e.assign(ident("missing"), loxNumber(1))
	assert.True(t, errors.Is(err, ErrUndefinedVariable))
	_, err = e.get(ident("missing"))
	assert.Error(t, err, "a failed assign must not define the name")
}

func TestEnvShadowing(t *testing.T) {
	globals := newEnv(nil)
	globals.define("x", loxNumber(1))

	inner := newEnv(globals)
	inner.define("x", loxNumber(2))

	value, err := inner.get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, loxNumber(2), value)

	value, err = globals.get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, loxNumber(1), value)
}

func TestEnvAssignWalksOutward(t *testing.T) {
	globals := newEnv(nil)
	globals.define("x", loxNumber(1))
	middle := newEnv(globals)
	inner := newEnv(middle)

	require.NoError(t, inner.assign(ident("x"), loxNumber(3)))

	value, err := globals.get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, loxNumber(3), value)
	assert.NotContains(t, inner.values, "x")
	assert.NotContains(t, middle.values, "x")
}

func TestEnvDepth(t *testing.T) {
	globals := newEnv(nil)
	inner := newEnv(newEnv(globals))

	assert.Equal(t, 1, globals.depth())
	assert.Equal(t, 3, inner.depth())
	assert.Equal(t, inner.depth(), inner.depth())
}

func TestGlobalsDefineClock(t *testing.T) {
	e := newEnv(nil)
	defineGlobals(e)

	value, err := e.get(ident("clock"))
	require.NoError(t, err)

	clock, ok := value.(callable)
	require.True(t, ok)
	assert.Equal(t, 0, clock.arity())

	first := clock.call(nil, nil).(loxNumber)
	second := clock.call(nil, nil).(loxNumber)
	assert.True(t, second >= first)
	assert.Greater(t, float64(first), 0.0)
}

func TestEnvReassignSameValue(t *testing.T) {
	globals := newEnv(nil)
	globals.define("a", loxNumber(1))
	globals.define("b", loxString("b"))
	inner := newEnv(globals)

	depth := inner.depth()
	require.NoError(t, inner.assign(ident("a"), loxNumber(1)))
	require.NoError(t, inner.assign(ident("a"), loxNumber(1)))

	assert.Equal(t, depth, inner.depth())
	assert.Equal(t, map[string]interface{}{"a": loxNumber(1), "b": loxString("b")}, globals.values)
	assert.Empty(t, inner.values)
}
