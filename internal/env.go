package internal

import "fmt"

// env is one scope frame. Frames only point outward, closures keep a frame
// alive by holding the pointer.
type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *Token) (interface{}, error) {
	for scope := e; scope != nil; scope = scope.enclosing {
		if value, ok := scope.values[name.Lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVariable(name)
}

func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

func (e *env) assign(name *Token, value interface{}) error {
	for scope := e; scope != nil; scope = scope.enclosing {
		if _, ok := scope.values[name.Lexeme]; ok {
			scope.values[name.Lexeme] = value
			return nil
		}
	}
	return undefinedVariable(name)
}

// depth counts the frames between e and the global scope, inclusive
func (e *env) depth() int {
	n := 0
	for scope := e; scope != nil; scope = scope.enclosing {
		n++
	}
	return n
}

func undefinedVariable(name *Token) error {
	return &RuntimeError{
		Kind:    ErrUndefinedVariable,
		Line:    name.Line,
		Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme),
	}
}
