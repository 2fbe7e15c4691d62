package internal

import "fmt"

type callable interface {
	arity() int
	call(exec *exec, arguments []interface{}) interface{}
}

type loxFunction struct {
	declaration   *functionStmt
	closure       *env
	isInitializer bool
}

type nativeFn struct {
	arityValue int
	callFn     func(exec *exec, arguments []interface{}) interface{}
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []interface{}) interface{} {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return "<native fn>"
}

func (f *loxFunction) arity() int {
	return len(f.declaration.params)
}

func (f *loxFunction) call(exec *exec, arguments []interface{}) interface{} {
	env := newEnv(f.closure)
	for i := range f.declaration.params {
		env.define(f.declaration.params[i].Lexeme, arguments[i])
	}

	result := exec.executeBlock(f.declaration.body, env)

	if f.isInitializer {
		return f.closure.values["this"]
	}
	if returnVal, isReturn := result.(*returnValue); isReturn {
		return returnVal.value
	}
	return nil
}

// bind returns a copy of the method whose closure has one extra frame
// defining "this"
func (f *loxFunction) bind(object *loxInstance) *loxFunction {
	environment := newEnv(f.closure)
	environment.define("this", object)
	return &loxFunction{
		declaration:   f.declaration,
		closure:       environment,
		isInitializer: f.isInitializer,
	}
}

func (f *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.Lexeme)
}
