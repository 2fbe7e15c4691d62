package internal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const defaultMaxCallDepth = 4000

// returnValue is the outcome of a statement that executed a return, every
// other statement completes with nil
type returnValue struct {
	value interface{}
}

type exec struct {
	globals *env
	env     *env

	printer IPrinter
	logger  logrus.FieldLogger

	depth        int
	maxCallDepth int
}

func newExec(p IPrinter, logger logrus.FieldLogger) *exec {
	globals := newEnv(nil)
	defineGlobals(globals)
	return &exec{
		globals:      globals,
		env:          globals,
		printer:      p,
		logger:       logger,
		maxCallDepth: defaultMaxCallDepth,
	}
}

func (e *exec) interpret(stmts []Stmt) (err error) {
	defer func() {
		if r := recover(); r != nil {
			runErr, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			e.env = e.globals
			e.depth = 0
			err = runErr
		}
	}()
	for _, s := range stmts {
		s.accept(e)
	}
	return nil
}

func (e *exec) traceEnabled() bool {
	switch l := e.logger.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.TraceLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.TraceLevel)
	}
	return true
}

// runtimeErr aborts the running interpret call
func (e *exec) runtimeErr(kind error, tk *Token, format string, a ...interface{}) {
	panic(&RuntimeError{
		Kind:    kind,
		Line:    tk.Line,
		Message: fmt.Sprintf(format, a...),
	})
}

// check aborts the running interpret call when err is not nil, errors
// without a line get the line of tk
func (e *exec) check(err error, tk *Token) {
	if err == nil {
		return
	}
	var runErr *RuntimeError
	if errors.As(err, &runErr) {
		panic(runErr)
	}
	var opErr *operatorError
	if errors.As(err, &opErr) {
		e.runtimeErr(opErr.kind, tk, "%s", opErr.message)
	}
	e.runtimeErr(err, tk, "%s", err.Error())
}

func (e *exec) visitExpressionStmt(stmt *expressionStmt) R {
	stmt.expression.accept(e)
	return nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	value := stmt.expression.accept(e)
	if _, err := e.printer.Println(printObj(value)); err != nil {
		e.logger.WithError(err).WithField("line", stmt.keyword.Line).Warn("print failed")
	}
	return nil
}

func (e *exec) visitVarStmt(stmt *varStmt) R {
	var val interface{}
	if stmt.initializer != nil {
		val = stmt.initializer.accept(e)
	}
	e.env.define(stmt.name.Lexeme, val)
	return nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	return e.executeBlock(stmt.stmts, newEnv(e.env))
}

// executeBlock runs stmts in env and restores the previous environment,
// it stops at the first statement that returns
func (e *exec) executeBlock(stmts []Stmt, env *env) R {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		if result := s.accept(e); result != nil {
			return result
		}
	}
	return nil
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	if truthy(stmt.condition.accept(e)) {
		return stmt.thenBranch.accept(e)
	}
	if stmt.elseBranch != nil {
		return stmt.elseBranch.accept(e)
	}
	return nil
}

func (e *exec) visitWhileStmt(stmt *whileStmt) R {
	for truthy(stmt.condition.accept(e)) {
		if result := stmt.body.accept(e); result != nil {
			return result
		}
	}
	return nil
}

func (e *exec) visitFunctionStmt(stmt *functionStmt) R {
	e.env.define(stmt.name.Lexeme, &loxFunction{
		declaration:   stmt,
		closure:       e.env,
		isInitializer: false,
	})
	return nil
}

func (e *exec) visitReturnStmt(stmt *returnStmt) R {
	var value interface{}
	if stmt.value != nil {
		value = stmt.value.accept(e)
	}
	return &returnValue{value: value}
}

func (e *exec) visitClassStmt(stmt *classStmt) R {
	var superclass *loxClass
	if stmt.superclass != nil {
		class, ok := stmt.superclass.accept(e).(*loxClass)
		if !ok {
			e.runtimeErr(ErrInvalidSuperclass, stmt.superclass.name, "Superclass must be a class.")
		}
		superclass = class
	}

	e.env.define(stmt.name.Lexeme, nil)

	closure := e.env
	if superclass != nil {
		closure = newEnv(e.env)
		closure.define("super", superclass)
	}

	methods := make(map[string]*loxFunction, len(stmt.methods))
	for _, method := range stmt.methods {
		methods[method.name.Lexeme] = &loxFunction{
			declaration:   method,
			closure:       closure,
			isInitializer: method.name.Lexeme == "init",
		}
	}

	class := &loxClass{
		name:       stmt.name.Lexeme,
		superclass: superclass,
		methods:    methods,
	}
	e.check(e.env.assign(stmt.name, class), stmt.name)
	return nil
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	val := expr.value.accept(e)
	e.check(e.env.assign(expr.name, val), expr.name)
	return val
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := expr.left.accept(e)
	right := expr.right.accept(e)
	switch expr.operator.Type {
	case tkEqualEqual:
		return loxBool(isEqual(left, right))
	case tkBangEqual:
		return loxBool(!isEqual(left, right))
	}

	op, ok := binaryOperators[expr.operator.Type]
	if !ok {
		e.runtimeErr(ErrTypeMismatch, expr.operator, "Unknown operator '%s'.", expr.operator.Lexeme)
	}
	apply, err := getOperator(left, op)
	e.check(err, expr.operator)
	result, err := apply(right)
	e.check(err, expr.operator)
	return result
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	callee := expr.callee.accept(e)
	arguments := make([]interface{}, len(expr.arguments))
	for i := range expr.arguments {
		arguments[i] = expr.arguments[i].accept(e)
	}

	fn, isFn := callee.(callable)
	if !isFn {
		e.runtimeErr(ErrNotCallable, expr.paren, "Can only call functions and classes.")
	}

	if len(arguments) != fn.arity() {
		e.runtimeErr(ErrArityMismatch, expr.paren, "Expected %d arguments but got %d.", fn.arity(), len(arguments))
	}

	if e.depth >= e.maxCallDepth {
		e.runtimeErr(ErrStackOverflow, expr.paren, "Stack overflow.")
	}
	e.depth++
	defer func() {
		e.depth--
	}()

	if e.traceEnabled() {
		e.logger.WithFields(logrus.Fields{
			"callee": printObj(callee),
			"arity":  fn.arity(),
			"depth":  e.depth,
		}).Trace("call")
	}

	return fn.call(e, arguments)
}

func (e *exec) visitGetExpr(expr *getExpr) R {
	object, ok := expr.object.accept(e).(*loxInstance)
	if !ok {
		e.runtimeErr(ErrNotAnInstance, expr.name, "Only instances have properties.")
	}
	value, err := object.get(expr.name)
	e.check(err, expr.name)
	return value
}

func (e *exec) visitSetExpr(expr *setExpr) R {
	object, ok := expr.object.accept(e).(*loxInstance)
	if !ok {
		e.runtimeErr(ErrNotAnInstance, expr.name, "Only instances have fields.")
	}
	value := expr.value.accept(e)
	object.set(expr.name, value)
	return value
}

// visitSuperExpr looks the method up from the superclass of the class that
// encloses the expression, not from the class of "this"
func (e *exec) visitSuperExpr(expr *superExpr) R {
	value, err := e.env.get(expr.keyword)
	e.check(err, expr.keyword)
	superclass := value.(*loxClass)

	object, err := e.env.get(&Token{Type: tkThis, Lexeme: "this", Line: expr.keyword.Line})
	e.check(err, expr.keyword)

	method := superclass.findMethod(expr.method.Lexeme)
	if method == nil {
		e.check(undefinedProperty(expr.method), expr.method)
	}
	return method.bind(object.(*loxInstance))
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return expr.expression.accept(e)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

func (e *exec) visitLogicalExpr(expr *logicalExpr) R {
	left := expr.left.accept(e)

	if expr.operator.Type == tkOr {
		if truthy(left) {
			return left
		}
	} else if !truthy(left) {
		return left
	}

	return expr.right.accept(e)
}

func (e *exec) visitThisExpr(expr *thisExpr) R {
	value, err := e.env.get(expr.keyword)
	e.check(err, expr.keyword)
	return value
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	value := expr.right.accept(e)
	switch expr.operator.Type {
	case tkBang:
		return loxBool(!truthy(value))
	case tkMinus:
		apply, err := getOperator(value, opNeg)
		e.check(err, expr.operator)
		result, err := apply()
		e.check(err, expr.operator)
		return result
	}
	e.runtimeErr(ErrTypeMismatch, expr.operator, "Unknown operator '%s'.", expr.operator.Lexeme)
	return nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	value, err := e.env.get(expr.name)
	e.check(err, expr.name)
	return value
}
