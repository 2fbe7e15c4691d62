package internal

import (
	"errors"
	"fmt"
)

// Lexer errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrMalformedNumber     = errors.New("malformed number")
)

// Parser errors
var (
	ErrUnexpectedToken         = errors.New("unexpected token")
	ErrInvalidAssignmentTarget = errors.New("invalid assignment target")
	ErrInvalidContext          = errors.New("invalid context")
)

// Runtime errors
var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrArityMismatch     = errors.New("arity mismatch")
	ErrNotCallable       = errors.New("not callable")
	ErrNotAnInstance     = errors.New("not an instance")
	ErrUndefinedProperty = errors.New("undefined property")
	ErrInvalidSuperclass = errors.New("invalid superclass")
	ErrStackOverflow     = errors.New("stack overflow")
)

// LexError is produced by the lexer. Kind is one of the lexer sentinels.
type LexError struct {
	Kind    error
	Line    int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

func (e *LexError) Unwrap() error {
	return e.Kind
}

// ParseError is produced by the parser and points at the offending token.
type ParseError struct {
	Kind    error
	Line    int
	Lexeme  string
	AtEnd   bool
	Message string
}

func (e *ParseError) Error() string {
	if e.AtEnd {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Line, e.Message)
	}
	if e.Lexeme == "" {
		return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Line, e.Lexeme, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// RuntimeError aborts the statements being interpreted.
type RuntimeError struct {
	Kind    error
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime error [line %d]: %s", e.Line, e.Message)
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

// Parser messages
var (
	errExpectExpression       = errors.New("Expect expression.")
	errUnclosedParen          = errors.New("Expect ')' after expression.")
	errUnclosedArguments      = errors.New("Expect ')' after arguments.")
	errUnclosedParameters     = errors.New("Expect ')' after parameters.")
	errUnclosedBlock          = errors.New("Expect '}' after block.")
	errExpectedSemicolonValue = errors.New("Expect ';' after value.")
	errExpectedSemicolonExpr  = errors.New("Expect ';' after expression.")
	errExpectedSemicolonVar   = errors.New("Expect ';' after variable declaration.")
	errExpectedSemicolonRet   = errors.New("Expect ';' after return value.")
	errExpectedSemicolonLoop  = errors.New("Expect ';' after loop condition.")
	errExpectedVariableName   = errors.New("Expect variable name.")
	errExpectedProp           = errors.New("Expect property name after '.'.")
	errExpectedParamName      = errors.New("Expect parameter name.")
	errExpectedClassName      = errors.New("Expect class name.")
	errExpectedSuperclassName = errors.New("Expect superclass name.")
	errExpectedClassBody      = errors.New("Expect '{' before class body.")
	errUnclosedClassBody      = errors.New("Expect '}' after class body.")
	errExpectedDot            = errors.New("Expect '.' after 'super'.")
	errExpectedSuperMethod    = errors.New("Expect superclass method name.")
	errInvalidAssignment      = errors.New("Invalid assignment target.")
	errMaxParameters          = errors.New("Can't have more than 255 parameters.")
	errMaxArguments           = errors.New("Can't have more than 255 arguments.")
	errTopLevelReturn         = errors.New("Can't return from top-level code.")
	errInitializerReturn      = errors.New("Can't return a value from an initializer.")
	errThisOutsideClass       = errors.New("Can't use 'this' outside of a class.")
	errSuperOutsideClass      = errors.New("Can't use 'super' outside of a class.")
	errSuperWithoutSuperclass = errors.New("Can't use 'super' in a class with no superclass.")
	errInheritSelf            = errors.New("A class can't inherit from itself.")
)
