package internal

import (
	"github.com/sirupsen/logrus"
)

// IPrinter receives the output of print statements
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
}

// Scan splits source into tokens. Every lexical error found in the pass is
// returned, joined, along with the tokens that could be read.
func Scan(source string) ([]Token, error) {
	state := newInterpreterState(source)
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	return state.tokens, state.err()
}

// Parse builds the program from tokens. After an error the parser skips to
// the next statement so that every syntax error in the program is reported.
func Parse(tokens []Token) ([]Stmt, error) {
	state := newInterpreterState("")
	state.tokens = tokens
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != tkEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		state.tokens = append(tokens[:len(tokens):len(tokens)], Token{Type: tkEOF, Line: line})
	}
	parser := &parser{
		state: state,
	}
	parser.parse()
	return state.stmts, state.err()
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for stage and call tracing
func WithLogger(logger logrus.FieldLogger) Option {
	return func(i *Interpreter) {
		i.logger = logger
		i.exec.logger = logger
	}
}

// WithMaxCallDepth limits how many calls can be active at once
func WithMaxCallDepth(depth int) Option {
	return func(i *Interpreter) {
		i.exec.maxCallDepth = depth
	}
}

// Interpreter holds the global environment, bindings made by one call to
// Interpret are visible to the next.
type Interpreter struct {
	exec   *exec
	logger logrus.FieldLogger
}

// NewInterpreter creates an interpreter whose print statements write to p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	logger := logrus.StandardLogger()
	i := &Interpreter{
		exec:   newExec(p, logger),
		logger: logger,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret executes stmts in order and stops at the first runtime error
func (i *Interpreter) Interpret(stmts []Stmt) error {
	err := i.exec.interpret(stmts)
	i.logger.WithFields(logrus.Fields{
		"stage":      "interpret",
		"statements": len(stmts),
	}).Debug("interpreted")
	return err
}

// Run scans, parses and interprets source
func (i *Interpreter) Run(source string) error {
	tokens, err := Scan(source)
	i.logger.WithFields(logrus.Fields{
		"stage":  "lex",
		"tokens": len(tokens),
		"errors": countErrors(err),
	}).Debug("scanned")
	if err != nil {
		return err
	}

	stmts, err := Parse(tokens)
	i.logger.WithFields(logrus.Fields{
		"stage":      "parse",
		"statements": len(stmts),
		"errors":     countErrors(err),
	}).Debug("parsed")
	if err != nil {
		return err
	}

	return i.Interpret(stmts)
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) error {
	return NewInterpreter(p).Run(source)
}

// Errors flattens an error returned by Scan, Parse or Interpret into the
// individual diagnostics, in source order
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

func countErrors(err error) int {
	return len(Errors(err))
}
