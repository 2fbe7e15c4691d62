package internal

import "errors"

// interpreterState stores what a single scan or parse pass produced
type interpreterState struct {
	source string
	tokens []Token
	stmts  []Stmt
	errors []error
}

func newInterpreterState(source string) *interpreterState {
	return &interpreterState{source: source, errors: make([]error, 0)}
}

func (s *interpreterState) setError(err error) {
	s.errors = append(s.errors, err)
}

// fatalError records err and unwinds to the nearest statement boundary
// where the parser resynchronizes.
func (s *interpreterState) fatalError(err *ParseError) {
	s.errors = append(s.errors, err)
	panic(err)
}

// Valid returns true if no errors were recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// err joins every recorded error in the order they were found
func (s *interpreterState) err() error {
	if s.Valid() {
		return nil
	}
	return errors.Join(s.errors...)
}
