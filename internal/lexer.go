package internal

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

type lexer struct {
	start   int
	current int
	line    int

	state *interpreterState
}

var keywords = map[string]TokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"fun":    tkFun,
	"for":    tkFor,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.state.tokens = append(l.state.tokens, Token{
		Type: tkEOF,
		Line: l.line,
	})
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftBrace, nil)
	case '}':
		l.emit(tkRightBrace, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '*':
		l.emit(tkStar, nil)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
		} else {
			l.emit(tkSlash, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		l.string()

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.unexpected()
		}
	}
}

// unexpected reports the whole rune starting at l.start and keeps scanning
func (l *lexer) unexpected() {
	r, size := utf8.DecodeRuneInString(l.state.source[l.start:])
	l.current = l.start + size
	l.state.setError(&LexError{
		Kind:    ErrUnexpectedCharacter,
		Line:    l.line,
		Message: fmt.Sprintf("Unexpected character '%c'.", r),
	})
}

func (l *lexer) string() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.state.setError(&LexError{
			Kind:    ErrUnterminatedString,
			Line:    l.line,
			Message: "Unterminated string.",
		})
		return
	}

	// Consume ending "
	l.advance()

	literal := l.state.source[l.start+1 : l.current-1]
	l.emit(tkString, loxString(literal))
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		// Consume the "."
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}

		if l.peek() == '.' && isDigit(l.peekNext()) {
			for l.peek() == '.' || isDigit(l.peek()) {
				l.advance()
			}
			l.state.setError(&LexError{
				Kind:    ErrMalformedNumber,
				Line:    l.line,
				Message: fmt.Sprintf("Malformed number '%s'.", l.state.source[l.start:l.current]),
			})
			return
		}
	}

	literal, _ := strconv.ParseFloat(l.state.source[l.start:l.current], 64)

	l.emit(tkNumber, loxNumber(literal))
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.state.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	l.emit(tokenType, nil)
}

func (l *lexer) advance() byte {
	current := l.state.source[l.current]
	l.current++
	return current
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.state.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.state.source[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.state.source) {
		return 0
	}
	return l.state.source[l.current+1]
}

func (l *lexer) emit(token TokenType, literal interface{}) {
	l.state.tokens = append(l.state.tokens, Token{
		Type:    token,
		Lexeme:  l.state.source[l.start:l.current],
		Literal: literal,
		Line:    l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.state.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
