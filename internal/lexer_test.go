package internal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanGrouping(t *testing.T) {
	tokens, err := Scan("(2.2)")
	require.NoError(t, err)

	expected := []Token{
		{Type: tkLeftParen, Lexeme: "(", Line: 1},
		{Type: tkNumber, Lexeme: "2.2", Literal: loxNumber(2.2), Line: 1},
		{Type: tkRightParen, Lexeme: ")", Line: 1},
		{Type: tkEOF, Line: 1},
	}
	if diff := cmp.Diff(expected, tokens); diff != "" {
		t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanOperators(t *testing.T) {
	tokens, err := Scan("! != = == < <= > >= + - * / , . ; { }")
	require.NoError(t, err)

	var types []TokenType
	for _, tk := range tokens {
		types = append(types, tk.Type)
	}
	expected := []TokenType{
		tkBang, tkBangEqual, tkEqual, tkEqualEqual,
		tkLess, tkLessEqual, tkGreater, tkGreaterEqual,
		tkPlus, tkMinus, tkStar, tkSlash,
		tkComma, tkDot, tkSemicolon, tkLeftBrace, tkRightBrace,
		tkEOF,
	}
	assert.Equal(t, expected, types)
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens, err := Scan("and class else false fun for if nil or print return super this true var while orchid _x1")
	require.NoError(t, err)

	var types []TokenType
	for _, tk := range tokens {
		types = append(types, tk.Type)
	}
	expected := []TokenType{
		tkAnd, tkClass, tkElse, tkFalse, tkFun, tkFor, tkIf, tkNil,
		tkOr, tkPrint, tkReturn, tkSuper, tkThis, tkTrue, tkVar, tkWhile,
		tkIdentifier, tkIdentifier, tkEOF,
	}
	assert.Equal(t, expected, types)
	assert.Equal(t, "orchid", tokens[16].Lexeme)
	assert.Nil(t, tokens[16].Literal)
}

func TestScanStrings(t *testing.T) {
	tokens, err := Scan("\"one\ntwo\" x")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, tkString, tokens[0].Type)
	assert.Equal(t, loxString("one\ntwo"), tokens[0].Literal)
	assert.Equal(t, "\"one\ntwo\"", tokens[0].Lexeme)
	assert.Equal(t, 2, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanNumbers(t *testing.T) {
	tokens, err := Scan("123 4.5 6. .7")
	require.NoError(t, err)

	expected := []Token{
		{Type: tkNumber, Lexeme: "123", Literal: loxNumber(123), Line: 1},
		{Type: tkNumber, Lexeme: "4.5", Literal: loxNumber(4.5), Line: 1},
		{Type: tkNumber, Lexeme: "6", Literal: loxNumber(6), Line: 1},
		{Type: tkDot, Lexeme: ".", Line: 1},
		{Type: tkDot, Lexeme: ".", Line: 1},
		{Type: tkNumber, Lexeme: "7", Literal: loxNumber(7), Line: 1},
		{Type: tkEOF, Line: 1},
	}
	if diff := cmp.Diff(expected, tokens); diff != "" {
		t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
	}
}

func TestScanCommentsAndLines(t *testing.T) {
	tokens, err := Scan("// nothing here\nvar a; // trailing\n\r\n\tprint a;")
	require.NoError(t, err)

	var lines []int
	for _, tk := range tokens {
		lines = append(lines, tk.Line)
	}
	assert.Equal(t, []int{2, 2, 2, 4, 4, 4, 4}, lines)
}

func TestScanEmptySource(t *testing.T) {
	tokens, err := Scan("")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Type: tkEOF, Line: 1}}, tokens)
}

func TestScanCollectsErrors(t *testing.T) {
	tokens, err := Scan("var a = 1 @ 2;\n# \"open")
	require.Error(t, err)

	errs := Errors(err)
	require.Len(t, errs, 3)

	assert.True(t, errors.Is(errs[0], ErrUnexpectedCharacter))
	assert.Equal(t, "[line 1] Error: Unexpected character '@'.", errs[0].Error())

	assert.True(t, errors.Is(errs[1], ErrUnexpectedCharacter))
	assert.Equal(t, "[line 2] Error: Unexpected character '#'.", errs[1].Error())

	assert.True(t, errors.Is(errs[2], ErrUnterminatedString))
	assert.Equal(t, "[line 2] Error: Unterminated string.", errs[2].Error())

	// Scanning continues after each error
	assert.Equal(t, tkNumber, tokens[4].Type)
	assert.Equal(t, "2", tokens[4].Lexeme)
	assert.Equal(t, tkEOF, tokens[len(tokens)-1].Type)
}

func TestScanMultiByteCharacter(t *testing.T) {
	_, err := Scan("a é b")
	require.Error(t, err)

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, "Unexpected character 'é'.", lexErr.Message)
	assert.Len(t, Errors(err), 1)
}

func TestScanMalformedNumber(t *testing.T) {
	tokens, err := Scan("1.2.3;")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedNumber))
	assert.Equal(t, "[line 1] Error: Malformed number '1.2.3'.", err.Error())

	assert.Equal(t, []Token{
		{Type: tkSemicolon, Lexeme: ";", Line: 1},
		{Type: tkEOF, Line: 1},
	}, tokens)
}

func TestTokenString(t *testing.T) {
	tokens, err := Scan(`var x = "s"; 1`)
	require.NoError(t, err)

	assert.Equal(t, "VAR var", tokens[0].String())
	assert.Equal(t, `STRING "s" s`, tokens[3].String())
	assert.Equal(t, "NUMBER 1 1", tokens[5].String())
	assert.Equal(t, "EOF", tokens[6].String())
	assert.Equal(t, "TokenType(99)", TokenType(99).String())
}
