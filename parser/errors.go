package parser

import (
	"strings"

	"github.com/ava12/gvx"
	"github.com/ava12/gvx/lexer"
)

// Error codes used by parser:
const (
	// ErrUnexpectedEof indicates that the stream ended while more tokens
	// were required.
	ErrUnexpectedEof = gvx.SyntaxErrors + iota

	// ErrUnexpectedToken indicates that the token at the reported position
	// matches none of the expected terminals.
	ErrUnexpectedToken

	// ErrExcessTokens indicates unconsumed tokens after an otherwise
	// complete match.
	ErrExcessTokens

	// ErrTooDeep indicates that rule reference nesting exceeded
	// Parser.MaxDepth.
	ErrTooDeep

	// ErrUnknownToken indicates a hook registration for a token type missing
	// from the grammar.
	ErrUnknownToken
)

func expectedList(expected []string) string {
	if len(expected) == 0 {
		return "nothing"
	}
	return "$" + strings.Join(expected, ", $")
}

func unexpectedEofError(t *lexer.Token, expected []string) *gvx.Error {
	e := gvx.FormatErrorPos(t, ErrUnexpectedEof, "unexpected end of input, expecting %s", expectedList(expected))
	e.Token = t.TypeName()
	e.Expected = expected
	return e
}

func unexpectedTokenError(t *lexer.Token, expected []string) *gvx.Error {
	e := gvx.FormatErrorPos(t, ErrUnexpectedToken, "unexpected token $%s %q, expecting %s", t.TypeName(), t.Text(), expectedList(expected))
	e.Token = t.Text()
	e.Expected = expected
	return e
}

func excessTokenError(t *lexer.Token, expected []string) *gvx.Error {
	e := gvx.FormatErrorPos(t, ErrExcessTokens, "excess token $%s %q after complete match", t.TypeName(), t.Text())
	e.Token = t.Text()
	e.Expected = expected
	return e
}

func tooDeepError(t *lexer.Token, limit int) *gvx.Error {
	e := gvx.FormatErrorPos(t, ErrTooDeep, "rule nesting deeper than %d", limit)
	e.Token = t.Text()
	return e
}

func unknownTokenError(typ int) *gvx.Error {
	return gvx.FormatError(ErrUnknownToken, "unknown token type %d", typ)
}
