/*
Package gvx is a general-purpose lexing and grammar validation toolkit.

Consists of subpackages:
  - cmd/gvxcheck: console utility validating input files against a grammar definition;
  - grammar: defines token table and rule trees used by the analyzer;
  - langdef: converts grammar description (YAML) to a grammar definition;
  - lexer: lexical analyzer;
  - parser: grammar analyzer deciding whether a token stream satisfies a grammar;
  - source: defines source text used by lexer.

Typical usage is:

1. Describe token patterns and grammar rules, either in a YAML file parsed by
the langdef subpackage or directly with the grammar subpackage. The same
grammar can be used for different purposes (validators, linters, highlighters, etc.).

2. Define hooks to handle tokens of a validated stream.

3. Create a parser for the grammar and feed it source texts.

Grammar rules are built from four composition operators: concatenation,
alternation, option, and repetition. Alternation, option, and repetition pick
the first matching child, not the longest one, so the order in which
alternatives are listed is part of grammar semantics.
*/
package gvx

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarDefErrors = 1   // used by grammar and langdef
	LexicalErrors    = 101 // used by lexer
	SyntaxErrors     = 201 // used by parser
)

// Error is the error type used by gvx subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int

	// Token contains the name or text of the offending token, if any.
	Token string

	// Expected contains names of token types that would have been accepted at
	// the reported position. Filled by the parser, nil for other errors.
	Expected []string
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source text name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{Code: code, Message: msg, SourceName: name, Line: line, Col: col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
