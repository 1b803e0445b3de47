package lexer

import (
	"unicode/utf8"

	"github.com/ava12/gvx/source"
)

// Token is an atomic lexical unit. Immutable once produced.
type Token struct {
	tokenType int
	typeName  string
	text      string
	source    *source.Source
	line, col int
}

func (t *Token) Type() int {
	return t.tokenType
}

func (t *Token) TypeName() string {
	return t.typeName
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	}
	return t.source.Name()
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

// SourcePos is used to position newly created tokens; source.Pos implements it.
type SourcePos interface {
	Source() *source.Source
	Line() int
	Col() int
}

func NewToken(tokenType int, typeName, text string, sp SourcePos) *Token {
	if sp == nil {
		return &Token{tokenType: tokenType, typeName: typeName, text: text}
	}
	return &Token{tokenType, typeName, text, sp.Source(), sp.Line(), sp.Col()}
}

const (
	// EofTokenType is the reserved type for the synthetic end-of-input token.
	// No token definition may use it.
	EofTokenType = -1

	// EofTokenName is the type name for EofTokenType.
	EofTokenName = "-end-of-input-"
)

// EofToken creates a synthetic end-of-input token positioned just past prev.
// Used only when constructing diagnostics at the end of a token stream.
func EofToken(prev *Token) *Token {
	if prev == nil {
		return &Token{tokenType: EofTokenType, typeName: EofTokenName}
	}
	return &Token{
		tokenType: EofTokenType,
		typeName:  EofTokenName,
		source:    prev.source,
		line:      prev.line + countLines(prev.text),
		col:       endCol(prev),
	}
}

func countLines(text string) int {
	cnt := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			cnt++
		}
	}
	return cnt
}

func endCol(prev *Token) int {
	text := prev.text
	if i := lastNl(text); i >= 0 {
		return utf8.RuneCountInString(text[i+1:]) + 1
	}
	return prev.col + utf8.RuneCountInString(text)
}

func lastNl(text string) int {
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '\n' {
			return i
		}
	}
	return -1
}
