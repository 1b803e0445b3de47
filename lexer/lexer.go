// Package lexer defines lexical analyzer.
package lexer

import (
	"regexp"
	"unicode/utf8"

	"github.com/ava12/gvx"
	"github.com/ava12/gvx/source"
)

// Error codes used by lexer:
const (
	// ErrWrongChar indicates that no token definition matches the remaining
	// input at current position. Error message contains the rune at current
	// source position and the beginning of the unmatched remainder.
	ErrWrongChar = gvx.LexicalErrors + iota
)

// Def describes a single token definition.
type Def struct {
	// Type contains token type, must be unique and non-negative.
	Type int

	// Name contains token type name used in diagnostics.
	Name string

	// Re is the token pattern. It is matched against the remaining input,
	// only a match starting at the current position counts.
	Re *regexp.Regexp

	// Aside marks insignificant tokens (e.g. whitespace): matched and
	// skipped, never emitted.
	Aside bool
}

// Tokenizer turns source text into a token stream using an ordered table of
// token definitions. Definition order is priority: at every position the
// first definition matching a non-empty prefix wins, there is no
// longest-match disambiguation. Tokenizer is immutable and safe for
// concurrent use.
//
// Patterns matching an empty string are treated as non-matching, so every
// accepted lexeme advances the position.
type Tokenizer struct {
	defs []Def
}

// New creates new Tokenizer for given token definitions.
func New(defs []Def) *Tokenizer {
	ds := make([]Def, len(defs))
	copy(ds, defs)
	return &Tokenizer{defs: ds}
}

// Tokenize produces the ordered stream of non-aside tokens for the whole
// source text, or a lexical error if some position matches no definition.
// No partial stream is returned on error. Empty input yields an empty stream.
func (t *Tokenizer) Tokenize(s *source.Source) ([]*Token, *gvx.Error) {
	return t.TokenizeAt(s, 1)
}

// TokenizeAt is Tokenize with line numbering starting at startLine instead of 1.
func (t *Tokenizer) TokenizeAt(s *source.Source, startLine int) ([]*Token, *gvx.Error) {
	content := s.Content()
	tokens := make([]*Token, 0)
	pos := 0
	for pos < len(content) {
		rest := content[pos:]
		size := 0
		for _, d := range t.defs {
			loc := d.Re.FindIndex(rest)
			if loc == nil || loc[0] != 0 || loc[1] == 0 {
				continue
			}

			size = loc[1]
			if !d.Aside {
				sp := source.NewPosAt(s, pos, startLine)
				tokens = append(tokens, NewToken(d.Type, d.Name, string(rest[:size]), sp))
			}
			break
		}

		if size == 0 {
			return nil, wrongCharError(rest, source.NewPosAt(s, pos, startLine))
		}

		pos += size
	}
	return tokens, nil
}

const errSnippetLen = 24

func wrongCharError(rest []byte, sp source.Pos) *gvx.Error {
	r, _ := utf8.DecodeRune(rest)
	e := gvx.FormatErrorPos(sp, ErrWrongChar, "wrong char \"%c\" (u+%x) before %q", r, r, snippet(rest))
	e.Token = snippet(rest)
	return e
}

func snippet(rest []byte) string {
	if len(rest) <= errSnippetLen {
		return string(rest)
	}

	cut := errSnippetLen
	for cut > 0 && !utf8.RuneStart(rest[cut]) {
		cut--
	}
	return string(rest[:cut]) + "..."
}
