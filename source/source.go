// Package source defines source text used by lexer.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source is a named, immutable source text with precomputed line starts.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates new Source for given name and content.
func New(name string, content []byte) *Source {
	lineCnt := bytes.Count(content, []byte{'\n'}) + 1
	s := &Source{name: name, content: content, lineStarts: make([]int, 1, lineCnt)}
	for i, c := range content {
		if c == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts byte offset to 1-based line and column numbers.
// Column counts runes, not bytes. Offsets outside the content are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos is a resolved position within a Source.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos creates Pos for given byte offset.
func NewPos(s *Source, pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

// NewPosAt is NewPos with line numbering starting at startLine instead of 1.
func NewPosAt(s *Source, pos, startLine int) Pos {
	p := NewPos(s, pos)
	p.line += startLine - 1
	return p
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Offset() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
