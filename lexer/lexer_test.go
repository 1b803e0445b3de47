package lexer

import (
	"regexp"
	"strings"
	"testing"

	"github.com/ava12/gvx/source"
)

func wordTokenizer() *Tokenizer {
	return New([]Def{
		{Type: 0, Name: "space", Re: regexp.MustCompile("[ \t\r\n]+"), Aside: true},
		{Type: 1, Name: "word", Re: regexp.MustCompile("[a-z]+")},
		{Type: 2, Name: "num", Re: regexp.MustCompile("[0-9]+")},
	})
}

func tokenTexts(tokens []*Token) string {
	texts := make([]string, len(tokens))
	for i, t := range tokens {
		texts[i] = t.TypeName() + ":" + t.Text()
	}
	return strings.Join(texts, " ")
}

func TestEmpty(t *testing.T) {
	sources := []string{"", " ", "  \t\r\n "}
	for _, src := range sources {
		tokens, e := wordTokenizer().Tokenize(source.New("", []byte(src)))
		if e != nil {
			t.Fatalf("source %q: unexpected error: %s", src, e.Error())
		}
		if len(tokens) != 0 {
			t.Fatalf("source %q: expecting empty stream, got %d tokens", src, len(tokens))
		}
	}
}

func TestTokenSamples(t *testing.T) {
	tokens, e := wordTokenizer().Tokenize(source.New("", []byte("foo 42 bar")))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}

	expected := "word:foo num:42 word:bar"
	if tokenTexts(tokens) != expected {
		t.Fatalf("expecting %q, got %q", expected, tokenTexts(tokens))
	}
}

func TestAsideDroppedLinesKept(t *testing.T) {
	tokens, e := wordTokenizer().Tokenize(source.New("src", []byte("a b\n\n  c")))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}

	samples := []struct {
		text      string
		line, col int
	}{
		{"a", 1, 1},
		{"b", 1, 3},
		{"c", 3, 3},
	}
	if len(tokens) != len(samples) {
		t.Fatalf("expecting %d tokens, got %d", len(samples), len(tokens))
	}
	for i, s := range samples {
		tok := tokens[i]
		if tok.Text() != s.text || tok.Line() != s.line || tok.Col() != s.col {
			t.Errorf("token #%d: expecting %q at %d:%d, got %q at %d:%d",
				i, s.text, s.line, s.col, tok.Text(), tok.Line(), tok.Col())
		}
		if tok.SourceName() != "src" {
			t.Errorf("token #%d: expecting source \"src\", got %q", i, tok.SourceName())
		}
	}
}

func TestFirstMatchWins(t *testing.T) {
	// definition order is priority, there is no longest-match rule
	l := New([]Def{
		{Type: 0, Name: "kw", Re: regexp.MustCompile("if")},
		{Type: 1, Name: "word", Re: regexp.MustCompile("[a-z]+")},
	})
	tokens, e := l.Tokenize(source.New("", []byte("iffy")))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if tokenTexts(tokens) != "kw:if word:fy" {
		t.Fatalf("expecting \"kw:if word:fy\", got %q", tokenTexts(tokens))
	}
}

func TestWrongChar(t *testing.T) {
	tokens, e := wordTokenizer().Tokenize(source.New("src", []byte("foo\n  &bar")))
	if e == nil {
		t.Fatal("expecting error, got success")
	}
	if tokens != nil {
		t.Fatalf("expecting no partial stream, got %d tokens", len(tokens))
	}
	if e.Code != ErrWrongChar {
		t.Fatalf("expecting code %d, got %d", ErrWrongChar, e.Code)
	}
	if e.SourceName != "src" || e.Line != 2 || e.Col != 3 {
		t.Fatalf("expecting src:2:3, got %s:%d:%d", e.SourceName, e.Line, e.Col)
	}
	if !strings.Contains(e.Message, "&bar") {
		t.Fatalf("expecting remainder in message, got %q", e.Message)
	}
}

func TestTokenizeAt(t *testing.T) {
	tokens, e := wordTokenizer().TokenizeAt(source.New("", []byte("a\nb")), 10)
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if len(tokens) != 2 || tokens[0].Line() != 10 || tokens[1].Line() != 11 {
		t.Fatalf("expecting lines 10 and 11, got %d and %d", tokens[0].Line(), tokens[1].Line())
	}
}

func TestEmptyMatchSkipped(t *testing.T) {
	// a pattern matching an empty string must not stall the tokenizer
	l := New([]Def{
		{Type: 0, Name: "xs", Re: regexp.MustCompile("x*")},
		{Type: 1, Name: "y", Re: regexp.MustCompile("y")},
	})
	tokens, e := l.Tokenize(source.New("", []byte("yxy")))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if tokenTexts(tokens) != "y:y xs:x y:y" {
		t.Fatalf("got %q", tokenTexts(tokens))
	}
}

func TestMultilineToken(t *testing.T) {
	l := New([]Def{
		{Type: 0, Name: "space", Re: regexp.MustCompile("[ \n]+"), Aside: true},
		{Type: 1, Name: "str", Re: regexp.MustCompile("(?s:\".*?\")")},
	})
	tokens, e := l.Tokenize(source.New("", []byte("\"a\nb\" \"c\"")))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}
	if len(tokens) != 2 {
		t.Fatalf("expecting 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Line() != 1 || tokens[1].Line() != 2 || tokens[1].Col() != 4 {
		t.Fatalf("expecting positions 1:1 and 2:4, got %d:%d and %d:%d",
			tokens[0].Line(), tokens[0].Col(), tokens[1].Line(), tokens[1].Col())
	}
}

func TestNewToken(t *testing.T) {
	s := source.New("src", []byte("ab\ncd"))
	tok := NewToken(5, "word", "cd", source.NewPos(s, 3))
	if tok.Type() != 5 || tok.TypeName() != "word" || tok.Text() != "cd" {
		t.Fatalf("unexpected token: %s:%q (%d)", tok.TypeName(), tok.Text(), tok.Type())
	}
	if tok.Source() != s || tok.SourceName() != "src" || tok.Line() != 2 || tok.Col() != 1 {
		t.Fatalf("expecting src:2:1, got %s:%d:%d", tok.SourceName(), tok.Line(), tok.Col())
	}

	tok = NewToken(0, "word", "x", nil)
	if tok.SourceName() != "" || tok.Line() != 0 || tok.Col() != 0 {
		t.Fatalf("expecting no position, got %s:%d:%d", tok.SourceName(), tok.Line(), tok.Col())
	}
}

func TestEofToken(t *testing.T) {
	tok := EofToken(nil)
	if tok.Type() != EofTokenType || tok.TypeName() != EofTokenName {
		t.Fatalf("unexpected token: %q (%d)", tok.TypeName(), tok.Type())
	}
	if tok.Line() != 0 || tok.Col() != 0 {
		t.Fatalf("expecting 0:0, got %d:%d", tok.Line(), tok.Col())
	}

	tokens, e := wordTokenizer().Tokenize(source.New("src", []byte("ab\ncd")))
	if e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}

	tok = EofToken(tokens[len(tokens)-1])
	if tok.Line() != 2 || tok.Col() != 3 {
		t.Fatalf("expecting 2:3, got %d:%d", tok.Line(), tok.Col())
	}
	if tok.SourceName() != "src" {
		t.Fatalf("expecting source \"src\", got %q", tok.SourceName())
	}
}
