// Package parser defines the grammar analyzer: a recursive descent matcher
// with backtracking deciding whether a token stream satisfies a grammar.
package parser

import (
	"regexp"

	"github.com/ava12/gvx"
	"github.com/ava12/gvx/grammar"
	"github.com/ava12/gvx/lexer"
	"github.com/ava12/gvx/source"
	"github.com/ava12/gvx/util/intset"
)

// TokenHook is a callback bound to a token type. Registered hooks are invoked
// once per matching token, in stream order, only after the whole stream is
// confirmed valid. Hooks must not mutate the grammar or the stream.
type TokenHook = func(token *lexer.Token)

// DefaultMaxDepth is the default limit for rule reference nesting.
const DefaultMaxDepth = 1024

// Parser analyzes token streams against a grammar. Configure it (hooks,
// MaxDepth) before first use; afterwards it is read-only and safe for
// concurrent use, every analysis owns its cursor and error state.
type Parser struct {
	// MaxDepth bounds rule reference nesting during analysis. Exceeding it
	// (e.g. via left-recursive rules) is reported as ErrTooDeep instead of
	// exhausting the call stack.
	MaxDepth int

	grammar   *grammar.Grammar
	tokenizer *lexer.Tokenizer
	hooks     map[int][]TokenHook
}

// New creates new Parser. The grammar must be fully registered: every rule
// reference and the initial rule must resolve (checked here so that rules may
// reference each other regardless of registration order).
func New(g *grammar.Grammar) (*Parser, *gvx.Error) {
	e := g.Validate()
	if e != nil {
		return nil, e
	}

	tokens := g.Tokens()
	defs := make([]lexer.Def, len(tokens))
	for i, t := range tokens {
		defs[i] = lexer.Def{
			Type:  i,
			Name:  t.Name,
			Re:    regexp.MustCompile("(?s:" + t.Re + ")"),
			Aside: t.Flags&grammar.AsideToken != 0,
		}
	}

	return &Parser{
		MaxDepth:  DefaultMaxDepth,
		grammar:   g,
		tokenizer: lexer.New(defs),
		hooks:     make(map[int][]TokenHook),
	}, nil
}

// Grammar returns the grammar the parser was built for.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.grammar
}

// Tokenizer returns the tokenizer compiled from the grammar's token table.
func (p *Parser) Tokenizer() *lexer.Tokenizer {
	return p.tokenizer
}

// OnToken appends a hook to the given token type. Multiple hooks per type are
// legal and fire in registration order.
func (p *Parser) OnToken(typ int, hook TokenHook) *gvx.Error {
	if typ < 0 || typ >= len(p.grammar.Tokens()) {
		return unknownTokenError(typ)
	}

	p.hooks[typ] = append(p.hooks[typ], hook)
	return nil
}

// Tokenize produces the token stream for given content.
func (p *Parser) Tokenize(name string, content []byte) ([]*lexer.Token, *gvx.Error) {
	return p.tokenizer.Tokenize(source.New(name, content))
}

// Validate tokenizes content and analyzes the resulting stream.
func (p *Parser) Validate(name string, content []byte) *gvx.Error {
	tokens, e := p.Tokenize(name, content)
	if e != nil {
		return e
	}
	return p.Analyze(tokens)
}

// Analyze decides whether the token stream satisfies the grammar. Evaluation
// starts at the initial rule if one is set, else at an implicit alternation
// over every rule in registration order. The stream is valid only when it is
// consumed in full; trailing tokens after an otherwise complete match are an
// error reported from the first unconsumed token. On success registered token
// hooks fire over the stream; a failing analysis invokes none. Returns nil
// when the stream is valid.
func (p *Parser) Analyze(tokens []*lexer.Token) *gvx.Error {
	c := &context{parser: p, grammar: p.grammar, tokens: tokens, expected: intset.New()}

	ok := c.match(c.top())
	if c.err != nil {
		return c.err
	}
	if !ok {
		return c.syntaxError()
	}
	if c.pos < len(tokens) {
		return excessTokenError(tokens[c.pos], c.expectedNames())
	}

	for _, t := range tokens {
		for _, hook := range p.hooks[t.Type()] {
			hook(t)
		}
	}
	return nil
}

// context is the mutable state of one analysis: the stream cursor, the set of
// terminals unsuccessfully tried at the current position, and a sticky hard
// error that, once set, aborts every enclosing alternative without further
// backtracking. The hard error is what tells a reportable failure apart from
// an ordinary "this branch did not match".
type context struct {
	parser   *Parser
	grammar  *grammar.Grammar
	tokens   []*lexer.Token
	pos      int
	expected *intset.Set
	err      *gvx.Error
	depth    int
}

func (c *context) top() *grammar.Node {
	initial := c.grammar.Initial()
	if initial != "" {
		return grammar.Ref(initial)
	}

	names := c.grammar.RuleNames()
	nodes := make([]*grammar.Node, len(names))
	for i, name := range names {
		nodes[i] = grammar.Ref(name)
	}
	return grammar.Alt(nodes...)
}

// match evaluates a node at the current position. It is never entered with a
// hard error pending: every caller stops at the first child that sets one.
func (c *context) match(n *grammar.Node) bool {
	switch n.Op {
	case grammar.OpToken:
		if c.pos < len(c.tokens) && c.tokens[c.pos].Type() == n.Token {
			c.pos++
			c.expected.Clear()
			return true
		}
		c.expected.Add(n.Token)
		return false

	case grammar.OpRule:
		node, _ := c.grammar.Rule(n.Rule)
		c.depth++
		if c.depth > c.parser.MaxDepth {
			c.depth--
			c.err = tooDeepError(c.currentToken(), c.parser.MaxDepth)
			return false
		}
		ok := c.match(node)
		c.depth--
		return ok

	case grammar.OpConcat:
		start := c.pos
		for _, child := range n.Nodes {
			if c.match(child) {
				continue
			}
			// a hard-errored child propagates as is; partial progress
			// becomes a hard error; a clean miss backtracks
			if c.err == nil {
				if c.pos > start {
					c.err = c.syntaxError()
				} else {
					c.pos = start
				}
			}
			return false
		}
		return true

	case grammar.OpOpt:
		// never fails on a mismatch; a hard error raised purely by its own
		// failed attempt must not poison outer state. The depth guard is a
		// resource limit, not a mismatch, and is not suppressed.
		start := c.pos
		if c.matchFirst(n.Nodes) {
			return true
		}
		if c.err != nil && c.err.Code == ErrTooDeep {
			return false
		}
		c.err = nil
		c.pos = start
		return true

	case grammar.OpRep:
		for {
			start := c.pos
			if !c.matchFirst(n.Nodes) {
				if c.err != nil {
					return false
				}
				c.pos = start
				return true
			}
			if c.pos == start {
				// zero-width iteration, repeating it cannot consume more
				return true
			}
		}

	default: // grammar.OpAlt
		start := c.pos
		if c.matchFirst(n.Nodes) {
			return true
		}
		if c.err == nil {
			c.pos = start
		}
		return false
	}
}

// matchFirst tries children in listed order and stops at the first success or
// hard error. First match wins, not the longest one.
func (c *context) matchFirst(nodes []*grammar.Node) bool {
	for _, n := range nodes {
		if c.match(n) {
			return true
		}
		if c.err != nil {
			return false
		}
	}
	return false
}

func (c *context) currentToken() *lexer.Token {
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos]
	}
	if len(c.tokens) > 0 {
		return lexer.EofToken(c.tokens[len(c.tokens)-1])
	}
	return lexer.EofToken(nil)
}

func (c *context) expectedNames() []string {
	ids := c.expected.ToSlice()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = c.grammar.TokenName(id)
	}
	return names
}

func (c *context) syntaxError() *gvx.Error {
	tok := c.currentToken()
	if tok.Type() == lexer.EofTokenType {
		return unexpectedEofError(tok, c.expectedNames())
	}
	return unexpectedTokenError(tok, c.expectedNames())
}
