// Package grammar defines token tables and rule trees used by the analyzer.
//
// A grammar rule is a tree of nodes built from terminals (token types and
// references to other rules) and four composition operators: concatenation,
// alternation, option, and repetition. Alternation, option, and repetition
// try their operands in listed order and pick the first match, never the
// longest one; grammars relying on operand order are relying on documented
// behavior.
//
// Rule references are resolved by name through the grammar at match time, so
// rules may reference themselves and each other, and may be registered in any
// order.
package grammar

import (
	"regexp"
	"strconv"

	"github.com/ava12/gvx"
)

// Op is the node type discriminant.
type Op int

const (
	// OpToken is a terminal matching a single token of the given type.
	OpToken Op = iota

	// OpRule is a terminal standing for a named rule, resolved at match time.
	OpRule

	// OpConcat matches all operands in order.
	OpConcat

	// OpAlt matches the first matching operand.
	OpAlt

	// OpOpt matches its single operand or nothing; it never fails.
	OpOpt

	// OpRep matches the first matching operand zero or more times; it never fails.
	OpRep
)

var opNames = map[Op]string{
	OpToken:  "token",
	OpRule:   "rule",
	OpConcat: "concatenation",
	OpAlt:    "alternation",
	OpOpt:    "option",
	OpRep:    "repetition",
}

func (op Op) String() string {
	name, f := opNames[op]
	if !f {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return name
}

// Node is a rule tree node.
type Node struct {
	// Op selects the node variant.
	Op Op

	// Token contains token type for OpToken nodes.
	Token int

	// Rule contains the referenced rule name for OpRule nodes.
	Rule string

	// Nodes contains operands for operator nodes, ignored for terminals.
	Nodes []*Node
}

// Term creates a terminal node matching one token of the given type.
func Term(tokenType int) *Node {
	return &Node{Op: OpToken, Token: tokenType}
}

// Ref creates a terminal node referencing a named rule.
func Ref(rule string) *Node {
	return &Node{Op: OpRule, Rule: rule}
}

// Concat creates a node matching all operands in order.
func Concat(nodes ...*Node) *Node {
	return &Node{Op: OpConcat, Nodes: nodes}
}

// Alt creates a node matching the first matching operand.
func Alt(nodes ...*Node) *Node {
	return &Node{Op: OpAlt, Nodes: nodes}
}

// Opt creates a node matching its operand or nothing.
func Opt(node *Node) *Node {
	return &Node{Op: OpOpt, Nodes: []*Node{node}}
}

// Rep creates a node matching the first matching operand zero or more times.
func Rep(nodes ...*Node) *Node {
	return &Node{Op: OpRep, Nodes: nodes}
}

type TokenFlags int

const (
	// AsideToken marks insignificant tokens (e.g. whitespace or comments):
	// matched and skipped by the tokenizer, never part of the stream.
	AsideToken TokenFlags = 1 << iota
)

// Token describes a named token pattern. Token type is its index in the table.
type Token struct {
	Name, Re string
	Flags    TokenFlags
}

// Grammar is an ordered token table plus a registry of named rules with an
// optional initial rule. Built once at setup, immutable during analysis.
type Grammar struct {
	tokens     []Token
	tokenIndex map[string]int
	ruleNames  []string
	rules      map[string]*Node
	initial    string
}

// New creates new empty Grammar.
func New() *Grammar {
	return &Grammar{
		tokenIndex: make(map[string]int),
		rules:      make(map[string]*Node),
	}
}

// AddToken appends a token definition to the table and returns its type.
// Table order is tokenizer priority. The pattern must be a valid regular
// expression; the name must be non-empty and unique.
func (g *Grammar) AddToken(name, re string) (int, *gvx.Error) {
	return g.addToken(name, re, 0)
}

// AddAsideToken is AddToken for insignificant (skipped) tokens.
func (g *Grammar) AddAsideToken(name, re string) (int, *gvx.Error) {
	return g.addToken(name, re, AsideToken)
}

func (g *Grammar) addToken(name, re string, flags TokenFlags) (int, *gvx.Error) {
	if name == "" {
		return 0, badNameError("token")
	}
	if _, f := g.tokenIndex[name]; f {
		return 0, defTokenError(name)
	}
	if _, e := regexp.Compile("(?s:" + re + ")"); e != nil {
		return 0, regexpError(name, re, e)
	}

	typ := len(g.tokens)
	g.tokens = append(g.tokens, Token{name, re, flags})
	g.tokenIndex[name] = typ
	return typ, nil
}

// AddRule registers a named rule. The tree is validated recursively: every
// operator must be one of the four defined ones, option nodes must carry
// exactly one operand, no operand may be nil. Re-registering a name fails.
func (g *Grammar) AddRule(name string, node *Node) *gvx.Error {
	if name == "" {
		return badNameError("rule")
	}
	if _, f := g.rules[name]; f {
		return defRuleError(name)
	}

	e := validateNode(name, node)
	if e != nil {
		return e
	}

	g.ruleNames = append(g.ruleNames, name)
	g.rules[name] = node
	return nil
}

// AddInitialRule registers a rule and marks it as the analysis entry point.
// At most one rule may be initial.
func (g *Grammar) AddInitialRule(name string, node *Node) *gvx.Error {
	if g.initial != "" {
		return initialDefinedError(g.initial, name)
	}

	e := g.AddRule(name, node)
	if e != nil {
		return e
	}

	g.initial = name
	return nil
}

func validateNode(rule string, n *Node) *gvx.Error {
	if n == nil {
		return nilNodeError(rule)
	}

	switch n.Op {
	case OpToken, OpRule:
		return nil
	case OpOpt:
		if len(n.Nodes) != 1 {
			return wrongArityError(rule, len(n.Nodes))
		}
	case OpConcat, OpAlt, OpRep:
	default:
		return wrongOperatorError(rule, n.Op)
	}

	for _, child := range n.Nodes {
		e := validateNode(rule, child)
		if e != nil {
			return e
		}
	}
	return nil
}

// Validate checks cross-rule consistency: every rule reference and the
// initial rule (if set) must name a registered rule. Called by parser.New
// once registration is complete.
func (g *Grammar) Validate() *gvx.Error {
	missing := make([]string, 0)
	seen := make(map[string]bool)
	for _, name := range g.ruleNames {
		walkRefs(g.rules[name], func(ref string) {
			if g.rules[ref] == nil && !seen[ref] {
				seen[ref] = true
				missing = append(missing, ref)
			}
		})
	}
	if g.initial != "" && g.rules[g.initial] == nil && !seen[g.initial] {
		missing = append(missing, g.initial)
	}

	if len(missing) > 0 {
		return unknownRuleError(missing)
	}
	return nil
}

func walkRefs(n *Node, visit func(ref string)) {
	if n.Op == OpRule {
		visit(n.Rule)
		return
	}
	for _, child := range n.Nodes {
		walkRefs(child, visit)
	}
}

// Tokens returns the token table in registration order.
func (g *Grammar) Tokens() []Token {
	return g.tokens
}

// TokenType returns the type for a token name.
func (g *Grammar) TokenType(name string) (typ int, valid bool) {
	typ, valid = g.tokenIndex[name]
	return
}

// TokenName returns the name for a token type, or the decimal type itself
// when it is not in the table. Presentation only, no semantic effect.
func (g *Grammar) TokenName(typ int) string {
	if typ >= 0 && typ < len(g.tokens) {
		return g.tokens[typ].Name
	}
	return strconv.Itoa(typ)
}

// Rule returns a registered rule tree.
func (g *Grammar) Rule(name string) (node *Node, valid bool) {
	node, valid = g.rules[name]
	return
}

// RuleNames returns rule names in registration order.
func (g *Grammar) RuleNames() []string {
	return g.ruleNames
}

// Initial returns the initial rule name or empty string.
func (g *Grammar) Initial() string {
	return g.initial
}
