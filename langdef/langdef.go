/*
Package langdef converts grammar descriptions written in YAML to grammar
definitions.

A description is a document with two sections:

	tokens:
	  - name: space
	    match: "[ \t\r\n]+"
	    aside: true
	  - name: word
	    match: "[a-z]+"
	rules:
	  - name: doc
	    initial: true
	    expr:
	      rep: ["$word"]

Token definitions are ordered, order is tokenizer priority. Rule expressions
are either scalars ("$name" references a token, any other scalar references a
rule) or single-key mappings naming one of the four operators: seq
(concatenation), alt (alternation), opt (option), rep (repetition). Operator
values are expression lists; opt also accepts a single expression. Alternation,
option, and repetition match the first fitting list element, so element order
is grammar semantics.
*/
package langdef

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ava12/gvx"
	"github.com/ava12/gvx/grammar"
)

type tokenDef struct {
	Name  string `yaml:"name"`
	Match string `yaml:"match"`
	Aside bool   `yaml:"aside"`
}

type ruleDef struct {
	Name    string    `yaml:"name"`
	Initial bool      `yaml:"initial"`
	Expr    yaml.Node `yaml:"expr"`
}

type fileDef struct {
	Tokens []tokenDef `yaml:"tokens"`
	Rules  []ruleDef  `yaml:"rules"`
}

var opKeys = map[string]grammar.Op{
	"seq": grammar.OpConcat,
	"alt": grammar.OpAlt,
	"opt": grammar.OpOpt,
	"rep": grammar.OpRep,
}

// ParseString parses a YAML grammar description.
// name is only used in error messages.
func ParseString(name, content string) (*grammar.Grammar, *gvx.Error) {
	return ParseBytes(name, []byte(content))
}

// ParseBytes parses a YAML grammar description.
// name is only used in error messages.
func ParseBytes(name string, content []byte) (*grammar.Grammar, *gvx.Error) {
	var fd fileDef
	ye := yaml.Unmarshal(content, &fd)
	if ye != nil {
		return nil, yamlError(name, ye)
	}

	g := grammar.New()
	for _, td := range fd.Tokens {
		var e *gvx.Error
		if td.Aside {
			_, e = g.AddAsideToken(td.Name, td.Match)
		} else {
			_, e = g.AddToken(td.Name, td.Match)
		}
		if e != nil {
			return nil, located(e, name)
		}
	}

	for i := range fd.Rules {
		rd := &fd.Rules[i]
		if rd.Expr.Kind == 0 {
			return nil, noExprError(name, rd.Name)
		}

		node, e := buildExpr(g, name, &rd.Expr)
		if e != nil {
			return nil, e
		}

		if rd.Initial {
			e = g.AddInitialRule(rd.Name, node)
		} else {
			e = g.AddRule(rd.Name, node)
		}
		if e != nil {
			return nil, located(e, name)
		}
	}

	e := g.Validate()
	if e != nil {
		return nil, located(e, name)
	}
	return g, nil
}

func buildExpr(g *grammar.Grammar, name string, n *yaml.Node) (*grammar.Node, *gvx.Error) {
	switch n.Kind {
	case yaml.AliasNode:
		return buildExpr(g, name, n.Alias)

	case yaml.ScalarNode:
		ref := n.Value
		if !strings.HasPrefix(ref, "$") {
			return grammar.Ref(ref), nil
		}

		typ, f := g.TokenType(ref[1:])
		if !f {
			return nil, unknownTokenError(name, n, ref[1:])
		}
		return grammar.Term(typ), nil

	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, badExprError(name, n)
		}

		key := n.Content[0].Value
		op, f := opKeys[key]
		if !f {
			return nil, unknownOperatorError(name, n.Content[0], key)
		}

		val := n.Content[1]
		var operands []*yaml.Node
		switch {
		case val.Kind == yaml.SequenceNode:
			operands = val.Content
		case op == grammar.OpOpt:
			operands = []*yaml.Node{val}
		default:
			return nil, listExpectedError(name, val, key)
		}

		nodes := make([]*grammar.Node, len(operands))
		for i, operand := range operands {
			node, e := buildExpr(g, name, operand)
			if e != nil {
				return nil, e
			}
			nodes[i] = node
		}
		return &grammar.Node{Op: op, Nodes: nodes}, nil

	default:
		return nil, badExprError(name, n)
	}
}
