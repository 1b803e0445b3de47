package grammar

import (
	"strings"
)

// EBNF renders the grammar in an EBNF-like textual form, one line per rule:
// terminals as $name, concatenations comma-joined, alternations parenthesized
// and pipe-joined, repetitions brace-wrapped, options bracket-wrapped.
// Cosmetic only, carries no parsing semantics.
func (g *Grammar) EBNF() string {
	var b strings.Builder
	for _, name := range g.ruleNames {
		b.WriteString(name)
		b.WriteString(" = ")
		g.writeNode(&b, g.rules[name])
		b.WriteString(" ;\n")
	}
	return b.String()
}

func (g *Grammar) writeNode(b *strings.Builder, n *Node) {
	switch n.Op {
	case OpToken:
		b.WriteString("$")
		b.WriteString(g.TokenName(n.Token))
	case OpRule:
		b.WriteString(n.Rule)
	case OpConcat:
		g.writeList(b, n.Nodes, ", ")
	case OpAlt:
		b.WriteString("(")
		g.writeList(b, n.Nodes, " | ")
		b.WriteString(")")
	case OpOpt:
		b.WriteString("[")
		g.writeNode(b, n.Nodes[0])
		b.WriteString("]")
	case OpRep:
		b.WriteString("{")
		g.writeList(b, n.Nodes, " | ")
		b.WriteString("}")
	}
}

func (g *Grammar) writeList(b *strings.Builder, nodes []*Node, sep string) {
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		g.writeNode(b, n)
	}
}
