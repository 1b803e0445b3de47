package langdef

import (
	"gopkg.in/yaml.v3"

	"github.com/ava12/gvx"
)

// Error codes used by langdef. The block starts past the grammar package
// codes, both live in the GrammarDefErrors class.
const (
	ErrBadYaml = gvx.GrammarDefErrors + 30 + iota
	ErrBadExpr
	ErrNoExpr
	ErrUnknownOperator
	ErrUnknownToken
	ErrListExpected
)

func yamlError(name string, e error) *gvx.Error {
	return gvx.NewError(ErrBadYaml, "cannot parse grammar description: "+e.Error(), name, 0, 0)
}

func nodeError(code int, name string, n *yaml.Node, msg string, params ...any) *gvx.Error {
	return gvx.FormatError(code, msg+" in %s at line %d col %d", append(params, name, n.Line, n.Column)...)
}

func badExprError(name string, n *yaml.Node) *gvx.Error {
	return nodeError(ErrBadExpr, name, n, "malformed rule expression")
}

func noExprError(name, rule string) *gvx.Error {
	return gvx.FormatError(ErrNoExpr, "rule %q in %s has no expression", rule, name)
}

func unknownOperatorError(name string, n *yaml.Node, key string) *gvx.Error {
	return nodeError(ErrUnknownOperator, name, n, "unknown operator %q", key)
}

func unknownTokenError(name string, n *yaml.Node, token string) *gvx.Error {
	return nodeError(ErrUnknownToken, name, n, "token %q mentioned but not defined", token)
}

func listExpectedError(name string, n *yaml.Node, key string) *gvx.Error {
	return nodeError(ErrListExpected, name, n, "operator %q takes a list of operands", key)
}

// located fills the description name into grammar package errors, which carry
// no source information of their own.
func located(e *gvx.Error, name string) *gvx.Error {
	if e.SourceName == "" {
		e.SourceName = name
		e.Message += " in " + name
	}
	return e
}
