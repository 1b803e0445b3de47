package grammar

import (
	"strings"

	"github.com/ava12/gvx"
)

// Error codes used by grammar. All of them are reported at grammar
// construction time, never during analysis.
const (
	ErrTokenDefined = gvx.GrammarDefErrors + iota
	ErrRuleDefined
	ErrWrongRegexp
	ErrWrongOperator
	ErrWrongArity
	ErrNilNode
	ErrInitialDefined
	ErrBadName
	ErrUnknownRule
)

func defTokenError(name string) *gvx.Error {
	return gvx.FormatError(ErrTokenDefined, "token %q already defined", name)
}

func defRuleError(name string) *gvx.Error {
	return gvx.FormatError(ErrRuleDefined, "rule %q already defined", name)
}

func regexpError(name, re string, e error) *gvx.Error {
	return gvx.FormatError(ErrWrongRegexp, "incorrect RegExp %q for token %q (%s)", re, name, e.Error())
}

func wrongOperatorError(rule string, op Op) *gvx.Error {
	return gvx.FormatError(ErrWrongOperator, "unknown operator %s in rule %q", op, rule)
}

func wrongArityError(rule string, cnt int) *gvx.Error {
	return gvx.FormatError(ErrWrongArity, "option in rule %q takes exactly 1 operand, got %d", rule, cnt)
}

func nilNodeError(rule string) *gvx.Error {
	return gvx.FormatError(ErrNilNode, "missing node in rule %q", rule)
}

func initialDefinedError(defined, name string) *gvx.Error {
	return gvx.FormatError(ErrInitialDefined, "cannot mark rule %q initial: %q already is", name, defined)
}

func badNameError(what string) *gvx.Error {
	return gvx.FormatError(ErrBadName, "empty %s name", what)
}

func unknownRuleError(names []string) *gvx.Error {
	return gvx.FormatError(ErrUnknownRule, "undefined rules: "+strings.Join(names, ", "))
}
