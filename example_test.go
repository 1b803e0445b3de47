package gvx_test

import (
	"fmt"
	"strings"

	"github.com/ava12/gvx/langdef"
	"github.com/ava12/gvx/lexer"
	"github.com/ava12/gvx/parser"
)

func Example() {
	input := "foo = hello\nbar = world\n"
	descr := `
tokens:
  - {name: space, match: "[ \t]+", aside: true}
  - {name: nl, match: "\n"}
  - {name: eq, match: "="}
  - {name: name, match: "[a-z]+"}
rules:
  - name: conf
    initial: true
    expr:
      rep: [entry, "$nl"]
  - name: entry
    expr:
      seq: ["$name", "$eq", "$name", "$nl"]
`
	confGrammar, e := langdef.ParseString("example grammar", descr)
	if e != nil {
		fmt.Println(e)
		return
	}

	confParser, e := parser.New(confGrammar)
	if e != nil {
		fmt.Println(e)
		return
	}

	entries := make([]string, 0)
	names := make([]string, 0)
	nameType, _ := confGrammar.TokenType("name")
	nlType, _ := confGrammar.TokenType("nl")
	confParser.OnToken(nameType, func(t *lexer.Token) {
		names = append(names, t.Text())
	})
	confParser.OnToken(nlType, func(t *lexer.Token) {
		if len(names) == 2 {
			entries = append(entries, names[0]+"="+names[1])
		}
		names = names[:0]
	})

	e = confParser.Validate("input", []byte(input))
	if e == nil {
		fmt.Println(strings.Join(entries, ", "))
	} else {
		fmt.Println(e)
	}
	// Output: foo=hello, bar=world
}
