/*
gvxcheck is a console utility validating input files against a grammar
description. Usage is

	gvxcheck -g <grammar> [-e] [<file> ...]

-g <grammar> names a YAML grammar description parsable by langdef.ParseBytes();

-e prints the grammar in EBNF-like form;

each <file> is tokenized and analyzed, diagnostics are printed per file.
Exit code is 1 if some input is invalid, 2 on usage errors, 3 if the grammar
cannot be loaded.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ava12/gvx/langdef"
	"github.com/ava12/gvx/parser"
)

var (
	grammarFileName string
	printEbnf       bool
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage is  gvxcheck -g <grammar> [-e] [<file> ...]")
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), "  <file>")
		fmt.Fprintln(flag.CommandLine.Output(), "\tinput file to validate")
	}

	flag.StringVar(&grammarFileName, "g", "", "grammar description file name")
	flag.BoolVar(&printEbnf, "e", false, "print the grammar in EBNF-like form")
	flag.Parse()
	if grammarFileName == "" || (!printEbnf && flag.NArg() == 0) {
		flag.Usage()
		os.Exit(2)
	}

	src, e := os.ReadFile(grammarFileName)
	if e != nil {
		fmt.Println(e.Error())
		os.Exit(3)
	}

	g, ge := langdef.ParseBytes(grammarFileName, src)
	if ge != nil {
		fmt.Println(ge.Error())
		os.Exit(3)
	}

	if printEbnf {
		fmt.Print(g.EBNF())
	}

	p, ge := parser.New(g)
	if ge != nil {
		fmt.Println(ge.Error())
		os.Exit(3)
	}

	failed := false
	for _, name := range flag.Args() {
		content, e := os.ReadFile(name)
		if e != nil {
			fmt.Println(e.Error())
			failed = true
			continue
		}

		ge = p.Validate(name, content)
		if ge != nil {
			fmt.Println(ge.Error())
			failed = true
		} else {
			fmt.Printf("%s: ok\n", name)
		}
	}

	if failed {
		os.Exit(1)
	}
}
