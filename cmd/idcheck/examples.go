package main

import (
	"flag"
	"fmt"

	"github.com/sufield/idcheck"
)

// canonicalExamples is the demonstration set covering every grammar rule:
// length guard, scheme case, authority charset, empty authority, empty and
// relative path segments, trailing slashes, percent encoding.
var canonicalExamples = []string{
	"",
	"spiffe://",
	"spiffe:///",
	"spiffe://Foo/bar",
	"spiffe://foo:bar",
	"spiffe://foo/bar",
	"spiffe://foo/",
	"spiffe://foo",
	"spiffe://foo.bar/Baz/buZ",
	"spiffe://foo.bar/Baz/buZ/",
	"spiffe://foo.bar//buZ/",
	"spiffe://foo.bar/../buZ/",
	"spiffe://foo.bar/buZ/%2d",
	"Spiffe://foo.bar/Baz/buZ",
}

func examplesCommand(args []string) error {
	fs := flag.NewFlagSet("examples", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Print the canonical example table with verdicts

USAGE:
    idcheck examples

Prints a fixed set of candidate IDs covering every grammar rule, with the
validator's verdict and extracted components for each. Useful as a quick
reference for what the grammar accepts.`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	table := NewTableWriter([]string{"Input", "Verdict", "Authority", "Path"})
	for _, candidate := range canonicalExamples {
		res := idcheck.Validate(candidate)
		verdict := "invalid"
		if res.Valid {
			verdict = "valid"
		}
		table.AddRow([]string{fmt.Sprintf("%q", candidate), verdict, res.Authority, res.Path})
	}
	table.Print()
	return nil
}
