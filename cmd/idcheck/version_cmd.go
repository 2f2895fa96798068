package main

import (
	"flag"
	"fmt"
	"runtime"
)

func versionCommand(args []string) error {
	fs := flag.NewFlagSet("version", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "Show detailed build information")

	fs.Usage = func() {
		fmt.Println(`Show version information

USAGE:
    idcheck version [flags]

FLAGS:
    --verbose   Show detailed build information

EXAMPLES:
    idcheck version
    idcheck version --verbose`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Printf("idcheck %s (commit: %s, built: %s)\n", version, commit, date)

	if *verbose {
		table := NewTableWriter([]string{"Setting", "Value"})
		table.AddRow([]string{"Go runtime", runtime.Version()})
		table.AddRow([]string{"OS/Arch", runtime.GOOS + "/" + runtime.GOARCH})
		table.AddRow([]string{"Scheme prefix", "spiffe://"})
		table.Print()
	}

	return nil
}
