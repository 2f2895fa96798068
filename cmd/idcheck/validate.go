package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sufield/idcheck"
	"github.com/sufield/idcheck/internal/compat"
)

func validateCommand(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", "", "Read candidate IDs from a file, one per line")
	compatFlag := fs.Bool("compat", false, "Cross-check each verdict against the go-spiffe SDK")
	quiet := fs.Bool("quiet", false, "Suppress per-ID output; exit status only")

	fs.Usage = func() {
		fmt.Println(`Validate SPIFFE ID strings

USAGE:
    idcheck validate [ids...] [flags]

FLAGS:
    --file string   Read candidate IDs from a file, one per line ("-" for stdin)
    --compat        Cross-check each verdict against the go-spiffe SDK
    --quiet         Suppress per-ID output; exit status only

Lines starting with # and blank lines in --file input are skipped.
Exit status is 0 when every candidate is valid, 1 otherwise.

EXAMPLES:
    # Validate IDs given as arguments
    idcheck validate spiffe://example.org/svc/api spiffe://example.org

    # Validate a file of IDs
    idcheck validate --file ids.txt

    # Validate stdin in a pipeline
    kubectl get pods -o json | extract-ids | idcheck validate --file -

    # Gate a deployment on ID validity
    if idcheck validate --quiet --file allowed-ids.txt; then
        kubectl apply -f deployment.yaml
    fi`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	candidates := fs.Args()
	if *file != "" {
		fromFile, err := readCandidates(*file)
		if err != nil {
			return err
		}
		candidates = append(candidates, fromFile...)
	}
	if len(candidates) == 0 {
		fs.Usage()
		return fmt.Errorf("no candidate IDs given")
	}

	invalid := 0
	for _, candidate := range candidates {
		res := idcheck.Validate(candidate)
		if !res.Valid {
			invalid++
		}

		if !*quiet {
			printVerdict(candidate, res)
		}

		if *compatFlag {
			a := compat.Check(candidate)
			if !a.Agree {
				// A disagreement is reported even in quiet mode: it means the
				// scanner and the SDK have diverged, which is a bug here.
				fmt.Fprintf(os.Stderr, "! SDK disagreement on %q (scanner=%t sdk=%t)\n",
					candidate, a.ScannerValid, a.SDKValid)
				invalid++
			} else if !*quiet && !a.SDKValid {
				fmt.Printf("    sdk: %s\n", a.SDKError)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d candidate(s) invalid", invalid, len(candidates))
	}
	if !*quiet {
		fmt.Printf("✓ %d candidate(s) valid\n", len(candidates))
	}
	return nil
}

func printVerdict(candidate string, res idcheck.Result) {
	if !res.Valid {
		fmt.Printf("✗ %q invalid\n", candidate)
		return
	}
	if res.Path == "" {
		fmt.Printf("✓ %q valid (authority=%s)\n", candidate, res.Authority)
		return
	}
	fmt.Printf("✓ %q valid (authority=%s path=%s)\n", candidate, res.Authority, res.Path)
}

// readCandidates loads one candidate per line, skipping blanks and # comments.
// Path "-" reads stdin.
func readCandidates(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(filepath.Clean(path)) // #nosec G304 - input file path comes from the operator
		if err != nil {
			return nil, fmt.Errorf("failed to open ID file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ID file: %w", err)
	}
	return out, nil
}
