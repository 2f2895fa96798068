package main

import (
	"fmt"
	"os"

	"github.com/sufield/idcheck/internal/debug"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	debug.InitLogger()

	// Create version info
	versionInfo := VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	// Create and configure registry
	registry := NewCommandRegistry(versionInfo)

	// Register all commands
	registerCommands(registry)

	// Execute
	if err := registry.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func registerCommands(r *CommandRegistry) {
	// Register validate command
	r.Register(&Command{
		Name:        "validate",
		Description: "Validate SPIFFE ID strings",
		Usage:       "idcheck validate [ids...] [flags]",
		Examples: []string{
			"idcheck validate spiffe://example.org/svc/api",
			"idcheck validate --file ids.txt",
			"idcheck validate --compat spiffe://example.org/svc/api",
			"cat ids.txt | idcheck validate",
		},
		Run: validateCommand,
	})

	// Register spiffe-id command
	r.Register(&Command{
		Name:        "spiffe-id",
		Description: "Construct SPIFFE IDs from components",
		Usage:       "idcheck spiffe-id <type> <trust-domain> [components...]",
		Examples: []string{
			"idcheck spiffe-id k8s example.org default api-client",
			"idcheck spiffe-id custom example.org service api-server",
		},
		Run: spiffeIDCommand,
	})

	// Register examples command
	r.Register(&Command{
		Name:        "examples",
		Description: "Print the canonical example table with verdicts",
		Usage:       "idcheck examples",
		Examples: []string{
			"idcheck examples",
		},
		Run: examplesCommand,
	})

	// Register serve command
	r.Register(&Command{
		Name:        "serve",
		Description: "Run the HTTP validation service",
		Usage:       "idcheck serve [--config f]",
		Examples: []string{
			"idcheck serve",
			"idcheck serve --config idcheck.yaml",
		},
		Run: serveCommand,
	})

	// Register version command
	r.Register(&Command{
		Name:        "version",
		Description: "Show version information",
		Usage:       "idcheck version",
		Examples: []string{
			"idcheck version",
		},
		Run: versionCommand,
	})
}
