package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/sufield/idcheck"
)

func spiffeIDCommand(args []string) error {
	fs := flag.NewFlagSet("spiffe-id", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`Construct SPIFFE IDs from components

USAGE:
    idcheck spiffe-id <type> <trust-domain> [components...]

TYPES:
    k8s          Kubernetes service account (requires: namespace, service-account)
    custom       Custom path (requires: path components)

The constructed ID is validated before printing, so bad components
(uppercase trust domains, empty segments, ".." and so on) fail instead
of emitting an ID nothing will accept.

EXAMPLES:
    # Kubernetes service account
    idcheck spiffe-id k8s example.org default api-client
    Output: spiffe://example.org/ns/default/sa/api-client

    # Custom path
    idcheck spiffe-id custom example.org service api-server
    Output: spiffe://example.org/service/api-server

    # Use in shell scripts
    ALLOWED_CLIENT_ID=$(idcheck spiffe-id k8s example.org default api-client)
    echo "allowed_client_spiffe_id: \"$ALLOWED_CLIENT_ID\"" >> config.yaml`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("insufficient arguments")
	}

	idType := fs.Arg(0)
	trustDomain := fs.Arg(1)

	var candidate string
	switch idType {
	case "k8s", "kubernetes":
		if fs.NArg() != 4 {
			return fmt.Errorf("k8s type requires <trust-domain> <namespace> <service-account>")
		}
		namespace := fs.Arg(2)
		serviceAccount := fs.Arg(3)
		candidate = fmt.Sprintf("spiffe://%s/ns/%s/sa/%s", trustDomain, namespace, serviceAccount)

	case "custom":
		if fs.NArg() < 3 {
			return fmt.Errorf("custom type requires <trust-domain> <path-component>")
		}
		pathComponents := fs.Args()[2:]
		candidate = fmt.Sprintf("spiffe://%s/%s", trustDomain, strings.Join(pathComponents, "/"))

	default:
		return fmt.Errorf("unknown type: %s (use 'k8s' or 'custom')", idType)
	}

	id, err := idcheck.Parse(candidate)
	if err != nil {
		return fmt.Errorf("constructed ID %q is not valid: %w", candidate, err)
	}

	fmt.Println(id.String())
	return nil
}
