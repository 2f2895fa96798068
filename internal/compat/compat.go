// Package compat cross-checks the hand-rolled scanner against the go-spiffe
// SDK's SPIFFE ID parser.
//
// The scanner is the source of truth for this library; the SDK never sits on
// the validation path. This adapter exists to produce continuous evidence that
// the two grammars agree, surfaced through the CLI's --compat flag, the HTTP
// service, and the test suite. Keeping the SDK quarantined here mirrors how
// the rest of the codebase keeps parsing policy out of the value objects.
package compat

import (
	"github.com/spiffe/go-spiffe/v2/spiffeid"

	"github.com/sufield/idcheck/internal/scan"
)

// Agreement reports how the scanner and the SDK judged the same input.
type Agreement struct {
	// Input is the candidate ID both parsers saw.
	Input string

	// ScannerValid is the scanner's verdict.
	ScannerValid bool

	// SDKValid is the go-spiffe SDK's verdict.
	SDKValid bool

	// Agree is true when the verdicts match and, for accepted inputs, the
	// extracted components match as well.
	Agree bool

	// Authority and Path are the scanner's components when ScannerValid.
	Authority string
	Path      string

	// SDKError carries the SDK's parse error text when SDKValid is false.
	// Informational only; the library's contract has a single error kind.
	SDKError string
}

// Check runs both parsers over id and reports their agreement.
func Check(id string) Agreement {
	res := scan.Validate(id)

	a := Agreement{
		Input:        id,
		ScannerValid: res.Valid,
		Authority:    res.Authority,
		Path:         res.Path,
	}

	sdkID, err := spiffeid.FromString(id)
	if err != nil {
		a.SDKError = err.Error()
		a.Agree = !res.Valid
		return a
	}

	a.SDKValid = true
	if !res.Valid {
		return a
	}

	// Both accepted: components must line up too.
	a.Agree = sdkID.TrustDomain().String() == res.Authority &&
		sdkID.Path() == res.Path
	return a
}
