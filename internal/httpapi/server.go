// Package httpapi exposes the validator over HTTP for callers that cannot
// link the library directly.
//
// The service is a thin shell: one POST endpoint that returns the verdict as
// JSON, plus health and version probes. An invalid candidate ID is a 200 with
// "valid": false, since malformed input is an expected outcome of validation
// rather than a server error. 4xx is reserved for requests the service cannot
// read at all (bad JSON, oversized body).
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sufield/idcheck/internal/compat"
	"github.com/sufield/idcheck/internal/config"
	"github.com/sufield/idcheck/internal/debug"
	"github.com/sufield/idcheck/internal/scan"
)

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	ID string `json:"id"`
}

// CompatReport mirrors the go-spiffe agreement for responses that asked for it.
type CompatReport struct {
	SDKValid bool   `json:"sdk_valid"`
	Agree    bool   `json:"agree"`
	SDKError string `json:"sdk_error,omitempty"`
}

// ValidateResponse is the verdict payload.
// Authority and Path are present only for valid IDs.
type ValidateResponse struct {
	Valid     bool          `json:"valid"`
	Authority string        `json:"authority,omitempty"`
	Path      string        `json:"path,omitempty"`
	Compat    *CompatReport `json:"compat,omitempty"`
}

// VersionResponse is the payload of GET /version.
type VersionResponse struct {
	Version string `json:"version"`
}

// NewRouter builds the service router from validated runtime config.
func NewRouter(rt config.Runtime, version string) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			debug.GetLogger().Debugf("healthz write error: %v", err)
		}
	})

	r.Get("/version", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, VersionResponse{Version: version})
	})

	r.Post("/validate", func(w http.ResponseWriter, req *http.Request) {
		body := http.MaxBytesReader(w, req.Body, rt.MaxBodyBytes)

		var in ValidateRequest
		dec := json.NewDecoder(body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}

		res := scan.Validate(in.ID)
		out := ValidateResponse{
			Valid:     res.Valid,
			Authority: res.Authority,
			Path:      res.Path,
		}
		debug.GetLogger().Debugf("validate %q -> valid=%t", in.ID, res.Valid)

		if rt.CompatEnabled && req.URL.Query().Get("compat") == "1" {
			a := compat.Check(in.ID)
			out.Compat = &CompatReport{
				SDKValid: a.SDKValid,
				Agree:    a.Agree,
				SDKError: a.SDKError,
			}
		}

		writeJSON(w, http.StatusOK, out)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		debug.GetLogger().Debugf("response encode error: %v", err)
	}
}
