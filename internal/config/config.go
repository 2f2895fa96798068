// Package config loads and validates the yaml configuration for the idcheck
// validation service.
package config

import "time"

// ServerSection contains HTTP listener configuration.
type ServerSection struct {
	// ListenAddr is the address the validation service binds to.
	// Example: ":8080" or "127.0.0.1:8080"
	ListenAddr string `yaml:"listen_addr"`

	// ReadTimeout and WriteTimeout bound each request. Go duration format:
	// "5s", "30s", "1m". Defaults applied by Validate when unset.
	ReadTimeout  string `yaml:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout"`
}

// LimitsSection bounds request handling.
type LimitsSection struct {
	// MaxBodyBytes caps the request body for POST /validate.
	// Candidate IDs are short; the default of 64 KiB is already generous.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// CompatSection controls the go-spiffe cross-check.
type CompatSection struct {
	// Enabled allows requests to ask for an SDK agreement report (?compat=1).
	Enabled bool `yaml:"enabled"`
}

// FileConfig represents an idcheck service configuration file.
//
// The config format is versioned to support future evolution without breaking changes.
type FileConfig struct {
	// Version is the config file format version (optional, currently always 1)
	Version int `yaml:"version,omitempty"`

	Server ServerSection `yaml:"server"`
	Limits LimitsSection `yaml:"limits"`
	Compat CompatSection `yaml:"compat"`
}

// Defaults applied by Validate.
const (
	DefaultListenAddr   = ":8080"
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultMaxBodyBytes = 64 * 1024
)

// Runtime is the validated, type-converted form of FileConfig that the
// service consumes.
type Runtime struct {
	ListenAddr    string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	MaxBodyBytes  int64
	CompatEnabled bool
}
