package config

import (
	"fmt"
	"time"
)

// Validate checks cfg, applies defaults, and converts it to the runtime form.
//
// Ensures:
//   - Version, when set, is a format this build understands
//   - Timeouts parse as Go durations and are positive
//   - MaxBodyBytes is non-negative
func Validate(cfg FileConfig) (Runtime, error) {
	var rt Runtime

	if cfg.Version != 0 && cfg.Version != 1 {
		return rt, fmt.Errorf("unsupported config version %d (this build understands version 1)", cfg.Version)
	}

	rt.ListenAddr = cfg.Server.ListenAddr
	if rt.ListenAddr == "" {
		rt.ListenAddr = DefaultListenAddr
	}

	var err error
	rt.ReadTimeout, err = parseTimeout("server.read_timeout", cfg.Server.ReadTimeout, DefaultReadTimeout)
	if err != nil {
		return rt, err
	}
	rt.WriteTimeout, err = parseTimeout("server.write_timeout", cfg.Server.WriteTimeout, DefaultWriteTimeout)
	if err != nil {
		return rt, err
	}

	rt.MaxBodyBytes = cfg.Limits.MaxBodyBytes
	if rt.MaxBodyBytes < 0 {
		return rt, fmt.Errorf("limits.max_body_bytes must not be negative, got %d", rt.MaxBodyBytes)
	}
	if rt.MaxBodyBytes == 0 {
		rt.MaxBodyBytes = DefaultMaxBodyBytes
	}

	rt.CompatEnabled = cfg.Compat.Enabled
	return rt, nil
}

func parseTimeout(field, value string, def time.Duration) (time.Duration, error) {
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", field, d)
	}
	return d, nil
}
