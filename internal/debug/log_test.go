package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{name: "unset", env: "", want: false},
		{name: "truthy", env: "1", want: true},
		{name: "true word", env: "true", want: true},
		{name: "falsy", env: "0", want: false},
		{name: "garbage", env: "banana", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env == "" {
				t.Setenv("IDCHECK_DEBUG", "")
			} else {
				t.Setenv("IDCHECK_DEBUG", tt.env)
			}
			assert.Equal(t, tt.want, Enabled())
		})
	}
}

func TestGetLogger_DefaultIsNop(t *testing.T) {
	logger := GetLogger()
	assert.NotNil(t, logger)

	// Nop logger must swallow output without side effects
	logger.Debug("ignored")
	logger.Debugf("ignored %d", 42)
}
