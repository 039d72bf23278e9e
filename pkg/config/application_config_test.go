package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, Default().Validate())

	testCases := map[string]func(*Config){
		"negative limit": func(c *Config) { c.Interpreter.MaxVariables = -1 },
		"empty policy":   func(c *Config) { c.Interpreter.OnError = "" },
		"bad log level":  func(c *Config) { c.ApplicationConfiguration.LogLevel = "loud" },
		"no addresses":   func(c *Config) { c.ApplicationConfiguration.Prometheus.Enabled = true },
	}
	for name, f := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			f(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
