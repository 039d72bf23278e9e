package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// ApplicationConfiguration contains settings of the process hosting the
// interpreter rather than the language session itself.
type ApplicationConfiguration struct {
	LogLevel string `yaml:"LogLevel"`
	LogPath  string `yaml:"LogPath"`
	// HistoryFile keeps interactive input between runs, empty to disable.
	HistoryFile string       `yaml:"HistoryFile"`
	Prometheus  BasicService `yaml:"Prometheus"`
}

// Validate checks application settings.
func (a ApplicationConfiguration) Validate() error {
	if len(a.LogLevel) > 0 {
		if _, err := zapcore.ParseLevel(a.LogLevel); err != nil {
			return fmt.Errorf("log setting: %w", err)
		}
	}
	if a.Prometheus.Enabled && len(a.Prometheus.Addresses) == 0 {
		return errors.New("Prometheus is enabled, but no addresses are given")
	}
	return nil
}
