package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the version of the interpreter, set at build time.
var Version string

// Config is the top level struct representing interpreter configuration.
type Config struct {
	Interpreter              Interpreter              `yaml:"Interpreter"`
	ApplicationConfiguration ApplicationConfiguration `yaml:"ApplicationConfiguration"`
}

// Default returns configuration used when no file is given.
func Default() Config {
	return Config{
		Interpreter: Interpreter{
			OnError: ErrorPolicyExit,
			Prompt:  DefaultPrompt,
		},
		ApplicationConfiguration: ApplicationConfiguration{
			LogLevel: "warn",
		},
	}
}

// LoadFile loads config from the provided path on top of the defaults.
func LoadFile(configPath string) (Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return Config{}, fmt.Errorf("unable to load config: %w", err)
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(configData))
	decoder.KnownFields(true)
	err = decoder.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if err := c.Interpreter.Validate(); err != nil {
		return err
	}
	return c.ApplicationConfiguration.Validate()
}
