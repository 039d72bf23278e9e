package config

import (
	"errors"
	"fmt"
)

// DefaultPrompt is shown before every line read in the interactive mode.
const DefaultPrompt = ">>> "

// ErrorPolicy defines what happens to a session after a failed statement.
type ErrorPolicy string

// Error policies.
const (
	// ErrorPolicyExit prints the error and terminates the session with
	// non-zero status.
	ErrorPolicyExit ErrorPolicy = "exit"
	// ErrorPolicyContinue prints the error and reads the next line, the
	// failed statement has no effect.
	ErrorPolicyContinue ErrorPolicy = "continue"
)

// Interpreter contains session settings.
type Interpreter struct {
	// MaxVariables limits the number of declared variables, 0 means no limit.
	MaxVariables int         `yaml:"MaxVariables"`
	OnError      ErrorPolicy `yaml:"OnError"`
	Prompt       string      `yaml:"Prompt"`
}

// Validate checks interpreter settings.
func (i Interpreter) Validate() error {
	if i.MaxVariables < 0 {
		return errors.New("MaxVariables can't be negative")
	}
	switch i.OnError {
	case ErrorPolicyExit, ErrorPolicyContinue:
	default:
		return fmt.Errorf("unknown OnError policy %q", i.OnError)
	}
	return nil
}

// ContinueOnError returns true if the session survives failed statements.
func (i Interpreter) ContinueOnError() bool {
	return i.OnError == ErrorPolicyContinue
}
