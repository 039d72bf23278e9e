/*
Package options contains a set of common CLI options and helper functions to use them.
*/
package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/lineinterp/pkg/config"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ConfigFile is a flag for commands that use interpreter configuration.
var ConfigFile = cli.StringFlag{
	Name:  "config-file",
	Usage: "path to the YAML configuration file",
}

// ContinueOnError is a flag overriding error policy from the configuration.
var ContinueOnError = cli.BoolFlag{
	Name:  "continue-on-error, k",
	Usage: "report failed statements and keep the session running instead of exiting",
}

// MaxVariables is a flag overriding variable limit from the configuration.
var MaxVariables = cli.IntFlag{
	Name:  "max-vars",
	Usage: "maximum number of variables per session, 0 for no limit (overrides configuration)",
}

// Debug is a flag for commands that allow debug logging.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (LOTS of output, overrides configuration)",
}

// Session is a set of flags shared by all commands running statements.
var Session = []cli.Flag{ConfigFile, ContinueOnError, MaxVariables, Debug}

// GetConfigFromContext loads configuration file if it's specified and
// applies command line overrides.
func GetConfigFromContext(ctx *cli.Context) (config.Config, error) {
	var (
		cfg = config.Default()
		err error
	)
	if configFile := ctx.String("config-file"); len(configFile) != 0 {
		cfg, err = config.LoadFile(configFile)
		if err != nil {
			return config.Config{}, err
		}
	}
	if ctx.Bool("continue-on-error") {
		cfg.Interpreter.OnError = config.ErrorPolicyContinue
	}
	if ctx.IsSet("max-vars") {
		cfg.Interpreter.MaxVariables = ctx.Int("max-vars")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// HandleLoggingParams reads logging parameters.
// If a user selected debug level -- function enables it.
// If logPath is configured -- function creates a dir and a file for logging.
func HandleLoggingParams(debug bool, cfg config.ApplicationConfiguration) (*zap.Logger, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(cfg.LogLevel) > 0 {
		level, err = zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	if logPath := cfg.LogPath; logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("could not create dir for logger: %w", err)
		}
		cc.OutputPaths = []string{logPath}
	}

	return cc.Build()
}
