/*
Package script provides the command executing statement files in batch mode.
*/
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nspcc-dev/lineinterp/cli/options"
	"github.com/nspcc-dev/lineinterp/pkg/interp"
	"github.com/nspcc-dev/lineinterp/pkg/services/metrics"
	"github.com/nspcc-dev/lineinterp/pkg/symbol"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// exitCommand stops script execution just like it ends interactive session.
const exitCommand = "exit"

// Stdin is used to read scanf values.
var Stdin io.Reader = os.Stdin

var (
	// ErrMissingParameter is returned when the script file is not given.
	ErrMissingParameter = errors.New("missing script file")
	// ErrInvalidParameter is returned when too many arguments are given.
	ErrInvalidParameter = errors.New("only one script file can be executed")
)

// NewCommands returns 'run' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:      "run",
		Usage:     "Execute statements from a file",
		UsageText: "lineinterp run [--config-file <file>] [--continue-on-error] [--max-vars <n>] [--debug] <file>",
		Description: `Executes statements from the given file line by line, the same way they're
   executed in an interactive session. scanf statements read values from the
   standard input. Execution stops at the first failed statement unless errors
   are tolerated, the 'exit' line stops it too.`,
		ArgsUsage: "<file>",
		Action:    runFile,
		Flags:     options.Session,
	}}
}

func runFile(ctx *cli.Context) error {
	switch {
	case ctx.NArg() == 0:
		return cli.NewExitError(ErrMissingParameter, 1)
	case ctx.NArg() > 1:
		return cli.NewExitError(ErrInvalidParameter, 1)
	}
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	f, err := os.Open(ctx.Args().First())
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to open script: %w", err), 1)
	}
	defer f.Close()

	prometheus := metrics.NewPrometheusService(cfg.ApplicationConfiguration.Prometheus, log)
	if err := prometheus.Start(); err != nil {
		return cli.NewExitError(err, 1)
	}
	defer prometheus.ShutDown()

	log = log.With(zap.String("script", ctx.Args().First()))
	ip := interp.New(symbol.NewTable(cfg.Interpreter.MaxVariables),
		interp.NewReaderInput(Stdin, ctx.App.Writer), ctx.App.Writer, log)
	failed, err := Execute(ip, f, ctx.App.Writer, cfg.Interpreter.ContinueOnError())
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if failed != 0 {
		log.Debug("script finished with errors", zap.Int("failed", failed))
		return cli.NewExitError("", 1)
	}
	return nil
}

// Execute runs every line read from r with ip until EOF or the 'exit' line.
// Failed statements are reported to w. Unless continueOnError is set
// execution stops at the first failed statement. The number of failed
// statements is returned, err is only set if r can't be read.
func Execute(ip *interp.Interpreter, r io.Reader, w io.Writer, continueOnError bool) (int, error) {
	var (
		failed  int
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		line := scanner.Text()
		if line == exitCommand {
			break
		}
		if err := ip.ProcessLine(line); err != nil {
			fmt.Fprintf(w, "Error: %s\n", err)
			failed++
			if !continueOnError {
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, fmt.Errorf("failed to read script: %w", err)
	}
	return failed, nil
}
