package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nspcc-dev/lineinterp/cli/options"
	"github.com/nspcc-dev/lineinterp/cli/repl"
	"github.com/nspcc-dev/lineinterp/cli/script"
	"github.com/nspcc-dev/lineinterp/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "lineinterp\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates an instance of [cli.App] with all commands included. Without
// a command it starts an interactive session.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "lineinterp"
	ctl.Version = config.Version
	ctl.Usage = "Line-oriented interpreter for int and string variables"
	ctl.ErrWriter = os.Stdout

	ctl.Flags = options.Session
	ctl.Action = repl.Start

	ctl.Commands = append(ctl.Commands, repl.NewCommands()...)
	ctl.Commands = append(ctl.Commands, script.NewCommands()...)
	return ctl
}
