package repl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
	"github.com/nspcc-dev/lineinterp/cli/options"
	"github.com/nspcc-dev/lineinterp/pkg/config"
	"github.com/nspcc-dev/lineinterp/pkg/interp"
	"github.com/nspcc-dev/lineinterp/pkg/services/metrics"
	"github.com/nspcc-dev/lineinterp/pkg/symbol"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

const (
	interpreterKey      = "interpreter"
	exitFuncKey         = "exitFunc"
	readlineInstanceKey = "readlineKey"

	// exitCommand ends the session, it's intercepted before the interpreter.
	exitCommand = "exit"
	// commandPrefix starts REPL meta-command lines, it can't begin a statement.
	commandPrefix = "."
)

// NewCommands returns 'repl' command.
func NewCommands() []cli.Command {
	return []cli.Command{{
		Name:      "repl",
		Usage:     "Start an interactive interpreter session",
		UsageText: "lineinterp repl [--config-file <file>] [--continue-on-error] [--max-vars <n>] [--debug]",
		Description: `Starts an interactive session reading statements line by line. Type 'exit'
   to leave the session and '.help' to get the list of REPL commands.`,
		Action: Start,
		Flags:  options.Session,
	}}
}

var commands = []cli.Command{
	{
		Name:      "vars",
		Usage:     "Show declared variables",
		UsageText: `vars [--json]`,
		Description: `vars [--json]
Shows all variables of the session in declaration order, example:
> .vars --json`,
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "json, j", Usage: "print variables as JSON"},
		},
		Action: handleVars,
	},
}

var completer *readline.PrefixCompleter

func init() {
	var pcItems []readline.PrefixCompleterInterface
	for _, kw := range []string{"int ", "string ", "print ", "scanf ", exitCommand} {
		pcItems = append(pcItems, readline.PcItem(kw))
	}
	for _, c := range append(commands, cli.Command{Name: "help"}) {
		if !c.Hidden {
			var flagsItems []readline.PrefixCompleterInterface
			for _, f := range c.Flags {
				names := strings.SplitN(f.GetName(), ", ", 2) // only long name will be offered
				flagsItems = append(flagsItems, readline.PcItem("--"+names[0]))
			}
			pcItems = append(pcItems, readline.PcItem(commandPrefix+c.Name, flagsItems...))
		}
	}
	completer = readline.NewPrefixCompleter(pcItems...)
}

// REPL object for interactive sessions.
type REPL struct {
	shell           *cli.App
	continueOnError bool
}

// NewWithConfig returns new REPL instance using provided readline and
// interpreter config. onExit is called with the final session status.
func NewWithConfig(onExit func(int), c *readline.Config, cfg config.Config, log *zap.Logger) (*REPL, error) {
	if c.AutoComplete == nil {
		// Autocomplete keywords and commands on TAB.
		c.AutoComplete = completer
	}
	if c.Prompt == "" {
		c.Prompt = cfg.Interpreter.Prompt
	}
	if c.HistoryFile == "" {
		c.HistoryFile = cfg.ApplicationConfiguration.HistoryFile
	}
	l, err := readline.NewEx(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	ctl := cli.NewApp()
	ctl.Name = "REPL"

	// Note: need to set empty `ctl.HelpName` and `ctl.UsageText`, otherwise
	// `filepath.Base(os.Args[0])` will be used.
	ctl.HelpName = ""
	ctl.UsageText = ""

	ctl.Writer = l.Stdout()
	ctl.ErrWriter = l.Stderr()
	ctl.Version = config.Version
	ctl.Usage = "REPL commands, prefix them with '" + commandPrefix + "'"

	// Override default error handler in order not to exit on error.
	ctl.ExitErrHandler = func(context *cli.Context, err error) {}

	ctl.Commands = commands

	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.Stringer("session", uuid.New()))

	in := &readlineInput{l: l, prompt: c.Prompt}
	ip := interp.New(symbol.NewTable(cfg.Interpreter.MaxVariables), in, l.Stdout(), log)

	exitF := func(i int) {
		_ = l.Close()
		_ = log.Sync()
		onExit(i)
	}

	ctl.Metadata = map[string]interface{}{
		interpreterKey:      ip,
		exitFuncKey:         exitF,
		readlineInstanceKey: l,
	}
	log.Debug("session started",
		zap.Int("max variables", cfg.Interpreter.MaxVariables),
		zap.String("on error", string(cfg.Interpreter.OnError)))
	return &REPL{
		shell:           ctl,
		continueOnError: cfg.Interpreter.ContinueOnError(),
	}, nil
}

// readlineInput reads scanf values using the session readline instance.
type readlineInput struct {
	l      *readline.Instance
	prompt string
}

// ReadLine implements interp.Input interface.
func (r *readlineInput) ReadLine(prompt string) (string, error) {
	r.l.SetPrompt(prompt)
	defer r.l.SetPrompt(r.prompt)
	return r.l.Readline()
}

func getExitFuncFromContext(app *cli.App) func(int) {
	return app.Metadata[exitFuncKey].(func(int))
}

func getReadlineInstanceFromContext(app *cli.App) *readline.Instance {
	return app.Metadata[readlineInstanceKey].(*readline.Instance)
}

func getInterpreterFromContext(app *cli.App) *interp.Interpreter {
	return app.Metadata[interpreterKey].(*interp.Interpreter)
}

// Run waits for user input from Stdin and executes statements until 'exit',
// EOF or (unless errors are tolerated) the first failed statement.
func (c *REPL) Run() error {
	l := getReadlineInstanceFromContext(c.shell)
	ip := getInterpreterFromContext(c.shell)
	exit := getExitFuncFromContext(c.shell)
	for {
		line, err := l.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			exit(0)
			return nil // OK, stop execution.
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err) // Critical error, stop execution.
		}
		if line == exitCommand {
			exit(0)
			return nil
		}

		if strings.HasPrefix(line, commandPrefix) {
			c.runCommand(strings.TrimPrefix(line, commandPrefix))
			continue
		}

		err = ip.ProcessLine(line)
		if err != nil {
			writeErr(c.shell.ErrWriter, err)
			if !c.continueOnError {
				exit(1)
				return nil
			}
		}
	}
}

func (c *REPL) runCommand(line string) {
	args, err := shellquote.Split(line)
	if err != nil {
		writeErr(c.shell.ErrWriter, fmt.Errorf("failed to parse arguments: %w", err))
		return // Not a critical error, continue execution.
	}
	if len(args) == 0 {
		args = []string{"help"}
	}
	err = c.shell.Run(append([]string{"repl"}, args...))
	if err != nil {
		writeErr(c.shell.ErrWriter, err) // Various command/flags parsing errors.
	}
}

type varInfo struct {
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Initialized bool    `json:"initialized"`
	Value       *string `json:"value,omitempty"`
}

func handleVars(c *cli.Context) error {
	if c.NArg() != 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(c.Args(), " "))
	}
	tbl := getInterpreterFromContext(c.App).Table()
	vars := tbl.Variables()
	if c.Bool("json") {
		infos := make([]varInfo, len(vars))
		for i, v := range vars {
			infos[i] = varInfo{Name: v.Name, Kind: v.Kind.String(), Initialized: v.Initialized}
			if val, ok := v.Value(); ok {
				s := val.String()
				infos[i].Value = &s
			}
		}
		b, err := json.MarshalIndent(infos, "", "\t")
		if err != nil {
			return fmt.Errorf("failed to marshal variables: %w", err)
		}
		fmt.Fprintln(c.App.Writer, string(b))
		return nil
	}
	if len(vars) == 0 {
		fmt.Fprintln(c.App.Writer, "no variables declared")
		return nil
	}
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tVALUE")
	for _, v := range vars {
		val, ok := v.Value()
		s := "<uninitialized>"
		if ok {
			s = val.String()
			if v.Kind == symbol.String {
				s = fmt.Sprintf("%q", s)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.Name, v.Kind, s)
	}
	return w.Flush()
}

// Start is an action starting interactive session with the settings taken
// from the CLI context.
func Start(ctx *cli.Context) error {
	if ctx.NArg() != 0 {
		return cli.NewExitError(fmt.Errorf("unexpected arguments: %s", strings.Join(ctx.Args(), " ")), 1)
	}
	cfg, err := options.GetConfigFromContext(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	log, err := options.HandleLoggingParams(ctx.Bool("debug"), cfg.ApplicationConfiguration)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	prometheus := metrics.NewPrometheusService(cfg.ApplicationConfiguration.Prometheus, log)
	if err := prometheus.Start(); err != nil {
		return cli.NewExitError(err, 1)
	}

	status := 0
	c, err := NewWithConfig(func(code int) {
		prometheus.ShutDown()
		status = code
	}, &readline.Config{
		Stdout: ctx.App.Writer,
		Stderr: ctx.App.Writer,
	}, cfg, log)
	if err != nil {
		prometheus.ShutDown()
		return cli.NewExitError(err, 1)
	}
	if err := c.Run(); err != nil {
		prometheus.ShutDown()
		return cli.NewExitError(err, 1)
	}
	if status != 0 {
		return cli.NewExitError("", status)
	}
	return nil
}

func writeErr(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
}
