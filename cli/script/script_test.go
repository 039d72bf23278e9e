package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nspcc-dev/lineinterp/pkg/interp"
	"github.com/nspcc-dev/lineinterp/pkg/symbol"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

type executor struct {
	CLI *cli.App
	Out *bytes.Buffer
	Err *bytes.Buffer
	In  *bytes.Buffer
}

func newExecutor(t *testing.T) *executor {
	e := &executor{
		CLI: cli.NewApp(),
		Out: bytes.NewBuffer(nil),
		Err: bytes.NewBuffer(nil),
		In:  bytes.NewBuffer(nil),
	}
	e.CLI.Commands = NewCommands()
	e.CLI.Writer = e.Out
	e.CLI.ErrWriter = e.Err

	// Exit errors are printed to the package-level writer.
	errWriter, stdin := cli.ErrWriter, Stdin
	cli.ErrWriter, Stdin = e.Err, e.In
	t.Cleanup(func() {
		cli.ErrWriter, Stdin = errWriter, stdin
	})
	return e
}

func setExitFunc() <-chan int {
	ch := make(chan int, 1)
	cli.OsExiter = func(code int) {
		ch <- code
	}
	return ch
}

func checkExit(t *testing.T, ch <-chan int, code int) {
	select {
	case c := <-ch:
		require.Equal(t, code, c)
	default:
		if code != 0 {
			require.Fail(t, "no exit was called")
		}
	}
}

func (e *executor) Run(t *testing.T, args ...string) {
	ch := setExitFunc()
	require.NoError(t, e.CLI.Run(append([]string{"lineinterp", "run"}, args...)))
	checkExit(t, ch, 0)
}

func (e *executor) RunWithError(t *testing.T, args ...string) {
	ch := setExitFunc()
	require.Error(t, e.CLI.Run(append([]string{"lineinterp", "run"}, args...)))
	checkExit(t, ch, 1)
}

func TestRun(t *testing.T) {
	e := newExecutor(t)
	e.Run(t, "testdata/sample.li")
	require.Equal(t, "20\nHiThere\n", e.Out.String())
}

func TestRun_Errors(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		e := newExecutor(t)
		e.RunWithError(t)
		require.Contains(t, e.Err.String(), ErrMissingParameter.Error())
	})
	t.Run("too many files", func(t *testing.T) {
		e := newExecutor(t)
		e.RunWithError(t, "testdata/sample.li", "testdata/scan.li")
		require.Contains(t, e.Err.String(), ErrInvalidParameter.Error())
	})
	t.Run("missing file", func(t *testing.T) {
		e := newExecutor(t)
		e.RunWithError(t, "testdata/nonexistent.li")
		require.Contains(t, e.Err.String(), "failed to open script")
	})
	t.Run("bad config", func(t *testing.T) {
		e := newExecutor(t)
		e.RunWithError(t, "--config-file", "testdata/nonexistent.yml", "testdata/sample.li")
		require.Empty(t, e.Out.String())
	})
}

func TestRun_FailedStatement(t *testing.T) {
	t.Run("exit", func(t *testing.T) {
		e := newExecutor(t)
		e.RunWithError(t, "testdata/failing.li")
		require.Equal(t, "Error: Variable 'x' already declared\n", e.Out.String())
	})
	t.Run("continue", func(t *testing.T) {
		e := newExecutor(t)
		e.RunWithError(t, "--continue-on-error", "testdata/failing.li")
		require.Equal(t, "Error: Variable 'x' already declared\n"+
			"1\n"+
			"Error: Cannot concatenate non-string operand 'x'\n"+
			"1\n", e.Out.String())
	})
	t.Run("capacity", func(t *testing.T) {
		e := newExecutor(t)
		e.RunWithError(t, "--max-vars", "3", "testdata/sample.li")
		require.Equal(t, "Error: Too many variables: limit of 3 reached declaring 'd'\n", e.Out.String())
	})
}

func TestRun_Scanf(t *testing.T) {
	e := newExecutor(t)
	e.In.WriteString("21\n  Bob \n")
	e.Run(t, "testdata/scan.li")
	require.Equal(t, "Enter value for n: Enter value for name: 42\nBob\n", e.Out.String())
}

func TestExecute(t *testing.T) {
	newInterp := func(out *bytes.Buffer) *interp.Interpreter {
		return interp.New(symbol.NewTable(0), nil, out, nil)
	}

	t.Run("exit stops", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		failed, err := Execute(newInterp(out), strings.NewReader("int a = 1\nexit\nprint a\n"), out, false)
		require.NoError(t, err)
		require.Equal(t, 0, failed)
		require.Empty(t, out.String())
	})
	t.Run("exit is exact", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		failed, err := Execute(newInterp(out), strings.NewReader(" exit\nint a\n"), out, true)
		require.NoError(t, err)
		require.Equal(t, 1, failed)
		require.Equal(t, "Error: Invalid syntax\n", out.String())
	})
	t.Run("blank lines and CRLF", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		failed, err := Execute(newInterp(out), strings.NewReader("int a = 7\r\n\r\n\nprint a\r\n"), out, false)
		require.NoError(t, err)
		require.Equal(t, 0, failed)
		require.Equal(t, "7\n", out.String())
	})
	t.Run("scanf without input", func(t *testing.T) {
		out := bytes.NewBuffer(nil)
		failed, err := Execute(newInterp(out), strings.NewReader("int a\nscanf a\n"), out, false)
		require.NoError(t, err)
		require.Equal(t, 1, failed)
		require.True(t, strings.HasPrefix(out.String(), "Error: "))
	})
}
