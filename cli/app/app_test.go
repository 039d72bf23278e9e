package app

import (
	"bytes"
	"testing"

	"github.com/nspcc-dev/lineinterp/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestCLIVersion(t *testing.T) {
	config.Version = "0.1.0-test"
	out := bytes.NewBuffer(nil)
	ctl := New()
	ctl.Version = config.Version
	ctl.Writer = out
	require.NoError(t, ctl.Run([]string{"lineinterp", "--version"}))
	require.Regexp(t, "^lineinterp\nVersion: 0.1.0-test\nGoVersion: go", out.String())
}

func TestCommands(t *testing.T) {
	ctl := New()
	for _, name := range []string{"repl", "run"} {
		require.NotNil(t, ctl.Command(name), name)
	}
	require.NotNil(t, ctl.Action)
}

func TestRunScript(t *testing.T) {
	out := bytes.NewBuffer(nil)
	ctl := New()
	ctl.Writer = out
	require.NoError(t, ctl.Run([]string{"lineinterp", "run", "../script/testdata/sample.li"}))
	require.Equal(t, "20\nHiThere\n", out.String())
}
