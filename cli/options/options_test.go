package options

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/lineinterp/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
	"go.uber.org/zap/zapcore"
)

func TestGetConfigFromContext(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		cfg, err := GetConfigFromContext(ctx)
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.Bool("continue-on-error", true, "")
		set.Int("max-vars", 0, "")
		require.NoError(t, set.Parse([]string{"--max-vars", "100"}))
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		cfg, err := GetConfigFromContext(ctx)
		require.NoError(t, err)
		require.Equal(t, config.ErrorPolicyContinue, cfg.Interpreter.OnError)
		require.Equal(t, 100, cfg.Interpreter.MaxVariables)
	})

	t.Run("file", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.String("config-file", filepath.Join("..", "..", "config", "lineinterp.yml"), "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		cfg, err := GetConfigFromContext(ctx)
		require.NoError(t, err)
		require.Equal(t, config.ErrorPolicyExit, cfg.Interpreter.OnError)
	})

	t.Run("missing file", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.String("config-file", filepath.Join(t.TempDir(), "nope.yml"), "")
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		_, err := GetConfigFromContext(ctx)
		require.Error(t, err)
	})

	t.Run("invalid override", func(t *testing.T) {
		set := flag.NewFlagSet("flagSet", flag.ExitOnError)
		set.Int("max-vars", 0, "")
		require.NoError(t, set.Parse([]string{"--max-vars", "-1"}))
		ctx := cli.NewContext(cli.NewApp(), set, nil)
		_, err := GetConfigFromContext(ctx)
		require.Error(t, err)
	})
}

func TestHandleLoggingParams(t *testing.T) {
	d := t.TempDir()

	t.Run("logdir is a file", func(t *testing.T) {
		logfile := filepath.Join(d, "logdir")
		require.NoError(t, os.WriteFile(logfile, []byte{1, 2, 3}, os.ModePerm))
		cfg := config.ApplicationConfiguration{
			LogPath: filepath.Join(logfile, "file.log"),
		}
		_, err := HandleLoggingParams(false, cfg)
		require.Error(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath:  filepath.Join(d, "file.log"),
			LogLevel: "qwerty",
		}
		_, err := HandleLoggingParams(false, cfg)
		require.Error(t, err)
	})

	t.Run("default", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath: filepath.Join(d, "file.log"),
		}
		logger, err := HandleLoggingParams(false, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = logger.Sync() })
		require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("level from config", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath:  filepath.Join(d, "warn.log"),
			LogLevel: "warn",
		}
		logger, err := HandleLoggingParams(false, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = logger.Sync() })
		require.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("debug", func(t *testing.T) {
		cfg := config.ApplicationConfiguration{
			LogPath:  filepath.Join(d, "sub", "file.log"),
			LogLevel: "warn",
		}
		logger, err := HandleLoggingParams(true, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = logger.Sync() })
		require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})
}
