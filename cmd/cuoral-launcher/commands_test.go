package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/muurk/cuoral/internal/config"
	"github.com/muurk/cuoral/internal/logging"
	"github.com/muurk/cuoral/internal/widget"
)

// testFlags binds the identity and launcher flags to a fresh set
func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVar(&publicKey, "public-key", "", "")
	fs.StringVar(&email, "email", "", "")
	fs.StringVar(&firstName, "first-name", "", "")
	fs.StringVar(&lastName, "last-name", "", "")
	fs.StringVar(&accentColor, "accent-color", "", "")
	fs.StringVar(&position, "position", "", "")
	fs.BoolVar(&hidden, "hidden", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func testCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	t.Cleanup(func() { configPath = "" })
	return cmd, &out
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CUORAL_PUBLIC_KEY", "CUORAL_EMAIL", "CUORAL_FIRST_NAME", "CUORAL_LAST_NAME",
		"CUORAL_ACCENT_COLOR", "CUORAL_ICON", "CUORAL_POSITION", "CUORAL_HIDDEN", "CUORAL_BRIDGE_LISTEN",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestApplyFlagsOnlyChanged(t *testing.T) {
	s := config.NewSettings()
	s.Identity = widget.IdentityConfig{PublicKey: "pk_file", Email: "file@example.com"}
	s.Launcher.Hidden = true

	applyFlags(testFlags(t, "--public-key", "pk_flag", "--position", "top-left"), s)

	assert.Equal(t, "pk_flag", s.Identity.PublicKey)
	assert.Equal(t, "file@example.com", s.Identity.Email, "unset flag must not clobber file value")
	assert.Equal(t, "top-left", s.Launcher.Position)
	assert.True(t, s.Launcher.Hidden)
}

func TestApplyFlagsHiddenFalse(t *testing.T) {
	s := config.NewSettings()
	s.Launcher.Hidden = true

	applyFlags(testFlags(t, "--hidden=false"), s)

	assert.False(t, s.Launcher.Hidden)
}

func TestRunAddressFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CUORAL_PUBLIC_KEY", "pk_env")
	cmd, out := testCommand(t)

	require.NoError(t, runAddress(cmd, nil))
	assert.Contains(t, out.String(), "pk_env")
}

func TestRunAddressMissingKey(t *testing.T) {
	clearEnv(t)
	cmd, out := testCommand(t)

	err := runAddress(cmd, nil)
	require.Error(t, err)
	assert.True(t, widget.IsValidationError(err))
	assert.Contains(t, out.String(), "CUORAL_PUBLIC_KEY")
}

func TestRunNav(t *testing.T) {
	cmd, out := testCommand(t)

	require.NoError(t, runNav(cmd, []string{
		"https://js.cuoral.com/mobile.html?auto_display=true",
		"https://example.com/help",
	}))

	assert.Contains(t, out.String(), "stay-inside")
	assert.Contains(t, out.String(), "delegate-externally")
}

func TestConfigInitWritesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CUORAL_PUBLIC_KEY", "pk_saved")
	cmd, out := testCommand(t)

	require.NoError(t, runConfigInit(cmd, nil))
	assert.Contains(t, out.String(), "Configuration saved")

	saved, err := config.LoadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "pk_saved", saved.Identity.PublicKey)
}

func TestInitLoggingSilentForLauncher(t *testing.T) {
	t.Setenv(logging.LogLevelEnvVar, "debug")
	t.Cleanup(func() { logging.SetLogger(zap.NewNop()) })
	logFile, logLevel = "", "debug"
	t.Cleanup(func() { logFile, logLevel = "", "" })

	require.NoError(t, initLogging(rootCmd))
	assert.False(t, logging.GetLogger().Core().Enabled(zapcore.ErrorLevel),
		"the full-screen launcher must not log to stdout")
}

func TestInitLoggingSubcommand(t *testing.T) {
	t.Cleanup(func() { logging.SetLogger(zap.NewNop()) })
	logFile = filepath.Join(t.TempDir(), "cuoral.log")
	logLevel = "debug"
	t.Cleanup(func() { logFile, logLevel = "", "" })

	parent := &cobra.Command{Use: "root"}
	child := &cobra.Command{Use: "serve"}
	parent.AddCommand(child)

	require.NoError(t, initLogging(child))
	assert.True(t, logging.GetLogger().Core().Enabled(zapcore.DebugLevel))

	// A log file makes the launcher itself log too
	require.NoError(t, initLogging(parent))
	assert.True(t, logging.GetLogger().Core().Enabled(zapcore.DebugLevel))
}
