package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/muurk/cuoral/internal/config"
	"github.com/muurk/cuoral/internal/logging"
)

// Global flags
var (
	configPath  string
	logLevel    string
	logFile     string
	publicKey   string
	email       string
	firstName   string
	lastName    string
	accentColor string
	position    string
	hidden      bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default is the per-user config location)")
	pf.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stdout")

	pf.StringVar(&publicKey, "public-key", "", "Widget public key")
	pf.StringVar(&email, "email", "", "User email passed to the widget")
	pf.StringVar(&firstName, "first-name", "", "User first name passed to the widget")
	pf.StringVar(&lastName, "last-name", "", "User last name passed to the widget")
	pf.StringVar(&accentColor, "accent-color", "", "Launcher accent colour (e.g. #2196F3)")
	pf.StringVar(&position, "position", "", "Launcher corner (bottom-right, bottom-left, top-right, top-left)")
	pf.BoolVar(&hidden, "hidden", false, "Start with the launcher hidden")
}

// initLogging sets up the global logger. The terminal launcher draws on
// stdout, so without --log-file it stays silent.
func initLogging(cmd *cobra.Command) error {
	if !cmd.HasParent() && logFile == "" {
		logging.SetLogger(zap.NewNop())
		return nil
	}
	return logging.InitializeWithOutput(logLevel, logFile)
}

// loadSettings resolves file, environment and flags, in that order
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd.Flags(), settings)
	return settings, nil
}

// applyFlags overlays flags the user actually set
func applyFlags(flags *pflag.FlagSet, s *config.Settings) {
	setString := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}

	setString("public-key", &s.Identity.PublicKey, publicKey)
	setString("email", &s.Identity.Email, email)
	setString("first-name", &s.Identity.FirstName, firstName)
	setString("last-name", &s.Identity.LastName, lastName)
	setString("accent-color", &s.Launcher.AccentColor, accentColor)
	setString("position", &s.Launcher.Position, position)
	if flags.Changed("hidden") {
		s.Launcher.Hidden = hidden
	}
}
