// Cuoral-launcher runs the Cuoral chat widget launcher in a terminal.
//
// Without a subcommand it shows the floating launcher button; activating it
// opens the chat modal and loads the widget for the configured identity.
// The serve command exposes the same launcher core to remote renderers over
// WebSocket.
//
// Usage:
//
//	cuoral-launcher [command] [flags]
//
// See 'cuoral-launcher --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/cuoral/internal/logging"
	"github.com/muurk/cuoral/internal/urls"
	"github.com/muurk/cuoral/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cuoral-launcher",
	Short: "Cuoral chat widget launcher",
	Long: `A floating chat launcher for the Cuoral support widget.

Press enter or click the launcher button to open the chat modal. The widget
loads inside the modal for the configured identity; links leaving the
widget are opened in your browser.

Identity and appearance come from the config file, CUORAL_* environment
variables and flags, in increasing order of precedence.

Project home: ` + urls.ProjectHome,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd)
	},
	RunE: runLauncher,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
