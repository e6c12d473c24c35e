// Package ui renders the run-once output of the cuoral-launcher
// subcommands (address, nav, scan, config).
//
// Output is built from Lipgloss boxes: a Header banner naming the
// command, then one Result per outcome. Results come in three flavours:
//
//   - success: the widget address was built, a URL stays in the surface
//   - failure: validation or transport errors, with hints
//   - external: a URL the launcher hands to the system browser
//
// Widths follow the terminal (golang.org/x/term) clamped to 60..100
// columns. Logging stays silent unless CUORAL_LOG_LEVEL is set, so these
// boxes are the only thing printed.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Widget address", "cuoral-launcher address")
//	p.PrintSuccess("Address ready", ui.Detail{Key: "URL", Value: addr})
package ui
