// Package logging provides structured logging for the cuoral launcher.
//
// This package wraps a global zap logger with convenience functions for
// common logging patterns, plus domain helpers for widget sessions, the
// navigation gate and the renderer bridge.
//
// # Log Levels
//
//   - Debug: Session transitions, ignored events, bridge message bodies
//   - Info: Session mount/unmount, navigation decisions, bridge connections
//   - Warn: Non-fatal issues (unknown bridge messages, opener failures)
//   - Error: Startup failures
//
// # Silent By Default
//
// Logging is silent unless a level is passed to Initialize or the
// CUORAL_LOG_LEVEL environment variable is set. The terminal launcher
// draws on stdout, so it initializes with a file output:
//
//	if err := logging.InitializeWithOutput(level, "/tmp/cuoral.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.LogNavigation(sessionID, "https://example.com", "delegate-externally")
//	logging.LogSessionTransition(sessionID, "loading", "loaded", "load-finished")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once initialized.
// Initialize itself should be called once at startup.
package logging
