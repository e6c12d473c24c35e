// Package config manages the launcher's user settings.
//
// Settings live in a YAML file at an OS-specific location:
//   - Linux: $XDG_CONFIG_HOME/cuoral/config.yaml or $HOME/.config/cuoral/config.yaml
//   - macOS: $HOME/.config/cuoral/config.yaml
//   - Windows: %LOCALAPPDATA%\cuoral\config.yaml
//
// The file holds the widget identity (public key and optional user
// details), the launcher presentation (accent colour, icon, corner,
// visibility) and the bridge listen address:
//
//	version: 1
//	identity:
//	  public_key: pk_live_123
//	  email: jane@example.com
//	launcher:
//	  accent_color: "#2196F3"
//	  position: bottomRight
//	bridge:
//	  listen: 127.0.0.1:8765
//
// # Precedence
//
// Load reads the file and then applies CUORAL_* environment variables
// (CUORAL_PUBLIC_KEY, CUORAL_EMAIL, CUORAL_FIRST_NAME, CUORAL_LAST_NAME,
// CUORAL_ACCENT_COLOR, CUORAL_ICON, CUORAL_POSITION, CUORAL_HIDDEN,
// CUORAL_BRIDGE_LISTEN). Command-line flags are applied on top by the
// caller. Missing files are not an error; defaults are used.
//
// Save writes atomically (temporary file plus rename) with 0600
// permissions. Nothing is persisted about chat sessions.
package config
