package config

import (
	"github.com/muurk/cuoral/internal/launcher"
	"github.com/muurk/cuoral/internal/widget"
)

// CurrentVersion is the settings file format version
const CurrentVersion = 1

// DefaultBridgeListen is the bridge listen address when none is configured
const DefaultBridgeListen = "127.0.0.1:8765"

// Settings is the whole user configuration file
type Settings struct {
	Version  int                   `yaml:"version"`
	Identity widget.IdentityConfig `yaml:"identity"`
	Launcher LauncherPrefs         `yaml:"launcher"`
	Bridge   BridgePrefs           `yaml:"bridge"`
}

// LauncherPrefs holds the presentation options of the launcher button.
// Empty values mean "use the default".
type LauncherPrefs struct {
	AccentColor string `yaml:"accent_color,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
	Position    string `yaml:"position,omitempty"`
	Hidden      bool   `yaml:"hidden,omitempty"`
}

// BridgePrefs configures the WebSocket bridge served by "serve"
type BridgePrefs struct {
	Listen    string `yaml:"listen,omitempty"`
	Advertise bool   `yaml:"advertise,omitempty"`
}

// NewSettings returns settings with defaults and an empty identity
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Launcher: LauncherPrefs{
			AccentColor: launcher.DefaultAccentColor,
			Icon:        launcher.DefaultIconText,
			Position:    launcher.DefaultPosition.String(),
		},
		Bridge: BridgePrefs{
			Listen: DefaultBridgeListen,
		},
	}
}

// LauncherOptions converts the settings into overlay options
func (s *Settings) LauncherOptions() launcher.Options {
	opts := launcher.DefaultOptions()
	opts.Identity = s.Identity
	opts.Visible = !s.Launcher.Hidden
	opts.Position = launcher.ParsePosition(s.Launcher.Position)
	if s.Launcher.AccentColor != "" {
		opts.AccentColor = s.Launcher.AccentColor
	}
	if s.Launcher.Icon != "" {
		opts.Icon = launcher.TextIcon(s.Launcher.Icon)
	}
	return opts
}

// BridgeListen returns the configured listen address or the default
func (s *Settings) BridgeListen() string {
	if s.Bridge.Listen == "" {
		return DefaultBridgeListen
	}
	return s.Bridge.Listen
}
