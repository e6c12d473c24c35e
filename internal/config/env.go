package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides mirrors the settings that may come from the environment.
// Unset variables leave the file values alone.
type envOverrides struct {
	PublicKey   string `env:"CUORAL_PUBLIC_KEY"`
	Email       string `env:"CUORAL_EMAIL"`
	FirstName   string `env:"CUORAL_FIRST_NAME"`
	LastName    string `env:"CUORAL_LAST_NAME"`
	AccentColor string `env:"CUORAL_ACCENT_COLOR"`
	Icon        string `env:"CUORAL_ICON"`
	Position    string `env:"CUORAL_POSITION"`
	Hidden      *bool  `env:"CUORAL_HIDDEN"`
	Listen      string `env:"CUORAL_BRIDGE_LISTEN"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv overlays CUORAL_* environment variables onto s
func (s *Settings) ApplyEnv() error {
	var o envOverrides
	if err := ParseEnv(&o); err != nil {
		return err
	}

	setIfPresent(&s.Identity.PublicKey, o.PublicKey)
	setIfPresent(&s.Identity.Email, o.Email)
	setIfPresent(&s.Identity.FirstName, o.FirstName)
	setIfPresent(&s.Identity.LastName, o.LastName)
	setIfPresent(&s.Launcher.AccentColor, o.AccentColor)
	setIfPresent(&s.Launcher.Icon, o.Icon)
	setIfPresent(&s.Launcher.Position, o.Position)
	setIfPresent(&s.Bridge.Listen, o.Listen)
	if o.Hidden != nil {
		s.Launcher.Hidden = *o.Hidden
	}
	return nil
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
