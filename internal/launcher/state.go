package launcher

import (
	"strings"

	"github.com/muurk/cuoral/internal/widget"
)

// Position is the corner the launcher button is pinned to
type Position int

const (
	BottomRight Position = iota
	BottomLeft
	TopRight
	TopLeft
)

// Defaults for the public configuration surface
const (
	DefaultAccentColor = "#2196F3" // Material blue accent
	DefaultIconText    = "💬"
	DefaultPosition    = BottomRight
)

// String returns the configuration name of the position
func (p Position) String() string {
	switch p {
	case TopLeft:
		return "topLeft"
	case TopRight:
		return "topRight"
	case BottomLeft:
		return "bottomLeft"
	default:
		return "bottomRight"
	}
}

// IsTop reports whether the button sits on the top edge
func (p Position) IsTop() bool {
	return p == TopLeft || p == TopRight
}

// IsLeft reports whether the button sits on the left edge
func (p Position) IsLeft() bool {
	return p == TopLeft || p == BottomLeft
}

// ParsePosition parses a position name. It accepts "bottomRight",
// "bottom-right", "BOTTOM_RIGHT" and similar spellings; anything
// unrecognized falls back to BottomRight.
func ParsePosition(s string) Position {
	normalized := strings.ToLower(s)
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)

	switch normalized {
	case "topleft":
		return TopLeft
	case "topright":
		return TopRight
	case "bottomleft":
		return BottomLeft
	default:
		return BottomRight
	}
}

// Renderable is any content the rendering layer can draw in the launcher
// button. Hosts inject their own to override the default chat glyph.
type Renderable interface {
	Render() string
}

// TextIcon is a Renderable made of plain text
type TextIcon string

// Render implements Renderable
func (t TextIcon) Render() string {
	return string(t)
}

// Options is the public configuration surface of the launcher
type Options struct {
	Identity    widget.IdentityConfig
	AccentColor string
	Icon        Renderable
	Visible     bool
	Position    Position
}

// DefaultOptions returns options with every default applied and an empty
// identity.
func DefaultOptions() Options {
	return Options{
		AccentColor: DefaultAccentColor,
		Icon:        TextIcon(DefaultIconText),
		Visible:     true,
		Position:    DefaultPosition,
	}
}

// withDefaults fills unset presentation fields
func (o Options) withDefaults() Options {
	if o.AccentColor == "" {
		o.AccentColor = DefaultAccentColor
	}
	if o.Icon == nil {
		o.Icon = TextIcon(DefaultIconText)
	}
	return o
}

// State is the observable launcher state the rendering layer draws
type State struct {
	Visible     bool
	ModalOpen   bool
	Position    Position
	AccentColor string
	Icon        Renderable
}
