package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cuoral/internal/launcher"
)

// Application branding
const (
	AppName    = "Cuoral"
	ModalTitle = "Chat with us"
	CloseGlyph = "✖"
)

// Color palette. The accent is configurable; everything else is fixed.
var (
	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
	ErrorColor     = lipgloss.Color("#FF5555")
	HighlightColor = lipgloss.Color("#43BF6D")
	ShadeColor     = lipgloss.Color("240")
)

var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PageTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(2)

	SelectedLinkStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)
)

// theme holds the accent-dependent styles of one launcher
type theme struct {
	accent   lipgloss.Color
	fab      lipgloss.Style
	modal    lipgloss.Style
	title    lipgloss.Style
	closeBtn lipgloss.Style
	spinner  lipgloss.Style
}

func newTheme(opts launcher.State) theme {
	accent := lipgloss.Color(opts.AccentColor)
	return theme{
		accent: accent,
		fab: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Foreground(accent).
			Padding(0, 1),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		closeBtn: lipgloss.NewStyle().
			Foreground(SubtleColor).
			Bold(true),
		spinner: lipgloss.NewStyle().
			Foreground(accent),
	}
}

// renderFAB draws the floating launcher button around the icon
func (t theme) renderFAB(icon launcher.Renderable) string {
	return t.fab.Render(icon.Render())
}

// RenderModal centers modal content over a dimmed background
func RenderModal(modalContent string, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(ShadeColor),
	)
}
