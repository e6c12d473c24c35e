package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detail is one key/value line of a result box. Details render in the
// order given.
type Detail struct {
	Key   string
	Value string
}

// ResultType selects the colour and marker of a result box
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultExternal
)

// Result is a boxed outcome: a title, details, and for failures the error
// and hints on fixing it.
type Result struct {
	Type    ResultType
	Title   string
	Details []Detail
	Error   error
	Hints   []string
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Detail) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hints ...string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Hints: hints, Width: GetTerminalWidth()}
}

// NewExternalResult creates a box for a URL handed to the system browser
func NewExternalResult(title string, details ...Detail) *Result {
	return &Result{Type: ResultExternal, Title: title, Details: details, Width: GetTerminalWidth()}
}

// SetWidth sets the width used for rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail line
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// Render returns the styled result box
func (r *Result) Render() string {
	width := clampWidth(r.Width)

	var title string
	var color lipgloss.Color
	switch r.Type {
	case ResultFailure:
		title = ErrorTitleStyle.Render(FailureMarker + "  FAILED  ─  " + r.Title)
		color = ErrorColor
	case ResultExternal:
		title = WarningTitleStyle.Render(ExternalMarker + "  EXTERNAL  ─  " + r.Title)
		color = WarningColor
	default:
		title = SuccessTitleStyle.Render(SuccessMarker + "  " + r.Title)
		color = SuccessColor
	}

	lines := []string{title, ""}

	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render(d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+r.Error.Error()))
	}

	if len(r.Hints) > 0 {
		hintLines := []string{HintTitleStyle.Render("Try:")}
		for _, hint := range r.Hints {
			hintLines = append(hintLines, HintItemStyle.Render("  • "+hint))
		}
		lines = append(lines, "", HintBoxStyle(width).Render(strings.Join(hintLines, "\n")))
	}

	return ResultBoxStyle(width, color).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
