package tui

import (
	"github.com/muurk/cuoral/internal/launcher"
)

// Screen margins around the launcher button, in cells
const (
	marginRows = 1
	marginCols = 2
	helpRows   = 1
)

// Modal size bounds
const (
	maxModalWidth  = 76
	minModalWidth  = 30
	maxModalHeight = 30
	minModalHeight = 8
)

// region is what a mouse click landed on
type region int

const (
	regionNone region = iota
	regionLauncher
	regionClose
	regionContent
	regionBackground
)

func (r region) String() string {
	switch r {
	case regionLauncher:
		return "launcher"
	case regionClose:
		return "close"
	case regionContent:
		return "content"
	case regionBackground:
		return "background"
	default:
		return "none"
	}
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// stageHeight is the drawable height above the help bar
func stageHeight(height int) int {
	return max(height-helpRows, 0)
}

// launcherRect places a button of fabW x fabH in the configured corner
func launcherRect(pos launcher.Position, fabW, fabH, width, height int) rect {
	x := width - marginCols - fabW
	if pos.IsLeft() {
		x = marginCols
	}
	y := stageHeight(height) - marginRows - fabH
	if pos.IsTop() {
		y = marginRows
	}
	return rect{x: x, y: y, w: fabW, h: fabH}
}

// modalRect returns the modal's box, centered in the stage. Both gaps are
// kept even so centering never has to round.
func modalRect(width, height int) rect {
	stage := stageHeight(height)

	w := min(width-8, maxModalWidth)
	if w < minModalWidth {
		w = min(width, minModalWidth)
	}
	h := min(stage-4, maxModalHeight)
	if h < minModalHeight {
		h = min(stage, minModalHeight)
	}

	if (width-w)%2 != 0 {
		w--
	}
	if (stage-h)%2 != 0 {
		h--
	}

	return rect{x: (width - w) / 2, y: (stage - h) / 2, w: w, h: h}
}

// closeRect is the clickable area around the close glyph in the modal
// header (first row inside the border, right edge).
func closeRect(modal rect) rect {
	return rect{x: modal.x + modal.w - 5, y: modal.y + 1, w: 4, h: 1}
}
