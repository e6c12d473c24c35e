// Package tui is the terminal host for the chat launcher, built on Bubble
// Tea.
//
// The screen has two modes. While closed it shows only the floating
// launcher button, pinned to the configured corner with a one-row,
// two-column margin. Opening it (enter, or a click on the button) mounts
// a session in the launcher.Overlay and draws the modal centered over a
// dimmed background:
//
//	░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░
//	░░╭──────────────────────────────╮░░░
//	░░│ Chat with us               ✖ │░░░
//	░░│ ──────────────────────────── │░░░
//	░░│ ⣾ Loading chat…              │░░░
//	░░╰──────────────────────────────╯░░░
//	░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░
//
// Clicking the shaded area or the ✖ cell closes the modal; clicks inside
// the modal do not. The surface is a surface.Loader running in a tea.Cmd.
// Its notifications come back as one message tagged with the session ID
// and are handed to the overlay, which discards them if the modal was
// closed in the meantime.
//
// Once a page has loaded its links can be selected and followed. The
// overlay's navigation gate decides: widget links load in the modal,
// everything else opens in the system browser.
//
// # Keys
//
//	enter/o   open the chat (closed) or follow the selected link (open)
//	↑/↓ j/k   select a link
//	r         reload the current address
//	e         set the public key (reconfigures an open session in place)
//	x/esc     close the modal
//	q         quit
package tui
