// Package launcher models the floating chat button and the modal overlay
// it opens.
//
// The Overlay is the only owner of a session.Controller. Tapping the
// launcher mounts a fresh controller (and with it a fresh session ID);
// closing the modal, by the close control or by tapping the dimmed
// background, drops it. Nothing carries over between opens.
//
// Rendering layers feed the overlay two kinds of input:
//
//   - taps: TapLauncher, TapBackground, TapContent and Close
//   - surface notifications tagged with the session ID they belong to:
//     Deliver for load events and RequestNavigation for link activations
//
// Tagging lets the overlay discard notifications from a surface that has
// already been torn down, so a late "load finished" can never resurrect a
// closed session.
//
// Usage:
//
//	opts := launcher.DefaultOptions()
//	opts.Identity = widget.IdentityConfig{PublicKey: "pk_live"}
//	overlay := launcher.NewOverlay(opts, surface.BrowserOpener{})
//
//	s := overlay.TapLauncher()
//	overlay.Deliver(s.ID(), session.LoadFinished{})
//	if overlay.RequestNavigation(s.ID(), "https://example.com") {
//		// load inside the surface
//	}
package launcher
