package launcher

import (
	"go.uber.org/zap"

	"github.com/muurk/cuoral/internal/logging"
	"github.com/muurk/cuoral/internal/navigation"
	"github.com/muurk/cuoral/internal/session"
	"github.com/muurk/cuoral/internal/widget"
)

// ExternalOpener is the host's facility for opening a URL outside the
// embedded surface (the system browser, a new tab, ...).
type ExternalOpener interface {
	OpenURL(url string) error
}

// OpenerFunc adapts a function to ExternalOpener
type OpenerFunc func(url string) error

// OpenURL implements ExternalOpener
func (f OpenerFunc) OpenURL(url string) error {
	return f(url)
}

// Overlay owns the launcher button and the modal. A session controller
// exists exactly while the modal is open; closing the modal drops it, and
// events tagged with a dropped session's ID are ignored.
//
// Overlay is not safe for concurrent use; the rendering layer drives it
// from its event loop.
type Overlay struct {
	opts      Options
	modalOpen bool
	session   *session.Controller
	gate      *navigation.Gate
	opener    ExternalOpener
}

// NewOverlay creates a closed overlay. opener may be nil, in which case
// external navigations are refused but not opened anywhere.
func NewOverlay(opts Options, opener ExternalOpener) *Overlay {
	return &Overlay{
		opts:   opts.withDefaults(),
		gate:   navigation.NewGate(),
		opener: opener,
	}
}

// SetGate replaces the navigation gate (self-hosted widget deployments)
func (o *Overlay) SetGate(g *navigation.Gate) {
	o.gate = g
}

// State returns the launcher state
func (o *Overlay) State() State {
	return State{
		Visible:     o.opts.Visible,
		ModalOpen:   o.modalOpen,
		Position:    o.opts.Position,
		AccentColor: o.opts.AccentColor,
		Icon:        o.opts.Icon,
	}
}

// Options returns the current options
func (o *Overlay) Options() Options {
	return o.opts
}

// Session returns the live session, or nil when the modal is closed
func (o *Overlay) Session() *session.Controller {
	return o.session
}

// TapLauncher opens the modal and mounts a fresh session for the current
// identity. Tapping while already open keeps the live session. Returns the
// live session, or nil when the launcher is hidden.
func (o *Overlay) TapLauncher() *session.Controller {
	if !o.opts.Visible {
		return nil
	}
	if o.modalOpen {
		return o.session
	}

	o.modalOpen = true
	o.session = session.New(o.opts.Identity)
	logging.LogSessionLifecycle(o.session.ID(), "mounted")
	return o.session
}

// TapBackground handles a tap on the dimmed area around the modal content.
// It closes the modal; returns whether anything changed.
func (o *Overlay) TapBackground() bool {
	return o.Close()
}

// TapContent handles a tap inside the modal content region. It never
// closes the modal.
func (o *Overlay) TapContent() bool {
	return false
}

// Close closes the modal through its close control and drops the session.
// Returns whether the modal was open.
func (o *Overlay) Close() bool {
	if !o.modalOpen {
		return false
	}

	if o.session != nil {
		logging.LogSessionLifecycle(o.session.ID(), "unmounted")
	}
	o.modalOpen = false
	o.session = nil
	return true
}

// IsLive reports whether sessionID names the currently mounted session
func (o *Overlay) IsLive(sessionID string) bool {
	return o.opts.Visible && o.session != nil && o.session.ID() == sessionID
}

// Deliver routes a surface event to the session it was produced for.
// Events for a session that is no longer mounted are dropped. Returns
// whether the event was applied to the live session.
func (o *Overlay) Deliver(sessionID string, ev session.Event) bool {
	if !o.IsLive(sessionID) {
		logging.Debug("Dropping event for unmounted session",
			zap.String("session_id", sessionID),
			zap.Stringer("event", ev),
		)
		return false
	}
	o.session.Apply(ev)
	return true
}

// RequestNavigation runs the navigation gate for a link activated inside
// the surface of the given session. It returns true when the surface may
// load the target itself. Otherwise the target has been handed to the
// external opener (once) and the surface must not load it.
func (o *Overlay) RequestNavigation(sessionID, target string) bool {
	if !o.IsLive(sessionID) {
		logging.Debug("Dropping navigation for unmounted session",
			zap.String("session_id", sessionID),
			zap.String("target", target),
		)
		return false
	}

	decision := o.gate.Decide(target)
	logging.LogNavigation(sessionID, target, decision.String())

	if decision.AllowsLoad() {
		return true
	}

	if o.opener != nil {
		if err := o.opener.OpenURL(target); err != nil {
			logging.Warn("External opener failed",
				zap.String("target", target),
				zap.Error(err),
			)
		}
	}
	return false
}

// SetIdentity replaces the identity used for future opens. With the modal
// open, the live session is reconfigured in place.
func (o *Overlay) SetIdentity(cfg widget.IdentityConfig) {
	o.opts.Identity = cfg
	if o.session != nil {
		o.session.Reconfigure(cfg)
	}
}

// SetVisible shows or hides the launcher. Hiding closes an open modal.
func (o *Overlay) SetVisible(visible bool) {
	if !visible {
		o.Close()
	}
	o.opts.Visible = visible
}
