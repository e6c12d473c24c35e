package session

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/cuoral/internal/logging"
	"github.com/muurk/cuoral/internal/widget"
)

// Controller owns the lifecycle state of one widget session. It is driven
// by the address builder result and by surface events, and is not safe for
// concurrent use: all calls come from the host's event loop.
type Controller struct {
	id      string
	config  widget.IdentityConfig
	address widget.WidgetAddress
	state   State
	err     *widget.Error
	hidden  bool
}

// New creates a session for the given identity. The session starts in
// Loading if the identity is valid, otherwise in Error with the validation
// message.
func New(cfg widget.IdentityConfig) *Controller {
	c := &Controller{id: uuid.NewString()}
	c.construct(cfg)
	return c
}

// NewHidden creates an inert session for a surface that is explicitly
// hidden. It stays Idle and ignores every event.
func NewHidden() *Controller {
	return &Controller{
		id:     uuid.NewString(),
		state:  Idle(),
		hidden: true,
	}
}

// ID returns the unique session identifier
func (c *Controller) ID() string {
	return c.id
}

// State returns the current session state
func (c *Controller) State() State {
	return c.state
}

// Address returns the widget address, or "" when the identity is invalid
// or the session is hidden.
func (c *Controller) Address() widget.WidgetAddress {
	return c.address
}

// Identity returns the identity the session was constructed with
func (c *Controller) Identity() widget.IdentityConfig {
	return c.config
}

// Err returns the typed error behind the Error state, or nil
func (c *Controller) Err() *widget.Error {
	if c.state.Phase != PhaseError {
		return nil
	}
	return c.err
}

// Reconfigure discards the current state and re-runs construction with a
// new identity. The session ID is kept.
func (c *Controller) Reconfigure(cfg widget.IdentityConfig) {
	from := c.state
	c.construct(cfg)
	logging.LogSessionTransition(c.id, from.String(), c.state.String(), "reconfigure")
}

func (c *Controller) construct(cfg widget.IdentityConfig) {
	c.config = cfg
	c.hidden = false
	c.address = ""
	c.err = nil

	addr, err := widget.BuildAddress(cfg)
	if err != nil {
		c.fail(asWidgetError(err))
		return
	}
	c.address = addr
	c.state = Loading()
}

// Apply feeds a surface event into the state machine and reports whether
// the state changed. Events that have no transition from the current state
// are ignored.
func (c *Controller) Apply(ev Event) bool {
	if c.hidden {
		return false
	}
	// A validation failure is terminal until Reconfigure
	if c.err != nil && c.err.Type == widget.ErrTypeValidation {
		logging.Debug("Ignoring surface event for invalid identity",
			zap.String("session_id", c.id),
			zap.Stringer("event", ev),
		)
		return false
	}

	from := c.state
	next, werr, ok := transition(from, ev)
	if !ok {
		logging.Debug("Surface event has no transition",
			zap.String("session_id", c.id),
			zap.String("state", from.String()),
			zap.Stringer("event", ev),
		)
		return false
	}

	c.state = next
	c.err = werr
	logging.LogSessionTransition(c.id, from.String(), next.String(), ev.String())
	return from != next
}

// transition is the pure transition function of the session state machine
func transition(from State, ev Event) (State, *widget.Error, bool) {
	switch e := ev.(type) {
	case LoadStarted:
		switch from.Phase {
		case PhaseLoading, PhaseLoaded, PhaseError:
			return Loading(), nil, true
		}

	case LoadFinished:
		if from.Phase == PhaseLoading {
			return Loaded(), nil, true
		}

	case LoadFailed:
		if from.Phase == PhaseLoading {
			werr := widget.NewLoadError(e.Description, e.Code)
			return Failed(werr.Reason()), werr, true
		}

	case HTTPError:
		if from.Phase == PhaseLoading {
			werr := widget.NewHTTPError(e.StatusCode, e.Description)
			return Failed(werr.Reason()), werr, true
		}
	}

	return from, nil, false
}

func (c *Controller) fail(werr *widget.Error) {
	c.err = werr
	c.state = Failed(werr.Reason())
}

func asWidgetError(err error) *widget.Error {
	if werr, ok := err.(*widget.Error); ok {
		return werr
	}
	return widget.NewValidationError(err.Error())
}
