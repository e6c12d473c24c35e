package bridge

import (
	"github.com/muurk/cuoral/internal/launcher"
	"github.com/muurk/cuoral/internal/session"
	"github.com/muurk/cuoral/internal/widget"
)

// Client message types
const (
	TypeTapLauncher   = "tap_launcher"
	TypeTapBackground = "tap_background"
	TypeTapContent    = "tap_content"
	TypeClose         = "close"
	TypeLoadStarted   = "load_started"
	TypeLoadFinished  = "load_finished"
	TypeLoadFailed    = "load_failed"
	TypeHTTPError     = "http_error"
	TypeNavigate      = "navigate"
	TypeIdentify      = "identify"
)

// Server message types
const (
	TypeState        = "state"
	TypeNavigation   = "navigation"
	TypeOpenExternal = "open_external"
	TypeError        = "error"
)

// Decision reported for navigations of a session that is no longer mounted
const DecisionIgnored = "ignored"

// ClientMessage is a message sent by the renderer
type ClientMessage struct {
	Type        string                 `json:"type"`
	SessionID   string                 `json:"session_id,omitempty"`
	Description string                 `json:"description,omitempty"`
	Code        string                 `json:"code,omitempty"`
	StatusCode  int                    `json:"status_code,omitempty"`
	URL         string                 `json:"url,omitempty"`
	Identity    *widget.IdentityConfig `json:"identity,omitempty"`
}

// event converts a surface notification into a session event. ok is false
// for message types that are not surface notifications.
func (m ClientMessage) event() (session.Event, bool) {
	switch m.Type {
	case TypeLoadStarted:
		return session.LoadStarted{}, true
	case TypeLoadFinished:
		return session.LoadFinished{}, true
	case TypeLoadFailed:
		return session.LoadFailed{Description: m.Description, Code: m.Code}, true
	case TypeHTTPError:
		return session.HTTPError{StatusCode: m.StatusCode, Description: m.Description}, true
	}
	return nil, false
}

// StateMessage is the snapshot sent after every client message
type StateMessage struct {
	Type        string `json:"type"`
	Visible     bool   `json:"visible"`
	ModalOpen   bool   `json:"modal_open"`
	Position    string `json:"position"`
	AccentColor string `json:"accent_color"`
	Icon        string `json:"icon"`
	SessionID   string `json:"session_id,omitempty"`
	Address     string `json:"address,omitempty"`
	Phase       string `json:"phase,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// NavigationMessage answers a navigate request
type NavigationMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	Decision  string `json:"decision"`
	Allow     bool   `json:"allow"`
}

// OpenExternalMessage asks the renderer to open a URL outside the surface
type OpenExternalMessage struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// ErrorMessage reports a malformed or unknown client message
type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func snapshot(o *launcher.Overlay) StateMessage {
	st := o.State()
	msg := StateMessage{
		Type:        TypeState,
		Visible:     st.Visible,
		ModalOpen:   st.ModalOpen,
		Position:    st.Position.String(),
		AccentColor: st.AccentColor,
		Icon:        st.Icon.Render(),
	}

	if s := o.Session(); s != nil {
		state := s.State()
		msg.SessionID = s.ID()
		msg.Address = s.Address().String()
		msg.Phase = state.Phase.String()
		msg.Reason = state.Reason
	}
	return msg
}
