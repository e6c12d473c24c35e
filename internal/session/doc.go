// Package session implements the widget session controller: the state
// machine that tracks one embedded-surface session from mount to unmount.
//
// # States
//
//	Idle     surface explicitly hidden; inert
//	Loading  address built, page loading
//	Loaded   page rendered
//	Error    identity rejected, or the surface reported a failure
//
// # Transitions
//
// Surface notifications are explicit Event values consumed by Apply:
//
//	Loading  --LoadStarted-->   Loading (stale reason cleared)
//	Loading  --LoadFinished-->  Loaded
//	Loading  --LoadFailed-->    Error("Error loading widget: <desc> (Code: <code>)")
//	Loading  --HTTPError-->     Error("HTTP Error: <status> - <desc>")
//	Loaded   --LoadStarted-->   Loading
//	Error    --LoadStarted-->   Loading (unless the identity was invalid)
//
// Anything else is ignored. An invalid identity is terminal until
// Reconfigure. No failure escapes the controller: every failure path ends
// in the Error state with a human-readable reason.
//
// # Usage Example
//
//	s := session.New(widget.IdentityConfig{PublicKey: "abc123"})
//	// s.State() == session.Loading(), s.Address() is the widget URL
//
//	s.Apply(session.HTTPError{StatusCode: 404, Description: "Not Found"})
//	// s.State().Reason == "HTTP Error: 404 - Not Found"
//
//	s.Apply(session.LoadStarted{}) // retry
//	// s.State() == session.Loading()
//
// # Lifetime
//
// A controller is a short-lived value owned by the open modal. Each open
// creates a new controller with a new ID; nothing is cached between opens.
package session
