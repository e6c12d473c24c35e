package navigation

import (
	"net/url"
	"strings"

	"github.com/muurk/cuoral/internal/urls"
)

// Decision is the routing outcome for a navigation request
type Decision int

const (
	// StayInside lets the embedded surface proceed with the navigation
	StayInside Decision = iota
	// DelegateExternally hands the target to the host's external browser;
	// the surface must not load it
	DelegateExternally
)

// String returns a human-readable name for the decision
func (d Decision) String() string {
	switch d {
	case StayInside:
		return "stay-inside"
	case DelegateExternally:
		return "delegate-externally"
	default:
		return "unknown"
	}
}

// AllowsLoad reports whether the surface may perform the navigation itself.
func (d Decision) AllowsLoad() bool {
	return d == StayInside
}

// Gate decides, per requested navigation, whether a link activated inside
// the widget stays in the embedded surface.
type Gate struct {
	// TrustedPrefixes are the textual prefixes that keep a target inside
	TrustedPrefixes []string

	// Placeholder is the internal blank address, always allowed
	Placeholder string
}

// NewGate creates a gate trusting the widget host
func NewGate() *Gate {
	return &Gate{
		TrustedPrefixes: []string{urls.TrustedPrefix},
		Placeholder:     urls.BlankPage,
	}
}

// Decide routes a navigation target. Unparseable targets are untrusted.
func (g *Gate) Decide(target string) Decision {
	if _, err := url.Parse(target); err != nil {
		return DelegateExternally
	}

	if g.Placeholder != "" && target == g.Placeholder {
		return StayInside
	}

	for _, prefix := range g.TrustedPrefixes {
		if prefix != "" && strings.HasPrefix(target, prefix) {
			return StayInside
		}
	}

	return DelegateExternally
}

var defaultGate = NewGate()

// Decide routes a navigation target using the default widget gate
func Decide(target string) Decision {
	return defaultGate.Decide(target)
}
