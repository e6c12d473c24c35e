package widget

import (
	"net/url"
	"strings"

	"github.com/muurk/cuoral/internal/urls"
)

// WidgetAddress is a validated widget URL. Values are only produced by
// BuildAddress.
type WidgetAddress string

// String returns the address as a plain string
func (a WidgetAddress) String() string {
	return string(a)
}

// Query parameter names, in emission order
const (
	ParamAutoDisplay = "auto_display"
	ParamKey         = "key"
	ParamEmail       = "email"
	ParamFirstName   = "first_name"
	ParamLastName    = "last_name"
)

// BuildAddress builds the widget address for an identity.
//
// The query always starts with auto_display=true and key, followed by
// email, first_name and last_name when supplied. The order is fixed so
// identical identities yield byte-identical addresses. Values use form
// encoding (space becomes '+').
func BuildAddress(cfg IdentityConfig) (WidgetAddress, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(urls.WidgetBase)
	b.WriteString("?")
	b.WriteString(ParamAutoDisplay + "=true")

	appendParam(&b, ParamKey, cfg.PublicKey)
	appendParam(&b, ParamEmail, cfg.Email)
	appendParam(&b, ParamFirstName, cfg.FirstName)
	appendParam(&b, ParamLastName, cfg.LastName)

	return WidgetAddress(b.String()), nil
}

// appendParam writes &name=value, skipping empty values
func appendParam(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("&")
	b.WriteString(name)
	b.WriteString("=")
	b.WriteString(url.QueryEscape(value))
}
