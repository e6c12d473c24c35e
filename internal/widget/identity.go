package widget

import "strings"

// ErrMsgEmptyPublicKey is the validation message for a missing key.
const ErrMsgEmptyPublicKey = "publicKey must not be empty"

// IdentityConfig holds the caller-supplied identity fields used to build
// the widget address. Optional fields are absent when empty.
type IdentityConfig struct {
	PublicKey string `yaml:"public_key" json:"public_key"`
	Email     string `yaml:"email,omitempty" json:"email,omitempty"`
	FirstName string `yaml:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string `yaml:"last_name,omitempty" json:"last_name,omitempty"`
}

// Validate checks the identity before any network interaction.
// Returns a *Error of type ErrTypeValidation on failure.
func (c IdentityConfig) Validate() error {
	if strings.TrimSpace(c.PublicKey) == "" {
		return NewValidationError(ErrMsgEmptyPublicKey)
	}
	return nil
}
