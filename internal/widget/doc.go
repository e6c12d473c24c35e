// Package widget builds the address of the vendor-hosted chat widget and
// defines the error taxonomy shared by widget sessions.
//
// # Address Format
//
//	https://js.cuoral.com/mobile.html?auto_display=true&key=<key>[&email=..][&first_name=..][&last_name=..]
//
// auto_display and key are always present for a valid identity; the
// optional parameters appear only when the corresponding field is
// non-empty, always in the order above.
//
// # Usage Example
//
//	addr, err := widget.BuildAddress(widget.IdentityConfig{
//	    PublicKey: "abc123",
//	    Email:     "a@b.com",
//	})
//	if err != nil {
//	    // err is a *widget.Error with Type ErrTypeValidation
//	}
//	fmt.Println(addr) // ...?auto_display=true&key=abc123&email=a%40b.com
//
// # Error Taxonomy
//
//   - ErrTypeValidation: identity input rejected before any network use
//   - ErrTypeLoad: the surface failed to render the page (description + code)
//   - ErrTypeHTTP: the page answered with a non-success status
//
// All three render to a single reason string via (*Error).Reason, which is
// what a session in the Error state carries.
package widget
