// Package urls provides centralized constants for the widget endpoints and
// documentation URLs used throughout the application.
//
// The widget host appears in two places that must agree: the address
// builder (which points the embedded surface at the chat page) and the
// navigation gate (which decides which links may load inside it). Both
// read their values from here.
//
// Usage:
//
//	import "github.com/muurk/cuoral/internal/urls"
//
//	fmt.Printf("Get your public key at: %s\n", urls.Dashboard)
package urls
