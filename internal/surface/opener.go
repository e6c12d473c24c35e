package surface

import (
	"io"

	"github.com/pkg/browser"
)

// BrowserOpener opens URLs in the system browser
type BrowserOpener struct {
	// Quiet discards the browser launcher's output. Needed while a
	// full-screen terminal UI owns stdout.
	Quiet bool
}

// OpenURL implements launcher.ExternalOpener
func (b BrowserOpener) OpenURL(url string) error {
	if b.Quiet {
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
	}
	return browser.OpenURL(url)
}
