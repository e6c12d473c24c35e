package session

import "fmt"

// Event is a notification from the embedded surface. The set of events is
// closed; Apply is the only consumer.
type Event interface {
	fmt.Stringer
	isEvent()
}

// LoadStarted is reported when the surface begins loading a page,
// including an explicit retry.
type LoadStarted struct{}

// LoadFinished is reported when the surface finished loading.
type LoadFinished struct{}

// LoadFailed is reported when the surface could not render the target.
// Code is optional.
type LoadFailed struct {
	Description string
	Code        string
}

// HTTPError is reported when the target answered with a non-success status.
type HTTPError struct {
	StatusCode  int
	Description string
}

func (LoadStarted) isEvent()  {}
func (LoadFinished) isEvent() {}
func (LoadFailed) isEvent()   {}
func (HTTPError) isEvent()    {}

func (LoadStarted) String() string  { return "load-started" }
func (LoadFinished) String() string { return "load-finished" }

func (e LoadFailed) String() string {
	return fmt.Sprintf("load-failed(%q, %q)", e.Description, e.Code)
}

func (e HTTPError) String() string {
	return fmt.Sprintf("http-error(%d, %q)", e.StatusCode, e.Description)
}
