package surface

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/muurk/cuoral/internal/logging"
	"github.com/muurk/cuoral/internal/session"
	"github.com/muurk/cuoral/internal/urls"
	"github.com/muurk/cuoral/internal/version"
	"github.com/muurk/cuoral/internal/widget"
)

// DefaultTimeout bounds a single page load
const DefaultTimeout = 20 * time.Second

// Emitter receives the surface notifications of one load, in order
type Emitter func(session.Event)

// Loader fetches widget pages over HTTP and reports progress as session
// events, the way an embedded browser surface would.
type Loader struct {
	client *resty.Client
}

// NewLoader creates a loader with its own HTTP client
func NewLoader(timeout time.Duration) *Loader {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", version.UserAgent()).
		SetHeader("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	return &Loader{client: client}
}

// NewLoaderWithClient creates a loader around an existing resty client
func NewLoaderWithClient(client *resty.Client) *Loader {
	return &Loader{client: client}
}

// Load fetches address. emit always receives LoadStarted first, then
// exactly one of LoadFinished, LoadFailed or HTTPError. On success the
// parsed page is returned; otherwise the returned error is a *widget.Error
// describing the same failure that was emitted.
func (l *Loader) Load(ctx context.Context, address string, emit Emitter) (*Page, error) {
	if emit == nil {
		emit = func(session.Event) {}
	}
	emit(session.LoadStarted{})

	if address == urls.BlankPage {
		emit(session.LoadFinished{})
		return &Page{URL: address}, nil
	}

	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		desc := fmt.Sprintf("cannot load %q in the terminal surface", address)
		emit(session.LoadFailed{Description: desc, Code: CodeUnsupported})
		return nil, widget.NewLoadError(desc, CodeUnsupported)
	}

	resp, err := l.client.R().SetContext(ctx).Get(address)
	if err != nil {
		code := ClassifyLoadError(err)
		logging.Debug("Surface load failed",
			zap.String("address", address),
			zap.String("code", code),
			zap.Error(err),
		)
		emit(session.LoadFailed{Description: err.Error(), Code: code})
		return nil, widget.NewLoadError(err.Error(), code)
	}

	status := resp.StatusCode()
	if status >= http.StatusBadRequest {
		desc := statusDescription(resp)
		emit(session.HTTPError{StatusCode: status, Description: desc})
		return nil, widget.NewHTTPError(status, desc)
	}

	page, err := ParsePage(resp.String(), address)
	if err != nil {
		emit(session.LoadFailed{Description: err.Error(), Code: "parse"})
		return nil, widget.NewLoadError(err.Error(), "parse")
	}

	emit(session.LoadFinished{})
	return page, nil
}

func statusDescription(resp *resty.Response) string {
	if text := http.StatusText(resp.StatusCode()); text != "" {
		return text
	}
	// resp.Status() is "<code> <text>"
	if _, text, ok := strings.Cut(resp.Status(), " "); ok && text != "" {
		return text
	}
	return "HTTP error"
}
