package surface

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"
)

// Failure codes reported with LoadFailed events
const (
	CodeTimeout           = "timeout"
	CodeConnectionRefused = "connection_refused"
	CodeDNS               = "dns"
	CodeNetwork           = "network"
	CodeCanceled          = "canceled"
	CodeUnsupported       = "unsupported_scheme"
)

// ClassifyLoadError maps a transport error onto the short code the surface
// reports alongside a load failure.
func ClassifyLoadError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return CodeCanceled
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return CodeTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CodeTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CodeDNS
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return CodeConnectionRefused
	}

	return CodeNetwork
}
