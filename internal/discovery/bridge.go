package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Bridge is a launcher bridge found on the local network
type Bridge struct {
	// Instance is the advertised service instance name
	Instance string

	// Hostname is the mDNS hostname (e.g., "studio-mac.local.")
	Hostname string

	// IP is the address to connect to, IPv4 preferred
	IP string

	// Port is the bridge's HTTP port
	Port int

	// Version is the launcher version from the "version" TXT record
	Version string

	// Path is the WebSocket endpoint path from the "path" TXT record
	Path string

	// TLS reports a bridge serving wss:// ("tls=1" TXT record)
	TLS bool

	// Metadata holds all TXT records
	Metadata map[string]string

	// DiscoveredAt is when the bridge answered
	DiscoveredAt time.Time
}

// String returns a human-readable description of the bridge
func (b *Bridge) String() string {
	return fmt.Sprintf("Cuoral bridge %q (%s) at %s", b.Instance, b.Hostname, b.Addr())
}

// Addr returns host:port for dialing
func (b *Bridge) Addr() string {
	return net.JoinHostPort(b.IP, strconv.Itoa(b.Port))
}

// WebSocketURL returns the URL a renderer connects to
func (b *Bridge) WebSocketURL() string {
	if b.TLS {
		return "wss://" + b.Addr() + b.Path
	}
	return "ws://" + b.Addr() + b.Path
}

// MetricsURL returns the bridge's Prometheus endpoint
func (b *Bridge) MetricsURL() string {
	if b.TLS {
		return "https://" + b.Addr() + "/metrics"
	}
	return "http://" + b.Addr() + "/metrics"
}

// GetMetadata retrieves a TXT value by key, or "" if absent
func (b *Bridge) GetMetadata(key string) string {
	if b.Metadata == nil {
		return ""
	}
	return b.Metadata[key]
}
