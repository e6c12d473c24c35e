package discovery

import (
	"net"
	"strings"
	"testing"

	"github.com/grandcat/zeroconf"

	"github.com/muurk/cuoral/internal/version"
)

func entry(instance string, port int, ips []net.IP, text ...string) *zeroconf.ServiceEntry {
	e := zeroconf.NewServiceEntry(instance, ServiceType, ServiceDomain)
	e.HostName = "studio.local."
	e.Port = port
	e.AddrIPv4 = ips
	e.Text = text
	return e
}

func TestParseServiceEntry(t *testing.T) {
	v4 := []net.IP{net.ParseIP("192.168.1.20")}

	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantIP   string
		wantPort int
		wantPath string
	}{
		{
			name:     "advertised bridge",
			entry:    entry("Cuoral launcher on studio", 8765, v4, "product=cuoral-launcher", "version=v1.0.0", "path=/ws"),
			wantIP:   "192.168.1.20",
			wantPort: 8765,
			wantPath: "/ws",
		},
		{
			name:     "no TXT records defaults the path",
			entry:    entry("bare", 9000, v4),
			wantIP:   "192.168.1.20",
			wantPort: 9000,
			wantPath: DefaultPath,
		},
		{
			name:    "other product",
			entry:   entry("imposter", 8765, v4, "product=something-else"),
			wantNil: true,
		},
		{
			name:    "no address",
			entry:   entry("ghost", 8765, nil),
			wantNil: true,
		},
		{
			name:    "no port",
			entry:   entry("portless", 0, v4),
			wantNil: true,
		},
		{
			name:    "no instance",
			entry:   entry("", 8765, v4),
			wantNil: true,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseServiceEntry(tt.entry)
			if tt.wantNil {
				if got != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("parseServiceEntry() = nil, want bridge")
			}
			if got.IP != tt.wantIP {
				t.Errorf("IP = %v, want %v", got.IP, tt.wantIP)
			}
			if got.Port != tt.wantPort {
				t.Errorf("Port = %v, want %v", got.Port, tt.wantPort)
			}
			if got.Path != tt.wantPath {
				t.Errorf("Path = %v, want %v", got.Path, tt.wantPath)
			}
			if got.DiscoveredAt.IsZero() {
				t.Error("DiscoveredAt should be set")
			}
		})
	}
}

func TestParseServiceEntryIPv6Fallback(t *testing.T) {
	e := entry("v6", 8765, nil)
	e.AddrIPv6 = []net.IP{net.ParseIP("fe80::1")}

	got := parseServiceEntry(e)
	if got == nil {
		t.Fatal("parseServiceEntry() = nil, want bridge")
	}
	if got.WebSocketURL() != "ws://[fe80::1]:8765/ws" {
		t.Errorf("WebSocketURL() = %v", got.WebSocketURL())
	}
}

func TestBridgeURLs(t *testing.T) {
	b := &Bridge{Instance: "x", IP: "10.0.0.2", Port: 8765, Path: "/ws", Metadata: map[string]string{"version": "v1"}}

	if got := b.WebSocketURL(); got != "ws://10.0.0.2:8765/ws" {
		t.Errorf("WebSocketURL() = %v", got)
	}
	if got := b.MetricsURL(); got != "http://10.0.0.2:8765/metrics" {
		t.Errorf("MetricsURL() = %v", got)
	}
	if got := b.GetMetadata("version"); got != "v1" {
		t.Errorf("GetMetadata(version) = %v", got)
	}
	if got := b.GetMetadata("missing"); got != "" {
		t.Errorf("GetMetadata(missing) = %v", got)
	}
	if !strings.Contains(b.String(), "10.0.0.2:8765") {
		t.Errorf("String() = %v", b.String())
	}

	var empty Bridge
	if empty.GetMetadata("any") != "" {
		t.Error("GetMetadata on nil map should be empty")
	}
}

func TestAdvertText(t *testing.T) {
	txt := advertText("/ws", false)
	want := map[string]bool{
		"product=" + version.Product: true,
		"version=" + version.Version: true,
		"path=/ws":                   true,
	}
	if len(txt) != len(want) {
		t.Fatalf("advertText() = %v", txt)
	}
	for _, rec := range txt {
		if !want[rec] {
			t.Errorf("unexpected TXT record %q", rec)
		}
	}

	// Our own advertisement must parse back as a bridge
	if parseServiceEntry(entry("self", 8765, []net.IP{net.ParseIP("127.0.0.1")}, txt...)) == nil {
		t.Error("own advertisement did not parse")
	}
}

func TestDefaultInstance(t *testing.T) {
	if !strings.HasPrefix(DefaultInstance(), "Cuoral launcher on ") {
		t.Errorf("DefaultInstance() = %v", DefaultInstance())
	}
}

func TestSecureBridge(t *testing.T) {
	txt := advertText("/ws", true)
	got := parseServiceEntry(entry("secure", 8443, []net.IP{net.ParseIP("10.0.0.5")}, txt...))
	if got == nil {
		t.Fatal("parseServiceEntry() = nil, want bridge")
	}
	if !got.TLS {
		t.Error("TLS = false, want true")
	}
	if got.WebSocketURL() != "wss://10.0.0.5:8443/ws" {
		t.Errorf("WebSocketURL() = %v", got.WebSocketURL())
	}
	if got.MetricsURL() != "https://10.0.0.5:8443/metrics" {
		t.Errorf("MetricsURL() = %v", got.MetricsURL())
	}
}
