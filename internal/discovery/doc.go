// Package discovery advertises and finds launcher bridges on the local
// network with multicast DNS.
//
// "cuoral-launcher serve --advertise" registers the bridge as a
// "_cuoral-bridge._tcp" service. TXT records carry the product name, the
// launcher version and the WebSocket path:
//
//	product=cuoral-launcher
//	version=v0.3.0
//	path=/ws
//	tls=1        (only when serving wss://)
//
// "cuoral-launcher scan" browses for that service type and lists what
// answers, so a renderer on a phone or another machine can find a bridge
// without configuration.
//
// # Usage Example
//
//	ad, err := discovery.Advertise("", 8765, false)
//	if err != nil {
//	    return err
//	}
//	defer ad.Shutdown()
//
//	bridges, err := discovery.QuickScan(ctx, 3*time.Second)
//	for _, b := range bridges {
//	    fmt.Println(b.WebSocketURL())
//	}
//
// # Network Requirements
//
// Multicast must be allowed on the interface and UDP port 5353 must not be
// firewalled. Only the local network segment is searched.
package discovery
