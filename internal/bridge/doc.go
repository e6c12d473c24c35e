// Package bridge lets a remote renderer (a mobile or web view host) drive
// launcher overlays over a WebSocket connection.
//
// Each connection to /ws gets its own launcher.Overlay, seeded from the
// server's options. The renderer reports taps and surface notifications
// as JSON text frames; the server applies them in order and replies with
// a state snapshot after every message.
//
// Client → server:
//
//	{"type":"tap_launcher"}
//	{"type":"tap_background"} | {"type":"tap_content"} | {"type":"close"}
//	{"type":"load_started","session_id":"…"}
//	{"type":"load_finished","session_id":"…"}
//	{"type":"load_failed","session_id":"…","description":"…","code":"…"}
//	{"type":"http_error","session_id":"…","status_code":404,"description":"…"}
//	{"type":"navigate","session_id":"…","url":"https://…"}
//	{"type":"identify","identity":{"public_key":"…","email":"…"}}
//
// Server → client:
//
//	{"type":"state","visible":true,"modal_open":true,"session_id":"…",
//	 "address":"https://js.cuoral.com/mobile.html?…","phase":"loading"}
//	{"type":"navigation","session_id":"…","url":"…","decision":"stay-inside","allow":true}
//	{"type":"open_external","url":"…"}
//	{"type":"error","message":"…"}
//
// A state snapshot is also sent as soon as the connection opens. The
// renderer should mount its surface at "address" whenever "session_id"
// changes and tear it down when "modal_open" goes false. Notifications
// carrying a session_id that is no longer mounted are dropped and counted.
//
// /metrics exposes Prometheus metrics and /healthz answers "ok".
package bridge
