// Package surface is the terminal stand-in for the embedded browser that
// shows the chat widget.
//
// A Loader fetches a widget address with resty and reports the same four
// notifications a native web view would: load started, load finished,
// load failed (with a short code) and HTTP error. Those notifications are
// session.Event values, so a rendering layer can hand them straight to
// launcher.Overlay.Deliver.
//
// Pages are reduced to text with goquery and bluemonday. The result is a
// Page holding a title, a short summary and the absolute targets of the
// page's links. Scripts are removed and never executed.
//
// Link targets the navigation gate refuses are handed to BrowserOpener,
// which launches the system browser via pkg/browser.
//
// Failure codes:
//
//	timeout             request exceeded its deadline
//	connection_refused  nothing listening at the target
//	dns                 host name did not resolve
//	canceled            the load was abandoned (modal closed)
//	network             any other transport failure
//	unsupported_scheme  target is neither http(s) nor about:blank
package surface
