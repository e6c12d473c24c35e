package urls

// Widget endpoints. The chat page is vendor-hosted; everything under
// TrustedPrefix is allowed to load inside the embedded surface.

// WidgetHost is the host serving the mobile chat page.
const WidgetHost = "js.cuoral.com"

// WidgetBase is the page the embedded surface is pointed at. Query
// parameters are appended by widget.BuildAddress.
const WidgetBase = "https://" + WidgetHost + "/mobile.html"

// TrustedPrefix is the textual prefix a navigation target must carry to
// stay inside the embedded surface.
const TrustedPrefix = "https://" + WidgetHost + "/"

// BlankPage is the internal placeholder address surfaces load before (and
// between) real pages.
const BlankPage = "about:blank"

// Documentation URLs

// ProjectHome is the project landing page.
const ProjectHome = "https://github.com/muurk/cuoral"

// Dashboard is where operators find their widget public key.
const Dashboard = "https://app.cuoral.com"
