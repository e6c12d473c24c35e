// Package navigation implements the gate that decides where a link
// clicked inside the widget is opened.
//
// The gate runs once per requested navigation, synchronously, before the
// embedded surface acts. It is a pure policy:
//
//   - targets starting with https://js.cuoral.com/ stay inside
//   - the blank placeholder (about:blank) stays inside
//   - everything else, including strings that do not parse as URLs, is
//     delegated to the host's external browser
//
// A DelegateExternally decision means the caller must hand the target to
// its external-open facility and tell the surface not to load it.
//
//	if d := navigation.Decide(target); !d.AllowsLoad() {
//	    opener.OpenURL(target)
//	    return false
//	}
//	return true
package navigation
