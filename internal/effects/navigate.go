package effects

import (
	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/motion"
	"github.com/Zachkp/folio/internal/palette"
)

// Navigator performs page navigation on behalf of the effects.
type Navigator interface {
	// OpenExternal opens href in a new tab.
	OpenExternal(href string)
	// ScrollTo scrolls the element with the given id into view and
	// reports whether it exists.
	ScrollTo(id string, smooth bool) bool
	// Redirect replaces the current location.
	Redirect(href string)
}

// Navigate follows href: external links open in a new tab, anchors
// scroll smoothly unless motion is reduced, anything else is ignored.
func Navigate(nav Navigator, href string, pref motion.Preference) {
	kind, dest := palette.Classify(href)
	switch kind {
	case palette.External:
		nav.OpenExternal(dest)
	case palette.Anchor:
		nav.ScrollTo(dest, pref.Allowed())
	}
}

// MountNavClicks routes clicks on in-page navigation links through
// Navigate instead of the browser's jump.
func MountNavClicks(links []Target, nav Navigator, pref motion.Preference) {
	for _, a := range links {
		a.On(EventClick, func(ev Event) {
			ev.PreventDefault()
			Navigate(nav, a.Attr("href"), pref)
		})
	}
}

// MountContactForm turns a submission into a mailto: redirect to the
// address to. values reads the form fields at submit time.
func MountContactForm(form Target, values func() contact.Form, to, greet string, nav Navigator) {
	if form == nil {
		return
	}
	form.On(EventSubmit, func(ev Event) {
		ev.PreventDefault()
		nav.Redirect(contact.MailtoURL(to, greet, values()))
	})
}
