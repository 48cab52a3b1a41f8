// Package palette builds the command palette: quick jumps to page sections
// and to the owner's external profiles.
package palette

import (
	"regexp"
	"strings"

	"github.com/Zachkp/folio/internal/profile"
)

// Item is one palette entry.
type Item struct {
	Label string `json:"label"`
	Hint  string `json:"hint"`
	Href  string `json:"href"`
}

// Section is a page section reachable from the palette and the nav bar.
type Section struct {
	ID    string
	Label string
}

// Sections lists the page sections in document order.
var Sections = []Section{
	{ID: "home", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "experience", Label: "Experience"},
	{ID: "projects", Label: "Projects"},
	{ID: "skills", Label: "Skills"},
	{ID: "achievements", Label: "Achievements"},
	{ID: "contact", Label: "Contact"},
}

// ExternalHint marks entries that leave the page.
const ExternalHint = "↗"

// Items returns the palette entries for p: every section, then each
// configured external profile, then email.
func Items(p *profile.Profile) []Item {
	items := make([]Item, 0, len(Sections)+6)
	for _, s := range Sections {
		items = append(items, Item{Label: s.Label, Hint: "#" + s.ID, Href: "#" + s.ID})
	}
	for _, pr := range p.Links.Providers() {
		if pr.URL == "" {
			continue
		}
		items = append(items, Item{Label: "Open " + pr.Label, Hint: ExternalHint, Href: pr.URL})
	}
	if p.Links.Email != "" {
		items = append(items, Item{Label: "Email", Hint: p.Links.Email, Href: profile.MailtoHref(p.Links.Email)})
	}
	return items
}

// Kind says how an href is followed.
type Kind int

const (
	// None is an href that goes nowhere.
	None Kind = iota
	// Anchor scrolls to an element on the page.
	Anchor
	// External opens in a new tab.
	External
)

var externalRe = regexp.MustCompile(`^https?://`)

// Classify decides how href is followed and, for anchors, returns the
// target element id.
func Classify(href string) (Kind, string) {
	switch {
	case href == "":
		return None, ""
	case externalRe.MatchString(href), strings.HasPrefix(href, "mailto:"):
		return External, href
	}
	id := strings.TrimPrefix(href, "#")
	if id == "" {
		return None, ""
	}
	return Anchor, id
}
