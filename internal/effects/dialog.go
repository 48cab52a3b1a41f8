package effects

import (
	"strings"

	"github.com/Zachkp/folio/internal/motion"
)

// Dialog is a modal dialog element.
type Dialog interface {
	Target
	// ShowModal opens the dialog and reports whether the host supports it.
	ShowModal() bool
	Close()
	IsOpen() bool
}

// PaletteOptions configures MountPalette.
type PaletteOptions struct {
	Window Source
	Opener Target
	Dialog Dialog
	// Items are the palette buttons; each carries its destination in
	// "data-href".
	Items     []Target
	Navigator Navigator
	Motion    motion.Preference
}

// MountPalette wires the command palette: the opener button and Ctrl/⌘+K
// open it, Escape closes it, and picking an item closes it and navigates.
func MountPalette(opts PaletteOptions) {
	d := opts.Dialog
	if d == nil {
		return
	}
	for _, it := range opts.Items {
		it.On(EventClick, func(Event) {
			d.Close()
			Navigate(opts.Navigator, it.Attr("data-href"), opts.Motion)
		})
	}
	if opts.Opener != nil {
		opts.Opener.On(EventClick, func(Event) { d.ShowModal() })
	}
	opts.Window.On(EventKeyDown, func(ev Event) {
		k := strings.ToLower(ev.Key)
		if (ev.Ctrl || ev.Meta) && k == "k" {
			ev.PreventDefault()
			d.ShowModal()
		}
		if k == "escape" && d.IsOpen() {
			d.Close()
		}
	})
}

// ProjectCardSelector matches a project card inside the grid.
const ProjectCardSelector = ".pcard"

// MountProjectDialog opens the project dialog for a card clicked or
// activated from the keyboard. fill loads the project with the given id
// into the dialog and reports whether it exists. Clicks on the backdrop
// outside the dialog box close it.
func MountProjectDialog(grid Target, dialog Dialog, fill func(id string) bool) {
	if grid == nil || dialog == nil {
		return
	}
	cardOf := func(ev Event) Element {
		if ev.Target == nil {
			return nil
		}
		return ev.Target.Closest(ProjectCardSelector)
	}
	open := func(card Element) {
		if fill(card.Attr("data-project")) {
			dialog.ShowModal()
		}
	}
	grid.On(EventClick, func(ev Event) {
		if card := cardOf(ev); card != nil {
			open(card)
		}
	})
	grid.On(EventKeyDown, func(ev Event) {
		if ev.Key != "Enter" && ev.Key != " " {
			return
		}
		card := cardOf(ev)
		if card == nil {
			return
		}
		ev.PreventDefault()
		open(card)
	})
	dialog.On(EventClick, func(ev Event) {
		if !dialog.Rect().Contains(ev.ClientX, ev.ClientY) {
			dialog.Close()
		}
	})
}
