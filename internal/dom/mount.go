//go:build js && wasm

package dom

import (
	"log"
	"syscall/js"

	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/effects"
	"github.com/Zachkp/folio/internal/motion"
	"github.com/Zachkp/folio/internal/palette"
	"github.com/Zachkp/folio/internal/particles"
)

// Page holds what Mount started, for inspection from the console.
type Page struct {
	Motion     motion.Preference
	Background *particles.Loop
	Reveal     *effects.Reveal
	NavSpy     *effects.NavSpy
	Counters   *effects.Counters
	Cursor     *effects.Cursor
}

// Mount wires every effect into the rendered page. Missing elements only
// disable the effect that needs them.
func Mount() *Page {
	win, doc := Window(), Document()
	frames := NewFrames()
	nav := Navigator{}
	pg := &Page{Motion: preference()}

	cfg := particles.DefaultConfig()
	if c := NewCanvas(ByID("bg")); c != nil {
		pg.Background = particles.Mount(particles.Options{
			Config:   cfg,
			Motion:   pg.Motion,
			Canvas:   c,
			Frames:   frames,
			Viewport: viewport(cfg.MaxPixelRatio),
		})
	}
	if loop := pg.Background; loop != nil {
		win.On(effects.EventResize, func(effects.Event) {
			loop.Resize(viewport(cfg.MaxPixelRatio))
		})
	}

	pg.Reveal = effects.MountReveal(NewObserver, elements(QueryAll(".reveal")))
	effects.MountHeaderProgress(win, element(Query(".header")), element(Query(".progress__bar")), scrollMetrics)

	navLinks := QueryAll(`[data-nav][href^="#"]`)
	sections := make([]effects.Element, 0, len(palette.Sections))
	for _, s := range palette.Sections {
		sections = append(sections, element(ByID(s.ID)))
	}
	pg.NavSpy = effects.MountNavSpy(NewObserver, elements(navLinks), sections)
	effects.MountNavClicks(targets(navLinks), nav, pg.Motion)

	pg.Counters = effects.MountCounters(NewObserver, elements(QueryAll("[data-count]")), frames, pg.Motion)
	effects.MountMagnets(targets(QueryAll(".magnet")), pg.Motion)
	effects.MountTilt(targets(QueryAll(".pcard")), pg.Motion)
	pg.Cursor = effects.MountCursor(win, doc, element(Query(".cursor")), frames, pg.Motion)

	if modal := NewDialog(ByID("projectModal")); modal != nil {
		effects.MountProjectDialog(target(ByID("projectsGrid")), modal, fillProject)
	}
	if palDialog := NewDialog(ByID("palette")); palDialog != nil {
		effects.MountPalette(effects.PaletteOptions{
			Window:    win,
			Opener:    target(ByID("openPalette")),
			Dialog:    palDialog,
			Items:     targets(QueryAll("#paletteList .pitem")),
			Navigator: nav,
			Motion:    pg.Motion,
		})
	}

	if form := ByID("contactForm"); form != nil {
		effects.MountContactForm(form, formValues(form), form.Attr("data-to"), form.Attr("data-greet"), nav)
	}
	if btn := ByID("copyEmailBtn"); btn != nil {
		effects.MountCopyEmail(effects.CopyEmailOptions{
			Button:     btn,
			Email:      btn.Attr("data-email"),
			Toaster:    effects.NewToaster(toastElement, Timers{}),
			Clipboards: []effects.Clipboard{AsyncClipboard{}, ExecCommandClipboard{}},
		})
	}

	log.Printf("[fx] mounted (motion=%s, particles=%t)", pg.Motion, pg.Background != nil)
	return pg
}

// preference resolves the page's data-motion setting against the
// browser's prefers-reduced-motion query.
func preference() motion.Preference {
	hostReduced := false
	if mm := window().Get("matchMedia"); mm.Type() == js.TypeFunction {
		hostReduced = window().Call("matchMedia", "(prefers-reduced-motion: reduce)").Get("matches").Bool()
	}
	setting := document().Get("body").Call("getAttribute", "data-motion")
	s := ""
	if setting.Type() == js.TypeString {
		s = setting.String()
	}
	pref, err := motion.Parse(s, hostReduced)
	if err != nil {
		log.Printf("[fx] %v; following the browser", err)
		pref, _ = motion.Parse("auto", hostReduced)
	}
	return pref
}

func scrollMetrics() effects.ScrollMetrics {
	return effects.ScrollMetrics{
		ScrollY:        window().Get("scrollY").Float(),
		ScrollHeight:   document().Get("documentElement").Get("scrollHeight").Float(),
		ViewportHeight: window().Get("innerHeight").Float(),
	}
}

// fillProject copies the project's pre-rendered fragment into the dialog.
func fillProject(id string) bool {
	tpl, body := ByID("project-"+id), ByID("modalBody")
	if tpl == nil || body == nil {
		return false
	}
	body.v.Set("innerHTML", tpl.v.Get("innerHTML"))
	return true
}

func formValues(form *Element) func() contact.Form {
	field := func(name string) string {
		f := form.v.Get("elements").Call("namedItem", name)
		if f.IsNull() || f.IsUndefined() {
			return ""
		}
		return f.Get("value").String()
	}
	return func() contact.Form {
		return contact.Form{Name: field("name"), Email: field("email"), Message: field("message")}
	}
}

// toastElement returns the toast element, creating it on first use.
func toastElement() effects.Element {
	if el := ByID("toast"); el != nil {
		return el
	}
	doc := document()
	v := doc.Call("createElement", "div")
	v.Set("id", "toast")
	v.Set("className", "toast")
	doc.Get("body").Call("appendChild", v)
	return &Element{v: v}
}
