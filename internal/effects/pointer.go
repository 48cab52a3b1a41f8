package effects

import (
	"fmt"
	"math"

	"github.com/Zachkp/folio/internal/motion"
)

const (
	// MagnetStrength is the largest magnet offset, in pixels.
	MagnetStrength = 4
	// TiltStrength is the largest card rotation, in degrees.
	TiltStrength = 8
)

// MagnetOffset returns how far a magnetic element shifts toward a pointer
// at (x, y): the pointer's offset from the element's center, normalized to
// its half size and scaled by MagnetStrength.
func MagnetOffset(r Rect, x, y float64) (dx, dy float64) {
	if r.Width <= 0 || r.Height <= 0 {
		return 0, 0
	}
	nx := (x - (r.Left + r.Width/2)) / (r.Width / 2)
	ny := (y - (r.Top + r.Height/2)) / (r.Height / 2)
	return nx * MagnetStrength, ny * MagnetStrength
}

// TiltTransform returns the CSS transform for a card with the pointer at
// (x, y).
func TiltTransform(r Rect, x, y float64) string {
	px, py := 0.5, 0.5
	if r.Width > 0 {
		px = math.Max(0, math.Min(1, (x-r.Left)/r.Width))
	}
	if r.Height > 0 {
		py = math.Max(0, math.Min(1, (y-r.Top)/r.Height))
	}
	rx := (0.5 - py) * TiltStrength
	ry := (px - 0.5) * TiltStrength
	return fmt.Sprintf("perspective(900px) rotateX(%gdeg) rotateY(%gdeg) translateY(-2px)", rx, ry)
}

// MountMagnets nudges each target toward the pointer while it hovers.
func MountMagnets(targets []Target, pref motion.Preference) {
	if !pref.Allowed() {
		return
	}
	for _, el := range targets {
		el.On(EventPointerMove, func(ev Event) {
			dx, dy := MagnetOffset(el.Rect(), ev.ClientX, ev.ClientY)
			el.SetStyle("transform", fmt.Sprintf("translate3d(%gpx, %gpx, 0)", dx, dy))
		})
		el.On(EventPointerLeave, func(Event) {
			el.SetStyle("transform", "")
		})
	}
}

// MountTilt rotates each card in 3D to follow the pointer.
func MountTilt(cards []Target, pref motion.Preference) {
	if !pref.Allowed() {
		return
	}
	for _, card := range cards {
		reset := func(Event) { card.SetStyle("transform", "") }
		card.On(EventPointerMove, func(ev Event) {
			card.SetStyle("transform", TiltTransform(card.Rect(), ev.ClientX, ev.ClientY))
		})
		card.On(EventPointerLeave, reset)
		card.On(EventBlur, reset)
	}
}
