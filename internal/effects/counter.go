package effects

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/motion"
)

const (
	// CounterThreshold is the visible fraction that starts a count-up.
	CounterThreshold = 0.6
	// CounterDuration is the length of a count-up at full motion.
	CounterDuration = 900 * time.Millisecond
)

// EaseOutCubic maps progress t in [0, 1] onto a curve that starts fast and
// settles slowly. t is clamped.
func EaseOutCubic(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - math.Pow(1-t, 3)
}

// CountValue is the counter reading at progress t for a count-up to goal.
func CountValue(goal, t float64) float64 {
	return goal * EaseOutCubic(t)
}

// Counters animates numeric elements ("data-count", optional
// "data-suffix") from zero to their goal the first time they become
// visible.
type Counters struct {
	observer Observer
	frames   frame.Scheduler
	duration time.Duration
	running  int
	started  map[Element]bool
}

// MountCounters observes els and animates them with frames. Under reduced
// motion the count-up jumps straight to the goal.
func MountCounters(newObserver ObserverFactory, els []Element, frames frame.Scheduler, pref motion.Preference) *Counters {
	c := &Counters{
		frames:   frames,
		duration: pref.Duration(CounterDuration),
		started:  make(map[Element]bool),
	}
	c.observer = newObserver([]float64{CounterThreshold}, c.handle)
	for _, el := range els {
		if el != nil {
			c.observer.Observe(el)
		}
	}
	return c
}

// Running returns how many count-ups are in flight.
func (c *Counters) Running() int { return c.running }

func (c *Counters) handle(entries []Entry) {
	for _, e := range entries {
		if !e.Intersecting || !live(e) || c.started[e.Target] {
			continue
		}
		c.started[e.Target] = true
		c.start(e.Target)
		c.observer.Unobserve(e.Target)
	}
}

func (c *Counters) start(el Element) {
	goal, err := strconv.ParseFloat(strings.TrimSpace(el.Attr("data-count")), 64)
	if err != nil || math.IsNaN(goal) || math.IsInf(goal, 0) {
		goal = 0
	}
	suffix := el.Attr("data-suffix")

	c.running++
	var begin time.Duration
	started := false
	var step frame.Callback
	step = func(now time.Duration) {
		if !started {
			begin, started = now, true
		}
		t := 1.0
		if c.duration > 0 {
			t = float64(now-begin) / float64(c.duration)
			t = math.Max(0, math.Min(1, t))
		}
		el.SetText(FormatCount(CountValue(goal, t)) + suffix)
		if t < 1 {
			c.frames.RequestFrame(step)
			return
		}
		c.running--
	}
	c.frames.RequestFrame(step)
}

// FormatCount rounds v to the nearest integer for display.
func FormatCount(v float64) string {
	r := math.Round(v)
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
