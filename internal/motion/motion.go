// Package motion models the reduced-motion accessibility preference.
//
// The preference is resolved once at startup and handed to every component
// that animates, so behavior under both settings stays deterministic.
package motion

import (
	"fmt"
	"strings"
	"time"
)

// Preference is the user's motion preference.
type Preference int

const (
	// Full allows every animation.
	Full Preference = iota
	// Reduced asks for minimized animation.
	Reduced
)

// String returns the config spelling of the preference.
func (p Preference) String() string {
	if p == Reduced {
		return "reduce"
	}
	return "full"
}

// Allowed reports whether decorative animations may run at all.
func (p Preference) Allowed() bool {
	return p != Reduced
}

// Duration collapses d to zero under reduced motion.
func (p Preference) Duration(d time.Duration) time.Duration {
	if p == Reduced {
		return 0
	}
	return d
}

// Parse reads a configured preference. "auto" and "" defer to the host
// query, passed in as hostReduced.
func Parse(s string, hostReduced bool) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		if hostReduced {
			return Reduced, nil
		}
		return Full, nil
	case "full", "no-preference":
		return Full, nil
	case "reduce", "reduced":
		return Reduced, nil
	default:
		return Full, fmt.Errorf("invalid motion preference %q: must be one of auto, full, reduce", s)
	}
}
