package effects

import (
	"context"
	"errors"
	"time"
)

// ToastDuration is how long a toast stays up.
const ToastDuration = 1200 * time.Millisecond

// Timers schedules a one-off callback and returns a function that cancels it.
type Timers interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// Toaster shows short transient notifications in a single shared element.
type Toaster struct {
	element func() Element
	timers  Timers
	cancel  func()
}

// NewToaster returns a Toaster. element returns the toast element,
// creating it on first use.
func NewToaster(element func() Element, timers Timers) *Toaster {
	return &Toaster{element: element, timers: timers}
}

// Show displays message, replacing any toast already up and restarting
// the dismissal timer.
func (t *Toaster) Show(message string) {
	el := t.element()
	if el == nil {
		return
	}
	el.SetText(message)
	el.AddClass("is-in")
	if t.cancel != nil {
		t.cancel()
	}
	t.cancel = t.timers.AfterFunc(ToastDuration, func() {
		el.RemoveClass("is-in")
		t.cancel = nil
	})
}

// Clipboard writes text somewhere the user can paste it from.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ErrNothingToCopy is returned by CopyText for empty input.
var ErrNothingToCopy = errors.New("nothing to copy")

// CopyText tries each clipboard in order and stops at the first success.
func CopyText(ctx context.Context, text string, clipboards ...Clipboard) error {
	if text == "" {
		return ErrNothingToCopy
	}
	var errs []error
	for _, cb := range clipboards {
		if cb == nil {
			continue
		}
		err := cb.WriteText(ctx, text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return errors.New("no clipboard available")
	}
	return errors.Join(errs...)
}

// CopyEmailOptions configures MountCopyEmail.
type CopyEmailOptions struct {
	Button     Target
	Email      string
	Toaster    *Toaster
	Clipboards []Clipboard
	// Spawn runs the copy off the event callback, since host clipboard
	// calls may wait on a promise. Defaults to a new goroutine.
	Spawn func(func())
}

// MountCopyEmail copies the email address when the button is clicked and
// reports the outcome with a toast.
func MountCopyEmail(opts CopyEmailOptions) {
	if opts.Button == nil {
		return
	}
	if opts.Email == "" {
		opts.Button.AddClass("is-disabled")
	} else {
		opts.Button.RemoveClass("is-disabled")
	}
	spawn := opts.Spawn
	if spawn == nil {
		spawn = func(f func()) { go f() }
	}
	opts.Button.On(EventClick, func(ev Event) {
		ev.PreventDefault()
		ev.StopPropagation()
		spawn(func() {
			if err := CopyText(context.Background(), opts.Email, opts.Clipboards...); err != nil {
				opts.Toaster.Show("Copy failed")
				return
			}
			opts.Toaster.Show("Email copied")
		})
	})
}
