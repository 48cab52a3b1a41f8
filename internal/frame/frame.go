// Package frame abstracts the host's once-per-refresh callback primitive.
package frame

import "time"

// Callback runs once for a display frame. now is the frame timestamp
// measured from an arbitrary origin fixed for the host's lifetime.
type Callback func(now time.Duration)

// Scheduler queues a callback for the next frame.
type Scheduler interface {
	RequestFrame(fn Callback)
}

// Queue is a Scheduler for hosts that pump frames themselves, such as a
// game loop. Callbacks requested while a frame runs wait for the next one.
type Queue struct {
	pending []Callback
}

// RequestFrame implements Scheduler.
func (q *Queue) RequestFrame(fn Callback) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of callbacks waiting for the next frame.
func (q *Queue) Len() int { return len(q.pending) }

// Run executes the callbacks queued before this call, in request order,
// and returns how many ran.
func (q *Queue) Run(now time.Duration) int {
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn(now)
	}
	return len(batch)
}
