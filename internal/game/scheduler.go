package game

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// deferredCall is posted to the event loop when a scheduled delay elapses.
type deferredCall struct {
	fn        func()
	cancelled *bool
}

// run invokes fn unless the call was cancelled. Both run and cancel happen
// on the loop goroutine, so the flag needs no locking.
func (c deferredCall) run() {
	if !*c.cancelled {
		c.fn()
	}
}

// loopScheduler implements match.Scheduler by posting callbacks back onto
// the tcell event queue, keeping every match mutation on the loop goroutine.
type loopScheduler struct {
	post func(tcell.Event) error
}

func (s loopScheduler) After(d time.Duration, fn func()) func() {
	cancelled := new(bool)
	timer := time.AfterFunc(d, func() {
		_ = s.post(tcell.NewEventInterrupt(deferredCall{fn: fn, cancelled: cancelled}))
	})
	return func() {
		timer.Stop()
		*cancelled = true
	}
}
