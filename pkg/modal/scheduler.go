package modal

import "time"

// Timer is a scheduled call that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules with time.AfterFunc.
type RealScheduler struct{}

// AfterFunc implements Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ImmediateScheduler runs f synchronously, ignoring the delay. Page handlers
// use it to compute the dialog state of a no-JavaScript request.
type ImmediateScheduler struct{}

// AfterFunc implements Scheduler.
func (ImmediateScheduler) AfterFunc(_ time.Duration, f func()) Timer {
	f()
	return firedTimer{}
}

type firedTimer struct{}

func (firedTimer) Stop() bool { return false }
