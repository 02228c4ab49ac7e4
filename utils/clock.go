package utils

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Clock is injected into every component reading the time or waiting, so tests can drive it
type Clock interface {
	Now() time.Time
	Timer(d time.Duration) Timer
	Sleep(d time.Duration)
}

// Timer is a time.Timer that a MockClock can fire
type Timer interface {
	Alert() <-chan time.Time
	Reset(d time.Duration) bool
	Stop() bool
}

// RealClock reads the system time
type RealClock struct{}

// Now returns the current system time
func (RealClock) Now() time.Time {
	return time.Now()
}

// Timer returns a timer firing after d
func (RealClock) Timer(d time.Duration) Timer {
	return realTimer{time.NewTimer(d)}
}

// Sleep pauses the current goroutine for d
func (RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

type realTimer struct {
	*time.Timer
}

func (r realTimer) Alert() <-chan time.Time {
	return r.Timer.C
}

// BackoffTimer returns the timer a retry loop waits on between attempts, driven by clock
func BackoffTimer(clock Clock) backoff.Timer {
	return &backoffTimer{clock: clock}
}

type backoffTimer struct {
	clock Clock
	timer Timer
}

// Start arms a new timer firing after d
func (b *backoffTimer) Start(d time.Duration) {
	b.timer = b.clock.Timer(d)
}

// Stop disarms the current timer
func (b *backoffTimer) Stop() {
	if b.timer != nil {
		b.timer.Stop()
	}
}

// C is the channel of the current timer
func (b *backoffTimer) C() <-chan time.Time {
	return b.timer.Alert()
}
