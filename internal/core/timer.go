package core

import "time"

// Interval fires at most once per period. It is driven by the caller's clock
// so a single event loop can own it without a background goroutine.
type Interval struct {
	period time.Duration
	next   time.Time
	armed  bool
}

// NewInterval constructs a disarmed Interval with the given period.
func NewInterval(period time.Duration) *Interval {
	iv := &Interval{}
	iv.SetPeriod(period)
	return iv
}

// Period returns the current firing period.
func (iv *Interval) Period() time.Duration { return iv.period }

// SetPeriod changes the period. An armed interval is rescheduled from the
// time it was last armed or fired.
func (iv *Interval) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Millisecond
	}
	if iv.armed {
		iv.next = iv.next.Add(period - iv.period)
	}
	iv.period = period
}

// Arm schedules the first firing one period after now.
func (iv *Interval) Arm(now time.Time) {
	iv.next = now.Add(iv.period)
	iv.armed = true
}

// Disarm cancels any pending firing.
func (iv *Interval) Disarm() {
	iv.armed = false
	iv.next = time.Time{}
}

// Armed reports whether a firing is pending.
func (iv *Interval) Armed() bool { return iv.armed }

// Due reports whether the interval fires at now. When it does, the next
// firing is scheduled one period later. Missed periods are not replayed.
func (iv *Interval) Due(now time.Time) bool {
	if !iv.armed || now.Before(iv.next) {
		return false
	}
	iv.next = iv.next.Add(iv.period)
	if !iv.next.After(now) {
		iv.next = now.Add(iv.period)
	}
	return true
}
