package face

import "time"

// DefaultTapTimeout is how long seconds stay visible after a tap.
const DefaultTapTimeout = 3 * time.Second

// Mode is the display mode of the tap variant.
type Mode int

const (
	// ModeMinute hides the seconds and ticks once a minute.
	ModeMinute Mode = iota
	// ModeSecond shows the seconds and ticks every second.
	ModeSecond
)

func (m Mode) String() string {
	if m == ModeSecond {
		return "second"
	}
	return "minute"
}

// Unit returns the tick granularity the mode needs.
func (m Mode) Unit() TickUnit {
	if m == ModeSecond {
		return SecondUnit
	}
	return MinuteUnit
}

// tapTimer switches to ModeSecond on a tap and back to ModeMinute once a tick
// observes that the timeout has passed since the last tap.
type tapTimer struct {
	mode    Mode
	lastTap time.Time
	timeout time.Duration
}

func newTapTimer(timeout time.Duration) tapTimer {
	if timeout <= 0 {
		timeout = DefaultTapTimeout
	}
	return tapTimer{mode: ModeMinute, timeout: timeout}
}

// tap records ts and reports whether the mode changed.
func (s *tapTimer) tap(ts time.Time) bool {
	s.lastTap = ts
	if s.mode == ModeSecond {
		return false
	}
	s.mode = ModeSecond
	return true
}

// tick reports whether the mode changed at t.
func (s *tapTimer) tick(t time.Time) bool {
	if s.mode != ModeSecond || t.Sub(s.lastTap) <= s.timeout {
		return false
	}
	s.mode = ModeMinute
	return true
}
