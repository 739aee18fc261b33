// Package host runs a face outside a watch: it supplies ticks, battery
// readings and taps, and presents every change.
package host

import (
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/isabelacmor/hexwatch/internal/face"
)

// Ticker implements face.TickService. Ticks fire on unit boundaries of the
// wall clock and are delivered on C.
type Ticker struct {
	log hclog.Logger
	out chan time.Time

	mu     sync.Mutex
	unit   face.TickUnit
	active bool
	stop   chan struct{}
}

var _ face.TickService = (*Ticker)(nil)

// NewTicker returns an idle ticker.
func NewTicker(logger hclog.Logger) *Ticker {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Ticker{
		log: logger.Named("ticker"),
		out: make(chan time.Time, 1),
	}
}

// C delivers tick times.
func (t *Ticker) C() <-chan time.Time {
	return t.out
}

// Subscribe replaces any running subscription with one at unit.
func (t *Ticker) Subscribe(unit face.TickUnit) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.unit = unit
	t.active = true
	t.stop = make(chan struct{})
	go t.run(unit.Duration(), t.stop)
	t.log.Debug("subscribed", "unit", unit)
}

// Unsubscribe stops delivering ticks.
func (t *Ticker) Unsubscribe() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.log.Debug("unsubscribed")
}

// Unit returns the subscribed unit and whether a subscription is active.
func (t *Ticker) Unit() (face.TickUnit, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unit, t.active
}

func (t *Ticker) stopLocked() {
	if t.active {
		close(t.stop)
		t.active = false
	}
}

func (t *Ticker) run(d time.Duration, stop <-chan struct{}) {
	timer := time.NewTimer(untilNext(time.Now(), d))
	defer timer.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-timer.C:
			select {
			case t.out <- now:
			case <-stop:
				return
			}
			timer.Reset(untilNext(time.Now(), d))
		}
	}
}

// untilNext returns the wait from now to the next multiple of d.
func untilNext(now time.Time, d time.Duration) time.Duration {
	return now.Truncate(d).Add(d).Sub(now)
}
