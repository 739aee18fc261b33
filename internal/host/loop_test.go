package host

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/face"
	"github.com/isabelacmor/hexwatch/internal/render"
)

type fakeTicks struct {
	c chan time.Time

	mu           sync.Mutex
	units        []face.TickUnit
	unsubscribed bool
}

func newFakeTicks() *fakeTicks {
	return &fakeTicks{c: make(chan time.Time)}
}

func (f *fakeTicks) Subscribe(u face.TickUnit) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.units = append(f.units, u)
}

func (f *fakeTicks) Unsubscribe() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unsubscribed = true
}

func (f *fakeTicks) C() <-chan time.Time { return f.c }

func (f *fakeTicks) snapshot() ([]face.TickUnit, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]face.TickUnit(nil), f.units...), f.unsubscribed
}

type shown struct {
	second  string
	battery string
	size    int
}

type atomicBattery struct{ v atomic.Int32 }

func (b *atomicBattery) Percent() int { return int(b.v.Load()) }

func startLoop(t *testing.T, opts LoopOptions) (*Loop, <-chan shown, func() error) {
	t.Helper()
	frames := make(chan shown, 16)
	var loop *Loop
	loop = NewLoop(PresenterFunc(func(_ context.Context, frame *domain.Frame) error {
		s := loop.Surface()
		frames <- shown{
			second:  s.Text(face.RegionSecond),
			battery: s.Text(face.RegionBattery),
			size:    frame.Width,
		}
		return nil
	}), opts)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	stop := func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(2 * time.Second):
			return errors.New("loop did not stop")
		}
	}
	return loop, frames, stop
}

func next(t *testing.T, frames <-chan shown) shown {
	t.Helper()
	select {
	case f := <-frames:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("no frame presented")
		return shown{}
	}
}

func TestLoopTapVariant(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	ticks := newFakeTicks()

	loop, frames, stop := startLoop(t, LoopOptions{
		Face:    face.DefaultOptions(face.VariantTap),
		Layout:  render.LayoutFor(domain.ProfilePixoo64),
		Battery: StaticBattery(80),
		Ticks:   ticks,
		Now:     func() time.Time { return base },
	})

	first := next(t, frames)
	assert.Equal(t, "", first.second)
	assert.Equal(t, "80%", first.battery)
	assert.Equal(t, 64, first.size)

	loop.Tap()
	assert.Equal(t, "53", next(t, frames).second)

	ticks.c <- base.Add(10 * time.Second)
	assert.Equal(t, "", next(t, frames).second)

	require.NoError(t, stop())
	units, unsubscribed := ticks.snapshot()
	assert.Equal(t, []face.TickUnit{face.MinuteUnit, face.SecondUnit, face.MinuteUnit}, units)
	assert.True(t, unsubscribed)
}

func TestLoopPollsBattery(t *testing.T) {
	battery := &atomicBattery{}
	battery.v.Store(90)

	_, frames, stop := startLoop(t, LoopOptions{
		Face:            face.DefaultOptions(face.VariantTick),
		Layout:          render.LayoutFor(domain.ProfileBasalt),
		Battery:         battery,
		BatteryInterval: 10 * time.Millisecond,
		Ticks:           newFakeTicks(),
	})

	first := next(t, frames)
	assert.Equal(t, "90%", first.battery)
	assert.Equal(t, 144, first.size)

	battery.v.Store(55)
	assert.Equal(t, "55%", next(t, frames).battery)

	require.NoError(t, stop())
}

func TestLoopSurvivesPresentErrors(t *testing.T) {
	ticks := newFakeTicks()
	var calls atomic.Int32
	loop := NewLoop(PresenterFunc(func(context.Context, *domain.Frame) error {
		calls.Add(1)
		return errors.New("device offline")
	}), LoopOptions{
		Face:   face.DefaultOptions(face.VariantTick),
		Layout: render.LayoutFor(domain.ProfilePixoo64),
		Ticks:  ticks,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	ticks.c <- time.Now()
	ticks.c <- time.Now()
	cancel()
	require.NoError(t, <-done)

	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}
