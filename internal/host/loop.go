package host

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/face"
	"github.com/isabelacmor/hexwatch/internal/render"
)

// DefaultBatteryInterval is how often the battery is polled.
const DefaultBatteryInterval = time.Minute

// Presenter shows a rendered frame.
type Presenter interface {
	Present(ctx context.Context, frame *domain.Frame) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(ctx context.Context, frame *domain.Frame) error

// Present implements Presenter.
func (f PresenterFunc) Present(ctx context.Context, frame *domain.Frame) error {
	return f(ctx, frame)
}

// TickSource is a face.TickService that delivers its ticks on a channel.
type TickSource interface {
	face.TickService
	C() <-chan time.Time
}

// LoopOptions configure a Loop.
type LoopOptions struct {
	Face            face.Options
	Layout          render.Layout
	Render          render.Options
	Battery         BatterySource
	BatteryInterval time.Duration
	// Ticks defaults to a wall-clock Ticker.
	Ticks  TickSource
	Now    func() time.Time
	Logger hclog.Logger
}

// Loop owns a face and feeds it every event from a single goroutine.
type Loop struct {
	opts      LoopOptions
	presenter Presenter
	log       hclog.Logger
	surface   *face.Surface
	ticks     TickSource
	face      *face.Face
	taps      chan time.Time

	presented uint64
}

// NewLoop builds a loop that renders with opts.Layout and hands frames to p.
func NewLoop(p Presenter, opts LoopOptions) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Battery == nil {
		opts.Battery = StaticBattery(FullCharge)
	}
	if opts.BatteryInterval <= 0 {
		opts.BatteryInterval = DefaultBatteryInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Face.Logger == nil {
		opts.Face.Logger = logger
	}
	ticks := opts.Ticks
	if ticks == nil {
		ticks = NewTicker(logger)
	}

	surface := face.NewSurface()
	return &Loop{
		opts:      opts,
		presenter: p,
		log:       logger.Named("host"),
		surface:   surface,
		ticks:     ticks,
		face:      face.New(surface, ticks, opts.Face),
		taps:      make(chan time.Time, 8),
	}
}

// Tap queues a tap at the current time. Taps beyond the queue are dropped.
func (l *Loop) Tap() {
	select {
	case l.taps <- l.opts.Now():
	default:
		l.log.Debug("tap dropped")
	}
}

// Face returns the face driven by the loop. Only read it from Presenter calls.
func (l *Loop) Face() *face.Face {
	return l.face
}

// Surface returns the surface the face draws on.
func (l *Loop) Surface() *face.Surface {
	return l.surface
}

// Run loads the face and processes events until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	battery := l.opts.Battery.Percent()
	l.face.Load(l.opts.Now(), battery)
	defer l.face.Unload()
	l.present(ctx)

	poll := time.NewTicker(l.opts.BatteryInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			l.log.Debug("stopping", "frames", l.presented)
			return nil
		case t := <-l.ticks.C():
			l.face.OnTick(t)
		case ts := <-l.taps:
			l.face.OnTap(ts)
		case <-poll.C:
			if pct := l.opts.Battery.Percent(); pct != battery {
				battery = pct
				l.face.OnBatteryChange(pct)
			}
		}
		l.present(ctx)
	}
}

// present renders and pushes the surface when it changed since the last push.
func (l *Loop) present(ctx context.Context) {
	rev := l.surface.Revision()
	if rev == l.presented {
		return
	}
	frame := render.Compose(l.surface, l.opts.Layout, l.opts.Render)
	if err := l.presenter.Present(ctx, frame); err != nil {
		l.log.Warn("present failed", "error", err)
		return
	}
	l.presented = rev
	l.log.Trace("presented", "revision", rev, "color", l.face.Color())
}
