// Package face implements the hex color watch face.
//
// The face owns all of its state and is driven entirely by the host through
// Load, Unload and the On* event methods, which must be called from a single
// goroutine. It draws through the Display the host hands it and asks the
// host's TickService for second or minute ticks.
package face

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/gcolor"
	"github.com/isabelacmor/hexwatch/internal/hexcolor"
)

// Variant selects which revision of the face runs.
type Variant int

const (
	// VariantTick shows seconds at all times and ticks every second.
	VariantTick Variant = iota
	// VariantTap shows minutes only and reveals seconds for a while after a tap.
	VariantTap
)

func (v Variant) String() string {
	if v == VariantTap {
		return "tap"
	}
	return "tick"
}

// ParseVariant parses "tick" or "tap".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tick":
		return VariantTick, nil
	case "tap":
		return VariantTap, nil
	default:
		return VariantTick, fmt.Errorf("unknown variant %q (use tick or tap)", s)
	}
}

// Accent colors.
var (
	ColorAccentDark  = gcolor.DarkGray.RGB()
	ColorAccentLight = gcolor.White.RGB()
)

// AccentColor returns the text color for an accent.
func AccentColor(a hexcolor.Accent) domain.RGB {
	if a == hexcolor.AccentDark {
		return ColorAccentDark
	}
	return ColorAccentLight
}

// Text shown before the first update.
const (
	initialHour    = "#00"
	initialMinute  = "00"
	initialSecond  = "00"
	initialDate    = "0000"
	initialBattery = "00%"
)

// Options configure a Face.
type Options struct {
	Use24Hour     bool
	Variant       Variant
	Classifier    hexcolor.Classifier
	TapTimeout    time.Duration
	ShowColorName bool
	Logger        hclog.Logger
}

// DefaultOptions returns the options each variant shipped with.
func DefaultOptions(v Variant) Options {
	threshold := hexcolor.ThresholdTick
	if v == VariantTap {
		threshold = hexcolor.ThresholdTap
	}
	return Options{
		Use24Hour:  true,
		Variant:    v,
		Classifier: hexcolor.NewClassifier(threshold),
		TapTimeout: DefaultTapTimeout,
	}
}

// Face is the watch face application state.
type Face struct {
	opts    Options
	display Display
	ticks   TickService
	log     hclog.Logger

	loaded  bool
	color   domain.RGB
	accent  hexcolor.Accent
	battery int
	timer   tapTimer
}

// New creates a face that draws on display and subscribes to ticks.
func New(display Display, ticks TickService, opts Options) *Face {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Face{
		opts:    opts,
		display: display,
		ticks:   ticks,
		log:     logger.Named("face"),
		timer:   newTapTimer(opts.TapTimeout),
	}
}

// Load sets up the regions, shows the battery level and the time at now, then
// subscribes to ticks.
func (f *Face) Load(now time.Time, batteryPercent int) {
	d := f.display
	d.SetText(RegionHour, initialHour)
	d.SetText(RegionMinute, initialMinute)
	d.SetText(RegionSecond, initialSecond)
	d.SetText(RegionDate, initialDate)
	d.SetText(RegionBattery, initialBattery)
	for _, r := range []Region{RegionHour, RegionMinute, RegionSecond, RegionDate, RegionBattery} {
		d.SetTextColor(r, ColorAccentLight)
	}
	d.SetBoxColor(RegionDate, ColorAccentLight)
	if f.opts.ShowColorName {
		d.SetBoxColor(RegionColorName, ColorAccentLight)
	}

	f.loaded = true
	f.OnBatteryChange(batteryPercent)
	f.update(now)
	f.ticks.Subscribe(f.unit())

	f.log.Debug("loaded", "variant", f.opts.Variant, "unit", f.unit(), "24h", f.opts.Use24Hour)
}

// Unload cancels the tick subscription. Events after Unload are ignored.
func (f *Face) Unload() {
	if !f.loaded {
		return
	}
	f.ticks.Unsubscribe()
	f.loaded = false
	f.log.Debug("unloaded")
}

// OnTick handles a tick from the host timer.
func (f *Face) OnTick(t time.Time) {
	if !f.loaded {
		return
	}
	if f.opts.Variant == VariantTap && f.timer.tick(t) {
		f.log.Debug("mode changed", "mode", f.timer.mode, "idle", t.Sub(f.timer.lastTap))
		f.ticks.Subscribe(f.timer.mode.Unit())
	}
	f.update(t)
}

// OnBatteryChange shows the battery charge as "NN%".
func (f *Face) OnBatteryChange(percent int) {
	if !f.loaded {
		return
	}
	f.battery = percent
	f.display.SetText(RegionBattery, fmt.Sprintf("%d%%", percent))
}

// OnTap reveals the seconds in the tap variant. The first variant ignores taps.
func (f *Face) OnTap(ts time.Time) {
	if !f.loaded || f.opts.Variant != VariantTap {
		return
	}
	if f.timer.tap(ts) {
		f.log.Debug("mode changed", "mode", f.timer.mode)
		f.ticks.Subscribe(f.timer.mode.Unit())
	}
	f.update(ts)
}

// Color returns the current background color.
func (f *Face) Color() domain.RGB { return f.color }

// Accent returns the current accent palette.
func (f *Face) Accent() hexcolor.Accent { return f.accent }

// Mode returns the current display mode. The tick variant always shows seconds.
func (f *Face) Mode() Mode {
	if f.opts.Variant == VariantTick {
		return ModeSecond
	}
	return f.timer.mode
}

// Battery returns the last battery percentage seen.
func (f *Face) Battery() int { return f.battery }

// Loaded reports whether the face is between Load and Unload.
func (f *Face) Loaded() bool { return f.loaded }

func (f *Face) unit() TickUnit {
	return f.Mode().Unit()
}

func (f *Face) update(t time.Time) {
	f.updateTime(t)
	f.updateColor(t)
}

func (f *Face) updateTime(t time.Time) {
	hour := t.Format("#03")
	if f.opts.Use24Hour {
		hour = t.Format("#15")
	}
	f.display.SetText(RegionHour, hour)
	f.display.SetText(RegionMinute, t.Format("04"))
	if f.Mode() == ModeSecond {
		f.display.SetText(RegionSecond, t.Format("05"))
	} else {
		f.display.SetText(RegionSecond, "")
	}
	f.display.SetText(RegionDate, t.Format("01.02"))
}

func (f *Face) updateColor(t time.Time) {
	digits := hexcolor.DigitsFromTime(t, f.opts.Use24Hour)
	bg := digits.Triple()
	accent := f.opts.Classifier.Classify(bg)
	fg := AccentColor(accent)

	f.color = bg
	f.accent = accent

	d := f.display
	d.SetBackground(bg)
	d.SetTextColor(RegionDate, bg)
	d.SetTextColor(RegionBattery, bg)

	d.SetTextColor(RegionHour, fg)
	d.SetTextColor(RegionMinute, fg)
	d.SetTextColor(RegionSecond, fg)
	d.SetBoxColor(RegionDate, fg)

	if f.opts.ShowColorName {
		d.SetText(RegionColorName, strings.ToUpper(gcolor.NameOf(bg)))
		d.SetTextColor(RegionColorName, bg)
		d.SetBoxColor(RegionColorName, fg)
	}

	f.log.Trace("color updated",
		"digits", digits.String(),
		"rgb", bg.Hex(),
		"score", f.opts.Classifier.Score(bg),
		"accent", accent)
}
