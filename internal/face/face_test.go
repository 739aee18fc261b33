package face_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/face"
	"github.com/isabelacmor/hexwatch/internal/face/mocks"
	"github.com/isabelacmor/hexwatch/internal/hexcolor"
)

func at(h, m, s int) time.Time {
	return time.Date(2026, 3, 14, h, m, s, 0, time.UTC)
}

func newTickFace(t *testing.T) (*face.Face, *face.Surface, *mocks.MockTickService) {
	ctrl := gomock.NewController(t)
	ticks := mocks.NewMockTickService(ctrl)
	surface := face.NewSurface()
	return face.New(surface, ticks, face.DefaultOptions(face.VariantTick)), surface, ticks
}

func newTapFace(t *testing.T) (*face.Face, *face.Surface, *mocks.MockTickService) {
	ctrl := gomock.NewController(t)
	ticks := mocks.NewMockTickService(ctrl)
	surface := face.NewSurface()
	return face.New(surface, ticks, face.DefaultOptions(face.VariantTap)), surface, ticks
}

func TestLoadShowsTimeAndBattery(t *testing.T) {
	f, surface, ticks := newTickFace(t)
	ticks.EXPECT().Subscribe(face.SecondUnit)

	f.Load(at(14, 5, 9), 42)

	assert.True(t, f.Loaded())
	assert.Equal(t, "#14", surface.Text(face.RegionHour))
	assert.Equal(t, "05", surface.Text(face.RegionMinute))
	assert.Equal(t, "09", surface.Text(face.RegionSecond))
	assert.Equal(t, "03.14", surface.Text(face.RegionDate))
	assert.Equal(t, "42%", surface.Text(face.RegionBattery))
	assert.Equal(t, domain.NewRGB(20, 5, 9), surface.Background())
	assert.Equal(t, domain.NewRGB(20, 5, 9), f.Color())
}

func TestLoadTwelveHour(t *testing.T) {
	ctrl := gomock.NewController(t)
	ticks := mocks.NewMockTickService(ctrl)
	ticks.EXPECT().Subscribe(face.SecondUnit)
	surface := face.NewSurface()
	opts := face.DefaultOptions(face.VariantTick)
	opts.Use24Hour = false
	f := face.New(surface, ticks, opts)

	f.Load(at(14, 5, 9), 100)

	assert.Equal(t, "#02", surface.Text(face.RegionHour))
	assert.Equal(t, domain.NewRGB(2, 5, 9), surface.Background())
}

func TestBatteryText(t *testing.T) {
	f, surface, ticks := newTickFace(t)
	ticks.EXPECT().Subscribe(gomock.Any())
	f.Load(at(9, 0, 0), 100)

	f.OnBatteryChange(42)
	assert.Equal(t, "42%", surface.Text(face.RegionBattery))
	assert.Equal(t, 42, f.Battery())

	f.OnBatteryChange(5)
	assert.Equal(t, "5%", surface.Text(face.RegionBattery))
}

func TestTickUpdatesColorsAndAccent(t *testing.T) {
	f, surface, ticks := newTickFace(t)
	ticks.EXPECT().Subscribe(face.SecondUnit)
	f.Load(at(0, 0, 0), 80)

	// 00:00:00 is black: white text.
	assert.Equal(t, hexcolor.AccentLight, f.Accent())
	assert.Equal(t, face.ColorAccentLight, surface.Region(face.RegionHour).TextColor)

	f.OnTick(at(14, 5, 9))

	bg := domain.NewRGB(20, 5, 9)
	assert.Equal(t, hexcolor.AccentDark, f.Accent())
	for _, r := range []face.Region{face.RegionHour, face.RegionMinute, face.RegionSecond} {
		assert.Equal(t, face.ColorAccentDark, surface.Region(r).TextColor, r.String())
	}
	date := surface.Region(face.RegionDate)
	assert.Equal(t, bg, date.TextColor)
	assert.True(t, date.HasBox)
	assert.Equal(t, face.ColorAccentDark, date.Box)
	assert.Equal(t, bg, surface.Region(face.RegionBattery).TextColor)
	assert.False(t, surface.Region(face.RegionBattery).HasBox)
}

func TestTickVariantIgnoresTaps(t *testing.T) {
	f, surface, ticks := newTickFace(t)
	ticks.EXPECT().Subscribe(face.SecondUnit).Times(1)
	f.Load(at(10, 0, 0), 50)

	f.OnTap(at(10, 0, 30))

	assert.Equal(t, face.ModeSecond, f.Mode())
	assert.Equal(t, "00", surface.Text(face.RegionSecond))
}

func TestTapVariantStartsInMinuteMode(t *testing.T) {
	f, surface, ticks := newTapFace(t)
	ticks.EXPECT().Subscribe(face.MinuteUnit)

	f.Load(at(10, 15, 42), 50)

	assert.Equal(t, face.ModeMinute, f.Mode())
	assert.Equal(t, "", surface.Text(face.RegionSecond))
	assert.Equal(t, "15", surface.Text(face.RegionMinute))
}

func TestTapShowsSecondsThenTimesOut(t *testing.T) {
	f, surface, ticks := newTapFace(t)
	gomock.InOrder(
		ticks.EXPECT().Subscribe(face.MinuteUnit),
		ticks.EXPECT().Subscribe(face.SecondUnit),
		ticks.EXPECT().Subscribe(face.MinuteUnit),
	)
	f.Load(at(10, 15, 0), 50)

	f.OnTap(at(10, 15, 20))
	require.Equal(t, face.ModeSecond, f.Mode())
	assert.Equal(t, "20", surface.Text(face.RegionSecond))

	f.OnTick(at(10, 15, 21))
	f.OnTick(at(10, 15, 23))
	assert.Equal(t, face.ModeSecond, f.Mode())
	assert.Equal(t, "23", surface.Text(face.RegionSecond))

	f.OnTick(at(10, 15, 24))
	assert.Equal(t, face.ModeMinute, f.Mode())
	assert.Equal(t, "", surface.Text(face.RegionSecond))
}

func TestRepeatedTapExtendsSeconds(t *testing.T) {
	f, _, ticks := newTapFace(t)
	gomock.InOrder(
		ticks.EXPECT().Subscribe(face.MinuteUnit),
		ticks.EXPECT().Subscribe(face.SecondUnit),
	)
	f.Load(at(8, 0, 0), 50)

	f.OnTap(at(8, 0, 10))
	f.OnTick(at(8, 0, 12))
	f.OnTap(at(8, 0, 12))
	f.OnTick(at(8, 0, 14))
	f.OnTick(at(8, 0, 15))

	assert.Equal(t, face.ModeSecond, f.Mode())
}

func TestUnloadStopsEvents(t *testing.T) {
	f, surface, ticks := newTickFace(t)
	gomock.InOrder(
		ticks.EXPECT().Subscribe(face.SecondUnit),
		ticks.EXPECT().Unsubscribe(),
	)
	f.Load(at(11, 11, 11), 60)

	f.Unload()
	f.Unload()
	f.OnTick(at(12, 0, 0))
	f.OnBatteryChange(10)

	assert.False(t, f.Loaded())
	assert.Equal(t, "#11", surface.Text(face.RegionHour))
	assert.Equal(t, "60%", surface.Text(face.RegionBattery))
}

func TestEventsBeforeLoadAreIgnored(t *testing.T) {
	f, surface, _ := newTickFace(t)

	f.OnTick(at(12, 0, 0))
	f.OnBatteryChange(10)
	f.OnTap(at(12, 0, 0))

	assert.Equal(t, "", surface.Text(face.RegionHour))
	assert.Equal(t, "", surface.Text(face.RegionBattery))
}

func TestColorNameRegion(t *testing.T) {
	ctrl := gomock.NewController(t)
	ticks := mocks.NewMockTickService(ctrl)
	ticks.EXPECT().Subscribe(gomock.Any())
	surface := face.NewSurface()
	opts := face.DefaultOptions(face.VariantTick)
	opts.ShowColorName = true
	f := face.New(surface, ticks, opts)

	f.Load(at(0, 0, 0), 90)

	name := surface.Region(face.RegionColorName)
	assert.Equal(t, "BLACK", name.Text)
	assert.True(t, name.HasBox)
}

func TestLoadDrawsThroughDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	display := mocks.NewMockDisplay(ctrl)
	ticks := mocks.NewMockTickService(ctrl)

	display.EXPECT().SetBackground(domain.NewRGB(20, 5, 9)).Times(1)
	display.EXPECT().SetText(face.RegionBattery, "42%").Times(1)
	display.EXPECT().SetText(gomock.Any(), gomock.Any()).AnyTimes()
	display.EXPECT().SetTextColor(gomock.Any(), gomock.Any()).AnyTimes()
	display.EXPECT().SetBoxColor(gomock.Any(), gomock.Any()).AnyTimes()
	ticks.EXPECT().Subscribe(face.SecondUnit)

	f := face.New(display, ticks, face.DefaultOptions(face.VariantTick))
	f.Load(at(14, 5, 9), 42)
}

func TestParseVariant(t *testing.T) {
	v, err := face.ParseVariant("tap")
	require.NoError(t, err)
	assert.Equal(t, face.VariantTap, v)

	v, err = face.ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, face.VariantTick, v)

	_, err = face.ParseVariant("wrist")
	assert.Error(t, err)
}

func TestDefaultOptionsThresholds(t *testing.T) {
	assert.Equal(t, hexcolor.ThresholdTick, face.DefaultOptions(face.VariantTick).Classifier.Threshold)
	assert.Equal(t, hexcolor.ThresholdTap, face.DefaultOptions(face.VariantTap).Classifier.Threshold)
	assert.Equal(t, 3*time.Second, face.DefaultOptions(face.VariantTap).TapTimeout)
}
