package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isabelacmor/hexwatch/internal/face"
	"github.com/isabelacmor/hexwatch/internal/host"
	"github.com/isabelacmor/hexwatch/internal/render"
)

var base = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTapModel() Model {
	return New(Options{
		Face:    face.DefaultOptions(face.VariantTap),
		Battery: host.StaticBattery(80),
		Now:     func() time.Time { return base },
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewLoadsFace(t *testing.T) {
	m := newTapModel()

	assert.True(t, m.Face().Loaded())
	assert.Equal(t, "#09", m.Surface().Text(face.RegionHour))
	assert.Equal(t, "", m.Surface().Text(face.RegionSecond))
	assert.Equal(t, "80%", m.Surface().Text(face.RegionBattery))
	assert.Equal(t, face.MinuteUnit, m.ticks.unit)
	assert.NotNil(t, m.Init())
}

func TestTapShowsSeconds(t *testing.T) {
	m := newTapModel()
	gen := m.ticks.gen

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	assert.Equal(t, "53", m.Surface().Text(face.RegionSecond))
	assert.Equal(t, face.SecondUnit, m.ticks.unit)
	assert.Equal(t, gen+1, m.ticks.gen)
	assert.NotNil(t, cmd)

	// a second tap inside second mode keeps the subscription
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	assert.Equal(t, gen+1, m.ticks.gen)
	assert.Nil(t, cmd)
}

func TestStaleTicksAreDropped(t *testing.T) {
	m := newTapModel()
	stale := m.ticks.gen
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})

	m, cmd := update(t, m, tickMsg{t: base.Add(time.Minute), gen: stale})
	assert.Nil(t, cmd)
	assert.Equal(t, "26", m.Surface().Text(face.RegionMinute))

	m, cmd = update(t, m, tickMsg{t: base.Add(time.Second), gen: m.ticks.gen})
	assert.NotNil(t, cmd)
	assert.Equal(t, "54", m.Surface().Text(face.RegionSecond))
}

func TestTimeoutReturnsToMinutes(t *testing.T) {
	m := newTapModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})

	m, _ = update(t, m, tickMsg{t: base.Add(4 * time.Second), gen: m.ticks.gen})
	assert.Equal(t, "", m.Surface().Text(face.RegionSecond))
	assert.Equal(t, face.MinuteUnit, m.ticks.unit)
}

func TestQuitUnloads(t *testing.T) {
	m := newTapModel()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Face().Loaded())
	assert.False(t, m.ticks.active)
	assert.Equal(t, "", m.View())
}

func TestBatteryPoll(t *testing.T) {
	battery := host.StaticBattery(80)
	m := New(Options{Face: face.DefaultOptions(face.VariantTick), Battery: battery, Now: func() time.Time { return base }})
	m.battery = host.StaticBattery(35)

	m, cmd := update(t, m, batteryMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, "35%", m.Surface().Text(face.RegionBattery))
}

func TestView(t *testing.T) {
	m := newTapModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 50})

	view := m.View()
	assert.Contains(t, view, "80%")
	assert.Contains(t, view, "03.14")
	assert.Contains(t, view, "█")
}

func TestBigText(t *testing.T) {
	out := bigText(render.Block, "1", "")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "  █  ", lines[0])
	assert.Equal(t, " ███ ", lines[6])

	blank := bigText(render.Block, "", "#00")
	for _, line := range strings.Split(blank, "\n") {
		assert.Equal(t, strings.Repeat(" ", 17), line)
	}
}
