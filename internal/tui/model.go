// Package tui hosts the face in a terminal with bubbletea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/isabelacmor/hexwatch/internal/face"
	"github.com/isabelacmor/hexwatch/internal/host"
)

// BatteryPollInterval is how often the battery is re-read.
const BatteryPollInterval = time.Minute

type tickMsg struct {
	t   time.Time
	gen int
}

type batteryMsg struct{}

// ticks is the face.TickService for the terminal. Each Subscribe starts a new
// generation and ticks from older generations are dropped.
type ticks struct {
	unit   face.TickUnit
	active bool
	gen    int
}

func (t *ticks) Subscribe(u face.TickUnit) {
	t.unit = u
	t.active = true
	t.gen++
}

func (t *ticks) Unsubscribe() {
	t.active = false
	t.gen++
}

// Options configure the terminal face.
type Options struct {
	Face    face.Options
	Battery host.BatterySource
	Now     func() time.Time
}

// Model is the bubbletea model wrapping a face.
type Model struct {
	face    *face.Face
	surface *face.Surface
	ticks   *ticks
	battery host.BatterySource
	now     func() time.Time

	width    int
	height   int
	quitting bool
}

// New loads a face onto a fresh surface.
func New(opts Options) Model {
	if opts.Battery == nil {
		opts.Battery = host.StaticBattery(host.FullCharge)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := Model{
		surface: face.NewSurface(),
		ticks:   &ticks{},
		battery: opts.Battery,
		now:     opts.Now,
	}
	m.face = face.New(m.surface, m.ticks, opts.Face)
	m.face.Load(m.now(), m.battery.Percent())
	return m
}

// Face returns the wrapped face.
func (m Model) Face() *face.Face { return m.face }

// Surface returns the surface the face draws on.
func (m Model) Surface() *face.Surface { return m.surface }

func (m Model) scheduleTick() tea.Cmd {
	if !m.ticks.active {
		return nil
	}
	gen := m.ticks.gen
	return tea.Every(m.ticks.unit.Duration(), func(t time.Time) tea.Msg {
		return tickMsg{t: t, gen: gen}
	})
}

func pollBattery() tea.Cmd {
	return tea.Tick(BatteryPollInterval, func(time.Time) tea.Msg {
		return batteryMsg{}
	})
}

// Init starts the tick subscription and battery polling.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.scheduleTick(), pollBattery())
}

// Update routes terminal events to the face.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			m.face.Unload()
			return m, tea.Quit
		case " ", "space", "t":
			gen := m.ticks.gen
			m.face.OnTap(m.now())
			if m.ticks.gen != gen {
				return m, m.scheduleTick()
			}
		}
		return m, nil

	case tickMsg:
		if msg.gen != m.ticks.gen || !m.ticks.active {
			return m, nil
		}
		m.face.OnTick(msg.t)
		return m, m.scheduleTick()

	case batteryMsg:
		if pct := m.battery.Percent(); pct != m.face.Battery() {
			m.face.OnBatteryChange(pct)
		}
		return m, pollBattery()
	}

	return m, nil
}
