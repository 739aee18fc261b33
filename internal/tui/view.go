package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/face"
	"github.com/isabelacmor/hexwatch/internal/render"
)

// barWidth fits "100%" and "12.31" with room between them.
const barWidth = 21

func color(c domain.RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// View draws the surface: big time digits over the date and battery bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	bg := color(m.surface.Background())
	var sections []string

	for _, r := range []face.Region{face.RegionHour, face.RegionMinute, face.RegionSecond} {
		st := m.surface.Region(r)
		style := lipgloss.NewStyle().Foreground(color(st.TextColor)).Background(bg)
		sections = append(sections, style.Render(bigText(render.Block, st.Text, "#00")), "")
	}

	if name := m.surface.Region(face.RegionColorName); name.Text != "" {
		style := lipgloss.NewStyle().
			Foreground(color(name.TextColor)).
			Background(color(name.Box)).
			Width(barWidth).
			Align(lipgloss.Center)
		sections = append(sections, style.Render(name.Text), "")
	}

	sections = append(sections, m.renderBar())

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	panel := lipgloss.NewStyle().Background(bg).Padding(1, 2).Render(body)
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")).Render("space/t tap · q quit")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, panel, "", help))
}

func (m Model) renderBar() string {
	date := m.surface.Region(face.RegionDate)
	battery := m.surface.Region(face.RegionBattery)

	box := color(date.Box)
	left := lipgloss.NewStyle().Foreground(color(battery.TextColor)).Background(box).
		Width(barWidth / 2).Align(lipgloss.Left).Render(" " + battery.Text)
	right := lipgloss.NewStyle().Foreground(color(date.TextColor)).Background(box).
		Width(barWidth - barWidth/2).Align(lipgloss.Right).Render(date.Text + " ")
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// bigText draws text with font glyphs as block characters. Empty text keeps the
// footprint of placeholder so the layout does not jump when seconds hide.
func bigText(font *render.Font, text, placeholder string) string {
	width := len([]rune(text))
	if width == 0 {
		width = len([]rune(placeholder))
	}
	runes := []rune(text)

	lines := make([]string, font.Height)
	for row := 0; row < font.Height; row++ {
		var b strings.Builder
		for i := 0; i < width; i++ {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", font.Spacing))
			}
			var bits uint8
			if i < len(runes) {
				bits = font.Glyph(runes[i])[row]
			}
			for col := 0; col < font.Width; col++ {
				if font.HasBitSet(bits, col) {
					b.WriteString("█")
				} else {
					b.WriteString(" ")
				}
			}
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}
