package face

import (
	"testing"

	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSurfaceDefaults(t *testing.T) {
	s := NewSurface()

	assert.Equal(t, domain.NewRGB(0, 0, 0), s.Background())
	assert.Equal(t, RegionState{}, s.Region(RegionHour))
	assert.Zero(t, s.Revision())
}

func TestSurfaceRecordsChanges(t *testing.T) {
	s := NewSurface()
	red := domain.NewRGB(255, 0, 0)

	s.SetBackground(red)
	s.SetText(RegionDate, "03.14")
	s.SetTextColor(RegionDate, red)
	s.SetBoxColor(RegionDate, ColorAccentLight)

	st := s.Region(RegionDate)
	assert.Equal(t, red, s.Background())
	assert.Equal(t, "03.14", st.Text)
	assert.Equal(t, red, st.TextColor)
	assert.True(t, st.HasBox)
	assert.Equal(t, ColorAccentLight, st.Box)
	assert.Equal(t, uint64(4), s.Revision())
}

func TestSurfaceRegionIsACopy(t *testing.T) {
	s := NewSurface()
	s.SetText(RegionHour, "#10")

	st := s.Region(RegionHour)
	st.Text = "#99"

	assert.Equal(t, "#10", s.Text(RegionHour))
}
