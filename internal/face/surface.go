package face

import "github.com/isabelacmor/hexwatch/internal/domain"

// RegionState is what a Surface holds for one region.
type RegionState struct {
	Text      string
	TextColor domain.RGB
	Box       domain.RGB
	HasBox    bool
}

// Surface is an in-memory Display. Renderers read it back to draw frames.
type Surface struct {
	background domain.RGB
	regions    map[Region]*RegionState
	revision   uint64
}

// NewSurface returns an empty surface with a black background.
func NewSurface() *Surface {
	return &Surface{regions: make(map[Region]*RegionState)}
}

func (s *Surface) region(r Region) *RegionState {
	st, ok := s.regions[r]
	if !ok {
		st = &RegionState{}
		s.regions[r] = st
	}
	return st
}

// SetBackground implements Display.
func (s *Surface) SetBackground(c domain.RGB) {
	s.background = c
	s.revision++
}

// SetText implements Display.
func (s *Surface) SetText(r Region, text string) {
	s.region(r).Text = text
	s.revision++
}

// SetTextColor implements Display.
func (s *Surface) SetTextColor(r Region, c domain.RGB) {
	s.region(r).TextColor = c
	s.revision++
}

// SetBoxColor implements Display.
func (s *Surface) SetBoxColor(r Region, c domain.RGB) {
	st := s.region(r)
	st.Box = c
	st.HasBox = true
	s.revision++
}

// Background returns the window background color.
func (s *Surface) Background() domain.RGB {
	return s.background
}

// Region returns a copy of the region state. Unknown regions are empty.
func (s *Surface) Region(r Region) RegionState {
	if st, ok := s.regions[r]; ok {
		return *st
	}
	return RegionState{}
}

// Text returns the text of a region.
func (s *Surface) Text(r Region) string {
	return s.Region(r).Text
}

// Revision increases on every change, so hosts can skip redundant redraws.
func (s *Surface) Revision() uint64 {
	return s.revision
}

var _ Display = (*Surface)(nil)
