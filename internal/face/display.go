package face

//go:generate mockgen -destination=mocks/mock_face.go -package=mocks github.com/isabelacmor/hexwatch/internal/face Display,TickService

import (
	"fmt"
	"time"

	"github.com/isabelacmor/hexwatch/internal/domain"
)

// Region identifies one text element of the face.
type Region int

const (
	RegionHour Region = iota
	RegionMinute
	RegionSecond
	RegionDate
	RegionBattery
	RegionColorName
)

// Regions lists every region in drawing order.
var Regions = []Region{RegionHour, RegionMinute, RegionSecond, RegionDate, RegionBattery, RegionColorName}

func (r Region) String() string {
	switch r {
	case RegionHour:
		return "hour"
	case RegionMinute:
		return "minute"
	case RegionSecond:
		return "second"
	case RegionDate:
		return "date"
	case RegionBattery:
		return "battery"
	case RegionColorName:
		return "color-name"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// Display is the surface the host gives the face to draw on.
type Display interface {
	// SetBackground sets the window background color.
	SetBackground(c domain.RGB)
	// SetText replaces the text of a region.
	SetText(r Region, text string)
	// SetTextColor sets the foreground color of a region's text.
	SetTextColor(r Region, c domain.RGB)
	// SetBoxColor fills the region's box behind the text. Regions are transparent until set.
	SetBoxColor(r Region, c domain.RGB)
}

// TickUnit is the granularity of the host tick timer.
type TickUnit int

const (
	SecondUnit TickUnit = iota
	MinuteUnit
)

// Duration returns the tick period.
func (u TickUnit) Duration() time.Duration {
	if u == MinuteUnit {
		return time.Minute
	}
	return time.Second
}

func (u TickUnit) String() string {
	if u == MinuteUnit {
		return "minute"
	}
	return "second"
}

// TickService is the host tick timer. Subscribing again replaces the previous subscription.
type TickService interface {
	Subscribe(unit TickUnit)
	Unsubscribe()
}
