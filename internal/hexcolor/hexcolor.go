// Package hexcolor turns the time of day into a color.
//
// The six decimal digits of the clock (HHMMSS or IIMMSS) are read as if they
// were a hex color code: each pair of digits becomes one channel, computed as
// first*16 + second. Clock digits never exceed 9, so every channel lies in
// [0, 153] and the result is never a "true" hex reading of the digits.
package hexcolor

import (
	"fmt"
	"time"

	"github.com/isabelacmor/hexwatch/internal/domain"
)

// Layouts used to format the clock digits.
const (
	Layout24Hour = "150405"
	Layout12Hour = "030405"
)

// MaxChannel is the largest channel value a clock can produce (digits 9, 9).
const MaxChannel = 9*16 + 9

// ClockDigits holds the six decimal digits of a formatted time.
type ClockDigits [6]uint8

// DigitsFromTime formats t as HHMMSS (24-hour) or IIMMSS (12-hour, zero padded).
func DigitsFromTime(t time.Time, use24h bool) ClockDigits {
	layout := Layout12Hour
	if use24h {
		layout = Layout24Hour
	}
	s := t.Format(layout)

	var d ClockDigits
	for i := range d {
		d[i] = s[i] - '0'
	}
	return d
}

// ParseDigits parses six decimal digits written as "HHMMSS" or "HH:MM:SS".
func ParseDigits(s string) (ClockDigits, error) {
	raw := s
	if len(s) == 8 {
		if s[2] != ':' || s[5] != ':' {
			return ClockDigits{}, fmt.Errorf("invalid clock digits %q: want HHMMSS or HH:MM:SS", s)
		}
		raw = s[:2] + s[3:5] + s[6:]
	}
	if len(raw) != 6 {
		return ClockDigits{}, fmt.Errorf("invalid clock digits %q: want HHMMSS or HH:MM:SS", s)
	}

	var d ClockDigits
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			return ClockDigits{}, fmt.Errorf("invalid clock digit %q in %q", rune(c), s)
		}
		d[i] = c - '0'
	}
	return d, nil
}

// String returns the digits as they would be displayed, e.g. "140509".
func (d ClockDigits) String() string {
	b := make([]byte, len(d))
	for i, v := range d {
		b[i] = '0' + v
	}
	return string(b)
}

// Triple combines each digit pair into a channel: (d0*16+d1, d2*16+d3, d4*16+d5).
func (d ClockDigits) Triple() domain.RGB {
	return domain.NewRGB(
		d[0]*16+d[1],
		d[2]*16+d[3],
		d[4]*16+d[5],
	)
}

// ColorAt returns the color for the given time.
func ColorAt(t time.Time, use24h bool) domain.RGB {
	return DigitsFromTime(t, use24h).Triple()
}
