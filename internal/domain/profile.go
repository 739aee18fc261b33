package domain

import "strings"

// DisplaySize represents display dimensions.
type DisplaySize struct {
	Width  int
	Height int
}

// Profile describes a display the face can be rendered for.
type Profile struct {
	Name string
	Size DisplaySize
}

// Known display profiles.
var (
	// ProfileBasalt is the 144x168 color watch screen the face was designed for.
	ProfileBasalt = Profile{Name: "basalt", Size: DisplaySize{Width: 144, Height: 168}}

	// ProfilePixoo64 is the 64x64 Pixoo LED matrix.
	ProfilePixoo64 = Profile{Name: "pixoo64", Size: DisplaySize{Width: 64, Height: 64}}
)

// Profiles lists every known profile.
var Profiles = []Profile{ProfileBasalt, ProfilePixoo64}

// LookupProfile finds a profile by name (case insensitive).
func LookupProfile(name string) (Profile, bool) {
	for _, p := range Profiles {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Profile{}, false
}

// NewFrame creates a black frame sized for the profile.
func (p Profile) NewFrame() *Frame {
	return NewFrame(p.Size.Width, p.Size.Height)
}
