// Package model defines the music-theory value types for fretboard diagrams.
package model

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/fretwise/pkg"
)

// PitchClassCount is the number of pitch classes in the chromatic octave.
const PitchClassCount = 12

// Pitch is one of the 12 pitch classes, ordered chromatically from C.
// Octave information is deliberately absent: frets and tunings only care
// about the class.
type Pitch int

// The canonical chromatic order. Sharp spellings only, no enharmonics.
const (
	C Pitch = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var pitchNames = [PitchClassCount]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

func (p Pitch) String() string {
	if p < 0 || int(p) >= PitchClassCount {
		return "invalid"
	}

	return pitchNames[p]
}

// OffsetBy returns the pitch class n semitones ahead of p in the chromatic
// cycle. n may be negative or exceed 12; the wrap is Euclidean, so
// C.OffsetBy(-1) == B and p.OffsetBy(12) == p. Total over all integers.
//
// This is also the indexed form of the infinite cyclic sequence starting at
// p: the note sounding at fret n of an open string p is p.OffsetBy(n).
func (p Pitch) OffsetBy(n int) Pitch {
	return Pitch(pkg.Mod(int(p)+n, PitchClassCount))
}

// Pitches returns all 12 pitch classes in canonical order.
func Pitches() []Pitch {
	all := make([]Pitch, PitchClassCount)
	for i := range all {
		all[i] = Pitch(i)
	}

	return all
}

// ParsePitch converts a pitch-class name into a Pitch. It accepts the
// canonical sharp names case-insensitively, with either "#" or a trailing
// "s" marking the sharp (e.g. "C#", "c#", "Cs", "cs").
func ParsePitch(name string) (Pitch, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if len(normalized) == 2 && normalized[1] == 'S' {
		normalized = normalized[:1] + "#"
	}

	for i, candidate := range pitchNames {
		if candidate == normalized {
			return Pitch(i), nil
		}
	}

	return 0, fmt.Errorf("unknown pitch class %q", name)
}
