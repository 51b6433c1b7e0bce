package model

import (
	"fmt"
	"strings"
)

// TuningScheme is a rule for deriving open-string pitches from a string
// count and a reference pitch.
type TuningScheme int

// Available tuning schemes.
const (
	// Fourths steps a perfect fourth (5 semitones) per string, the common
	// bass/guitar convention.
	Fourths TuningScheme = iota
	// ScaleCentered steps a major third (4 semitones) per string, keeping
	// scale shapes identical across strings.
	ScaleCentered
)

const (
	fourthStep     = 5
	majorThirdStep = 4
)

var tuningNames = [...]string{
	Fourths:       "fourths",
	ScaleCentered: "scale_centered",
}

func (t TuningScheme) String() string {
	if t < 0 || int(t) >= len(tuningNames) {
		return "invalid"
	}

	return tuningNames[t]
}

// Tunings returns all available tuning schemes.
func Tunings() []TuningScheme {
	return []TuningScheme{Fourths, ScaleCentered}
}

// ParseTuning converts a tuning-scheme name into a TuningScheme,
// case-insensitively.
func ParseTuning(name string) (TuningScheme, error) {
	for i, candidate := range tuningNames {
		if strings.EqualFold(candidate, strings.TrimSpace(name)) {
			return TuningScheme(i), nil
		}
	}

	return 0, fmt.Errorf("unknown tuning scheme %q", name)
}

// DeriveStrings returns the open-string pitch classes for count strings,
// low to high, starting from reference. Total for count >= 0: a zero count
// yields an empty sequence, and repeats past 12 strings are expected cyclic
// behavior.
func (t TuningScheme) DeriveStrings(count int, reference Pitch) []Pitch {
	if count <= 0 {
		return []Pitch{}
	}

	open := make([]Pitch, count)
	open[0] = reference

	step := fourthStep
	if t == ScaleCentered {
		step = majorThirdStep
	}

	for i := 1; i < count; i++ {
		open[i] = open[i-1].OffsetBy(step)
	}

	return open
}

// Guitar is a concrete tuning instance: the derived open strings plus the
// number of frets available per string.
type Guitar struct {
	Strings []Pitch
	Frets   int
}

// NewGuitar derives a Guitar from a tuning scheme. frets is clamped to zero
// from below so the value always satisfies Frets >= 0.
func NewGuitar(scheme TuningScheme, stringCount int, reference Pitch, frets int) Guitar {
	if frets < 0 {
		frets = 0
	}

	return Guitar{
		Strings: scheme.DeriveStrings(stringCount, reference),
		Frets:   frets,
	}
}
