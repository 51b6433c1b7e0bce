package model

import (
	"fmt"
	"strings"
)

// ScaleMode identifies an interval pattern for building scales.
type ScaleMode int

// Available scale modes. The set is closed: every consumer switches
// exhaustively over it, so adding a mode means adding a constant, a name and
// an interval row here.
const (
	Major ScaleMode = iota
)

var modeNames = [...]string{
	Major: "Major",
}

// modeIntervals holds the semitone steps of each mode. Every row sums to 12
// so that walking a full pattern from any root returns to the root.
var modeIntervals = [...][]int{
	Major: {2, 2, 1, 2, 2, 2, 1},
}

func (m ScaleMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "invalid"
	}

	return modeNames[m]
}

// Intervals returns the semitone steps of the mode. The slice is a copy;
// callers may modify it freely.
func (m ScaleMode) Intervals() []int {
	intervals := modeIntervals[m]
	out := make([]int, len(intervals))
	copy(out, intervals)

	return out
}

// Modes returns all available scale modes.
func Modes() []ScaleMode {
	return []ScaleMode{Major}
}

// ParseMode converts a mode name into a ScaleMode, case-insensitively.
func ParseMode(name string) (ScaleMode, error) {
	for i, candidate := range modeNames {
		if strings.EqualFold(candidate, strings.TrimSpace(name)) {
			return ScaleMode(i), nil
		}
	}

	return 0, fmt.Errorf("unknown scale mode %q", name)
}

// Scale is a root pitch class combined with a mode. The note sequence and
// membership set are derived on demand, never stored.
type Scale struct {
	Root Pitch
	Mode ScaleMode
}

func (s Scale) String() string {
	return fmt.Sprintf("%s %s", s.Root, s.Mode)
}

// NotesList returns the scale degrees in order: the root followed by one
// pitch per interval of the mode. For full-cycle patterns the last element
// equals the root again, so the Major list has 8 elements.
func (s Scale) NotesList() []Pitch {
	intervals := modeIntervals[s.Mode]
	notes := make([]Pitch, 0, len(intervals)+1)
	notes = append(notes, s.Root)

	current := s.Root
	for _, interval := range intervals {
		current = current.OffsetBy(interval)
		notes = append(notes, current)
	}

	return notes
}

// NoteSet returns the distinct pitch classes of the scale, for membership
// tests during rendering.
func (s Scale) NoteSet() PitchSet {
	var set PitchSet
	for _, note := range s.NotesList() {
		set = set.With(note)
	}

	return set
}
