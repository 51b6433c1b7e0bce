package model

import "math/bits"

// PitchSet is an unordered set of pitch classes, one bit per class.
type PitchSet uint16

// With returns a copy of the set with p added.
func (s PitchSet) With(p Pitch) PitchSet {
	return s | 1<<uint(p)
}

// Contains reports whether p is a member of the set.
func (s PitchSet) Contains(p Pitch) bool {
	return s&(1<<uint(p)) != 0
}

// Len returns the number of distinct pitch classes in the set.
func (s PitchSet) Len() int {
	return bits.OnesCount16(uint16(s))
}
