package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuningScheme_DeriveStrings(t *testing.T) {
	tests := []struct {
		name      string
		scheme    TuningScheme
		count     int
		reference Pitch
		want      []Pitch
	}{
		{"six string fourths", Fourths, 6, E, []Pitch{E, A, D, G, C, F}},
		{"four string bass", Fourths, 4, E, []Pitch{E, A, D, G}},
		{"scale centered from C", ScaleCentered, 4, C, []Pitch{C, E, GSharp, C}},
		{"scale centered single string", ScaleCentered, 1, D, []Pitch{D}},
		{"zero strings", Fourths, 0, E, []Pitch{}},
		{"negative count", ScaleCentered, -3, C, []Pitch{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.scheme.DeriveStrings(tt.count, tt.reference)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTuningScheme_DeriveStrings_FirstIsReference(t *testing.T) {
	for _, scheme := range Tunings() {
		for _, reference := range Pitches() {
			strings := scheme.DeriveStrings(3, reference)
			require.Len(t, strings, 3)
			assert.Equal(t, reference, strings[0], "scheme=%s ref=%s", scheme, reference)
		}
	}
}

func TestTuningScheme_DeriveStrings_RepeatsPastTwelve(t *testing.T) {
	// 13 strings of major thirds cycle back through the same three classes.
	strings := ScaleCentered.DeriveStrings(13, C)
	require.Len(t, strings, 13)
	assert.Equal(t, strings[0], strings[3])
	assert.Equal(t, strings[1], strings[4])
}

func TestParseTuning(t *testing.T) {
	scheme, err := ParseTuning("fourths")
	require.NoError(t, err)
	assert.Equal(t, Fourths, scheme)

	scheme, err = ParseTuning("Scale_Centered")
	require.NoError(t, err)
	assert.Equal(t, ScaleCentered, scheme)

	_, err = ParseTuning("drop_d")
	require.Error(t, err)
}

func TestNewGuitar(t *testing.T) {
	guitar := NewGuitar(Fourths, 6, E, 24)
	assert.Equal(t, []Pitch{E, A, D, G, C, F}, guitar.Strings)
	assert.Equal(t, 24, guitar.Frets)

	// Negative fret counts clamp to zero.
	guitar = NewGuitar(Fourths, 2, E, -5)
	assert.Equal(t, 0, guitar.Frets)
	assert.Len(t, guitar.Strings, 2)
}
