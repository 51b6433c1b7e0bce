package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMod(t *testing.T) {
	tests := []struct {
		name string
		a    int
		n    int
		want int
	}{
		{"zero", 0, 12, 0},
		{"in range", 7, 12, 7},
		{"at modulus", 12, 12, 0},
		{"above modulus", 13, 12, 1},
		{"negative one", -1, 12, 11},
		{"negative modulus multiple", -24, 12, 0},
		{"large negative", -25, 12, 11},
		{"large positive", 145, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mod(tt.a, tt.n))
		})
	}
}

func TestMod_AlwaysNonNegative(t *testing.T) {
	for a := -100; a <= 100; a++ {
		got := Mod(a, 12)
		assert.GreaterOrEqual(t, got, 0, "a=%d", a)
		assert.Less(t, got, 12, "a=%d", a)
	}
}
