package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 3, Y: 0, Width: 1, Height: 1}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", Rect{X: 3, Y: 0, Width: 1, Height: 1}, true},
		{"partial right", Rect{X: 3.5, Y: 0.5, Width: 1, Height: 1}, true},
		{"contained", Rect{X: 3.25, Y: 0.25, Width: 0.5, Height: 0.5}, true},
		{"touching right edge", Rect{X: 4, Y: 0, Width: 1, Height: 1}, false},
		{"touching top edge", Rect{X: 3, Y: 1, Width: 1, Height: 1}, false},
		{"far left", Rect{X: 0, Y: 0, Width: 1, Height: 1}, false},
		{"above", Rect{X: 3, Y: 2, Width: 1, Height: 1}, false},
		{"below", Rect{X: 3, Y: -1.5, Width: 1, Height: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}

	assert.Equal(t, float32(4), r.Right())
	assert.Equal(t, float32(6), r.Top())
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float32
		want      float32
	}{
		{"inside", 2, 0, 7, 2},
		{"below", -1.5, 0, 7, 0},
		{"above", 9, 0, 7, 7},
		{"on lower bound", 0, 0, 7, 0},
		{"on upper bound", 7, 0, 7, 7},
		{"inverted range", 5, 0, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}
