package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBucket(t *testing.T) {
	b := NewBucket(3.5, 0, 1, 1)

	require.NotNil(t, b)
	assert.Equal(t, Rect{X: 3.5, Y: 0, Width: 1, Height: 1}, b.Bounds())
}

func TestBucket_SetCenterX(t *testing.T) {
	b := NewBucket(0, 0, 1, 1)

	b.SetCenterX(4)

	assert.Equal(t, float32(3.5), b.X)
	assert.Equal(t, float32(0), b.Y, "centering must not move the bucket vertically")
}

func TestBucket_TranslateX(t *testing.T) {
	b := NewBucket(2, 0, 1, 1)

	b.TranslateX(0.5)
	assert.Equal(t, float32(2.5), b.X)

	b.TranslateX(-1)
	assert.Equal(t, float32(1.5), b.X)
}

func TestBucket_ClampX(t *testing.T) {
	tests := []struct {
		name  string
		x     float32
		wantX float32
	}{
		{"inside", 3, 3},
		{"past left wall", -2, 0},
		{"past right wall", 7.8, 7},
		{"exactly at right limit", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBucket(tt.x, 0, 1, 1)
			b.ClampX(8)
			assert.Equal(t, tt.wantX, b.X)
		})
	}
}

func TestDroplet_Fall(t *testing.T) {
	d := &Droplet{X: 2, Y: 5, Width: 1, Height: 1}

	d.Fall(0.25)

	assert.Equal(t, float32(4.75), d.Y)
	assert.Equal(t, float32(2), d.X)
	assert.Equal(t, Rect{X: 2, Y: 4.75, Width: 1, Height: 1}, d.Bounds())
}

func TestDroplet_OffScreen(t *testing.T) {
	tests := []struct {
		name string
		y    float32
		want bool
	}{
		{"visible", 0.5, false},
		{"partially below", -0.5, false},
		{"bottom edge exactly at -height", -1, false},
		{"fully below", -1.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Droplet{Y: tt.y, Width: 1, Height: 1}
			assert.Equal(t, tt.want, d.OffScreen())
		})
	}
}
