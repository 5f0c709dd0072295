// Package viewport maps the fixed-size game world onto a window of any size.
//
// The world is scaled uniformly to the largest size that fits the window,
// leaving black bars on the sides (pillarbox) or top and bottom (letterbox)
// when the aspect ratios differ.
package viewport

import (
	"image"
	"math"
)

// FitViewport keeps the whole world visible while preserving its aspect ratio
type FitViewport struct {
	worldW, worldH float32

	// Camera center in world units
	camX, camY float32

	// Window size in pixels
	windowW, windowH int

	// Area of the window the world is drawn into (top-left origin, Y down)
	bounds image.Rectangle
}

// NewFit creates a viewport for a world of the given size.
// The camera starts at the world origin until Update recenters it.
func NewFit(worldW, worldH float32) *FitViewport {
	return &FitViewport{worldW: worldW, worldH: worldH}
}

// Update recomputes the screen mapping for a new window size.
// When centerCamera is true the camera moves to the middle of the world.
func (v *FitViewport) Update(windowW, windowH int, centerCamera bool) {
	v.windowW = windowW
	v.windowH = windowH

	scale := math.Min(float64(windowW)/float64(v.worldW), float64(windowH)/float64(v.worldH))
	w := int(math.Round(float64(v.worldW) * scale))
	h := int(math.Round(float64(v.worldH) * scale))
	x := (windowW - w) / 2
	y := (windowH - h) / 2
	v.bounds = image.Rect(x, y, x+w, y+h)

	if centerCamera {
		v.camX = v.worldW / 2
		v.camY = v.worldH / 2
	}
}

// WorldWidth returns the world width in world units
func (v *FitViewport) WorldWidth() float32 {
	return v.worldW
}

// WorldHeight returns the world height in world units
func (v *FitViewport) WorldHeight() float32 {
	return v.worldH
}

// Camera returns the camera center in world units
func (v *FitViewport) Camera() (x, y float32) {
	return v.camX, v.camY
}

// WindowSize returns the window size passed to the last Update
func (v *FitViewport) WindowSize() (w, h int) {
	return v.windowW, v.windowH
}

// Bounds returns the window area covered by the world, in pixels
func (v *FitViewport) Bounds() image.Rectangle {
	return v.bounds
}

// Letterboxed reports whether the world leaves part of the window uncovered
func (v *FitViewport) Letterboxed() bool {
	return v.bounds.Dx() != v.windowW || v.bounds.Dy() != v.windowH
}

// Scale returns pixels per world unit along each axis
func (v *FitViewport) Scale() (sx, sy float64) {
	if v.worldW == 0 || v.worldH == 0 {
		return 0, 0
	}
	return float64(v.bounds.Dx()) / float64(v.worldW), float64(v.bounds.Dy()) / float64(v.worldH)
}

// left and bottom return the world coordinates of the visible area's edges
func (v *FitViewport) left() float64 {
	return float64(v.camX) - float64(v.worldW)/2
}

func (v *FitViewport) bottom() float64 {
	return float64(v.camY) - float64(v.worldH)/2
}

// Project converts a world point to window pixels (top-left origin)
func (v *FitViewport) Project(wx, wy float32) (sx, sy float64) {
	scaleX, scaleY := v.Scale()
	sx = float64(v.bounds.Min.X) + (float64(wx)-v.left())*scaleX
	sy = float64(v.bounds.Max.Y) - (float64(wy)-v.bottom())*scaleY
	return sx, sy
}

// Unproject converts window pixels (top-left origin) to a world point
func (v *FitViewport) Unproject(sx, sy float64) (wx, wy float32) {
	scaleX, scaleY := v.Scale()
	if scaleX == 0 || scaleY == 0 {
		return float32(v.left()), float32(v.bottom())
	}
	wx = float32(v.left() + (sx-float64(v.bounds.Min.X))/scaleX)
	wy = float32(v.bottom() + (float64(v.bounds.Max.Y)-sy)/scaleY)
	return wx, wy
}
