// Package render draws textured quads in world coordinates.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jrbrian/drop/internal/domain/viewport"
)

// Batch collects quad draws between Begin and End.
//
// Quads are given in world units (bottom-left corner, Y up) and projected
// through the viewport. End covers the letterbox bars so nothing drawn
// outside the world shows.
type Batch struct {
	target  *ebiten.Image
	vp      *viewport.FitViewport
	drawing bool
	draws   int
	op      ebiten.DrawImageOptions

	// Event callbacks
	OnClear func(c color.Color)
	OnDraw  func(q Quad)
}

// Quad is one textured rectangle in world units
type Quad struct {
	Image      *ebiten.Image
	X, Y, W, H float32
}

// NewBatch creates an idle batch
func NewBatch() *Batch {
	return &Batch{}
}

// Begin starts a batch on target using vp's projection
func (b *Batch) Begin(target *ebiten.Image, vp *viewport.FitViewport) {
	if b.drawing {
		panic("render: Batch.Begin called twice without End")
	}
	b.target = target
	b.vp = vp
	b.drawing = true
	b.draws = 0
}

// Clear fills the whole target, bars included, with c
func (b *Batch) Clear(c color.Color) {
	if !b.drawing {
		panic("render: Batch.Clear called outside Begin/End")
	}
	b.target.Fill(c)
	if b.OnClear != nil {
		b.OnClear(c)
	}
}

// Draw stretches img over the world rectangle (x, y, w, h)
func (b *Batch) Draw(img *ebiten.Image, x, y, w, h float32) {
	if !b.drawing {
		panic("render: Batch.Draw called outside Begin/End")
	}
	bounds := img.Bounds()
	b.op.GeoM = QuadGeoM(b.vp, bounds.Dx(), bounds.Dy(), x, y, w, h)
	b.op.Filter = ebiten.FilterLinear
	b.target.DrawImage(img, &b.op)
	b.draws++
	if b.OnDraw != nil {
		b.OnDraw(Quad{Image: img, X: x, Y: y, W: w, H: h})
	}
}

// End finishes the batch and returns the number of quads drawn
func (b *Batch) End() int {
	if !b.drawing {
		panic("render: Batch.End called without Begin")
	}
	b.drawBars()
	b.drawing = false
	b.target = nil
	return b.draws
}

// Drawing reports whether the batch is between Begin and End
func (b *Batch) Drawing() bool {
	return b.drawing
}

// drawBars blacks out the window area outside the viewport
func (b *Batch) drawBars() {
	if !b.vp.Letterboxed() {
		return
	}
	ww, wh := b.vp.WindowSize()
	r := b.vp.Bounds()
	for _, bar := range [][4]int{
		{0, 0, ww, r.Min.Y},                      // top
		{0, r.Max.Y, ww, wh - r.Max.Y},           // bottom
		{0, r.Min.Y, r.Min.X, r.Dy()},            // left
		{r.Max.X, r.Min.Y, ww - r.Max.X, r.Dy()}, // right
	} {
		if bar[2] <= 0 || bar[3] <= 0 {
			continue
		}
		vector.DrawFilledRect(b.target, float32(bar[0]), float32(bar[1]), float32(bar[2]), float32(bar[3]), color.Black, false)
	}
}

// QuadGeoM returns the transform that maps an imgW x imgH image onto the
// world rectangle (x, y, w, h) in window pixels.
func QuadGeoM(vp *viewport.FitViewport, imgW, imgH int, x, y, w, h float32) ebiten.GeoM {
	var m ebiten.GeoM
	if imgW == 0 || imgH == 0 {
		return m
	}
	sx, sy := vp.Scale()
	m.Scale(float64(w)*sx/float64(imgW), float64(h)*sy/float64(imgH))

	// Images have a top-left origin, so anchor at the quad's top-left corner
	left, top := vp.Project(x, y+h)
	m.Translate(left, top)
	return m
}
