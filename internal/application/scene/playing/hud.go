package playing

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin      = 8
	hudLineSpacing = 16
)

// hud draws debug text in window pixels, outside the viewport
type hud struct {
	face *text.GoXFace
	op   text.DrawOptions
}

func newHUD() *hud {
	h := &hud{face: text.NewGoXFace(basicfont.Face7x13)}
	h.op.LineSpacing = hudLineSpacing
	return h
}

func (h *hud) Draw(screen *ebiten.Image, msg string) {
	h.op.GeoM.Reset()
	h.op.GeoM.Translate(hudMargin, hudMargin)
	text.Draw(screen, msg, h.face, &h.op)
}

func hudText(fps, tps float64, s *Simulation) string {
	st := s.Stats()
	b := s.Bucket()
	return fmt.Sprintf("FPS: %.1f TPS: %.1f\nDrops: %d\nCaught: %d Missed: %d\nBucket: %.2f",
		fps, tps, len(s.Droplets()), st.Caught, st.Missed, b.X)
}
