package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jrbrian/drop/internal/domain/entity"
	"github.com/jrbrian/drop/internal/domain/viewport"
	"github.com/jrbrian/drop/internal/infrastructure/config"
)

// InputSystem handles player input
type InputSystem struct {
	config   config.BucketConfig
	touchIDs []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg config.BucketConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the current input state
type InputState struct {
	// Pointer is a touch or a held left mouse button, in window pixels
	PointerActive bool
	PointerX      float64
	PointerY      float64

	Left  bool
	Right bool
}

// GetInput reads the current input state.
// The first active touch wins over the mouse.
func (s *InputSystem) GetInput() InputState {
	in := InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(s.touchIDs[0])
		in.PointerActive = true
		in.PointerX, in.PointerY = float64(tx), float64(ty)
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.PointerActive = true
		in.PointerX, in.PointerY = float64(mx), float64(my)
	}

	return in
}

// UpdateBucket moves the bucket according to input.
// The pointer sets the bucket's center, then held keys move it at the
// configured speed. The result is not clamped; see Bucket.ClampX.
func (s *InputSystem) UpdateBucket(bucket *entity.Bucket, input InputState, vp *viewport.FitViewport, dt float32) {
	if input.PointerActive {
		wx, _ := vp.Unproject(input.PointerX, input.PointerY)
		bucket.SetCenterX(wx)
	}

	if input.Right {
		bucket.TranslateX(float32(s.config.Speed * dt))
	} else if input.Left {
		bucket.TranslateX(-float32(s.config.Speed * dt))
	}
}
