// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jrbrian/drop/internal/application/scene"
	"github.com/jrbrian/drop/internal/application/state"
)

// Game implements ebiten.Game and manages Scene transitions.
//
// It also turns ebiten's polling model into lifecycle callbacks: window size
// changes seen in Layout become Resize calls, focus changes become
// Pause/Resume, and Dispose ends the current scene after RunGame returns.
// Losing focus does not stop updates unless SetPauseOnFocusLoss is enabled.
type Game struct {
	current scene.Scene
	state   state.LifecycleState
	log     *log.Logger

	// Frame timing
	now     func() time.Time
	last    time.Time
	fixedDT float64

	focused          func() bool
	pauseOnFocusLoss bool

	width  int
	height int
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		current: initialScene,
		state:   state.StateCreated,
		log:     logger,
		now:     time.Now,
		focused: ebiten.IsFocused,
	}
	g.current.OnEnter()
	g.state = state.StateRunning
	return g
}

// SetClock replaces the wall clock used to measure frame time
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// SetFocusSource replaces the window focus query
func (g *Game) SetFocusSource(focused func() bool) {
	g.focused = focused
}

// SetPauseOnFocusLoss makes the game skip updates while unfocused. The
// first update after regaining focus then has a delta of 0.
func (g *Game) SetPauseOnFocusLoss(pause bool) {
	g.pauseOnFocusLoss = pause
}

// SetDT fixes the delta time passed to every update.
// Useful for testing or custom frame rates. Zero restores wall-clock timing.
func (g *Game) SetDT(dt float64) {
	g.fixedDT = dt
}

// State returns the lifecycle state
func (g *Game) State() state.LifecycleState {
	return g.state
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if !g.state.Active() {
		return ebiten.Termination
	}

	g.checkFocus()
	if g.state == state.StatePaused && g.pauseOnFocusLoss {
		return nil
	}

	next, err := g.current.Update(g.delta())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.disposeScene(g.current)
		g.current = next
		g.current.OnEnter()
		if r, ok := g.current.(scene.Resizer); ok && g.width > 0 && g.height > 0 {
			r.Resize(g.width, g.height)
		}
	}

	return nil
}

// delta returns seconds since the previous update, 0 on the first one
func (g *Game) delta() float64 {
	if g.fixedDT > 0 {
		return g.fixedDT
	}
	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return 0
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	return dt
}

func (g *Game) checkFocus() {
	focused := g.focused()
	switch {
	case !focused && g.state == state.StateRunning:
		g.state = state.StatePaused
		g.log.Debug("window lost focus")
		if p, ok := g.current.(scene.Pauser); ok {
			p.Pause()
		}
	case focused && g.state == state.StatePaused:
		g.state = state.StateRunning
		if g.pauseOnFocusLoss {
			// Time spent unfocused is not simulated
			g.last = time.Time{}
		}
		g.log.Debug("window regained focus")
		if p, ok := g.current.(scene.Pauser); ok {
			p.Resume()
		}
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout uses the window size as the screen size so the scene's viewport
// can fit the world itself. Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if r, ok := g.current.(scene.Resizer); ok {
			r.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}

// Dispose ends the current scene and releases its resources.
// Call it once RunGame has returned.
func (g *Game) Dispose() {
	if g.state == state.StateDisposed {
		return
	}
	g.current.OnExit()
	g.disposeScene(g.current)
	g.state = state.StateDisposed
}

func (g *Game) disposeScene(s scene.Scene) {
	if d, ok := s.(scene.Disposer); ok {
		d.Dispose()
	}
}
