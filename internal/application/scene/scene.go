// Package scene defines the Scene interface for game screens.
//
// A scene owns the state of one screen and receives the platform's
// per-frame and lifecycle callbacks through the game loop manager.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene state.
	// dt is the wall-clock time in seconds since the previous frame.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Resizer is implemented by scenes that react to window size changes.
type Resizer interface {
	Resize(width, height int)
}

// Pauser is implemented by scenes that react to the app losing or
// regaining focus.
type Pauser interface {
	Pause()
	Resume()
}

// Disposer is implemented by scenes holding resources that must be
// released when the game shuts down.
type Disposer interface {
	Dispose()
}
