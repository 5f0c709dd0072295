package playing

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/jrbrian/drop/internal/application/system"
	"github.com/jrbrian/drop/internal/domain/entity"
	"github.com/jrbrian/drop/internal/domain/viewport"
	"github.com/jrbrian/drop/internal/infrastructure/config"
)

// Sound is a one-shot sound effect
type Sound interface {
	Play()
}

// Stats counts what happened during a session
type Stats struct {
	Frames  int
	Spawned int
	Caught  int
	Missed  int
}

// Simulation owns all mutable game state: the bucket, the droplets, the
// spawn timer and the viewport. It does no rendering and no I/O apart from
// triggering the catch sound, so it runs the same with or without a window.
type Simulation struct {
	config   *config.Config
	bucket   *entity.Bucket
	droplets *system.DropletSystem
	input    *system.InputSystem
	viewport *viewport.FitViewport
	catch    Sound
	stats    Stats
	resized  bool
	log      *log.Logger
}

// NewSimulation creates a simulation with the bucket at its start position
func NewSimulation(cfg *config.Config, rng *rand.Rand, catch Sound, logger *log.Logger) *Simulation {
	s := &Simulation{
		config:   cfg,
		bucket:   entity.NewBucket(cfg.Bucket.StartX, cfg.Bucket.StartY, cfg.Bucket.Width, cfg.Bucket.Height),
		droplets: system.NewDropletSystem(cfg.Drop, cfg.World, rng),
		input:    system.NewInputSystem(cfg.Bucket),
		viewport: viewport.NewFit(cfg.World.Width, cfg.World.Height),
		catch:    catch,
		log:      logger,
	}

	s.droplets.OnCatch = func(d entity.Droplet) {
		s.stats.Caught++
		s.log.Debug("droplet caught", "id", d.ID, "x", d.X, "y", d.Y)
		if s.catch != nil {
			s.catch.Play()
		}
	}
	s.droplets.OnMiss = func(d entity.Droplet) {
		s.stats.Missed++
		s.log.Debug("droplet missed", "id", d.ID, "x", d.X)
	}

	return s
}

// Resize fits the world into a window of the given size. The first resize
// always centers the camera; later ones only if the config asks for it.
func (s *Simulation) Resize(width, height int) {
	center := !s.resized || s.config.Viewport.CenterOnResize
	s.viewport.Update(width, height, center)
	s.resized = true
	s.log.Debug("viewport resized", "width", width, "height", height, "bounds", s.viewport.Bounds(), "centered", center)
}

// HandleInput moves the bucket. Bounds are enforced by Update.
func (s *Simulation) HandleInput(in system.InputState, dt float32) {
	s.input.UpdateBucket(s.bucket, in, s.viewport, dt)
}

// Update advances the world by dt seconds
func (s *Simulation) Update(dt float32) {
	s.bucket.ClampX(s.config.World.Width)

	res := s.droplets.Update(s.bucket.Bounds(), dt)
	s.stats.Spawned += res.Spawned
	s.stats.Frames++
}

// Step runs one frame: input, then update
func (s *Simulation) Step(in system.InputState, dt float32) {
	s.HandleInput(in, dt)
	s.Update(dt)
}

// Bucket returns a copy of the bucket
func (s *Simulation) Bucket() entity.Bucket {
	return *s.bucket
}

// Droplets returns the live droplets, valid until the next Update
func (s *Simulation) Droplets() []entity.Droplet {
	return s.droplets.Droplets()
}

// PlaceDroplet drops a droplet at an exact position
func (s *Simulation) PlaceDroplet(x, y float32) entity.Droplet {
	return s.droplets.Place(x, y)
}

// Viewport returns the world-to-window mapping
func (s *Simulation) Viewport() *viewport.FitViewport {
	return s.viewport
}

// Stats returns the session counters
func (s *Simulation) Stats() Stats {
	return s.stats
}
