package system

import (
	"math/rand"

	"github.com/jrbrian/drop/internal/domain/entity"
	"github.com/jrbrian/drop/internal/infrastructure/config"
)

// StepResult summarizes what happened to droplets during one Update
type StepResult struct {
	Caught  int
	Missed  int
	Spawned int
}

// DropletSystem moves, spawns and removes droplets
type DropletSystem struct {
	config config.DropConfig
	worldW float32
	worldH float32
	rng    *rand.Rand

	droplets []entity.Droplet
	timer    float32
	nextID   entity.EntityID

	// Event callbacks
	OnCatch func(d entity.Droplet)
	OnMiss  func(d entity.Droplet)
}

// NewDropletSystem creates a droplet system for a world of the given size
func NewDropletSystem(cfg config.DropConfig, world config.WorldConfig, rng *rand.Rand) *DropletSystem {
	return &DropletSystem{
		config:   cfg,
		worldW:   world.Width,
		worldH:   world.Height,
		rng:      rng,
		droplets: make([]entity.Droplet, 0, 16),
		nextID:   1,
	}
}

// Update advances every droplet by dt seconds against the bucket's bounds,
// then advances the spawn timer.
func (s *DropletSystem) Update(bucket entity.Rect, dt float32) StepResult {
	var res StepResult
	fall := float32(s.config.Speed * dt)

	// Walk back to front so swap-removal never skips a droplet:
	// the element moved into slot i has already been visited.
	for i := len(s.droplets) - 1; i >= 0; i-- {
		d := &s.droplets[i]
		d.Fall(fall)

		switch {
		case d.OffScreen():
			gone := *d
			s.remove(i)
			res.Missed++
			if s.OnMiss != nil {
				s.OnMiss(gone)
			}
		case d.Bounds().Overlaps(bucket):
			caught := *d
			s.remove(i)
			res.Caught++
			if s.OnCatch != nil {
				s.OnCatch(caught)
			}
		}
	}

	s.timer += dt
	if s.timer > s.config.SpawnInterval {
		s.timer = 0
		s.Spawn()
		res.Spawned++
	}

	return res
}

// Spawn adds a droplet at a random x along the top of the world
func (s *DropletSystem) Spawn() entity.Droplet {
	d := entity.Droplet{
		ID:     s.nextID,
		X:      s.rng.Float32() * (s.worldW - s.config.Width),
		Y:      s.worldH,
		Width:  s.config.Width,
		Height: s.config.Height,
	}
	s.nextID++
	s.droplets = append(s.droplets, d)
	return d
}

// Place adds a droplet at an exact position and returns it
func (s *DropletSystem) Place(x, y float32) entity.Droplet {
	d := entity.Droplet{
		ID:     s.nextID,
		X:      x,
		Y:      y,
		Width:  s.config.Width,
		Height: s.config.Height,
	}
	s.nextID++
	s.droplets = append(s.droplets, d)
	return d
}

func (s *DropletSystem) remove(i int) {
	last := len(s.droplets) - 1
	s.droplets[i] = s.droplets[last]
	s.droplets = s.droplets[:last]
}

// Droplets returns the live droplets. The slice is only valid until the
// next Update or Spawn.
func (s *DropletSystem) Droplets() []entity.Droplet {
	return s.droplets
}

// Count returns the number of live droplets
func (s *DropletSystem) Count() int {
	return len(s.droplets)
}

// Timer returns the seconds accumulated toward the next spawn
func (s *DropletSystem) Timer() float32 {
	return s.timer
}
