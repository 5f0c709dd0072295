package playing

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/jrbrian/drop/internal/application/replay"
	"github.com/jrbrian/drop/internal/application/system"
	"github.com/jrbrian/drop/internal/infrastructure/config"
)

// NewSimulationForReplay creates a simulation seeded from the recording
func NewSimulationForReplay(cfg *config.Config, data *replay.ReplayData, catch Sound, logger *log.Logger) *Simulation {
	return NewSimulation(cfg, rand.New(rand.NewSource(data.Seed)), catch, logger)
}

// RunReplay feeds every remaining recorded frame through sim and returns
// the number of frames played. Window size changes are applied before the
// frame they were recorded with, matching the live order.
func RunReplay(sim *Simulation, r *replay.Replayer) int {
	played := 0
	for {
		in, ok := r.GetInput()
		if !ok {
			return played
		}
		if in.Resized {
			sim.Resize(in.Width, in.Height)
		}
		sim.Step(system.InputState{
			PointerActive: in.PointerActive,
			PointerX:      in.PointerX,
			PointerY:      in.PointerY,
			Left:          in.Left,
			Right:         in.Right,
		}, in.DT)
		played++
	}
}
