package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrbrian/drop/internal/application/replay"
	"github.com/jrbrian/drop/internal/infrastructure/config"
)

func TestRunReplay(t *testing.T) {
	data := replay.CreateTestReplayData(120, 0.1, 1000, 500)
	sim := NewSimulationForReplay(config.Default(), &data, nil, quietLogger())

	played := RunReplay(sim, replay.NewReplayer(data))

	assert.Equal(t, 120, played)
	assert.Equal(t, 120, sim.Stats().Frames)
	assert.Equal(t, 12, sim.Stats().Spawned)
	w, h := sim.Viewport().WindowSize()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 500, h)
}

func TestRunReplay_Deterministic(t *testing.T) {
	data := replay.CreateTestReplayData(600, 1.0/60, 800, 500)
	for i := range data.Frames {
		data.Frames[i].R = i%120 < 60
		data.Frames[i].L = i%120 >= 60
	}

	a := NewSimulationForReplay(config.Default(), &data, nil, quietLogger())
	b := NewSimulationForReplay(config.Default(), &data, nil, quietLogger())
	RunReplay(a, replay.NewReplayer(data))
	RunReplay(b, replay.NewReplayer(data))

	assert.Equal(t, a.Stats(), b.Stats())
	assert.Equal(t, a.Droplets(), b.Droplets())
	assert.Equal(t, a.Stats().Spawned, a.Stats().Caught+a.Stats().Missed+len(a.Droplets()))
}

func TestRunReplay_Exhausted(t *testing.T) {
	data := replay.CreateTestReplayData(3, 0.1, 800, 500)
	r := replay.NewReplayer(data)
	sim := NewSimulationForReplay(config.Default(), &data, nil, quietLogger())

	assert.Equal(t, 3, RunReplay(sim, r))
	assert.Equal(t, 0, RunReplay(sim, r))
}
