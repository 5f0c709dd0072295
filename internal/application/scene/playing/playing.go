// Package playing provides the main gameplay scene.
package playing

import (
	"image/color"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jrbrian/drop/internal/application/scene"
	"github.com/jrbrian/drop/internal/application/state"
	"github.com/jrbrian/drop/internal/application/system"
	"github.com/jrbrian/drop/internal/infrastructure/config"
	"github.com/jrbrian/drop/internal/infrastructure/render"
)

// InputSource polls one frame of player input
type InputSource interface {
	GetInput() system.InputState
}

// Options configures a Playing scene
type Options struct {
	// Seed drives droplet placement
	Seed int64
	// RecordPath enables input recording when not empty
	RecordPath string
	// Input defaults to live keyboard, mouse and touch
	Input  InputSource
	Logger *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.Config
	sim    *Simulation
	res    *Resources
	input  InputSource
	batch  *render.Batch
	hud    *hud
	state  state.LifecycleState
	log    *log.Logger
	seed   int64
	draws  int // quads drawn by the last Draw

	// Input recording
	recorder       *Recorder
	recordFilename string
}

var _ scene.Scene = (*Playing)(nil)
var _ scene.Resizer = (*Playing)(nil)
var _ scene.Pauser = (*Playing)(nil)
var _ scene.Disposer = (*Playing)(nil)

// New creates a new Playing scene using already loaded resources.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(cfg *config.Config, res *Resources, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	input := opts.Input
	if input == nil {
		input = system.NewInputSystem(cfg.Bucket)
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	p := &Playing{
		config:         cfg,
		sim:            NewSimulation(cfg, rng, res.Catch, logger),
		res:            res,
		input:          input,
		batch:          render.NewBatch(),
		hud:            newHUD(),
		state:          state.StateCreated,
		log:            logger,
		seed:           opts.Seed,
		recordFilename: opts.RecordPath,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.Seed)
		logger.Info("recording enabled", "path", opts.RecordPath, "seed", opts.Seed)
	}

	return p
}

// Update runs one frame of input and simulation (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	// F5: Save recording manually
	if p.recorder != nil && p.recorder.IsRecording() && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	input := p.input.GetInput()
	step := float32(dt)

	if p.recorder != nil {
		p.recorder.RecordFrame(input, step)
	}

	p.sim.Step(input, step)
	return nil, nil // nil = stay on this scene
}

// Draw renders the world through the viewport (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	vp := p.sim.Viewport()
	p.batch.Begin(screen, vp)
	p.batch.Clear(color.Black)
	p.drawQuad(p.res.Background, 0, 0, vp.WorldWidth(), vp.WorldHeight())

	b := p.sim.Bucket()
	p.drawQuad(p.res.Bucket, b.X, b.Y, b.Width, b.Height)

	for _, d := range p.sim.Droplets() {
		p.drawQuad(p.res.Drop, d.X, d.Y, d.Width, d.Height)
	}
	p.draws = p.batch.End()

	if p.config.Debug.HUD {
		p.hud.Draw(screen, hudText(ebiten.ActualFPS(), ebiten.ActualTPS(), p.sim))
	}
}

func (p *Playing) drawQuad(img *ebiten.Image, x, y, w, h float32) {
	if img == nil {
		return
	}
	p.batch.Draw(img, x, y, w, h)
}

// Resize refits the viewport to the new window size
func (p *Playing) Resize(width, height int) {
	p.sim.Resize(width, height)
	if p.recorder != nil {
		p.recorder.RecordResize(width, height)
	}
}

// Pause is called when the window loses focus
func (p *Playing) Pause() {
	p.state = state.StatePaused
	p.log.Debug("paused")
}

// Resume is called when the window regains focus
func (p *Playing) Resume() {
	p.state = state.StateRunning
	p.log.Debug("resumed")
}

// Dispose releases textures and audio
func (p *Playing) Dispose() {
	if p.state == state.StateDisposed {
		return
	}
	p.state = state.StateDisposed
	if p.res != nil {
		if err := p.res.Release(); err != nil {
			p.log.Warn("failed to release resources", "err", err)
		}
	}
}

// OnEnter starts the background music
func (p *Playing) OnEnter() {
	p.state = state.StateRunning
	if p.res.Music != nil {
		p.res.Music.Play()
	}
	p.log.Info("game started", "seed", p.seed, "world", p.config.World)
}

// OnExit stops the music and saves any recording
func (p *Playing) OnExit() {
	if p.res.Music != nil {
		p.res.Music.Pause()
	}
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}

	st := p.sim.Stats()
	p.log.Info("game over", "frames", st.Frames, "spawned", st.Spawned, "caught", st.Caught, "missed", st.Missed)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("failed to save recording", "err", err)
	} else {
		p.log.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// State returns the scene's lifecycle state
func (p *Playing) State() state.LifecycleState {
	return p.state
}

// DrawCount returns the number of quads drawn by the last Draw
func (p *Playing) DrawCount() int {
	return p.draws
}

// Simulation exposes the game state (for testing and replay)
func (p *Playing) Simulation() *Simulation {
	return p.sim
}

// Recorder returns the active recorder, or nil
func (p *Playing) Recorder() *Recorder {
	return p.recorder
}
