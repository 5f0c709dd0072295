package playing

import (
	"fmt"
	"os"
	"time"

	"github.com/jrbrian/drop/internal/application/replay"
	"github.com/jrbrian/drop/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int

	// Window size waiting to be attached to the next frame
	pendingW, pendingH int
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordResize notes a window size change; it is stored with the next frame
func (r *Recorder) RecordResize(width, height int) {
	if !r.recording {
		return
	}
	r.pendingW, r.pendingH = width, height
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState, dt float32) {
	if !r.recording {
		return
	}

	frameInput := replay.FrameInput{
		F:  r.frame,
		DT: dt,
		P:  input.PointerActive,
		L:  input.Left,
		R:  input.Right,
		W:  r.pendingW,
		H:  r.pendingH,
	}
	if input.PointerActive {
		frameInput.PX = input.PointerX
		frameInput.PY = input.PointerY
	}
	r.pendingW, r.pendingH = 0, 0

	r.data.Frames = append(r.data.Frames, frameInput)
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return replay.Encode(file, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
