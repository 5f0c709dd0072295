package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ErrNoFrames is returned when saving or loading a replay without frames
var ErrNoFrames = errors.New("replay has no frames")

// ReplayInput represents input state during replay
type ReplayInput struct {
	DT            float32
	PointerActive bool
	PointerX      float64
	PointerY      float64
	Left          bool
	Right         bool

	// Resized is set when the window changed size before this frame
	Resized bool
	Width   int
	Height  int
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads JSON replay data from r
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	if len(data.Frames) == 0 {
		return nil, ErrNoFrames
	}
	return &data, nil
}

// Encode writes replay data to w as indented JSON
func Encode(w io.Writer, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		DT:            fi.DT,
		PointerActive: fi.P,
		PointerX:      fi.PX,
		PointerY:      fi.PY,
		Left:          fi.L,
		Right:         fi.R,
		Resized:       fi.W > 0 && fi.H > 0,
		Width:         fi.W,
		Height:        fi.H,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: a window of the
// given size and frames of constant dt with no input.
func CreateTestReplayData(frames int, dt float32, width, height int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, DT: dt}
	}
	if frames > 0 {
		data.Frames[0].W = width
		data.Frames[0].H = height
	}

	return data
}
