package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, DT: 0, W: 800, H: 500},
			{F: 1, DT: 0.016, L: true},
			{F: 2, DT: 0.017, P: true, PX: 400, PY: 250, R: true},
		},
	}

	replayer := NewReplayer(data)
	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, int64(42), replayer.Seed())

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Resized)
	assert.Equal(t, 800, input.Width)
	assert.Equal(t, 500, input.Height)
	assert.False(t, input.PointerActive)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Resized)
	assert.True(t, input.Left)
	assert.Equal(t, float32(0.016), input.DT)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.PointerActive)
	assert.Equal(t, 400.0, input.PointerX)
	assert.Equal(t, 250.0, input.PointerY)
	assert.True(t, input.Right)
	assert.Equal(t, 3, replayer.CurrentFrame())

	// End of replay
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, 0.02, 800, 500))

	for i := 0; i < 5; i++ {
		_, ok := replayer.GetInput()
		require.True(t, ok)
	}
	replayer.Reset()

	assert.Equal(t, 0, replayer.CurrentFrame())
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Resized)
}

func TestEncodeDecode(t *testing.T) {
	data := CreateTestReplayData(3, 0.05, 1000, 500)
	data.Frames[2].R = true

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, data))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, data, *decoded)
}

func TestEncode_NoFrames(t *testing.T) {
	err := Encode(&bytes.Buffer{}, ReplayData{Version: Version})

	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"malformed", `{"version":`, "failed to decode replay"},
		{"wrong version", `{"version":"0.1","frames":[{"f":0,"dt":0}]}`, "unsupported replay version"},
		{"no frames", `{"version":"1.0","frames":[]}`, "no frames"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Encode(file, CreateTestReplayData(10, 0.016, 800, 500)))
	require.NoError(t, file.Close())

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 10)

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
