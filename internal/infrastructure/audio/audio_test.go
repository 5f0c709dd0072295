package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"music.mp3", FormatMP3},
		{"DROP.MP3", FormatMP3},
		{"sfx/drop.ogg", FormatVorbis},
		{"theme.oga", FormatVorbis},
		{"catch.wav", FormatWAV},
		{"drop.flac", FormatUnknown},
		{"noext", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOf(tt.name))
		})
	}
}

func TestDetect(t *testing.T) {
	wave := append([]byte("RIFF\x24\x00\x00\x00WAVE"), []byte("fmt ")...)

	tests := []struct {
		name string
		file string
		data []byte
		want Format
	}{
		{"extension wins", "drop.wav", []byte("OggS"), FormatWAV},
		{"id3 tag", "drop.sfx", []byte("ID3\x04\x00"), FormatMP3},
		{"mpeg frame sync", "drop", []byte{0xFF, 0xFB, 0x90, 0x44}, FormatMP3},
		{"ogg page", "theme.bin", []byte("OggS\x00\x02"), FormatVorbis},
		{"riff wave", "catch", wave, FormatWAV},
		{"riff without wave", "movie", []byte("RIFF\x24\x00\x00\x00AVI "), FormatUnknown},
		{"flac", "drop", []byte("fLaC"), FormatUnknown},
		{"empty", "drop", nil, FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.file, tt.data))
		})
	}
}

func TestDecode_SniffsUnknownExtension(t *testing.T) {
	_, err := decode(44100, "drop.sfx", []byte("OggS garbage"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat, "sniffed as ogg and handed to the decoder")
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	s, err := decode(44100, "drop.flac", []byte("fLaC"))

	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "drop.flac")
}

func TestDecode_CorruptData(t *testing.T) {
	for _, name := range []string{"bad.ogg", "bad.wav"} {
		t.Run(name, func(t *testing.T) {
			_, err := decode(44100, name, []byte("definitely not audio"))
			assert.Error(t, err)
		})
	}
}

func TestMusic_ZeroValueIsSafe(t *testing.T) {
	var m Music

	m.Play()
	m.Pause()
	assert.False(t, m.IsPlaying())
	assert.Zero(t, m.Volume())
	assert.NoError(t, m.Close())
}

func TestSound_CloseWithoutVoices(t *testing.T) {
	s := &Sound{}

	require.NoError(t, s.Close())
	s.Play() // no-op once closed
	assert.Equal(t, 0, s.Voices())
}
