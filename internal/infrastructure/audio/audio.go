// Package audio plays background music and one-shot sound effects.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrUnsupportedFormat is returned for files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Format is an encoded audio format recognized by file extension
type Format int

const (
	FormatUnknown Format = iota
	FormatMP3
	FormatVorbis
	FormatWAV
)

// FormatOf returns the format implied by name's extension
func FormatOf(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		return FormatMP3
	case ".ogg", ".oga":
		return FormatVorbis
	case ".wav":
		return FormatWAV
	default:
		return FormatUnknown
	}
}

// Detect returns the format of an encoded file. The extension decides when
// it is known; otherwise the leading bytes are checked.
func Detect(name string, data []byte) Format {
	if f := FormatOf(name); f != FormatUnknown {
		return f
	}
	return sniff(data)
}

func sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("ID3")):
		return FormatMP3
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// MPEG audio frame sync
		return FormatMP3
	case bytes.HasPrefix(data, []byte("OggS")):
		return FormatVorbis
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WAVE":
		return FormatWAV
	default:
		return FormatUnknown
	}
}

// stream is a decoded 16-bit stereo PCM stream
type stream interface {
	io.ReadSeeker
	Length() int64
}

func decode(sampleRate int, name string, data []byte) (stream, error) {
	src := bytes.NewReader(data)
	var (
		s   stream
		err error
	)
	switch Detect(name, data) {
	case FormatMP3:
		s, err = mp3.DecodeWithSampleRate(sampleRate, src)
	case FormatVorbis:
		s, err = vorbis.DecodeWithSampleRate(sampleRate, src)
	case FormatWAV:
		s, err = wav.DecodeWithSampleRate(sampleRate, src)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Mixer owns the process-wide audio context
type Mixer struct {
	ctx *audio.Context
}

// NewMixer returns a mixer at the given sample rate. Ebiten allows a single
// audio context per process, so an existing one is reused.
func NewMixer(sampleRate int) *Mixer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Mixer{ctx: ctx}
}

// SampleRate returns the context's sample rate
func (m *Mixer) SampleRate() int {
	return m.ctx.SampleRate()
}

// LoadMusic decodes a track that loops forever at the given volume
func (m *Mixer) LoadMusic(name string, data []byte, volume float64) (*Music, error) {
	if Detect(name, data) == FormatUnknown {
		return nil, fmt.Errorf("load music %q: %w", name, ErrUnsupportedFormat)
	}
	s, err := decode(m.ctx.SampleRate(), name, data)
	if err != nil {
		return nil, fmt.Errorf("load music %q: %w", name, err)
	}

	p, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return nil, fmt.Errorf("load music %q: %w", name, err)
	}
	p.SetVolume(volume)
	return &Music{player: p}, nil
}

// LoadSound decodes a short effect fully into memory
func (m *Mixer) LoadSound(name string, data []byte) (*Sound, error) {
	if Detect(name, data) == FormatUnknown {
		return nil, fmt.Errorf("load sound %q: %w", name, ErrUnsupportedFormat)
	}
	s, err := decode(m.ctx.SampleRate(), name, data)
	if err != nil {
		return nil, fmt.Errorf("load sound %q: %w", name, err)
	}

	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("load sound %q: %w", name, err)
	}
	return &Sound{ctx: m.ctx, pcm: pcm}, nil
}

// Music is a looping background track
type Music struct {
	player *audio.Player
}

// Play starts or resumes the track
func (m *Music) Play() {
	if m.player != nil {
		m.player.Play()
	}
}

// Pause stops the track, keeping its position
func (m *Music) Pause() {
	if m.player != nil {
		m.player.Pause()
	}
}

// IsPlaying reports whether the track is playing
func (m *Music) IsPlaying() bool {
	return m.player != nil && m.player.IsPlaying()
}

// Volume returns the track volume
func (m *Music) Volume() float64 {
	if m.player == nil {
		return 0
	}
	return m.player.Volume()
}

// Close releases the player
func (m *Music) Close() error {
	if m.player == nil {
		return nil
	}
	err := m.player.Close()
	m.player = nil
	return err
}

// Sound is a one-shot effect. Each Play starts a new voice so overlapping
// plays do not cut each other off.
type Sound struct {
	ctx    *audio.Context
	pcm    []byte
	voices []*audio.Player
	closed bool
}

// Play starts the effect from the beginning
func (s *Sound) Play() {
	if s.closed {
		return
	}
	s.reap()
	p := s.ctx.NewPlayerFromBytes(s.pcm)
	p.Play()
	s.voices = append(s.voices, p)
}

// Voices returns the number of voices that have not been reaped yet
func (s *Sound) Voices() int {
	return len(s.voices)
}

// reap closes voices that have finished playing
func (s *Sound) reap() {
	live := s.voices[:0]
	for _, p := range s.voices {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	clear(s.voices[len(live):])
	s.voices = live
}

// Close stops and releases every voice
func (s *Sound) Close() error {
	var errs []error
	for _, p := range s.voices {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.voices = nil
	s.closed = true
	return errors.Join(errs...)
}
