package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
window:
  width: 1000
  height: 500
  title: Test Drop
world:
  width: 8
  height: 5
bucket:
  speed: 6
drop:
  spawn_interval: 0.5
audio:
  music_volume: 0.25
assets:
  dir: res
  music: theme.ogg
debug:
  hud: true
  log_level: debug
`

func TestLoader_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte(testYAML)},
	}
	loader := NewFSLoader(fsys, "configs")

	cfg, err := loader.LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, "Test Drop", cfg.Window.Title)
	assert.Equal(t, float32(6), cfg.Bucket.Speed)
	assert.Equal(t, float32(0.5), cfg.Drop.SpawnInterval)
	assert.Equal(t, 0.25, cfg.Audio.MusicVolume)
	assert.Equal(t, "res", cfg.Assets.Dir)
	assert.Equal(t, "theme.ogg", cfg.Assets.Music)
	assert.True(t, cfg.Debug.HUD)
	assert.Equal(t, "debug", cfg.Debug.LogLevel)
}

func TestLoader_Load_KeepsDefaultsForOmittedKeys(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("window:\n  title: Partial\n")},
	}

	cfg, err := NewFSLoader(fsys, "").LoadDefault()
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "Partial", cfg.Window.Title)
	assert.Equal(t, def.Window.Width, cfg.Window.Width)
	assert.Equal(t, def.Bucket, cfg.Bucket)
	assert.Equal(t, def.Drop, cfg.Drop)
	assert.Equal(t, "drop.png", cfg.Assets.DropTexture)
	assert.Equal(t, "drop.mp3", cfg.Assets.DropSound)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "")

	_, err := loader.Load("nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read nope.yaml")
}

func TestLoader_Load_ErrorNamesBasePath(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("window: [1, 2")},
	}
	loader := NewFSLoader(fsys, "configs")

	_, err := loader.Load("nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read configs/nope.yaml")

	_, err = loader.LoadDefault()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse configs/game.yaml")
}

func TestLoader_Load_Malformed(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("window: [1, 2")},
	}

	_, err := NewFSLoader(fsys, "").LoadDefault()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse game.yaml")
}

func TestLoader_Load_Invalid(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("drop:\n  speed: 0\n")},
	}

	_, err := NewFSLoader(fsys, "").LoadDefault()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "drop.speed")
}

func TestNewLoader_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.yaml"), []byte(testYAML), 0o644))

	cfg, err := NewLoader(dir).LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Window.Width)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, float32(6), cfg.Bucket.Speed)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
