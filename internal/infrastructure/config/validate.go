package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the config describes a playable game
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS))
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("bucket.width", c.Bucket.Width)
	positive("bucket.height", c.Bucket.Height)
	positive("bucket.speed", c.Bucket.Speed)
	positive("drop.width", c.Drop.Width)
	positive("drop.height", c.Drop.Height)
	positive("drop.speed", c.Drop.Speed)
	positive("drop.spawn_interval", c.Drop.SpawnInterval)

	if c.Bucket.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("bucket.width %v exceeds world.width %v", c.Bucket.Width, c.World.Width))
	}
	if c.Drop.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("drop.width %v exceeds world.width %v", c.Drop.Width, c.World.Width))
	}

	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.music_volume must be within [0, 1], got %v", c.Audio.MusicVolume))
	}

	for _, a := range []struct{ key, name string }{
		{"assets.drop_texture", c.Assets.DropTexture},
		{"assets.bucket_texture", c.Assets.BucketTexture},
		{"assets.background_texture", c.Assets.BackgroundTexture},
		{"assets.music", c.Assets.Music},
		{"assets.drop_sound", c.Assets.DropSound},
	} {
		if a.name == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", a.key))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
