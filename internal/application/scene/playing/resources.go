package playing

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jrbrian/drop/internal/infrastructure/assets"
	"github.com/jrbrian/drop/internal/infrastructure/audio"
	"github.com/jrbrian/drop/internal/infrastructure/config"
)

// Music is a looping background track
type Music interface {
	Play()
	Pause()
}

// Resources holds everything the scene loads from disk
type Resources struct {
	Background *ebiten.Image
	Bucket     *ebiten.Image
	Drop       *ebiten.Image
	Music      Music
	Catch      Sound

	closers []func() error
}

// LoadResources loads textures and sounds from fsys. Textures come first
// so a missing image is reported before an audio context is created.
func LoadResources(cfg *config.Config, fsys fs.FS) (*Resources, error) {
	store := assets.NewStore(fsys)
	res := &Resources{}
	res.closers = append(res.closers, func() error {
		store.Dispose()
		return nil
	})

	textures := []struct {
		name string
		dst  **ebiten.Image
	}{
		{cfg.Assets.BackgroundTexture, &res.Background},
		{cfg.Assets.BucketTexture, &res.Bucket},
		{cfg.Assets.DropTexture, &res.Drop},
	}
	for _, t := range textures {
		img, err := store.Texture(t.name)
		if err != nil {
			_ = res.Release()
			return nil, err
		}
		*t.dst = img
	}

	musicData, err := store.ReadFile(cfg.Assets.Music)
	if err != nil {
		_ = res.Release()
		return nil, err
	}
	soundData, err := store.ReadFile(cfg.Assets.DropSound)
	if err != nil {
		_ = res.Release()
		return nil, err
	}

	mixer := audio.NewMixer(cfg.Audio.SampleRate)

	music, err := mixer.LoadMusic(cfg.Assets.Music, musicData, cfg.Audio.MusicVolume)
	if err != nil {
		_ = res.Release()
		return nil, fmt.Errorf("load music: %w", err)
	}
	res.Music = music
	res.closers = append(res.closers, music.Close)

	sound, err := mixer.LoadSound(cfg.Assets.DropSound, soundData)
	if err != nil {
		_ = res.Release()
		return nil, fmt.Errorf("load drop sound: %w", err)
	}
	res.Catch = sound
	res.closers = append(res.closers, sound.Close)

	return res, nil
}

// Release frees every loaded resource. It is safe to call more than once.
func (r *Resources) Release() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}
