// Package assets loads textures from a filesystem and owns their lifetime.
package assets

import (
	"fmt"
	"io/fs"

	// Register image decoders
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Store loads assets by name and releases every texture it handed out on Dispose
type Store struct {
	fsys     fs.FS
	textures map[string]*ebiten.Image
	disposed bool
}

// NewStore creates a store reading from fsys
func NewStore(fsys fs.FS) *Store {
	return &Store{
		fsys:     fsys,
		textures: make(map[string]*ebiten.Image),
	}
}

// Texture loads and decodes an image. Repeated calls return the same image.
func (s *Store) Texture(name string) (*ebiten.Image, error) {
	if s.disposed {
		return nil, fmt.Errorf("load texture %q: store disposed", name)
	}
	if img, ok := s.textures[name]; ok {
		return img, nil
	}

	if _, err := fs.Stat(s.fsys, name); err != nil {
		return nil, fmt.Errorf("load texture %q: %w", name, err)
	}
	img, _, err := ebitenutil.NewImageFromFileSystem(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load texture %q: %w", name, err)
	}

	s.textures[name] = img
	return img, nil
}

// ReadFile returns the raw bytes of an asset, e.g. encoded audio
func (s *Store) ReadFile(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read asset %q: %w", name, err)
	}
	return data, nil
}

// Loaded returns the number of textures currently held
func (s *Store) Loaded() int {
	return len(s.textures)
}

// Dispose releases every loaded texture. The store cannot be used afterwards.
func (s *Store) Dispose() {
	for name, img := range s.textures {
		img.Deallocate()
		delete(s.textures, name)
	}
	s.disposed = true
}
