package entity

// Bucket is the player-controlled catcher. It lives for the whole session.
type Bucket struct {
	X, Y          float32
	Width, Height float32
}

// NewBucket creates a bucket at the given bottom-left position
func NewBucket(x, y, width, height float32) *Bucket {
	return &Bucket{X: x, Y: y, Width: width, Height: height}
}

// Bounds returns the bucket's bounding box
func (b *Bucket) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// SetCenterX moves the bucket so its horizontal center is at x
func (b *Bucket) SetCenterX(x float32) {
	b.X = x - b.Width/2
}

// TranslateX moves the bucket horizontally by dx
func (b *Bucket) TranslateX(dx float32) {
	b.X += dx
}

// ClampX keeps the bucket inside [0, worldWidth - Width]
func (b *Bucket) ClampX(worldWidth float32) {
	b.X = Clamp(b.X, 0, worldWidth-b.Width)
}

// Droplet is a falling drop. It is removed once it falls off the bottom of
// the world or touches the bucket.
type Droplet struct {
	ID            EntityID
	X, Y          float32
	Width, Height float32
}

// Bounds returns the droplet's bounding box
func (d *Droplet) Bounds() Rect {
	return Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
}

// Fall moves the droplet down by dy world units
func (d *Droplet) Fall(dy float32) {
	d.Y -= dy
}

// OffScreen reports whether the droplet is entirely below the world
func (d *Droplet) OffScreen() bool {
	return d.Y < -d.Height
}
