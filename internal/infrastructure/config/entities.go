package config

// BucketConfig configures the player's bucket
type BucketConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Speed  float32 `yaml:"speed"` // World units per second when steering with keys
	StartX float32 `yaml:"start_x"`
	StartY float32 `yaml:"start_y"`
}

// DropConfig configures falling droplets
type DropConfig struct {
	Width         float32 `yaml:"width"`
	Height        float32 `yaml:"height"`
	Speed         float32 `yaml:"speed"`          // World units per second
	SpawnInterval float32 `yaml:"spawn_interval"` // Seconds the spawn timer must exceed
}

// AssetsConfig names the asset files, relative to Dir
type AssetsConfig struct {
	Dir               string `yaml:"dir"`
	DropTexture       string `yaml:"drop_texture"`
	BucketTexture     string `yaml:"bucket_texture"`
	BackgroundTexture string `yaml:"background_texture"`
	Music             string `yaml:"music"`
	DropSound         string `yaml:"drop_sound"`
}
