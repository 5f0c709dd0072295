package config

// Config is the root config for game.yaml
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	World    WorldConfig    `yaml:"world"`
	Viewport ViewportConfig `yaml:"viewport"`
	Bucket   BucketConfig   `yaml:"bucket"`
	Drop     DropConfig     `yaml:"drop"`
	Audio    AudioConfig    `yaml:"audio"`
	Assets   AssetsConfig   `yaml:"assets"`
	Debug    DebugConfig    `yaml:"debug"`
}

// WindowConfig configures the desktop window
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TPS       int    `yaml:"tps"` // Update calls per second
	Resizable bool   `yaml:"resizable"`

	// PauseOnFocusLoss stops simulating while the window is unfocused
	PauseOnFocusLoss bool `yaml:"pause_on_focus_loss"`
}

// WorldConfig is the size of the logical play area in world units
type WorldConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type ViewportConfig struct {
	// CenterOnResize recenters the camera on every resize, not just the first
	CenterOnResize bool `yaml:"center_on_resize"`
}

type AudioConfig struct {
	SampleRate  int     `yaml:"sample_rate"`
	MusicVolume float64 `yaml:"music_volume"` // 0.0 - 1.0
}

type DebugConfig struct {
	HUD      bool   `yaml:"hud"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    500,
			Title:     "Drop",
			TPS:       60,
			Resizable: true,
		},
		World: WorldConfig{Width: 8, Height: 5},
		Bucket: BucketConfig{
			Width:  1,
			Height: 1,
			Speed:  4,
			StartX: 3.5,
			StartY: 0,
		},
		Drop: DropConfig{
			Width:         1,
			Height:        1,
			Speed:         2,
			SpawnInterval: 1,
		},
		Audio: AudioConfig{
			SampleRate:  44100,
			MusicVolume: 0.5,
		},
		Assets: AssetsConfig{
			Dir:               "assets",
			DropTexture:       "drop.png",
			BucketTexture:     "bucket.png",
			BackgroundTexture: "background.png",
			Music:             "music.mp3",
			DropSound:         "drop.mp3",
		},
		Debug: DebugConfig{LogLevel: "info"},
	}
}
