// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	SectionBox SectionBoxConfig `yaml:"section_box"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SectionBoxConfig tunes the interactive section box.
type SectionBoxConfig struct {
	// MarginFactor expands fit-to-model bounds by size*factor per axis.
	MarginFactor float32 `yaml:"margin_factor"`

	// HandleSizeFactor scales face handles relative to the smallest
	// box extent.
	HandleSizeFactor float32 `yaml:"handle_size_factor"`

	// MinHandleRadius keeps handles pickable on very thin boxes.
	MinHandleRadius float32 `yaml:"min_handle_radius"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		SectionBox: SectionBoxConfig{
			MarginFactor:     0.05,
			HandleSizeFactor: 0.08,
			MinHandleRadius:  0.05,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
