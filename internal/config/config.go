// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and display settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the initial camera framing and interaction steps.
type CameraConfig struct {
	Fov        float32 `yaml:"fov"`
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	Distance   float32 `yaml:"distance"`
	ZoomStep   float32 `yaml:"zoom_step"`
	RotateStep float32 `yaml:"rotate_step"`
	PanStep    float32 `yaml:"pan_step"`
}

// ViewerConfig holds scene-wide rendering settings.
type ViewerConfig struct {
	Opacity    float32    `yaml:"opacity"`
	ClearColor [3]float32 `yaml:"clear_color"`
	PointSize  float32    `yaml:"point_size"`
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
			Width:      800,
			Height:     500,
			Title:      "geomview",
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Fov:        45,
			Near:       0.1,
			Far:        100,
			Distance:   10,
			ZoomStep:   0.05,
			RotateStep: 1,
			PanStep:    0.1,
		},
		Viewer: ViewerConfig{
			Opacity:    1.0,
			ClearColor: [3]float32{0.9, 0.9, 0.9},
			PointSize:  10,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
