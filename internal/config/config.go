// ABOUTME: Configuration loading and validation
// ABOUTME: Reads defaults, an optional YAML file and SKETCHWAVE_ environment overrides
package config

import (
	"fmt"
	"strings"

	"github.com/Resonate-Protocol/sketchwave/pkg/audio/resample"
	"github.com/spf13/viper"
)

// Backends
const (
	BackendOto  = "oto"
	BackendNull = "null"
)

type Config struct {
	Audio  AudioConfig  `mapstructure:"audio" yaml:"audio"`
	Canvas CanvasConfig `mapstructure:"canvas" yaml:"canvas"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

type AudioConfig struct {
	SampleRate      int    `mapstructure:"sample_rate" yaml:"sample_rate"`
	Channels        int    `mapstructure:"channels" yaml:"channels"`
	BitDepth        int    `mapstructure:"bit_depth" yaml:"bit_depth"` // 16 or 32 (float)
	DurationSeconds int    `mapstructure:"duration_seconds" yaml:"duration_seconds"`
	Volume          int    `mapstructure:"volume" yaml:"volume"`
	Backend         string `mapstructure:"backend" yaml:"backend"` // "oto", "null"
}

type CanvasConfig struct {
	Height          int `mapstructure:"height" yaml:"height"`
	DownsampleRatio int `mapstructure:"downsample_ratio" yaml:"downsample_ratio"`
	CircleRadius    int `mapstructure:"circle_radius" yaml:"circle_radius"`
}

type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			SampleRate:      44100,
			Channels:        2,
			BitDepth:        16,
			DurationSeconds: 1,
			Volume:          100,
			Backend:         BackendOto,
		},
		Canvas: CanvasConfig{
			Height:          400,
			DownsampleRatio: 100,
			CircleRadius:    5,
		},
		Log: LogConfig{
			File: "sketchwave.log",
		},
	}
}

// Load builds a Config from defaults, configFile (optional) and the environment
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix("SKETCHWAVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("audio.sample_rate", d.Audio.SampleRate)
	v.SetDefault("audio.channels", d.Audio.Channels)
	v.SetDefault("audio.bit_depth", d.Audio.BitDepth)
	v.SetDefault("audio.duration_seconds", d.Audio.DurationSeconds)
	v.SetDefault("audio.volume", d.Audio.Volume)
	v.SetDefault("audio.backend", d.Audio.Backend)
	v.SetDefault("canvas.height", d.Canvas.Height)
	v.SetDefault("canvas.downsample_ratio", d.Canvas.DownsampleRatio)
	v.SetDefault("canvas.circle_radius", d.Canvas.CircleRadius)
	v.SetDefault("log.file", d.Log.File)
}

// Validate checks every field is usable
func (c *Config) Validate() error {
	if c.Audio.Channels < 1 || c.Audio.Channels > 2 {
		return fmt.Errorf("audio.channels must be 1 or 2, got %d", c.Audio.Channels)
	}
	if c.Audio.BitDepth != 16 && c.Audio.BitDepth != 32 {
		return fmt.Errorf("audio.bit_depth must be 16 or 32, got %d", c.Audio.BitDepth)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("audio.volume must be within 0-100, got %d", c.Audio.Volume)
	}
	switch c.Audio.Backend {
	case BackendOto, BackendNull:
	default:
		return fmt.Errorf("audio.backend must be %q or %q, got %q", BackendOto, BackendNull, c.Audio.Backend)
	}
	if c.Canvas.CircleRadius < 0 {
		return fmt.Errorf("canvas.circle_radius must not be negative, got %d", c.Canvas.CircleRadius)
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	return nil
}

// Params returns the resampler geometry
func (c *Config) Params() resample.Params {
	return resample.Params{
		SampleRate:      c.Audio.SampleRate,
		Channels:        c.Audio.Channels,
		BitDepth:        c.Audio.BitDepth,
		DownsampleRatio: c.Canvas.DownsampleRatio,
		DurationSeconds: c.Audio.DurationSeconds,
		CanvasHeight:    c.Canvas.Height,
	}
}

// CanvasWidth returns the canvas width in pixels
func (c *Config) CanvasWidth() int {
	return c.Params().CanvasWidth()
}
