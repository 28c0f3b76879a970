package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/head-soccer/parameter"
)

// AudioConfig holds backend settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
	SampleRate   int     `toml:"sample_rate"`
	BufferMs     int     `toml:"buffer_ms"`
	SplashSong   string  `toml:"splash_song"`
	IntroSong    string  `toml:"intro_song"`
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.DefaultMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		BufferMs:     parameter.AudioBufferMs,
		SplashSong:   "smash",
		IntroSong:    "mario",
	}
}

// LoadAudioConfig loads audio configuration from environment variables over the defaults
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides fields from environment variables; malformed values are ignored
func (cfg *AudioConfig) ApplyEnv() {
	// Check if audio is enabled
	if enabled := os.Getenv("HEAD_SOCCER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("HEAD_SOCCER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("HEAD_SOCCER_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}
