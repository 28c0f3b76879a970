package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/head-soccer/audio"
	"github.com/lixenwraith/head-soccer/input"
	"github.com/lixenwraith/head-soccer/parameter"
	"github.com/lixenwraith/head-soccer/physics"
)

// ErrInvalidConfig marks a value the game cannot run with
var ErrInvalidConfig = errors.New("invalid config")

// MatchConfig holds match flow settings
type MatchConfig struct {
	Seconds int    `toml:"seconds"`
	Seed    uint64 `toml:"seed"` // 0 seeds from the clock
}

// Config is the full game configuration
type Config struct {
	Physics physics.Tuning    `toml:"physics"`
	Audio   audio.AudioConfig `toml:"audio"`
	Match   MatchConfig       `toml:"match"`
	Keys    map[string]string `toml:"keys"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Physics: physics.DefaultTuning(),
		Audio:   *audio.DefaultAudioConfig(),
		Match: MatchConfig{
			Seconds: parameter.MatchDurationSec,
		},
		Keys: map[string]string{},
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "head-soccer.toml"
	}
	return filepath.Join(dir, "head-soccer", "config.toml")
}

// Load reads a TOML file over the defaults, applies env overrides and validates
// A missing file is only an error when required
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case err == nil:
			for _, key := range md.Undecoded() {
				log.Printf("config: %s: unknown key %q ignored", path, key.String())
			}
			log.Printf("config: loaded %s", path)
		case errors.Is(err, fs.ErrNotExist) && !required:
			log.Printf("config: %s not found, using defaults", path)
		default:
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables; malformed values are ignored
func (c *Config) ApplyEnv() {
	c.Audio.ApplyEnv()

	if seconds := os.Getenv("HEAD_SOCCER_MATCH_SECONDS"); seconds != "" {
		if val, err := strconv.Atoi(seconds); err == nil {
			c.Match.Seconds = val
		}
	}

	if seed := os.Getenv("HEAD_SOCCER_SEED"); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			c.Match.Seed = val
		}
	}
}

// Validate rejects values that break the simulation or the audio backend
func (c *Config) Validate() error {
	p := c.Physics
	switch {
	case p.Gravity <= 0:
		return fmt.Errorf("%w: physics.gravity %v must be positive", ErrInvalidConfig, p.Gravity)
	case p.BounceDamping < 0 || p.BounceDamping > 1:
		return fmt.Errorf("%w: physics.bounce_damping %v outside [0,1]", ErrInvalidConfig, p.BounceDamping)
	case p.Friction <= 0 || p.Friction > 1:
		return fmt.Errorf("%w: physics.friction %v outside (0,1]", ErrInvalidConfig, p.Friction)
	case p.BounceEpsilon < 0:
		return fmt.Errorf("%w: physics.bounce_epsilon %v is negative", ErrInvalidConfig, p.BounceEpsilon)
	case p.KickSpeed <= 0:
		return fmt.Errorf("%w: physics.kick_speed %v must be positive", ErrInvalidConfig, p.KickSpeed)
	case p.CooldownMs < 0:
		return fmt.Errorf("%w: physics.cooldown_ms %d is negative", ErrInvalidConfig, p.CooldownMs)
	}

	a := c.Audio
	switch {
	case a.MasterVolume < 0 || a.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume %v outside [0,1]", ErrInvalidConfig, a.MasterVolume)
	case a.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate %d must be positive", ErrInvalidConfig, a.SampleRate)
	case a.BufferMs <= 0:
		return fmt.Errorf("%w: audio.buffer_ms %d must be positive", ErrInvalidConfig, a.BufferMs)
	}
	for _, name := range []string{a.SplashSong, a.IntroSong} {
		if _, err := audio.SongByName(name); err != nil {
			return fmt.Errorf("%w: audio: %w", ErrInvalidConfig, err)
		}
	}

	if c.Match.Seconds <= 0 {
		return fmt.Errorf("%w: match.seconds %d must be positive", ErrInvalidConfig, c.Match.Seconds)
	}

	if _, err := c.KeyMap(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// KeyMap builds the keymap from the default layout and the [keys] overrides
func (c *Config) KeyMap() (*input.KeyMap, error) {
	km := input.DefaultKeyMap()
	if err := km.Apply(c.Keys); err != nil {
		return nil, err
	}
	return km, nil
}

// Encode writes the configuration as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
