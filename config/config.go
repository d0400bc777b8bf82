// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ik5/stemfx/chords"
	"github.com/ik5/stemfx/effects"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownStep   = errors.New("unknown effect step type")
)

// StepConfig is one entry of the effect chain in a config file. Type selects
// the effect; only the fields that effect uses are read.
type StepConfig struct {
	Type     string `yaml:"type"`
	Disabled bool   `yaml:"disabled,omitempty"`

	CutoffHz    float64 `yaml:"cutoff_hz,omitempty"`
	ThresholdDB float64 `yaml:"threshold_db,omitempty"`
	Ratio       float64 `yaml:"ratio,omitempty"`
	RoomSize    float64 `yaml:"room_size,omitempty"`
	WetLevel    float64 `yaml:"wet_level,omitempty"`
	GainDB      float64 `yaml:"gain_db,omitempty"`
	Width       float64 `yaml:"width,omitempty"`

	effects.FilterSpec `yaml:",inline"`
}

// Config holds the run configuration, loaded from an optional YAML file and
// then from environment variables.
type Config struct {
	// Chain replaces the default mastering chain when set.
	Chain []StepConfig `yaml:"chain,omitempty"`

	// Chords extends the default chord table; TriadOctave, when set, first
	// adds major and minor triads on all twelve roots.
	Chords      map[string][]chords.PitchName `yaml:"chords,omitempty"`
	TriadOctave *int                          `yaml:"triad_octave,omitempty"`

	Velocity   int     `yaml:"velocity"`
	Instrument int     `yaml:"instrument"` // General MIDI program, 0 = piano
	TempoBPM   float64 `yaml:"tempo_bpm"`

	OutputRate int `yaml:"output_rate"` // 0 keeps the input rate
	BitDepth   int `yaml:"bit_depth"`
}

// Default returns the configuration used when no file or environment
// overrides are given.
func Default() Config {
	return Config{
		Velocity:   chords.DefaultVelocity,
		Instrument: 0,
		TempoBPM:   120,
		BitDepth:   16,
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Velocity = envInt("STEMFX_VELOCITY", c.Velocity)
	c.Instrument = envInt("STEMFX_INSTRUMENT", c.Instrument)
	c.OutputRate = envInt("STEMFX_OUTPUT_RATE", c.OutputRate)
	c.BitDepth = envInt("STEMFX_BIT_DEPTH", c.BitDepth)
	c.TempoBPM = envFloat("STEMFX_TEMPO", c.TempoBPM)
}

// Validate checks ranges and that the chain and chord table can be built.
func (c Config) Validate() error {
	switch {
	case c.Velocity < 0 || c.Velocity > 127:
		return fmt.Errorf("%w: velocity %d", ErrInvalidConfig, c.Velocity)
	case c.Instrument < 0 || c.Instrument > 127:
		return fmt.Errorf("%w: instrument %d", ErrInvalidConfig, c.Instrument)
	case c.TempoBPM <= 0:
		return fmt.Errorf("%w: tempo %g", ErrInvalidConfig, c.TempoBPM)
	case c.OutputRate < 0:
		return fmt.Errorf("%w: output rate %d", ErrInvalidConfig, c.OutputRate)
	}

	switch c.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit depth %d", ErrInvalidConfig, c.BitDepth)
	}

	if _, err := c.EffectChain(); err != nil {
		return err
	}
	if _, err := c.ChordTable(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// EffectChain builds the configured chain, or the default mastering chain
// when none is configured. Disabled steps are left out. Parameter ranges are
// checked later against the audio by effects.Chain.Validate.
func (c Config) EffectChain() (effects.Chain, error) {
	if c.Chain == nil {
		return effects.DefaultMasteringChain(), nil
	}

	chain := make(effects.Chain, 0, len(c.Chain))
	for i, sc := range c.Chain {
		if sc.Disabled {
			continue
		}
		step, err := sc.Step()
		if err != nil {
			return nil, fmt.Errorf("chain entry %d: %w", i, err)
		}
		chain = append(chain, step)
	}

	return chain, nil
}

// Step converts the entry to its effects.Step.
func (sc StepConfig) Step() (effects.Step, error) {
	switch sc.Type {
	case effects.KindHighPass:
		return effects.HighPass{CutoffHz: sc.CutoffHz}, nil
	case effects.KindCompressor:
		return effects.Compressor{ThresholdDB: sc.ThresholdDB, Ratio: sc.Ratio}, nil
	case effects.KindLimiter:
		return effects.Limiter{ThresholdDB: sc.ThresholdDB}, nil
	case effects.KindReverb:
		return effects.Reverb{RoomSize: sc.RoomSize, WetLevel: sc.WetLevel}, nil
	case effects.KindGain:
		return effects.Gain{GainDB: sc.GainDB}, nil
	case effects.KindStereoWiden:
		return effects.StereoWiden{Width: sc.Width}, nil
	case effects.KindBandAttenuate:
		return effects.BandAttenuate{Spec: sc.FilterSpec}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, sc.Type)
	}
}

// ChordTable returns the default table extended by TriadOctave and Chords.
func (c Config) ChordTable() (chords.Table, error) {
	table := chords.DefaultTable()

	if c.TriadOctave != nil {
		triads, err := chords.TriadTable(*c.TriadOctave)
		if err != nil {
			return nil, err
		}
		table = table.Merge(triads)
	}
	if len(c.Chords) > 0 {
		table = table.Merge(chords.Table(c.Chords))
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
