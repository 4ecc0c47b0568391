// Package config holds the launch-time tunables for the hypergraph engine:
// destination buffer sizing, work queue block growth, spinlock backoff
// bounds, pacing thresholds, and generator tolerances. Values are loaded
// from YAML via gopkg.in/yaml.v3, matching how the rest of the pack treats
// ambient configuration as a validated, versionable struct rather than a
// scatter of flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params is the full set of runtime-tunable parameters for the engine.
type Params struct {
	// DestinationBufferCapacity bounds how many pending inclusions a
	// DestinationBuffer accumulates before it must be drained.
	DestinationBufferCapacity uint32 `yaml:"destination_buffer_capacity"`

	// InitialBlockSize is the element capacity of the first BagSegment
	// block allocated for a locale.
	InitialBlockSize int `yaml:"initial_block_size"`

	// MaxBlockSize bounds the geometric growth of BagSegment blocks.
	MaxBlockSize int `yaml:"max_block_size"`

	// MinTightSpin/MaxTightSpin are busy-spin bounds for spinlock acquire
	// loops. Validate checks them, but no spinlock in this module reads
	// them: the acquire loops yield on every observed-held state.
	MinTightSpin int `yaml:"min_tight_spin"`
	MaxTightSpin int `yaml:"max_tight_spin"`

	// MinFlushVelocity is the minimum acceptable items-per-millisecond
	// drain rate before the WorkQueue pacing watcher forces an
	// out-of-band flush.
	MinFlushVelocity float64 `yaml:"min_flush_velocity"`

	// ChungLuDuplicationTolerance is the fraction of candidate inclusions
	// a Chung-Lu or BTER generator run may discard as duplicates. Validate
	// checks that it lies in [0,1]; the generators do not read it and log
	// nothing about duplicates (the dropped count goes to the generator
	// duplicates metric).
	ChungLuDuplicationTolerance float64 `yaml:"chung_lu_duplication_tolerance"`

	// MinBackoff/MaxBackoff are exponential backoff bounds, in
	// milliseconds, for TerminationDetector.Wait. Wait takes its bounds as
	// arguments; nothing in this module passes these values to it.
	MinBackoff DurationMillis `yaml:"min_backoff_ms"`
	MaxBackoff DurationMillis `yaml:"max_backoff_ms"`

	// ProfilingEnabled is a profiling toggle. Nothing in this module reads
	// it: per-operation duration metrics are recorded on every call
	// whatever its value.
	ProfilingEnabled bool `yaml:"profiling_enabled"`
}

// DurationMillis is a plain integer count of milliseconds, kept distinct
// from time.Duration so the YAML representation stays a bare number.
type DurationMillis int

// Default returns the engine's built-in configuration.
func Default() Params {
	return Params{
		DestinationBufferCapacity:   1 << 20,
		InitialBlockSize:            1024,
		MaxBlockSize:                1 << 20,
		MinTightSpin:                8,
		MaxTightSpin:                1024,
		MinFlushVelocity:            0.1,
		ChungLuDuplicationTolerance: 0.05,
		MinBackoff:                  1,
		MaxBackoff:                  256,
		ProfilingEnabled:            false,
	}
}

// Load reads and validates a Params struct from a YAML file, filling any
// zero-valued field left unset in the file with the corresponding default.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("config: reading %q: %w", path, err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("config: parsing %q: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, fmt.Errorf("config: %q: %w", path, err)
	}

	return p, nil
}

// Validate checks that the parameter set is internally consistent.
func (p Params) Validate() error {
	if p.DestinationBufferCapacity == 0 {
		return fmt.Errorf("destination_buffer_capacity must be > 0")
	}
	if p.InitialBlockSize <= 0 {
		return fmt.Errorf("initial_block_size must be > 0")
	}
	if p.MaxBlockSize < p.InitialBlockSize {
		return fmt.Errorf("max_block_size (%d) must be >= initial_block_size (%d)", p.MaxBlockSize, p.InitialBlockSize)
	}
	if p.MinTightSpin <= 0 || p.MaxTightSpin < p.MinTightSpin {
		return fmt.Errorf("tight spin bounds invalid: min=%d max=%d", p.MinTightSpin, p.MaxTightSpin)
	}
	if p.MinFlushVelocity < 0 {
		return fmt.Errorf("min_flush_velocity must be >= 0")
	}
	if p.ChungLuDuplicationTolerance < 0 || p.ChungLuDuplicationTolerance > 1 {
		return fmt.Errorf("chung_lu_duplication_tolerance must be in [0,1]")
	}
	if p.MinBackoff <= 0 || p.MaxBackoff < p.MinBackoff {
		return fmt.Errorf("backoff bounds invalid: min=%d max=%d", p.MinBackoff, p.MaxBackoff)
	}
	return nil
}
