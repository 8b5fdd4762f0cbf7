package sim

import (
	"fmt"

	"github.com/lixenwraith/fireworks/constant"
)

// Config is the host-facing tuning surface of one Simulation instance
type Config struct {
	// MaxParticles is the soft population cap. The cap may be exceeded
	// transiently by one full shell batch; Fill buffers must be sized
	// with BufferLen to absorb that
	MaxParticles int

	// Now seeds the simulation clock; Advance targets at or before it
	// are no-ops
	Now float64

	// Seed feeds the instance-private RNG, making runs repeatable
	Seed int64

	// ShellBatch is the fragment count for sphere and ring bursts,
	// SparkleBatch for sparkle bursts
	ShellBatch   int
	SparkleBatch int

	// RocketLifetimeMin/Max bound the uniform lifetime draw at launch
	RocketLifetimeMin float64
	RocketLifetimeMax float64

	// IncludeTexCoord widens each vertex record with a fixed (0.5, 0.5)
	// texcoord pair for hosts whose shader layout expects one
	IncludeTexCoord bool
}

// DefaultConfig returns the standard display tuning
func DefaultConfig() Config {
	return Config{
		MaxParticles:      constant.DefaultMaxParticles,
		Seed:              constant.DefaultSeed,
		ShellBatch:        constant.ShellBatchSize,
		SparkleBatch:      constant.SparkleBatchSize,
		RocketLifetimeMin: constant.RocketLifetimeMin,
		RocketLifetimeMax: constant.RocketLifetimeMax,
	}
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.MaxParticles <= 0 {
		return fmt.Errorf("sim: MaxParticles must be positive, got %d", c.MaxParticles)
	}
	if c.ShellBatch < 0 || c.SparkleBatch < 0 {
		return fmt.Errorf("sim: batch sizes must be non-negative, got shell %d sparkle %d", c.ShellBatch, c.SparkleBatch)
	}
	if c.RocketLifetimeMin < 0 || c.RocketLifetimeMax < c.RocketLifetimeMin {
		return fmt.Errorf("sim: rocket lifetime range [%v, %v] is invalid", c.RocketLifetimeMin, c.RocketLifetimeMax)
	}
	return nil
}
