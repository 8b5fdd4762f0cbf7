package constant

// Population Defaults
const (
	// DefaultMaxParticles is the soft population cap; a full shell batch
	// may transiently exceed it
	DefaultMaxParticles = 5000

	// DefaultSeed feeds each Simulation's private RNG when the host does
	// not supply one
	DefaultSeed = 1
)
