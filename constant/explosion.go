package constant

// Pattern Selection Weights
// Cumulative thresholds for a single uniform draw in [0,1)
const (
	PatternSphereWeight  = 0.6
	PatternRingWeight    = 0.2
	PatternSparkleWeight = 0.2
)

// Batch Sizes
const (
	// ShellBatchSize is the fragment count for sphere and ring bursts
	ShellBatchSize = 750

	// SparkleBatchSize is the fragment count for sparkle bursts
	SparkleBatchSize = 50
)

// Fragment Tuning
const (
	// FragmentLifetimeMax bounds the uniform [0, max) lifetime draw
	FragmentLifetimeMax = 4.0

	FragmentSizePixels = 7.0

	// SphereDriftMag is the per-call displacement of sphere fragments
	SphereDriftMag = 0.03

	// SparkleDriftMag is larger: fewer fragments, faster spread
	SparkleDriftMag = 0.08

	SparkleSizePixels = 9.0
)

// Ring / Torus Layout
const (
	// RingCount is the number of minor rings the batch is spread across
	RingCount = 5

	// RingMajorRadius is the torus center-to-tube distance
	RingMajorRadius = 0.6

	// RingMinorRadius is the tube radius
	RingMinorRadius = 0.25

	// RingJitterMag is the magnitude of each ring fragment's random drift
	RingJitterMag = 0.012

	// SparkleSpawnSpread is the half-extent of the sparkle spawn offset
	SparkleSpawnSpread = 0.15
)
