package particle

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/fireworks/constant"
	"github.com/lixenwraith/fireworks/vmath"
)

// Pattern is the spatial layout of an explosion batch
type Pattern uint8

const (
	PatternSphere Pattern = iota
	PatternRing
	PatternSparkle
)

func (p Pattern) String() string {
	switch p {
	case PatternRing:
		return "ring"
	case PatternSparkle:
		return "sparkle"
	default:
		return "sphere"
	}
}

// ChoosePattern draws a pattern with the fixed weights 60/20/20
func ChoosePattern(rng *rand.Rand) Pattern {
	r := rng.Float64()
	switch {
	case r < constant.PatternSphereWeight:
		return PatternSphere
	case r < constant.PatternSphereWeight+constant.PatternRingWeight:
		return PatternRing
	default:
		return PatternSparkle
	}
}

// Explode produces the fragment batch for a rocket retiring at pos with the
// rocket's color. Fragments begin aging at now. shellSize sizes sphere and
// ring batches, sparkleSize the sparkle batch. Never fails: the returned
// batch is always exactly the configured size for the chosen pattern
func Explode(rng *rand.Rand, pos, color vmath.Vec3F, now float64, shellSize, sparkleSize int) ([]Particle, Pattern) {
	pattern := ChoosePattern(rng)
	switch pattern {
	case PatternRing:
		return explodeRing(rng, pos, color, now, shellSize), pattern
	case PatternSparkle:
		return explodeSparkle(rng, pos, color, now, sparkleSize), pattern
	default:
		return explodeSphere(rng, pos, color, now, shellSize), pattern
	}
}

func newFragment(rng *rand.Rand, pos, color, dir vmath.Vec3F, now, size float64) Particle {
	return Particle{
		Kind:           KindFragment,
		Position:       pos,
		Color:          color,
		Size:           size,
		VelocityScalar: vmath.V3FMag(dir),
		AgeRemaining:   constant.FragmentLifetimeMax * rng.Float64(),
		LastSimulated:  now,
		Direction:      dir,
	}
}

// explodeSphere samples directions uniformly over the full sphere.
// Inclination via arccos of a uniform draw avoids polar clustering
func explodeSphere(rng *rand.Rand, pos, color vmath.Vec3F, now float64, count int) []Particle {
	batch := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		theta := math.Acos(2*rng.Float64() - 1)
		phi := 2 * math.Pi * rng.Float64()
		dir := vmath.V3FScale(vmath.V3FFromSpherical(theta, phi), constant.SphereDriftMag)
		batch = append(batch, newFragment(rng, pos, color, dir, now, constant.FragmentSizePixels))
	}
	return batch
}

// explodeRing lays the batch out as a torus shell: a fixed number of minor
// rings around the major radius, each fragment offset from the burst point
// and drifting along a small random jitter
func explodeRing(rng *rand.Rand, pos, color vmath.Vec3F, now float64, count int) []Particle {
	batch := make([]Particle, 0, count)
	perRing := count / constant.RingCount
	if perRing < 1 {
		perRing = 1
	}
	for i := 0; i < count; i++ {
		ring := i / perRing
		if ring >= constant.RingCount {
			ring = constant.RingCount - 1
		}
		// v walks the tube circle per ring, u the major circle within it
		v := 2 * math.Pi * float64(ring) / constant.RingCount
		u := 2 * math.Pi * float64(i%perRing) / float64(perRing)

		radial := constant.RingMajorRadius + constant.RingMinorRadius*math.Cos(v)
		offset := vmath.Vec3F{
			X: radial * math.Cos(u),
			Y: constant.RingMinorRadius * math.Sin(v),
			Z: radial * math.Sin(u),
		}
		jitter := vmath.V3FScale(randomUnit(rng), constant.RingJitterMag*rng.Float64())
		batch = append(batch, newFragment(rng, vmath.V3FAdd(pos, offset), color, jitter, now, constant.FragmentSizePixels))
	}
	return batch
}

// explodeSparkle emits a small, fast batch with directions biased toward
// the upper hemisphere
func explodeSparkle(rng *rand.Rand, pos, color vmath.Vec3F, now float64, count int) []Particle {
	batch := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		// arccos over [0,1) keeps the inclination above the horizon
		theta := math.Acos(rng.Float64())
		phi := 2 * math.Pi * rng.Float64()
		dir := vmath.V3FScale(vmath.V3FFromSpherical(theta, phi), constant.SparkleDriftMag)
		spawn := vmath.V3FAdd(pos, vmath.V3FScale(randomUnit(rng), constant.SparkleSpawnSpread*rng.Float64()))
		batch = append(batch, newFragment(rng, spawn, color, dir, now, constant.SparkleSizePixels))
	}
	return batch
}

func randomUnit(rng *rand.Rand) vmath.Vec3F {
	theta := math.Acos(2*rng.Float64() - 1)
	phi := 2 * math.Pi * rng.Float64()
	return vmath.V3FFromSpherical(theta, phi)
}
