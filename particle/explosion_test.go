package particle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/fireworks/constant"
	"github.com/lixenwraith/fireworks/vmath"
)

func TestChoosePatternWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const draws = 20000

	counts := map[Pattern]int{}
	for i := 0; i < draws; i++ {
		counts[ChoosePattern(rng)]++
	}

	check := func(p Pattern, want float64) {
		got := float64(counts[p]) / draws
		if math.Abs(got-want) > 0.02 {
			t.Errorf("Expected %v frequency near %v, got %v", p, want, got)
		}
	}
	check(PatternSphere, constant.PatternSphereWeight)
	check(PatternRing, constant.PatternRingWeight)
	check(PatternSparkle, constant.PatternSparkleWeight)
}

func TestExplodeSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pos := vmath.Vec3F{X: 1, Y: 12, Z: -2}
	color := vmath.Vec3F{X: 1, Y: 0.6, Z: 0.2}

	batch := explodeSphere(rng, pos, color, 3.5, constant.ShellBatchSize)
	if len(batch) != constant.ShellBatchSize {
		t.Fatalf("Expected %d fragments, got %d", constant.ShellBatchSize, len(batch))
	}

	var sumY float64
	for i, f := range batch {
		if f.Kind != KindFragment {
			t.Fatalf("Expected fragment kind, got %v", f.Kind)
		}
		// Sphere fragments spawn at the exact death position
		if f.Position != pos {
			t.Fatalf("Expected fragment %d at burst position, got %+v", i, f.Position)
		}
		if f.Color != color {
			t.Fatalf("Expected fragment %d to share rocket color, got %+v", i, f.Color)
		}
		if mag := vmath.V3FMag(f.Direction); math.Abs(mag-constant.SphereDriftMag) > 1e-9 {
			t.Fatalf("Expected drift magnitude %v, got %v", constant.SphereDriftMag, mag)
		}
		if f.AgeRemaining < 0 || f.AgeRemaining >= constant.FragmentLifetimeMax {
			t.Fatalf("Expected lifetime in [0, %v), got %v", constant.FragmentLifetimeMax, f.AgeRemaining)
		}
		if f.LastSimulated != 3.5 {
			t.Fatalf("Expected fragments to begin aging at 3.5, got %v", f.LastSimulated)
		}
		sumY += f.Direction.Y
	}

	// Uniform inclination keeps the mean vertical component near zero
	if mean := sumY / float64(len(batch)); math.Abs(mean) > constant.SphereDriftMag*0.25 {
		t.Errorf("Expected near-zero mean vertical drift, got %v", mean)
	}
}

func TestExplodeRing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pos := vmath.Vec3F{Y: 10}
	color := vmath.Vec3F{X: 0.2, Y: 0.9, Z: 1}

	batch := explodeRing(rng, pos, color, 0, constant.ShellBatchSize)
	if len(batch) != constant.ShellBatchSize {
		t.Fatalf("Expected %d fragments, got %d", constant.ShellBatchSize, len(batch))
	}

	minRadial := constant.RingMajorRadius - constant.RingMinorRadius
	maxRadial := constant.RingMajorRadius + constant.RingMinorRadius
	for i, f := range batch {
		off := vmath.V3FSub(f.Position, pos)
		radial := math.Hypot(off.X, off.Z)
		if radial < minRadial-1e-9 || radial > maxRadial+1e-9 {
			t.Fatalf("Expected fragment %d radial offset in [%v, %v], got %v", i, minRadial, maxRadial, radial)
		}
		if math.Abs(off.Y) > constant.RingMinorRadius+1e-9 {
			t.Fatalf("Expected fragment %d height within the tube radius, got %v", i, off.Y)
		}
		if mag := vmath.V3FMag(f.Direction); mag > constant.RingJitterMag+1e-9 {
			t.Fatalf("Expected jitter magnitude at most %v, got %v", constant.RingJitterMag, mag)
		}
	}
}

func TestExplodeSparkle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pos := vmath.Vec3F{Y: 8}
	color := vmath.Vec3F{X: 1, Y: 1, Z: 0.7}

	batch := explodeSparkle(rng, pos, color, 0, constant.SparkleBatchSize)
	if len(batch) != constant.SparkleBatchSize {
		t.Fatalf("Expected %d fragments, got %d", constant.SparkleBatchSize, len(batch))
	}

	for i, f := range batch {
		if mag := vmath.V3FMag(f.Direction); math.Abs(mag-constant.SparkleDriftMag) > 1e-9 {
			t.Fatalf("Expected drift magnitude %v, got %v", constant.SparkleDriftMag, mag)
		}
		// Hemisphere bias: inclination never dips below the horizon
		if f.Direction.Y < -1e-9 {
			t.Fatalf("Expected upward-biased drift, fragment %d has Y %v", i, f.Direction.Y)
		}
		off := vmath.V3FSub(f.Position, pos)
		if vmath.V3FMag(off) > constant.SparkleSpawnSpread+1e-9 {
			t.Fatalf("Expected spawn offset within %v, got %v", constant.SparkleSpawnSpread, vmath.V3FMag(off))
		}
		if f.Size != constant.SparkleSizePixels {
			t.Fatalf("Expected sparkle size %v, got %v", constant.SparkleSizePixels, f.Size)
		}
	}
}

func TestExplodeAlwaysReturnsFullBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		batch, pattern := Explode(rng, vmath.Vec3F{Y: 10}, vmath.Vec3F{X: 1}, 1.0,
			constant.ShellBatchSize, constant.SparkleBatchSize)

		want := constant.ShellBatchSize
		if pattern == PatternSparkle {
			want = constant.SparkleBatchSize
		}
		if len(batch) != want {
			t.Fatalf("Expected %d fragments for %v, got %d", want, pattern, len(batch))
		}
	}
}
