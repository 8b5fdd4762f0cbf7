package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lixenwraith/fireworks/constant"
	"github.com/lixenwraith/fireworks/particle"
	"github.com/lixenwraith/fireworks/vmath"
)

// Simulation owns the live particle population and advances it in time.
// It is a synchronous single-writer component: the frame driver serializes
// Advance then Fill each tick. Hosts that simulate and render on separate
// goroutines must hold one lock across both calls
type Simulation struct {
	cfg Config
	rng *rand.Rand

	particles []particle.Particle
	retired   []int

	rocketCount   int
	simulatedTime float64

	// OnBurst, when set, is called once per rocket retirement with the
	// chosen pattern and the burst position, before the batch is inserted
	OnBurst func(particle.Pattern, vmath.Vec3F)
}

// New creates a Simulation with the given tuning. The RNG is private to
// the instance, so seeded simulations replay identically in isolation
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(cfg.Seed)),
		particles:     make([]particle.Particle, 0, cfg.MaxParticles),
		simulatedTime: cfg.Now,
	}, nil
}

// Generate launches one rocket if the committed budget leaves room.
// The budget reserves a full shell batch per in-flight rocket so that no
// later burst can push the population far past the cap. Returns false on
// budget exhaustion, which is a silent no-op, not an error
func (s *Simulation) Generate() bool {
	committed := len(s.particles) + s.rocketCount*s.cfg.ShellBatch
	if committed+1+s.cfg.ShellBatch > s.cfg.MaxParticles {
		return false
	}
	s.particles = append(s.particles, s.newRocket())
	s.rocketCount++
	return true
}

func (s *Simulation) newRocket() particle.Particle {
	life := s.cfg.RocketLifetimeMin +
		(s.cfg.RocketLifetimeMax-s.cfg.RocketLifetimeMin)*s.rng.Float64()
	return particle.Particle{
		Kind: particle.KindRocket,
		Position: vmath.Vec3F{
			X: (2*s.rng.Float64() - 1) * constant.RocketLaunchSpread,
			Z: (2*s.rng.Float64() - 1) * constant.RocketLaunchSpread,
		},
		Color:          s.randomBrightColor(),
		Size:           constant.RocketSizePixels,
		VelocityScalar: constant.RocketAscentRate,
		AgeRemaining:   life,
		LastSimulated:  s.simulatedTime,
	}
}

// randomBrightColor draws RGB channels above a floor and normalizes the
// largest channel to 1.0 so every rocket reads as saturated against the sky
func (s *Simulation) randomBrightColor() vmath.Vec3F {
	c := vmath.Vec3F{
		X: constant.RocketColorFloor + (1-constant.RocketColorFloor)*s.rng.Float64(),
		Y: constant.RocketColorFloor + (1-constant.RocketColorFloor)*s.rng.Float64(),
		Z: constant.RocketColorFloor + (1-constant.RocketColorFloor)*s.rng.Float64(),
	}
	peak := math.Max(c.X, math.Max(c.Y, c.Z))
	return vmath.V3FScale(c, 1/peak)
}

// Advance steps every live particle to target, bursts retiring rockets and
// removes retired particles. A target at or before the current simulated
// time is an idempotent no-op; a non-finite target is a rejected
// precondition violation
func (s *Simulation) Advance(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return fmt.Errorf("sim: non-finite advance target %v", target)
	}
	if target <= s.simulatedTime {
		return nil
	}

	// Step only the population present at entry. Fragments appended by
	// bursts below carry LastSimulated == target and begin aging from
	// there on the next Advance
	s.retired = s.retired[:0]
	live := len(s.particles)
	for i := 0; i < live; i++ {
		if !s.particles[i].Step(target) {
			s.retired = append(s.retired, i)
		}
	}

	for _, i := range s.retired {
		p := &s.particles[i]
		if p.Kind != particle.KindRocket {
			continue
		}
		s.rocketCount--
		batch, pattern := particle.Explode(
			s.rng, p.Position, p.Color, target,
			s.cfg.ShellBatch, s.cfg.SparkleBatch,
		)
		if s.OnBurst != nil {
			s.OnBurst(pattern, p.Position)
		}
		s.particles = append(s.particles, batch...)
	}

	// Swap-remove retired slots, highest index first so every swap pulls
	// from the live tail (or a just-inserted fragment, which stays live)
	for k := len(s.retired) - 1; k >= 0; k-- {
		i := s.retired[k]
		last := len(s.particles) - 1
		s.particles[i] = s.particles[last]
		s.particles = s.particles[:last]
	}

	s.simulatedTime = target
	return nil
}

// Fill serializes every live particle contiguously from index 0 in current
// population order and returns the count written. The buffer must hold
// BufferLen floats; a short buffer is a programmer error and panics
func (s *Simulation) Fill(buf []float32) int {
	stride := particle.Stride(s.cfg.IncludeTexCoord)
	if need := len(s.particles) * stride; len(buf) < need {
		panic(fmt.Sprintf("sim: fill buffer holds %d floats, need %d", len(buf), need))
	}
	cursor := 0
	for i := range s.particles {
		cursor = s.particles[i].WriteAttributes(buf, cursor, s.cfg.IncludeTexCoord)
	}
	return len(s.particles)
}

// BufferLen is the float capacity a Fill buffer must provide: the cap plus
// one shell batch of transient overshoot, times the record stride
func (s *Simulation) BufferLen() int {
	return (s.cfg.MaxParticles + s.cfg.ShellBatch) * particle.Stride(s.cfg.IncludeTexCoord)
}

// Reset clears the population and rocket count. The simulated time and the
// capacity configuration are unchanged
func (s *Simulation) Reset() {
	s.particles = s.particles[:0]
	s.rocketCount = 0
}

// Live returns the current live particle count
func (s *Simulation) Live() int {
	return len(s.particles)
}

// Rockets returns the number of in-flight rockets
func (s *Simulation) Rockets() int {
	return s.rocketCount
}

// Time returns the last simulated time
func (s *Simulation) Time() float64 {
	return s.simulatedTime
}
