package particle

import (
	"math"

	"github.com/lixenwraith/fireworks/constant"
	"github.com/lixenwraith/fireworks/vmath"
)

// Kind selects particle behavior; the variant set is closed and every
// Step dispatch switches over it exhaustively
type Kind uint8

const (
	KindGeneric Kind = iota
	KindRocket
	KindFragment
)

// Particle is one simulated point entity. Rockets climb until their age
// expires and then burst; fragments drift along a fixed direction and fade
type Particle struct {
	Kind Kind

	// World-space location
	Position vmath.Vec3F

	// RGB, unclamped; may exceed [0,1] transiently
	Color vmath.Vec3F

	// Point render size in pixels, shrinks through the fade window
	Size float64

	// Scalar speed parameter; for rockets the per-call ascent rate,
	// for fragments the drift magnitude used at creation
	VelocityScalar float64

	// Seconds until retirement; particle is dead once this crosses zero
	AgeRemaining float64

	// Timestamp of the last integration step, used to derive dt and to
	// reject out-of-order or duplicate calls
	LastSimulated float64

	// Per-fragment constant drift applied every call, fixed at creation.
	// Zero for rockets
	Direction vmath.Vec3F
}

// Step integrates the particle from LastSimulated to target. Returns false
// when the particle must be removed (age expired), true otherwise.
// A target at or before LastSimulated is an idempotent no-op. A non-finite
// target is rejected without advancing time; Simulation.Advance is the
// reporting surface for that precondition violation
func (p *Particle) Step(target float64) bool {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return true
	}
	if target <= p.LastSimulated {
		return true
	}
	dt := target - p.LastSimulated
	p.LastSimulated = target
	p.AgeRemaining -= dt
	if p.AgeRemaining <= 0 {
		return false
	}

	switch p.Kind {
	case KindRocket:
		// Simplified ascent profile: climb scaled by remaining age,
		// fast off the pad and slowing as the age depletes
		p.Position.Y += p.VelocityScalar * p.AgeRemaining

	default:
		// Fixed-step displacement: the drift vector is applied once per
		// call, not scaled by dt. A zero direction simply does not move
		p.Position = vmath.V3FAdd(p.Position, p.Direction)

		if p.AgeRemaining < constant.ColorFadeAge {
			p.Color = vmath.V3FScale(p.Color, math.Pow(constant.ColorDecayBase, dt))
		}
		if p.AgeRemaining < constant.SizeFadeAge {
			p.Size *= math.Pow(constant.SizeDecayBase, dt)
		}
	}
	return true
}

// WriteAttributes serializes one vertex record into buf at cursor and
// returns the advanced cursor. The field order and stride are defined in
// constant/buffer.go. Pure: no particle state changes, identical output
// for identical state
func (p *Particle) WriteAttributes(buf []float32, cursor int, texCoord bool) int {
	buf[cursor+0] = float32(p.Position.X)
	buf[cursor+1] = float32(p.Position.Y)
	buf[cursor+2] = float32(p.Position.Z)
	buf[cursor+3] = float32(p.Color.X)
	buf[cursor+4] = float32(p.Color.Y)
	buf[cursor+5] = float32(p.Color.Z)
	buf[cursor+6] = 1.0 // alpha
	cursor += 7
	if texCoord {
		buf[cursor+0] = constant.TexCoordS
		buf[cursor+1] = constant.TexCoordT
		cursor += 2
	}
	// Point normal, fixed for shader attribute-layout compatibility
	buf[cursor+0] = 0
	buf[cursor+1] = 1
	buf[cursor+2] = 0
	buf[cursor+3] = float32(p.Size)
	return cursor + 4
}

// Stride returns floats written per particle for the given layout
func Stride(texCoord bool) int {
	if texCoord {
		return constant.AttrStrideTexCoord
	}
	return constant.AttrStride
}
