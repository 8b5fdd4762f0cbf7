package vmath

import (
	"math"
	"testing"
)

func TestV3FMag(t *testing.T) {
	if got := V3FMag(Vec3F{X: 3, Y: 4}); got != 5 {
		t.Errorf("Expected magnitude 5, got %v", got)
	}
}

func TestV3FNormalizeZero(t *testing.T) {
	if got := V3FNormalize(Vec3F{}); got != (Vec3F{}) {
		t.Errorf("Expected zero vector unchanged, got %+v", got)
	}
}

func TestV3FNormalizeUnit(t *testing.T) {
	v := V3FNormalize(Vec3F{X: 2, Y: -3, Z: 6})
	if mag := V3FMag(v); math.Abs(mag-1) > 1e-12 {
		t.Errorf("Expected unit magnitude, got %v", mag)
	}
}

func TestV3FFromSphericalIsUnit(t *testing.T) {
	for _, theta := range []float64{0, 0.4, math.Pi / 2, 2.1, math.Pi} {
		for _, phi := range []float64{0, 1, math.Pi, 5} {
			v := V3FFromSpherical(theta, phi)
			if mag := V3FMag(v); math.Abs(mag-1) > 1e-12 {
				t.Errorf("Expected unit vector for theta %v phi %v, got magnitude %v", theta, phi, mag)
			}
		}
	}
}

func TestV3FFromSphericalPoles(t *testing.T) {
	up := V3FFromSpherical(0, 0)
	if math.Abs(up.Y-1) > 1e-12 {
		t.Errorf("Expected +Y at zero inclination, got %+v", up)
	}
	down := V3FFromSpherical(math.Pi, 0)
	if math.Abs(down.Y+1) > 1e-12 {
		t.Errorf("Expected -Y at pi inclination, got %+v", down)
	}
}
