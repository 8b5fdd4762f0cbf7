package constant

// Aging & Fade Windows
const (
	// ColorFadeAge is the remaining-age threshold below which a fragment's
	// color starts its exponential decay
	ColorFadeAge = 6.0

	// SizeFadeAge is the remaining-age threshold below which a fragment's
	// point size starts its exponential decay
	SizeFadeAge = 5.0

	// ColorDecayBase is the per-second retention factor for fading color.
	// color *= ColorDecayBase^dt, the exact solution of dC/dt = ln(base)*C,
	// so the fade stays stable under variable frame time
	ColorDecayBase = 0.2

	// SizeDecayBase is the per-second retention factor for fading size
	SizeDecayBase = 0.8
)

// Rocket Tuning
const (
	// RocketAscentRate scales the per-call vertical climb increment by the
	// rocket's remaining age: fast off the pad, slowing toward burst
	RocketAscentRate = 0.05

	// RocketSizePixels is the constant point size of an in-flight rocket
	RocketSizePixels = 14.0

	RocketLifetimeMin = 1.5
	RocketLifetimeMax = 3.5

	// RocketLaunchSpread is the half-extent of the random XZ launch offset
	RocketLaunchSpread = 2.0

	// RocketColorFloor keeps spawn colors out of the murky range before
	// they are normalized to full brightness
	RocketColorFloor = 0.25
)
