package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency; 100ms is forgiving
	// enough to survive a frame hitch without crackle
	AudioBufferDuration = 100 * time.Millisecond
)

// Launch Sound
const (
	LaunchToneHz    = 180.0
	LaunchDuration  = 120 * time.Millisecond
	LaunchSoundGain = 0.25
)

// Burst Sounds
// Per-pattern noise-burst character: decay is the per-second amplitude
// retention, smooth the one-pole lowpass coefficient (0 = white noise)
const (
	BoomSphereDecay  = 0.02
	BoomSphereSmooth = 0.92
	BoomSphereGain   = 0.85
	BoomSphereLen    = 900 * time.Millisecond

	BoomRingDecay  = 0.01
	BoomRingSmooth = 0.80
	BoomRingGain   = 0.70
	BoomRingLen    = 550 * time.Millisecond

	// RingEchoDelay offsets the second crackle of a ring burst
	RingEchoDelay = 140 * time.Millisecond

	BoomSparkleDecay  = 0.004
	BoomSparkleSmooth = 0.30
	BoomSparkleGain   = 0.45
	BoomSparkleLen    = 350 * time.Millisecond
)
