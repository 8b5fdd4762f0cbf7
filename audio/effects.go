package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fireworks/constant"
	"github.com/lixenwraith/fireworks/particle"
)

// Engine plays procedurally generated launch and burst sounds. All synthesis
// is streamed; nothing is precomputed or loaded from disk
type Engine struct {
	sr      beep.SampleRate
	seed    int64
	enabled bool
}

// NewEngine initializes the speaker. On failure the returned engine is a
// silent no-op and the error is reported for the caller to log; audio is
// never fatal to the display
func NewEngine(seed int64) (*Engine, error) {
	e := &Engine{
		sr:   beep.SampleRate(constant.AudioSampleRate),
		seed: seed,
	}
	if err := speaker.Init(e.sr, e.sr.N(constant.AudioBufferDuration)); err != nil {
		return e, err
	}
	e.enabled = true
	return e, nil
}

// Enabled reports whether the speaker came up
func (e *Engine) Enabled() bool {
	return e.enabled
}

// Launch plays the soft whump of a rocket leaving the pad
func (e *Engine) Launch() {
	if !e.enabled {
		return
	}
	tone, err := generators.SineTone(e.sr, constant.LaunchToneHz)
	if err != nil {
		return
	}
	n := e.sr.N(constant.LaunchDuration)
	speaker.Play(&gainStreamer{s: beep.Take(n, tone), gain: constant.LaunchSoundGain})
}

// Burst plays the explosion character matching the pattern: a deep rumble
// for spheres, a double crackle for rings, a bright fizz for sparkles
func (e *Engine) Burst(p particle.Pattern) {
	if !e.enabled {
		return
	}
	e.seed++
	switch p {
	case particle.PatternRing:
		first := newBoom(e.sr, e.seed, constant.BoomRingLen,
			constant.BoomRingDecay, constant.BoomRingSmooth, constant.BoomRingGain)
		echo := newBoom(e.sr, e.seed+1, constant.BoomRingLen,
			constant.BoomRingDecay, constant.BoomRingSmooth, constant.BoomRingGain*0.6)
		silence := beep.Silence(e.sr.N(constant.RingEchoDelay))
		speaker.Play(first, beep.Seq(silence, echo))
	case particle.PatternSparkle:
		speaker.Play(newBoom(e.sr, e.seed, constant.BoomSparkleLen,
			constant.BoomSparkleDecay, constant.BoomSparkleSmooth, constant.BoomSparkleGain))
	default:
		speaker.Play(newBoom(e.sr, e.seed, constant.BoomSphereLen,
			constant.BoomSphereDecay, constant.BoomSphereSmooth, constant.BoomSphereGain))
	}
}

// Close tears the speaker down
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
		e.enabled = false
	}
}

// boom is a filtered noise burst with an exponential release envelope
type boom struct {
	rng    *rand.Rand
	pos    int
	total  int
	decay  float64 // per-sample amplitude retention
	smooth float64 // one-pole lowpass coefficient
	env    float64
	prevL  float64
	prevR  float64
}

func newBoom(sr beep.SampleRate, seed int64, length time.Duration, decayPerSec, smooth, gain float64) *boom {
	total := sr.N(length)
	if total < 1 {
		total = 1
	}
	return &boom{
		rng:    rand.New(rand.NewSource(seed)),
		total:  total,
		decay:  math.Pow(decayPerSec, 1/float64(sr)),
		smooth: smooth,
		env:    gain,
	}
}

func (b *boom) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= b.total {
		return 0, false
	}
	n := len(samples)
	if remain := b.total - b.pos; n > remain {
		n = remain
	}
	for i := 0; i < n; i++ {
		white := b.rng.Float64()*2 - 1
		b.prevL = b.prevL*b.smooth + white*(1-b.smooth)
		white = b.rng.Float64()*2 - 1
		b.prevR = b.prevR*b.smooth + white*(1-b.smooth)
		samples[i][0] = b.prevL * b.env
		samples[i][1] = b.prevR * b.env
		b.env *= b.decay
	}
	b.pos += n
	return n, true
}

func (b *boom) Err() error {
	return nil
}

// gainStreamer scales another streamer's output
type gainStreamer struct {
	s    beep.Streamer
	gain float64
}

func (g *gainStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.s.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.gain
		samples[i][1] *= g.gain
	}
	return n, ok
}

func (g *gainStreamer) Err() error {
	return g.s.Err()
}
