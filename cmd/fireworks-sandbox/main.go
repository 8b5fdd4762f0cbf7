// fireworks-sandbox renders the particle simulation as a terminal fireworks
// display: rockets climb from the bottom edge, burst into sphere, ring or
// sparkle shells and fade out. The sandbox is the frame driver: it owns the
// clock, calls Advance then Fill once per tick and draws straight from the
// fill buffer.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/fireworks/audio"
	"github.com/lixenwraith/fireworks/constant"
	"github.com/lixenwraith/fireworks/particle"
	"github.com/lixenwraith/fireworks/sim"
	"github.com/lixenwraith/fireworks/vmath"
)

// aspectRatio compensates for terminal cells being taller than wide
const aspectRatio = 2.1

type Sandbox struct {
	cfg    *Config
	screen tcell.Screen
	logger *zap.Logger

	simulation *sim.Simulation
	buf        []float32
	stride     int

	sound *audio.Engine

	width, height int
	simTime       float64
	paused        bool
	lastLaunch    float64
	frames        int
	fps           float64
	lastFPSSample time.Time
}

func newSandbox(cfg *Config, logger *zap.Logger) (*Sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	simulation, err := sim.New(cfg.simConfig())
	if err != nil {
		screen.Fini()
		return nil, err
	}

	s := &Sandbox{
		cfg:           cfg,
		screen:        screen,
		logger:        logger,
		simulation:    simulation,
		buf:           make([]float32, simulation.BufferLen()),
		stride:        particle.Stride(false),
		lastFPSSample: time.Now(),
	}
	s.width, s.height = screen.Size()

	if cfg.Audio.Enabled {
		sound, err := audio.NewEngine(cfg.Simulation.Seed)
		if err != nil {
			// Non-fatal, the display runs silent
			logger.Warn("audio init failed", zap.Error(err))
		}
		s.sound = sound
	}

	simulation.OnBurst = func(p particle.Pattern, pos vmath.Vec3F) {
		if s.sound != nil {
			s.sound.Burst(p)
		}
		logger.Debug("burst",
			zap.String("pattern", p.String()),
			zap.Float64("y", pos.Y),
			zap.Int("live", simulation.Live()),
		)
	}

	return s, nil
}

func (s *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.paused = !s.paused
			case 'r':
				s.simulation.Reset()
				s.logger.Info("population reset")
			case 'l':
				s.launch()
			}
		}
	case *tcell.EventResize:
		s.width, s.height = s.screen.Size()
		s.screen.Sync()
	}
	return true
}

func (s *Sandbox) launch() {
	if s.simulation.Generate() {
		if s.sound != nil {
			s.sound.Launch()
		}
	}
	s.lastLaunch = s.simTime
}

func (s *Sandbox) tick(dt float64) {
	if s.paused {
		return
	}
	s.simTime += dt
	if err := s.simulation.Advance(s.simTime); err != nil {
		s.logger.Error("advance failed", zap.Error(err))
		return
	}
	if s.simTime-s.lastLaunch >= s.cfg.Launch.Interval.Seconds() {
		s.launch()
	}
}

// draw projects the fill buffer onto the screen. Reading the flat buffer
// rather than the population keeps the sandbox honest about the same
// contract a GPU-backed host would consume
func (s *Sandbox) draw() {
	s.screen.Clear()

	count := s.simulation.Fill(s.buf)
	scaleY := float64(s.height-2) / s.cfg.Display.WorldHeight
	centerX := float64(s.width) / 2

	for i := 0; i < count; i++ {
		rec := s.buf[i*s.stride:]
		x := float64(rec[0])
		y := float64(rec[1])
		z := float64(rec[2])

		// Cheap depth: shift sideways by z instead of a real projection
		sx := int(centerX + (x+z*0.35)*scaleY*aspectRatio)
		sy := s.height - 2 - int(y*scaleY)
		if sx < 0 || sx >= s.width || sy < 0 || sy >= s.height {
			continue
		}

		color := tcell.NewRGBColor(channel(rec[3]), channel(rec[4]), channel(rec[5]))
		s.screen.SetContent(sx, sy, sizeRune(rec[10]), nil, tcell.StyleDefault.Foreground(color))
	}

	s.drawHUD(count)
	s.screen.Show()
}

func (s *Sandbox) drawHUD(count int) {
	status := fmt.Sprintf(" live %4d  rockets %d  fps %5.1f ", count, s.simulation.Rockets(), s.fps)
	if s.paused {
		status += "[paused] "
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range status {
		if i >= s.width {
			break
		}
		s.screen.SetContent(i, 0, r, nil, style)
	}
}

// channel clamps one unclamped buffer channel to displayable 8-bit
func channel(v float32) int32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return int32(v * 255)
}

func sizeRune(sizePixels float32) rune {
	switch {
	case sizePixels >= constant.RocketSizePixels:
		return '█'
	case sizePixels >= constant.SparkleSizePixels:
		return '●'
	case sizePixels >= constant.FragmentSizePixels*0.6:
		return '•'
	default:
		return '·'
	}
}

func (s *Sandbox) run() {
	frame := time.Second / time.Duration(s.cfg.Display.TargetFPS)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			now := time.Now()
			s.tick(now.Sub(last).Seconds())
			last = now
			s.draw()

			s.frames++
			if since := now.Sub(s.lastFPSSample); since >= time.Second {
				s.fps = float64(s.frames) / since.Seconds()
				s.frames = 0
				s.lastFPSSample = now
				s.logger.Info("stats",
					zap.Int("live", s.simulation.Live()),
					zap.Int("rockets", s.simulation.Rockets()),
					zap.Float64("fps", s.fps),
				)
			}
		}
	}
}

func (s *Sandbox) cleanup() {
	if s.sound != nil {
		s.sound.Close()
	}
	s.screen.Fini()
}

// newLogger writes to the configured file; the terminal owns stdout, so an
// empty path means no logging at all
func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.Path}
	zapCfg.ErrorOutputPaths = []string{cfg.Path}
	return zapCfg.Build()
}

func main() {
	configPath := flag.String("config", "fireworks.toml", "path to TOML config")
	flag.Parse()
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := loadConfig(*configPath, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("max_particles", cfg.Simulation.MaxParticles),
		zap.Int64("seed", cfg.Simulation.Seed),
		zap.Duration("launch_interval", cfg.Launch.Interval),
	)

	sandbox, err := newSandbox(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sandbox.cleanup()

	sandbox.run()
	logger.Info("shutdown")
}
