package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				if v := buf[i][c]; v > peak {
					peak = v
				} else if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestBoomDrainsExactLength(t *testing.T) {
	length := 300 * time.Millisecond
	b := newBoom(testRate, 1, length, 0.02, 0.9, 0.8)

	total, _ := drain(b)
	if want := testRate.N(length); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}

	// Drained streamer stays drained
	if n, ok := b.Stream(make([][2]float64, 8)); n != 0 || ok {
		t.Errorf("Expected drained streamer, got n=%d ok=%v", n, ok)
	}
}

func TestBoomAmplitudeBounded(t *testing.T) {
	b := newBoom(testRate, 7, 500*time.Millisecond, 0.01, 0.5, 0.85)
	_, peak := drain(b)
	if peak > 1.0 {
		t.Errorf("Expected samples within [-1, 1], got peak %v", peak)
	}
	if peak == 0 {
		t.Error("Expected non-silent burst")
	}
}

func TestBoomIsSeeded(t *testing.T) {
	a := newBoom(testRate, 3, 50*time.Millisecond, 0.02, 0.9, 0.8)
	b := newBoom(testRate, 3, 50*time.Millisecond, 0.02, 0.9, 0.8)

	bufA := make([][2]float64, 256)
	bufB := make([][2]float64, 256)
	a.Stream(bufA)
	b.Stream(bufB)
	for i := range bufA {
		if bufA[i] != bufB[i] {
			t.Fatalf("Expected identical output for equal seeds, differs at %d", i)
		}
	}
}

func TestGainStreamerScales(t *testing.T) {
	src := newBoom(testRate, 5, 100*time.Millisecond, 0.02, 0.9, 1.0)
	_, rawPeak := drain(src)

	src = newBoom(testRate, 5, 100*time.Millisecond, 0.02, 0.9, 1.0)
	_, halfPeak := drain(&gainStreamer{s: src, gain: 0.5})

	if diff := rawPeak*0.5 - halfPeak; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("Expected halved peak %v, got %v", rawPeak*0.5, halfPeak)
	}
}

func TestDisabledEngineIsSilentNoOp(t *testing.T) {
	e := &Engine{sr: testRate}
	// Must not panic or touch the speaker
	e.Launch()
	e.Burst(0)
	e.Close()
	if e.Enabled() {
		t.Error("Expected engine to stay disabled")
	}
}
