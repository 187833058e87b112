package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls every sample out of s and returns them
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never ended")
	return nil
}

func TestCueStreamerLengths(t *testing.T) {
	tests := []struct {
		cue string
		d   time.Duration
	}{
		{CueEat, 90 * time.Millisecond},
		{CueCrash, 350 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.cue, func(t *testing.T) {
			s := CueStreamer(tt.cue)
			if s == nil {
				t.Fatal("nil streamer")
			}
			samples := drain(t, s)
			if want := sampleRate.N(tt.d); len(samples) != want {
				t.Errorf("got %d samples, want %d", len(samples), want)
			}
		})
	}
}

func TestUnknownCue(t *testing.T) {
	if CueStreamer("fanfare") != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestGeneratorsStayInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	gens := map[string]beep.Streamer{
		"chirp": NewChirpGenerator(rate, 660, 1320, 100*time.Millisecond),
		"crash": NewCrashGenerator(rate, 100*time.Millisecond),
	}
	for name, g := range gens {
		buf := make([][2]float64, rate.N(100*time.Millisecond))
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("%s: Stream = %d, %v", name, n, ok)
		}
		peak := 0.0
		for _, s := range buf {
			if s[0] != s[1] {
				t.Fatalf("%s: channels differ", name)
			}
			peak = math.Max(peak, math.Abs(s[0]))
		}
		if peak == 0 || peak > 1 {
			t.Errorf("%s: peak amplitude %v out of (0,1]", name, peak)
		}
	}
}

func TestPlayWithoutSpeakerIsNoop(t *testing.T) {
	sm := NewSoundManager()
	sm.Play(CueEat)
	sm.Cleanup()
	Silent{}.Play(CueCrash)
}
