package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.3
)

// Cue names understood by Play
const (
	CueEat   = "eat"
	CueCrash = "crash"
)

// Player plays named sound cues
type Player interface {
	Play(cue string)
}

// Silent is a Player that plays nothing
type Silent struct{}

func (Silent) Play(string) {}

// SoundManager synthesises the game cues and mixes them onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play starts the named cue. Unknown names and an uninitialised speaker are ignored.
func (sm *SoundManager) Play(cue string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := CueStreamer(cue)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// CueStreamer returns a finite streamer for cue, or nil if the cue is unknown
func CueStreamer(cue string) beep.Streamer {
	switch cue {
	case CueEat:
		return beep.Take(sampleRate.N(time.Millisecond*90), NewChirpGenerator(sampleRate, 660, 1320, time.Millisecond*90))
	case CueCrash:
		return beep.Take(sampleRate.N(time.Millisecond*350), NewCrashGenerator(sampleRate, time.Millisecond*350))
	default:
		return nil
	}
}

// ChirpGenerator sweeps a sine from one pitch to another with a short decay
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a rising (or falling) tone lasting d
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: sr.N(d),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := 1 - progress
		sample := volume * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// CrashGenerator is a falling square-ish buzz with a linear fade
type CrashGenerator struct {
	sr     beep.SampleRate
	length int
	pos    int
	phase  float64
}

// NewCrashGenerator creates a crash sound lasting d
func NewCrashGenerator(sr beep.SampleRate, d time.Duration) *CrashGenerator {
	return &CrashGenerator{
		sr:     sr,
		length: sr.N(d),
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := 220 - 160*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Odd harmonics for a harsh edge
		sample := math.Sin(g.phase) + math.Sin(3*g.phase)/3 + math.Sin(5*g.phase)/5
		sample *= volume * 0.7 * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
