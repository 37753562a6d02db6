// Package audio plays the launch sound cues: a countdown tick and the engine rumble.
// Audio is optional; every method is a no-op until Initialize succeeds.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/jdeans289/sls/random"
)

const (
	sampleRate = beep.SampleRate(48000)
	tickLength = 80 * time.Millisecond
	// Final counts tick an octave up
	urgentCount = 3
)

// LaunchSound manages all launch audio
type LaunchSound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rumble      *beep.Ctrl
	volume      float64
	tickHz      float64
	seed        uint64
	initialized bool
}

// NewLaunchSound creates a sound manager, volume in [0,1]
func NewLaunchSound(volume, tickHz float64, seed uint64) *LaunchSound {
	return &LaunchSound{
		mixer:  &beep.Mixer{},
		volume: volume,
		tickHz: tickHz,
		seed:   seed,
	}
}

// Initialize opens the speaker
func (ls *LaunchSound) Initialize() error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if ls.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(ls.mixer)
	ls.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker
func (ls *LaunchSound) Cleanup() {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if !ls.initialized {
		return
	}

	speaker.Lock()
	if ls.rumble != nil {
		ls.rumble.Paused = true
	}
	ls.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	ls.initialized = false
}

// gain scales s by the configured volume
func (ls *LaunchSound) gain(s beep.Streamer) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: ls.volume - 1}
}

// add attaches a streamer to the mixer, caller holds ls.mu
func (ls *LaunchSound) add(s beep.Streamer) {
	speaker.Lock()
	ls.mixer.Add(s)
	speaker.Unlock()
}

// Tick plays a short countdown beep for count
func (ls *LaunchSound) Tick(count int) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if !ls.initialized {
		return
	}

	freq := ls.tickHz
	if count <= urgentCount {
		freq *= 2
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	ls.add(ls.gain(beep.Take(sampleRate.N(tickLength), tone)))
}

// StartRumble starts the looping engine noise, no-op if already running
func (ls *LaunchSound) StartRumble() {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if !ls.initialized {
		return
	}
	if ls.rumble != nil && !ls.rumble.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: ls.gain(NewRumbleGenerator(sampleRate, ls.seed)), Paused: false}
	ls.rumble = ctrl
	ls.add(ctrl)
}

// StopRumble pauses the engine noise
func (ls *LaunchSound) StopRumble() {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if ls.rumble == nil {
		return
	}
	speaker.Lock()
	ls.rumble.Paused = true
	speaker.Unlock()
}

// RumbleGenerator produces low-passed noise over a 40Hz drone with a slow swell
type RumbleGenerator struct {
	sr    beep.SampleRate
	pos   int
	rng   *random.FastRand
	prev  float64
	swell int
}

// NewRumbleGenerator creates an endless rumble
func NewRumbleGenerator(sr beep.SampleRate, seed uint64) *RumbleGenerator {
	return &RumbleGenerator{
		sr:    sr,
		rng:   random.NewFastRand(seed),
		swell: sr.N(time.Second * 2),
	}
}

func (g *RumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		noise := float64(g.rng.Intn(2001))/1000 - 1
		// One-pole low-pass for a muffled roar
		g.prev += 0.05 * (noise - g.prev)

		drone := 0.3 * math.Sin(2*math.Pi*40*t)
		attack := math.Min(float64(g.pos)/float64(g.swell), 1.0)

		sample := attack * (0.6*g.prev + drone)
		sample = math.Max(-1, math.Min(1, sample))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RumbleGenerator) Err() error {
	return nil
}
