// Package sound plays short effects when the snake eats or resets.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/mikenye/torus-snake/game"
)

const sampleRate = beep.SampleRate(44100)

// Player is a game.Listener that plays a chime on eating and a buzz on reset.
// Until Init succeeds every call is a no-op, so the game runs silently without audio.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker with a 100ms buffer
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("opening speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

func (p *Player) FoodEaten(game.Position) {
	s, err := chime(sampleRate)
	if err != nil {
		glog.Warningf("building chime: %v", err)
		return
	}
	p.play(s)
}

func (p *Player) SnakeReset(reason game.ResetReason) {
	from, to := 220.0, 110.0
	if reason == game.ResetBoardFull {
		// rising sweep when the board was filled
		from, to = 330.0, 660.0
	}
	p.play(volume(NewSweep(sampleRate, from, to, 250*time.Millisecond), 0.4))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Play(s)
}

// chime is two short rising sine notes
func chime(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := note(sr, 660, 60*time.Millisecond)
	if err != nil {
		return nil, err
	}
	high, err := note(sr, 880, 90*time.Millisecond)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, high), nil
}

func note(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return volume(beep.Take(sr.N(d), sine), 0.3), nil
}

// volume scales s linearly; 0 is silent, 1 unchanged
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Sweep is a square wave gliding from one frequency to another while fading out
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
}

func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		val := 1.0
		if s.phase >= 0.5 {
			val = -1.0
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *Sweep) Err() error { return nil }
