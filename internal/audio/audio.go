// Package audio plays short procedural cues for placement events through a beep
// mixer. Every call is a no-op until Initialize succeeds, so the app runs fine
// without an audio device.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Cue int

const (
	CuePlace Cue = iota
	CueSelect
	CueRemove
	CueError
)

func (c Cue) String() string {
	switch c {
	case CuePlace:
		return "place"
	case CueSelect:
		return "select"
	case CueRemove:
		return "remove"
	case CueError:
		return "error"
	default:
		return "unknown"
	}
}

// CuePlayer mixes cues onto the speaker.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewCuePlayer(volume float64) *CuePlayer {
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := CueStreamer(c, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup silences everything still playing.
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// CueStreamer builds the finite streamer for c at the given volume.
func CueStreamer(c Cue, volume float64) beep.Streamer {
	note := func(freq float64, d time.Duration) beep.Streamer {
		return NewTone(sampleRate, freq, volume, d)
	}
	switch c {
	case CuePlace:
		return beep.Seq(note(659.25, 70*time.Millisecond), note(987.77, 110*time.Millisecond))
	case CueSelect:
		return note(1318.51, 40*time.Millisecond)
	case CueRemove:
		return beep.Seq(note(523.25, 70*time.Millisecond), note(329.63, 110*time.Millisecond))
	case CueError:
		return NewTone(sampleRate, 120, volume, 250*time.Millisecond).Harmonics(3)
	default:
		return nil
	}
}

// Tone is a sine tone of fixed length with a short linear fade in and out.
type Tone struct {
	sr        beep.SampleRate
	freq      float64
	amp       float64
	harmonics int
	pos       int
	total     int
	fade      int
}

func NewTone(sr beep.SampleRate, freq, amp float64, d time.Duration) *Tone {
	total := sr.N(d)
	return &Tone{
		sr:        sr,
		freq:      freq,
		amp:       amp,
		harmonics: 1,
		total:     total,
		fade:      min(sr.N(5*time.Millisecond), total/2),
	}
}

// Harmonics adds overtones 2..n at halving amplitude, for a harsher buzz.
func (t *Tone) Harmonics(n int) *Tone {
	if n > 0 {
		t.harmonics = n
	}
	return t
}

// Len is the tone length in samples.
func (t *Tone) Len() int { return t.total }

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		sec := float64(t.pos) / float64(t.sr)

		v, weight, norm := 0.0, 1.0, 0.0
		for h := 1; h <= t.harmonics; h++ {
			v += weight * math.Sin(2*math.Pi*t.freq*float64(h)*sec)
			norm += weight
			weight /= 2
		}
		v = t.amp * t.envelope() * v / norm

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *Tone) envelope() float64 {
	if t.fade == 0 {
		return 1
	}
	switch {
	case t.pos < t.fade:
		return float64(t.pos) / float64(t.fade)
	case t.pos >= t.total-t.fade:
		return float64(t.total-t.pos) / float64(t.fade)
	}
	return 1
}

func (t *Tone) Err() error {
	return nil
}
