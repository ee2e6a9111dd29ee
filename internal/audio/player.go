package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/snake-extreme/internal/config"
	"github.com/vovakirdan/snake-extreme/internal/core"
)

// maxVoices caps concurrent cues so a burst of move ticks cannot pile up.
const maxVoices = 8

// Player mixes sound cues over the music bed on the default output device.
// A nil Player is valid and silent.
type Player struct {
	mu     sync.Mutex
	synth  Synth
	mixer  *beep.Mixer
	music  *effects.Volume
	device bool // mixer is playing on the speaker
	closed bool
}

// NewPlayer opens the speaker. Failure is not fatal for the game: callers
// log the error and continue with a nil Player.
func NewPlayer(cfg config.AudioConfig) (*Player, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open output device: %w", err)
	}

	p := newPlayer(cfg)
	p.device = true
	speaker.Play(p.mixer)
	return p, nil
}

// newPlayer builds the mixer graph without touching the device.
func newPlayer(cfg config.AudioConfig) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	p := &Player{
		synth: Synth{Rate: rate, Volume: cfg.Volume},
		mixer: &beep.Mixer{},
		music: volume(Music(rate), cfg.MusicVolume),
	}
	p.mixer.Add(p.music)
	return p
}

// Play queues the cues raised in one frame.
func (p *Player) Play(sounds []core.Sound) {
	if p == nil || len(sounds) == 0 {
		return
	}
	p.lock()
	defer p.unlock()

	if p.closed {
		return
	}
	for _, s := range sounds {
		if p.mixer.Len() > maxVoices {
			return
		}
		if st := p.synth.Cue(s); st != nil {
			p.mixer.Add(st)
		}
	}
}

// SetMusicVolume sets the music gain in [0, 1].
func (p *Player) SetMusicVolume(v float64) {
	if p == nil {
		return
	}
	p.lock()
	defer p.unlock()

	if v <= 0 {
		p.music.Silent = true
		return
	}
	p.music.Silent = false
	p.music.Volume = math.Log2(math.Min(v, 1))
}

// MusicVolume returns the current music gain.
func (p *Player) MusicVolume() float64 {
	if p == nil {
		return 0
	}
	p.lock()
	defer p.unlock()

	if p.music.Silent {
		return 0
	}
	return math.Pow(2, p.music.Volume)
}

// Close stops all sound.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.closed = true
	p.unlock()
	if p.device {
		speaker.Clear()
	}
}

// lock guards the mixer against the speaker goroutine as well as callers.
func (p *Player) lock() {
	p.mu.Lock()
	if p.device {
		speaker.Lock()
	}
}

func (p *Player) unlock() {
	if p.device {
		speaker.Unlock()
	}
	p.mu.Unlock()
}
