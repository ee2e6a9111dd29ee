// Package audio turns game sound cues into beep streamers and plays them
// over a ducked background music bed.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/snake-extreme/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// tone is a fixed-length oscillator with a linear attack/release envelope.
type tone struct {
	freq, slide float64 // start frequency and its change over the tone, Hz
	wave        Wave
	rate        beep.SampleRate
	phase       float64
	pos, total  int
	attack      int
	release     int
	rng         *rand.Rand
}

// Tone creates a streamer that plays one shaped note. slide bends the pitch
// linearly over the note.
func Tone(rate beep.SampleRate, wave Wave, freq, slide float64, d, attack, release time.Duration) beep.Streamer {
	return &tone{
		freq:    freq,
		slide:   slide,
		wave:    wave,
		rate:    rate,
		total:   rate.N(d),
		attack:  rate.N(attack),
		release: rate.N(release),
		rng:     rand.New(rand.NewSource(int64(freq))),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		v := t.sample() * t.gain()
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(t.pos) / float64(t.total)
		t.phase += (t.freq + t.slide*progress) / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(t.phase-0.5) - 1
	case WaveNoise:
		return t.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) gain() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; t.release > 0 && left < t.release {
		return float64(left) / float64(t.release)
	}
	return 1
}

// volume wraps s in a linear gain. Zero or less is silent since log2(0) is -Inf.
func volume(s beep.Streamer, v float64) *effects.Volume {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Synth builds cue streamers at a fixed sample rate and master volume.
type Synth struct {
	Rate   beep.SampleRate
	Volume float64
}

// Cue returns a fresh streamer for a sound, or nil for SoundNone.
func (s Synth) Cue(sound core.Sound) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	r := s.Rate

	var st beep.Streamer
	switch sound {
	case core.SoundMove:
		st = volume(Tone(r, WaveTriangle, 180, 0, ms(40), ms(5), ms(30)), 0.25)
	case core.SoundFood:
		st = beep.Seq(
			Tone(r, WaveSquare, 660, 0, ms(60), ms(5), ms(20)),
			Tone(r, WaveSquare, 990, 0, ms(90), ms(5), ms(60)),
		)
	case core.SoundDestroy:
		st = beep.Mix(
			Tone(r, WaveSquare, 330, -250, ms(450), ms(5), ms(300)),
			volume(Tone(r, WaveNoise, 1, 0, ms(300), ms(5), ms(250)), 0.4),
		)
	case core.SoundPause:
		st = Tone(r, WaveSine, 520, -180, ms(150), ms(10), ms(100))
	case core.SoundResume:
		st = Tone(r, WaveSine, 340, 180, ms(150), ms(10), ms(100))
	case core.SoundObstacles:
		st = volume(Tone(r, WaveNoise, 1, 0, ms(220), ms(20), ms(150)), 0.6)
	case core.SoundShinePickup:
		st = beep.Seq(
			Tone(r, WaveSine, 880, 0, ms(70), ms(5), ms(30)),
			Tone(r, WaveSine, 1175, 0, ms(70), ms(5), ms(30)),
			Tone(r, WaveSine, 1760, 0, ms(140), ms(5), ms(100)),
		)
	case core.SoundShineDevour:
		st = beep.Mix(
			Tone(r, WaveSquare, 220, 440, ms(200), ms(5), ms(120)),
			volume(Tone(r, WaveNoise, 1, 0, ms(120), ms(5), ms(100)), 0.3),
		)
	default:
		return nil
	}
	return volume(st, s.Volume)
}

// musicBed loops a short pentatonic arpeggio forever.
type musicBed struct {
	notes []float64
	step  int
	rate  beep.SampleRate
	cur   beep.Streamer
}

// Music returns an endless background streamer.
func Music(rate beep.SampleRate) beep.Streamer {
	return &musicBed{
		notes: []float64{220, 261.63, 293.66, 329.63, 392, 329.63, 293.66, 261.63},
		rate:  rate,
	}
}

func (m *musicBed) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if m.cur == nil {
			f := m.notes[m.step%len(m.notes)]
			m.cur = Tone(m.rate, WaveTriangle, f, 0, 250*time.Millisecond, 20*time.Millisecond, 120*time.Millisecond)
			m.step++
		}
		k, more := m.cur.Stream(samples[n:])
		n += k
		if !more || k == 0 {
			m.cur = nil
		}
	}
	return n, true
}

func (m *musicBed) Err() error { return nil }
