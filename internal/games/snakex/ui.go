package snakex

import (
	"fmt"

	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/tween"
)

// Overlay layers sit above every playfield sprite.
const (
	layerDimmer = 1e6
	layerBoard  = layerDimmer + 1
	layerHUD    = layerDimmer + 2
)

// Button is a clickable HUD ball (start, pause).
type Button struct {
	*actor.Ball
}

// NewButton creates a hidden button at the given pixel position.
func NewButton(name string, pos, size core.Vec2, timing actor.Timing) *Button {
	timing.FloatPeriod = 0
	b := &Button{Ball: actor.NewBall(name, pos, size, timing, nil)}
	b.Layer = layerHUD
	return b
}

// Show grows the button in.
func (b *Button) Show() {
	b.QuickAppear()
}

// Hide shrinks the button away.
func (b *Button) Hide() {
	b.QuickVanish()
}

// Hit reports whether a pointer lands on a visible, idle button.
func (b *Button) Hit(p *core.Vec2) bool {
	return p != nil && b.Idle() && p.InBox(b.Pos, b.Size)
}

// Priority pins the button above the playfield.
func (b *Button) Priority() float64 {
	return b.Layer
}

// Draw appends the button sprite with its pinned priority.
func (b *Button) Draw(dst []actor.Sprite) []actor.Sprite {
	s := b.Sprite()
	s.Priority = b.Layer
	return append(dst, s)
}

// ScorePanel shows a number and flashes whenever it changes.
type ScorePanel struct {
	Label string
	Pos   core.Vec2
	Size  core.Vec2

	value      int
	flash      actor.Counter
	flashTicks int
	flashing   bool
}

// NewScorePanel creates a panel showing zero.
func NewScorePanel(label string, pos, size core.Vec2, flashTicks int) *ScorePanel {
	return &ScorePanel{Label: label, Pos: pos, Size: size, flashTicks: flashTicks}
}

// Set changes the value and flashes the panel.
func (p *ScorePanel) Set(v int) {
	p.value = v
	p.Flash()
}

// Flash restarts the flash.
func (p *ScorePanel) Flash() {
	p.flash.Reset(p.flashTicks)
	p.flashing = true
}

// Value returns the displayed number.
func (p *ScorePanel) Value() int { return p.value }

// Flashing reports whether a flash is in progress.
func (p *ScorePanel) Flashing() bool { return p.flashing }

// Update is a no-op; the flash advances on strict ticks.
func (p *ScorePanel) Update(float64) {}

// StrictUpdate advances the flash.
func (p *ScorePanel) StrictUpdate() {
	if p.flashing && p.flash.Tick() {
		p.flashing = false
	}
}

// Priority places the panel on the HUD layer.
func (p *ScorePanel) Priority() float64 { return layerHUD }

// Draw appends the panel text, silhouetted while flashing.
func (p *ScorePanel) Draw(dst []actor.Sprite) []actor.Sprite {
	silhouette := 0.0
	if p.flashing {
		silhouette = p.flash.Ratio()
	}
	return append(dst, actor.Sprite{
		Name:        "score_panel",
		Text:        fmt.Sprintf("%s %d", p.Label, p.value),
		X:           p.Pos.X,
		Y:           p.Pos.Y,
		W:           p.Size.X,
		H:           p.Size.Y,
		Alpha:       1,
		Scale:       1,
		ShadowScale: 1,
		Silhouette:  silhouette,
		Priority:    layerHUD,
		Visible:     true,
	})
}

// slide is a two-position tween shared by the board and the dimmer:
// closed <-> open over a fixed tick budget.
type slide struct {
	state   slideState
	counter actor.Counter
	ticks   int
}

type slideState int

const (
	slideClosed slideState = iota
	slideOpening
	slideOpen
	slideClosing
)

func (s *slide) open(owner string) {
	if s.state != slideClosed {
		panic(fmt.Sprintf("snakex: %s: open while not closed", owner))
	}
	s.state = slideOpening
	s.counter.Reset(s.ticks)
}

func (s *slide) close(owner string) {
	if s.state != slideOpen {
		panic(fmt.Sprintf("snakex: %s: close while not open", owner))
	}
	s.state = slideClosing
	s.counter.Reset(s.ticks)
}

func (s *slide) tick() {
	if s.state != slideOpening && s.state != slideClosing {
		return
	}
	if s.counter.Tick() {
		if s.state == slideOpening {
			s.state = slideOpen
		} else {
			s.state = slideClosed
		}
	}
}

// amount returns how open the slide is, in [0, 1].
func (s *slide) amount() float64 {
	switch s.state {
	case slideOpen:
		return 1
	case slideOpening:
		return tween.Smoothstep(0, 1, 1-s.counter.Ratio())
	case slideClosing:
		return tween.Smoothstep(0, 1, s.counter.Ratio())
	default:
		return 0
	}
}

// MessageBoard slides a text panel down from above the map.
type MessageBoard struct {
	Text  string
	Pos   core.Vec2 // resting position when open
	Size  core.Vec2
	slide slide
}

// NewMessageBoard creates a closed board.
func NewMessageBoard(text string, pos, size core.Vec2, ticks int) *MessageBoard {
	return &MessageBoard{Text: text, Pos: pos, Size: size, slide: slide{ticks: ticks}}
}

// Open starts sliding the board in.
func (b *MessageBoard) Open() { b.slide.open("message board") }

// Close starts sliding the board out.
func (b *MessageBoard) Close() { b.slide.close("message board") }

// Opened reports whether the board rests fully open.
func (b *MessageBoard) Opened() bool { return b.slide.state == slideOpen }

// Closed reports whether the board rests fully closed.
func (b *MessageBoard) Closed() bool { return b.slide.state == slideClosed }

// Update is a no-op.
func (b *MessageBoard) Update(float64) {}

// StrictUpdate advances the slide.
func (b *MessageBoard) StrictUpdate() { b.slide.tick() }

// Priority places the board above the dimmer.
func (b *MessageBoard) Priority() float64 { return layerBoard }

// Draw appends the board at its current slide offset.
func (b *MessageBoard) Draw(dst []actor.Sprite) []actor.Sprite {
	a := b.slide.amount()
	return append(dst, actor.Sprite{
		Name:        "message_board",
		Text:        b.Text,
		X:           b.Pos.X,
		Y:           tween.Lerp(-b.Size.Y, b.Pos.Y, a),
		W:           b.Size.X,
		H:           b.Size.Y,
		Alpha:       1,
		Scale:       1,
		ShadowScale: 1,
		Priority:    layerBoard,
		Visible:     a > 0,
	})
}

// Dimmer fades a full-screen overlay in and out.
type Dimmer struct {
	Size     core.Vec2
	MaxAlpha float64
	slide    slide
}

// NewDimmer creates a clear dimmer.
func NewDimmer(size core.Vec2, maxAlpha float64, ticks int) *Dimmer {
	return &Dimmer{Size: size, MaxAlpha: maxAlpha, slide: slide{ticks: ticks}}
}

// Dim starts the fade in.
func (d *Dimmer) Dim() { d.slide.open("dimmer") }

// Brighten starts the fade out.
func (d *Dimmer) Brighten() { d.slide.close("dimmer") }

// Dimmed reports whether the overlay rests fully dimmed.
func (d *Dimmer) Dimmed() bool { return d.slide.state == slideOpen }

// Clear reports whether the overlay rests fully clear.
func (d *Dimmer) Clear() bool { return d.slide.state == slideClosed }

// Alpha returns the current overlay opacity.
func (d *Dimmer) Alpha() float64 { return d.MaxAlpha * d.slide.amount() }

// Update is a no-op.
func (d *Dimmer) Update(float64) {}

// StrictUpdate advances the fade.
func (d *Dimmer) StrictUpdate() { d.slide.tick() }

// Priority places the overlay above the playfield.
func (d *Dimmer) Priority() float64 { return layerDimmer }

// Draw appends the full-level overlay.
func (d *Dimmer) Draw(dst []actor.Sprite) []actor.Sprite {
	a := d.Alpha()
	return append(dst, actor.Sprite{
		Name:     "dimmer",
		W:        d.Size.X,
		H:        d.Size.Y,
		Alpha:    a,
		Scale:    1,
		Priority: layerDimmer,
		Visible:  a > 0,
	})
}

// InputLatch holds an edge-triggered press until the end of the next strict
// tick. Registered on the UI stage, its StrictUpdate consumes the press.
type InputLatch struct {
	pressed bool
	held    bool
}

// Press records a press.
func (l *InputLatch) Press() { l.pressed = true }

// Pressed reports whether a press is pending.
func (l *InputLatch) Pressed() bool { return l.pressed }

// Hold keeps a pending press alive through the next StrictUpdate.
func (l *InputLatch) Hold() { l.held = l.pressed }

// Update is a no-op; presses only change on strict ticks.
func (l *InputLatch) Update(float64) {}

// StrictUpdate consumes the press unless it is being held.
func (l *InputLatch) StrictUpdate() {
	if l.held {
		l.held = false
		return
	}
	l.pressed = false
}

// Priority is unused; the latch draws nothing.
func (l *InputLatch) Priority() float64 { return 0 }

// Draw leaves dst unchanged.
func (l *InputLatch) Draw(dst []actor.Sprite) []actor.Sprite { return dst }

// VolumeFader tweens the music control amount between the playing and the
// ducked level.
type VolumeFader struct {
	from, to, current float64
	counter           actor.Counter
	ticks             int
	fading            bool
}

// NewVolumeFader creates a fader resting at level.
func NewVolumeFader(level float64, ticks int) *VolumeFader {
	return &VolumeFader{from: level, to: level, current: level, ticks: ticks}
}

// FadeTo starts a smoothstep tween from the current level.
func (v *VolumeFader) FadeTo(level float64) {
	v.from, v.to = v.current, level
	v.counter.Reset(v.ticks)
	v.fading = true
}

// Level returns the current control amount.
func (v *VolumeFader) Level() float64 { return v.current }

// Fading reports whether a tween is in progress.
func (v *VolumeFader) Fading() bool { return v.fading }

// Update is a no-op.
func (v *VolumeFader) Update(float64) {}

// StrictUpdate advances the tween by one tick.
func (v *VolumeFader) StrictUpdate() {
	if !v.fading {
		return
	}
	if v.counter.Tick() {
		v.fading = false
		v.current = v.to
		return
	}
	v.current = tween.Smoothstep(v.from, v.to, 1-v.counter.Ratio())
}

// Priority is unused; the fader draws nothing.
func (v *VolumeFader) Priority() float64 { return 0 }

// Draw leaves dst unchanged.
func (v *VolumeFader) Draw(dst []actor.Sprite) []actor.Sprite { return dst }
