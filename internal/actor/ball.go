package actor

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/tween"
)

// State is a presentation state of a Ball.
type State int

const (
	Invisible State = iota
	Normal
	QuickVanish
	QuickAppear
	LongVanish
	LongAppear
	LightningAppear
	LightningNormal
	LightningVanish
	ShineAppear
	ShineNormal
	ShineVanish
)

var stateNames = [...]string{
	Invisible:       "Invisible",
	Normal:          "Normal",
	QuickVanish:     "QuickVanish",
	QuickAppear:     "QuickAppear",
	LongVanish:      "LongVanish",
	LongAppear:      "LongAppear",
	LightningAppear: "LightningAppear",
	LightningNormal: "LightningNormal",
	LightningVanish: "LightningVanish",
	ShineAppear:     "ShineAppear",
	ShineNormal:     "ShineNormal",
	ShineVanish:     "ShineVanish",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Visual is the derived look of a Ball on the current tick.
type Visual struct {
	ShadowScale     float64
	BodyScale       float64
	BodyAlpha       float64
	SilhouetteAlpha float64
	Lift            float64 // pixels above the resting position
}

// Terminal visuals.
var (
	VisualNormal    = Visual{ShadowScale: 1, BodyScale: 1, BodyAlpha: 1}
	VisualInvisible = Visual{}
)

// Timing holds the tick budgets and motion constants of a Ball.
type Timing struct {
	QuickTicks  int     // scale-only transitions
	LongTicks   int     // fade + lift transitions
	PulseTicks  int     // period of the pulsing steady states
	EffectTicks int     // particle spawn cadence in pulsing states
	LiftHeight  float64 // maximum lift in pixels
	FloatPeriod float64 // seconds per bob cycle, 0 disables bobbing
	FloatHeight float64 // bob amplitude in pixels
}

// DefaultTiming returns the standard budgets.
func DefaultTiming() Timing {
	return Timing{
		QuickTicks:  4,
		LongTicks:   8,
		PulseTicks:  30,
		EffectTicks: 10,
		LiftHeight:  8,
		FloatPeriod: 2,
		FloatHeight: 1,
	}
}

type budget int

const (
	budgetNone budget = iota
	budgetQuick
	budgetLong
	budgetPulse
)

func (t Timing) ticks(b budget) int {
	switch b {
	case budgetQuick:
		return t.QuickTicks
	case budgetLong:
		return t.LongTicks
	case budgetPulse:
		return t.PulseTicks
	}
	return 1
}

// curve derives the visual from a counter ratio.
type curve func(r float64, t Timing) Visual

// phase describes one presentation state.
type phase struct {
	budget   budget
	curve    curve
	next     State  // target once the budget runs out (non-periodic)
	periodic bool   // re-arm instead of transitioning
	particle string // non-empty: spawn particles with this sprite name
}

// Ratio shapers: vanishing runs x from 1 to 0, appearing from 0 to 1.
func vanishing(r float64) float64 { return r }
func appearing(r float64) float64 { return 1 - r }

func constant(v Visual) curve {
	return func(float64, Timing) Visual { return v }
}

// quick scales the body and shadow without fading.
func quick(shape func(float64) float64) curve {
	return func(r float64, _ Timing) Visual {
		x := shape(r)
		return Visual{ShadowScale: x, BodyScale: x, BodyAlpha: 1}
	}
}

// long splits the ratio in two halves: the upper half lifts the body with a
// silhouette bump, the lower half fades body and shadow.
func long(shape func(float64) float64) curve {
	return func(r float64, t Timing) Visual {
		x := shape(r)
		high, low := tween.High(x), tween.Low(x)
		return Visual{
			ShadowScale:     low,
			BodyScale:       1,
			BodyAlpha:       low,
			SilhouetteAlpha: 4 * high * (1 - high),
			Lift:            tween.Lerp(t.LiftHeight, 0, high),
		}
	}
}

// wave is 0 at the period edges and 1 in the middle.
func wave(r float64) float64 {
	return 0.5 * (1 - math.Cos(2*math.Pi*r))
}

func flicker(r float64, _ Timing) Visual {
	v := VisualNormal
	v.SilhouetteAlpha = 0.8 * wave(r)
	return v
}

func breathe(r float64, _ Timing) Visual {
	v := VisualNormal
	v.BodyScale = 1 + 0.1*math.Sin(2*math.Pi*r)
	v.SilhouetteAlpha = 0.5 * wave(r)
	return v
}

var phases = map[State]phase{
	Invisible:       {curve: constant(VisualInvisible)},
	Normal:          {curve: constant(VisualNormal)},
	QuickVanish:     {budget: budgetQuick, curve: quick(vanishing), next: Invisible},
	QuickAppear:     {budget: budgetQuick, curve: quick(appearing), next: Normal},
	LongVanish:      {budget: budgetLong, curve: long(vanishing), next: Invisible},
	LongAppear:      {budget: budgetLong, curve: long(appearing), next: Normal},
	LightningAppear: {budget: budgetLong, curve: long(appearing), next: LightningNormal},
	LightningNormal: {budget: budgetPulse, curve: flicker, periodic: true, particle: "spark"},
	LightningVanish: {budget: budgetLong, curve: long(vanishing), next: Invisible},
	ShineAppear:     {budget: budgetLong, curve: long(appearing), next: ShineNormal},
	ShineNormal:     {budget: budgetPulse, curve: breathe, periodic: true, particle: "glint"},
	ShineVanish:     {budget: budgetLong, curve: long(vanishing), next: Invisible},
}

// commands maps each transition command to its allowed source states.
var commands = map[State][]State{
	QuickVanish:     {Normal},
	QuickAppear:     {Invisible},
	LongVanish:      {Normal},
	LongAppear:      {Invisible},
	LightningAppear: {Invisible},
	LightningVanish: {LightningNormal},
	ShineAppear:     {Invisible},
	ShineVanish:     {ShineNormal},
}

// Ball is the generic presentation entity. Every visual that appears or
// vanishes is driven by one.
type Ball struct {
	Name  string    // sprite name
	Pos   core.Vec2 // resting top-left position in pixels
	Size  core.Vec2
	Layer float64 // added to the vertical position to form the draw priority

	timing  Timing
	rng     *rand.Rand
	state   State
	counter Counter
	effect  Counter
	visual  Visual
	float   float64 // bob phase in [0, 1)

	particles []*Ball
}

// NewBall creates an invisible ball. rng feeds particle placement and may be
// nil for balls that never pulse.
func NewBall(name string, pos, size core.Vec2, timing Timing, rng *rand.Rand) *Ball {
	b := &Ball{
		Name:   name,
		Pos:    pos,
		Size:   size,
		timing: timing,
		rng:    rng,
	}
	b.enter(Invisible)
	return b
}

// QuickVanish shrinks the ball away.
func (b *Ball) QuickVanish() { b.command(QuickVanish) }

// QuickAppear grows the ball in.
func (b *Ball) QuickAppear() { b.command(QuickAppear) }

// LongVanish lifts and fades the ball away.
func (b *Ball) LongVanish() { b.command(LongVanish) }

// LongAppear fades the ball in and drops it into place.
func (b *Ball) LongAppear() { b.command(LongAppear) }

// LightningAppear fades in and then flickers until LightningVanish.
func (b *Ball) LightningAppear() { b.command(LightningAppear) }

// LightningVanish fades a flickering ball away.
func (b *Ball) LightningVanish() { b.command(LightningVanish) }

// ShineAppear fades in and then breathes until ShineVanish.
func (b *Ball) ShineAppear() { b.command(ShineAppear) }

// ShineVanish fades a breathing ball away.
func (b *Ball) ShineVanish() { b.command(ShineVanish) }

func (b *Ball) command(target State) {
	for _, from := range commands[target] {
		if b.state == from {
			b.enter(target)
			return
		}
	}
	panic(fmt.Sprintf("actor: %s: cannot enter %s from %s", b.Name, target, b.state))
}

// enter switches state and arms the counters for it.
func (b *Ball) enter(s State) {
	b.state = s
	p := phases[s]
	if p.budget == budgetNone {
		b.counter = Counter{}
	} else {
		b.counter.Reset(b.timing.ticks(p.budget))
	}
	if p.particle != "" {
		b.effect.Reset(b.timing.EffectTicks)
	}
	b.visual = p.curve(b.counter.Ratio(), b.timing)
}

// Update advances the float bob with real elapsed time.
func (b *Ball) Update(dt float64) {
	if b.timing.FloatPeriod > 0 {
		b.float = math.Mod(b.float+dt/b.timing.FloatPeriod, 1)
	}
	for _, p := range b.particles {
		p.Update(dt)
	}
}

// StrictUpdate advances the state machine by one tick and re-derives the
// visual from the counter ratio.
func (b *Ball) StrictUpdate() {
	b.updateParticles()

	p := phases[b.state]
	if p.budget == budgetNone {
		return
	}
	if b.counter.Tick() {
		if !p.periodic {
			b.enter(p.next)
			return
		}
		b.counter.Arm()
	}
	if p.particle != "" && b.effect.Tick() {
		b.effect.Arm()
		b.spawnParticle(p.particle)
	}
	b.visual = p.curve(b.counter.Ratio(), b.timing)
}

func (b *Ball) updateParticles() {
	kept := b.particles[:0]
	for _, p := range b.particles {
		p.StrictUpdate()
		if p.state == Normal {
			p.QuickVanish()
		}
		if !p.Gone() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(b.particles); i++ {
		b.particles[i] = nil
	}
	b.particles = kept
}

// spawnParticle starts a short-lived ball somewhere inside the bounding box.
func (b *Ball) spawnParticle(name string) {
	size := b.Size.Scale(1.0 / 3)
	fx, fy := 0.5, 0.5
	if b.rng != nil {
		fx, fy = b.rng.Float64(), b.rng.Float64()
	}
	pos := core.Vec2{
		X: b.Pos.X + fx*(b.Size.X-size.X),
		Y: b.Pos.Y + fy*(b.Size.Y-size.Y),
	}

	timing := b.timing
	timing.FloatPeriod = 0
	p := NewBall(name, pos, size, timing, nil)
	p.Layer = b.Layer + 0.5
	p.QuickAppear()
	b.particles = append(b.particles, p)
}

// Draw appends the ball sprite and its particles.
func (b *Ball) Draw(dst []Sprite) []Sprite {
	dst = append(dst, b.Sprite())
	for _, p := range b.particles {
		dst = p.Draw(dst)
	}
	return dst
}

// Sprite returns the render description of the ball itself.
func (b *Ball) Sprite() Sprite {
	return Sprite{
		Name:        b.Name,
		X:           b.Pos.X,
		Y:           b.Pos.Y - b.visual.Lift - b.bob(),
		W:           b.Size.X,
		H:           b.Size.Y,
		Alpha:       b.visual.BodyAlpha,
		Scale:       b.visual.BodyScale,
		ShadowScale: b.visual.ShadowScale,
		Silhouette:  b.visual.SilhouetteAlpha,
		Priority:    b.Priority(),
		Visible:     b.state != Invisible,
	}
}

func (b *Ball) bob() float64 {
	if b.timing.FloatPeriod <= 0 {
		return 0
	}
	return b.timing.FloatHeight * math.Sin(2*math.Pi*b.float)
}

// Priority orders balls by their resting bottom edge.
func (b *Ball) Priority() float64 {
	return b.Layer + b.Pos.Y + b.Size.Y
}

// State returns the current presentation state.
func (b *Ball) State() State { return b.state }

// Visual returns the visual derived on the last tick.
func (b *Ball) Visual() Visual { return b.visual }

// Counter returns the transition counter.
func (b *Ball) Counter() Counter { return b.counter }

// Idle reports whether the ball rests in a visible steady state.
func (b *Ball) Idle() bool {
	return b.state == Normal || b.state == LightningNormal || b.state == ShineNormal
}

// Gone reports whether the ball is fully hidden.
func (b *Ball) Gone() bool { return b.state == Invisible }

// Settled reports whether no transition is in flight.
func (b *Ball) Settled() bool { return b.Idle() || b.Gone() }

// FloatPhase returns the bob phase in [0, 1).
func (b *Ball) FloatPhase() float64 { return b.float }

// BorrowFloatPhase copies another ball's bob phase so both bob in sync.
func (b *Ball) BorrowFloatPhase(other *Ball) {
	b.float = other.float
}

// Particles returns the number of live particles.
func (b *Ball) Particles() int { return len(b.particles) }
