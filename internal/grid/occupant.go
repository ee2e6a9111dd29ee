package grid

import (
	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/tween"
)

// Mode selects how an occupant moves between cells.
type Mode int

const (
	Snap  Mode = iota // jump to the new cell at once
	Shift             // tween to the new cell over ShiftTicks
)

// DefaultShiftTicks is the standard cell-to-cell tween budget.
const DefaultShiftTicks = 4

// Occupant is the grid-cell trait of an entity: a level position and the
// pixel position derived from it.
type Occupant struct {
	tileSize   int
	shiftTicks int
	mode       Mode
	pos        Point
	from       Point
	shift      actor.Counter
	shifting   bool
	pixel      core.Vec2
}

// NewOccupant creates an occupant resting on pos.
func NewOccupant(pos Point, tileSize int, mode Mode, shiftTicks int) Occupant {
	if shiftTicks < 1 {
		shiftTicks = DefaultShiftTicks
	}
	o := Occupant{
		tileSize:   tileSize,
		shiftTicks: shiftTicks,
		mode:       mode,
		pos:        pos,
		from:       pos,
	}
	o.pixel = o.toPixel(pos)
	return o
}

// LevelPosition returns the current (target) cell.
func (o *Occupant) LevelPosition() Point {
	return o.pos
}

// SetLevelPosition moves the occupant. Snap mode applies at once; Shift mode
// starts a smoothstep tween from the old cell.
func (o *Occupant) SetLevelPosition(p Point) {
	if o.shifting {
		panic("grid: SetLevelPosition while shifting")
	}
	if o.mode == Snap {
		o.pos, o.from = p, p
		o.pixel = o.toPixel(p)
		return
	}

	o.from, o.pos = o.pos, p
	o.shift.Reset(o.shiftTicks)
	o.shifting = true
	o.derive()
}

// Mode returns the movement mode.
func (o *Occupant) Mode() Mode {
	return o.mode
}

// SetMode changes the movement mode.
func (o *Occupant) SetMode(m Mode) {
	if o.shifting {
		panic("grid: SetMode while shifting")
	}
	o.mode = m
}

// Shifting reports whether a tween is in progress.
func (o *Occupant) Shifting() bool {
	return o.shifting
}

// Pixel returns the current top-left pixel position.
func (o *Occupant) Pixel() core.Vec2 {
	return o.pixel
}

// StrictUpdate advances a running tween by one tick.
func (o *Occupant) StrictUpdate() {
	if !o.shifting {
		return
	}
	if o.shift.Tick() {
		o.shifting = false
		o.from = o.pos
		o.pixel = o.toPixel(o.pos)
		return
	}
	o.derive()
}

func (o *Occupant) derive() {
	t := 1 - o.shift.Ratio()
	a, b := o.toPixel(o.from), o.toPixel(o.pos)
	o.pixel = core.Vec2{
		X: tween.Smoothstep(a.X, b.X, t),
		Y: tween.Smoothstep(a.Y, b.Y, t),
	}
}

func (o *Occupant) toPixel(p Point) core.Vec2 {
	return core.Vec2{X: float64(p.X * o.tileSize), Y: float64(p.Y * o.tileSize)}
}
