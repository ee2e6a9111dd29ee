package snakex

import (
	"math/rand"

	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/grid"
)

// piece is a Ball placed on a level cell. The occupant drives the ball's
// pixel position.
type piece struct {
	*actor.Ball
	grid.Occupant
}

func newPiece(name string, level grid.Level, cell grid.Point, mode grid.Mode, shiftTicks int, timing actor.Timing, rng *rand.Rand) piece {
	occ := grid.NewOccupant(cell, level.TileSize, mode, shiftTicks)
	return piece{
		Ball:     actor.NewBall(name, occ.Pixel(), level.Tile(), timing, rng),
		Occupant: occ,
	}
}

// StrictUpdate advances the cell tween, then the presentation state.
func (p *piece) StrictUpdate() {
	p.Occupant.StrictUpdate()
	p.Ball.Pos = p.Occupant.Pixel()
	p.Ball.StrictUpdate()
}

// Cell returns the occupied level cell.
func (p *piece) Cell() grid.Point {
	return p.LevelPosition()
}

// Lifecycle is the coarse state of a hazard or collectible.
type Lifecycle int

const (
	Appear Lifecycle = iota
	Normal
	Vanish
	Gone
)

// String returns the lifecycle name.
func (l Lifecycle) String() string {
	switch l {
	case Appear:
		return "appear"
	case Normal:
		return "normal"
	case Vanish:
		return "vanish"
	case Gone:
		return "gone"
	default:
		return "unknown"
	}
}

// Lifecycle derives the lifecycle from the wrapped ball state.
func (p *piece) Lifecycle() Lifecycle {
	switch p.State() {
	case actor.Invisible:
		return Gone
	case actor.Normal, actor.LightningNormal, actor.ShineNormal:
		return Normal
	case actor.QuickAppear, actor.LongAppear, actor.LightningAppear, actor.ShineAppear:
		return Appear
	default:
		return Vanish
	}
}
