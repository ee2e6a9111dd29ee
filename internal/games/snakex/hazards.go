package snakex

import (
	"math/rand"

	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/grid"
)

// Sprite names of the collectibles and hazards.
const (
	spriteFood      = "food"
	spriteObstacle  = "obstacle"
	spriteLightning = "lightning"
	spriteShine     = "shine_food"
)

// Food grows the snake and scores a point.
type Food struct {
	piece
}

// NewFood creates a food item with its appear already in flight.
func NewFood(level grid.Level, cell grid.Point, timing actor.Timing) *Food {
	f := &Food{piece: newPiece(spriteFood, level, cell, grid.Snap, 0, timing, nil)}
	f.LongAppear()
	return f
}

// Vanish starts the food's exit.
func (f *Food) Vanish() {
	f.LongVanish()
}

// Obstacle is a static hazard; hitting it ends the round unless the snake
// shines.
type Obstacle struct {
	piece
}

// NewObstacle creates an obstacle with its appear already in flight.
func NewObstacle(level grid.Level, cell grid.Point, timing actor.Timing) *Obstacle {
	o := &Obstacle{piece: newPiece(spriteObstacle, level, cell, grid.Snap, 0, timing, nil)}
	o.LongAppear()
	return o
}

// Vanish starts the obstacle's exit.
func (o *Obstacle) Vanish() {
	o.LongVanish()
}

// LightningObstacle toggles between armed (visible, deadly) and disarmed
// (gone, harmless) every few turns.
type LightningObstacle struct {
	piece
	turnWait  int
	turnsLeft int
	removing  bool // devoured: vanishing for good
}

// NewLightningObstacle creates an armed-to-be lightning hazard.
func NewLightningObstacle(level grid.Level, cell grid.Point, timing actor.Timing, turnWait int, rng *rand.Rand) *LightningObstacle {
	l := &LightningObstacle{
		piece:     newPiece(spriteLightning, level, cell, grid.Snap, 0, timing, rng),
		turnWait:  turnWait,
		turnsLeft: turnWait,
	}
	l.LightningAppear()
	return l
}

// Appear re-arms a disarmed hazard.
func (l *LightningObstacle) Appear() {
	l.LightningAppear()
}

// Vanish disarms the hazard.
func (l *LightningObstacle) Vanish() {
	l.LightningVanish()
}

// Armed reports whether the hazard is deadly right now.
func (l *LightningObstacle) Armed() bool {
	return l.Lifecycle() == Normal
}

// Removing reports whether the hazard is being devoured.
func (l *LightningObstacle) Removing() bool {
	return l.removing
}

// TurnsLeft returns the turns until the next toggle attempt.
func (l *LightningObstacle) TurnsLeft() int {
	return l.turnsLeft
}

// ShineFood grants shine mode when eaten.
type ShineFood struct {
	piece
}

// NewShineFood creates a shine food with its appear already in flight.
func NewShineFood(level grid.Level, cell grid.Point, timing actor.Timing, rng *rand.Rand) *ShineFood {
	s := &ShineFood{piece: newPiece(spriteShine, level, cell, grid.Snap, 0, timing, rng)}
	s.ShineAppear()
	return s
}

// Vanish starts the shine food's exit.
func (s *ShineFood) Vanish() {
	s.ShineVanish()
}
