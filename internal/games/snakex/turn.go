package snakex

import (
	"slices"

	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/grid"
)

// stepTurn advances the turn machine by one tick. Only runs while Resumed.
func (d *Director) stepTurn() {
	if d.endLatch.Pressed() && d.inRound() {
		d.destroyRequested = true
	}

	switch d.state {
	case TurnStart:
		d.stepStart()
	case TurnCreate:
		d.stepCreate()
	case TurnWait:
		if d.timer.Tick() {
			d.resolve()
		}
	case TurnAction:
		d.stepAction()
	case TurnDestroy:
		d.stepDestroy()
	}
}

func (d *Director) stepStart() {
	if !d.startLatch.Pressed() {
		return
	}
	if !d.startButton.Idle() {
		// A key press waits for the button to finish growing in
		if d.startButton.State() == actor.QuickAppear {
			d.startLatch.Hold()
		}
		return
	}

	d.snake.SetDirection(d.direction)
	for _, seg := range d.snake.CreateHead(d.level.Spawn, d.cfg.Snake.ExtraSegments, d.direction.Opposite()) {
		d.field.Add(seg)
	}
	d.food = d.spawnFood()

	d.score = 0
	d.turns = 0
	d.gameOver = false
	d.destroyRequested = false
	d.scorePanel.Set(0)
	d.startButton.Hide()
	d.setState(TurnCreate)
}

func (d *Director) stepCreate() {
	if !d.snake.Idle() || !settled(d.food) {
		return
	}
	d.wait = d.waitTicks()
	d.timer.Reset(d.wait)
	d.setState(TurnWait)
}

// resolve decides the outcome of one turn, in precedence order:
// game over, food eaten, plain move.
func (d *Director) resolve() {
	if d.snake.Headless() {
		panic("snakex: turn resolved with a headless snake")
	}

	if dir, ok := d.queue.Pop(); ok {
		d.snake.SetDirection(dir)
	}
	next := d.snake.NextHead()
	d.turns++

	switch {
	case d.fatal(next):
		d.destroy()
	case d.food != nil && d.food.Cell() == next:
		d.eat(next)
	default:
		d.move(next)
	}
}

// fatal reports whether entering next ends the round.
func (d *Director) fatal(next grid.Point) bool {
	if d.destroyRequested {
		d.destroyRequested = false
		return true
	}
	if !d.level.InBounds(next) {
		return true
	}
	// The tail vacates its cell on this move
	if seg, ok := d.snake.At(next); ok && seg != d.snake.Tail() {
		return true
	}
	if d.snake.Mode() != ModeShine && (d.obstacleAt(next) != nil || d.armedLightningAt(next) != nil) {
		return true
	}
	return false
}

func (d *Director) destroy() {
	d.snake.Vanish()
	if d.food != nil && d.food.Idle() {
		d.food.Vanish()
	}
	for _, s := range d.shines {
		if s.Idle() {
			s.Vanish()
		}
	}
	for _, o := range d.obstacles {
		if o.Idle() {
			o.Vanish()
		}
	}
	for _, l := range d.lightning {
		if l.Armed() {
			l.Vanish()
		}
	}

	if d.score > d.highScore {
		d.highScore = d.score
		d.highPanel.Set(d.highScore)
	}
	d.gameOver = true
	d.emit(core.SoundDestroy)
	d.setState(TurnDestroy)
}

func (d *Director) eat(next grid.Point) {
	grow := d.cfg.Snake.MaxLength <= 0 || d.snake.Len() < d.cfg.Snake.MaxLength
	if seg := d.snake.Move(grow); seg != nil {
		d.field.Add(seg)
	}

	d.food.Vanish()
	d.nextFood = d.spawnFood(next)

	d.score++
	d.scorePanel.Set(d.score)
	d.emit(core.SoundFood)

	if per := d.cfg.Hazards.ScorePerLevelUpdate; per > 0 && d.score%per == 0 {
		d.spawnHazards(next)
	}
	d.updateLightning()

	d.foodState = FoodNew
	d.setState(TurnAction)
}

func (d *Director) move(next grid.Point) {
	if s := d.shineAt(next); s != nil {
		s.Vanish()
		d.snake.SetMode(ModeShine)
		d.shineState = ShineNew
		d.shineTarget = s
		d.emit(core.SoundShinePickup)
	} else if d.snake.Mode() == ModeShine {
		d.devour(next)
	}

	d.snake.Move(false)
	d.updateLightning()
	d.emit(core.SoundMove)

	d.foodState = FoodNormal
	d.setState(TurnAction)
}

// devour removes the hazard on next while the snake shines.
func (d *Director) devour(next grid.Point) {
	o := d.obstacleAt(next)
	l := d.armedLightningAt(next)
	if o == nil && l == nil {
		return
	}
	if o != nil && l != nil {
		panic("snakex: devour target is both an obstacle and a lightning obstacle")
	}

	if o != nil {
		o.Vanish()
		d.shineTarget = o
	} else {
		l.removing = true
		l.Vanish()
		d.shineTarget = l
	}
	d.snake.SetMode(ModeNormal)
	d.shineState = ShineRemoveObstacle
	d.emit(core.SoundShineDevour)
}

func (d *Director) stepAction() {
	if d.shineState != ShineIdle {
		if !d.shineTarget.Gone() {
			return
		}
		d.discard(d.shineTarget)
		d.shineTarget = nil
		d.shineState = ShineIdle
	}

	if !d.turnSettled() {
		return
	}

	if d.foodState == FoodNew {
		if d.food != nil {
			d.field.Remove(d.food)
		}
		d.food, d.nextFood = d.nextFood, nil
		d.wait = d.waitTicks()
		d.foodState = FoodNormal
	}

	d.timer.Reset(d.wait)
	d.setState(TurnWait)
}

func (d *Director) stepDestroy() {
	if !d.roundGone() {
		return
	}

	for _, seg := range d.snake.Segments() {
		d.field.Remove(seg)
	}
	for _, e := range d.roundEntities() {
		d.field.Remove(e)
	}

	d.snake.Clear()
	d.food, d.nextFood = nil, nil
	d.obstacles = nil
	d.lightning = nil
	d.shines = nil
	d.shineTarget = nil
	d.shineState = ShineIdle
	d.foodState = FoodNormal
	d.queue.Clear()
	d.startButton.Show()
	d.setState(TurnStart)
}

// discard drops a gone hazard or collectible from its collection and the stage.
func (d *Director) discard(e roundEntity) {
	switch v := e.(type) {
	case *ShineFood:
		d.shines = slices.DeleteFunc(d.shines, func(x *ShineFood) bool { return x == v })
	case *Obstacle:
		d.obstacles = slices.DeleteFunc(d.obstacles, func(x *Obstacle) bool { return x == v })
	case *LightningObstacle:
		d.lightning = slices.DeleteFunc(d.lightning, func(x *LightningObstacle) bool { return x == v })
	}
	d.field.Remove(e)
}

func (d *Director) waitTicks() int {
	return d.difficulty.WaitTicks(d.cfg.Turn, d.score, d.turns)
}
