package snakex

import "github.com/vovakirdan/snake-extreme/internal/grid"

// Snapshot captures the gameplay state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Turn      TurnState
	Pause     PauseState
	Score     int
	HighScore int
	Turns     int
	Wait      int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       grid.Direction
	Mode      SnakeMode
	FoodX     int // -1 without food
	FoodY     int
	Obstacles []grid.Point
	Lightning []grid.Point
	Shines    []grid.Point
	Dropped   int // direction presses lost to a full queue
}

// Snapshot returns the current gameplay snapshot.
func (d *Director) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      d.clock.Ticks(),
		Turn:      d.state,
		Pause:     d.pause,
		Score:     d.score,
		HighScore: d.highScore,
		Turns:     d.turns,
		Wait:      d.wait,
		SnakeLen:  d.snake.Len(),
		HeadX:     -1,
		HeadY:     -1,
		Dir:       d.snake.Direction(),
		Mode:      d.snake.Mode(),
		FoodX:     -1,
		FoodY:     -1,
		Dropped:   d.queue.Dropped(),
	}

	if head := d.snake.Head(); head != nil {
		p := head.Cell()
		s.HeadX, s.HeadY = p.X, p.Y
	}
	if d.food != nil {
		p := d.food.Cell()
		s.FoodX, s.FoodY = p.X, p.Y
	}
	for _, o := range d.obstacles {
		s.Obstacles = append(s.Obstacles, o.Cell())
	}
	for _, l := range d.lightning {
		s.Lightning = append(s.Lightning, l.Cell())
	}
	for _, sh := range d.shines {
		s.Shines = append(s.Shines, sh.Cell())
	}
	return s
}
