package snakex

import (
	"github.com/vovakirdan/snake-extreme/internal/config"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/grid"
)

// occupied reports whether any snake segment or round entity sits on p.
func (d *Director) occupied(p grid.Point) bool {
	if _, ok := d.snake.At(p); ok {
		return true
	}
	if d.food != nil && d.food.Cell() == p {
		return true
	}
	if d.nextFood != nil && d.nextFood.Cell() == p {
		return true
	}
	if d.obstacleAt(p) != nil || d.shineAt(p) != nil {
		return true
	}
	for _, l := range d.lightning {
		if l.Cell() == p {
			return true
		}
	}
	return false
}

// spawnFood places a food on a random free cell and registers it. It
// returns nil when the field is full.
func (d *Director) spawnFood(exclude ...grid.Point) *Food {
	cell, ok := grid.RandomFree(d.rng, d.level, d.occupied, exclude...)
	if !ok {
		d.logger.Warn("no free cell for food")
		return nil
	}
	f := NewFood(d.level, cell, d.timing)
	d.field.Add(f)
	return f
}

// spawnHazards places a batch of every family that is due at the current
// score, each limited by its population cap.
func (d *Director) spawnHazards(exclude ...grid.Point) {
	h := d.cfg.Hazards
	spawned := 0

	spawned += d.spawnFamily(h.Obstacles, len(d.obstacles), exclude, func(cell grid.Point) {
		o := NewObstacle(d.level, cell, d.timing)
		d.obstacles = append(d.obstacles, o)
		d.field.Add(o)
	})
	spawned += d.spawnFamily(h.Lightning, len(d.lightning), exclude, func(cell grid.Point) {
		l := NewLightningObstacle(d.level, cell, d.timing, max(h.Lightning.TurnWait, 1), d.rng)
		d.lightning = append(d.lightning, l)
		d.field.Add(l)
	})
	spawned += d.spawnFamily(h.Shine, len(d.shines), exclude, func(cell grid.Point) {
		s := NewShineFood(d.level, cell, d.timing, d.rng)
		d.shines = append(d.shines, s)
		d.field.Add(s)
	})

	if spawned > 0 {
		d.logger.Debug("hazards spawned", "count", spawned, "score", d.score)
		d.emit(core.SoundObstacles)
	}
}

// spawnFamily places min(batch, limit-current) entities of one family and
// returns how many it placed.
func (d *Director) spawnFamily(h config.HazardConfig, current int, exclude []grid.Point, place func(grid.Point)) int {
	if !h.Due(d.score) {
		return 0
	}
	free := len(grid.FreeCells(d.level, d.occupied, exclude...))
	n := min(h.PerLevelUpdate, h.Limit(free)-current)

	placed := 0
	for ; placed < n; placed++ {
		cell, ok := grid.RandomFree(d.rng, d.level, d.occupied, exclude...)
		if !ok {
			break
		}
		place(cell)
	}
	return placed
}

// updateLightning counts down every settled lightning hazard and toggles
// the ones whose phase expired.
func (d *Director) updateLightning() {
	for _, l := range d.lightning {
		if l.removing || !l.Settled() {
			continue
		}
		if l.turnsLeft > 1 {
			l.turnsLeft--
			continue
		}
		switch {
		case l.Armed():
			l.Vanish()
			l.turnsLeft = l.turnWait
		case l.Gone() && d.canArm(l.Cell()):
			l.Appear()
			l.turnsLeft = l.turnWait
		}
	}
}

// canArm reports whether a lightning hazard may re-arm on cell. Only the
// tail may share the cell, since it leaves on the next move. A lone head is
// its own tail.
func (d *Director) canArm(cell grid.Point) bool {
	seg, ok := d.snake.At(cell)
	if !ok {
		return true
	}
	return seg == d.snake.Tail()
}

func (d *Director) obstacleAt(p grid.Point) *Obstacle {
	for _, o := range d.obstacles {
		if o.Cell() == p {
			return o
		}
	}
	return nil
}

func (d *Director) armedLightningAt(p grid.Point) *LightningObstacle {
	for _, l := range d.lightning {
		if l.Cell() == p && l.Armed() {
			return l
		}
	}
	return nil
}

func (d *Director) shineAt(p grid.Point) *ShineFood {
	for _, s := range d.shines {
		if s.Cell() == p && !s.Gone() {
			return s
		}
	}
	return nil
}
