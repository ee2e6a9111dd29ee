package snakex

// turnSettled is the turn barrier: the next turn may only be scheduled once
// the snake rests and every hazard and collectible has finished its
// transition.
func (d *Director) turnSettled() bool {
	if !d.snake.Idle() {
		return false
	}
	for _, e := range d.roundEntities() {
		if !e.Settled() {
			return false
		}
	}
	return true
}

// roundGone is the destroy barrier: every round entity has fully vanished.
func (d *Director) roundGone() bool {
	if !d.snake.Gone() {
		return false
	}
	for _, e := range d.roundEntities() {
		if !e.Gone() {
			return false
		}
	}
	return true
}

// roundEntities lists every hazard and collectible of the round.
func (d *Director) roundEntities() []roundEntity {
	entities := make([]roundEntity, 0, 2+len(d.obstacles)+len(d.lightning)+len(d.shines))
	if d.food != nil {
		entities = append(entities, d.food)
	}
	if d.nextFood != nil {
		entities = append(entities, d.nextFood)
	}
	for _, o := range d.obstacles {
		entities = append(entities, o)
	}
	for _, l := range d.lightning {
		entities = append(entities, l)
	}
	for _, s := range d.shines {
		entities = append(entities, s)
	}
	return entities
}

func settled(f *Food) bool {
	return f == nil || f.Settled()
}
