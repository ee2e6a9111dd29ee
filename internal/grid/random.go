package grid

import "math/rand"

// RandomFree picks a uniformly random playable cell that is neither occupied
// nor in exclude. It returns false when no such cell remains.
func RandomFree(rng *rand.Rand, level Level, occupied func(Point) bool, exclude ...Point) (Point, bool) {
	candidates := FreeCells(level, occupied, exclude...)
	if len(candidates) == 0 {
		return Point{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// FreeCells lists the playable cells not occupied and not excluded.
func FreeCells(level Level, occupied func(Point) bool, exclude ...Point) []Point {
	excluded := make(map[Point]bool, len(exclude))
	for _, p := range exclude {
		excluded[p] = true
	}

	var free []Point
	for _, p := range level.Cells() {
		if excluded[p] || (occupied != nil && occupied(p)) {
			continue
		}
		free = append(free, p)
	}
	return free
}
