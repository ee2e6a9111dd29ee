package actor

import "sort"

// Actor is anything the scheduler advances and draws.
type Actor interface {
	// Update runs once per host frame with the elapsed seconds.
	// It may only touch cosmetic state (bobbing, blinking).
	Update(dt float64)

	// StrictUpdate runs once per fixed tick and advances state machines.
	StrictUpdate()

	// Draw appends the actor's sprites to dst.
	Draw(dst []Sprite) []Sprite

	// Priority is the draw-order key. Higher draws later (on top).
	Priority() float64
}

// Sprite is the read-only render description of one visual entity.
type Sprite struct {
	Name        string  // sprite or animation name
	Text        string  // label for panels and boards
	X, Y        float64 // top-left corner in logical pixels, lift and bob applied
	W, H        float64 // unscaled size in logical pixels
	Alpha       float64 // body opacity
	Scale       float64 // body scale around the centre
	ShadowScale float64 // ground shadow scale
	Silhouette  float64 // white silhouette overlay opacity
	Priority    float64
	Visible     bool
}

// Stage holds actors in registration order.
// Additions and removals are queued and applied by Flush, never during an
// update pass.
type Stage struct {
	actors  []Actor
	adds    []Actor
	removes map[Actor]struct{}
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{removes: make(map[Actor]struct{})}
}

// Add queues an actor for registration.
func (s *Stage) Add(a Actor) {
	s.adds = append(s.adds, a)
}

// Remove queues an actor for removal.
func (s *Stage) Remove(a Actor) {
	s.removes[a] = struct{}{}
}

// Flush applies pending additions and removals.
func (s *Stage) Flush() {
	if len(s.removes) > 0 {
		kept := s.actors[:0]
		for _, a := range s.actors {
			if _, gone := s.removes[a]; !gone {
				kept = append(kept, a)
			}
		}
		for i := len(kept); i < len(s.actors); i++ {
			s.actors[i] = nil
		}
		s.actors = kept
	}

	for _, a := range s.adds {
		if _, gone := s.removes[a]; gone {
			continue
		}
		s.actors = append(s.actors, a)
	}

	s.adds = s.adds[:0]
	clear(s.removes)
}

// Update runs the frame pass in registration order.
func (s *Stage) Update(dt float64) {
	for _, a := range s.actors {
		a.Update(dt)
	}
}

// StrictUpdate runs the tick pass in registration order.
func (s *Stage) StrictUpdate() {
	for _, a := range s.actors {
		a.StrictUpdate()
	}
}

// Draw appends every actor's sprites to dst.
func (s *Stage) Draw(dst []Sprite) []Sprite {
	for _, a := range s.actors {
		dst = a.Draw(dst)
	}
	return dst
}

// Len returns the number of registered actors.
func (s *Stage) Len() int {
	return len(s.actors)
}

// Contains reports whether a is registered (pending changes excluded).
func (s *Stage) Contains(a Actor) bool {
	for _, x := range s.actors {
		if x == a {
			return true
		}
	}
	return false
}

// SortSprites orders sprites by priority, keeping registration order on ties.
func SortSprites(sprites []Sprite) {
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Priority < sprites[j].Priority
	})
}
