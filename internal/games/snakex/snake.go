package snakex

import (
	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/grid"
)

// SnakeMode is the power-up mode of the snake.
type SnakeMode int

const (
	ModeNormal SnakeMode = iota
	ModeShine            // the next hazard hit is devoured instead of fatal
)

// String returns the mode name.
func (m SnakeMode) String() string {
	if m == ModeShine {
		return "shine"
	}
	return "normal"
}

// Sprite names.
const (
	spriteHead      = "snake_head"
	spriteBody      = "snake_body"
	spriteHeadShine = "snake_head_shine"
	spriteBodyShine = "snake_body_shine"
)

// Segment is one body cell of the snake.
type Segment struct {
	piece
}

// Snake is an ordered chain of segments; index 0 is the head.
type Snake struct {
	level      grid.Level
	timing     actor.Timing
	shiftTicks int

	segments  []*Segment
	positions map[grid.Point]*Segment
	direction grid.Direction
	mode      SnakeMode
}

// NewSnake creates a headless snake for the level.
func NewSnake(level grid.Level, timing actor.Timing, shiftTicks int) *Snake {
	return &Snake{
		level:      level,
		timing:     timing,
		shiftTicks: shiftTicks,
		positions:  make(map[grid.Point]*Segment),
	}
}

func (s *Snake) newSegment(cell grid.Point) *Segment {
	return &Segment{piece: newPiece(spriteBody, s.level, cell, grid.Shift, s.shiftTicks, s.timing, nil)}
}

// CreateHead places the head on pos and stacks extra segments behind it
// along extraDirection. Every segment starts a long appear.
func (s *Snake) CreateHead(pos grid.Point, extra int, extraDirection grid.Direction) []*Segment {
	if !s.Headless() {
		panic("snakex: CreateHead on a snake that already has a head")
	}

	cell := pos
	for i := 0; i <= extra; i++ {
		seg := s.newSegment(cell)
		seg.LongAppear()
		s.segments = append(s.segments, seg)
		cell = cell.Step(extraDirection)
	}
	s.rebuild()
	return append([]*Segment(nil), s.segments...)
}

// Move shifts every segment one cell along the head's path. With grow, a new
// tail appears on the vacated tail cell and is returned so the caller can
// register it.
func (s *Snake) Move(grow bool) *Segment {
	if s.Headless() {
		panic("snakex: Move on a headless snake")
	}
	if !s.Idle() {
		panic("snakex: Move while segments are still animating")
	}

	old := make([]grid.Point, len(s.segments))
	for i, seg := range s.segments {
		old[i] = seg.LevelPosition()
	}

	s.segments[0].SetLevelPosition(old[0].Step(s.direction))
	for i := 1; i < len(s.segments); i++ {
		s.segments[i].SetLevelPosition(old[i-1])
	}

	var grown *Segment
	if grow {
		tail := s.Tail()
		grown = s.newSegment(old[len(old)-1])
		grown.BorrowFloatPhase(tail.Ball)
		grown.LongAppear()
		s.segments = append(s.segments, grown)
	}

	s.rebuild()
	return grown
}

// SetDirection changes the travel direction. An exact reversal is rejected
// while the snake has a head and more than one segment.
func (s *Snake) SetDirection(d grid.Direction) bool {
	if !s.Headless() && len(s.segments) > 1 && d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Direction returns the travel direction.
func (s *Snake) Direction() grid.Direction {
	return s.direction
}

// NextHead returns the cell the head would enter on the next move.
func (s *Snake) NextHead() grid.Point {
	return s.Head().LevelPosition().Step(s.direction)
}

// Vanish starts a long vanish on every segment.
func (s *Snake) Vanish() {
	if !s.Idle() {
		panic("snakex: Vanish while segments are still animating")
	}
	for _, seg := range s.segments {
		seg.LongVanish()
	}
}

// Idle reports whether every segment rests visible and is not shifting.
func (s *Snake) Idle() bool {
	for _, seg := range s.segments {
		if !seg.Idle() || seg.Shifting() {
			return false
		}
	}
	return true
}

// Gone reports whether every segment is invisible.
func (s *Snake) Gone() bool {
	for _, seg := range s.segments {
		if !seg.Gone() {
			return false
		}
	}
	return true
}

// Clear drops all segments and the position map.
func (s *Snake) Clear() {
	s.segments = nil
	clear(s.positions)
	s.mode = ModeNormal
}

// Headless reports whether the snake has no segments.
func (s *Snake) Headless() bool {
	return len(s.segments) == 0
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Head returns the head segment, or nil.
func (s *Snake) Head() *Segment {
	if s.Headless() {
		return nil
	}
	return s.segments[0]
}

// Tail returns the last segment, or nil.
func (s *Snake) Tail() *Segment {
	if s.Headless() {
		return nil
	}
	return s.segments[len(s.segments)-1]
}

// Segments returns the segments head first.
func (s *Snake) Segments() []*Segment {
	return s.segments
}

// At returns the segment occupying cell p.
func (s *Snake) At(p grid.Point) (*Segment, bool) {
	seg, ok := s.positions[p]
	return seg, ok
}

// Mode returns the power-up mode.
func (s *Snake) Mode() SnakeMode {
	return s.mode
}

// SetMode switches the power-up mode and the segment sprites with it.
func (s *Snake) SetMode(m SnakeMode) {
	s.mode = m
	s.rename()
}

// rebuild recomputes the position map after the segment list changed.
func (s *Snake) rebuild() {
	clear(s.positions)
	for _, seg := range s.segments {
		s.positions[seg.LevelPosition()] = seg
	}
	s.rename()
}

func (s *Snake) rename() {
	head, body := spriteHead, spriteBody
	if s.mode == ModeShine {
		head, body = spriteHeadShine, spriteBodyShine
	}
	for i, seg := range s.segments {
		if i == 0 {
			seg.Name = head
		} else {
			seg.Name = body
		}
	}
}
