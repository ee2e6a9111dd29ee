package grid

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snake-extreme/internal/core"
)

// Level is the parsed layout of a playfield: a map of Width x Height tiles
// with a rectangle of playable cells and fixed UI anchor cells.
type Level struct {
	Width, Height int       // map size in tiles
	TileSize      int       // pixels per tile
	Bounds        core.Rect // playable cells
	Spawn         Point     // snake head start cell
	StartButton   Point
	PauseButton   Point
	ScorePanel    Point
}

// InBounds reports whether p is a playable cell.
func (l Level) InBounds(p Point) bool {
	return l.Bounds.Contains(p.X, p.Y)
}

// Pixel converts a cell to its top-left pixel position.
func (l Level) Pixel(p Point) core.Vec2 {
	return core.Vec2{X: float64(p.X * l.TileSize), Y: float64(p.Y * l.TileSize)}
}

// Tile returns the pixel size of one tile.
func (l Level) Tile() core.Vec2 {
	return core.Vec2{X: float64(l.TileSize), Y: float64(l.TileSize)}
}

// PixelSize returns the map size in pixels.
func (l Level) PixelSize() core.Vec2 {
	return core.Vec2{X: float64(l.Width * l.TileSize), Y: float64(l.Height * l.TileSize)}
}

// Hit reports whether a pointer position in pixels lands on cell p.
func (l Level) Hit(pointer core.Vec2, p Point) bool {
	return pointer.InBox(l.Pixel(p), l.Tile())
}

// Cells returns the playable cells in row-major order.
func (l Level) Cells() []Point {
	cells := make([]Point, 0, l.Bounds.Area())
	for y := l.Bounds.Y; y < l.Bounds.Bottom(); y++ {
		for x := l.Bounds.X; x < l.Bounds.Right(); x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// Validate checks the layout for consistency.
func (l Level) Validate() error {
	var errs []error
	if l.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile size must be positive, got %d", l.TileSize))
	}
	if l.Bounds.Area() == 0 {
		errs = append(errs, errors.New("playable bounds are empty"))
	}
	mapRect := core.NewRect(0, 0, l.Width, l.Height)
	if l.Bounds.X < 0 || l.Bounds.Y < 0 || l.Bounds.Right() > l.Width || l.Bounds.Bottom() > l.Height {
		errs = append(errs, fmt.Errorf("playable bounds %+v exceed the %dx%d map", l.Bounds, l.Width, l.Height))
	}
	if !l.InBounds(l.Spawn) {
		errs = append(errs, fmt.Errorf("spawn %+v is outside the playable bounds", l.Spawn))
	}
	anchors := []struct {
		name string
		p    Point
	}{
		{"start button", l.StartButton},
		{"pause button", l.PauseButton},
		{"score panel", l.ScorePanel},
	}
	for _, a := range anchors {
		if !mapRect.Contains(a.p.X, a.p.Y) {
			errs = append(errs, fmt.Errorf("%s %+v is outside the map", a.name, a.p))
		}
	}
	return errors.Join(errs...)
}
