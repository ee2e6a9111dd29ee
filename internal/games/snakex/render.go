package snakex

import (
	"math"

	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/grid"
)

// cellCols is the terminal width of one level cell. Two columns keep the
// cells roughly square.
const cellCols = 2

// glyph is the terminal look of a sprite name.
type glyph struct {
	text  string
	color core.Color
}

var glyphs = map[string]glyph{
	spriteHead:      {"@@", core.ColorBrightGreen},
	spriteBody:      {"oo", core.ColorGreen},
	spriteHeadShine: {"@@", core.ColorBrightYellow},
	spriteBodyShine: {"oo", core.ColorYellow},
	spriteFood:      {"<>", core.ColorRed},
	spriteObstacle:  {"##", core.ColorGray},
	spriteLightning: {"%%", core.ColorBrightCyan},
	spriteShine:     {"$$", core.ColorBrightYellow},
	"spark":         {"'", core.ColorCyan},
	"glint":         {"*", core.ColorYellow},
	"button_start":  {"|>", core.ColorBrightGreen},
	"button_pause":  {"||", core.ColorBrightWhite},
}

// Renderer draws director sprites into a terminal screen buffer.
// The zero value is ready to use.
type Renderer struct {
	level  grid.Level
	ox, oy int // screen position of the map's top-left cell
}

// Size returns the screen size needed to show a level.
func Size(level grid.Level) (w, h int) {
	return level.Width*cellCols + 2, level.Height + 2 + 1
}

// Render draws every visible sprite of d, then the round hint line.
func (r *Renderer) Render(dst *core.Screen, d *Director) {
	dst.Clear()
	if d == nil {
		return
	}

	r.level = d.Level()
	w, h := Size(r.level)
	if dst.Width() < w || dst.Height() < h {
		dst.DrawTextCentered(dst.Height()/2-1, "Too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize", core.ColorGray)
		return
	}
	r.ox = (dst.Width() - w) / 2
	r.oy = (dst.Height() - h) / 2

	b := r.level.Bounds
	dst.DrawBox(core.NewRect(r.ox, r.oy+b.Y, b.W*cellCols+2, b.H+2), core.ColorGray)

	for _, s := range d.Sprites() {
		if !s.Visible {
			continue
		}
		switch s.Name {
		case "dimmer":
			r.dim(dst, s)
		case "message_board":
			r.board(dst, s)
		case "score_panel":
			x, y := r.screen(s.X, s.Y)
			dst.DrawText(x, y, s.Text, panelColor(s))
		default:
			r.ball(dst, s)
		}
	}

	r.hint(dst, d, h)
}

// screen maps a pixel position to a terminal cell. Playfield rows are pushed
// down one row to leave room for the border.
func (r *Renderer) screen(px, py float64) (int, int) {
	ts := float64(r.level.TileSize)
	cx := int(math.Floor(px / ts))
	cy := int(math.Floor(py / ts))
	row := r.oy + cy
	if cy >= r.level.Bounds.Y {
		row++
	}
	return r.ox + 1 + cx*cellCols, row
}

// Pixel maps a terminal cell back to the logical pixel at the centre of the
// level cell drawn there. It uses the geometry of the last Render and fails
// on borders and outside the map.
func (r *Renderer) Pixel(x, y int) (core.Vec2, bool) {
	if r.level.TileSize == 0 {
		return core.Vec2{}, false
	}
	col := x - r.ox - 1
	row := y - r.oy
	if col < 0 || row < 0 {
		return core.Vec2{}, false
	}

	cy := row
	if row >= r.level.Bounds.Y {
		if row == r.level.Bounds.Y {
			return core.Vec2{}, false
		}
		cy = row - 1
	}
	cx := col / cellCols
	if cx >= r.level.Width || cy >= r.level.Height {
		return core.Vec2{}, false
	}

	ts := float64(r.level.TileSize)
	return core.Vec2{X: (float64(cx) + 0.5) * ts, Y: (float64(cy) + 0.5) * ts}, true
}

// ball draws a sprite at the cell under its centre.
func (r *Renderer) ball(dst *core.Screen, s actor.Sprite) {
	if s.Alpha < 0.25 || s.Scale < 0.2 {
		return
	}
	g, ok := glyphs[s.Name]
	if !ok {
		return
	}
	x, y := r.screen(s.X+s.W/2, s.Y+s.H/2)
	text := g.text
	if s.Scale < 0.6 && len(text) > 1 {
		text = "."
	}
	color := g.color
	if s.Silhouette > 0.5 {
		color = core.ColorBrightWhite
	}
	dst.DrawText(x, y, text, color)
}

// board draws the sliding message box.
func (r *Renderer) board(dst *core.Screen, s actor.Sprite) {
	_, y := r.screen(s.X, s.Y+s.H/2)
	w := len([]rune(s.Text)) + 4
	x := (dst.Width() - w) / 2
	dst.DrawBox(core.NewRect(x, y-1, w, 3), core.ColorBrightWhite)
	dst.DrawText(x+2, y, s.Text, core.ColorBrightWhite)
}

// dim greys out the playfield.
func (r *Renderer) dim(dst *core.Screen, s actor.Sprite) {
	if s.Alpha < 0.2 {
		return
	}
	b := r.level.Bounds
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W*cellCols; x++ {
			dst.Tint(r.ox+1+x, r.oy+b.Y+1+y, core.ColorGray)
		}
	}
}

// hint writes the line under the map.
func (r *Renderer) hint(dst *core.Screen, d *Director, h int) {
	var text string
	switch {
	case d.Pause() == Paused:
		text = "Paused - press any key"
	case d.Turn() == TurnStart && d.GameState().GameOver:
		text = "Game over - Enter to play again"
	case d.Turn() == TurnStart:
		text = "Enter to start - arrows/WASD to steer"
	case d.Snake().Mode() == ModeShine:
		text = "SHINE - next hazard is food"
	default:
		return
	}
	dst.DrawTextCentered(r.oy+h-1, text, core.ColorGray)
}

func panelColor(s actor.Sprite) core.Color {
	if s.Silhouette > 0.5 {
		return core.ColorBrightWhite
	}
	return core.ColorBrightCyan
}
