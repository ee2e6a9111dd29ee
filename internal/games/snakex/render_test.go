package snakex

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/grid"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	return g
}

func frames(g *Game, n int, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	g.Step(1.0/30, in)
	for i := 1; i < n; i++ {
		g.Step(1.0/30, core.NewInputFrame())
	}
}

func TestRenderTooSmall(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"narrow", 10, 5},
		{"short", 80, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			screen := core.NewScreen(tt.w, tt.h)
			g.Render(screen)

			out := screen.String()
			for _, want := range []string{"Too small", "Resize"} {
				if !strings.Contains(out, want) {
					t.Errorf("hint %q missing, got:\n%s", want, out)
				}
			}
		})
	}
}

func TestRenderScreens(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  []string
	}{
		{
			name:  "start screen",
			setup: func(g *Game) { frames(g, 20) },
			want:  []string{"Enter to start", "|>", "SCORE 0", "BEST 7"},
		},
		{
			name: "round in play",
			setup: func(g *Game) {
				frames(g, 20)
				frames(g, 30, core.ActionStart)
			},
			want: []string{"@@", "oo", "<>"},
		},
		{
			name: "paused",
			setup: func(g *Game) {
				frames(g, 20)
				frames(g, 30, core.ActionStart)
				frames(g, 30, core.ActionPause)
			},
			want: []string{"PAUSED", "Paused - press any key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.SetHighScore(7)
			tt.setup(g)

			screen := core.NewScreen(40, 20)
			g.Render(screen)
			out := screen.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("screen missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestRendererScreenMapping(t *testing.T) {
	r := &Renderer{
		level: grid.Level{Width: 4, Height: 4, TileSize: 16, Bounds: core.NewRect(0, 1, 4, 3)},
		ox:    2,
		oy:    1,
	}

	tests := []struct {
		name         string
		px, py       float64
		wantX, wantY int
	}{
		{"hud cell", 0, 0, 3, 1},
		{"first playfield row skips the border", 16, 16, 5, 3},
		{"cell centre", 24, 40, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := r.screen(tt.px, tt.py)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("screen(%v, %v) = (%d, %d), want (%d, %d)", tt.px, tt.py, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRendererPixel(t *testing.T) {
	r := &Renderer{
		level: grid.Level{Width: 4, Height: 4, TileSize: 16, Bounds: core.NewRect(0, 1, 4, 3)},
		ox:    2,
		oy:    1,
	}

	tests := []struct {
		name   string
		x, y   int
		want   core.Vec2
		wantOK bool
	}{
		{"hud cell", 3, 1, core.Vec2{X: 8, Y: 8}, true},
		{"second column of a cell", 4, 1, core.Vec2{X: 8, Y: 8}, true},
		{"first playfield row", 5, 3, core.Vec2{X: 24, Y: 24}, true},
		{"top border", 5, 2, core.Vec2{}, false},
		{"left border", 2, 3, core.Vec2{}, false},
		{"right of the map", 11, 3, core.Vec2{}, false},
		{"bottom border", 5, 6, core.Vec2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Pixel(tt.x, tt.y)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Pixel(%d, %d) = (%v, %v), want (%v, %v)", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	// Pixel inverts screen for every cell of the map.
	for cy := 0; cy < 4; cy++ {
		for cx := 0; cx < 4; cx++ {
			x, y := r.screen(float64(cx*16+8), float64(cy*16+8))
			p, ok := r.Pixel(x, y)
			if !ok || p.X != float64(cx*16+8) || p.Y != float64(cy*16+8) {
				t.Errorf("cell (%d, %d): Pixel(screen()) = (%v, %v)", cx, cy, p, ok)
			}
		}
	}
}

func TestPixelBeforeRender(t *testing.T) {
	var r Renderer
	if _, ok := r.Pixel(0, 0); ok {
		t.Error("Pixel() before the first Render should fail")
	}
}

func TestSizeFitsDefaultLevel(t *testing.T) {
	g := newTestGame(t)
	w, h := Size(g.Director().Level())
	if w != 16*cellCols+2 || h != 13+3 {
		t.Errorf("Size() = %dx%d", w, h)
	}
}
