package snakex

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-extreme/internal/config"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/registry"
)

// Variant selects the hazard rules.
type Variant string

const (
	VariantExtreme Variant = "snakex"
	VariantClassic Variant = "snakex_classic"
)

// Package-level settings applied on Reset, set by the CLI before a game starts.
var (
	configPath       string
	difficultyPreset string
	logger           *log.Logger
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger routes Director traces to l.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a Director to the registry interface.
type Game struct {
	variant   Variant
	cfg       config.SnakeXConfig
	director  *Director
	renderer  Renderer
	highScore int
}

// New creates a game with every hazard family enabled.
func New() *Game {
	return &Game{variant: VariantExtreme}
}

// NewClassic creates a game with hazards disabled.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

func init() {
	registry.Register(string(VariantExtreme), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Snake (Classic)"
	}
	return "Snake Extreme"
}

// LoadConfig resolves the configuration for a variant from the package settings.
// A broken custom file falls back to the defaults.
func LoadConfig(v Variant) config.SnakeXConfig {
	cfg, err := config.LoadSnakeX(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultSnakeXConfig()
	}

	if difficultyPreset != "" {
		if preset, err := config.ParsePreset(difficultyPreset); err == nil {
			config.ApplySnakeXPreset(&cfg, preset)
		}
	}
	if v == VariantClassic {
		config.DisableHazards(&cfg)
	}
	return cfg
}

// Reset builds a fresh director. The high score carries over.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = LoadConfig(g.variant)
	g.director = NewDirector(g.cfg, Options{
		Seed:      rc.Seed,
		HighScore: g.highScore,
		Logger:    logger,
	})
}

// Step advances the director by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	return g.director.Step(dt, in)
}

// Render draws the director's sprites into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Render(dst, g.director)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.director == nil {
		return core.GameState{HighScore: g.highScore}
	}
	return g.director.GameState()
}

// ScreenToPixel maps a clicked terminal cell to logical pixels.
func (g *Game) ScreenToPixel(x, y int) (core.Vec2, bool) {
	return g.renderer.Pixel(x, y)
}

// SetHighScore seeds the best score, usually from storage.
func (g *Game) SetHighScore(v int) {
	g.highScore = v
	if g.director != nil {
		g.director.SetHighScore(v)
	}
}

// Turns returns the turns resolved in the current or last round.
func (g *Game) Turns() int {
	if g.director == nil {
		return 0
	}
	return g.director.Turns()
}

// Director exposes the underlying director for hosts that stream sprites.
func (g *Game) Director() *Director {
	return g.director
}

// Config returns the configuration the game was last reset with.
func (g *Game) Config() config.SnakeXConfig {
	return g.cfg
}
