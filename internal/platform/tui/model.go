package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-extreme/internal/audio"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/registry"
	"github.com/vovakirdan/snake-extreme/internal/storage"
)

// PointerMapper is implemented by games that accept clicks. It converts a
// terminal cell to logical pixels.
type PointerMapper interface {
	ScreenToPixel(x, y int) (core.Vec2, bool)
}

// Options carries the optional collaborators of a game model.
type Options struct {
	Store  *storage.Store
	Audio  *audio.Player
	Player string // recorded with saved scores, empty for local play
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	lastRound  string // round id of the last saved score
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game, seeds its high score and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	if setter, ok := m.game.(registry.HighScoreSetter); ok && m.opts.Store != nil {
		if high, err := m.opts.Store.HighScore(m.game.ID()); err == nil {
			setter.SetHighScore(high)
		} else if m.opts.Logger != nil {
			m.opts.Logger.Warn("could not load high score", "game", m.game.ID(), "err", err)
		}
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if action, _ := m.keyMapper.MapKey(msg); action == core.ActionBack {
		m.backToMenu = true
		return m, tea.Quit
	}
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left click into a pointer press.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if mapper, ok := m.game.(PointerMapper); ok {
		if p, ok := mapper.ScreenToPixel(msg.X, msg.Y); ok {
			m.inputFrame.Point(p.X, p.Y)
			return m, nil
		}
	}
	m.inputFrame.Set(core.ActionAny)
	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by the real time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	wasOver := m.gameState.GameOver
	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State

	m.opts.Audio.Play(result.Sounds)
	m.opts.Audio.SetMusicVolume(result.MusicVolume)

	// Save score once, on the frame the round ends
	if m.gameState.GameOver && !wasOver {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished round. Storage errors are logged only.
func (m *Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}

	round := storage.Round{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
	}
	if r, ok := m.game.(registry.RoundReporter); ok {
		round.Turns = r.Turns()
	}

	id, err := m.opts.Store.SaveRound(round)
	if err != nil {
		if m.opts.Logger != nil {
			m.opts.Logger.Warn("could not save score", "game", round.GameID, "err", err)
		}
		return
	}
	m.lastRound = id
	if m.opts.Logger != nil {
		m.opts.Logger.Info("round saved", "game", round.GameID, "round", id, "score", round.Score, "turns", round.Turns)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snakex", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRound returns the round id of the last saved score, if any.
func (m Model) LastRound() string {
	return m.lastRound
}

// Run starts the Bubble Tea program with the given model.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
