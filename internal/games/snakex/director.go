package snakex

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/config"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/grid"
	"github.com/vovakirdan/snake-extreme/internal/tween"
)

// Options carries per-instance settings that do not come from config files.
type Options struct {
	Seed      int64       // RNG seed for spawn positions and particles
	HighScore int         // persisted best score
	Logger    *log.Logger // state transition trace, nil discards
}

// roundEntity is a round-scoped hazard or collectible.
type roundEntity interface {
	actor.Actor
	Gone() bool
	Settled() bool
}

// Director owns the turn and pause state machines, every round entity and
// the fixed-tick scheduler.
type Director struct {
	cfg        config.SnakeXConfig
	level      grid.Level
	timing     actor.Timing
	rng        *rand.Rand
	logger     *log.Logger
	clock      *actor.Clock
	difficulty *config.DifficultyManager
	loudness   *tween.SpeedTable
	direction  grid.Direction

	ui    *actor.Stage
	field *actor.Stage

	// Persistent entities
	startButton *Button
	pauseButton *Button
	scorePanel  *ScorePanel
	highPanel   *ScorePanel
	board       *MessageBoard
	dimmer      *Dimmer
	volume      *VolumeFader
	startLatch  *InputLatch
	pauseLatch  *InputLatch
	anyLatch    *InputLatch
	endLatch    *InputLatch

	// Round entities
	snake       *Snake
	food        *Food
	nextFood    *Food
	obstacles   []*Obstacle
	lightning   []*LightningObstacle
	shines      []*ShineFood
	shineTarget roundEntity
	queue       *DirectionQueue

	state      TurnState
	pause      PauseState
	foodState  FoodState
	shineState ShineState
	timer      actor.Counter
	wait       int

	score            int
	highScore        int
	turns            int
	destroyRequested bool
	gameOver         bool
	sounds           []core.Sound
}

// NewDirector builds a director in the Start state with the start button
// appearing.
func NewDirector(cfg config.SnakeXConfig, opts Options) *Director {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	direction, ok := grid.ParseDirection(cfg.Snake.Direction)
	if !ok {
		direction = grid.DirRight
	}

	level := LevelFromConfig(cfg.Level)
	timing := TimingFromConfig(cfg.Timing)

	d := &Director{
		cfg:        cfg,
		level:      level,
		timing:     timing,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		logger:     logger,
		clock:      actor.NewClock(cfg.Timing.TickRate),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		loudness:   tween.NewSpeedTable(max(cfg.Audio.CurveSamples, 2), cfg.Audio.CurveExponent),
		direction:  direction,
		ui:         actor.NewStage(),
		field:      actor.NewStage(),
		snake:      NewSnake(level, timing, cfg.Timing.ShiftTicks),
		queue:      NewDirectionQueue(cfg.Input.QueueSize),
		highScore:  opts.HighScore,
	}
	d.buildUI()
	return d
}

func (d *Director) buildUI() {
	tile := d.level.Tile()
	mapSize := d.level.PixelSize()
	bounds := d.level.Bounds
	ts := float64(d.level.TileSize)

	d.dimmer = NewDimmer(mapSize, d.cfg.Timing.DimAlpha, d.cfg.Timing.DimTicks)

	boardSize := core.Vec2{X: float64(bounds.W) * ts / 2, Y: 2 * ts}
	boardPos := core.Vec2{
		X: float64(bounds.X)*ts + (float64(bounds.W)*ts-boardSize.X)/2,
		Y: float64(bounds.Y)*ts + (float64(bounds.H)*ts-boardSize.Y)/2,
	}
	d.board = NewMessageBoard("PAUSED", boardPos, boardSize, d.cfg.Timing.BoardTicks)

	d.startButton = NewButton("button_start", d.level.Pixel(d.level.StartButton), tile, d.timing)
	d.pauseButton = NewButton("button_pause", d.level.Pixel(d.level.PauseButton), tile, d.timing)
	d.startButton.Show()
	d.pauseButton.Show()

	panelSize := core.Vec2{X: 4 * ts, Y: ts}
	d.scorePanel = NewScorePanel("SCORE", d.level.Pixel(d.level.ScorePanel), panelSize, d.cfg.Timing.FlashTicks)
	highCell := grid.Point{X: max(d.level.PauseButton.X-4, 0), Y: d.level.PauseButton.Y}
	d.highPanel = NewScorePanel("BEST", d.level.Pixel(highCell), panelSize, d.cfg.Timing.FlashTicks)
	d.highPanel.value = d.highScore

	d.volume = NewVolumeFader(d.cfg.Audio.MusicVolume, d.cfg.Timing.VolumeTicks)

	d.startLatch = &InputLatch{}
	d.pauseLatch = &InputLatch{}
	d.anyLatch = &InputLatch{}
	d.endLatch = &InputLatch{}

	for _, a := range []actor.Actor{
		d.dimmer, d.board, d.startButton, d.pauseButton, d.scorePanel, d.highPanel,
		d.volume, d.startLatch, d.pauseLatch, d.anyLatch, d.endLatch,
	} {
		d.ui.Add(a)
	}
	d.ui.Flush()
}

// LevelFromConfig converts the configured layout into a level. The HUD rows
// sit above the playable cells.
func LevelFromConfig(c config.LevelConfig) grid.Level {
	return grid.Level{
		Width:       c.Width,
		Height:      c.Height + c.HUDRows,
		TileSize:    c.TileSize,
		Bounds:      core.NewRect(0, c.HUDRows, c.Width, c.Height),
		Spawn:       grid.Point{X: c.Spawn.X, Y: c.Spawn.Y},
		StartButton: grid.Point{X: c.StartButton.X, Y: c.StartButton.Y},
		PauseButton: grid.Point{X: c.PauseButton.X, Y: c.PauseButton.Y},
		ScorePanel:  grid.Point{X: c.ScorePanel.X, Y: c.ScorePanel.Y},
	}
}

// TimingFromConfig extracts the ball timing from the configured budgets.
func TimingFromConfig(c config.TimingConfig) actor.Timing {
	return actor.Timing{
		QuickTicks:  c.QuickTicks,
		LongTicks:   c.LongTicks,
		PulseTicks:  c.PulseTicks,
		EffectTicks: c.EffectTicks,
		LiftHeight:  c.LiftHeight,
		FloatPeriod: c.FloatPeriod,
		FloatHeight: c.FloatHeight,
	}
}

// Step advances the simulation by dt seconds of wall-clock time: one frame
// pass, then as many strict ticks as are due.
func (d *Director) Step(dt float64, in core.InputFrame) core.StepResult {
	d.sounds = nil
	d.readInput(in)

	d.ui.Update(dt)
	if d.pause == Resumed {
		d.field.Update(dt)
	}

	for n := d.clock.Advance(dt); n > 0; n-- {
		d.tick()
	}

	return d.Result()
}

// readInput latches edge-triggered presses and queues directions.
func (d *Director) readInput(in core.InputFrame) {
	if in.Has(core.ActionStart) || d.startButton.Hit(in.Pointer) {
		d.startLatch.Press()
	}
	if in.Has(core.ActionPause) || d.pauseButton.Hit(in.Pointer) {
		d.pauseLatch.Press()
	}
	if in.Has(core.ActionEnd) {
		d.endLatch.Press()
	}
	if !in.Empty() {
		d.anyLatch.Press()
	}

	if d.pause != Resumed || !d.inRound() {
		return
	}
	for _, a := range in.Directions {
		if dir, ok := grid.FromAction(a); ok {
			d.queue.Push(dir)
		}
	}
}

// tick runs one strict tick. Latches are consumed by the UI pass.
func (d *Director) tick() {
	d.stepPause()
	if d.pause == Resumed {
		d.stepTurn()
	}

	d.ui.StrictUpdate()
	if d.pause == Resumed {
		d.field.StrictUpdate()
	}

	d.ui.Flush()
	d.field.Flush()
}

// inRound reports whether a round is being played.
func (d *Director) inRound() bool {
	return d.state == TurnCreate || d.state == TurnWait || d.state == TurnAction
}

func (d *Director) setState(s TurnState) {
	d.logger.Debug("turn", "from", d.state, "to", s, "score", d.score, "turns", d.turns)
	d.state = s
}

func (d *Director) setPause(s PauseState) {
	d.logger.Debug("pause", "from", d.pause, "to", s)
	d.pause = s
}

func (d *Director) emit(s core.Sound) {
	d.sounds = append(d.sounds, s)
}

// RequestDestroy ends the round at the next turn resolution.
func (d *Director) RequestDestroy() {
	d.destroyRequested = true
}

// SetHighScore replaces the best score shown on the panel.
func (d *Director) SetHighScore(v int) {
	d.highScore = v
	d.highPanel.value = v
}

// Result returns the externally visible state.
func (d *Director) Result() core.StepResult {
	return core.StepResult{
		State:       d.GameState(),
		Sounds:      d.sounds,
		MusicVolume: d.MusicVolume(),
	}
}

// GameState returns score, high score and flags.
func (d *Director) GameState() core.GameState {
	return core.GameState{
		Score:     d.score,
		HighScore: d.highScore,
		GameOver:  d.gameOver,
		Paused:    d.pause != Resumed,
	}
}

// MusicVolume returns the background music gain shaped by the loudness curve.
func (d *Director) MusicVolume() float64 {
	return d.loudness.Value(d.volume.Level(), 0, 1)
}

// Sprites returns every visible entity ordered by draw priority.
func (d *Director) Sprites() []actor.Sprite {
	sprites := d.field.Draw(nil)
	sprites = d.ui.Draw(sprites)
	actor.SortSprites(sprites)
	return sprites
}

// Turn returns the turn state.
func (d *Director) Turn() TurnState { return d.state }

// Pause returns the pause state.
func (d *Director) Pause() PauseState { return d.pause }

// Level returns the playfield layout.
func (d *Director) Level() grid.Level { return d.level }

// Snake returns the snake.
func (d *Director) Snake() *Snake { return d.snake }

// Food returns the current food, or nil.
func (d *Director) Food() *Food { return d.food }

// Obstacles returns the static hazards.
func (d *Director) Obstacles() []*Obstacle { return d.obstacles }

// Lightning returns the toggling hazards.
func (d *Director) Lightning() []*LightningObstacle { return d.lightning }

// ShineFoods returns the shine power-ups on the field.
func (d *Director) ShineFoods() []*ShineFood { return d.shines }

// Board returns the pause message board.
func (d *Director) Board() *MessageBoard { return d.board }

// Dimmer returns the pause overlay.
func (d *Director) Dimmer() *Dimmer { return d.dimmer }

// Score returns the round score.
func (d *Director) Score() int { return d.score }

// Turns returns the number of resolved turns this round.
func (d *Director) Turns() int { return d.turns }
