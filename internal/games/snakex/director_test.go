package snakex

import (
	"reflect"
	"slices"
	"testing"

	"github.com/vovakirdan/snake-extreme/internal/actor"
	"github.com/vovakirdan/snake-extreme/internal/config"
	"github.com/vovakirdan/snake-extreme/internal/core"
	"github.com/vovakirdan/snake-extreme/internal/grid"
)

// testConfig returns a HUD-less level of w x h playable cells with a fixed
// wait of InitialWait ticks.
func testConfig(w, h int, spawn grid.Point, dir string, extra int) config.SnakeXConfig {
	cfg := config.DefaultSnakeXConfig()
	cfg.Level = config.LevelConfig{
		Width:    w,
		Height:   h,
		TileSize: 16,
		Spawn:    config.PointConfig{X: spawn.X, Y: spawn.Y},
	}
	cfg.Snake.Direction = dir
	cfg.Snake.ExtraSegments = extra
	cfg.Difficulty.Enabled = false
	return cfg
}

// step feeds one input frame and runs exactly one strict tick.
func step(d *Director, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	d.sounds = nil
	d.readInput(in)
	d.tick()
}

func runUntil(t *testing.T, d *Director, limit int, cond func() bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return
		}
		step(d)
	}
	if !cond() {
		t.Fatalf("condition not reached in %d ticks (turn=%s pause=%s turns=%d)", limit, d.state, d.pause, d.turns)
	}
}

func startRound(t *testing.T, d *Director) {
	t.Helper()
	runUntil(t, d, 20, d.startButton.Idle)
	step(d, core.ActionStart)
	if d.state != TurnCreate {
		t.Fatalf("state after start = %s, want Create", d.state)
	}
}

func placeFood(d *Director, cell grid.Point) *Food {
	if d.food != nil {
		d.field.Remove(d.food)
	}
	d.food = NewFood(d.level, cell, d.timing)
	d.field.Add(d.food)
	d.field.Flush()
	return d.food
}

func addObstacle(d *Director, cell grid.Point) *Obstacle {
	o := NewObstacle(d.level, cell, d.timing)
	d.obstacles = append(d.obstacles, o)
	d.field.Add(o)
	d.field.Flush()
	return o
}

func addLightning(d *Director, cell grid.Point, turnWait int) *LightningObstacle {
	l := NewLightningObstacle(d.level, cell, d.timing, turnWait, d.rng)
	d.lightning = append(d.lightning, l)
	d.field.Add(l)
	d.field.Flush()
	return l
}

type settler interface {
	StrictUpdate()
	Settled() bool
}

func settle(t *testing.T, e settler) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if e.Settled() {
			return
		}
		e.StrictUpdate()
	}
	t.Fatal("entity never settled")
}

func TestDirectorStartsWithStartButton(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0), Options{})

	if d.Turn() != TurnStart || d.Pause() != Resumed {
		t.Fatalf("initial state = %s/%s, want Start/Resumed", d.Turn(), d.Pause())
	}
	if d.startButton.State() != actor.QuickAppear {
		t.Errorf("start button state = %s, want QuickAppear", d.startButton.State())
	}

	// A key press while the button grows in waits for it to settle
	step(d, core.ActionStart)
	if d.Turn() != TurnStart {
		t.Fatalf("start accepted while the button was appearing")
	}
	runUntil(t, d, 20, func() bool { return d.Turn() != TurnStart })
	if d.Turn() != TurnCreate || d.Snake().Headless() {
		t.Errorf("turn = %s, headless = %v, want a started round", d.Turn(), d.Snake().Headless())
	}
}

func TestStartPressHeldOnlyWhileAppearing(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0), Options{})
	runUntil(t, d, 20, d.startButton.Idle)
	d.startButton.Hide()

	step(d, core.ActionStart)
	runUntil(t, d, 20, func() bool { return d.startButton.Gone() })
	d.startButton.Show()
	runUntil(t, d, 20, d.startButton.Idle)
	step(d)
	if d.Turn() != TurnStart {
		t.Errorf("turn = %s, a press during the vanish should be dropped", d.Turn())
	}
}

func TestStartPlacesSnakeAndFood(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 5, Y: 5}, "right", 2), Options{Seed: 3})
	startRound(t, d)

	want := []grid.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	var got []grid.Point
	for _, seg := range d.Snake().Segments() {
		got = append(got, seg.Cell())
		if seg.State() != actor.LongAppear {
			t.Errorf("segment %v state = %s, want LongAppear", seg.Cell(), seg.State())
		}
	}
	if !slices.Equal(got, want) {
		t.Errorf("segments = %v, want %v", got, want)
	}

	if d.Food() == nil {
		t.Fatal("no food spawned")
	}
	if _, onSnake := d.Snake().At(d.Food().Cell()); onSnake {
		t.Errorf("food spawned on the snake at %v", d.Food().Cell())
	}
	if !d.scorePanel.Flashing() {
		t.Error("score panel not flashing after start")
	}
	if d.startButton.State() != actor.QuickVanish {
		t.Errorf("start button state = %s, want QuickVanish", d.startButton.State())
	}
}

func TestStartButtonClick(t *testing.T) {
	cfg := testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0)
	cfg.Level.StartButton = config.PointConfig{X: 3, Y: 0}
	d := NewDirector(cfg, Options{})
	runUntil(t, d, 20, d.startButton.Idle)

	tests := []struct {
		name  string
		x, y  float64
		start bool
	}{
		{"miss", 100, 100, false},
		{"hit", 3*16 + 8, 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := core.NewInputFrame()
			in.Point(tt.x, tt.y)
			d.readInput(in)
			d.tick()
			if got := d.Turn() == TurnCreate; got != tt.start {
				t.Errorf("started = %v, want %v", got, tt.start)
			}
		})
	}
}

func TestTurnResolvesAfterExactlyWaitTicks(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0), Options{Seed: 1})
	startRound(t, d)
	placeFood(d, grid.Point{X: 0, Y: 0})
	runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })

	if d.wait != 9 {
		t.Fatalf("wait = %d, want 9", d.wait)
	}

	ticks := 0
	for d.Turns() == 0 {
		step(d)
		ticks++
		if ticks > 100 {
			t.Fatal("turn never resolved")
		}
	}
	if ticks != d.wait {
		t.Errorf("turn resolved after %d ticks, want %d", ticks, d.wait)
	}
	if d.Turn() != TurnAction {
		t.Errorf("state = %s, want Action", d.Turn())
	}
	if got := d.Snake().Head().Cell(); got != (grid.Point{X: 3, Y: 5}) {
		t.Errorf("head = %v, want (3,5)", got)
	}
	if !slices.Contains(d.sounds, core.SoundMove) {
		t.Errorf("sounds = %v, want Move", d.sounds)
	}
}

func TestQueuedDirectionAppliesOnNextTurn(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 5, Y: 5}, "right", 1), Options{Seed: 1})
	startRound(t, d)
	placeFood(d, grid.Point{X: 0, Y: 0})
	runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })

	// Reversal is dropped by the snake; Down is queued behind it
	step(d, core.ActionLeft)
	runUntil(t, d, 50, func() bool { return d.Turns() == 1 })
	if got := d.Snake().Head().Cell(); got != (grid.Point{X: 6, Y: 5}) {
		t.Fatalf("head after reversal attempt = %v, want (6,5)", got)
	}

	runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })
	step(d, core.ActionDown)
	runUntil(t, d, 50, func() bool { return d.Turns() == 2 })
	if got := d.Snake().Head().Cell(); got != (grid.Point{X: 6, Y: 6}) {
		t.Errorf("head after Down = %v, want (6,6)", got)
	}
}

func TestDirectionQueueDropsNewestInDirector(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 5, Y: 5}, "right", 0), Options{})
	startRound(t, d)

	in := core.NewInputFrame()
	for _, a := range []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight} {
		in.Set(a)
	}
	d.readInput(in)

	if d.queue.Len() != 3 || d.queue.Dropped() != 1 {
		t.Fatalf("queue len=%d dropped=%d, want 3/1", d.queue.Len(), d.queue.Dropped())
	}
	var got []grid.Direction
	for d.queue.Len() > 0 {
		dir, _ := d.queue.Pop()
		got = append(got, dir)
	}
	want := []grid.Direction{grid.DirUp, grid.DirLeft, grid.DirDown}
	if !slices.Equal(got, want) {
		t.Errorf("queued = %v, want %v", got, want)
	}
}

func TestDirectionsIgnoredOutsideRound(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 5, Y: 5}, "right", 0), Options{})
	step(d, core.ActionUp)
	if d.queue.Len() != 0 {
		t.Errorf("queue len = %d in Start, want 0", d.queue.Len())
	}
}

func TestGameOverWinsOverFood(t *testing.T) {
	// One column wide: moving right always leaves the grid.
	cfg := testConfig(1, 5, grid.Point{X: 0, Y: 2}, "right", 0)
	d := NewDirector(cfg, Options{Seed: 7})
	startRound(t, d)
	food := placeFood(d, grid.Point{X: 1, Y: 2})
	runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })
	runUntil(t, d, 50, func() bool { return d.Turn() != TurnWait })

	if d.Turn() != TurnDestroy {
		t.Fatalf("state = %s, want Destroy", d.Turn())
	}
	if d.Score() != 0 {
		t.Errorf("score = %d, want 0", d.Score())
	}
	if food.State() != actor.LongVanish {
		t.Errorf("food state = %s, want LongVanish", food.State())
	}
	if !d.GameState().GameOver {
		t.Error("GameOver not set")
	}
}

func TestObstacleCollisionEndsRound(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 5, Y: 5}, "up", 0), Options{Seed: 2})
	startRound(t, d)
	food := placeFood(d, grid.Point{X: 0, Y: 9})
	obstacle := addObstacle(d, grid.Point{X: 5, Y: 4})
	runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })
	runUntil(t, d, 50, func() bool { return d.Turn() != TurnWait })

	if d.Turn() != TurnDestroy {
		t.Fatalf("state = %s, want Destroy", d.Turn())
	}
	if got := d.Snake().Head().State(); got != actor.LongVanish {
		t.Errorf("head state = %s, want LongVanish", got)
	}
	if got := d.Snake().Head().Cell(); got != (grid.Point{X: 5, Y: 5}) {
		t.Errorf("head moved to %v", got)
	}
	if food.State() != actor.LongVanish {
		t.Errorf("food state = %s, want LongVanish", food.State())
	}
	if obstacle.State() != actor.LongVanish {
		t.Errorf("obstacle state = %s, want LongVanish", obstacle.State())
	}
	if d.Score() != 0 {
		t.Errorf("score = %d, want 0", d.Score())
	}
	if !slices.Contains(d.sounds, core.SoundDestroy) {
		t.Errorf("sounds = %v, want Destroy", d.sounds)
	}

	// The round clears once everything is gone
	runUntil(t, d, 50, func() bool { return d.Turn() == TurnStart })
	if !d.Snake().Headless() || d.Food() != nil || len(d.Obstacles()) != 0 {
		t.Error("round entities survived Destroy")
	}
	if d.field.Len() != 0 {
		t.Errorf("field stage holds %d actors, want 0", d.field.Len())
	}
	if d.startButton.State() != actor.QuickAppear {
		t.Errorf("start button state = %s, want QuickAppear", d.startButton.State())
	}
	if !d.GameState().GameOver {
		t.Error("GameOver cleared before the next start")
	}
}

func TestBodyCollisionExceptTail(t *testing.T) {
	tests := []struct {
		name    string
		extra   int
		turns   []core.Action
		destroy bool
	}{
		// Head (5,5) moving up; body (5,6),(5,7),(5,8) trails below.
		// Right, Down, Left loops back onto a body cell.
		{"hits body", 4, []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft}, true},
		// With four segments the loop enters the cell the tail is vacating.
		{"chases tail", 3, []core.Action{core.ActionRight, core.ActionDown, core.ActionLeft}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirector(testConfig(10, 10, grid.Point{X: 5, Y: 5}, "up", tt.extra), Options{Seed: 5})
			startRound(t, d)
			placeFood(d, grid.Point{X: 0, Y: 0})
			for i, a := range tt.turns {
				runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })
				step(d, a)
				runUntil(t, d, 50, func() bool { return d.Turns() == i+1 })
			}
			if got := d.Turn() == TurnDestroy; got != tt.destroy {
				t.Errorf("destroyed = %v, want %v (head %v)", got, tt.destroy, d.Snake().Head().Cell())
			}
		})
	}
}

func TestRequestDestroyConsumedAtResolution(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0), Options{})
	startRound(t, d)
	placeFood(d, grid.Point{X: 0, Y: 0})
	runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })

	step(d, core.ActionEnd)
	if !d.destroyRequested {
		t.Fatal("end press did not request destroy")
	}
	runUntil(t, d, 50, func() bool { return d.Turn() != TurnWait })
	if d.Turn() != TurnDestroy {
		t.Errorf("state = %s, want Destroy", d.Turn())
	}
	if d.destroyRequested {
		t.Error("destroy request not consumed")
	}
}

func TestHighScoreUpdatedOnGameOver(t *testing.T) {
	tests := []struct {
		name  string
		high  int
		score int
		want  int
	}{
		{"beaten", 2, 3, 3},
		{"not beaten", 10, 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirector(testConfig(1, 5, grid.Point{X: 0, Y: 2}, "right", 0), Options{HighScore: tt.high})
			startRound(t, d)
			d.score = tt.score
			runUntil(t, d, 50, func() bool { return d.Turn() == TurnDestroy })

			if got := d.GameState().HighScore; got != tt.want {
				t.Errorf("high score = %d, want %d", got, tt.want)
			}
			if d.highPanel.Value() != tt.want {
				t.Errorf("panel shows %d, want %d", d.highPanel.Value(), tt.want)
			}
			if beaten := tt.score > tt.high; d.highPanel.Flashing() != beaten {
				t.Errorf("panel flashing = %v, want %v", d.highPanel.Flashing(), beaten)
			}
		})
	}
}

func TestEatingSpawnsObstacleBatch(t *testing.T) {
	tests := []struct {
		name string
		cap  int
		want int
	}{
		{"full batch", 0, 4},
		{"capped", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(10, 10, grid.Point{X: 5, Y: 5}, "right", 0)
			cfg.Hazards.Obstacles.Cap = tt.cap
			d := NewDirector(cfg, Options{Seed: 11})
			startRound(t, d)
			food := placeFood(d, grid.Point{X: 6, Y: 5})
			d.score = 4
			runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })
			runUntil(t, d, 50, func() bool { return d.Turns() == 1 })

			head := grid.Point{X: 6, Y: 5}
			if d.Score() != 5 {
				t.Fatalf("score = %d, want 5", d.Score())
			}
			if d.Turn() != TurnAction || d.foodState != FoodNew {
				t.Fatalf("state = %s/%d, want Action/NewFood", d.Turn(), d.foodState)
			}
			if d.Snake().Len() != 2 {
				t.Errorf("snake len = %d, want 2", d.Snake().Len())
			}
			if len(d.Obstacles()) != tt.want {
				t.Fatalf("obstacles = %d, want %d", len(d.Obstacles()), tt.want)
			}

			seen := map[grid.Point]bool{head: true, {X: 5, Y: 5}: true, d.nextFood.Cell(): true}
			for _, o := range d.Obstacles() {
				if seen[o.Cell()] {
					t.Errorf("obstacle on occupied cell %v", o.Cell())
				}
				seen[o.Cell()] = true
			}
			if d.nextFood.Cell() == head {
				t.Error("next food spawned on the new head")
			}
			if len(d.Lightning()) != 0 || len(d.ShineFoods()) != 0 {
				t.Error("families below their thresholds spawned")
			}
			for _, s := range []core.Sound{core.SoundFood, core.SoundObstacles} {
				if !slices.Contains(d.sounds, s) {
					t.Errorf("sounds = %v, want %s", d.sounds, s)
				}
			}

			next := d.nextFood
			runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })
			if d.Food() != next || d.nextFood != nil {
				t.Error("new food not swapped in")
			}
			if d.field.Contains(food) {
				t.Error("eaten food still on the field")
			}
		})
	}
}

func TestGrowthStopsAtMaxLength(t *testing.T) {
	cfg := testConfig(10, 10, grid.Point{X: 5, Y: 5}, "right", 1)
	cfg.Snake.MaxLength = 2
	d := NewDirector(cfg, Options{Seed: 4})
	startRound(t, d)
	placeFood(d, grid.Point{X: 6, Y: 5})
	runUntil(t, d, 50, func() bool { return d.Turns() == 1 })

	if d.Score() != 1 || d.Snake().Len() != 2 {
		t.Errorf("score=%d len=%d, want 1/2", d.Score(), d.Snake().Len())
	}
}

func TestLightningFlipsEveryTurnWait(t *testing.T) {
	d := NewDirector(testConfig(30, 10, grid.Point{X: 2, Y: 5}, "right", 0), Options{Seed: 9})
	startRound(t, d)
	placeFood(d, grid.Point{X: 0, Y: 0})
	l := addLightning(d, grid.Point{X: 10, Y: 1}, 5)
	runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })

	for turn := 1; turn <= 10; turn++ {
		runUntil(t, d, 100, func() bool { return d.Turns() == turn })
		switch {
		case turn < 5:
			if !l.Armed() || l.TurnsLeft() != 5-turn {
				t.Fatalf("turn %d: state=%s left=%d, want armed with %d left", turn, l.State(), l.TurnsLeft(), 5-turn)
			}
		case turn == 5:
			if l.State() != actor.LightningVanish || l.TurnsLeft() != 5 {
				t.Fatalf("turn 5: state=%s left=%d, want LightningVanish with 5 left", l.State(), l.TurnsLeft())
			}
		case turn < 10:
			if !l.Gone() || l.TurnsLeft() != 10-turn {
				t.Fatalf("turn %d: state=%s left=%d, want gone with %d left", turn, l.State(), l.TurnsLeft(), 10-turn)
			}
		default:
			if l.State() != actor.LightningAppear {
				t.Fatalf("turn 10: state=%s, want LightningAppear", l.State())
			}
		}
	}
}

func TestLightningRearmRespectsSnakeBody(t *testing.T) {
	tests := []struct {
		name  string
		extra int
		cell  grid.Point
		arm   bool
	}{
		{"free cell", 2, grid.Point{X: 0, Y: 0}, true},
		{"tail", 2, grid.Point{X: 3, Y: 5}, true},
		{"body", 2, grid.Point{X: 4, Y: 5}, false},
		{"head", 2, grid.Point{X: 5, Y: 5}, false},
		{"single segment", 0, grid.Point{X: 5, Y: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirector(testConfig(10, 10, grid.Point{X: 5, Y: 5}, "right", tt.extra), Options{Seed: 1})
			startRound(t, d)

			l := NewLightningObstacle(d.level, tt.cell, d.timing, 5, d.rng)
			settle(t, l)
			l.Vanish()
			settle(t, l)
			l.turnsLeft = 1
			d.lightning = []*LightningObstacle{l}

			d.updateLightning()
			if got := l.State() == actor.LightningAppear; got != tt.arm {
				t.Errorf("re-armed = %v, want %v", got, tt.arm)
			}
			if !tt.arm && l.TurnsLeft() != 1 {
				t.Errorf("blocked hazard turnsLeft = %d, want 1", l.TurnsLeft())
			}
		})
	}
}

func TestLightningSkipsRemovingAndUnsettled(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 5, Y: 5}, "right", 0), Options{Seed: 1})

	fresh := NewLightningObstacle(d.level, grid.Point{X: 1, Y: 1}, d.timing, 5, d.rng)
	removing := NewLightningObstacle(d.level, grid.Point{X: 2, Y: 2}, d.timing, 5, d.rng)
	settle(t, removing)
	removing.removing = true
	d.lightning = []*LightningObstacle{fresh, removing}

	d.updateLightning()
	if fresh.TurnsLeft() != 5 || removing.TurnsLeft() != 5 {
		t.Errorf("turnsLeft = %d/%d, want 5/5", fresh.TurnsLeft(), removing.TurnsLeft())
	}
}

func TestArmedLightningIsFatal(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 5, Y: 5}, "right", 0), Options{Seed: 1})
	startRound(t, d)
	placeFood(d, grid.Point{X: 0, Y: 0})
	l := addLightning(d, grid.Point{X: 6, Y: 5}, 50)
	runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })
	if !l.Armed() {
		t.Fatalf("lightning state = %s, want armed", l.State())
	}
	runUntil(t, d, 50, func() bool { return d.Turn() != TurnWait })
	if d.Turn() != TurnDestroy {
		t.Errorf("state = %s, want Destroy", d.Turn())
	}
}

func TestShinePickupAndDevour(t *testing.T) {
	tests := []struct {
		name      string
		lightning bool
	}{
		{"obstacle", false},
		{"lightning", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDirector(testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0), Options{Seed: 6})
			startRound(t, d)
			placeFood(d, grid.Point{X: 0, Y: 0})

			shine := NewShineFood(d.level, grid.Point{X: 3, Y: 5}, d.timing, d.rng)
			d.shines = append(d.shines, shine)
			d.field.Add(shine)
			var target roundEntity
			if tt.lightning {
				target = addLightning(d, grid.Point{X: 4, Y: 5}, 50)
			} else {
				target = addObstacle(d, grid.Point{X: 4, Y: 5})
			}
			d.field.Flush()

			runUntil(t, d, 50, func() bool { return d.Turns() == 1 })
			if d.Snake().Mode() != ModeShine || d.shineState != ShineNew {
				t.Fatalf("after pickup mode=%s shine=%s, want shine/NewShine", d.Snake().Mode(), d.shineState)
			}
			if !slices.Contains(d.sounds, core.SoundShinePickup) {
				t.Errorf("sounds = %v, want ShinePickup", d.sounds)
			}
			if d.Snake().Head().Name != spriteHeadShine {
				t.Errorf("head sprite = %q, want %q", d.Snake().Head().Name, spriteHeadShine)
			}

			runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })
			if len(d.ShineFoods()) != 0 || d.field.Contains(shine) {
				t.Error("consumed shine food not discarded")
			}

			runUntil(t, d, 50, func() bool { return d.Turns() == 2 })
			if d.Turn() != TurnAction {
				t.Fatalf("state = %s, want Action (devour)", d.Turn())
			}
			if d.Snake().Mode() != ModeNormal || d.shineState != ShineRemoveObstacle {
				t.Errorf("after devour mode=%s shine=%s, want normal/RemoveObstacle", d.Snake().Mode(), d.shineState)
			}
			if !slices.Contains(d.sounds, core.SoundShineDevour) {
				t.Errorf("sounds = %v, want ShineDevour", d.sounds)
			}

			runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })
			if len(d.Obstacles()) != 0 || len(d.Lightning()) != 0 {
				t.Error("devoured hazard not discarded")
			}
			if d.field.Contains(target) {
				t.Error("devoured hazard still on the field")
			}
		})
	}
}

func TestDevourWithTwoTargetsPanics(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0), Options{Seed: 1})
	cell := grid.Point{X: 4, Y: 4}
	o := addObstacle(d, cell)
	l := addLightning(d, cell, 5)
	settle(t, o)
	settle(t, l)

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	d.devour(cell)
}

func TestDevourWithoutTargetIsNoop(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0), Options{Seed: 1})
	d.snake.SetMode(ModeShine)
	d.devour(grid.Point{X: 1, Y: 1})
	if d.snake.Mode() != ModeShine || d.shineState != ShineIdle {
		t.Error("devour without a target changed state")
	}
}

func TestDevourSkipsDisarmedLightning(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0), Options{Seed: 1})
	cell := grid.Point{X: 1, Y: 1}
	l := addLightning(d, cell, 5)
	settle(t, l)
	l.Vanish()
	settle(t, l)

	d.snake.SetMode(ModeShine)
	d.devour(cell)
	if d.snake.Mode() != ModeShine || d.shineState != ShineIdle {
		t.Error("shine spent on a disarmed hazard")
	}
	if !l.Gone() || l.Removing() {
		t.Errorf("disarmed hazard state = %s, removing = %v", l.State(), l.Removing())
	}
}

func TestPauseGatesTurns(t *testing.T) {
	cfg := testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0)
	d := NewDirector(cfg, Options{Seed: 1})
	startRound(t, d)
	placeFood(d, grid.Point{X: 0, Y: 0})
	runUntil(t, d, 50, func() bool { return d.Turn() == TurnWait })

	step(d, core.ActionPause)
	if d.Pause() != Pausing {
		t.Fatalf("pause state = %s, want Pause", d.Pause())
	}
	if !slices.Contains(d.sounds, core.SoundPause) {
		t.Errorf("sounds = %v, want Pause", d.sounds)
	}

	for i := 0; i < 100 && d.Pause() != Paused; i++ {
		step(d)
		if d.Pause() == Paused && !(d.Dimmer().Dimmed() && d.Board().Opened()) {
			t.Fatal("Paused reached before the dimmer and board finished")
		}
	}
	if d.Pause() != Paused {
		t.Fatalf("pause state = %s, want Paused", d.Pause())
	}

	timer := d.timer
	for i := 0; i < 100; i++ {
		step(d)
	}
	if d.Turns() != 0 || d.Turn() != TurnWait || d.timer != timer {
		t.Fatalf("turn advanced while paused: turns=%d state=%s", d.Turns(), d.Turn())
	}
	if !d.GameState().Paused {
		t.Error("GameState.Paused = false")
	}
	if d.volume.Level() != cfg.Audio.DuckVolume {
		t.Errorf("music level = %v, want %v", d.volume.Level(), cfg.Audio.DuckVolume)
	}

	// Any press resumes; the direction itself is not queued
	step(d, core.ActionDown)
	if d.Pause() != Resuming {
		t.Fatalf("pause state = %s, want Resume", d.Pause())
	}
	if d.queue.Len() != 0 {
		t.Errorf("direction queued while paused")
	}
	runUntil(t, d, 50, func() bool { return d.Pause() == Resumed })
	if !d.Dimmer().Clear() || !d.Board().Closed() {
		t.Error("Resumed before the dimmer and board finished")
	}
	runUntil(t, d, 50, func() bool { return d.Turns() == 1 })
}

func TestMusicVolumeFollowsPause(t *testing.T) {
	cfg := testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0)
	d := NewDirector(cfg, Options{})
	full := d.MusicVolume()

	step(d, core.ActionPause)
	runUntil(t, d, 50, func() bool { return !d.volume.Fading() })
	if got := d.MusicVolume(); got >= full {
		t.Errorf("ducked volume %v not below %v", got, full)
	}
}

func TestStepUsesFixedTicks(t *testing.T) {
	d := NewDirector(testConfig(10, 10, grid.Point{X: 2, Y: 5}, "right", 0), Options{})

	in := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		d.Step(1.0/60, in)
	}
	if got := d.clock.Ticks(); got != 30 {
		t.Errorf("ticks after one second at 60 fps = %d, want 30", got)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig(12, 12, grid.Point{X: 3, Y: 6}, "right", 2)
	cfg.Hazards.ScorePerLevelUpdate = 1
	cfg.Hazards.Obstacles.StartThreshold = 1
	cfg.Hazards.Lightning.StartThreshold = 1
	cfg.Hazards.Shine.StartThreshold = 1

	d1 := NewDirector(cfg, Options{Seed: 12345})
	d2 := NewDirector(cfg, Options{Seed: 12345})

	script := map[int]core.Action{
		20:  core.ActionStart,
		200: core.ActionDown,
		320: core.ActionLeft,
		500: core.ActionUp,
		640: core.ActionRight,
		800: core.ActionPause,
		900: core.ActionAny,
	}
	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		in.Clear()
		if a, ok := script[i]; ok {
			in.Set(a)
		}
		r1 := d1.Step(1.0/60, in)
		r2 := d2.Step(1.0/60, in)
		if !reflect.DeepEqual(r1, r2) {
			t.Fatalf("frame %d: results differ: %+v vs %+v", i, r1, r2)
		}
	}

	s1, s2 := d1.Snapshot(), d2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if !reflect.DeepEqual(d1.Sprites(), d2.Sprites()) {
		t.Error("sprites differ")
	}
}
