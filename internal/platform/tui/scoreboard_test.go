package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-extreme/internal/registry"
	"github.com/vovakirdan/snake-extreme/internal/storage"
)

var boardModes = []registry.GameInfo{
	{ID: "scripted", Title: "Scripted"},
	{ID: "scripted_classic", Title: "Scripted Classic"},
}

func boardPress(t *testing.T, m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return sb
}

func TestScoreboardModes(t *testing.T) {
	store := newTestStore(t)
	m := NewScoreboardModel(store, 100, 40)
	m.modes = boardModes
	second := m.modes[1].ID
	for _, score := range []int{3, 8} {
		if _, err := store.SaveRound(storage.Round{GameID: second, Player: "ssh:eve", Score: score, Turns: 12}); err != nil {
			t.Fatal(err)
		}
	}
	m.reload()

	if len(m.scores) != 0 {
		t.Fatalf("first mode shows %d rounds, want 0", len(m.scores))
	}
	if m.totals.GamesCount != 2 || m.totals.TotalTurns != 24 || m.totals.HighScore != 8 {
		t.Errorf("totals = %+v", m.totals)
	}

	m = boardPress(t, m, keyMsg("tab"))
	if m.modes[m.mode].ID != second || len(m.scores) != 2 || m.scores[0].Score != 8 {
		t.Fatalf("after tab: mode %s, scores %+v", m.modes[m.mode].ID, m.scores)
	}
	view := m.View()
	for _, want := range []string{"BEST ROUNDS", "ssh:eve", "best 8", "all modes: 2 rounds"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = boardPress(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.mode != 0 {
		t.Errorf("shift+tab mode = %d, want 0", m.mode)
	}
	m = boardPress(t, m, keyMsg("left"))
	if m.mode != 1 {
		t.Errorf("left from the first mode = %d, want wrap to 1", m.mode)
	}
}

func TestScoreboardAllRounds(t *testing.T) {
	store := newTestStore(t)
	m := NewScoreboardModel(store, 80, 20)
	m.modes = boardModes
	id := m.modes[0].ID
	for i := 0; i < topRounds+5; i++ {
		if _, err := store.SaveRound(storage.Round{GameID: id, Score: i + 1}); err != nil {
			t.Fatal(err)
		}
	}
	m.reload()
	if len(m.scores) != topRounds {
		t.Fatalf("ranked view has %d rounds, want %d", len(m.scores), topRounds)
	}

	m = boardPress(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if !m.all || len(m.scores) != topRounds+5 {
		t.Errorf("all view = %v with %d rounds, want %d", m.all, len(m.scores), topRounds+5)
	}
	if !strings.Contains(m.View(), "ALL ROUNDS") {
		t.Error("view should name the all-rounds listing")
	}
}

func TestScoreboardLeave(t *testing.T) {
	tests := []struct {
		key      string
		wantBack bool
		wantQuit bool
	}{
		{key: "esc", wantBack: true},
		{key: "b", wantBack: true},
		{key: "q", wantQuit: true},
		{key: "ctrl+c", wantQuit: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := NewScoreboardModel(nil, 80, 24)
			if !strings.Contains(m.View(), "No rounds saved yet.") {
				t.Error("a board without a store should render empty")
			}
			next, cmd := m.Update(keyMsg(tt.key))
			m = next.(ScoreboardModel)
			if m.IsGoingBack() != tt.wantBack || m.IsQuitting() != tt.wantQuit || cmd == nil {
				t.Errorf("back = %v, quit = %v, cmd = %v", m.IsGoingBack(), m.IsQuitting(), cmd != nil)
			}
			if m.View() != "" {
				t.Error("View() should be blank after leaving")
			}
		})
	}
}
