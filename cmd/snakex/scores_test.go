package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/snake-extreme/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWriteScores(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.Round{
		{GameID: "snakex", Score: 4, Turns: 40},
		{GameID: "snakex", Player: "ssh:bob", Score: 9, Turns: 90},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatal(err)
		}
	}

	all, err := store.AllScores("snakex")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	writeScores(&buf, store, "snakex", "Snake Extreme", all)
	out := buf.String()

	for _, want := range []string{"High Scores - Snake Extreme", "ssh:bob", "local", "Best: 9  |  Rounds: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "ssh:bob") > strings.Index(out, "local") {
		t.Error("scores should be ranked best first")
	}

	buf.Reset()
	writeScores(&buf, store, "snakex_classic", "Snake Classic", nil)
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty table output:\n%s", buf.String())
	}
}

func TestWriteRound(t *testing.T) {
	store := openTestStore(t)
	id, err := store.SaveRound(storage.Round{GameID: "snakex_classic", Player: "web", Score: 7, Turns: 33})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		id      string
		want    []string
		wantErr bool
	}{
		{"saved", id, []string{id, "snakex_classic", "web", "Score:  7", "Turns:  33"}, false},
		{"missing", uuid.NewString(), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeRound(&buf, store, tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("writeRound() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestWriteAllStats(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	if err := writeAllStats(&buf, store); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No rounds recorded yet.") {
		t.Errorf("empty store output:\n%s", buf.String())
	}

	for _, r := range []storage.Round{
		{GameID: "snakex_classic", Score: 2, Turns: 10},
		{GameID: "snakex", Score: 5, Turns: 20},
		{GameID: "snakex", Score: 3, Turns: 30},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatal(err)
		}
	}

	buf.Reset()
	if err := writeAllStats(&buf, store); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header, rule and two modes:\n%s", len(lines), buf.String())
	}
	if f := strings.Fields(lines[2]); f[0] != "snakex" || f[1] != "2" || f[2] != "5" || f[3] != "4.0" || f[4] != "50" {
		t.Errorf("snakex row = %q", lines[2])
	}
	if f := strings.Fields(lines[3]); f[0] != "snakex_classic" || f[1] != "1" {
		t.Errorf("snakex_classic row = %q", lines[3])
	}
}
