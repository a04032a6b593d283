package tui

import (
	"strings"
	"testing"
)

func TestBestLabel(t *testing.T) {
	store := testStore(t)

	if got := bestLabel(nil, "flappy"); got != "" {
		t.Errorf("bestLabel(nil) = %q, expected empty", got)
	}
	if got := bestLabel(store, "flappy"); got != "" {
		t.Errorf("bestLabel() with no records = %q, expected empty", got)
	}

	if _, err := store.UpdateBestScore("flappy", 12); err != nil {
		t.Fatal(err)
	}
	if got := bestLabel(store, "flappy"); got != "best 12" {
		t.Errorf("bestLabel(flappy) = %q, expected %q", got, "best 12")
	}

	for _, s := range []int{80, 41} {
		if _, err := store.SaveTime("minesweeper", "beginner", s); err != nil {
			t.Fatal(err)
		}
	}
	if got := bestLabel(store, "minesweeper"); got != "fastest 41s (beginner)" {
		t.Errorf("bestLabel(minesweeper) = %q", got)
	}
}

func TestScoreboardRows(t *testing.T) {
	store := testStore(t)
	m := NewScoreboardModel(store, 100, 30)

	for _, s := range []int{5, 9} {
		if _, err := store.SaveScore("flappy", s); err != nil {
			t.Fatal(err)
		}
	}
	m.loadScores("flappy")
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "9" {
		t.Errorf("flappy rows = %v, expected best score first", rows)
	}

	if _, err := store.SaveTime("minesweeper", "expert", 120); err != nil {
		t.Fatal(err)
	}
	m.loadScores("minesweeper")
	rows = m.table.Rows()
	if len(rows) != 1 || !strings.HasPrefix(rows[0][1], "120s expert") {
		t.Errorf("minesweeper rows = %v, expected the win time", rows)
	}

	m.loadScores("unknown")
	if len(m.table.Rows()) != 0 {
		t.Error("a game without records should have no rows")
	}
}
