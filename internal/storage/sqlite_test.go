package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("flappy", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("flappy", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("flappy", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("minesweeper", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for flappy
	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for minesweeper
	otherScores, err := store.TopScores("minesweeper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(otherScores) != 1 {
		t.Errorf("Expected 1 minesweeper score, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 300)
	store.SaveScore("flappy", 200)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestAheadOfHistory(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// A run quit mid-way updates the best but leaves no history row
	if _, err := store.SaveScore("flappy", 4); err != nil {
		t.Fatal(err)
	}
	if _, err := store.UpdateBestScore("flappy", 9); err != nil {
		t.Fatal(err)
	}

	best, err := store.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 9 || high != 4 {
		t.Errorf("best = %d, high = %d, expected 9 and 4", best, high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 200)
	store.SaveScore("minesweeper", 300)

	// Clear only flappy scores
	err = store.ClearScores("flappy")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Flappy should be empty
	flappyScores, _ := store.TopScores("flappy", 10)
	if len(flappyScores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappyScores))
	}

	// Minesweeper should still have scores
	otherScores, _ := store.TopScores("minesweeper", 10)
	if len(otherScores) != 1 {
		t.Errorf("Minesweeper scores should not be affected by clearing flappy")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("flappy")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 before any game, got %d", best)
	}

	steps := []struct {
		score   int
		changed bool
		best    int
	}{
		{5, true, 5},
		{3, false, 5},
		{5, false, 5},
		{12, true, 12},
	}

	for _, step := range steps {
		changed, err := store.UpdateBestScore("flappy", step.score)
		if err != nil {
			t.Fatalf("UpdateBestScore(%d) failed: %v", step.score, err)
		}
		if changed != step.changed {
			t.Errorf("UpdateBestScore(%d) changed = %v, want %v", step.score, changed, step.changed)
		}
		best, _ := store.BestScore("flappy")
		if best != step.best {
			t.Errorf("after %d: best = %d, want %d", step.score, best, step.best)
		}
	}

	// Other games are independent
	if best, _ := store.BestScore("minesweeper"); best != 0 {
		t.Errorf("minesweeper best = %d, want 0", best)
	}
}

func TestStoreBestTimes(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		board   string
		seconds int
	}{
		{"beginner", 40},
		{"beginner", 12},
		{"expert", 300},
		{"beginner", 25},
		{"expert", 250},
	}
	for _, r := range runs {
		if _, err := store.SaveTime("minesweeper", r.board, r.seconds); err != nil {
			t.Fatalf("SaveTime() failed: %v", err)
		}
	}

	beginner, err := store.BestTimes("minesweeper", "beginner", 2)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(beginner) != 2 || beginner[0].Seconds != 12 || beginner[1].Seconds != 25 {
		t.Errorf("beginner times = %+v, want 12 then 25", beginner)
	}

	all, err := store.BestTimes("minesweeper", "", 0)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("Expected 5 times across boards, got %d", len(all))
	}
	if all[4].Seconds != 300 || all[4].Board != "expert" {
		t.Errorf("slowest run = %+v", all[4])
	}
	if all[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestStoreClearScoresAllTables(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 7)
	store.UpdateBestScore("flappy", 7)
	store.SaveTime("minesweeper", "beginner", 30)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if best, _ := store.BestScore("flappy"); best != 0 {
		t.Errorf("best score survived clear: %d", best)
	}
	if times, _ := store.BestTimes("minesweeper", "", 10); len(times) != 1 {
		t.Error("clearing flappy should not touch minesweeper times")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 10)
	store.SaveScore("flappy", 20)

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.AvgScore != 15 || stats.TotalScore != 30 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.GetGameStats("minesweeper")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", want, want},
		{"sqlite text", "2024-05-01 12:30:00", want},
		{"rfc3339", "2024-05-01T12:30:00Z", want},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTimestamp(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTimestamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
