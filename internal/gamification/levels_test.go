package gamification

import (
	"testing"
)

func TestNewLevelTable_RejectsEmptyTable(t *testing.T) {
	if _, err := NewLevelTable(nil); err == nil {
		t.Fatal("expected error for empty table")
	}
}

func TestNewLevelTable_RejectsNonZeroStart(t *testing.T) {
	if _, err := NewLevelTable([]int{50, 100}); err == nil {
		t.Fatal("expected error for table not starting at 0")
	}
}

func TestNewLevelTable_RejectsNonMonotonicThresholds(t *testing.T) {
	if _, err := NewLevelTable([]int{0, 100, 50}); err == nil {
		t.Fatal("expected error for non-monotonic table")
	}
}

func TestLevelFor_ExactThresholdBoundaries(t *testing.T) {
	// level(thresholds[i]) == i+1 à chaque frontière
	for i, threshold := range DefaultLevelTable {
		if got := DefaultLevelTable.LevelFor(threshold); got != i+1 {
			t.Fatalf("LevelFor(%d) = %d, want %d", threshold, got, i+1)
		}
	}
}

func TestLevelFor_NonDecreasing(t *testing.T) {
	prev := 0
	for points := 0; points <= 60000; points += 25 {
		level := DefaultLevelTable.LevelFor(points)
		if level < prev {
			t.Fatalf("LevelFor(%d) = %d, below previous level %d", points, level, prev)
		}
		prev = level
	}
}

func TestLevelFor_Scenarios(t *testing.T) {
	tests := []struct {
		points    int
		wantLevel int
		wantNext  int
	}{
		{0, 1, 100},
		{50, 1, 50},
		{99, 1, 1},
		{100, 2, 150},
		{250, 3, 250},
		{49999, 14, 1},
		{50000, 15, 0},
		{80000, 15, 0},
	}
	for _, tt := range tests {
		if got := DefaultLevelTable.LevelFor(tt.points); got != tt.wantLevel {
			t.Fatalf("LevelFor(%d) = %d, want %d", tt.points, got, tt.wantLevel)
		}
		if got := DefaultLevelTable.PointsToNext(tt.points); got != tt.wantNext {
			t.Fatalf("PointsToNext(%d) = %d, want %d", tt.points, got, tt.wantNext)
		}
	}
}

func TestPointsToNext_ZeroOnlyAtMaxLevel(t *testing.T) {
	for points := 0; points <= 60000; points += 25 {
		next := DefaultLevelTable.PointsToNext(points)
		atMax := DefaultLevelTable.LevelFor(points) == DefaultLevelTable.MaxLevel()
		if (next == 0) != atMax {
			t.Fatalf("PointsToNext(%d) = %d but level is %d of %d", points, next, DefaultLevelTable.LevelFor(points), DefaultLevelTable.MaxLevel())
		}
	}
}
