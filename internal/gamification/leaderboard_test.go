package gamification

import (
	"context"
	"errors"
	"testing"

	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

// addApprovals insère n réalisations approuvées et rejoue l'événement
func addApprovals(t *testing.T, e *Engine, f *fakeStore, studentID, level string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		f.achievements[studentID] = append(f.achievements[studentID],
			approved(studentID, "cat-1", level, testDay))
	}
	if err := e.OnAchievementApproved(context.Background(), studentID); err != nil {
		t.Fatalf("OnAchievementApproved(%s): %v", studentID, err)
	}
}

func TestLeaderboard_DenseRanks(t *testing.T) {
	f := newFakeStore()
	e := newTestEngine(f)

	// 30, 20, 10 points : rangs 1, 2, 3 quel que soit l'ordre des événements
	addApprovals(t, e, f, "student-b", model.LevelCollege, 2)
	addApprovals(t, e, f, "student-c", model.LevelCollege, 1)
	addApprovals(t, e, f, "student-a", model.LevelCollege, 3)

	entries, err := e.GetLeaderboard(context.Background(), model.GlobalScope(), 0)
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	wantOrder := []string{"student-a", "student-b", "student-c"}
	for i, entry := range entries {
		if entry.UserID != wantOrder[i] {
			t.Fatalf("entries[%d].UserID = %s, want %s", i, entry.UserID, wantOrder[i])
		}
		if entry.Rank != i+1 {
			t.Fatalf("entries[%d].Rank = %d, want %d", i, entry.Rank, i+1)
		}
	}
}

func TestLeaderboard_TiebreakDeterministic(t *testing.T) {
	// À points et niveau égaux, l'ID étudiant croissant départage : deux
	// exécutions produisent toujours le même ordre
	f := newFakeStore()
	e := newTestEngine(f)

	addApprovals(t, e, f, "student-z", model.LevelState, 1)
	addApprovals(t, e, f, "student-a", model.LevelState, 1)
	addApprovals(t, e, f, "student-m", model.LevelState, 1)

	entries, err := e.GetLeaderboard(context.Background(), model.GlobalScope(), 0)
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	wantOrder := []string{"student-a", "student-m", "student-z"}
	for i, entry := range entries {
		if entry.UserID != wantOrder[i] {
			t.Fatalf("entries[%d].UserID = %s, want %s", i, entry.UserID, wantOrder[i])
		}
	}
}

func TestLeaderboard_RanksShiftOnOvertake(t *testing.T) {
	f := newFakeStore()
	e := newTestEngine(f)
	ctx := context.Background()

	addApprovals(t, e, f, "student-a", model.LevelCollege, 2) // 20
	addApprovals(t, e, f, "student-b", model.LevelCollege, 1) // 10

	rank, err := e.GetRank(ctx, "student-b", model.GlobalScope())
	if err != nil {
		t.Fatalf("GetRank: %v", err)
	}
	if rank.Rank != 2 {
		t.Fatalf("rank = %d, want 2", rank.Rank)
	}

	addApprovals(t, e, f, "student-b", model.LevelState, 1) // 60

	rank, err = e.GetRank(ctx, "student-b", model.GlobalScope())
	if err != nil {
		t.Fatalf("GetRank: %v", err)
	}
	if rank.Rank != 1 {
		t.Fatalf("rank = %d, want 1 after overtake", rank.Rank)
	}
	rank, err = e.GetRank(ctx, "student-a", model.GlobalScope())
	if err != nil {
		t.Fatalf("GetRank: %v", err)
	}
	if rank.Rank != 2 {
		t.Fatalf("rank = %d, want 2 after being overtaken", rank.Rank)
	}
}

func TestLeaderboard_DepartmentScope(t *testing.T) {
	f := newFakeStore()
	f.scopes["student-a"] = model.ScopeAttributes{Department: "CSE"}
	f.scopes["student-b"] = model.ScopeAttributes{Department: "CSE"}
	f.scopes["student-c"] = model.ScopeAttributes{Department: "ECE"}
	e := newTestEngine(f)
	ctx := context.Background()

	addApprovals(t, e, f, "student-a", model.LevelCollege, 1)
	addApprovals(t, e, f, "student-b", model.LevelState, 1)
	addApprovals(t, e, f, "student-c", model.LevelNational, 1)

	entries, err := e.GetLeaderboard(ctx, model.DepartmentScope("CSE"), 0)
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2 (ECE excluded)", len(entries))
	}
	if entries[0].UserID != "student-b" || entries[0].Rank != 1 {
		t.Fatalf("entries[0] = %s rank %d, want student-b rank 1", entries[0].UserID, entries[0].Rank)
	}

	// Le classement départemental est indépendant du global : student-c est
	// 1er global mais seul dans sa portée ECE
	rank, err := e.GetRank(ctx, "student-c", model.DepartmentScope("ECE"))
	if err != nil {
		t.Fatalf("GetRank: %v", err)
	}
	if rank.Rank != 1 || rank.TotalParticipants != 1 {
		t.Fatalf("rank = %d/%d, want 1/1", rank.Rank, rank.TotalParticipants)
	}
}

func TestLeaderboard_NoDepartmentNoDepartmentEntry(t *testing.T) {
	f := newFakeStore()
	e := newTestEngine(f)

	addApprovals(t, e, f, "student-a", model.LevelCollege, 1)

	for _, entry := range f.entries {
		if entry.Scope.Type == model.ScopeDepartment {
			t.Fatalf("department entry created for student without department: %+v", entry)
		}
	}
}

func TestLeaderboard_Limit(t *testing.T) {
	f := newFakeStore()
	e := newTestEngine(f)

	addApprovals(t, e, f, "student-a", model.LevelCollege, 3)
	addApprovals(t, e, f, "student-b", model.LevelCollege, 2)
	addApprovals(t, e, f, "student-c", model.LevelCollege, 1)

	entries, err := e.GetLeaderboard(context.Background(), model.GlobalScope(), 2)
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].UserID != "student-a" || entries[1].UserID != "student-b" {
		t.Fatalf("top 2 = %s, %s", entries[0].UserID, entries[1].UserID)
	}
}

func TestGetRank_NotRanked(t *testing.T) {
	f := newFakeStore()
	e := newTestEngine(f)

	_, err := e.GetRank(context.Background(), "ghost", model.GlobalScope())
	if !errors.Is(err, ErrNotRanked) {
		t.Fatalf("err = %v, want ErrNotRanked", err)
	}
}

func TestLeaderboard_InvalidScope(t *testing.T) {
	f := newFakeStore()
	e := newTestEngine(f)
	ctx := context.Background()

	cases := []model.Scope{
		{Type: "galaxy"},
		{Type: model.ScopeDepartment, Value: ""},
	}
	for _, scope := range cases {
		if _, err := e.GetLeaderboard(ctx, scope, 0); !errors.Is(err, ErrInvalidScope) {
			t.Fatalf("GetLeaderboard(%+v): err = %v, want ErrInvalidScope", scope, err)
		}
		if _, err := e.GetRank(ctx, "student-a", scope); !errors.Is(err, ErrInvalidScope) {
			t.Fatalf("GetRank(%+v): err = %v, want ErrInvalidScope", scope, err)
		}
	}
}
