package gamification

import (
	"testing"

	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

func TestPointsFor_ApprovedTiers(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{model.LevelCollege, 10},
		{model.LevelDepartment, 20},
		{model.LevelState, 50},
		{model.LevelNational, 100},
		{model.LevelInternational, 200},
	}
	for _, tt := range tests {
		a := model.Achievement{Level: tt.level, Status: model.StatusApproved}
		if got := PointsFor(a); got != tt.want {
			t.Fatalf("PointsFor(%s) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestPointsFor_StrictlyIncreasingByTier(t *testing.T) {
	tiers := []string{
		model.LevelCollege, model.LevelDepartment, model.LevelState,
		model.LevelNational, model.LevelInternational,
	}
	prev := 0
	for _, tier := range tiers {
		points := PointsFor(model.Achievement{Level: tier, Status: model.StatusApproved})
		if points <= prev {
			t.Fatalf("points for %s = %d, not above previous tier value %d", tier, points, prev)
		}
		prev = points
	}
}

func TestPointsFor_NonApprovedIsZero(t *testing.T) {
	for _, status := range []string{model.StatusPending, model.StatusRejected} {
		a := model.Achievement{Level: model.LevelInternational, Status: status}
		if got := PointsFor(a); got != 0 {
			t.Fatalf("PointsFor(status=%s) = %d, want 0", status, got)
		}
	}
}

func TestPointsFor_UnknownTierDefaults(t *testing.T) {
	a := model.Achievement{Level: "galactic", Status: model.StatusApproved}
	if got := PointsFor(a); got != 10 {
		t.Fatalf("PointsFor(unknown tier) = %d, want 10", got)
	}
}
