package gamification

import (
	"reflect"
	"testing"

	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

func TestEvaluateBadges_OrderedByID(t *testing.T) {
	defs := []model.Badge{
		{ID: "c", IsActive: true, Criteria: model.BadgeCriteria{Type: model.CriteriaPoints, Value: 10}},
		{ID: "a", IsActive: true, Criteria: model.BadgeCriteria{Type: model.CriteriaPoints, Value: 10}},
		{ID: "b", IsActive: true, Criteria: model.BadgeCriteria{Type: model.CriteriaPoints, Value: 10}},
	}

	got := evaluateBadges(defs, nil, 50, 1, 0, nil)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unlocked = %v, want %v", got, want)
	}
}

func TestEvaluateBadges_SkipsHeldAndInactive(t *testing.T) {
	defs := []model.Badge{
		{ID: "held", IsActive: true, Criteria: model.BadgeCriteria{Type: model.CriteriaPoints, Value: 10}},
		{ID: "inactive", IsActive: false, Criteria: model.BadgeCriteria{Type: model.CriteriaPoints, Value: 10}},
		{ID: "new", IsActive: true, Criteria: model.BadgeCriteria{Type: model.CriteriaPoints, Value: 10}},
	}

	got := evaluateBadges(defs, []string{"held"}, 50, 1, 0, nil)
	want := []string{"new"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unlocked = %v, want %v", got, want)
	}
}

func TestBadgeSatisfied(t *testing.T) {
	categoryCounts := map[string]int{"cat-sports": 3}

	tests := []struct {
		name     string
		criteria model.BadgeCriteria
		want     bool
	}{
		{"count reached", model.BadgeCriteria{Type: model.CriteriaAchievementCount, Value: 5}, true},
		{"count not reached", model.BadgeCriteria{Type: model.CriteriaAchievementCount, Value: 6}, false},
		{"points reached", model.BadgeCriteria{Type: model.CriteriaPoints, Value: 120}, true},
		{"points not reached", model.BadgeCriteria{Type: model.CriteriaPoints, Value: 121}, false},
		{"level reached", model.BadgeCriteria{Type: model.CriteriaLevel, Value: 2}, true},
		{"level not reached", model.BadgeCriteria{Type: model.CriteriaLevel, Value: 3}, false},
		{"category reached", model.BadgeCriteria{Type: model.CriteriaCategory, CategoryID: "cat-sports", Value: 3}, true},
		{"category not reached", model.BadgeCriteria{Type: model.CriteriaCategory, CategoryID: "cat-sports", Value: 4}, false},
		{"category default threshold", model.BadgeCriteria{Type: model.CriteriaCategory, CategoryID: "cat-sports"}, true},
		{"category unknown", model.BadgeCriteria{Type: model.CriteriaCategory, CategoryID: "cat-music", Value: 1}, false},
		{"unknown type", model.BadgeCriteria{Type: "streak", Value: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badge := model.Badge{ID: "b", IsActive: true, Criteria: tt.criteria}
			if got := badgeSatisfied(badge, 120, 2, 5, categoryCounts); got != tt.want {
				t.Fatalf("badgeSatisfied = %v, want %v", got, tt.want)
			}
		})
	}
}
