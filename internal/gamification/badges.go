package gamification

import (
	"sort"

	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

// evaluateBadges retourne les badges actifs nouvellement débloqués pour l'état
// courant. L'évaluation est idempotente (un badge détenu est ignoré) et
// déterministe : les définitions sont parcourues par ID croissant.
func evaluateBadges(defs []model.Badge, held []string, totalPoints, level, approvedCount int, categoryCounts map[string]int) []string {
	sorted := append([]model.Badge(nil), defs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var unlocked []string
	for _, badge := range sorted {
		if !badge.IsActive || contains(held, badge.ID) {
			continue
		}
		if badgeSatisfied(badge, totalPoints, level, approvedCount, categoryCounts) {
			unlocked = append(unlocked, badge.ID)
		}
	}
	return unlocked
}

func badgeSatisfied(badge model.Badge, totalPoints, level, approvedCount int, categoryCounts map[string]int) bool {
	switch badge.Criteria.Type {
	case model.CriteriaAchievementCount:
		return approvedCount >= badge.Criteria.Value
	case model.CriteriaPoints:
		return totalPoints >= badge.Criteria.Value
	case model.CriteriaLevel:
		return level >= badge.Criteria.Value
	case model.CriteriaCategory:
		threshold := badge.Criteria.Value
		if threshold <= 0 {
			threshold = 1
		}
		return categoryCounts[badge.Criteria.CategoryID] >= threshold
	}
	return false
}
