package model

import (
	"time"
)

// AchievementsCount compte les réalisations d'un étudiant par statut
type AchievementsCount struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

// Gamification est l'agrégat dérivé points/niveau/badges d'un étudiant.
// currentLevel et pointsToNextLevel sont toujours recalculés depuis totalPoints,
// jamais stockés indépendamment.
type Gamification struct {
	ID                string            `json:"id"`
	UserID            string            `json:"userId"`
	TotalPoints       int               `json:"totalPoints"`
	CurrentLevel      int               `json:"currentLevel"`
	PointsToNextLevel int               `json:"pointsToNextLevel"`
	Badges            []string          `json:"badges"` // IDs des badges débloqués
	AchievementsCount AchievementsCount `json:"achievementsCount"`
	LastUpdated       time.Time         `json:"lastUpdated"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// HasBadge indique si le badge est déjà débloqué
func (g *Gamification) HasBadge(badgeID string) bool {
	for _, id := range g.Badges {
		if id == badgeID {
			return true
		}
	}
	return false
}
