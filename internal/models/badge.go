package model

import (
	"time"
)

// Raretés de badge, de la plus commune à la plus rare
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Types de critère de déblocage d'un badge
const (
	CriteriaAchievementCount = "achievement_count"
	CriteriaPoints           = "points"
	CriteriaLevel            = "level"
	CriteriaCategory         = "category"
)

// BadgeCriteria est le critère de déblocage d'un badge.
// CategoryID n'est renseigné que pour le type "category".
type BadgeCriteria struct {
	Type       string `json:"type"`
	Value      int    `json:"value"`
	CategoryID string `json:"categoryId,omitempty"`
}

type Badge struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Rarity      string        `json:"rarity"`
	Points      int           `json:"points"` // points bonus accordés au déblocage
	Criteria    BadgeCriteria `json:"criteria"`
	IsActive    bool          `json:"isActive"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
