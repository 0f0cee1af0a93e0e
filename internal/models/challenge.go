package model

import (
	"time"
)

// Types de challenge
const (
	ChallengeAchievementCount = "achievement_count"
	ChallengePoints           = "points"
)

type Challenge struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"` // achievement_count, points
	Target       int       `json:"target"`
	RewardPoints int       `json:"rewardPoints"`
	BadgeID      *string   `json:"badgeId,omitempty"`    // badge récompense optionnel
	CategoryID   *string   `json:"categoryId,omitempty"` // filtre catégorie optionnel
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsOpen indique si le challenge accepte des participants à l'instant donné
func (c *Challenge) IsOpen(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartDate) && !now.After(c.EndDate)
}

// ChallengeParticipant est l'état d'un participant pour un challenge.
// completed est définitif : une fois vrai, la progression ne régresse plus.
type ChallengeParticipant struct {
	ChallengeID string     `json:"challengeId"`
	UserID      string     `json:"userId"`
	Progress    int        `json:"progress"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	JoinedAt    time.Time  `json:"joinedAt"`
}

// Participation joint l'état d'un participant aux données de son challenge,
// pour le recalcul des récompenses
type Participation struct {
	ChallengeParticipant
	RewardPoints int     `json:"rewardPoints"`
	BadgeID      *string `json:"badgeId,omitempty"`
}

// ChallengeWithProgress est la vue renvoyée par l'API challenges :
// la progression est calculée même pour les non-participants
type ChallengeWithProgress struct {
	Challenge
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
	Joined    bool `json:"joined"`
}
