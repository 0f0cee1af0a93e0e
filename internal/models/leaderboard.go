package model

import (
	"time"
)

// Types de portée d'un classement
const (
	ScopeGlobal     = "global"
	ScopeDepartment = "department"
)

// Scope identifie une partition de classement.
// Value est vide pour la portée globale.
type Scope struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

func GlobalScope() Scope {
	return Scope{Type: ScopeGlobal}
}

func DepartmentScope(department string) Scope {
	return Scope{Type: ScopeDepartment, Value: department}
}

// Key retourne une clé stable pour sérialiser les recalculs par portée
func (s Scope) Key() string {
	if s.Value == "" {
		return s.Type
	}
	return s.Type + ":" + s.Value
}

// LeaderboardEntry est une ligne de classement. Le couple (UserID, Scope) est
// unique ; Rank est réattribué en bloc à chaque recalcul, jamais incrémenté.
type LeaderboardEntry struct {
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName,omitempty"`
	Department  string    `json:"department,omitempty"`
	TotalPoints int       `json:"totalPoints"`
	Level       int       `json:"level"`
	Rank        int       `json:"rank"`
	Scope       Scope     `json:"scope"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserRank est la réponse de l'API rank
type UserRank struct {
	Rank              int `json:"rank"`
	TotalPoints       int `json:"totalPoints"`
	Level             int `json:"level"`
	TotalParticipants int `json:"totalParticipants"`
}
