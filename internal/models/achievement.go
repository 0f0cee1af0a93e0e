package model

import (
	"time"
)

// Statuts du cycle de vie d'une réalisation
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Niveaux de classification, du plus local au plus prestigieux
const (
	LevelCollege       = "college"
	LevelDepartment    = "department"
	LevelState         = "state"
	LevelNational      = "national"
	LevelInternational = "international"
)

type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        time.Time  `json:"date"`
	Level       string     `json:"level"` // college, department, state, national, international
	CategoryID  string     `json:"categoryId"`
	Status      string     `json:"status"` // pending, approved, rejected
	StudentID   string     `json:"studentId"`
	Department  string     `json:"department,omitempty"`
	Remarks     string     `json:"remarks,omitempty"`
	VerifiedBy  *string    `json:"verifiedBy,omitempty"`
	VerifiedAt  *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"` // academic, sports, technical, cultural, other
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
