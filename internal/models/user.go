package model

import (
	"time"
)

// Roles disponibles pour un utilisateur
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
)

type UserProfile struct {
	ID               string    `json:"id,omitempty"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"` // student, admin, faculty
	Department       string    `json:"department,omitempty"`
	EnrollmentNumber string    `json:"enrollmentNumber,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty"`
}

// ScopeAttributes regroupe les attributs qui servent à partitionner les classements
type ScopeAttributes struct {
	Department string `json:"department,omitempty"`
}

type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
