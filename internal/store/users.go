package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

// UserStore fournit les attributs de portée des étudiants
type UserStore struct{}

func (UserStore) ScopeAttributes(ctx context.Context, userID string) (model.ScopeAttributes, error) {
	var attrs model.ScopeAttributes
	err := database.DB.QueryRow(ctx, `
		SELECT COALESCE(department,'')
		FROM users
		WHERE id = $1
	`, userID).Scan(&attrs.Department)
	if errors.Is(err, pgx.ErrNoRows) {
		// Étudiant inconnu : portée globale uniquement
		return model.ScopeAttributes{}, nil
	}
	if err != nil {
		return attrs, fmt.Errorf("could not query user: %w", err)
	}
	return attrs, nil
}
