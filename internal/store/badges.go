package store

import (
	"context"
	"fmt"

	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/scanner"
)

// BadgeStore lit les définitions de badges du catalogue
type BadgeStore struct{}

func (BadgeStore) List(ctx context.Context) ([]model.Badge, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			id, name, description, icon, rarity, points,
			criteria_type, criteria_value, COALESCE(criteria_category,''),
			is_active, created_at, updated_at
		FROM badges
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("could not query badges: %w", err)
	}
	defer rows.Close()

	var badges []model.Badge
	for rows.Next() {
		b, err := scanner.ScanBadge(rows)
		if err != nil {
			return nil, err
		}
		badges = append(badges, *b)
	}
	return badges, rows.Err()
}
