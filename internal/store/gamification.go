package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/scanner"
)

// GamificationStore persiste l'agrégat de progression, un par étudiant
type GamificationStore struct{}

func (GamificationStore) Get(ctx context.Context, userID string) (*model.Gamification, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT
			id, user_id, total_points, current_level, points_to_next_level,
			badges, approved_count, pending_count, rejected_count,
			last_updated, created_at, updated_at
		FROM gamification
		WHERE user_id = $1
	`, userID)

	g, err := scanner.ScanGamification(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query gamification record: %w", err)
	}
	return g, nil
}

func (GamificationStore) Save(ctx context.Context, g *model.Gamification) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	_, err := database.DB.Exec(ctx, `
		INSERT INTO gamification(
			id, user_id, total_points, current_level, points_to_next_level,
			badges, approved_count, pending_count, rejected_count,
			last_updated, created_at, updated_at
		)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			total_points = EXCLUDED.total_points,
			current_level = EXCLUDED.current_level,
			points_to_next_level = EXCLUDED.points_to_next_level,
			badges = EXCLUDED.badges,
			approved_count = EXCLUDED.approved_count,
			pending_count = EXCLUDED.pending_count,
			rejected_count = EXCLUDED.rejected_count,
			last_updated = EXCLUDED.last_updated,
			updated_at = NOW()
	`, g.ID, g.UserID, g.TotalPoints, g.CurrentLevel, g.PointsToNextLevel,
		pq.Array(g.Badges), g.AchievementsCount.Approved, g.AchievementsCount.Pending,
		g.AchievementsCount.Rejected, g.LastUpdated)
	if err != nil {
		return fmt.Errorf("could not save gamification record: %w", err)
	}
	return nil
}
