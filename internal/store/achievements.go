package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/scanner"
)

// AchievementStore lit les réalisations pour le moteur de gamification
type AchievementStore struct{}

func (AchievementStore) ListByStudent(ctx context.Context, studentID string) ([]model.Achievement, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			id, title, COALESCE(description,''), date, level, category_id,
			status, student_id, COALESCE(department,''), COALESCE(remarks,''),
			verified_by, verified_at, created_at, updated_at
		FROM achievements
		WHERE student_id = $1
		ORDER BY date DESC
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("could not query achievements: %w", err)
	}
	defer rows.Close()

	var achievements []model.Achievement
	for rows.Next() {
		a, err := scanner.ScanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, *a)
	}
	return achievements, rows.Err()
}

func (AchievementStore) CountApprovedInWindow(ctx context.Context, studentID, categoryID string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM achievements
		WHERE student_id = $1 AND status = 'approved' AND date >= $2 AND date <= $3
	`
	args := []interface{}{studentID, from, to}
	if categoryID != "" {
		query += ` AND category_id = $4`
		args = append(args, categoryID)
	}

	var count int
	if err := database.DB.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count achievements: %w", err)
	}
	return count, nil
}
