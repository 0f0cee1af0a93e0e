package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

// LeaderboardStore persiste les entrées de classement par portée
type LeaderboardStore struct{}

func (LeaderboardStore) Upsert(ctx context.Context, entry *model.LeaderboardEntry) error {
	_, err := database.DB.Exec(ctx, `
		INSERT INTO leaderboard_entries(user_id, scope_type, scope_value, total_points, level, rank, updated_at)
		VALUES($1, $2, $3, $4, $5, 0, $6)
		ON CONFLICT (user_id, scope_type, scope_value) DO UPDATE SET
			total_points = EXCLUDED.total_points,
			level = EXCLUDED.level,
			updated_at = EXCLUDED.updated_at
	`, entry.UserID, entry.Scope.Type, entry.Scope.Value, entry.TotalPoints, entry.Level, entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not upsert leaderboard entry: %w", err)
	}
	return nil
}

func (LeaderboardStore) ListScope(ctx context.Context, scope model.Scope) ([]model.LeaderboardEntry, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT user_id, total_points, level, rank, updated_at
		FROM leaderboard_entries
		WHERE scope_type = $1 AND scope_value = $2
	`, scope.Type, scope.Value)
	if err != nil {
		return nil, fmt.Errorf("could not query leaderboard scope: %w", err)
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		entry := model.LeaderboardEntry{Scope: scope}
		if err := rows.Scan(&entry.UserID, &entry.TotalPoints, &entry.Level, &entry.Rank, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("could not scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// SaveRanks réécrit les rangs d'une portée entière après un tri complet
func (LeaderboardStore) SaveRanks(ctx context.Context, scope model.Scope, entries []model.LeaderboardEntry) error {
	for _, entry := range entries {
		_, err := database.DB.Exec(ctx, `
			UPDATE leaderboard_entries
			SET rank = $4
			WHERE user_id = $1 AND scope_type = $2 AND scope_value = $3
		`, entry.UserID, scope.Type, scope.Value, entry.Rank)
		if err != nil {
			return fmt.Errorf("could not update rank: %w", err)
		}
	}
	return nil
}

func (LeaderboardStore) GetEntry(ctx context.Context, userID string, scope model.Scope) (*model.LeaderboardEntry, error) {
	entry := model.LeaderboardEntry{Scope: scope}
	err := database.DB.QueryRow(ctx, `
		SELECT user_id, total_points, level, rank, updated_at
		FROM leaderboard_entries
		WHERE user_id = $1 AND scope_type = $2 AND scope_value = $3
	`, userID, scope.Type, scope.Value).Scan(
		&entry.UserID, &entry.TotalPoints, &entry.Level, &entry.Rank, &entry.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query leaderboard entry: %w", err)
	}
	return &entry, nil
}

func (LeaderboardStore) CountScope(ctx context.Context, scope model.Scope) (int, error) {
	var count int
	err := database.DB.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM leaderboard_entries
		WHERE scope_type = $1 AND scope_value = $2
	`, scope.Type, scope.Value).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("could not count leaderboard scope: %w", err)
	}
	return count, nil
}

// ListTop retourne les entrées triées par rang, enrichies du nom et du
// département de l'étudiant
func (LeaderboardStore) ListTop(ctx context.Context, scope model.Scope, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			le.user_id, u.name, COALESCE(u.department,''),
			le.total_points, le.level, le.rank, le.updated_at
		FROM leaderboard_entries le
		INNER JOIN users u ON u.id = le.user_id
		WHERE le.scope_type = $1 AND le.scope_value = $2
		ORDER BY le.rank ASC
		LIMIT $3
	`, scope.Type, scope.Value, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		entry := model.LeaderboardEntry{Scope: scope}
		if err := rows.Scan(
			&entry.UserID, &entry.UserName, &entry.Department,
			&entry.TotalPoints, &entry.Level, &entry.Rank, &entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("could not scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
