package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/scanner"
)

// ChallengeStore lit les challenges et gère leurs participants
type ChallengeStore struct{}

const challengeColumns = `
	id, title, description, type, target, reward_points, badge_id, category_id,
	start_date, end_date, is_active, created_at, updated_at
`

func (ChallengeStore) ListActive(ctx context.Context, now time.Time) ([]model.Challenge, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		WHERE is_active = true AND start_date <= $1 AND end_date >= $1
		ORDER BY start_date DESC
	`, now)
	if err != nil {
		return nil, fmt.Errorf("could not query challenges: %w", err)
	}
	defer rows.Close()

	var challenges []model.Challenge
	for rows.Next() {
		c, err := scanner.ScanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, *c)
	}
	return challenges, rows.Err()
}

func (ChallengeStore) Get(ctx context.Context, challengeID string) (*model.Challenge, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT `+challengeColumns+`
		FROM challenges
		WHERE id = $1
	`, challengeID)

	c, err := scanner.ScanChallenge(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query challenge: %w", err)
	}
	return c, nil
}

func (ChallengeStore) AddParticipant(ctx context.Context, challengeID, userID string, joinedAt time.Time) error {
	_, err := database.DB.Exec(ctx, `
		INSERT INTO challenge_participants(challenge_id, user_id, progress, completed, joined_at)
		VALUES($1, $2, 0, false, $3)
	`, challengeID, userID, joinedAt)
	if err != nil {
		return fmt.Errorf("could not insert participant: %w", err)
	}
	return nil
}

func (ChallengeStore) GetParticipant(ctx context.Context, challengeID, userID string) (*model.ChallengeParticipant, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT challenge_id, user_id, progress, completed, completed_at, joined_at
		FROM challenge_participants
		WHERE challenge_id = $1 AND user_id = $2
	`, challengeID, userID)

	p, err := scanner.ScanChallengeParticipant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query participant: %w", err)
	}
	return p, nil
}

func (ChallengeStore) SaveParticipant(ctx context.Context, p *model.ChallengeParticipant) error {
	_, err := database.DB.Exec(ctx, `
		UPDATE challenge_participants
		SET progress = $3, completed = $4, completed_at = $5
		WHERE challenge_id = $1 AND user_id = $2
	`, p.ChallengeID, p.UserID, p.Progress, p.Completed, p.CompletedAt)
	if err != nil {
		return fmt.Errorf("could not update participant: %w", err)
	}
	return nil
}

func (ChallengeStore) ListParticipations(ctx context.Context, userID string) ([]model.Participation, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			cp.challenge_id, cp.user_id, cp.progress, cp.completed,
			cp.completed_at, cp.joined_at, c.reward_points, c.badge_id
		FROM challenge_participants cp
		INNER JOIN challenges c ON c.id = cp.challenge_id
		WHERE cp.user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not query participations: %w", err)
	}
	defer rows.Close()

	var participations []model.Participation
	for rows.Next() {
		var p model.Participation
		if err := rows.Scan(
			&p.ChallengeID, &p.UserID, &p.Progress, &p.Completed,
			&p.CompletedAt, &p.JoinedAt, &p.RewardPoints, &p.BadgeID,
		); err != nil {
			return nil, fmt.Errorf("could not scan participation: %w", err)
		}
		participations = append(participations, p)
	}
	return participations, rows.Err()
}
