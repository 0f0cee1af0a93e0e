package scanner

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"
)

// rowScanner accepte indifféremment pgx.Row et pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanAchievement scanne une ligne SQL vers un Achievement
func ScanAchievement(row rowScanner) (*model.Achievement, error) {
	var a model.Achievement
	var verifiedBy sql.NullString
	var verifiedAt sql.NullTime

	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Date, &a.Level, &a.CategoryID,
		&a.Status, &a.StudentID, &a.Department, &a.Remarks,
		&verifiedBy, &verifiedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.VerifiedBy = utils.NullStringToPointer(verifiedBy)
	a.VerifiedAt = utils.NullTimeToPointer(verifiedAt)

	return &a, nil
}

// ScanCategory scanne une ligne SQL vers une Category
func ScanCategory(row rowScanner) (*model.Category, error) {
	var c model.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Type, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ScanBadge scanne une ligne SQL vers un Badge
func ScanBadge(row rowScanner) (*model.Badge, error) {
	var b model.Badge
	err := row.Scan(
		&b.ID, &b.Name, &b.Description, &b.Icon, &b.Rarity, &b.Points,
		&b.Criteria.Type, &b.Criteria.Value, &b.Criteria.CategoryID,
		&b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ScanChallenge scanne une ligne SQL vers un Challenge
func ScanChallenge(row rowScanner) (*model.Challenge, error) {
	var c model.Challenge
	var badgeID, categoryID sql.NullString

	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Type, &c.Target, &c.RewardPoints,
		&badgeID, &categoryID, &c.StartDate, &c.EndDate, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.BadgeID = utils.NullStringToPointer(badgeID)
	c.CategoryID = utils.NullStringToPointer(categoryID)

	return &c, nil
}

// ScanChallengeParticipant scanne une ligne SQL vers un ChallengeParticipant
func ScanChallengeParticipant(row rowScanner) (*model.ChallengeParticipant, error) {
	var p model.ChallengeParticipant
	var completedAt sql.NullTime

	err := row.Scan(&p.ChallengeID, &p.UserID, &p.Progress, &p.Completed, &completedAt, &p.JoinedAt)
	if err != nil {
		return nil, err
	}

	p.CompletedAt = utils.NullTimeToPointer(completedAt)

	return &p, nil
}

// ScanGamification scanne une ligne SQL vers un Gamification.
// Les badges sont stockés en text[], scannés via pq.Array.
func ScanGamification(row rowScanner) (*model.Gamification, error) {
	var g model.Gamification
	var badges []string

	err := row.Scan(
		&g.ID, &g.UserID, &g.TotalPoints, &g.CurrentLevel, &g.PointsToNextLevel,
		pq.Array(&badges), &g.AchievementsCount.Approved, &g.AchievementsCount.Pending,
		&g.AchievementsCount.Rejected, &g.LastUpdated, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if badges == nil {
		badges = []string{}
	}
	g.Badges = badges

	return &g, nil
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile
func ScanUserProfile(row rowScanner) (*model.UserProfile, error) {
	var u model.UserProfile
	var department, enrollment sql.NullString

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &department, &enrollment,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("could not scan user: %w", err)
	}

	u.Department = utils.NullStringToString(department)
	u.EnrollmentNumber = utils.NullStringToString(enrollment)

	return &u, nil
}
