package gamification

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

// ErrInvalidScope signale une portée de classement inconnue
var ErrInvalidScope = errors.New("unknown leaderboard scope")

// ErrNotRanked signale que l'étudiant n'a pas d'entrée dans la portée demandée
var ErrNotRanked = errors.New("not ranked")

const defaultLeaderboardLimit = 100

// updateLeaderboards réécrit l'entrée de l'étudiant dans chacune de ses
// portées (globale, plus le département s'il est renseigné) puis recalcule
// tous les rangs des portées touchées
func (e *Engine) updateLeaderboards(ctx context.Context, userID string, g *model.Gamification) error {
	scopes, err := e.scopesFor(ctx, userID)
	if err != nil {
		return err
	}

	for _, scope := range scopes {
		entry := &model.LeaderboardEntry{
			UserID:      userID,
			TotalPoints: g.TotalPoints,
			Level:       g.CurrentLevel,
			Scope:       scope,
			UpdatedAt:   e.now(),
		}
		if err := e.leaderboard.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("could not upsert leaderboard entry: %w", err)
		}
		if err := e.recomputeRanks(ctx, scope); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) scopesFor(ctx context.Context, userID string) ([]model.Scope, error) {
	attrs, err := e.users.ScopeAttributes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not load scope attributes: %w", err)
	}

	scopes := []model.Scope{model.GlobalScope()}
	if attrs.Department != "" {
		scopes = append(scopes, model.DepartmentScope(attrs.Department))
	}
	return scopes, nil
}

// recomputeRanks retrie toute la portée et réattribue des rangs denses 1..N.
// Tri : points décroissants, niveau décroissant, puis ID étudiant croissant
// comme départage déterministe. Sérialisé par portée, les portées distinctes
// restent parallèles.
func (e *Engine) recomputeRanks(ctx context.Context, scope model.Scope) error {
	l := e.scopeLocks.lock(scope.Key())
	defer l.Unlock()

	entries, err := e.leaderboard.ListScope(ctx, scope)
	if err != nil {
		return fmt.Errorf("could not list leaderboard scope: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		if entries[i].Level != entries[j].Level {
			return entries[i].Level > entries[j].Level
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	if err := e.leaderboard.SaveRanks(ctx, scope, entries); err != nil {
		return fmt.Errorf("could not save ranks: %w", err)
	}
	return nil
}

// GetLeaderboard retourne les entrées d'une portée triées par rang croissant
func (e *Engine) GetLeaderboard(ctx context.Context, scope model.Scope, limit int) ([]model.LeaderboardEntry, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	entries, err := e.leaderboard.ListTop(ctx, scope, limit)
	if err != nil {
		return nil, fmt.Errorf("could not list leaderboard: %w", err)
	}
	return entries, nil
}

// GetRank retourne le rang de l'étudiant dans une portée et la taille de la
// population, ou ErrNotRanked s'il n'y a pas d'entrée
func (e *Engine) GetRank(ctx context.Context, userID string, scope model.Scope) (*model.UserRank, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	entry, err := e.leaderboard.GetEntry(ctx, userID, scope)
	if err != nil {
		return nil, fmt.Errorf("could not load leaderboard entry: %w", err)
	}
	if entry == nil {
		return nil, ErrNotRanked
	}

	total, err := e.leaderboard.CountScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("could not count leaderboard scope: %w", err)
	}

	return &model.UserRank{
		Rank:              entry.Rank,
		TotalPoints:       entry.TotalPoints,
		Level:             entry.Level,
		TotalParticipants: total,
	}, nil
}

func validateScope(scope model.Scope) error {
	switch scope.Type {
	case model.ScopeGlobal:
		return nil
	case model.ScopeDepartment:
		if scope.Value == "" {
			return ErrInvalidScope
		}
		return nil
	}
	return ErrInvalidScope
}

// SetClock remplace l'horloge du moteur, utilisé par les tests
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}
