package gamification

import (
	"context"
	"fmt"

	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

// GetStats retourne l'agrégat de progression d'un étudiant, créé à la volée
// s'il n'existe pas encore. L'agrégat est recalculé depuis les données source
// à chaque lecture, comme pour un événement d'approbation.
func (e *Engine) GetStats(ctx context.Context, userID string) (*model.Gamification, error) {
	l := e.ownerLocks.lock(userID)
	defer l.Unlock()

	return e.recompute(ctx, userID)
}

// OnAchievementApproved est la notification entrante du magasin de réalisations.
// Elle déroule toute la cascade de façon synchrone : recalcul de progression,
// badges, challenges actifs, classements. Une erreur interrompt la cascade
// entière ; le recalcul repartant toujours des données source, l'appelant peut
// rejouer l'événement sans double comptage.
func (e *Engine) OnAchievementApproved(ctx context.Context, userID string) error {
	l := e.ownerLocks.lock(userID)
	defer l.Unlock()

	if _, err := e.recompute(ctx, userID); err != nil {
		return err
	}

	// Mettre à jour la progression de tous les challenges actifs
	now := e.now()
	challenges, err := e.challenges.ListActive(ctx, now)
	if err != nil {
		return fmt.Errorf("could not list active challenges: %w", err)
	}

	completedAny := false
	for _, challenge := range challenges {
		completedNow, err := e.updateChallengeProgress(ctx, challenge, userID)
		if err != nil {
			return err
		}
		if completedNow {
			completedAny = true
		}
	}

	// Les récompenses des challenges complétés sont intégrées par un second
	// passage de recalcul, toujours depuis les données source
	if completedAny {
		if _, err := e.recompute(ctx, userID); err != nil {
			return err
		}
	}

	return nil
}

// recompute recalcule totalPoints, niveau, badges et compteurs depuis les
// réalisations, les badges détenus et les challenges complétés, puis persiste
// l'agrégat et déclenche la mise à jour des classements. L'appelant doit
// détenir le verrou de l'étudiant.
func (e *Engine) recompute(ctx context.Context, userID string) (*model.Gamification, error) {
	achievements, err := e.achievements.ListByStudent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list achievements: %w", err)
	}

	var counts model.AchievementsCount
	basePoints := 0
	categoryCounts := map[string]int{}
	for _, a := range achievements {
		switch a.Status {
		case model.StatusApproved:
			counts.Approved++
			basePoints += PointsFor(a)
			categoryCounts[a.CategoryID]++
		case model.StatusPending:
			counts.Pending++
		default:
			counts.Rejected++
		}
	}

	g, err := e.gamification.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not load gamification record: %w", err)
	}
	if g == nil {
		g = &model.Gamification{
			UserID:       userID,
			CurrentLevel: 1,
		}
	}

	// Récompenses des challenges complétés, relues depuis les participations
	participations, err := e.challenges.ListParticipations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list participations: %w", err)
	}
	rewardPoints := 0
	held := append([]string(nil), g.Badges...)
	for _, p := range participations {
		if !p.Completed {
			continue
		}
		rewardPoints += p.RewardPoints
		if p.BadgeID != nil && !contains(held, *p.BadgeID) {
			held = append(held, *p.BadgeID)
		}
	}

	badgeDefs, err := e.badges.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list badges: %w", err)
	}
	badgePoints := map[string]int{}
	for _, b := range badgeDefs {
		badgePoints[b.ID] = b.Points
	}

	// Les points de badge peuvent faire franchir un niveau qui débloque
	// d'autres badges : on boucle jusqu'à stabilisation, bornée par le nombre
	// de badges définis. Dépasser la borne est une erreur de configuration.
	total := 0
	level := 1
	maxPasses := len(badgeDefs) + 1
	for pass := 0; ; pass++ {
		if pass > maxPasses {
			return nil, ErrBadgeCascade
		}

		total = basePoints + rewardPoints
		for _, id := range held {
			total += badgePoints[id]
		}
		level = e.levels.LevelFor(total)

		unlocked := evaluateBadges(badgeDefs, held, total, level, counts.Approved, categoryCounts)
		if len(unlocked) == 0 {
			break
		}
		held = append(held, unlocked...)
	}

	g.TotalPoints = total
	g.CurrentLevel = level
	g.PointsToNextLevel = e.levels.PointsToNext(total)
	g.Badges = held
	g.AchievementsCount = counts
	g.LastUpdated = e.now()

	if err := e.gamification.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("could not save gamification record: %w", err)
	}

	if err := e.updateLeaderboards(ctx, userID, g); err != nil {
		return nil, err
	}

	return g, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
