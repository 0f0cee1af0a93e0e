package gamification

import (
	"context"
	"fmt"

	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

// ListChallengesWithProgress retourne les challenges actifs avec la progression
// de l'étudiant. Pour un participant, la progression stockée fait foi ; pour un
// non-participant elle est calculée à la volée, en lecture seule, sans jamais
// déclencher de complétion ni de récompense.
func (e *Engine) ListChallengesWithProgress(ctx context.Context, userID string) ([]model.ChallengeWithProgress, error) {
	now := e.now()
	challenges, err := e.challenges.ListActive(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("could not list active challenges: %w", err)
	}

	result := make([]model.ChallengeWithProgress, 0, len(challenges))
	for _, challenge := range challenges {
		view := model.ChallengeWithProgress{Challenge: challenge}

		participant, err := e.challenges.GetParticipant(ctx, challenge.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("could not load participant: %w", err)
		}
		if participant != nil {
			view.Joined = true
			view.Progress = participant.Progress
			view.Completed = participant.Completed
		} else {
			progress, err := e.computeMetric(ctx, challenge, userID)
			if err != nil {
				return nil, err
			}
			view.Progress = progress
		}
		result = append(result, view)
	}
	return result, nil
}

// JoinChallenge inscrit l'étudiant à un challenge. L'inscription n'est permise
// que dans la fenêtre [startDate, endDate] ; une double inscription est
// refusée. La progression est évaluée immédiatement : un étudiant qui remplit
// déjà l'objectif est complété (et récompensé) dès l'inscription.
func (e *Engine) JoinChallenge(ctx context.Context, challengeID, userID string) (*model.ChallengeParticipant, error) {
	challenge, err := e.challenges.Get(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("could not load challenge: %w", err)
	}
	if challenge == nil {
		return nil, ErrNotFound
	}
	if !challenge.IsOpen(e.now()) {
		return nil, ErrChallengeWindow
	}

	// Verrou étudiant avant verrou participant, même ordre que la cascade
	// d'approbation
	ol := e.ownerLocks.lock(userID)
	defer ol.Unlock()

	completedNow, err := e.joinAndTrack(ctx, challenge, userID)
	if err != nil {
		return nil, err
	}
	if completedNow {
		if _, err := e.recompute(ctx, userID); err != nil {
			return nil, err
		}
	}

	return e.challenges.GetParticipant(ctx, challengeID, userID)
}

func (e *Engine) joinAndTrack(ctx context.Context, challenge *model.Challenge, userID string) (bool, error) {
	pl := e.participantLocks.lock(challenge.ID + ":" + userID)
	defer pl.Unlock()

	existing, err := e.challenges.GetParticipant(ctx, challenge.ID, userID)
	if err != nil {
		return false, fmt.Errorf("could not load participant: %w", err)
	}
	if existing != nil {
		return false, ErrAlreadyJoined
	}

	if err := e.challenges.AddParticipant(ctx, challenge.ID, userID, e.now()); err != nil {
		return false, fmt.Errorf("could not add participant: %w", err)
	}

	return e.trackProgress(ctx, *challenge, userID)
}

// updateChallengeProgress recalcule la progression d'un participant. Les
// non-participants sont ignorés : seuls les inscrits reçoivent des récompenses.
// Retourne vrai si la complétion vient d'être franchie ; l'appelant doit alors
// repasser un recalcul de progression pour intégrer les récompenses.
func (e *Engine) updateChallengeProgress(ctx context.Context, challenge model.Challenge, userID string) (bool, error) {
	pl := e.participantLocks.lock(challenge.ID + ":" + userID)
	defer pl.Unlock()

	return e.trackProgress(ctx, challenge, userID)
}

// trackProgress applique la machine à états du participant. L'appelant doit
// détenir le verrou (challenge, étudiant).
func (e *Engine) trackProgress(ctx context.Context, challenge model.Challenge, userID string) (bool, error) {
	participant, err := e.challenges.GetParticipant(ctx, challenge.ID, userID)
	if err != nil {
		return false, fmt.Errorf("could not load participant: %w", err)
	}
	if participant == nil {
		return false, nil
	}

	progress, err := e.computeMetric(ctx, challenge, userID)
	if err != nil {
		return false, err
	}

	// La complétion est définitive : la progression ne régresse jamais une
	// fois le challenge complété
	if participant.Completed {
		if progress > participant.Progress {
			participant.Progress = progress
			if err := e.challenges.SaveParticipant(ctx, participant); err != nil {
				return false, fmt.Errorf("could not save participant: %w", err)
			}
		}
		return false, nil
	}

	changed := progress != participant.Progress
	participant.Progress = progress

	completedNow := false
	if participant.Progress >= challenge.Target && participant.CompletedAt == nil {
		now := e.now()
		participant.Completed = true
		participant.CompletedAt = &now
		completedNow = true
		changed = true
	}

	if changed {
		if err := e.challenges.SaveParticipant(ctx, participant); err != nil {
			return false, fmt.Errorf("could not save participant: %w", err)
		}
	}

	return completedNow, nil
}

// computeMetric calcule la métrique propre au type du challenge
func (e *Engine) computeMetric(ctx context.Context, challenge model.Challenge, userID string) (int, error) {
	switch challenge.Type {
	case model.ChallengeAchievementCount:
		categoryID := ""
		if challenge.CategoryID != nil {
			categoryID = *challenge.CategoryID
		}
		count, err := e.achievements.CountApprovedInWindow(ctx, userID, categoryID, challenge.StartDate, challenge.EndDate)
		if err != nil {
			return 0, fmt.Errorf("could not count achievements: %w", err)
		}
		return count, nil
	case model.ChallengePoints:
		g, err := e.gamification.Get(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("could not load gamification record: %w", err)
		}
		if g == nil {
			return 0, nil
		}
		return g.TotalPoints, nil
	}
	return 0, fmt.Errorf("unknown challenge type %q", challenge.Type)
}
