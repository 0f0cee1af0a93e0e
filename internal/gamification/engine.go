package gamification

import (
	"context"
	"errors"
	"sync"
	"time"

	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

// Erreurs exposées aux handlers, mappées sur les statuts HTTP
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyJoined   = errors.New("already joined this challenge")
	ErrChallengeWindow = errors.New("challenge is not active")
	ErrBadgeCascade    = errors.New("badge cascade did not stabilize, check badge criteria")
)

// AchievementStore lit les réalisations (collaborateur externe, lecture seule)
type AchievementStore interface {
	ListByStudent(ctx context.Context, studentID string) ([]model.Achievement, error)
	CountApprovedInWindow(ctx context.Context, studentID, categoryID string, from, to time.Time) (int, error)
}

// UserStore fournit les attributs de portée d'un étudiant
type UserStore interface {
	ScopeAttributes(ctx context.Context, userID string) (model.ScopeAttributes, error)
}

// BadgeStore lit les définitions de badges du catalogue
type BadgeStore interface {
	List(ctx context.Context) ([]model.Badge, error)
}

// ChallengeStore lit les challenges et gère leurs participants
type ChallengeStore interface {
	ListActive(ctx context.Context, now time.Time) ([]model.Challenge, error)
	Get(ctx context.Context, challengeID string) (*model.Challenge, error)
	AddParticipant(ctx context.Context, challengeID, userID string, joinedAt time.Time) error
	GetParticipant(ctx context.Context, challengeID, userID string) (*model.ChallengeParticipant, error)
	SaveParticipant(ctx context.Context, p *model.ChallengeParticipant) error
	ListParticipations(ctx context.Context, userID string) ([]model.Participation, error)
}

// GamificationStore persiste l'agrégat de progression (propriété du moteur)
type GamificationStore interface {
	Get(ctx context.Context, userID string) (*model.Gamification, error)
	Save(ctx context.Context, g *model.Gamification) error
}

// LeaderboardStore persiste les classements (propriété du moteur)
type LeaderboardStore interface {
	Upsert(ctx context.Context, entry *model.LeaderboardEntry) error
	ListScope(ctx context.Context, scope model.Scope) ([]model.LeaderboardEntry, error)
	SaveRanks(ctx context.Context, scope model.Scope, entries []model.LeaderboardEntry) error
	GetEntry(ctx context.Context, userID string, scope model.Scope) (*model.LeaderboardEntry, error)
	CountScope(ctx context.Context, scope model.Scope) (int, error)
	ListTop(ctx context.Context, scope model.Scope, limit int) ([]model.LeaderboardEntry, error)
}

// Engine orchestre la cascade approbation → recalcul → badges → challenges → classements.
// Tout est recalculé depuis les données source à chaque événement : jamais de
// delta incrémental, donc pas de dérive entre état dérivé et état source.
type Engine struct {
	achievements AchievementStore
	users        UserStore
	badges       BadgeStore
	challenges   ChallengeStore
	gamification GamificationStore
	leaderboard  LeaderboardStore

	levels LevelTable

	ownerLocks       keyedMutex // sérialise les recalculs par étudiant
	scopeLocks       keyedMutex // sérialise les recalculs de rang par portée
	participantLocks keyedMutex // sérialise les mises à jour par (challenge, étudiant)

	now func() time.Time
}

func NewEngine(
	achievements AchievementStore,
	users UserStore,
	badges BadgeStore,
	challenges ChallengeStore,
	gamification GamificationStore,
	leaderboard LeaderboardStore,
	levels LevelTable,
) *Engine {
	return &Engine{
		achievements: achievements,
		users:        users,
		badges:       badges,
		challenges:   challenges,
		gamification: gamification,
		leaderboard:  leaderboard,
		levels:       levels,
		now:          time.Now,
	}
}

// keyedMutex fournit un verrou par clé, sans verrou global
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) *sync.Mutex {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l
}
