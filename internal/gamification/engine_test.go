package gamification

import (
	"context"
	"sort"
	"sync"
	"time"

	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

// fakeStore implémente tous les stores du moteur en mémoire pour les tests.
// Protégé par un mutex : le moteur est exercé en concurrence, les doublures
// doivent être aussi sûres que le vrai store PostgreSQL.
type fakeStore struct {
	mu           sync.Mutex
	achievements map[string][]model.Achievement
	scopes       map[string]model.ScopeAttributes
	badges       []model.Badge
	challenges   []model.Challenge
	participants map[string]*model.ChallengeParticipant
	records      map[string]*model.Gamification
	entries      map[string]*model.LeaderboardEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		achievements: map[string][]model.Achievement{},
		scopes:       map[string]model.ScopeAttributes{},
		participants: map[string]*model.ChallengeParticipant{},
		records:      map[string]*model.Gamification{},
		entries:      map[string]*model.LeaderboardEntry{},
	}
}

func (f *fakeStore) ListByStudent(_ context.Context, studentID string) ([]model.Achievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Achievement(nil), f.achievements[studentID]...), nil
}

func (f *fakeStore) CountApprovedInWindow(_ context.Context, studentID, categoryID string, from, to time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, a := range f.achievements[studentID] {
		if a.Status != model.StatusApproved {
			continue
		}
		if categoryID != "" && a.CategoryID != categoryID {
			continue
		}
		if a.Date.Before(from) || a.Date.After(to) {
			continue
		}
		count++
	}
	return count, nil
}

func (f *fakeStore) ScopeAttributes(_ context.Context, userID string) (model.ScopeAttributes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.scopes[userID], nil
}

func (f *fakeStore) List(_ context.Context) ([]model.Badge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Badge(nil), f.badges...), nil
}

func (f *fakeStore) ListActive(_ context.Context, now time.Time) ([]model.Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var active []model.Challenge
	for _, c := range f.challenges {
		if c.IsOpen(now) {
			active = append(active, c)
		}
	}
	return active, nil
}

func (f *fakeStore) Get(_ context.Context, challengeID string) (*model.Challenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.challenges {
		if c.ID == challengeID {
			copied := c
			return &copied, nil
		}
	}
	return nil, nil
}

func participantKey(challengeID, userID string) string {
	return challengeID + ":" + userID
}

func (f *fakeStore) AddParticipant(_ context.Context, challengeID, userID string, joinedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.participants[participantKey(challengeID, userID)] = &model.ChallengeParticipant{
		ChallengeID: challengeID,
		UserID:      userID,
		JoinedAt:    joinedAt,
	}
	return nil
}

func (f *fakeStore) GetParticipant(_ context.Context, challengeID, userID string) (*model.ChallengeParticipant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.participants[participantKey(challengeID, userID)]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeStore) SaveParticipant(_ context.Context, p *model.ChallengeParticipant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *p
	f.participants[participantKey(p.ChallengeID, p.UserID)] = &copied
	return nil
}

func (f *fakeStore) ListParticipations(_ context.Context, userID string) ([]model.Participation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var participations []model.Participation
	for _, p := range f.participants {
		if p.UserID != userID {
			continue
		}
		participation := model.Participation{ChallengeParticipant: *p}
		for _, c := range f.challenges {
			if c.ID == p.ChallengeID {
				participation.RewardPoints = c.RewardPoints
				participation.BadgeID = c.BadgeID
			}
		}
		participations = append(participations, participation)
	}
	return participations, nil
}

func (f *fakeStore) entryKey(userID string, scope model.Scope) string {
	return userID + "|" + scope.Key()
}

func (f *fakeStore) Upsert(_ context.Context, entry *model.LeaderboardEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := f.entryKey(entry.UserID, entry.Scope)
	if existing, ok := f.entries[key]; ok {
		existing.TotalPoints = entry.TotalPoints
		existing.Level = entry.Level
		existing.UpdatedAt = entry.UpdatedAt
		return nil
	}
	copied := *entry
	f.entries[key] = &copied
	return nil
}

func (f *fakeStore) listScopeLocked(scope model.Scope) []model.LeaderboardEntry {
	var entries []model.LeaderboardEntry
	for _, e := range f.entries {
		if e.Scope == scope {
			entries = append(entries, *e)
		}
	}
	return entries
}

func (f *fakeStore) ListScope(_ context.Context, scope model.Scope) ([]model.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listScopeLocked(scope), nil
}

func (f *fakeStore) SaveRanks(_ context.Context, scope model.Scope, entries []model.LeaderboardEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range entries {
		if stored, ok := f.entries[f.entryKey(e.UserID, scope)]; ok {
			stored.Rank = e.Rank
		}
	}
	return nil
}

func (f *fakeStore) GetEntry(_ context.Context, userID string, scope model.Scope) (*model.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[f.entryKey(userID, scope)]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (f *fakeStore) CountScope(_ context.Context, scope model.Scope) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, e := range f.entries {
		if e.Scope == scope {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) ListTop(_ context.Context, scope model.Scope, limit int) ([]model.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := f.listScopeLocked(scope)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Rank < entries[j].Rank })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// fakeGamificationStore sépare l'agrégat de progression pour satisfaire
// l'interface GamificationStore (Get a une signature distincte du ChallengeStore)
type fakeGamificationStore struct {
	store *fakeStore
}

func (f fakeGamificationStore) Get(_ context.Context, userID string) (*model.Gamification, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	g, ok := f.store.records[userID]
	if !ok {
		return nil, nil
	}
	copied := *g
	copied.Badges = append([]string(nil), g.Badges...)
	return &copied, nil
}

func (f fakeGamificationStore) Save(_ context.Context, g *model.Gamification) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	copied := *g
	copied.Badges = append([]string(nil), g.Badges...)
	f.store.records[g.UserID] = &copied
	return nil
}

func newTestEngine(f *fakeStore) *Engine {
	e := NewEngine(f, f, f, f, fakeGamificationStore{store: f}, f, DefaultLevelTable)
	e.SetClock(func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) })
	return e
}

func approved(studentID, categoryID, level string, date time.Time) model.Achievement {
	return model.Achievement{
		StudentID:  studentID,
		CategoryID: categoryID,
		Level:      level,
		Status:     model.StatusApproved,
		Date:       date,
	}
}
