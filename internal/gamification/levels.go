package gamification

import (
	"fmt"
)

// LevelTable est la liste ordonnée des seuils de points par niveau.
// L'indice 0 correspond au niveau 1 (0 point).
type LevelTable []int

// DefaultLevelTable reprend les seuils du portail : 15 niveaux
var DefaultLevelTable = LevelTable{
	0,     // Niveau 1
	100,   // Niveau 2
	250,   // Niveau 3
	500,   // Niveau 4
	1000,  // Niveau 5
	2000,  // Niveau 6
	3500,  // Niveau 7
	5000,  // Niveau 8
	7500,  // Niveau 9
	10000, // Niveau 10
	15000, // Niveau 11
	20000, // Niveau 12
	30000, // Niveau 13
	40000, // Niveau 14
	50000, // Niveau 15
}

// NewLevelTable valide les seuils au chargement. Une table non monotone ou
// dont le premier seuil n'est pas 0 est une erreur de configuration fatale.
func NewLevelTable(thresholds []int) (LevelTable, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("level table is empty")
	}
	if thresholds[0] != 0 {
		return nil, fmt.Errorf("level table must start at 0, got %d", thresholds[0])
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] < thresholds[i-1] {
			return nil, fmt.Errorf("level table is not monotonic at index %d: %d < %d", i, thresholds[i], thresholds[i-1])
		}
	}
	return LevelTable(thresholds), nil
}

// LevelFor retourne le niveau (1-based) atteint avec totalPoints
func (t LevelTable) LevelFor(totalPoints int) int {
	level := 1
	for i := len(t) - 1; i >= 0; i-- {
		if totalPoints >= t[i] {
			level = i + 1
			break
		}
	}
	return level
}

// PointsToNext retourne les points manquants pour le niveau suivant,
// 0 si le niveau maximum est atteint
func (t LevelTable) PointsToNext(totalPoints int) int {
	level := t.LevelFor(totalPoints)
	if level >= len(t) {
		return 0
	}
	next := t[level] - totalPoints
	if next < 0 {
		return 0
	}
	return next
}

// MaxLevel retourne le dernier niveau de la table
func (t LevelTable) MaxLevel() int {
	return len(t)
}
