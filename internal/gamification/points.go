package gamification

import (
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
)

// Valeur en points de chaque niveau de classification.
// Strictement croissante pour préserver l'ordre d'incitation.
var pointValues = map[string]int{
	model.LevelCollege:       10,
	model.LevelDepartment:    20,
	model.LevelState:         50,
	model.LevelNational:      100,
	model.LevelInternational: 200,
}

// PointsFor retourne la valeur en points d'une réalisation.
// Seules les réalisations approuvées rapportent des points.
func PointsFor(a model.Achievement) int {
	if a.Status != model.StatusApproved {
		return 0
	}
	if points, ok := pointValues[a.Level]; ok {
		return points
	}
	return 10
}
