package handler

import (
	"net/http"
	"strconv"

	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"
)

type TopAchiever struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Department  string `json:"department,omitempty"`
	TotalPoints int    `json:"totalPoints"`
	Level       int    `json:"level"`
	Badges      int    `json:"badges"`
	Approved    int    `json:"approvedAchievements"`
}

// GetTopAchievers retourne le panthéon des meilleurs étudiants par points
func GetTopAchievers(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	rows, err := database.DB.Query(r.Context(), `
		SELECT
			g.user_id, u.name, COALESCE(u.department,''),
			g.total_points, g.current_level,
			COALESCE(array_length(g.badges, 1), 0), g.approved_count
		FROM gamification g
		INNER JOIN users u ON u.id = g.user_id
		ORDER BY g.total_points DESC, g.current_level DESC, g.user_id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query top achievers: "+err.Error())
		return
	}
	defer rows.Close()

	achievers := []TopAchiever{}
	for rows.Next() {
		var a TopAchiever
		if err := rows.Scan(
			&a.UserID, &a.Name, &a.Department,
			&a.TotalPoints, &a.Level, &a.Badges, &a.Approved,
		); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan top achiever: "+err.Error())
			return
		}
		achievers = append(achievers, a)
	}

	utils.Success(w, achievers)
}
