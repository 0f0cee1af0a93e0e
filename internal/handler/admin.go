package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/scanner"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"
)

type CreateBadgeRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Rarity      string              `json:"rarity"`
	Points      int                 `json:"points"`
	Criteria    model.BadgeCriteria `json:"criteria"`
}

// CreateBadge crée une définition de badge (admin)
func CreateBadge(w http.ResponseWriter, r *http.Request) {
	var req CreateBadgeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" || req.Criteria.Type == "" {
		utils.Error(w, http.StatusBadRequest, "name and criteria.type are required")
		return
	}
	switch req.Criteria.Type {
	case model.CriteriaAchievementCount, model.CriteriaPoints, model.CriteriaLevel:
	case model.CriteriaCategory:
		if req.Criteria.CategoryID == "" {
			utils.Error(w, http.StatusBadRequest, "criteria.categoryId is required for category badges")
			return
		}
	default:
		utils.Error(w, http.StatusBadRequest, "unknown criteria type")
		return
	}
	if req.Icon == "" {
		req.Icon = "🏆"
	}
	if req.Rarity == "" {
		req.Rarity = model.RarityCommon
	}

	row := database.DB.QueryRow(r.Context(), `
		INSERT INTO badges(id, name, description, icon, rarity, points, criteria_type, criteria_value, criteria_category, is_active)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), true)
		RETURNING
			id, name, description, icon, rarity, points,
			criteria_type, criteria_value, COALESCE(criteria_category,''),
			is_active, created_at, updated_at
	`, uuid.NewString(), req.Name, req.Description, req.Icon, req.Rarity, req.Points,
		req.Criteria.Type, req.Criteria.Value, req.Criteria.CategoryID)

	badge, err := scanner.ScanBadge(row)
	if err != nil {
		utils.Error(w, http.StatusConflict, "could not create badge, name may already exist")
		return
	}

	utils.Created(w, badge)
}

// GetBadges retourne toutes les définitions de badges
func GetBadges(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(), `
		SELECT
			id, name, description, icon, rarity, points,
			criteria_type, criteria_value, COALESCE(criteria_category,''),
			is_active, created_at, updated_at
		FROM badges
		ORDER BY name ASC
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query badges: "+err.Error())
		return
	}
	defer rows.Close()

	badges := []model.Badge{}
	for rows.Next() {
		b, err := scanner.ScanBadge(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan badge: "+err.Error())
			return
		}
		badges = append(badges, *b)
	}

	utils.Success(w, badges)
}

type CreateChallengeRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Target       int       `json:"target"`
	RewardPoints int       `json:"rewardPoints"`
	BadgeID      *string   `json:"badgeId,omitempty"`
	CategoryID   *string   `json:"categoryId,omitempty"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
}

// CreateChallenge crée un challenge (admin)
func CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req CreateChallengeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Title == "" || req.Target <= 0 {
		utils.Error(w, http.StatusBadRequest, "title and a positive target are required")
		return
	}
	if req.Type != model.ChallengeAchievementCount && req.Type != model.ChallengePoints {
		utils.Error(w, http.StatusBadRequest, "type must be achievement_count or points")
		return
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() || req.EndDate.Before(req.StartDate) {
		utils.Error(w, http.StatusBadRequest, "startDate and endDate must form a valid window")
		return
	}

	row := database.DB.QueryRow(r.Context(), `
		INSERT INTO challenges(id, title, description, type, target, reward_points, badge_id, category_id, start_date, end_date, is_active)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
		RETURNING
			id, title, description, type, target, reward_points, badge_id, category_id,
			start_date, end_date, is_active, created_at, updated_at
	`, uuid.NewString(), req.Title, req.Description, req.Type, req.Target, req.RewardPoints,
		req.BadgeID, req.CategoryID, req.StartDate, req.EndDate)

	challenge, err := scanner.ScanChallenge(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create challenge: "+err.Error())
		return
	}

	utils.Created(w, challenge)
}
