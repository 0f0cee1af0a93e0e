package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/logger"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/middleware"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/scanner"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"
)

type CreateAchievementRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Level       string    `json:"level"`
	CategoryID  string    `json:"categoryId"`
	Department  string    `json:"department"`
}

// CreateAchievement soumet une réalisation, toujours en statut pending
func CreateAchievement(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateAchievementRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Title == "" || req.Date.IsZero() || req.CategoryID == "" {
		utils.Error(w, http.StatusBadRequest, "title, date and categoryId are required")
		return
	}
	if req.Level == "" {
		req.Level = model.LevelCollege
	}

	ctx := r.Context()

	// Vérifier que la catégorie existe
	var categoryExists bool
	if err := database.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, req.CategoryID,
	).Scan(&categoryExists); err != nil || !categoryExists {
		utils.Error(w, http.StatusBadRequest, "invalid category")
		return
	}

	id := uuid.NewString()
	row := database.DB.QueryRow(ctx, `
		INSERT INTO achievements(id, title, description, date, level, category_id, status, student_id, department)
		VALUES($1, $2, $3, $4, $5, $6, 'pending', $7, $8)
		RETURNING
			id, title, COALESCE(description,''), date, level, category_id,
			status, student_id, COALESCE(department,''), COALESCE(remarks,''),
			verified_by, verified_at, created_at, updated_at
	`, id, req.Title, req.Description, req.Date, req.Level, req.CategoryID, user.ID, req.Department)

	achievement, err := scanner.ScanAchievement(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create achievement: "+err.Error())
		return
	}

	utils.Created(w, achievement)
}

// GetMyAchievements retourne les réalisations de l'utilisateur connecté
func GetMyAchievements(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	achievements, err := listAchievements(r.Context(), `WHERE a.student_id = $1`, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query achievements: "+err.Error())
		return
	}

	utils.Success(w, achievements)
}

// GetAchievements retourne toutes les réalisations avec filtres optionnels
// status, department et category (admin/faculty)
func GetAchievements(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	where := `WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	filters := map[string]string{
		"a.status":      query.Get("status"),
		"a.department":  query.Get("department"),
		"a.category_id": query.Get("category"),
	}
	for col, val := range filters {
		if val != "" {
			where += ` AND ` + col + ` = $` + strconv.Itoa(argCount)
			args = append(args, val)
			argCount++
		}
	}

	achievements, err := listAchievements(r.Context(), where, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query achievements: "+err.Error())
		return
	}

	utils.Success(w, achievements)
}

func listAchievements(ctx context.Context, where string, args ...interface{}) ([]model.Achievement, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT
			a.id, a.title, COALESCE(a.description,''), a.date, a.level, a.category_id,
			a.status, a.student_id, COALESCE(a.department,''), COALESCE(a.remarks,''),
			a.verified_by, a.verified_at, a.created_at, a.updated_at
		FROM achievements a
		`+where+`
		ORDER BY a.date DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	achievements := []model.Achievement{}
	for rows.Next() {
		a, err := scanner.ScanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, *a)
	}
	return achievements, rows.Err()
}

type UpdateAchievementRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Level       *string    `json:"level,omitempty"`
	CategoryID  *string    `json:"categoryId,omitempty"`
}

// UpdateMyAchievement modifie une réalisation encore en attente
func UpdateMyAchievement(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	achievementID := vars["id"]

	var req UpdateAchievementRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := r.Context()

	var status string
	err = database.DB.QueryRow(ctx,
		`SELECT status FROM achievements WHERE id = $1 AND student_id = $2`,
		achievementID, user.ID,
	).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.Error(w, http.StatusNotFound, "achievement not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query achievement: "+err.Error())
		return
	}
	if status != model.StatusPending {
		utils.Error(w, http.StatusBadRequest, "only pending achievements can be edited")
		return
	}

	row := database.DB.QueryRow(ctx, `
		UPDATE achievements SET
			title = COALESCE($3, title),
			description = COALESCE($4, description),
			date = COALESCE($5, date),
			level = COALESCE($6, level),
			category_id = COALESCE($7, category_id),
			updated_at = NOW()
		WHERE id = $1 AND student_id = $2
		RETURNING
			id, title, COALESCE(description,''), date, level, category_id,
			status, student_id, COALESCE(department,''), COALESCE(remarks,''),
			verified_by, verified_at, created_at, updated_at
	`, achievementID, user.ID, req.Title, req.Description, req.Date, req.Level, req.CategoryID)

	achievement, err := scanner.ScanAchievement(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update achievement: "+err.Error())
		return
	}

	utils.Success(w, achievement)
}

// DeleteMyAchievement supprime une réalisation encore en attente
func DeleteMyAchievement(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	achievementID := vars["id"]

	res, err := database.DB.Exec(r.Context(),
		`DELETE FROM achievements WHERE id = $1 AND student_id = $2 AND status = 'pending'`,
		achievementID, user.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete achievement: "+err.Error())
		return
	}
	if res.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "achievement not found or not pending")
		return
	}

	utils.Message(w, "achievement deleted")
}

type VerifyAchievementRequest struct {
	Status  string `json:"status"` // approved ou rejected
	Remarks string `json:"remarks"`
}

// VerifyAchievement approuve ou rejette une réalisation (admin/faculty).
// Une approbation déclenche toute la cascade de gamification de façon
// synchrone : si elle échoue, la vérification est annulée et l'appelant peut
// rejouer la requête sans double comptage.
func VerifyAchievement(w http.ResponseWriter, r *http.Request) {
	verifier, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	achievementID := vars["id"]

	var req VerifyAchievementRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Status != model.StatusApproved && req.Status != model.StatusRejected {
		utils.Error(w, http.StatusBadRequest, "status must be approved or rejected")
		return
	}

	ctx := r.Context()

	row := database.DB.QueryRow(ctx, `
		UPDATE achievements SET
			status = $2,
			remarks = $3,
			verified_by = $4,
			verified_at = NOW(),
			updated_at = NOW()
		WHERE id = $1
		RETURNING
			id, title, COALESCE(description,''), date, level, category_id,
			status, student_id, COALESCE(department,''), COALESCE(remarks,''),
			verified_by, verified_at, created_at, updated_at
	`, achievementID, req.Status, req.Remarks, verifier.ID)

	achievement, err := scanner.ScanAchievement(row)
	if errors.Is(err, pgx.ErrNoRows) {
		utils.Error(w, http.StatusNotFound, "achievement not found")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not verify achievement: "+err.Error())
		return
	}

	if req.Status == model.StatusApproved {
		if err := engine.OnAchievementApproved(ctx, achievement.StudentID); err != nil {
			logger.Error("gamification cascade failed for student %s: %v", achievement.StudentID, err)
			utils.Error(w, http.StatusInternalServerError, "could not update gamification: "+err.Error())
			return
		}
		logger.Success("Achievement %s approved, gamification updated for student %s", achievement.ID, achievement.StudentID)
	}

	utils.Success(w, achievement)
}
