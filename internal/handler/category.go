package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/scanner"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"
)

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// CreateCategory crée une catégorie de réalisations (admin)
func CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		utils.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Type == "" {
		req.Type = "other"
	}

	row := database.DB.QueryRow(r.Context(), `
		INSERT INTO categories(id, name, description, type)
		VALUES($1, $2, $3, $4)
		RETURNING id, name, COALESCE(description,''), type, created_at, updated_at
	`, uuid.NewString(), req.Name, req.Description, req.Type)

	category, err := scanner.ScanCategory(row)
	if err != nil {
		utils.Error(w, http.StatusConflict, "could not create category, name may already exist")
		return
	}

	utils.Created(w, category)
}

// GetCategories retourne toutes les catégories
func GetCategories(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(), `
		SELECT id, name, COALESCE(description,''), type, created_at, updated_at
		FROM categories
		ORDER BY name ASC
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query categories: "+err.Error())
		return
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		c, err := scanner.ScanCategory(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan category: "+err.Error())
			return
		}
		categories = append(categories, *c)
	}

	utils.Success(w, categories)
}
