package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"
)

type CategoryCount struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Count      int    `json:"count"`
}

// GetCategoryCounts retourne le nombre de réalisations approuvées par
// catégorie, filtrable par département (admin/faculty)
func GetCategoryCounts(w http.ResponseWriter, r *http.Request) {
	query := `
		SELECT c.id, c.name, c.type, COUNT(*)
		FROM achievements a
		INNER JOIN categories c ON c.id = a.category_id
		WHERE a.status = 'approved'
	`
	args := []interface{}{}
	if department := r.URL.Query().Get("department"); department != "" {
		query += ` AND a.department = $1`
		args = append(args, department)
	}
	query += `
		GROUP BY c.id, c.name, c.type
		ORDER BY COUNT(*) DESC
	`

	rows, err := database.DB.Query(r.Context(), query, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query category counts: "+err.Error())
		return
	}
	defer rows.Close()

	counts := []CategoryCount{}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Type, &c.Count); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan category count: "+err.Error())
			return
		}
		counts = append(counts, c)
	}

	utils.Success(w, counts)
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// GetDepartmentCounts retourne le nombre de réalisations approuvées par
// département (admin/faculty)
func GetDepartmentCounts(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(), `
		SELECT COALESCE(department,''), COUNT(*)
		FROM achievements
		WHERE status = 'approved'
		GROUP BY department
		ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query department counts: "+err.Error())
		return
	}
	defer rows.Close()

	counts := []DepartmentCount{}
	for rows.Next() {
		var c DepartmentCount
		if err := rows.Scan(&c.Department, &c.Count); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan department count: "+err.Error())
			return
		}
		counts = append(counts, c)
	}

	utils.Success(w, counts)
}

type TimelineBucket struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// GetTimeline retourne le nombre de réalisations approuvées par mois,
// bornable par les query params from et to (RFC 3339) (admin/faculty)
func GetTimeline(w http.ResponseWriter, r *http.Request) {
	query := `
		SELECT EXTRACT(YEAR FROM date)::int, EXTRACT(MONTH FROM date)::int, COUNT(*)
		FROM achievements
		WHERE status = 'approved'
	`
	args := []interface{}{}
	argCount := 1

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid from date, expected RFC 3339")
			return
		}
		query += ` AND date >= $` + strconv.Itoa(argCount)
		args = append(args, from)
		argCount++
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid to date, expected RFC 3339")
			return
		}
		query += ` AND date <= $` + strconv.Itoa(argCount)
		args = append(args, to)
	}

	query += `
		GROUP BY 1, 2
		ORDER BY 1, 2
	`

	rows, err := database.DB.Query(r.Context(), query, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query timeline: "+err.Error())
		return
	}
	defer rows.Close()

	buckets := []TimelineBucket{}
	for rows.Next() {
		var b TimelineBucket
		if err := rows.Scan(&b.Year, &b.Month, &b.Count); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan timeline bucket: "+err.Error())
			return
		}
		buckets = append(buckets, b)
	}

	utils.Success(w, buckets)
}
