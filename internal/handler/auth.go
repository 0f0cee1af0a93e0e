package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/scanner"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Department       string `json:"department"`
	EnrollmentNumber string `json:"enrollmentNumber"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup crée un compte étudiant
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	ctx := r.Context()
	row := database.DB.QueryRow(ctx, `
		INSERT INTO users(id, name, email, password_hash, role, department, enrollment_number)
		VALUES($1, $2, $3, $4, 'student', $5, $6)
		RETURNING id, name, email, role, department, enrollment_number, created_at, updated_at
	`, uuid.NewString(), req.Name, req.Email, string(hashed), req.Department, req.EnrollmentNumber)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusConflict, "could not create user, email may already exist")
		return
	}

	utils.Created(w, user)
}

// Login vérifie les identifiants et ouvre une session de 24h
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := r.Context()
	var user model.UserProfile
	var department, enrollment string
	var hashedPassword string

	err := database.DB.QueryRow(ctx, `
		SELECT id, name, email, role, COALESCE(department,''), COALESCE(enrollment_number,''),
			created_at, updated_at, password_hash
		FROM users WHERE email = $1
	`, req.Email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role, &department, &enrollment,
		&user.CreatedAt, &user.UpdatedAt, &hashedPassword,
	)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	user.Department = department
	user.EnrollmentNumber = enrollment

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	// Génération token UUID
	token := uuid.NewString()
	now := time.Now()

	_, err = database.DB.Exec(ctx, `
		INSERT INTO sessions(id, user_id, token, is_active, created_at, expires_at)
		VALUES($1, $2, $3, true, $4, $5)
	`, uuid.NewString(), user.ID, token, now, now.Add(24*time.Hour))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Logout désactive la session courante
func Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token == "" {
		utils.Error(w, http.StatusBadRequest, "missing token")
		return
	}

	res, err := database.DB.Exec(r.Context(), `
		UPDATE sessions SET is_active = false WHERE token = $1 AND is_active = true
	`, token)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not logout: "+err.Error())
		return
	}
	if res.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Message(w, "logged out")
}
