package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/handler"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/middleware"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	staffRoutes := authenticatedRoutes.PathPrefix("/").Subrouter()
	staffRoutes.Use(middleware.RequireRole(model.RoleAdmin, model.RoleFaculty))

	adminRoutes := authenticatedRoutes.PathPrefix("/").Subrouter()
	adminRoutes.Use(middleware.RequireRole(model.RoleAdmin))

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Achievements
	authenticatedRoutes.HandleFunc("/achievements", handler.CreateAchievement).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/achievements/me", handler.GetMyAchievements).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/achievements/{id}", handler.UpdateMyAchievement).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/achievements/{id}", handler.DeleteMyAchievement).Methods(http.MethodDelete)
	staffRoutes.HandleFunc("/achievements", handler.GetAchievements).Methods(http.MethodGet)
	staffRoutes.HandleFunc("/achievements/{id}/verify", handler.VerifyAchievement).Methods(http.MethodPatch)

	// Categories
	r.HandleFunc("/categories", handler.GetCategories).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/categories", handler.CreateCategory).Methods(http.MethodPost)

	// Gamification
	authenticatedRoutes.HandleFunc("/gamification/stats", handler.GetUserStats).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/gamification/leaderboard", handler.GetLeaderboard).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/gamification/rank", handler.GetUserRank).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/gamification/challenges", handler.GetActiveChallenges).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/gamification/challenges/{challengeId}/join", handler.JoinChallenge).Methods(http.MethodPost)

	// Badges et challenges (catalogue)
	r.HandleFunc("/badges", handler.GetBadges).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/badges", handler.CreateBadge).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/challenges", handler.CreateChallenge).Methods(http.MethodPost)

	// Hall of fame
	r.HandleFunc("/halloffame", handler.GetTopAchievers).Methods(http.MethodGet)

	// Analytics (vues agrégées en lecture seule)
	staffRoutes.HandleFunc("/analytics/categories", handler.GetCategoryCounts).Methods(http.MethodGet)
	staffRoutes.HandleFunc("/analytics/departments", handler.GetDepartmentCounts).Methods(http.MethodGet)
	staffRoutes.HandleFunc("/analytics/timeline", handler.GetTimeline).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
