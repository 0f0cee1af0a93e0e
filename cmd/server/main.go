package main

import (
	"net/http"
	"os"

	"github.com/nikilbalasa/Student-Achivement-Portal/internal/api"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/config"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/database"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/gamification"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/handler"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/logger"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/middleware"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Valider la table des niveaux avant de servir : une table mal
	// configurée est une erreur fatale, pas une erreur runtime
	levels, err := gamification.NewLevelTable(gamification.DefaultLevelTable)
	if err != nil {
		logger.Error("Invalid level table: %v", err)
		os.Exit(1)
	}

	// Câbler le moteur de gamification sur les stores PostgreSQL
	engine := gamification.NewEngine(
		store.AchievementStore{},
		store.UserStore{},
		store.BadgeStore{},
		store.ChallengeStore{},
		store.GamificationStore{},
		store.LeaderboardStore{},
		levels,
	)
	handler.Init(engine)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
