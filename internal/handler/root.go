package handler

import (
	"net/http"

	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Student Achievement Portal API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/signup", "description": "Créer un compte étudiant"},
				{"method": "POST", "path": "/auth/login", "description": "Connexion utilisateur"},
				{"method": "POST", "path": "/auth/logout", "description": "Déconnexion utilisateur"},
			},
			"achievements": []map[string]string{
				{"method": "POST", "path": "/achievements", "description": "Soumettre une réalisation (pending)"},
				{"method": "GET", "path": "/achievements/me", "description": "Mes réalisations"},
				{"method": "PUT", "path": "/achievements/{id}", "description": "Modifier une réalisation en attente"},
				{"method": "DELETE", "path": "/achievements/{id}", "description": "Supprimer une réalisation en attente"},
				{"method": "GET", "path": "/achievements", "description": "Toutes les réalisations (admin/faculty, params: status, department, category)"},
				{"method": "PATCH", "path": "/achievements/{id}/verify", "description": "Approuver ou rejeter (admin/faculty)"},
			},
			"categories": []map[string]string{
				{"method": "GET", "path": "/categories", "description": "Lister les catégories"},
				{"method": "POST", "path": "/categories", "description": "Créer une catégorie (admin)"},
			},
			"gamification": []map[string]string{
				{"method": "GET", "path": "/gamification/stats", "description": "Points, niveau et badges de l'utilisateur"},
				{"method": "GET", "path": "/gamification/leaderboard", "description": "Classement (params: type, value, limit)"},
				{"method": "GET", "path": "/gamification/rank", "description": "Rang de l'utilisateur (params: type, value)"},
				{"method": "GET", "path": "/gamification/challenges", "description": "Challenges actifs avec progression"},
				{"method": "POST", "path": "/gamification/challenges/{challengeId}/join", "description": "Rejoindre un challenge"},
			},
			"admin": []map[string]string{
				{"method": "GET", "path": "/badges", "description": "Lister les badges"},
				{"method": "POST", "path": "/badges", "description": "Créer un badge (admin)"},
				{"method": "POST", "path": "/challenges", "description": "Créer un challenge (admin)"},
			},
			"analytics": []map[string]string{
				{"method": "GET", "path": "/analytics/categories", "description": "Réalisations approuvées par catégorie (admin/faculty, param: department)"},
				{"method": "GET", "path": "/analytics/departments", "description": "Réalisations approuvées par département (admin/faculty)"},
				{"method": "GET", "path": "/analytics/timeline", "description": "Réalisations approuvées par mois (admin/faculty, params: from, to)"},
			},
			"halloffame": []map[string]string{
				{"method": "GET", "path": "/halloffame", "description": "Panthéon des meilleurs étudiants (param: limit)"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
	}

	utils.Success(w, routes)
}
