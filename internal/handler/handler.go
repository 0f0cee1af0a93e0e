package handler

import (
	"net/http"

	"github.com/nikilbalasa/Student-Achivement-Portal/internal/gamification"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"
)

// engine est le moteur de gamification partagé par les handlers, initialisé
// au démarrage du serveur
var engine *gamification.Engine

func Init(e *gamification.Engine) {
	engine = e
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
