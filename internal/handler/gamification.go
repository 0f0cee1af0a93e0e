package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/gamification"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/middleware"
	model "github.com/nikilbalasa/Student-Achivement-Portal/internal/models"
	"github.com/nikilbalasa/Student-Achivement-Portal/internal/utils"
)

// GetUserStats retourne les stats de gamification de l'utilisateur connecté,
// recalculées depuis ses réalisations (l'agrégat est créé au premier appel)
func GetUserStats(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	stats, err := engine.GetStats(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not compute stats: "+err.Error())
		return
	}

	utils.Success(w, stats)
}

// scopeFromQuery construit la portée de classement depuis les query params
// type (global, department) et value
func scopeFromQuery(r *http.Request) model.Scope {
	scopeType := r.URL.Query().Get("type")
	if scopeType == "" {
		scopeType = model.ScopeGlobal
	}
	return model.Scope{Type: scopeType, Value: r.URL.Query().Get("value")}
}

// GetLeaderboard retourne le classement d'une portée, trié par rang
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	scope := scopeFromQuery(r)

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	entries, err := engine.GetLeaderboard(r.Context(), scope, limit)
	if err != nil {
		if errors.Is(err, gamification.ErrInvalidScope) {
			utils.Error(w, http.StatusBadRequest, "invalid leaderboard scope")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not query leaderboard: "+err.Error())
		return
	}

	utils.Success(w, entries)
}

// GetUserRank retourne le rang de l'utilisateur connecté dans une portée
func GetUserRank(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	rank, err := engine.GetRank(r.Context(), user.ID, scopeFromQuery(r))
	if err != nil {
		switch {
		case errors.Is(err, gamification.ErrInvalidScope):
			utils.Error(w, http.StatusBadRequest, "invalid leaderboard scope")
		case errors.Is(err, gamification.ErrNotRanked):
			utils.Success(w, map[string]interface{}{"rank": nil, "totalParticipants": 0})
		default:
			utils.Error(w, http.StatusInternalServerError, "could not query rank: "+err.Error())
		}
		return
	}

	utils.Success(w, rank)
}

// GetActiveChallenges retourne les challenges actifs avec la progression de
// l'utilisateur connecté
func GetActiveChallenges(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	challenges, err := engine.ListChallengesWithProgress(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not list challenges: "+err.Error())
		return
	}

	utils.Success(w, challenges)
}

// JoinChallenge inscrit l'utilisateur connecté à un challenge
func JoinChallenge(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	vars := mux.Vars(r)
	challengeID := vars["challengeId"]

	participant, err := engine.JoinChallenge(r.Context(), challengeID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, gamification.ErrNotFound):
			utils.Error(w, http.StatusNotFound, "challenge not found")
		case errors.Is(err, gamification.ErrChallengeWindow):
			utils.Error(w, http.StatusConflict, "challenge is not active")
		case errors.Is(err, gamification.ErrAlreadyJoined):
			utils.Error(w, http.StatusConflict, "already joined this challenge")
		default:
			utils.Error(w, http.StatusInternalServerError, "could not join challenge: "+err.Error())
		}
		return
	}

	utils.Success(w, participant)
}
