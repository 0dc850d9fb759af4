package controllers

import (
	"errors"
	"net/http"

	"yuanfen_server/helpers"
	"yuanfen_server/middleware"
	"yuanfen_server/services"

	"go.uber.org/zap"
)

// MatchController handles the recommendation endpoint
type MatchController struct {
	MatchService *services.MatchService
	Log          *zap.SugaredLogger
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService, log *zap.SugaredLogger) *MatchController {
	return &MatchController{MatchService: matchService, Log: log}
}

// GetRecommendations returns the top opposite-gender candidates for the
// authenticated user, ordered by descending match score.
func (c *MatchController) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	recs, err := c.MatchService.GetRecommendations(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			helpers.WriteErrorResponse(w, http.StatusNotFound, "profile_not_found")
			return
		}
		c.Log.Errorw("recommendation failed", "userId", userID, "error", err)
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "recommendation_error")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, recs)
}
