package routes

import (
	"yuanfen_server/controllers"
	"yuanfen_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up the recommendation route
func RegisterMatchRoutes(r *mux.Router, controller *controllers.MatchController, auth *middleware.Auth) {
	r.HandleFunc("/api/recommendations", auth.Require(controller.GetRecommendations)).Methods("GET")
}
