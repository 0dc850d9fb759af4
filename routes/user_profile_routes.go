package routes

import (
	"yuanfen_server/controllers"
	"yuanfen_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile operations under /api/user/profile
func RegisterUserProfileRoutes(r *mux.Router, controller *controllers.UserProfileController, auth *middleware.Auth) {
	profileRouter := r.PathPrefix("/api/user/profile").Subrouter()

	profileRouter.HandleFunc("", auth.Require(controller.GetMyProfile)).Methods("GET")
	profileRouter.HandleFunc("", auth.Require(controller.UpdateMyProfile)).Methods("PUT")
	profileRouter.HandleFunc("/{userId}", auth.Require(controller.GetUserProfileByID)).Methods("GET")
}
