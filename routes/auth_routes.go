package routes

import (
	"yuanfen_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up routes for registration and login under /api/auth
func RegisterAuthRoutes(r *mux.Router, controller *controllers.AuthController) {
	authRouter := r.PathPrefix("/api/auth").Subrouter()

	authRouter.HandleFunc("/register", controller.Register).Methods("POST")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
}
