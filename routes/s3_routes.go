package routes

import (
	"yuanfen_server/controllers"
	"yuanfen_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterUploadRoutes sets up routes for upload credential issuance under /api/upload
func RegisterUploadRoutes(r *mux.Router, controller *controllers.UploadController, auth *middleware.Auth) {
	uploadRouter := r.PathPrefix("/api/upload").Subrouter()

	uploadRouter.HandleFunc("/token", auth.Require(controller.GetUploadToken)).Methods("GET")
	uploadRouter.HandleFunc("/read-url", auth.Require(controller.GetReadURL)).Methods("POST")
}
