package routes

import (
	"yuanfen_server/controllers"
	"yuanfen_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterPhotoRoutes sets up routes for photo operations under /api/user/photos
func RegisterPhotoRoutes(r *mux.Router, controller *controllers.PhotoController, auth *middleware.Auth) {
	photoRouter := r.PathPrefix("/api/user/photos").Subrouter()

	photoRouter.HandleFunc("", auth.Require(controller.ListPhotos)).Methods("GET")
	photoRouter.HandleFunc("", auth.Require(controller.AddPhoto)).Methods("POST")
	photoRouter.HandleFunc("", auth.Require(controller.DeletePhoto)).Methods("DELETE")
	photoRouter.HandleFunc("/{photoId}/main", auth.Require(controller.SetMainPhoto)).Methods("POST", "PUT")
}
