package routes

import (
	"net/http"

	"yuanfen_server/helpers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up the basic service routes
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to Yuanfen"})
	}).Methods("GET")
}
