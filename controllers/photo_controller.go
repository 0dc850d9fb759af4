package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"yuanfen_server/helpers"
	"yuanfen_server/middleware"
	"yuanfen_server/services"

	"github.com/gorilla/mux"
)

// PhotoController handles photo CRUD for the authenticated user
type PhotoController struct {
	PhotoService *services.PhotoService
}

// NewPhotoController creates a new instance of PhotoController
func NewPhotoController(photoService *services.PhotoService) *PhotoController {
	return &PhotoController{PhotoService: photoService}
}

// ListPhotos returns the caller's photos, newest first
func (c *PhotoController) ListPhotos(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	photos, err := c.PhotoService.ListPhotos(r.Context(), userID)
	if err != nil {
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "photos_error")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, photos)
}

// AddPhoto records an uploaded photo
func (c *PhotoController) AddPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var payload struct {
		URL     string `json:"url"`
		Caption string `json:"caption"`
		IsMain  bool   `json:"isMain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.URL == "" {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "missing_url")
		return
	}

	photo, err := c.PhotoService.AddPhoto(r.Context(), userID, payload.URL, payload.Caption, payload.IsMain)
	if err != nil {
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "photo_add_error")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusCreated, photo)
}

// DeletePhoto removes one of the caller's photos
func (c *PhotoController) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	photoID := r.URL.Query().Get("id")
	if photoID == "" {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "missing_photo_id")
		return
	}

	if err := c.PhotoService.DeletePhoto(r.Context(), userID, photoID); err != nil {
		switch {
		case errors.Is(err, services.ErrPhotoNotFound):
			helpers.WriteErrorResponse(w, http.StatusNotFound, "photo_not_found")
		case errors.Is(err, services.ErrNotPhotoOwner):
			helpers.WriteErrorResponse(w, http.StatusForbidden, "not_photo_owner")
		default:
			helpers.WriteErrorResponse(w, http.StatusInternalServerError, "photo_delete_error")
		}
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "photo deleted"})
}

// SetMainPhoto promotes one of the caller's photos to main
func (c *PhotoController) SetMainPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	photoID := mux.Vars(r)["photoId"]

	photo, err := c.PhotoService.SetMainPhoto(r.Context(), userID, photoID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPhotoNotFound):
			helpers.WriteErrorResponse(w, http.StatusNotFound, "photo_not_found")
		case errors.Is(err, services.ErrNotPhotoOwner):
			helpers.WriteErrorResponse(w, http.StatusForbidden, "not_photo_owner")
		default:
			helpers.WriteErrorResponse(w, http.StatusInternalServerError, "photo_update_error")
		}
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, photo)
}
