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

// UserProfileController handles requests related to user profiles
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// GetMyProfile returns the authenticated user's own profile. The email stays
// visible to the owner; the password hash is never serialized.
func (c *UserProfileController) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			helpers.WriteErrorResponse(w, http.StatusNotFound, "profile_not_found")
			return
		}
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "profile_error")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, profile)
}

// UpdateMyProfile replaces the editable fields of the authenticated user's
// profile with the submitted form.
func (c *UserProfileController) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		helpers.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req services.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "invalid_json")
		return
	}

	profile, err := c.UserProfileService.UpdateUserProfile(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			helpers.WriteErrorResponse(w, http.StatusNotFound, "profile_not_found")
			return
		}
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "profile_update_error")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, profile)
}

// GetUserProfileByID returns another user's profile with email and password
// redacted.
func (c *UserProfileController) GetUserProfileByID(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			helpers.WriteErrorResponse(w, http.StatusNotFound, "profile_not_found")
			return
		}
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "profile_error")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, profile.Public())
}
