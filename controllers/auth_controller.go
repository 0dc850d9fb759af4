package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"yuanfen_server/helpers"
	"yuanfen_server/services"

	"go.uber.org/zap"
)

// AuthController handles registration and login requests
type AuthController struct {
	AuthService *services.AuthService
	Log         *zap.SugaredLogger
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(authService *services.AuthService, log *zap.SugaredLogger) *AuthController {
	return &AuthController{AuthService: authService, Log: log}
}

// Register handles new user registration
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "missing_fields")
		return
	}

	profile, err := c.AuthService.Register(r.Context(), payload.Email, payload.Password, payload.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			helpers.WriteErrorResponse(w, http.StatusConflict, "email_exists")
			return
		}
		c.Log.Errorw("registration failed", "error", err)
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "register_error")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusCreated, map[string]string{"userId": profile.UserID})
}

// Login verifies credentials and issues a session token
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "missing_fields")
		return
	}

	token, profile, err := c.AuthService.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.WriteErrorResponse(w, http.StatusUnauthorized, "invalid_credentials")
			return
		}
		c.Log.Errorw("login failed", "error", err)
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "login_error")
		return
	}

	// Cookie mirrors the token so browser clients stay logged in without
	// managing the header themselves.
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"token": token, "userId": profile.UserID})
}
