package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"yuanfen_server/helpers"
	"yuanfen_server/services"

	"go.uber.org/zap"
)

// UploadController issues direct-to-storage upload credentials
type UploadController struct {
	UploadService *services.UploadService
	Log           *zap.SugaredLogger
}

// NewUploadController creates a new instance of UploadController
func NewUploadController(uploadService *services.UploadService, log *zap.SugaredLogger) *UploadController {
	return &UploadController{UploadService: uploadService, Log: log}
}

// GetUploadToken mints a presigned PUT URL for one photo upload
func (c *UploadController) GetUploadToken(w http.ResponseWriter, r *http.Request) {
	fileName := r.URL.Query().Get("fileName")
	fileType := r.URL.Query().Get("fileType")
	if fileType == "" {
		fileType = "image/jpeg"
	}

	cred, err := c.UploadService.GenerateUploadURL(r.Context(), fileName, fileType)
	if err != nil {
		if errors.Is(err, services.ErrUploadNotConfigured) {
			c.Log.Errorw("upload storage not configured")
			helpers.WriteErrorResponse(w, http.StatusInternalServerError, "upload_not_configured")
			return
		}
		c.Log.Errorw("failed to issue upload credential", "error", err)
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "upload_error")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, cred)
}

// GetReadURL mints a presigned GET URL for an existing object
func (c *UploadController) GetReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		helpers.WriteErrorResponse(w, http.StatusBadRequest, "missing_key")
		return
	}

	url, err := c.UploadService.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		if errors.Is(err, services.ErrUploadNotConfigured) {
			helpers.WriteErrorResponse(w, http.StatusInternalServerError, "upload_not_configured")
			return
		}
		helpers.WriteErrorResponse(w, http.StatusInternalServerError, "upload_error")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url})
}
