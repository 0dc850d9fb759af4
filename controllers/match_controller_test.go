package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yuanfen_server/middleware"
	"yuanfen_server/models"
	"yuanfen_server/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSecret = []byte("test-secret")

func signTestToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

type fakeDirectory struct {
	profiles   map[string]*models.UserProfile
	candidates []models.UserProfile
}

func (d *fakeDirectory) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	p, ok := d.profiles[userID]
	if !ok {
		return nil, services.ErrProfileNotFound
	}
	return p, nil
}

func (d *fakeDirectory) ListCandidates(ctx context.Context, gender, excludeUserID string) ([]models.UserProfile, error) {
	out := make([]models.UserProfile, 0, len(d.candidates))
	for _, c := range d.candidates {
		if c.Gender == gender || c.UserID == excludeUserID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func matchTestRouter(dir services.ProfileDirectory) *mux.Router {
	matchService := &services.MatchService{Directory: dir, Log: zap.NewNop().Sugar()}
	controller := NewMatchController(matchService, zap.NewNop().Sugar())
	auth := &middleware.Auth{Secret: testSecret}

	r := mux.NewRouter()
	r.HandleFunc("/api/recommendations", auth.Require(controller.GetRecommendations)).Methods("GET")
	return r
}

func TestGetRecommendationsRequiresToken(t *testing.T) {
	router := matchTestRouter(&fakeDirectory{profiles: map[string]*models.UserProfile{}})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetRecommendationsUnknownUser(t *testing.T) {
	router := matchTestRouter(&fakeDirectory{profiles: map[string]*models.UserProfile{}})

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "ghost"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRecommendationsHappyPath(t *testing.T) {
	requester := &models.UserProfile{
		UserID:      "u1",
		Gender:      models.GenderMale,
		EmailID:     "u1@example.com",
		BirthDate:   "1995-04-12",
		CurrentCity: "上海",
		Education:   "本科",
		Height:      178,
		MBTI:        "INFJ",
		Hobbies:     "阅读, 旅行",
	}
	strong := models.UserProfile{
		UserID:      "u2",
		Gender:      models.GenderFemale,
		EmailID:     "u2@example.com",
		Password:    "hashed",
		BirthDate:   "1996-01-20",
		CurrentCity: "上海",
		Education:   "本科",
		Height:      165,
		MBTI:        "INFJ",
		Hobbies:     "旅行, 阅读",
	}
	weak := models.UserProfile{
		UserID:      "u3",
		Gender:      models.GenderFemale,
		CurrentCity: "北京",
	}
	dir := &fakeDirectory{
		profiles:   map[string]*models.UserProfile{"u1": requester},
		candidates: []models.UserProfile{weak, strong},
	}
	router := matchTestRouter(dir)

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "u1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var recs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	require.Len(t, recs, 2)

	assert.Equal(t, "u2", recs[0]["userId"])
	assert.Equal(t, "u3", recs[1]["userId"])

	for _, r := range recs {
		assert.NotContains(t, r, "emailId")
		assert.NotContains(t, r, "password")
	}
}

func TestGetRecommendationsTokenFromCookie(t *testing.T) {
	requester := &models.UserProfile{UserID: "u1", Gender: models.GenderMale}
	dir := &fakeDirectory{profiles: map[string]*models.UserProfile{"u1": requester}}
	router := matchTestRouter(dir)

	req := httptest.NewRequest(http.MethodGet, "/api/recommendations", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signTestToken(t, "u1")})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
