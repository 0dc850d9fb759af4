package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"yuanfen_server/helpers"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth validates session tokens and stores the user id in the request
// context.
type Auth struct {
	Secret []byte
}

// Require rejects the request with 401 unless a valid token is presented,
// either as an Authorization bearer header or as the `token` cookie set at
// login.
func (a *Auth) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := bearerToken(r)
		if tokenStr == "" {
			helpers.WriteErrorResponse(w, http.StatusUnauthorized, "unauthenticated")
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return a.Secret, nil
		})
		if err != nil || !token.Valid {
			helpers.WriteErrorResponse(w, http.StatusUnauthorized, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			helpers.WriteErrorResponse(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			helpers.WriteErrorResponse(w, http.StatusUnauthorized, "invalid_token")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	}
}

// UserID returns the authenticated user id stored by Require.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}
