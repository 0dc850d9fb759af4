package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yuanfen_server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// bcryptCost matches the cost the original accounts were hashed with.
const bcryptCost = 12

// AccountDirectory is the directory surface auth needs.
type AccountDirectory interface {
	GetUserProfileByEmail(ctx context.Context, emailID string) (*models.UserProfile, error)
	AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error)
}

var _ AccountDirectory = (*UserProfileService)(nil)

type AuthService struct {
	Directory AccountDirectory
	JWTSecret []byte
	TokenTTL  time.Duration
	Log       *zap.SugaredLogger
}

// Register creates a new user with a hashed password and a fresh id.
func (as *AuthService) Register(ctx context.Context, email, password, name string) (*models.UserProfile, error) {
	email = strings.TrimSpace(email)

	_, err := as.Directory.GetUserProfileByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile := models.UserProfile{
		UserID:    uuid.NewString(),
		Name:      name,
		EmailID:   email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := as.Directory.AddUserProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	if as.Log != nil {
		as.Log.Infow("user registered", "userId", created.UserID)
	}
	return created, nil
}

// Login verifies the password and issues a session token.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	email = strings.TrimSpace(email)

	profile, err := as.Directory.GetUserProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := as.IssueToken(profile.UserID)
	if err != nil {
		return "", nil, err
	}
	return token, profile, nil
}

// IssueToken signs an HS256 JWT carrying the user id.
func (as *AuthService) IssueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(as.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(as.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
