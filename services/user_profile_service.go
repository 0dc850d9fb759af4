package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yuanfen_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ErrProfileNotFound is returned when no profile exists for a lookup.
var ErrProfileNotFound = errors.New("profile not found")

// Store is the subset of DynamoDB operations the domain services depend on.
// *DynamoService is the production implementation.
type Store interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	UpdateItem(ctx context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error)
	DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error
	QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error)
	ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, excludeFields map[string]string, result interface{}) error
}

var _ Store = (*DynamoService)(nil)

// UpdateProfileRequest carries the editable profile fields. All fields are
// set on update, matching the profile edit form which always submits the
// full record.
type UpdateProfileRequest struct {
	Name         string             `json:"name"`
	Gender       string             `json:"gender"`
	BirthDate    string             `json:"birthDate"`
	BirthPlace   string             `json:"birthPlace"`
	CurrentCity  string             `json:"currentCity"`
	Education    string             `json:"education"`
	CarAndHouse  models.CarAndHouse `json:"carAndHouse"`
	Industry     string             `json:"industry"`
	Occupation   string             `json:"occupation"`
	AnnualIncome string             `json:"annualIncome"`
	Height       int                `json:"height"`
	Weight       int                `json:"weight"`
	Personality  string             `json:"personality"`
	Hobbies      string             `json:"hobbies"`
	MBTI         string             `json:"mbti"`
}

type UserProfileService struct {
	Dynamo Store
	Log    *zap.SugaredLogger
}

// AddUserProfile stores a new user profile.
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// GetUserProfileByEmail retrieves a user profile via the EmailIndex GSI.
func (ups *UserProfileService) GetUserProfileByEmail(ctx context.Context, emailID string) (*models.UserProfile, error) {
	keyCondition := "emailId = :emailId"
	expressionAttributeValues := map[string]types.AttributeValue{
		":emailId": &types.AttributeValueMemberS{Value: emailID},
	}

	items, err := ups.Dynamo.QueryItemsWithIndex(ctx, models.UserProfilesTable, models.EmailIndex, keyCondition, expressionAttributeValues, nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile by email: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrProfileNotFound
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(items[0], &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// UpdateUserProfile replaces the editable fields of an existing profile.
// Identity, credentials and createdAt are preserved.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := ups.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.Gender = req.Gender
	profile.BirthDate = req.BirthDate
	profile.BirthPlace = req.BirthPlace
	profile.CurrentCity = req.CurrentCity
	profile.Education = req.Education
	profile.CarAndHouse = req.CarAndHouse
	profile.Industry = req.Industry
	profile.Occupation = req.Occupation
	profile.AnnualIncome = req.AnnualIncome
	profile.Height = req.Height
	profile.Weight = req.Weight
	profile.Personality = req.Personality
	profile.Hobbies = req.Hobbies
	profile.MBTI = req.MBTI
	profile.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, *profile); err != nil {
		return nil, err
	}

	if ups.Log != nil {
		ups.Log.Infow("profile updated", "userId", userID)
	}
	return profile, nil
}

// DeleteUserProfile removes a user profile.
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ups.Dynamo.DeleteItem(ctx, models.UserProfilesTable, key)
}

// ListCandidates returns every profile whose gender differs from the given
// one, excluding the requesting user. Scan-based: the candidate pool is the
// whole directory minus same-gender rows.
func (ups *UserProfileService) ListCandidates(ctx context.Context, gender, excludeUserID string) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, nil, map[string]string{
		"gender": gender,
		"userId": excludeUserID,
	}, &profiles)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
