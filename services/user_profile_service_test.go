package services

import (
	"context"
	"testing"

	"yuanfen_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileStore keeps profile items in memory, keyed by userId, and emulates
// the email index query and the exclusion scan.
type profileStore struct {
	items map[string]map[string]types.AttributeValue
}

func newProfileStore() *profileStore {
	return &profileStore{items: make(map[string]map[string]types.AttributeValue)}
}

func attrString(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (s *profileStore) PutItem(ctx context.Context, tableName string, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	s.items[attrString(av, "userId")] = av
	return nil
}

func (s *profileStore) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	item, ok := s.items[attrString(key, "userId")]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *profileStore) UpdateItem(ctx context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error) {
	return nil, nil
}

func (s *profileStore) DeleteItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) error {
	delete(s.items, attrString(key, "userId"))
	return nil
}

func (s *profileStore) QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string, expressionAttributeValues map[string]types.AttributeValue, expressionAttributeNames map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	email := ""
	if v, ok := expressionAttributeValues[":emailId"].(*types.AttributeValueMemberS); ok {
		email = v.Value
	}
	var out []map[string]types.AttributeValue
	for _, item := range s.items {
		if attrString(item, "emailId") == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *profileStore) ScanWithFilter(ctx context.Context, tableName string, filterFunc func(map[string]types.AttributeValue) bool, excludeFields map[string]string, result interface{}) error {
	var matches []map[string]types.AttributeValue
	for _, item := range s.items {
		excluded := false
		for field, value := range excludeFields {
			if attrString(item, field) == value {
				excluded = true
				break
			}
		}
		if !excluded {
			matches = append(matches, item)
		}
	}
	return attributevalue.UnmarshalListOfMaps(matches, result)
}

func seedProfile(t *testing.T, ups *UserProfileService, p models.UserProfile) *models.UserProfile {
	t.Helper()
	created, err := ups.AddUserProfile(context.Background(), p)
	require.NoError(t, err)
	return created
}

func TestGetUserProfile(t *testing.T) {
	ups := &UserProfileService{Dynamo: newProfileStore()}
	seedProfile(t, ups, models.UserProfile{UserID: "u1", Name: "小梅", EmailID: "mei@example.com"})

	profile, err := ups.GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "小梅", profile.Name)

	_, err = ups.GetUserProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetUserProfileByEmail(t *testing.T) {
	ups := &UserProfileService{Dynamo: newProfileStore()}
	seedProfile(t, ups, models.UserProfile{UserID: "u1", EmailID: "mei@example.com"})

	profile, err := ups.GetUserProfileByEmail(context.Background(), "mei@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.UserID)

	_, err = ups.GetUserProfileByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUpdateUserProfilePreservesIdentity(t *testing.T) {
	ups := &UserProfileService{Dynamo: newProfileStore()}
	seedProfile(t, ups, models.UserProfile{
		UserID:    "u1",
		Name:      "小梅",
		EmailID:   "mei@example.com",
		Password:  "hashed",
		CreatedAt: "2024-01-01T00:00:00Z",
	})

	updated, err := ups.UpdateUserProfile(context.Background(), "u1", UpdateProfileRequest{
		Name:        "小梅",
		Gender:      models.GenderFemale,
		BirthDate:   "1996-09-30",
		CurrentCity: "上海",
		Education:   "硕士",
		CarAndHouse: models.CarAndHouse{HasCar: true},
		Height:      165,
		Hobbies:     "旅行, 阅读",
		MBTI:        "INFJ",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", updated.UserID)
	assert.Equal(t, "mei@example.com", updated.EmailID)
	assert.Equal(t, "hashed", updated.Password)
	assert.Equal(t, "2024-01-01T00:00:00Z", updated.CreatedAt)
	assert.NotEmpty(t, updated.UpdatedAt)

	assert.Equal(t, models.GenderFemale, updated.Gender)
	assert.Equal(t, "硕士", updated.Education)
	assert.True(t, updated.CarAndHouse.HasCar)

	stored, err := ups.GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "上海", stored.CurrentCity)
}

func TestUpdateUserProfileUnknownUser(t *testing.T) {
	ups := &UserProfileService{Dynamo: newProfileStore()}

	_, err := ups.UpdateUserProfile(context.Background(), "ghost", UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestListCandidatesExcludesGenderAndSelf(t *testing.T) {
	ups := &UserProfileService{Dynamo: newProfileStore()}
	seedProfile(t, ups, models.UserProfile{UserID: "u1", Gender: models.GenderMale})
	seedProfile(t, ups, models.UserProfile{UserID: "u2", Gender: models.GenderMale})
	seedProfile(t, ups, models.UserProfile{UserID: "u3", Gender: models.GenderFemale})
	seedProfile(t, ups, models.UserProfile{UserID: "u4", Gender: models.GenderFemale})

	candidates, err := ups.ListCandidates(context.Background(), models.GenderMale, "u1")
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	for _, c := range candidates {
		assert.Equal(t, models.GenderFemale, c.Gender)
		assert.NotEqual(t, "u1", c.UserID)
	}
}
