package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"yuanfen_server/models"
	"yuanfen_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrPhotoNotFound is returned for unknown photo ids.
	ErrPhotoNotFound = errors.New("photo not found")
	// ErrNotPhotoOwner is returned when a user touches someone else's photo.
	ErrNotPhotoOwner = errors.New("not the photo owner")
)

type PhotoService struct {
	Dynamo Store
	Log    *zap.SugaredLogger
}

// ListPhotos returns a user's photos, newest first.
func (ps *PhotoService) ListPhotos(ctx context.Context, userID string) ([]models.Photo, error) {
	items, err := ps.queryUserPhotos(ctx, userID)
	if err != nil {
		return nil, err
	}

	photos := make([]models.Photo, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &photos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal photos: %w", err)
	}

	sort.Slice(photos, func(i, j int) bool {
		return photos[i].CreatedAt > photos[j].CreatedAt
	})
	return photos, nil
}

// AddPhoto stores a new photo record. When isMain is set, every other photo
// of the user has its flag cleared first, keeping at most one main photo.
func (ps *PhotoService) AddPhoto(ctx context.Context, userID, url, caption string, isMain bool) (*models.Photo, error) {
	if isMain {
		if err := ps.clearMainFlags(ctx, userID); err != nil {
			return nil, err
		}
	}

	photo := models.Photo{
		PhotoID:   uuid.NewString(),
		UserID:    userID,
		URL:       url,
		Caption:   caption,
		IsMain:    isMain,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := ps.Dynamo.PutItem(ctx, models.PhotosTable, photo); err != nil {
		return nil, err
	}

	if ps.Log != nil {
		ps.Log.Infow("photo added", "userId", userID, "photoId", photo.PhotoID, "isMain", isMain)
	}
	return &photo, nil
}

// DeletePhoto removes a photo after an ownership check.
func (ps *PhotoService) DeletePhoto(ctx context.Context, userID, photoID string) error {
	photo, err := ps.getPhoto(ctx, photoID)
	if err != nil {
		return err
	}
	if photo.UserID != userID {
		return ErrNotPhotoOwner
	}

	key := map[string]types.AttributeValue{
		"photoId": &types.AttributeValueMemberS{Value: photoID},
	}
	return ps.Dynamo.DeleteItem(ctx, models.PhotosTable, key)
}

// SetMainPhoto promotes a photo to main. The flag is cleared on every other
// photo of the user before being set, so a partial failure can leave zero
// main photos but never two.
func (ps *PhotoService) SetMainPhoto(ctx context.Context, userID, photoID string) (*models.Photo, error) {
	photo, err := ps.getPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo.UserID != userID {
		return nil, ErrNotPhotoOwner
	}

	if err := ps.clearMainFlags(ctx, userID); err != nil {
		return nil, err
	}

	key := map[string]types.AttributeValue{
		"photoId": &types.AttributeValueMemberS{Value: photoID},
	}
	attrs, err := ps.Dynamo.UpdateItem(ctx, models.PhotosTable, "SET #isMain = :isMain", key,
		map[string]types.AttributeValue{":isMain": &types.AttributeValueMemberBOOL{Value: true}},
		map[string]string{"#isMain": "isMain"},
	)
	if err != nil {
		return nil, err
	}

	var updated models.Photo
	if err := attributevalue.UnmarshalMap(attrs, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated photo: %w", err)
	}

	if ps.Log != nil {
		ps.Log.Infow("main photo set", "userId", userID, "photoId", photoID)
	}
	return &updated, nil
}

func (ps *PhotoService) getPhoto(ctx context.Context, photoID string) (*models.Photo, error) {
	key := map[string]types.AttributeValue{
		"photoId": &types.AttributeValueMemberS{Value: photoID},
	}
	item, err := ps.Dynamo.GetItem(ctx, models.PhotosTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}

	var photo models.Photo
	if err := attributevalue.UnmarshalMap(item, &photo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal photo: %w", err)
	}
	return &photo, nil
}

// clearMainFlags drops isMain on every flagged photo of the user.
func (ps *PhotoService) clearMainFlags(ctx context.Context, userID string) error {
	items, err := ps.queryUserPhotos(ctx, userID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if !utils.ExtractBool(item, "isMain") {
			continue
		}
		photoID := utils.ExtractString(item, "photoId")
		if photoID == "" {
			continue
		}
		key := map[string]types.AttributeValue{
			"photoId": &types.AttributeValueMemberS{Value: photoID},
		}
		_, err := ps.Dynamo.UpdateItem(ctx, models.PhotosTable, "SET #isMain = :isMain", key,
			map[string]types.AttributeValue{":isMain": &types.AttributeValueMemberBOOL{Value: false}},
			map[string]string{"#isMain": "isMain"},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (ps *PhotoService) queryUserPhotos(ctx context.Context, userID string) ([]map[string]types.AttributeValue, error) {
	keyCondition := "userId = :userId"
	expressionAttributeValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ps.Dynamo.QueryItemsWithIndex(ctx, models.PhotosTable, models.UserIdIndex, keyCondition, expressionAttributeValues, nil, 0)
}
