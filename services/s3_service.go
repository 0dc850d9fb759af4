package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUploadNotConfigured signals missing bucket/credential configuration,
// as opposed to a transient presigning failure.
var ErrUploadNotConfigured = errors.New("upload storage not configured")

// UploadCredential is a time-limited, bucket-scoped grant for one direct
// client-to-storage upload.
type UploadCredential struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	ExpiresAt string `json:"expiresAt"`
}

type UploadService struct {
	Presigner *s3.PresignClient
	Bucket    string
	URLTTL    time.Duration
	Log       *zap.SugaredLogger
}

// NewUploadService builds the S3 presigner. Bucket may be empty; issuance
// then fails with ErrUploadNotConfigured instead of at startup.
func NewUploadService(ctx context.Context, region, bucket string, urlTTL time.Duration, log *zap.SugaredLogger) (*UploadService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &UploadService{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    bucket,
		URLTTL:    urlTTL,
		Log:       log,
	}, nil
}

// GenerateUploadURL mints a presigned PUT URL for a new photo object.
func (us *UploadService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (*UploadCredential, error) {
	if us.Bucket == "" {
		return nil, ErrUploadNotConfigured
	}

	key := "photos/" + uuid.NewString() + path.Ext(fileName)
	params := &s3.PutObjectInput{
		Bucket:      aws.String(us.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}

	presigned, err := us.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(us.URLTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	if us.Log != nil {
		us.Log.Infow("upload URL issued", "key", key)
	}
	return &UploadCredential{
		URL:       presigned.URL,
		Key:       key,
		ExpiresAt: time.Now().Add(us.URLTTL).UTC().Format(time.RFC3339),
	}, nil
}

// GenerateReadURL mints a presigned GET URL for an existing object.
func (us *UploadService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	if us.Bucket == "" {
		return "", ErrUploadNotConfigured
	}

	params := &s3.GetObjectInput{
		Bucket: aws.String(us.Bucket),
		Key:    aws.String(key),
	}
	presigned, err := us.Presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(us.URLTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return presigned.URL, nil
}
