package models

// Photo defines the structure for user photos
type Photo struct {
	PhotoID   string `dynamodbav:"photoId" json:"photoId"`
	UserID    string `dynamodbav:"userId" json:"userId"`
	URL       string `dynamodbav:"url" json:"url"`
	Caption   string `dynamodbav:"caption,omitempty" json:"caption,omitempty"`
	IsMain    bool   `dynamodbav:"isMain" json:"isMain"`
	CreatedAt string `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// PhotosTable is the DynamoDB table name for photos
const PhotosTable = "Photos"

// UserIdIndex is the GSI on Photos keyed by userId
const UserIdIndex = "UserIdIndex"
