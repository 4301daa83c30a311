package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/saberalex11/education/internal/models"
)

// S3UserStore keeps user records as JSON objects in an S3-compatible bucket.
type S3UserStore struct {
	client *minio.Client
	bucket string
}

func NewS3UserStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*S3UserStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &S3UserStore{
		client: client,
		bucket: bucket,
	}, nil
}

func userObjectKey(phoneNum string) string {
	return fmt.Sprintf("users/%s.json", phoneNum)
}

func (s *S3UserStore) GetUser(ctx context.Context, phoneNum string) (*models.User, error) {
	object, err := s.client.GetObject(ctx, s.bucket, userObjectKey(phoneNum), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get user from S3: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read user data: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

func (s *S3UserStore) SaveUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, userObjectKey(user.PhoneNum), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to save user to S3: %w", err)
	}

	return nil
}

func (s *S3UserStore) UserExists(ctx context.Context, phoneNum string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, userObjectKey(phoneNum), minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if user exists: %w", err)
	}

	return true, nil
}
