package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/yemenhybrid/workshop-go/internal/config"
	"github.com/yemenhybrid/workshop-go/internal/logger"
	"go.uber.org/zap"
)

// Store wraps the object storage used for chat attachments.
type Store struct {
	client *minioSDK.Client
	bucket string
}

// NewStore connects to MinIO and ensures the attachment bucket exists.
func NewStore() (*Store, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to minio: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
		logger.L.Info("created attachment bucket", zap.String("bucket", config.MinioBucket))
	}

	return &Store{client: client, bucket: config.MinioBucket}, nil
}

// UploadAttachment stores an attachment under a generated object name
// and returns that name. The original file name survives only in the
// message metadata, never in the object key.
func (s *Store) UploadAttachment(ctx context.Context, fileName, contentType string, r io.Reader, size int64) (string, error) {
	if strings.TrimSpace(fileName) == "" {
		return "", fmt.Errorf("file name cannot be empty")
	}
	objectName := fmt.Sprintf("%s/%s%s", time.Now().UTC().Format("2006/01"), uuid.NewString(), path.Ext(fileName))
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload attachment: %w", err)
	}
	return objectName, nil
}

// PresignedURL returns a temporary download link for an object.
func (s *Store) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign object: %w", err)
	}
	return u.String(), nil
}

// DeleteObject removes an attachment object.
func (s *Store) DeleteObject(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minioSDK.RemoveObjectOptions{})
}
