package storage

import (
	"context"
	"net/url"
	"time"

	"confidant-service/internal/app/contracts"
	"confidant-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.ObjectStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectKey, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObject(err, m.BucketName)
	}
	return presignedURL.String(), nil
}
