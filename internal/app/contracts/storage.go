package contracts

import (
	"context"
	"time"
)

type ObjectStorage interface {
	// PresignedGetURL returns a time-limited download URL for an object key.
	PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}
