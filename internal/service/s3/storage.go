// storage.go
package s3

import (
	"context"
	"time"
)

// Storage определяет интерфейс для работы с S3-совместимым хранилищем
type Storage interface {
	UploadBytes(key string, data []byte, contentType string) error
	DeleteObject(key string) error
	PresignURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
