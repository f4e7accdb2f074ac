package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"nonprofit-cms-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOStorage handles image uploads to MinIO
type MinIOStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	processor *ImageProcessor
}

var _ MediaStore = (*MinIOStorage)(nil)

func NewMinIOStorage(cfg config.MinIOConfig, processor *ImageProcessor) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Create the bucket on first run
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	publicURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, client.EndpointURL().Host, cfg.Bucket)
	}

	return &MinIOStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		processor: processor,
	}, nil
}

// Store validates, normalizes and uploads one multipart file.
// Key format: <folder>/<uuid><ext> (e.g. gallery/9f1c...-.jpg).
func (s *MinIOStorage) Store(ctx context.Context, folder string, file *multipart.FileHeader) (StoredObject, error) {
	if s.processor != nil && file.Size > s.processor.MaxSize {
		return StoredObject{}, &MediaError{
			Reason: ReasonOversize,
			Err:    fmt.Errorf("file exceeds %d MiB", s.processor.MaxSize/(1024*1024)),
		}
	}

	src, err := file.Open()
	if err != nil {
		return StoredObject{}, &MediaError{Reason: ReasonUpstream, Err: fmt.Errorf("open upload: %w", err)}
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return StoredObject{}, &MediaError{Reason: ReasonUpstream, Err: fmt.Errorf("read upload: %w", err)}
	}

	data, format, err := s.processor.Prepare(data)
	if err != nil {
		return StoredObject{}, err
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), Extension(format))

	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "image/" + format},
	)
	if err != nil {
		return StoredObject{}, &MediaError{Reason: ReasonUpstream, Err: fmt.Errorf("upload to minio: %w", err)}
	}

	return StoredObject{
		URL:       fmt.Sprintf("%s/%s", s.publicURL, key),
		StorageID: key,
	}, nil
}

// Delete removes a single object by its storage id.
func (s *MinIOStorage) Delete(ctx context.Context, storageID string) error {
	err := s.client.RemoveObject(ctx, s.bucket, storageID, minio.RemoveObjectOptions{})
	if err != nil {
		return &MediaError{Reason: ReasonUpstream, Err: fmt.Errorf("delete %s: %w", storageID, err)}
	}
	return nil
}

// DeleteMany removes a batch of objects, waiting for every outcome and
// aggregating failures into a single error.
func (s *MinIOStorage) DeleteMany(ctx context.Context, storageIDs []string) error {
	if len(storageIDs) == 0 {
		return nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(storageIDs))
	go func() {
		defer close(objectsCh)
		for _, key := range storageIDs {
			objectsCh <- minio.ObjectInfo{Key: key}
		}
	}()

	var failed []string
	for rmErr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if rmErr.Err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", rmErr.ObjectName, rmErr.Err))
		}
	}

	if len(failed) > 0 {
		return &MediaError{
			Reason: ReasonUpstream,
			Err:    fmt.Errorf("failed to remove %d object(s): %s", len(failed), strings.Join(failed, "; ")),
		}
	}
	return nil
}
