// Package uploads implements the upload-coupled create/update flow shared by
// every resource that accepts images: store attachments in order, and when
// the surrounding persistence step fails, compensate by deleting exactly the
// objects stored for that request.
package uploads

import (
	"context"
	"mime/multipart"
	"time"

	"nonprofit-cms-backend/internal/infrastructure/storage"
	"nonprofit-cms-backend/pkg/logger"
)

// Image is the attachment record embedded in resource documents.
type Image struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
	Caption   string `json:"caption,omitempty"`
}

// FromStored converts a media-store result into an attachment record.
func FromStored(obj storage.StoredObject) Image {
	return Image{URL: obj.URL, StorageID: obj.StorageID}
}

// StorageIDs extracts the opaque keys for batch deletion.
func StorageIDs(images []Image) []string {
	ids := make([]string, 0, len(images))
	for _, img := range images {
		ids = append(ids, img.StorageID)
	}
	return ids
}

// Collect uploads every attached file, preserving attachment order.
// If any upload fails, the objects already stored by this call are rolled
// back and the failing upload's error is returned.
func Collect(ctx context.Context, store storage.MediaStore, folder string, files []*multipart.FileHeader) ([]Image, error) {
	var images []Image
	for _, file := range files {
		obj, err := store.Store(ctx, folder, file)
		if err != nil {
			Rollback(store, images)
			return nil, err
		}
		images = append(images, FromStored(obj))
	}
	return images, nil
}

// Rollback best-effort deletes the objects stored by this request. Failures
// are aggregated into a single log entry and never propagated: an upload
// that cannot be associated with a record must not leak, but cleanup
// trouble must not change the primary outcome either.
//
// Uses a fresh context: the request context is typically already cancelled
// or about to be when compensation runs.
func Rollback(store storage.MediaStore, images []Image) {
	if len(images) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.DeleteMany(ctx, StorageIDs(images)); err != nil {
		logger.Error("failed to clean up uploaded media", err)
	}
}

// Cleanup is Rollback for entity deletion and explicit image removal: the
// entity owns its images, so destroying it must destroy them, but a media
// host hiccup never fails the delete itself.
func Cleanup(store storage.MediaStore, storageIDs []string) {
	if len(storageIDs) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.DeleteMany(ctx, storageIDs); err != nil {
		logger.Error("failed to delete media for removed resource", err)
	}
}
