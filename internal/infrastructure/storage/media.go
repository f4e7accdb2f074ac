package storage

import (
	"context"
	"fmt"
	"mime/multipart"
)

// StoredObject is what the media store hands back for an uploaded file.
// StorageID is the opaque object key used for later deletion.
type StoredObject struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

// MediaError reasons
const (
	ReasonOversize = "oversize"
	ReasonBadType  = "bad-type"
	ReasonUpstream = "upstream"
)

type MediaError struct {
	Reason string
	Err    error
}

func (e *MediaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("media store: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("media store: %s", e.Reason)
}

func (e *MediaError) Unwrap() error { return e.Err }

// MediaStore abstracts the external image host. Services depend on this
// interface; MinIOStorage implements it.
//
// Delete and DeleteMany are best-effort from the caller's point of view:
// their failure must never flip the outcome of a primary operation.
type MediaStore interface {
	Store(ctx context.Context, folder string, file *multipart.FileHeader) (StoredObject, error)
	Delete(ctx context.Context, storageID string) error
	DeleteMany(ctx context.Context, storageIDs []string) error
}
