package content

import "errors"

var (
	ErrNotFound    = errors.New("content not found")
	ErrSlugTaken   = errors.New("slug already in use")
	ErrUnknownImage = errors.New("image not attached to this content")
)
