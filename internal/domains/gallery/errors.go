package gallery

import "errors"

var (
	ErrNotFound      = errors.New("gallery item not found")
	ErrNoImages      = errors.New("at least one image is required")
	ErrLastImageGone = errors.New("a gallery item must keep at least one image")
)
