package about

import "errors"

var (
	ErrNotFound     = errors.New("about content not found")
	ErrNoActiveDoc  = errors.New("no active about content")
	ErrVersionTaken = errors.New("an about version with this tag already exists")
)
