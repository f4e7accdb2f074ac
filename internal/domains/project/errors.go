package project

import "errors"

var (
	ErrNotFound      = errors.New("project not found")
	ErrImageNotFound = errors.New("image not attached to this project")
)
