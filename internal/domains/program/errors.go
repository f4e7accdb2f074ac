package program

import "errors"

var (
	ErrNotFound  = errors.New("program not found")
	ErrSlugTaken = errors.New("a program with this title already exists")
)
