package repository

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrSlugTaken = errors.New("slug already taken")
)
