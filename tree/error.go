package tree

import "errors"

var (
	ErrChildKeyMismatch = errors.New("child key mismatch")
	ErrChildNotFound    = errors.New("child not found")
	ErrEmptyKey         = errors.New("empty key")
	ErrInvalidChild     = errors.New("invalid child")
	ErrNoHandler        = errors.New("no handler")
	ErrNotInTree        = errors.New("node not in tree")
	ErrSelfReference    = errors.New("self reference")
)
