package model

import "errors"

// Structural validation errors for labels and scores.
var (
	ErrInvalidLabel    = errors.New("label is not in the allowed set")
	ErrScoreOutOfRange = errors.New("score is out of range")
	ErrIncompleteSet   = errors.New("emotion set must contain every label exactly once")
	ErrInvalidRole     = errors.New("conversation role must be user or assistant")
	ErrEmptyContent    = errors.New("conversation turn content is empty")
)
