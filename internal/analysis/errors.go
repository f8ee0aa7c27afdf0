package analysis

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is the root of every caller input error.
	ErrValidation = errors.New("validation error")

	ErrEmptyText = fmt.Errorf("%w: text is required", ErrValidation)
)

// ValidateText rejects text that is empty after trimming whitespace.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}
