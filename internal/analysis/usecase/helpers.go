package usecase

import (
	"context"
	"errors"

	"emotiai/internal/analysis/upstream"
)

// degrade reports whether err is a provider failure that should be answered with a fallback result.
func (uc *implUseCase) degrade(ctx context.Context, capability string, err error) bool {
	var f *upstream.Failure
	if !errors.As(err, &f) {
		return false
	}
	uc.l.Warnf(ctx, "%s: provider %s failed (%s), using fallback: %v", capability, f.Provider, f.Kind, f.Err)
	return true
}
