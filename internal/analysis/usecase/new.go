package usecase

import (
	"emotiai/internal/analysis"
	"emotiai/internal/analysis/fallback"
	"emotiai/internal/analysis/upstream"
	pkgLog "emotiai/pkg/log"
)

// implUseCase is the private implementation of analysis.UseCase.
type implUseCase struct {
	l         pkgLog.Logger
	adapters  upstream.Adapters
	estimator *fallback.Estimator
}

var _ analysis.UseCase = (*implUseCase)(nil)

// New creates a new analysis UseCase instance.
func New(l pkgLog.Logger, adapters upstream.Adapters, estimator *fallback.Estimator) *implUseCase {
	return &implUseCase{
		l:         l,
		adapters:  adapters,
		estimator: estimator,
	}
}
