package http

import (
	"emotiai/internal/analysis"
	"emotiai/pkg/log"
)

type handler struct {
	l  log.Logger
	uc analysis.UseCase
}

// New creates a new HTTP handler for the analysis domain.
func New(l log.Logger, uc analysis.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
