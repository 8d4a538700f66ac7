package backend

import (
	"context"

	"go-image-intensity/pkg/models"
)

// Analyzer is the narrow contract to the computation backend: a single
// synchronous analyze capability. The orchestrator only ever depends on this
// interface, so tests substitute an in-process fake for the remote service.
type Analyzer interface {
	// Analyze submits raw image bytes and the configured format allow-list,
	// returning the computed result. Failures surface as *errors.AppError:
	// a validation error when the image is rejected (bad or disallowed
	// format), a backend error when the remote call cannot complete.
	Analyze(ctx context.Context, imageData []byte, allowedFormats []string) (*models.AnalysisResult, error)
}
