package cache

import (
	"context"
	"time"

	"go-image-intensity/pkg/models"
)

// ResultCache stores analysis results keyed by the content hash of the
// uploaded bytes. The cache is a pure performance optimization: both
// operations fail soft, so an unavailable cache degrades to misses and
// dropped writes, never to request failures.
type ResultCache interface {
	// Get reports the cached result for key, or false on a miss. Connectivity
	// and deserialization errors are treated as misses.
	Get(ctx context.Context, key string) (*models.AnalysisResult, bool)

	// Set writes the result under key with the given TTL. Write failures are
	// logged and otherwise ignored.
	Set(ctx context.Context, key string, result *models.AnalysisResult, ttl time.Duration)
}
