package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"go-image-intensity/internal/backend"
	"go-image-intensity/internal/cache"
	"go-image-intensity/internal/cachekey"
	"go-image-intensity/internal/logger"
	"go-image-intensity/pkg/models"
)

// CacheStatus records whether a result came from the cache or from a fresh
// backend computation. It is exposed to clients via the X-Cache header.
type CacheStatus string

const (
	CacheHit  CacheStatus = "hit"
	CacheMiss CacheStatus = "miss"
)

// IntensityService orchestrates the request-to-result pipeline: cache-key
// derivation, cache lookup, backend delegation and write-through.
type IntensityService interface {
	AnalyzeUpload(ctx context.Context, data []byte) (*models.AnalysisResult, CacheStatus, error)
}

// intensityService implements IntensityService against injected cache and
// backend handles, keeping it testable with in-process fakes.
type intensityService struct {
	cache          cache.ResultCache
	analyzer       backend.Analyzer
	allowedFormats []string
	cacheTTL       time.Duration
}

func NewIntensityService(
	resultCache cache.ResultCache,
	analyzer backend.Analyzer,
	allowedFormats []string,
	cacheTTL time.Duration,
) IntensityService {
	return &intensityService{
		cache:          resultCache,
		analyzer:       analyzer,
		allowedFormats: allowedFormats,
		cacheTTL:       cacheTTL,
	}
}

// AnalyzeUpload resolves the result for the given upload bytes. At most one
// backend call and two cache calls (get, then set) are issued per request,
// strictly sequential. Concurrent misses for the same bytes each invoke the
// backend; the computation is idempotent, so the second write simply
// overwrites the first.
func (s *intensityService) AnalyzeUpload(ctx context.Context, data []byte) (*models.AnalysisResult, CacheStatus, error) {
	key := cachekey.Compute(data)

	if result, ok := s.cache.Get(ctx, key); ok {
		logger.WithField("key", key).Debug("Cache hit")
		return result, CacheHit, nil
	}

	result, err := s.analyzer.Analyze(ctx, data, s.allowedFormats)
	if err != nil {
		return nil, CacheMiss, err
	}

	s.cache.Set(ctx, key, result, s.cacheTTL)

	logger.WithFields(logrus.Fields{
		"key":         key,
		"image_bytes": len(data),
	}).Debug("Result computed and cached")

	return result, CacheMiss, nil
}
