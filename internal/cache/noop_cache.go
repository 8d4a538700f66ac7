package cache

import (
	"context"
	"time"

	"go-image-intensity/pkg/models"
)

// NoopCache is a ResultCache that never hits and drops every write. It backs
// cache-less operation and keeps tests independent of a running Redis.
type NoopCache struct{}

func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (*NoopCache) Get(context.Context, string) (*models.AnalysisResult, bool) {
	return nil, false
}

func (*NoopCache) Set(context.Context, string, *models.AnalysisResult, time.Duration) {}
