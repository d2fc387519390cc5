package search

import (
	"context"
	"time"

	"tripdesk/models"
	"tripdesk/services/fallback"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SearchService runs the whole pipeline for one request: flight phase, hotel
// phase, package assembly. Results for identical normalized requests are
// served from the cache while fresh.
type SearchService interface {
	SearchPackages(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error)
}

// DefaultSearchService implements SearchService. Cache may be nil, in which
// case every request runs the pipeline.
type DefaultSearchService struct {
	Fallback fallback.FallbackService
	Cache    *redis.Client
	Logger   *zap.Logger

	// Timeout caps one full pipeline run; CacheTTL bounds result staleness.
	Timeout  time.Duration
	CacheTTL time.Duration
	Currency string
}
