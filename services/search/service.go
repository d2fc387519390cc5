package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripdesk/models"
	"tripdesk/services/packagesvc"

	"go.uber.org/zap"
)

const defaultTimeout = 90 * time.Second

// SearchPackages validates the request, runs both fallback phases under a
// caller-level timeout and assembles the packages. The only fatal condition
// is a request without a usable departure date; upstream failures degrade
// inside the fallback tiers and never surface here.
func (s *DefaultSearchService) SearchPackages(ctx context.Context, req models.SearchRequest) (*models.SearchResult, error) {
	norm := req.Normalized()
	if _, err := time.Parse("2006-01-02", norm.DepartureDate); err != nil {
		return nil, fmt.Errorf("invalid departure date %q: %w", norm.DepartureDate, err)
	}
	if norm.Origin == "" || norm.Destination == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}

	key := cacheKey(norm)
	if cached := s.fromCache(ctx, key); cached != nil {
		s.Logger.Debug("search served from cache", zap.String("key", key))
		return cached, nil
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Flight phase must fully complete before the hotel phase: stay windows
	// are derived from flight arrival times.
	buckets, err := s.Fallback.FlightPhase(ctx, norm)
	if err != nil {
		return nil, err
	}
	if err := s.Fallback.HotelPhase(ctx, norm, buckets); err != nil {
		return nil, err
	}

	result := &models.SearchResult{
		Request:  norm,
		Buckets:  buckets,
		Packages: packagesvc.AssemblePackages(buckets, s.Currency),
	}
	s.toCache(ctx, key, result)
	return result, nil
}

func cacheKey(req models.SearchRequest) string {
	return fmt.Sprintf("search:%s:%s:%s:%d:%s:%s:%s",
		req.Origin, req.Destination, req.Cabin, req.Duration,
		req.TripType, req.RequestType, req.DepartureDate)
}

func (s *DefaultSearchService) fromCache(ctx context.Context, key string) *models.SearchResult {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var result models.SearchResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		s.Logger.Warn("cached search result not parseable, dropping", zap.String("key", key))
		s.Cache.Del(ctx, key)
		return nil
	}
	return &result
}

func (s *DefaultSearchService) toCache(ctx context.Context, key string, result *models.SearchResult) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if err := s.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
		s.Logger.Warn("failed to cache search result", zap.String("key", key), zap.Error(err))
	}
}
