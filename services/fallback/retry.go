package fallback

import (
	"context"
	"errors"
	"time"

	offersRepo "tripdesk/database/repository/offers"

	"go.uber.org/zap"
)

// callStore runs one Offer Store call with upstream pacing and the single
// bounded retry on throttling. Whatever error survives is returned to the
// caller, which decides the next tier from its type.
func (s *DefaultFallbackService) callStore(ctx context.Context, op string, fn func() error) error {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return err
		}
	}

	err := fn()
	var rl *offersRepo.RateLimitError
	if !errors.As(err, &rl) {
		return err
	}

	s.Logger.Warn("offer store throttled, retrying once",
		zap.String("op", op), zap.Duration("delay", s.RetryDelay))
	select {
	case <-time.After(s.RetryDelay):
	case <-ctx.Done():
		return ctx.Err()
	}
	return fn()
}

// storeMiss reports whether an Offer Store error means "advance to the next
// tier". Only context cancellation is allowed to abort the day; anything else
// (miss, surviving throttle, storage failure) degrades to a miss.
func (s *DefaultFallbackService) storeMiss(op string, err error) bool {
	if err == nil {
		return false
	}
	var nf *offersRepo.NotFoundError
	if errors.As(err, &nf) {
		s.Logger.Debug("offer store miss", zap.String("op", op))
		return true
	}
	s.Logger.Warn("offer store call failed, treating as miss",
		zap.String("op", op), zap.Error(err))
	return true
}
