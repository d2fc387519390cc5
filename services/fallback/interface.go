package fallback

import (
	"context"
	"time"

	"tripdesk/models"
	"tripdesk/services/companyrates"
	"tripdesk/services/generator"

	offersRepo "tripdesk/database/repository/offers"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// FallbackService populates the 7-day window, trying for each day:
// Offer Store (exact date, then any date) -> Synthetic Generator (day 1 only)
// -> Clone-and-Adjust (days 2-7) -> Emergency rule-based generation.
// The flight phase must fully complete before the hotel phase, since hotel
// stay windows are derived from flight arrival times.
type FallbackService interface {
	FlightPhase(ctx context.Context, req models.SearchRequest) ([]models.DayBucket, error)
	HotelPhase(ctx context.Context, req models.SearchRequest, buckets []models.DayBucket) error
}

// DefaultFallbackService implements FallbackService. Generator may be nil when
// no model is configured; the generator tier is then skipped entirely.
type DefaultFallbackService struct {
	Offers    offersRepo.OfferRepository
	Generator generator.OfferGenerator
	Rates     *companyrates.Book
	Logger    *zap.Logger

	// Limiter paces successive store calls to respect upstream rate limits;
	// RetryDelay is the wait before the single retry on a throttled call.
	Limiter    *rate.Limiter
	RetryDelay time.Duration

	// Currency for emergency-generated prices.
	Currency string
}

// searchWindowDays is the size of the sliding departure window.
const searchWindowDays = 7

// generatorOfferCount is how many offers the synthetic tier is asked for.
const generatorOfferCount = 3
