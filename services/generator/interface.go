package generator

import (
	"context"
	"fmt"

	"tripdesk/models"
)

// OfferGenerator produces schema-conformant synthetic offers. It is the most
// expensive fallback tier and is only invoked for day 1 of a search.
type OfferGenerator interface {
	GenerateFlights(ctx context.Context, origin, destination, date, cabin string, duration, count int) ([]models.FlightOffer, error)
	GenerateHotels(ctx context.Context, cityCode, checkIn, checkOut string, count int) ([]models.HotelOffer, error)
}

// GenerationError reports a model or parse failure. The orchestrator falls
// back to the deterministic emergency generator on it.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generationError: %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func newGenerationError(stage string, err error) error {
	return &GenerationError{Stage: stage, Err: err}
}
