package fallback

import (
	"context"
	"fmt"
	"time"

	offersRepo "tripdesk/database/repository/offers"
	"tripdesk/models"

	"go.uber.org/zap"
)

// FlightPhase fills one bucket per day of the window with flight offers and
// the derived hotel stay dates. The only fatal condition is an unusable
// departure date; every other failure degrades to a more synthetic tier.
func (s *DefaultFallbackService) FlightPhase(ctx context.Context, req models.SearchRequest) ([]models.DayBucket, error) {
	departure, err := time.Parse(DateLayout, req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("request has no usable departure date (%q): %w", req.DepartureDate, err)
	}

	buckets := make([]models.DayBucket, searchWindowDays)
	for i := range buckets {
		buckets[i].Day = i + 1
	}

	// Hotels-only searches skip the flight tiers entirely and take their stay
	// windows straight from the requested dates.
	if req.RequestType == models.RequestHotels {
		duration := req.Duration
		if duration <= 0 {
			duration = defaultNights
		}
		for i := range buckets {
			checkIn := departure.AddDate(0, 0, i)
			buckets[i].CheckIn = checkIn.Format(DateLayout)
			buckets[i].CheckOut = checkIn.AddDate(0, 0, duration).Format(DateLayout)
		}
		return buckets, nil
	}

	var template []models.FlightOffer
	for i := range buckets {
		day := i + 1
		date := departure.AddDate(0, 0, i).Format(DateLayout)

		flights := s.flightsForDay(ctx, req, date, day, template)
		if day == 1 {
			template = flights
		}
		buckets[i].Flights = flights

		if len(flights) > 0 {
			checkIn, checkOut := DeriveHotelDates(flights[0], req.Duration, req.TripType)
			if checkIn == "" {
				s.Logger.Warn("could not derive stay dates, day carries no hotel data",
					zap.Int("day", day), zap.String("date", date))
			}
			buckets[i].CheckIn = checkIn
			buckets[i].CheckOut = checkOut
		}
	}
	return buckets, nil
}

// flightsForDay walks the tiers for a single day.
func (s *DefaultFallbackService) flightsForDay(ctx context.Context, req models.SearchRequest, date string, day int, template []models.FlightOffer) []models.FlightOffer {
	// Tier 1: exact-date store hit. Records are used untouched.
	var exact []models.FlightOffer
	err := s.callStore(ctx, "flights exact", func() error {
		var err error
		exact, err = s.Offers.LookupFlights(ctx, req.Origin, req.Destination, date, req.Cabin, req.Duration)
		return err
	})
	if !s.storeMiss("flights exact", err) {
		return tagFlights(exact, models.SourceExactMatch, date, day)
	}

	// Tier 2: any-date store hit, shifted onto the requested date.
	var stored []offersRepo.StoredFlight
	err = s.callStore(ctx, "flights any date", func() error {
		var err error
		stored, err = s.Offers.LookupFlightsAnyDate(ctx, req.Origin, req.Destination, req.Cabin, req.Duration)
		return err
	})
	if !s.storeMiss("flights any date", err) {
		if adjusted := s.adjustStoredFlights(stored, date, day); len(adjusted) > 0 {
			return adjusted
		}
	}

	if day == 1 {
		// Tier 3: synthetic generation, deliberately bounded to day 1.
		if s.Generator != nil {
			generated, err := s.Generator.GenerateFlights(ctx, req.Origin, req.Destination, date, req.Cabin, req.Duration, generatorOfferCount)
			if err == nil && len(generated) > 0 {
				return tagFlights(generated, models.SourceLLM, date, day)
			}
			s.Logger.Warn("flight generation failed, using emergency generator",
				zap.String("date", date), zap.Error(err))
		}
		// Tier 4: emergency rule-based generation.
		return emergencyFlights(req, date, day, s.Currency)
	}

	// Days 2-7: clone the day-1 result set when one exists, otherwise generate
	// the day independently.
	if len(template) > 0 {
		return CloneAndAdjustFlights(template, date, req.Duration, day)
	}
	return emergencyFlights(req, date, day, s.Currency)
}

// adjustStoredFlights shifts any-date hits onto the requested date. The shift
// preserves wall-clock times and prices; only the dates move.
func (s *DefaultFallbackService) adjustStoredFlights(hits []offersRepo.StoredFlight, date string, day int) []models.FlightOffer {
	requested, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil
	}
	out := make([]models.FlightOffer, 0, len(hits))
	for _, hit := range hits {
		source, err := time.Parse(DateLayout, hit.SourceDate)
		if err != nil {
			s.Logger.Debug("stored flight has unusable source date",
				zap.String("sourceDate", hit.SourceDate))
			continue
		}
		offsetDays := int(requested.Sub(source).Hours() / 24)
		adjusted := AdjustFlightDates(hit.Offer, offsetDays)
		adjusted.Source = models.SourceDatabase
		adjusted.SearchDate = date
		adjusted.DayNumber = day
		out = append(out, adjusted)
	}
	return out
}

func tagFlights(offers []models.FlightOffer, source, date string, day int) []models.FlightOffer {
	out := make([]models.FlightOffer, 0, len(offers))
	for _, o := range offers {
		tagged := o.Clone()
		tagged.Source = source
		tagged.SearchDate = date
		tagged.DayNumber = day
		out = append(out, tagged)
	}
	return out
}
