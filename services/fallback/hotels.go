package fallback

import (
	"context"

	offersRepo "tripdesk/database/repository/offers"
	"tripdesk/models"

	"go.uber.org/zap"
)

// HotelPhase fills each bucket's hotel list. It requires the flight phase to
// have run first: a bucket without derived stay dates yields no hotel data at
// all (no synthesis is attempted for it). Company-rate hotels are appended on
// every day regardless of which tier produced the rest.
func (s *DefaultFallbackService) HotelPhase(ctx context.Context, req models.SearchRequest, buckets []models.DayBucket) error {
	cityCode := CityCodeFor(req.Destination)
	hotelIDs := s.cityHotelIDs(ctx, cityCode)

	var template []models.HotelOffer
	for i := range buckets {
		b := &buckets[i]
		if !b.HasDates() {
			b.Hotels = nil
			continue
		}

		hotels := s.hotelsForDay(ctx, cityCode, b.CheckIn, b.CheckOut, b.Day, hotelIDs, &template)
		normalizeHotelSources(hotels)
		hotels = append(hotels, s.companyHotels(cityCode, b.CheckIn, b.CheckOut)...)
		b.Hotels = hotels
	}
	return nil
}

// hotelsForDay walks the hotel tiers for one day. The day-1 synthetic result
// set (generator or emergency) is retained through template as the clone
// source for days 2-7.
func (s *DefaultFallbackService) hotelsForDay(ctx context.Context, cityCode, checkIn, checkOut string, day int, hotelIDs []string, template *[]models.HotelOffer) []models.HotelOffer {
	// Tier 1: exact stay window from the store.
	var exact []models.HotelOffer
	err := s.callStore(ctx, "hotels exact", func() error {
		var err error
		exact, err = s.Offers.LookupHotelsExact(ctx, cityCode, checkIn, checkOut)
		return err
	})
	if !s.storeMiss("hotels exact", err) {
		sortHotelsByPrice(exact)
		return exact
	}

	// Tier 1b: any stay window, rescaled per night onto the requested one.
	if rescaled := s.rescaledStoredHotels(ctx, cityCode, checkIn, checkOut); len(rescaled) > 0 {
		return rescaled
	}

	targetNights := nightsBetween(checkIn, checkOut)

	if day == 1 {
		// Tier 2: synthetic generation, day 1 only; result becomes the template.
		if s.Generator != nil {
			generated, err := s.Generator.GenerateHotels(ctx, cityCode, checkIn, checkOut, len(emergencyHotelNames))
			if err == nil && len(generated) > 0 {
				sortHotelsByPrice(generated)
				*template = generated
				return generated
			}
			s.Logger.Warn("hotel generation failed, using emergency generator",
				zap.String("city", cityCode), zap.Error(err))
		}
		fallbackSet := emergencyHotels(cityCode, checkIn, checkOut, hotelIDs, s.Currency)
		*template = fallbackSet
		return fallbackSet
	}

	// Days 2-7: clone the day-1 template when it exists.
	if len(*template) > 0 {
		cloned := CloneAndAdjustHotels(*template, checkIn, checkOut)
		if len(cloned) > 0 {
			sortHotelsByPrice(cloned)
			return cloned
		}
		s.Logger.Debug("hotel template could not be rescaled for day",
			zap.Int("day", day), zap.Int("nights", targetNights))
	}
	return emergencyHotels(cityCode, checkIn, checkOut, hotelIDs, s.Currency)
}

// rescaledStoredHotels is the any-date store path: stored stays are repriced
// per night for the requested window. Records with unusable source windows
// are skipped rather than mispriced.
func (s *DefaultFallbackService) rescaledStoredHotels(ctx context.Context, cityCode, checkIn, checkOut string) []models.HotelOffer {
	var stored []offersRepo.StoredHotel
	err := s.callStore(ctx, "hotels any date", func() error {
		var err error
		stored, err = s.Offers.LookupHotelsAnyDate(ctx, cityCode)
		return err
	})
	if s.storeMiss("hotels any date", err) {
		return nil
	}

	targetNights := nightsBetween(checkIn, checkOut)
	out := make([]models.HotelOffer, 0, len(stored))
	for _, hit := range stored {
		sourceNights := nightsBetween(hit.SourceCheckIn, hit.SourceCheckOut)
		scaled, err := ScaleHotelToNights(hit.Offer, sourceNights, targetNights, checkIn, checkOut)
		if err != nil {
			s.Logger.Debug("skipping stored hotel with unusable stay window",
				zap.String("hotel", hit.Offer.Hotel.Name), zap.Error(err))
			continue
		}
		out = append(out, scaled)
	}
	sortHotelsByPrice(out)
	return out
}

// companyHotels prices the static company rates for the stay window.
func (s *DefaultFallbackService) companyHotels(cityCode, checkIn, checkOut string) []models.HotelOffer {
	nights := nightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil
	}
	rates := s.Rates.ForCity(cityCode)
	out := make([]models.HotelOffer, 0, len(rates))
	for i, rate := range rates {
		out = append(out, models.HotelOffer{
			Hotel:     models.HotelInfo{Name: rate.HotelName, ID: companyHotelID(cityCode, i)},
			Available: true,
			BestOffers: []models.BestOffer{{
				RoomType: "STANDARD",
				Offer: models.HotelStay{
					Price: models.HotelPrice{
						Total:    formatPrice(rate.RatePerNight * float64(nights)),
						Currency: rate.Currency,
					},
					CheckInDate:  checkIn,
					CheckOutDate: checkOut,
				},
				Contacts: rate.Contacts,
				Notes:    rate.Notes,
			}},
			Source: models.HotelSourceCompany,
		})
	}
	return out
}

func companyHotelID(cityCode string, i int) string {
	return "COMPANY-" + cityCode + "-" + string(rune('A'+i))
}

// normalizeHotelSources collapses every non-company tier to the API source so
// downstream consumers treat stored, generated and cloned records uniformly.
func normalizeHotelSources(hotels []models.HotelOffer) {
	for i := range hotels {
		if hotels[i].Source != models.HotelSourceCompany {
			hotels[i].Source = models.HotelSourceAPI
		}
	}
}
