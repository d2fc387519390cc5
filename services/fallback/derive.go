package fallback

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
)

const (
	// DateLayout is the wire format for day-level dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for segment timestamps (local, no zone).
	TimeLayout = "2006-01-02T15:04:05"

	// defaultNights is used when a request carries no usable duration.
	defaultNights = 3

	// priceJitterPct bounds the random price variation applied to cloned offers.
	priceJitterPct = 0.05
)

// parseStamp accepts both segment timestamps and bare dates.
func parseStamp(s string) (time.Time, error) {
	if t, err := time.Parse(TimeLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(DateLayout, s)
}

// nightsBetween returns the number of nights between two YYYY-MM-DD dates,
// or 0 when either date is unparseable.
func nightsBetween(checkIn, checkOut string) int {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

// DeriveHotelDates computes the hotel stay window from a flight offer:
// check-in is the arrival date of the final outbound segment; for round trips
// check-out is the departure date of the first return segment, otherwise
// check-in plus the requested duration (defaulting to 3 nights). Missing or
// unparseable timestamps yield ("", "") and the day carries no hotel data.
func DeriveHotelDates(offer models.FlightOffer, duration int, tripType string) (string, string) {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return "", ""
	}
	outbound := offer.Itineraries[0].Segments
	arrival, err := parseStamp(outbound[len(outbound)-1].Arrival.At)
	if err != nil {
		return "", ""
	}
	checkIn := arrival.Format(DateLayout)

	if tripType == models.TripRoundTrip && len(offer.Itineraries) > 1 && len(offer.Itineraries[1].Segments) > 0 {
		departure, err := parseStamp(offer.Itineraries[1].Segments[0].Departure.At)
		if err != nil {
			return "", ""
		}
		return checkIn, departure.Format(DateLayout)
	}

	if duration <= 0 {
		duration = defaultNights
	}
	checkOut := arrival.AddDate(0, 0, duration).Format(DateLayout)
	return checkIn, checkOut
}

// AdjustFlightDates returns a copy of the offer with every segment timestamp
// shifted by offsetDays, preserving wall-clock time of day. Prices are left
// untouched.
func AdjustFlightDates(offer models.FlightOffer, offsetDays int) models.FlightOffer {
	out := offer.Clone()
	for i := range out.Itineraries {
		for j := range out.Itineraries[i].Segments {
			seg := &out.Itineraries[i].Segments[j]
			seg.Departure.At = shiftStamp(seg.Departure.At, offsetDays)
			seg.Arrival.At = shiftStamp(seg.Arrival.At, offsetDays)
		}
	}
	return out
}

func shiftStamp(stamp string, offsetDays int) string {
	t, err := parseStamp(stamp)
	if err != nil {
		return stamp
	}
	return t.AddDate(0, 0, offsetDays).Format(TimeLayout)
}

// ScaleHotelToNights returns a copy of the offer repriced from sourceNights to
// targetNights using strict price-per-night normalization, with the stay
// window rewritten. sourceNights <= 0 is rejected so a bad source record can
// never produce a division by zero or a negative price.
func ScaleHotelToNights(offer models.HotelOffer, sourceNights, targetNights int, newCheckIn, newCheckOut string) (models.HotelOffer, error) {
	if sourceNights <= 0 {
		return models.HotelOffer{}, fmt.Errorf("source stay of %d nights cannot be rescaled", sourceNights)
	}
	if targetNights <= 0 {
		return models.HotelOffer{}, fmt.Errorf("target stay of %d nights is not priceable", targetNights)
	}

	out := offer.Clone()
	for i := range out.BestOffers {
		stay := &out.BestOffers[i].Offer
		total, err := strconv.ParseFloat(stay.Price.Total, 64)
		if err != nil {
			continue
		}
		perNight := total / float64(sourceNights)
		newTotal := perNight * float64(targetNights)
		// Preserve the base/total ratio when a base price exists.
		if stay.Price.Base != "" {
			if base, err := strconv.ParseFloat(stay.Price.Base, 64); err == nil && total > 0 {
				stay.Price.Base = formatPrice(newTotal * (base / total))
			}
		}
		stay.Price.Total = formatPrice(newTotal)
		stay.CheckInDate = newCheckIn
		stay.CheckOutDate = newCheckOut
	}
	return out, nil
}

// CloneAndAdjustFlights derives day-N offers from the day-1 template set:
// each template is copied, given a bounded random price variation, rewritten
// to depart on newDate (returning after duration nights) and re-tagged.
func CloneAndAdjustFlights(templates []models.FlightOffer, newDate string, duration, dayNumber int) []models.FlightOffer {
	if duration <= 0 {
		duration = defaultNights
	}
	out := make([]models.FlightOffer, 0, len(templates))
	for _, tmpl := range templates {
		clone := tmpl.Clone()
		clone.ID = uuid.New().String()
		clone.Source = models.SourceCloned
		clone.SearchDate = newDate
		clone.DayNumber = dayNumber
		clone.Price = jitterFlightPrice(clone.Price)
		for i := range clone.Itineraries {
			date := newDate
			if i > 0 {
				if d, err := time.Parse(DateLayout, newDate); err == nil {
					date = d.AddDate(0, 0, duration).Format(DateLayout)
				}
			}
			retargetItinerary(&clone.Itineraries[i], date)
		}
		out = append(out, clone)
	}
	return out
}

// retargetItinerary moves every segment of the itinerary onto date, keeping
// each segment's wall-clock time of day.
func retargetItinerary(it *models.Itinerary, date string) {
	target, err := time.Parse(DateLayout, date)
	if err != nil {
		return
	}
	for i := range it.Segments {
		it.Segments[i].Departure.At = retargetStamp(it.Segments[i].Departure.At, target)
		it.Segments[i].Arrival.At = retargetStamp(it.Segments[i].Arrival.At, target)
	}
}

func retargetStamp(stamp string, target time.Time) string {
	t, err := parseStamp(stamp)
	if err != nil {
		return stamp
	}
	moved := time.Date(target.Year(), target.Month(), target.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return moved.Format(TimeLayout)
}

// CloneAndAdjustHotels derives day-N hotel offers from the day-1 template set.
// Pricing is recomputed per night from each template's own stay window, then a
// bounded random variation is applied. Templates whose stay window cannot be
// rescaled are skipped.
func CloneAndAdjustHotels(templates []models.HotelOffer, newCheckIn, newCheckOut string) []models.HotelOffer {
	targetNights := nightsBetween(newCheckIn, newCheckOut)
	out := make([]models.HotelOffer, 0, len(templates))
	for _, tmpl := range templates {
		sourceNights := templateNights(tmpl)
		scaled, err := ScaleHotelToNights(tmpl, sourceNights, targetNights, newCheckIn, newCheckOut)
		if err != nil {
			continue
		}
		for i := range scaled.BestOffers {
			price := &scaled.BestOffers[i].Offer.Price
			if total, err := strconv.ParseFloat(price.Total, 64); err == nil {
				price.Total = formatPrice(jitter(total))
			}
		}
		out = append(out, scaled)
	}
	return out
}

func templateNights(offer models.HotelOffer) int {
	if len(offer.BestOffers) == 0 {
		return 0
	}
	stay := offer.BestOffers[0].Offer
	return nightsBetween(stay.CheckInDate, stay.CheckOutDate)
}

func jitterFlightPrice(p models.FlightPrice) models.FlightPrice {
	total, err := strconv.ParseFloat(p.Total, 64)
	if err != nil {
		return p
	}
	factor := 1 - priceJitterPct + 2*priceJitterPct*rand.Float64()
	p.Total = formatPrice(total * factor)
	if p.Base != "" {
		if base, err := strconv.ParseFloat(p.Base, 64); err == nil {
			p.Base = formatPrice(base * factor)
		}
	}
	return p
}

func jitter(v float64) float64 {
	return v * (1 - priceJitterPct + 2*priceJitterPct*rand.Float64())
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
