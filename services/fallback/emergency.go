package fallback

import (
	"fmt"
	"math/rand"
	"time"

	"tripdesk/models"

	"github.com/google/uuid"
)

// The emergency tier is pure rule-based generation: bounded price draws,
// plausible times, no I/O. It can never fail, which is what makes the
// orchestrator's non-empty guarantee possible.

// Price bands per cabin in the reference currency.
var emergencyFlightBands = map[string][2]float64{
	models.CabinEconomy:  {10000, 30000},
	models.CabinBusiness: {35000, 80000},
}

const (
	emergencyNightlyMin = 1000
	emergencyNightlyMax = 3500

	emergencyFlightCount = 3
)

var emergencyCarriers = []struct {
	code     string
	aircraft string
}{
	{"MS", "738"},
	{"EK", "77W"},
	{"TK", "321"},
}

// emergencyFlights builds offers for one day of the window. Round trips carry
// two itineraries (outbound on date, return after duration nights), one-way
// offers exactly one.
func emergencyFlights(req models.SearchRequest, date string, dayNumber int, currency string) []models.FlightOffer {
	band, ok := emergencyFlightBands[req.Cabin]
	if !ok {
		band = emergencyFlightBands[models.CabinEconomy]
	}
	duration := req.Duration
	if duration <= 0 {
		duration = defaultNights
	}
	departDay, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil
	}

	offers := make([]models.FlightOffer, 0, emergencyFlightCount)
	for i := 0; i < emergencyFlightCount; i++ {
		carrier := emergencyCarriers[i%len(emergencyCarriers)]
		price := band[0] + rand.Float64()*(band[1]-band[0])

		itineraries := []models.Itinerary{
			syntheticItinerary(req.Origin, req.Destination, departDay, carrier.code, carrier.aircraft, i),
		}
		if req.TripType != models.TripOneWay {
			returnDay := departDay.AddDate(0, 0, duration)
			itineraries = append(itineraries,
				syntheticItinerary(req.Destination, req.Origin, returnDay, carrier.code, carrier.aircraft, i))
		}

		offers = append(offers, models.FlightOffer{
			ID:          uuid.New().String(),
			Price:       models.FlightPrice{Total: formatPrice(price), Base: formatPrice(price * 0.85), Currency: currency},
			Itineraries: itineraries,
			Source:      models.SourceEmergency,
			SearchDate:  date,
			DayNumber:   dayNumber,
		})
	}
	return offers
}

// syntheticItinerary builds a single nonstop segment with a departure hour in
// the 06:00-22:00 window. Departure and duration are bounded so the arrival
// stays on the same calendar day and the derived stay window stays exact.
func syntheticItinerary(origin, destination string, day time.Time, carrier, aircraft string, seq int) models.Itinerary {
	hour := 6 + rand.Intn(13)
	depart := time.Date(day.Year(), day.Month(), day.Day(), hour, 15*rand.Intn(4), 0, 0, time.UTC)
	arrive := depart.Add(time.Duration(120+rand.Intn(180)) * time.Minute)

	return models.Itinerary{
		Segments: []models.Segment{{
			Departure:    models.SegmentPoint{Airport: origin, At: depart.Format(TimeLayout)},
			Arrival:      models.SegmentPoint{Airport: destination, At: arrive.Format(TimeLayout)},
			Carrier:      carrier,
			FlightNumber: fmt.Sprintf("%d", 700+seq*11+rand.Intn(90)),
			AircraftCode: aircraft,
		}},
	}
}

var emergencyHotelNames = []struct {
	name     string
	roomType string
}{
	{"Grand City Hotel", "STANDARD"},
	{"Business Inn", "STANDARD"},
	{"Boutique Residence", "DELUXE"},
	{"Airport Suites", "STANDARD"},
	{"Luxury Collection", "SUITE"},
}

// emergencyHotels draws a nightly rate per hotel and prices the requested stay.
// hotelIDs, when available from the store, are reused so synthetic records
// reference real properties; missing IDs are synthesized from the city code.
func emergencyHotels(cityCode, checkIn, checkOut string, hotelIDs []string, currency string) []models.HotelOffer {
	nights := nightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil
	}

	offers := make([]models.HotelOffer, 0, len(emergencyHotelNames))
	for i, h := range emergencyHotelNames {
		nightly := float64(emergencyNightlyMin + rand.Intn(emergencyNightlyMax-emergencyNightlyMin+1))
		id := fmt.Sprintf("%s%03d", cityCode, i+1)
		if i < len(hotelIDs) {
			id = hotelIDs[i]
		}

		offers = append(offers, models.HotelOffer{
			Hotel:     models.HotelInfo{Name: fmt.Sprintf("%s %s", h.name, cityCode), ID: id},
			Available: true,
			BestOffers: []models.BestOffer{{
				RoomType: h.roomType,
				Offer: models.HotelStay{
					Price:        models.HotelPrice{Total: formatPrice(nightly * float64(nights)), Currency: currency},
					CheckInDate:  checkIn,
					CheckOutDate: checkOut,
				},
			}},
			Source: models.HotelSourceAPI,
		})
	}
	sortHotelsByPrice(offers)
	return offers
}
