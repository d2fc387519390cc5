package fallback

import (
	"strconv"
	"testing"

	"tripdesk/models"
)

func roundTripOffer(total, base string) models.FlightOffer {
	return models.FlightOffer{
		ID:    "offer-1",
		Price: models.FlightPrice{Total: total, Base: base, Currency: "EGP"},
		Itineraries: []models.Itinerary{
			{Segments: []models.Segment{{
				Departure:    models.SegmentPoint{Airport: "CAI", At: "2025-11-01T09:20:00"},
				Arrival:      models.SegmentPoint{Airport: "DXB", At: "2025-11-01T14:30:00"},
				Carrier:      "MS",
				FlightNumber: "912",
			}}},
			{Segments: []models.Segment{{
				Departure:    models.SegmentPoint{Airport: "DXB", At: "2025-11-06T18:45:00"},
				Arrival:      models.SegmentPoint{Airport: "CAI", At: "2025-11-06T21:10:00"},
				Carrier:      "MS",
				FlightNumber: "913",
			}}},
		},
	}
}

func stayOffer(total, base, checkIn, checkOut string) models.HotelOffer {
	return models.HotelOffer{
		Hotel:     models.HotelInfo{Name: "Test Hotel", ID: "DXB001"},
		Available: true,
		BestOffers: []models.BestOffer{{
			RoomType: "STANDARD",
			Offer: models.HotelStay{
				Price:        models.HotelPrice{Total: total, Base: base, Currency: "EGP"},
				CheckInDate:  checkIn,
				CheckOutDate: checkOut,
			},
		}},
		Source: models.HotelSourceAPI,
	}
}

func TestAdjustFlightDatesShiftsDatesOnly(t *testing.T) {
	offer := roundTripOffer("15000.00", "12750.00")
	shifted := AdjustFlightDates(offer, 3)

	out := shifted.Itineraries[0].Segments[0]
	if out.Departure.At != "2025-11-04T09:20:00" {
		t.Errorf("outbound departure = %q, want 2025-11-04T09:20:00", out.Departure.At)
	}
	if out.Arrival.At != "2025-11-04T14:30:00" {
		t.Errorf("outbound arrival = %q, want 2025-11-04T14:30:00", out.Arrival.At)
	}
	ret := shifted.Itineraries[1].Segments[0]
	if ret.Departure.At != "2025-11-09T18:45:00" {
		t.Errorf("return departure = %q, want 2025-11-09T18:45:00", ret.Departure.At)
	}
	if shifted.Price != offer.Price {
		t.Errorf("price changed by a date shift: %+v", shifted.Price)
	}
	// The input must not be mutated.
	if offer.Itineraries[0].Segments[0].Departure.At != "2025-11-01T09:20:00" {
		t.Error("AdjustFlightDates mutated its input")
	}
}

func TestDeriveHotelDatesRoundTrip(t *testing.T) {
	checkIn, checkOut := DeriveHotelDates(roundTripOffer("15000.00", ""), 5, models.TripRoundTrip)
	if checkIn != "2025-11-01" || checkOut != "2025-11-06" {
		t.Errorf("got (%q, %q), want (2025-11-01, 2025-11-06)", checkIn, checkOut)
	}
}

func TestDeriveHotelDatesOneWayDefaultsDuration(t *testing.T) {
	offer := roundTripOffer("15000.00", "")
	offer.Itineraries = offer.Itineraries[:1]

	checkIn, checkOut := DeriveHotelDates(offer, 0, models.TripOneWay)
	if checkIn != "2025-11-01" || checkOut != "2025-11-04" {
		t.Errorf("got (%q, %q), want (2025-11-01, 2025-11-04)", checkIn, checkOut)
	}
}

func TestDeriveHotelDatesUnusableStamps(t *testing.T) {
	offer := roundTripOffer("15000.00", "")
	offer.Itineraries[0].Segments[0].Arrival.At = "soon"
	if in, out := DeriveHotelDates(offer, 5, models.TripRoundTrip); in != "" || out != "" {
		t.Errorf("got (%q, %q), want empty dates", in, out)
	}
	if in, out := DeriveHotelDates(models.FlightOffer{}, 5, models.TripRoundTrip); in != "" || out != "" {
		t.Errorf("empty offer: got (%q, %q), want empty dates", in, out)
	}
}

func TestScaleHotelToNights(t *testing.T) {
	offer := stayOffer("7500.00", "6000.00", "2025-11-01", "2025-11-06")

	scaled, err := ScaleHotelToNights(offer, 5, 10, "2025-12-01", "2025-12-11")
	if err != nil {
		t.Fatalf("ScaleHotelToNights: %v", err)
	}
	stay := scaled.BestOffers[0].Offer
	if stay.Price.Total != "15000.00" {
		t.Errorf("total = %q, want 15000.00", stay.Price.Total)
	}
	if stay.Price.Base != "12000.00" {
		t.Errorf("base = %q, want 12000.00 (ratio preserved)", stay.Price.Base)
	}
	if stay.CheckInDate != "2025-12-01" || stay.CheckOutDate != "2025-12-11" {
		t.Errorf("stay window = (%q, %q)", stay.CheckInDate, stay.CheckOutDate)
	}
	// The source record must be untouched.
	if offer.BestOffers[0].Offer.Price.Total != "7500.00" {
		t.Error("ScaleHotelToNights mutated its input")
	}

	if _, err := ScaleHotelToNights(offer, 0, 5, "2025-12-01", "2025-12-06"); err == nil {
		t.Error("expected error for zero source nights")
	}
	if _, err := ScaleHotelToNights(offer, 5, 0, "2025-12-01", "2025-12-01"); err == nil {
		t.Error("expected error for zero target nights")
	}
}

func TestCloneAndAdjustFlights(t *testing.T) {
	template := []models.FlightOffer{roundTripOffer("20000.00", "17000.00")}

	clones := CloneAndAdjustFlights(template, "2025-11-03", 5, 3)
	if len(clones) != 1 {
		t.Fatalf("got %d clones, want 1", len(clones))
	}
	clone := clones[0]
	if clone.Source != models.SourceCloned {
		t.Errorf("source = %q, want %q", clone.Source, models.SourceCloned)
	}
	if clone.ID == template[0].ID {
		t.Error("clone reuses the template ID")
	}
	if clone.DayNumber != 3 || clone.SearchDate != "2025-11-03" {
		t.Errorf("day = %d date = %q", clone.DayNumber, clone.SearchDate)
	}

	checkIn, checkOut := DeriveHotelDates(clone, 5, models.TripRoundTrip)
	if checkIn != "2025-11-03" || checkOut != "2025-11-08" {
		t.Errorf("derived window (%q, %q), want (2025-11-03, 2025-11-08)", checkIn, checkOut)
	}

	// Wall-clock times survive the retarget.
	if clone.Itineraries[0].Segments[0].Departure.At != "2025-11-03T09:20:00" {
		t.Errorf("outbound departure = %q", clone.Itineraries[0].Segments[0].Departure.At)
	}

	total, err := strconv.ParseFloat(clone.Price.Total, 64)
	if err != nil {
		t.Fatalf("clone price %q not numeric", clone.Price.Total)
	}
	if total < 20000*0.95 || total > 20000*1.05 {
		t.Errorf("clone price %.2f outside the 5%% variation band", total)
	}

	// Template untouched.
	if template[0].Price.Total != "20000.00" || template[0].Source != "" {
		t.Error("CloneAndAdjustFlights mutated the template")
	}
}

func TestCloneAndAdjustHotels(t *testing.T) {
	template := []models.HotelOffer{
		stayOffer("5000.00", "", "2025-11-01", "2025-11-06"),
		stayOffer("9999.00", "", "", ""), // unscalable window, must be skipped
	}

	clones := CloneAndAdjustHotels(template, "2025-12-01", "2025-12-11")
	if len(clones) != 1 {
		t.Fatalf("got %d clones, want 1 (unscalable template skipped)", len(clones))
	}
	stay := clones[0].BestOffers[0].Offer
	if stay.CheckInDate != "2025-12-01" || stay.CheckOutDate != "2025-12-11" {
		t.Errorf("stay window = (%q, %q)", stay.CheckInDate, stay.CheckOutDate)
	}
	total, err := strconv.ParseFloat(stay.Price.Total, 64)
	if err != nil {
		t.Fatalf("clone price %q not numeric", stay.Price.Total)
	}
	// 5 nights at 1000/night rescaled to 10 nights, then up to 5% variation.
	if total < 10000*0.95 || total > 10000*1.05 {
		t.Errorf("clone price %.2f outside the expected band around 10000", total)
	}
}

func TestNightsBetween(t *testing.T) {
	if n := nightsBetween("2025-11-01", "2025-11-06"); n != 5 {
		t.Errorf("nights = %d, want 5", n)
	}
	if n := nightsBetween("", "2025-11-06"); n != 0 {
		t.Errorf("nights = %d, want 0 for missing check-in", n)
	}
}
