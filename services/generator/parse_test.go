package generator

import (
	"strings"
	"testing"
)

const flightArrayJSON = `[
  {
    "id": "GEN-1",
    "price": {"total": "14500.00", "currency": "EGP"},
    "itineraries": [
      {"segments": [{
        "departure": {"airport": "CAI", "at": "2025-11-01T08:30:00"},
        "arrival": {"airport": "DXB", "at": "2025-11-01T13:45:00"},
        "carrier": "MS", "flightNumber": "MS910"
      }]}
    ]
  }
]`

func TestParseFlightOffersFencedArray(t *testing.T) {
	raw := "```json\n" + flightArrayJSON + "\n```"
	offers, err := parseFlightOffers(raw)
	if err != nil {
		t.Fatalf("parseFlightOffers: %v", err)
	}
	if len(offers) != 1 || offers[0].ID != "GEN-1" {
		t.Fatalf("unexpected offers: %+v", offers)
	}
	if offers[0].Price.Total != "14500.00" {
		t.Errorf("price = %q", offers[0].Price.Total)
	}
}

func TestParseFlightOffersSingleObject(t *testing.T) {
	single := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(flightArrayJSON), "["), "]")
	offers, err := parseFlightOffers(single)
	if err != nil {
		t.Fatalf("parseFlightOffers: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("got %d offers, want 1", len(offers))
	}
}

func TestParseFlightOffersRejectsBadPayloads(t *testing.T) {
	if _, err := parseFlightOffers("the flights are as follows"); err == nil {
		t.Error("expected error for prose output")
	}
	if _, err := parseFlightOffers("[]"); err == nil {
		t.Error("expected error for an empty array")
	}
	if _, err := parseFlightOffers(`[{"id": "X", "price": {"total": "1.00"}}]`); err == nil {
		t.Error("expected error for an offer without itineraries")
	}
}

func TestParseHotelOffers(t *testing.T) {
	raw := "```\n" + `[{
	  "hotel": {"name": "Grand City Hotel", "hotelId": "DXB001"},
	  "available": true,
	  "bestOffers": [{
	    "roomType": "STANDARD",
	    "offer": {"price": {"total": "5200.00", "currency": "EGP"},
	              "checkInDate": "2025-11-01", "checkOutDate": "2025-11-06"}
	  }]
	}]` + "\n```"

	offers, err := parseHotelOffers(raw)
	if err != nil {
		t.Fatalf("parseHotelOffers: %v", err)
	}
	if offers[0].Hotel.Name != "Grand City Hotel" {
		t.Errorf("hotel name = %q", offers[0].Hotel.Name)
	}

	if _, err := parseHotelOffers(`[{"available": true}]`); err == nil {
		t.Error("expected error for an unnamed hotel")
	}
}

func TestStripFences(t *testing.T) {
	if got := stripFences("```json\n{\"a\":1}\n```"); got != `{"a":1}` {
		t.Errorf("stripFences = %q", got)
	}
	if got := stripFences(`{"a":1}`); got != `{"a":1}` {
		t.Errorf("unfenced input changed: %q", got)
	}
}
