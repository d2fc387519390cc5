package search

import (
	"context"
	"testing"

	"tripdesk/models"

	"go.uber.org/zap"
)

// stubFallback returns canned buckets so the service layer can be tested
// without the tier machinery.
type stubFallback struct {
	buckets []models.DayBucket
	seen    models.SearchRequest
}

func (s *stubFallback) FlightPhase(ctx context.Context, req models.SearchRequest) ([]models.DayBucket, error) {
	s.seen = req
	return s.buckets, nil
}

func (s *stubFallback) HotelPhase(ctx context.Context, req models.SearchRequest, buckets []models.DayBucket) error {
	return nil
}

func testBuckets() []models.DayBucket {
	return []models.DayBucket{{
		Day: 1,
		Flights: []models.FlightOffer{{
			ID:    "F1",
			Price: models.FlightPrice{Total: "15000.00", Currency: "EGP"},
			Itineraries: []models.Itinerary{{Segments: []models.Segment{{
				Departure: models.SegmentPoint{Airport: "CAI", At: "2025-11-01T09:00:00"},
				Arrival:   models.SegmentPoint{Airport: "DXB", At: "2025-11-01T14:00:00"},
				Carrier:   "MS", FlightNumber: "MS912",
			}}}},
			Source: models.SourceExactMatch,
		}},
		CheckIn:  "2025-11-01",
		CheckOut: "2025-11-06",
	}}
}

func TestSearchPackagesRejectsBadRequests(t *testing.T) {
	svc := &DefaultSearchService{Fallback: &stubFallback{}, Logger: zap.NewNop()}

	_, err := svc.SearchPackages(context.Background(), models.SearchRequest{
		Origin: "CAI", Destination: "DXB", DepartureDate: "next week",
	})
	if err == nil {
		t.Error("expected error for an unparseable departure date")
	}

	_, err = svc.SearchPackages(context.Background(), models.SearchRequest{
		Origin: "CAI", DepartureDate: "2025-11-01",
	})
	if err == nil {
		t.Error("expected error for a missing destination")
	}
}

func TestSearchPackagesNormalizesAndAssembles(t *testing.T) {
	stub := &stubFallback{buckets: testBuckets()}
	svc := &DefaultSearchService{Fallback: stub, Logger: zap.NewNop(), Currency: "EGP"}

	result, err := svc.SearchPackages(context.Background(), models.SearchRequest{
		Origin:        "cai",
		Destination:   " dxb ",
		Duration:      5,
		DepartureDate: "2025-11-01",
	})
	if err != nil {
		t.Fatalf("SearchPackages: %v", err)
	}

	if result.Request.Origin != "CAI" || result.Request.Destination != "DXB" {
		t.Errorf("request not normalized: %+v", result.Request)
	}
	if result.Request.Cabin != models.CabinEconomy || result.Request.TripType != models.TripRoundTrip {
		t.Errorf("defaults not applied: %+v", result.Request)
	}
	if stub.seen.Origin != "CAI" {
		t.Errorf("fallback received a non-normalized request: %+v", stub.seen)
	}

	if len(result.Packages) != 1 {
		t.Fatalf("got %d packages, want 1", len(result.Packages))
	}
	if result.Packages[0].Pricing.FlightPrice != 15000 {
		t.Errorf("pricing = %+v", result.Packages[0].Pricing)
	}
}
