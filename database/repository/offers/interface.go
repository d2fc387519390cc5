package offersRepo

import (
	"context"

	"tripdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StoredFlight is an any-date lookup hit: the offer plus the departure date it
// was originally collected for, so the caller can shift it to the requested day.
type StoredFlight struct {
	Offer      models.FlightOffer
	SourceDate string
}

// StoredHotel is an any-date lookup hit with the stay window it was priced for.
type StoredHotel struct {
	Offer          models.HotelOffer
	SourceCheckIn  string
	SourceCheckOut string
}

// OfferRepository is the read-only store of previously collected offers. It
// never synthesizes data: a miss is reported as NotFoundError and the caller
// advances to the next fallback tier. Code matching is case-insensitive
// (records are stored uppercased, lookups normalize before querying).
type OfferRepository interface {
	LookupFlights(ctx context.Context, origin, destination, date, cabin string, duration int) ([]models.FlightOffer, error)
	LookupFlightsAnyDate(ctx context.Context, origin, destination, cabin string, duration int) ([]StoredFlight, error)
	LookupHotelIDs(ctx context.Context, cityCode string) ([]string, error)
	LookupHotelsExact(ctx context.Context, cityCode, checkIn, checkOut string) ([]models.HotelOffer, error)
	LookupHotelsAnyDate(ctx context.Context, cityCode string) ([]StoredHotel, error)

	// FlightTemplate / HotelTemplate return one real record used to seed the
	// generator prompt as a structural example.
	FlightTemplate(ctx context.Context, origin, destination string) (*models.FlightOffer, error)
	HotelTemplate(ctx context.Context, cityCode string) (*models.HotelOffer, error)
}

type mongoOfferRepo struct {
	flights *mongo.Collection
	hotels  *mongo.Collection
}

// NewMongoOfferRepo returns an OfferRepository backed by the given database.
func NewMongoOfferRepo(db *mongo.Database) OfferRepository {
	return &mongoOfferRepo{
		flights: db.Collection("flight_offers"),
		hotels:  db.Collection("hotel_offers"),
	}
}
