package offersRepo

import (
	"context"
	"errors"
	"strings"

	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// flightRecord is the persisted row shape: lookup keys plus the offer blob.
type flightRecord struct {
	Origin      string             `bson:"origin"`
	Destination string             `bson:"destination"`
	Date        string             `bson:"date"`
	Cabin       string             `bson:"cabin"`
	Duration    int                `bson:"duration"`
	Offer       models.FlightOffer `bson:"offer"`
}

type hotelRecord struct {
	CityCode string            `bson:"cityCode"`
	CheckIn  string            `bson:"checkIn"`
	CheckOut string            `bson:"checkOut"`
	HotelID  string            `bson:"hotelId"`
	Offer    models.HotelOffer `bson:"offer"`
}

const lookupLimit = 10

func (r *mongoOfferRepo) LookupFlights(ctx context.Context, origin, destination, date, cabin string, duration int) ([]models.FlightOffer, error) {
	filter := bson.M{
		"origin":      strings.ToUpper(origin),
		"destination": strings.ToUpper(destination),
		"date":        date,
		"cabin":       strings.ToUpper(cabin),
	}
	if duration > 0 {
		filter["duration"] = duration
	}
	records, err := r.findFlights(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, NewNotFoundError("flights %s-%s on %s", origin, destination, date)
	}
	offers := make([]models.FlightOffer, 0, len(records))
	for _, rec := range records {
		offers = append(offers, rec.Offer)
	}
	return offers, nil
}

func (r *mongoOfferRepo) LookupFlightsAnyDate(ctx context.Context, origin, destination, cabin string, duration int) ([]StoredFlight, error) {
	filter := bson.M{
		"origin":      strings.ToUpper(origin),
		"destination": strings.ToUpper(destination),
		"cabin":       strings.ToUpper(cabin),
	}
	if duration > 0 {
		filter["duration"] = duration
	}
	records, err := r.findFlights(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, NewNotFoundError("flights %s-%s any date", origin, destination)
	}
	stored := make([]StoredFlight, 0, len(records))
	for _, rec := range records {
		stored = append(stored, StoredFlight{Offer: rec.Offer, SourceDate: rec.Date})
	}
	return stored, nil
}

func (r *mongoOfferRepo) LookupHotelIDs(ctx context.Context, cityCode string) ([]string, error) {
	values, err := r.hotels.Distinct(ctx, "hotelId", bson.M{"cityCode": strings.ToUpper(cityCode)})
	if err != nil {
		return nil, wrapStoreErr("hotel id lookup", err)
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, NewNotFoundError("hotel ids for city %s", cityCode)
	}
	return ids, nil
}

func (r *mongoOfferRepo) LookupHotelsExact(ctx context.Context, cityCode, checkIn, checkOut string) ([]models.HotelOffer, error) {
	filter := bson.M{
		"cityCode": strings.ToUpper(cityCode),
		"checkIn":  checkIn,
		"checkOut": checkOut,
	}
	records, err := r.findHotels(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, NewNotFoundError("hotels in %s for %s to %s", cityCode, checkIn, checkOut)
	}
	offers := make([]models.HotelOffer, 0, len(records))
	for _, rec := range records {
		offers = append(offers, rec.Offer)
	}
	return offers, nil
}

func (r *mongoOfferRepo) LookupHotelsAnyDate(ctx context.Context, cityCode string) ([]StoredHotel, error) {
	records, err := r.findHotels(ctx, bson.M{"cityCode": strings.ToUpper(cityCode)})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, NewNotFoundError("hotels in %s any date", cityCode)
	}
	stored := make([]StoredHotel, 0, len(records))
	for _, rec := range records {
		stored = append(stored, StoredHotel{
			Offer:          rec.Offer,
			SourceCheckIn:  rec.CheckIn,
			SourceCheckOut: rec.CheckOut,
		})
	}
	return stored, nil
}

func (r *mongoOfferRepo) FlightTemplate(ctx context.Context, origin, destination string) (*models.FlightOffer, error) {
	var rec flightRecord
	err := r.flights.FindOne(ctx, bson.M{
		"origin":      strings.ToUpper(origin),
		"destination": strings.ToUpper(destination),
	}).Decode(&rec)
	if err == nil {
		return &rec.Offer, nil
	}
	// Any stored flight still works as a structural example.
	err = r.flights.FindOne(ctx, bson.M{}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("flight template")
		}
		return nil, wrapStoreErr("flight template", err)
	}
	return &rec.Offer, nil
}

func (r *mongoOfferRepo) HotelTemplate(ctx context.Context, cityCode string) (*models.HotelOffer, error) {
	var rec hotelRecord
	err := r.hotels.FindOne(ctx, bson.M{"cityCode": strings.ToUpper(cityCode)}).Decode(&rec)
	if err == nil {
		return &rec.Offer, nil
	}
	err = r.hotels.FindOne(ctx, bson.M{}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewNotFoundError("hotel template")
		}
		return nil, wrapStoreErr("hotel template", err)
	}
	return &rec.Offer, nil
}

func (r *mongoOfferRepo) findFlights(ctx context.Context, filter bson.M) ([]flightRecord, error) {
	cursor, err := r.flights.Find(ctx, filter, options.Find().SetLimit(lookupLimit))
	if err != nil {
		return nil, wrapStoreErr("flight lookup", err)
	}
	defer cursor.Close(ctx)

	var records []flightRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, wrapStoreErr("flight lookup", err)
	}
	return records, nil
}

func (r *mongoOfferRepo) findHotels(ctx context.Context, filter bson.M) ([]hotelRecord, error) {
	cursor, err := r.hotels.Find(ctx, filter, options.Find().SetLimit(lookupLimit))
	if err != nil {
		return nil, wrapStoreErr("hotel lookup", err)
	}
	defer cursor.Close(ctx)

	var records []hotelRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, wrapStoreErr("hotel lookup", err)
	}
	return records, nil
}

// Mongo-compatible backends signal throttling with command error 16500.
const throttledCode = 16500

func wrapStoreErr(op string, err error) error {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == throttledCode {
		return &RateLimitError{Op: op, Err: err}
	}
	return err
}
