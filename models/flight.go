package models

// Provenance values recording which tier produced a flight offer.
const (
	SourceExactMatch = "exactMatch"
	SourceDatabase   = "fromDatabase"
	SourceLLM        = "fromLLM"
	SourceEmergency  = "emergencyFallback"
	SourceCloned     = "clonedFromDay1"
)

// FlightPrice carries prices as numeric strings, matching the upstream wire shape.
type FlightPrice struct {
	Total    string `json:"total" bson:"total"`
	Base     string `json:"base,omitempty" bson:"base,omitempty"`
	Currency string `json:"currency" bson:"currency"`
}

// SegmentPoint is one end of a flight segment. At is a local timestamp
// (2006-01-02T15:04:05).
type SegmentPoint struct {
	Airport string `json:"airport" bson:"airport"`
	At      string `json:"at" bson:"at"`
}

type Segment struct {
	Departure    SegmentPoint `json:"departure" bson:"departure"`
	Arrival      SegmentPoint `json:"arrival" bson:"arrival"`
	Carrier      string       `json:"carrier" bson:"carrier"`
	FlightNumber string       `json:"flightNumber" bson:"flightNumber"`
	AircraftCode string       `json:"aircraftCode,omitempty" bson:"aircraftCode,omitempty"`
}

type Itinerary struct {
	Segments []Segment `json:"segments" bson:"segments"`
}

// FlightOffer is one priced itinerary. One-way offers carry exactly one
// itinerary, round-trip offers two (outbound then return). DayNumber is the
// 1-based position inside the 7-day departure window.
type FlightOffer struct {
	ID          string      `json:"id" bson:"id"`
	Price       FlightPrice `json:"price" bson:"price"`
	Itineraries []Itinerary `json:"itineraries" bson:"itineraries"`
	Source      string      `json:"source" bson:"source"`
	SearchDate  string      `json:"searchDate,omitempty" bson:"searchDate,omitempty"`
	DayNumber   int         `json:"dayNumber,omitempty" bson:"dayNumber,omitempty"`
}

// Clone returns a deep copy. Adjustment steps always operate on a clone so a
// day-1 template is never mutated by later clone operations.
func (f FlightOffer) Clone() FlightOffer {
	out := f
	out.Itineraries = make([]Itinerary, len(f.Itineraries))
	for i, it := range f.Itineraries {
		segs := make([]Segment, len(it.Segments))
		copy(segs, it.Segments)
		out.Itineraries[i] = Itinerary{Segments: segs}
	}
	return out
}
