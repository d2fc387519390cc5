package models

import "strings"

// Trip and request type values accepted on a search request.
const (
	TripOneWay    = "one_way"
	TripRoundTrip = "round_trip"

	RequestFlights  = "flights"
	RequestHotels   = "hotels"
	RequestPackages = "packages"

	CabinEconomy  = "ECONOMY"
	CabinBusiness = "BUSINESS"
)

// SearchRequest is the normalized search produced by the conversational layer.
// DepartureDate is the first day of the 7-day departure window (YYYY-MM-DD).
type SearchRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Cabin         string `json:"cabin"`
	Duration      int    `json:"duration"`
	TripType      string `json:"tripType"`
	RequestType   string `json:"requestType"`
	DepartureDate string `json:"departureDate"`
}

// Normalized returns a copy with codes uppercased and defaults applied.
// Airport/city code matching is case-insensitive everywhere downstream.
func (r SearchRequest) Normalized() SearchRequest {
	out := r
	out.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	out.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	out.Cabin = strings.ToUpper(strings.TrimSpace(r.Cabin))
	if out.Cabin == "" {
		out.Cabin = CabinEconomy
	}
	if out.TripType == "" {
		out.TripType = TripRoundTrip
	}
	if out.RequestType == "" {
		out.RequestType = RequestPackages
	}
	return out
}
