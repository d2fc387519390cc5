package generator

import (
	"encoding/json"
	"fmt"

	"tripdesk/models"
)

// Price guidance bands per cabin and haul, in the reference currency. The
// model is told to stay inside these so synthetic offers rank sensibly next to
// real ones.
type priceBand struct {
	min, max int
}

var flightBands = map[string]map[string]priceBand{
	models.CabinEconomy: {
		"short":  {4000, 12000},
		"medium": {10000, 30000},
		"long":   {25000, 55000},
	},
	models.CabinBusiness: {
		"short":  {15000, 35000},
		"medium": {35000, 80000},
		"long":   {70000, 160000},
	},
}

var hotelBands = map[string]priceBand{
	"3-star": {800, 1800},
	"4-star": {1500, 3000},
	"5-star": {2500, 6000},
}

// Rough route lengths in flight minutes, used only to pick a guidance band.
var routeMinutes = map[string]int{
	"CAI-DXB": 210, "DXB-CAI": 210,
	"CAI-JED": 150, "JED-CAI": 150,
	"CAI-RUH": 165, "RUH-CAI": 165,
	"CAI-IST": 135, "IST-CAI": 135,
	"CAI-LHR": 320, "LHR-CAI": 320,
	"CAI-CDG": 290, "CDG-CAI": 290,
	"CAI-FRA": 270, "FRA-CAI": 270,
	"CAI-JFK": 660, "JFK-CAI": 660,
	"DXB-LHR": 450, "LHR-DXB": 450,
}

func classifyHaul(origin, destination string) string {
	minutes, ok := routeMinutes[origin+"-"+destination]
	if !ok {
		return "medium"
	}
	switch {
	case minutes < 180:
		return "short"
	case minutes < 360:
		return "medium"
	default:
		return "long"
	}
}

func flightGuidance(cabin, haul string) priceBand {
	bands, ok := flightBands[cabin]
	if !ok {
		bands = flightBands[models.CabinEconomy]
	}
	return bands[haul]
}

func buildFlightPrompt(origin, destination, date, cabin string, duration, count int, template string) string {
	haul := classifyHaul(origin, destination)
	band := flightGuidance(cabin, haul)

	prompt := fmt.Sprintf(`You generate realistic flight offer data for a travel search system.

Generate exactly %d round-trip flight offers as a JSON array.
Route: %s to %s, departing %s, returning after %d nights, cabin %s.
This is a %s-haul route: keep price.total between %d and %d (numeric string, currency EGP).
Use real airline carrier codes for this route, departure hours between 06:00 and 22:00,
timestamps formatted as 2006-01-02T15:04:05.
`, count, origin, destination, date, duration, cabin, haul, band.min, band.max)

	if template != "" {
		prompt += "\nFollow exactly the JSON structure of this real example offer:\n" + template + "\n"
	} else {
		prompt += `
Each offer must have: id, price{total,base,currency}, itineraries (array of 2,
outbound then return, each with segments[] of departure{airport,at},
arrival{airport,at}, carrier, flightNumber, aircraftCode).
`
	}

	prompt += "\nRespond with only the JSON array, no commentary and no markdown fences."
	return prompt
}

func buildHotelPrompt(cityCode, checkIn, checkOut string, count int, template string) string {
	prompt := fmt.Sprintf(`You generate realistic hotel offer data for a travel search system.

Generate exactly %d hotel offers as a JSON array for city %s,
check-in %s, check-out %s.
Nightly rates in EGP by tier: 3-star %d-%d, 4-star %d-%d, 5-star %d-%d;
price.total is the nightly rate times the number of nights, as a numeric string.
`, count, cityCode, checkIn, checkOut,
		hotelBands["3-star"].min, hotelBands["3-star"].max,
		hotelBands["4-star"].min, hotelBands["4-star"].max,
		hotelBands["5-star"].min, hotelBands["5-star"].max)

	if template != "" {
		prompt += "\nFollow exactly the JSON structure of this real example offer:\n" + template + "\n"
	} else {
		prompt += `
Each offer must have: hotel{name,hotelId}, available (true), bestOffers (array
sorted ascending by price, each with roomType and offer{price{total,currency},
checkInDate,checkOutDate}).
`
	}

	prompt += "\nRespond with only the JSON array, no commentary and no markdown fences."
	return prompt
}

func marshalTemplate(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
