package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"tripdesk/models"
)

// stripFences removes markdown code-fence wrappers that text models tend to
// add around JSON payloads.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

func parseFlightOffers(raw string) ([]models.FlightOffer, error) {
	cleaned := stripFences(raw)

	var offers []models.FlightOffer
	if err := json.Unmarshal([]byte(cleaned), &offers); err != nil {
		// A single object is accepted and wrapped into a one-element array.
		var single models.FlightOffer
		if err2 := json.Unmarshal([]byte(cleaned), &single); err2 != nil {
			return nil, fmt.Errorf("not a flight offer array: %w", err)
		}
		offers = []models.FlightOffer{single}
	}
	if len(offers) == 0 {
		return nil, fmt.Errorf("model returned an empty array")
	}
	for _, o := range offers {
		if len(o.Itineraries) == 0 {
			return nil, fmt.Errorf("offer %q has no itineraries", o.ID)
		}
	}
	return offers, nil
}

func parseHotelOffers(raw string) ([]models.HotelOffer, error) {
	cleaned := stripFences(raw)

	var offers []models.HotelOffer
	if err := json.Unmarshal([]byte(cleaned), &offers); err != nil {
		var single models.HotelOffer
		if err2 := json.Unmarshal([]byte(cleaned), &single); err2 != nil {
			return nil, fmt.Errorf("not a hotel offer array: %w", err)
		}
		offers = []models.HotelOffer{single}
	}
	if len(offers) == 0 {
		return nil, fmt.Errorf("model returned an empty array")
	}
	for _, o := range offers {
		if o.Hotel.Name == "" {
			return nil, fmt.Errorf("offer missing hotel name")
		}
	}
	return offers, nil
}
