package fallback

import (
	"context"
	"sort"
	"strings"

	"tripdesk/models"

	"go.uber.org/zap"
)

// Hotel search keys on city codes, not airport codes.
var airportToCity = map[string]string{
	"LHR": "LON", "LGW": "LON", "STN": "LON", "LTN": "LON",
	"CDG": "PAR", "ORY": "PAR",
	"JFK": "NYC", "LGA": "NYC", "EWR": "NYC",
	"FCO": "ROM", "CIA": "ROM",
	"NRT": "TYO", "HND": "TYO",
	"SXF": "BER",
}

// CityCodeFor maps an airport code to its hotel-search city code,
// case-insensitively. Unknown codes pass through unchanged.
func CityCodeFor(airport string) string {
	code := strings.ToUpper(strings.TrimSpace(airport))
	if city, ok := airportToCity[code]; ok {
		return city
	}
	return code
}

// cityHotelIDs resolves the known hotel IDs for a city from the offer store.
// A miss or store failure is not an error: downstream tiers synthesize IDs.
func (s *DefaultFallbackService) cityHotelIDs(ctx context.Context, cityCode string) []string {
	var ids []string
	err := s.callStore(ctx, "hotel id lookup", func() error {
		var err error
		ids, err = s.Offers.LookupHotelIDs(ctx, cityCode)
		return err
	})
	if err != nil {
		s.Logger.Debug("no stored hotel ids for city", zap.String("city", cityCode), zap.Error(err))
		return nil
	}
	return ids
}

// sortHotelsByPrice keeps each result set ordered ascending by the cheapest
// best offer; unpriced records sink to the end.
func sortHotelsByPrice(hotels []models.HotelOffer) {
	sort.SliceStable(hotels, func(i, j int) bool {
		pi, oki := hotels[i].MinPrice()
		pj, okj := hotels[j].MinPrice()
		if oki != okj {
			return oki
		}
		return pi < pj
	})
}
