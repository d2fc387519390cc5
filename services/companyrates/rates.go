package companyrates

import (
	"encoding/json"
	"os"
	"strings"

	"tripdesk/models"

	"go.uber.org/zap"
)

// Book holds the preloaded company hotel rates, indexed by city for lookup.
// The book is read-only after load and consulted on every day of every search.
type Book struct {
	byCity map[string][]models.CompanyHotelRate
}

// Load reads the rate book JSON from path. A missing or malformed file is not
// fatal: the built-in default book is used instead.
func Load(path string, logger *zap.Logger) *Book {
	book := defaultBook
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("company rate book not readable, using defaults",
				zap.String("path", path), zap.Error(err))
		} else {
			var loaded models.CompanyRateBook
			if err := json.Unmarshal(data, &loaded); err != nil {
				logger.Warn("company rate book not parseable, using defaults",
					zap.String("path", path), zap.Error(err))
			} else {
				book = loaded
			}
		}
	}

	byCity := make(map[string][]models.CompanyHotelRate)
	for _, cities := range book {
		for city, rates := range cities {
			key := strings.ToUpper(city)
			byCity[key] = append(byCity[key], rates...)
		}
	}
	return &Book{byCity: byCity}
}

// ForCity returns the negotiated rates for a city code, case-insensitively.
// No rates for a city is a normal condition, not an error.
func (b *Book) ForCity(cityCode string) []models.CompanyHotelRate {
	return b.byCity[strings.ToUpper(cityCode)]
}

var defaultBook = models.CompanyRateBook{
	"Egypt": {
		"CAI": {
			{HotelName: "Ramses Hilton", RatePerNight: 2200, Currency: "EGP", Contacts: "reservations@rameshilton.example", Notes: "corporate rate, breakfast included"},
			{HotelName: "Steigenberger El Tahrir", RatePerNight: 1850, Currency: "EGP", Contacts: "+20 2 2575 0777", Notes: "corporate rate"},
		},
		"SSH": {
			{HotelName: "Baron Resort Sharm El Sheikh", RatePerNight: 2600, Currency: "EGP", Contacts: "groups@baronresort.example", Notes: "half board"},
		},
		"HRG": {
			{HotelName: "Marriott Hurghada Beach Resort", RatePerNight: 2400, Currency: "EGP", Contacts: "+20 65 344 6950", Notes: "corporate rate"},
		},
	},
	"UAE": {
		"DXB": {
			{HotelName: "Rove Downtown", RatePerNight: 3100, Currency: "EGP", Contacts: "corporate@rovehotels.example", Notes: "corporate rate"},
			{HotelName: "Premier Inn Dubai Ibn Battuta", RatePerNight: 2300, Currency: "EGP", Contacts: "+971 4 382 0000", Notes: "corporate rate"},
		},
	},
	"Saudi Arabia": {
		"JED": {
			{HotelName: "Novotel Jeddah Tahlia", RatePerNight: 2700, Currency: "EGP", Contacts: "reservations.jeddah@accor.example", Notes: "corporate rate"},
		},
		"RUH": {
			{HotelName: "Ibis Riyadh Olaya", RatePerNight: 2100, Currency: "EGP", Contacts: "+966 11 461 2000", Notes: "corporate rate"},
		},
	},
}
