package models

// CompanyHotelRate is one negotiated company rate for a hotel, loaded from the
// static rate book and consulted on every search, every day.
type CompanyHotelRate struct {
	HotelName    string  `json:"hotelName"`
	RatePerNight float64 `json:"ratePerNight"`
	Currency     string  `json:"currency"`
	Contacts     string  `json:"contacts,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// CompanyRateBook maps country -> city code -> negotiated rates.
type CompanyRateBook map[string]map[string][]CompanyHotelRate
