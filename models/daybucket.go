package models

// DayBucket holds one day's results inside the 7-day departure window.
// CheckIn/CheckOut are YYYY-MM-DD; both empty means no viable stay dates could
// be derived for the day and no hotel data is produced for it.
type DayBucket struct {
	Day      int           `json:"day"`
	Flights  []FlightOffer `json:"flights"`
	Hotels   []HotelOffer  `json:"hotels"`
	CheckIn  string        `json:"checkin,omitempty"`
	CheckOut string        `json:"checkout,omitempty"`
}

// HasDates reports whether the bucket carries a usable stay window.
func (b DayBucket) HasDates() bool {
	return b.CheckIn != "" && b.CheckOut != ""
}
