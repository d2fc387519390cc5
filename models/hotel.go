package models

import "strconv"

// Normalized hotel sources. Every synthetic tier maps to HotelSourceAPI so the
// package assembler treats all non-company hotels uniformly.
const (
	HotelSourceAPI     = "amadeus_api"
	HotelSourceCompany = "company_excel"
)

type HotelInfo struct {
	Name string `json:"name" bson:"name"`
	ID   string `json:"hotelId" bson:"hotelId"`
}

type HotelPrice struct {
	Total    string `json:"total" bson:"total"`
	Base     string `json:"base,omitempty" bson:"base,omitempty"`
	Currency string `json:"currency" bson:"currency"`
}

// HotelStay is one priced stay window.
type HotelStay struct {
	Price        HotelPrice `json:"price" bson:"price"`
	CheckInDate  string     `json:"checkInDate" bson:"checkInDate"`
	CheckOutDate string     `json:"checkOutDate" bson:"checkOutDate"`
}

// BestOffer is a hotel's best price for one room type. Contacts and Notes are
// only populated on company-sourced records.
type BestOffer struct {
	RoomType string    `json:"roomType" bson:"roomType"`
	Offer    HotelStay `json:"offer" bson:"offer"`
	Contacts string    `json:"contacts,omitempty" bson:"contacts,omitempty"`
	Notes    string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

// HotelOffer is one hotel's best prices for a stay. BestOffers is kept sorted
// ascending by price.
type HotelOffer struct {
	Hotel      HotelInfo   `json:"hotel" bson:"hotel"`
	Available  bool        `json:"available" bson:"available"`
	BestOffers []BestOffer `json:"bestOffers" bson:"bestOffers"`
	Source     string      `json:"source" bson:"source"`
}

// Clone returns a deep copy, for the same aliasing reasons as FlightOffer.Clone.
func (h HotelOffer) Clone() HotelOffer {
	out := h
	out.BestOffers = make([]BestOffer, len(h.BestOffers))
	copy(out.BestOffers, h.BestOffers)
	return out
}

// MinPrice returns the cheapest best-offer total. A record with no offers
// ranks as unpriced (ok == false), which callers treat as +inf.
func (h HotelOffer) MinPrice() (float64, bool) {
	if len(h.BestOffers) == 0 {
		return 0, false
	}
	p, err := strconv.ParseFloat(h.BestOffers[0].Offer.Price.Total, 64)
	if err != nil {
		return 0, false
	}
	return p, true
}
