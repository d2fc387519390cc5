package models

type TravelDates struct {
	CheckIn        string `json:"checkin"`
	CheckOut       string `json:"checkout"`
	DurationNights int    `json:"durationNights"`
}

// PackageFlight wraps a flight offer with its display summary and price.
type PackageFlight struct {
	Summary  string      `json:"summary"`
	Price    float64     `json:"price"`
	Currency string      `json:"currency"`
	Offer    FlightOffer `json:"offer"`
}

// HotelSection is one group of a package's hotels (API-sourced or company
// preferred), with availability count, group minimum and the top cheapest picks.
type HotelSection struct {
	Count    int          `json:"count"`
	MinPrice float64      `json:"minPrice,omitempty"`
	Hotels   []HotelOffer `json:"hotels"`
}

type PackageHotels struct {
	APIHotels     HotelSection `json:"apiHotels"`
	CompanyHotels HotelSection `json:"companyHotels"`
	Total         int          `json:"totals"`
	MinPrice      float64      `json:"minPrice"`
	Currency      string       `json:"currency"`
}

type PackagePricing struct {
	FlightPrice   float64 `json:"flightPrice"`
	MinHotelPrice float64 `json:"minHotelPrice"`
	TotalMinPrice float64 `json:"totalMinPrice"`
	Currency      string  `json:"currency"`
}

// Package is one bookable bundle for a given day of the departure window.
// Packages are derived at assembly time and never persisted.
type Package struct {
	PackageID      int             `json:"packageId"`
	TravelDates    TravelDates     `json:"travelDates"`
	FlightOffers   []PackageFlight `json:"flightOffers"`
	Hotels         PackageHotels   `json:"hotels"`
	Pricing        PackagePricing  `json:"pricing"`
	PackageSummary string          `json:"packageSummary"`
}

// SearchResult is the pipeline output handed to the rendering layer.
type SearchResult struct {
	Request  SearchRequest `json:"request"`
	Buckets  []DayBucket   `json:"dayBuckets"`
	Packages []Package     `json:"packages"`
}
