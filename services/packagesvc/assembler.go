package packagesvc

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"tripdesk/models"
)

// topHotelsPerSection caps each section at the cheapest picks.
const topHotelsPerSection = 5

// AssemblePackages joins the day buckets into ranked packages, one per day
// that has both flights and a derivable stay window. A bucket with no flights
// is dropped entirely, whatever its hotels hold. Output is ordered by
// package ID (day order).
func AssemblePackages(buckets []models.DayBucket, currency string) []models.Package {
	packages := make([]models.Package, 0, len(buckets))
	for _, bucket := range buckets {
		if len(bucket.Flights) == 0 || !bucket.HasDates() {
			continue
		}
		packages = append(packages, buildPackage(bucket, currency))
	}
	return packages
}

func buildPackage(bucket models.DayBucket, currency string) models.Package {
	nights := nightsBetween(bucket.CheckIn, bucket.CheckOut)

	// The first flight offer is the representative price for the package.
	representative := bucket.Flights[0]
	flightPrice := parsePrice(representative.Price.Total)
	if representative.Price.Currency != "" {
		currency = representative.Price.Currency
	}

	apiSection := buildSection(filterBySource(bucket.Hotels, models.HotelSourceAPI))
	companySection := buildSection(filterBySource(bucket.Hotels, models.HotelSourceCompany))

	minHotel, hasHotel := combinedMin(apiSection, companySection)
	total := flightPrice
	if hasHotel {
		total += minHotel
	}

	available := apiSection.Count + companySection.Count
	summary := fmt.Sprintf("Package %d: %d nights, flight price %.2f %s, %d hotels available from %.2f %s",
		bucket.Day, nights, flightPrice, currency, available, minHotel, currency)

	return models.Package{
		PackageID: bucket.Day,
		TravelDates: models.TravelDates{
			CheckIn:        bucket.CheckIn,
			CheckOut:       bucket.CheckOut,
			DurationNights: nights,
		},
		FlightOffers: wrapFlights(bucket.Flights, currency),
		Hotels: models.PackageHotels{
			APIHotels:     apiSection,
			CompanyHotels: companySection,
			Total:         len(bucket.Hotels),
			MinPrice:      minHotel,
			Currency:      currency,
		},
		Pricing: models.PackagePricing{
			FlightPrice:   flightPrice,
			MinHotelPrice: minHotel,
			TotalMinPrice: total,
			Currency:      currency,
		},
		PackageSummary: summary,
	}
}

func wrapFlights(flights []models.FlightOffer, currency string) []models.PackageFlight {
	out := make([]models.PackageFlight, 0, len(flights))
	for _, f := range flights {
		ccy := f.Price.Currency
		if ccy == "" {
			ccy = currency
		}
		out = append(out, models.PackageFlight{
			Summary:  flightSummary(f),
			Price:    parsePrice(f.Price.Total),
			Currency: ccy,
			Offer:    f,
		})
	}
	return out
}

func flightSummary(f models.FlightOffer) string {
	if len(f.Itineraries) == 0 || len(f.Itineraries[0].Segments) == 0 {
		return "flight details unavailable"
	}
	segs := f.Itineraries[0].Segments
	first := segs[0]
	last := segs[len(segs)-1]
	kind := "one-way"
	if len(f.Itineraries) > 1 {
		kind = "round trip"
	}
	return fmt.Sprintf("%s %s -> %s departing %s, %s",
		first.Carrier+first.FlightNumber, first.Departure.Airport, last.Arrival.Airport,
		first.Departure.At, kind)
}

// buildSection computes one hotel group: availability count, group minimum and
// the cheapest picks. Unpriced records count as available only when the record
// says so and rank behind every priced one.
func buildSection(hotels []models.HotelOffer) models.HotelSection {
	count := 0
	minPrice := 0.0
	hasMin := false
	for _, h := range hotels {
		if h.Available && len(h.BestOffers) > 0 {
			count++
		}
		if p, ok := h.MinPrice(); ok && (!hasMin || p < minPrice) {
			minPrice = p
			hasMin = true
		}
	}

	sorted := make([]models.HotelOffer, len(hotels))
	copy(sorted, hotels)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, oki := sorted[i].MinPrice()
		pj, okj := sorted[j].MinPrice()
		if oki != okj {
			return oki
		}
		return pi < pj
	})
	if len(sorted) > topHotelsPerSection {
		sorted = sorted[:topHotelsPerSection]
	}

	return models.HotelSection{Count: count, MinPrice: minPrice, Hotels: sorted}
}

// combinedMin picks the cheaper of the two group minimums; an empty group is
// excluded from the comparison.
func combinedMin(a, b models.HotelSection) (float64, bool) {
	aPriced := a.Count > 0 && a.MinPrice > 0
	bPriced := b.Count > 0 && b.MinPrice > 0
	switch {
	case aPriced && bPriced:
		if b.MinPrice < a.MinPrice {
			return b.MinPrice, true
		}
		return a.MinPrice, true
	case aPriced:
		return a.MinPrice, true
	case bPriced:
		return b.MinPrice, true
	default:
		return 0, false
	}
}

func filterBySource(hotels []models.HotelOffer, source string) []models.HotelOffer {
	out := make([]models.HotelOffer, 0, len(hotels))
	for _, h := range hotels {
		if h.Source == source {
			out = append(out, h)
		}
	}
	return out
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func nightsBetween(checkIn, checkOut string) int {
	in, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse("2006-01-02", checkOut)
	if err != nil {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}
