package service

import (
	"fmt"
	"math"
	"strings"
)

const earthRadiusKm = 6371

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Pincode     string      `json:"pincode"`
	Region      string      `json:"region"`
	Coordinates Coordinates `json:"coordinates"`
}

type DistanceEstimate struct {
	DistanceKm float64  `json:"distance"`
	ExactKm    float64  `json:"exactDistance"`
	Note       string   `json:"note"`
	From       Location `json:"from"`
	To         Location `json:"to"`
}

// GeoService resolves pincodes to approximate coordinates and estimates
// delivery distances. It is pure and safe for concurrent use.
type GeoService struct{}

func NewGeoService() *GeoService {
	return &GeoService{}
}

// ResolvePincode maps a 6-digit pincode to an approximate location. Lookup is
// tiered: exact pincode, then 3-digit prefix, then 2-digit prefix, then the
// Central India centroid. It never fails.
func (s *GeoService) ResolvePincode(pincode string) Location {
	if p, ok := exactPincodes[pincode]; ok {
		return newLocation(pincode, p)
	}
	if len(pincode) >= 3 {
		if p, ok := prefix3Pincodes[pincode[:3]]; ok {
			return newLocation(pincode, p)
		}
	}
	if len(pincode) >= 2 {
		if p, ok := prefix2Pincodes[pincode[:2]]; ok {
			return newLocation(pincode, p)
		}
	}
	return newLocation(pincode, defaultCentroid)
}

func newLocation(pincode string, p regionPoint) Location {
	return Location{
		Pincode:     pincode,
		Region:      p.Region,
		Coordinates: Coordinates{Lat: p.Lat, Lng: p.Lng},
	}
}

// EstimateDistance quotes the delivery distance between two pincodes.
// The returned ExactKm is always the raw great-circle value; DistanceKm
// carries the same-address minimum, intra-region clamps and Mumbai traffic
// corrections described in the note.
func (s *GeoService) EstimateDistance(fromPincode, toPincode string) DistanceEstimate {
	from := s.ResolvePincode(fromPincode)
	to := s.ResolvePincode(toPincode)

	exact := haversineKm(from.Coordinates, to.Coordinates)

	estimate := DistanceEstimate{
		ExactKm: exact,
		From:    from,
		To:      to,
	}

	if fromPincode == toPincode {
		estimate.DistanceKm = 1
		estimate.Note = "Same pincode; minimum same-address distance of 1 km applied"
		return estimate
	}

	if from.Region == to.Region && exact < 5 {
		minimum := 3.0
		if isMetroRegion(from.Region) {
			minimum = 2.0
		}
		estimate.DistanceKm = minimum
		estimate.Note = fmt.Sprintf("Minimum intra-region distance of %.0f km applied for %s", minimum, from.Region)
		return estimate
	}

	if factor, note, ok := mumbaiCorrection(from.Region, to.Region); ok {
		estimate.DistanceKm = roundDistance(exact * factor)
		estimate.Note = note
		return estimate
	}

	estimate.DistanceKm = roundDistance(exact)
	estimate.Note = "Great-circle estimate"
	return estimate
}

func haversineKm(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

var metroNames = []string{"Mumbai", "Delhi", "Bengaluru", "Chennai", "Kolkata", "Hyderabad"}

func isMetroRegion(region string) bool {
	for _, name := range metroNames {
		if strings.Contains(region, name) {
			return true
		}
	}
	return false
}

func isSouthMumbai(region string) bool {
	return strings.Contains(region, "South Mumbai")
}

func isWesternSuburb(region string) bool {
	return strings.Contains(region, "Mumbai Western Suburbs")
}

func isEasternSuburb(region string) bool {
	return strings.Contains(region, "Mumbai Eastern Suburbs")
}

func isMumbaiSuburb(region string) bool {
	return isWesternSuburb(region) || isEasternSuburb(region)
}

func isNaviMumbai(region string) bool {
	return strings.Contains(region, "Navi Mumbai")
}

func isThane(region string) bool {
	return strings.Contains(region, "Thane")
}

func isMumbaiProper(region string) bool {
	return strings.Contains(region, "Mumbai") && !isNaviMumbai(region) && !isThane(region)
}

// mumbaiCorrection applies known intra-Mumbai travel patterns. Rules are
// checked in order, first match wins, and each check is symmetric in its
// arguments so estimates stay symmetric.
func mumbaiCorrection(a, b string) (float64, string, bool) {
	switch {
	case (isSouthMumbai(a) && isMumbaiSuburb(b)) || (isSouthMumbai(b) && isMumbaiSuburb(a)):
		return 1.4, "Mumbai traffic adjustment: South Mumbai to suburbs (x1.4)", true
	case (isWesternSuburb(a) && isEasternSuburb(b)) || (isWesternSuburb(b) && isEasternSuburb(a)):
		return 1.5, "Mumbai traffic adjustment: cross-city corridor (x1.5)", true
	case (isMumbaiProper(a) && isNaviMumbai(b)) || (isMumbaiProper(b) && isNaviMumbai(a)):
		return 1.3, "Mumbai traffic adjustment: Mumbai to Navi Mumbai (x1.3)", true
	case (isMumbaiProper(a) && isThane(b)) || (isMumbaiProper(b) && isThane(a)):
		return 1.25, "Mumbai traffic adjustment: Mumbai to Thane (x1.25)", true
	}
	return 0, "", false
}

// roundDistance rounds long hauls to the nearest 5 km and short ones to one
// decimal place.
func roundDistance(km float64) float64 {
	if km > 100 {
		return math.Round(km/5) * 5
	}
	return math.Round(km*10) / 10
}
