package service

import (
	"math"

	"cab/internal/geo"
)

// DefaultFareRate is the fare charged per unit of distance.
const DefaultFareRate = 10.0

// PricingService computes ride fares.
type PricingService struct {
	rate float64
}

// NewPricingService creates a new PricingService. rate <= 0 falls back
// to DefaultFareRate.
func NewPricingService(rate float64) *PricingService {
	if rate <= 0 {
		rate = DefaultFareRate
	}
	return &PricingService{rate: rate}
}

// Fare returns the amount billed for a trip between the two points:
// the travelled distance times the per-unit rate, rounded to the
// nearest integer. Pure function, no side effects.
func (s *PricingService) Fare(source, destination geo.Point) int {
	return int(math.Round(geo.Distance(source, destination) * s.rate))
}
