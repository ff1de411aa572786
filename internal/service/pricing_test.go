package service

import (
	"testing"

	"cab/internal/geo"
)

func TestPricing_Fare(t *testing.T) {
	s := NewPricingService(0)

	tests := []struct {
		name                string
		source, destination geo.Point
		want                int
	}{
		{"3-4-5 triangle", geo.Point{X: 0, Y: 0}, geo.Point{X: 3, Y: 4}, 50},
		{"zero distance", geo.Point{X: 2, Y: 2}, geo.Point{X: 2, Y: 2}, 0},
		{"unit distance", geo.Point{X: 0, Y: 0}, geo.Point{X: 1, Y: 0}, 10},
		// sqrt(2) * 10 = 14.14..., rounded to nearest.
		{"rounded diagonal", geo.Point{X: 0, Y: 0}, geo.Point{X: 1, Y: 1}, 14},
		// sqrt(50) * 10 = 70.71..., rounds up.
		{"rounds up", geo.Point{X: 0, Y: 0}, geo.Point{X: 5, Y: 5}, 71},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Fare(tt.source, tt.destination); got != tt.want {
				t.Errorf("Fare(%v, %v) = %d, want %d", tt.source, tt.destination, got, tt.want)
			}
		})
	}
}

func TestPricing_CustomRate(t *testing.T) {
	s := NewPricingService(2)

	if got := s.Fare(geo.Point{}, geo.Point{X: 3, Y: 4}); got != 10 {
		t.Errorf("Fare with rate 2 = %d, want 10", got)
	}
}
