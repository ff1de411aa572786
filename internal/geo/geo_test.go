package geo

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{X: 3, Y: 7}, Point{X: 3, Y: 7}, 0},
		{"origin to 3-4", Point{}, Point{X: 3, Y: 4}, 5},
		{"negative coordinates", Point{X: -3, Y: -4}, Point{}, 5},
		{"horizontal", Point{X: 10, Y: 0}, Point{X: 15, Y: 0}, 5},
		{"unit diagonal", Point{}, Point{X: 1, Y: 1}, math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point{X: 2, Y: 9}
	b := Point{X: -7, Y: 4}

	if Distance(a, b) != Distance(b, a) {
		t.Errorf("distance is not symmetric: %v vs %v", Distance(a, b), Distance(b, a))
	}
}
