package domain

import "cab/internal/geo"

// Driver represents a driver in the system. The name is the unique key.
// Earnings never decreases; Available is true unless the driver is
// currently engaged in a ride.
type Driver struct {
	Name          string
	Gender        string
	Age           int
	Vehicle       string
	VehicleNumber string
	Location      geo.Point
	Available     bool
	Earnings      int
}

// DriverEarning is one row of the earnings report.
type DriverEarning struct {
	Name     string
	Earnings int
}
