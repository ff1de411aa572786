package domain

import "cab/internal/geo"

// User represents a rider in the system. The name is the unique key.
type User struct {
	Name     string
	Gender   string
	Age      int
	Location geo.Point
}
