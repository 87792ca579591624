package models

import "time"

// Booking represents a table reservation.
type Booking struct {
	// ID is the server-assigned identifier of the booking.
	ID int64 `json:"id"`

	// Name is the name the reservation is held under.
	Name string `json:"name"`

	// NoOfGuests is the size of the party. Must be at least one.
	NoOfGuests int64 `json:"no_of_guests"`

	// BookingDate is the date and time of the reservation.
	BookingDate time.Time `json:"booking_date"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}
