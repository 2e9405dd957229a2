package query

// Booking finds every passenger on a booking code
type Booking struct {
	Code string
}

// BookingDataset returns the whole bookings table
type BookingDataset struct{}
