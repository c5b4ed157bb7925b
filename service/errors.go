package service

import (
	"errors"
	"fmt"
)

var (
	// ErrSeatUnavailable is returned when booking a seat that is already booked.
	ErrSeatUnavailable = errors.New("seat is not available")
	ErrUnknownMovie    = errors.New("unknown movie")
)

// SeatRangeError is returned when a seat number falls outside 1..Max for a movie.
type SeatRangeError struct {
	Movie string
	Seat  int
	Max   int
}

func (e *SeatRangeError) Error() string {
	if e == nil {
		return "seat out of range"
	}
	return fmt.Sprintf("seat %d out of range for %s: valid seats are 1-%d", e.Seat, e.Movie, e.Max)
}

// IsOutOfRange reports whether the error represents a seat number outside the movie's seats.
func IsOutOfRange(err error) bool {
	var rangeErr *SeatRangeError
	return errors.As(err, &rangeErr)
}

// IsUnavailable reports whether the error represents an already booked seat.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrSeatUnavailable)
}
