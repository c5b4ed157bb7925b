package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MovieSpec describes a catalog entry before its seats exist.
type MovieSpec struct {
	Title string `json:"title" validate:"required"`
	Genre string `json:"genre" validate:"required"`
	Seats int    `json:"seats" validate:"min=1"`
}

type Movie struct {
	Title string `json:"title"`
	Genre string `json:"genre"`
	Seats []Seat `json:"seats"`
}

// NewMovie builds a movie whose seats are numbered 1..spec.Seats, all available.
func NewMovie(spec MovieSpec) *Movie {
	seats := make([]Seat, 0, max(0, spec.Seats))
	for i := 0; i < spec.Seats; i++ {
		seats = append(seats, Seat{Number: i + 1, Status: SeatAvailable})
	}
	return &Movie{
		Title: spec.Title,
		Genre: spec.Genre,
		Seats: seats,
	}
}

func (m *Movie) String() string {
	return fmt.Sprintf("%s (%s)", m.Title, m.Genre)
}

type Ticket struct {
	Reference uuid.UUID `json:"reference"`
	Title     string    `json:"title"`
	Seat      int       `json:"seat"`
	BookedAt  time.Time `json:"bookedAt"`
}
