package model

import "testing"

func TestNewMovie_NumbersSeatsFromOne(t *testing.T) {
	movie := NewMovie(MovieSpec{Title: "RRR", Genre: "Action", Seats: 10})

	if len(movie.Seats) != 10 {
		t.Fatalf("expected 10 seats, got %d", len(movie.Seats))
	}
	for i, seat := range movie.Seats {
		if seat.Number != i+1 {
			t.Fatalf("expected seat %d at index %d, got %d", i+1, i, seat.Number)
		}
		if !seat.Available() {
			t.Fatalf("expected seat %d to start available", seat.Number)
		}
	}
}

func TestMovieString(t *testing.T) {
	movie := NewMovie(MovieSpec{Title: "Kalki 2898ad", Genre: "Sci-Fi", Seats: 1})
	if got := movie.String(); got != "Kalki 2898ad (Sci-Fi)" {
		t.Fatalf("expected %q, got %q", "Kalki 2898ad (Sci-Fi)", got)
	}
}

func TestSeatAvailable(t *testing.T) {
	if !(Seat{Number: 1, Status: SeatAvailable}).Available() {
		t.Fatal("expected available seat")
	}
	if (Seat{Number: 1, Status: SeatBooked}).Available() {
		t.Fatal("expected booked seat to be unavailable")
	}
}
