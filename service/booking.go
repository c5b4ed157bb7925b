package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"movie-booking-cli/model"
	"movie-booking-cli/validation"
)

const SampleSeatsPerMovie = 10

// Booking owns the movie catalog and adjudicates seat bookings.
// It is not safe for concurrent use; callers serialize access.
type Booking struct {
	movies []*model.Movie
	log    *zap.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

// SampleMovies returns the catalog the application ships with.
func SampleMovies() []model.MovieSpec {
	return []model.MovieSpec{
		{Title: "Kalki 2898ad", Genre: "Sci-Fi", Seats: SampleSeatsPerMovie},
		{Title: "Bahubali : The Conclusion", Genre: "Action", Seats: SampleSeatsPerMovie},
		{Title: "RRR", Genre: "Action", Seats: SampleSeatsPerMovie},
		{Title: "Pushpa", Genre: "Drama", Seats: SampleSeatsPerMovie},
	}
}

// NewSampleBooking creates a booking model over SampleMovies.
func NewSampleBooking(log *zap.Logger) (*Booking, error) {
	return NewBooking(SampleMovies(), log)
}

// NewBooking validates specs and builds the catalog. If log is nil, a no-op logger is used.
func NewBooking(specs []model.MovieSpec, log *zap.Logger) (*Booking, error) {
	if log == nil {
		log = zap.NewNop()
	}
	movies := make([]*model.Movie, 0, len(specs))
	for i, spec := range specs {
		if errs := validation.ValidateStruct(spec); len(errs) > 0 {
			return nil, fmt.Errorf("invalid movie %d: %s", i+1, validation.FormatValidationErrors(errs))
		}
		movies = append(movies, model.NewMovie(spec))
	}

	b := &Booking{
		movies: movies,
		log:    log.With(zap.String("service", "booking")),
		now:    time.Now,
		newID:  uuid.New,
	}
	b.log.Debug("Catalog loaded", zap.Int("movies", len(movies)))
	return b, nil
}

// Movies returns the catalog in display order.
func (b *Booking) Movies() []*model.Movie {
	out := make([]*model.Movie, len(b.movies))
	copy(out, b.movies)
	return out
}

// Movie returns the movie at the given catalog position.
func (b *Booking) Movie(index int) (*model.Movie, error) {
	if index < 0 || index >= len(b.movies) {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownMovie, index)
	}
	return b.movies[index], nil
}

// IsSeatAvailable reports whether seatNumber (1-based) is still available for movie.
func (b *Booking) IsSeatAvailable(movie *model.Movie, seatNumber int) (bool, error) {
	seat, err := b.seatAt(movie, seatNumber)
	if err != nil {
		return false, err
	}
	return seat.Available(), nil
}

// BookSeat marks the seat as booked. Booking an already booked seat returns
// ErrSeatUnavailable and leaves the movie untouched.
func (b *Booking) BookSeat(movie *model.Movie, seatNumber int) (model.Ticket, error) {
	seat, err := b.seatAt(movie, seatNumber)
	if err != nil {
		b.log.Warn("Rejected seat booking", zap.Int("seat", seatNumber), zap.Error(err))
		return model.Ticket{}, err
	}
	if !seat.Available() {
		b.log.Info("Seat already booked", zap.String("movie", movie.Title), zap.Int("seat", seatNumber))
		return model.Ticket{}, fmt.Errorf("seat %d for %s: %w", seatNumber, movie.Title, ErrSeatUnavailable)
	}

	seat.Status = model.SeatBooked
	ticket := model.Ticket{
		Reference: b.newID(),
		Title:     movie.Title,
		Seat:      seatNumber,
		BookedAt:  b.now(),
	}
	b.log.Info("Seat booked",
		zap.String("movie", movie.Title),
		zap.Int("seat", seatNumber),
		zap.String("reference", ticket.Reference.String()),
	)
	return ticket, nil
}

// AvailableSeats counts the seats of movie that can still be booked.
func (b *Booking) AvailableSeats(movie *model.Movie) int {
	if !b.owns(movie) {
		return 0
	}
	count := 0
	for _, seat := range movie.Seats {
		if seat.Available() {
			count++
		}
	}
	return count
}

// owns reports whether movie is one of the catalog's own movies.
func (b *Booking) owns(movie *model.Movie) bool {
	if movie == nil {
		return false
	}
	return slices.Contains(b.movies, movie)
}

func (b *Booking) seatAt(movie *model.Movie, seatNumber int) (*model.Seat, error) {
	if !b.owns(movie) {
		return nil, ErrUnknownMovie
	}
	if seatNumber < 1 || seatNumber > len(movie.Seats) {
		return nil, &SeatRangeError{Movie: movie.Title, Seat: seatNumber, Max: len(movie.Seats)}
	}
	return &movie.Seats[seatNumber-1], nil
}
