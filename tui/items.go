package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"movie-booking-cli/model"
	"movie-booking-cli/service"
)

// movieItem asks the booking for seat state on every call.
type movieItem struct {
	index   int
	movie   *model.Movie
	booking *service.Booking
}

func (m movieItem) Title() string {
	return m.movie.String()
}

func (m movieItem) Description() string {
	return fmt.Sprintf("%d of %d seats available", m.booking.AvailableSeats(m.movie), len(m.movie.Seats))
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{m.movie.Title, m.movie.Genre}, " "))
}

func buildMovieItems(booking *service.Booking) []list.Item {
	movies := booking.Movies()
	items := make([]list.Item, 0, len(movies))
	for i, movie := range movies {
		items = append(items, movieItem{index: i, movie: movie, booking: booking})
	}
	return items
}
