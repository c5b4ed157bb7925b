package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMoviesCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "movies",
		Short: "List the movie catalog",
		Long:  `Print every movie with its genre and seat availability.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			movies := r.booking.Movies()
			r.log.Info("Listing catalog", zap.Int("movies", len(movies)))

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Title", "Genre", "Seats", "Available"})
			for i, movie := range movies {
				t.AppendRow(table.Row{i + 1, movie.Title, movie.Genre, len(movie.Seats), r.booking.AvailableSeats(movie)})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
		},
	}
}
