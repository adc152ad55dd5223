package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/usecase"
)

type dashboardView struct {
	Countries       []country.Country `json:"countries" yaml:"countries"`
	RecentMatches   []match.Match     `json:"recent_matches" yaml:"recent_matches"`
	UpcomingMatches []match.Match     `json:"upcoming_matches" yaml:"upcoming_matches"`
	Movers          *usecase.Movers   `json:"movers,omitempty" yaml:"movers,omitempty"`
}

func dashboardCmd(rt *runtime) *cobra.Command {
	var (
		top        int
		withMovers bool
	)
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the top of the world ranking with recent and upcoming matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			// A partial load is still rendered; the failure was already notified.
			loadErr := rt.app.State.Start(ctx)

			snap := rt.app.State.Snapshot()
			view := dashboardView{
				Countries:       snap.Countries,
				RecentMatches:   snap.RecentMatches,
				UpcomingMatches: snap.UpcomingMatches,
			}
			if top > 0 && len(view.Countries) > top {
				view.Countries = view.Countries[:top]
			}
			if withMovers && len(snap.Countries) > 0 {
				movers, err := rt.app.Movers.TopMovers(ctx, snap.Countries, usecase.DefaultMoversCount)
				if err != nil {
					return err
				}
				view.Movers = &movers
			}

			err := rt.render(cmd, view, func(w io.Writer) {
				fmt.Fprintf(w, "Countries\t%d\n", len(snap.Countries))
				fmt.Fprintf(w, "Recent matches\t%d\n", len(snap.RecentMatches))
				fmt.Fprintf(w, "Upcoming matches\t%d\n", len(snap.UpcomingMatches))

				fmt.Fprintln(w)
				fmt.Fprintln(w, "Top countries")
				writeRows(w, countryHeader, view.Countries, countryRow)
				fmt.Fprintln(w)
				fmt.Fprintln(w, "Recent matches")
				writeRows(w, matchHeader, view.RecentMatches, matchRow)
				fmt.Fprintln(w)
				fmt.Fprintln(w, "Upcoming matches")
				writeRows(w, matchHeader, view.UpcomingMatches, matchRow)
				if view.Movers != nil {
					fmt.Fprintln(w)
					writeMovers(w, "Climbers", view.Movers.Climbers)
					fmt.Fprintln(w)
					writeMovers(w, "Fallers", view.Movers.Fallers)
				}
			})
			if err != nil {
				return err
			}
			if loadErr != nil {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of countries to show, 0 for all loaded")
	cmd.Flags().BoolVar(&withMovers, "movers", false, "include the biggest ranking movers")
	return cmd
}

func writeRows[T any](w io.Writer, header string, items []T, row func(T) string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	fmt.Fprintln(w, header)
	for _, item := range items {
		fmt.Fprintln(w, row(item))
	}
}
