package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/domain/ranking"
	"github.com/riskibarqy/football-ranking/internal/usecase"
)

func rankingsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rankings",
		Aliases: []string{"ranking"},
		Short:   "World and confederation rankings",
	}
	cmd.AddCommand(
		rankingsWorldCmd(rt),
		rankingsConfederationCmd(rt),
		rankingsHistoryCmd(rt),
		rankingsMoversCmd(rt),
		rankingsCompareCmd(rt),
	)
	return cmd
}

func rankingsWorldCmd(rt *runtime) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "world",
		Short: "Show the world ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := rt.app.Queries.WorldRankings(nil)
			defer q.Close()

			params := page.Params{}.WithInt(page.KeyPage, flags.page).WithInt(page.KeyLimit, flags.limit)
			state := fetchPage[country.Country](cmd.Context(), q, params)
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchWorldRankingsFailed)
			}
			return renderList(rt, cmd, state, countryHeader, countryRow)
		},
	}
	flags.bind(cmd, page.DefaultRankLimit, false)
	return cmd
}

func rankingsConfederationCmd(rt *runtime) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "confederation <code>",
		Short: "Show the ranking inside one confederation with its statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, ok := country.ParseConfederation(args[0])
			if !ok {
				return fmt.Errorf("%w: unknown confederation %q", usecase.ErrInvalidInput, args[0])
			}
			q := rt.app.Queries.ConfederationRankings(string(code), nil)
			defer q.Close()

			params := page.Params{}.WithInt(page.KeyPage, flags.page).WithInt(page.KeyLimit, flags.limit)
			state := fetchPage[country.Country](cmd.Context(), q, params)
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchConfederationRankingsFailed)
			}

			stats := q.Stats()
			view := listView[country.Country]{Items: state.Items, Pagination: state.Pagination}
			if stats != nil {
				view.Extra = stats
			}
			return rt.render(cmd, view, func(w io.Writer) {
				fmt.Fprintln(w, ranking.ConfederationName(string(code)))
				fmt.Fprintln(w, code.FullName())
				if stats != nil {
					fmt.Fprintln(w, cells("Countries", int(stats.TotalCountries)))
					fmt.Fprintln(w, cells("Average points", stats.AvgPoints))
					fmt.Fprintln(w, cells("Highest points", stats.MaxPoints))
					fmt.Fprintln(w, cells("Lowest points", stats.MinPoints))
				}
				fmt.Fprintln(w)
				fmt.Fprintln(w, "POS\tWORLD\tNAME\tCODE\tPOINTS\tFORM")
				for _, c := range state.Items {
					fmt.Fprintln(w, cells(ranking.OrdinalSuffix(c.ConfederationRanking), c.WorldRanking, c.Name, c.Code, c.FIFAPoints, orDash(c.Last10Matches)))
				}
				if footer := pagerFooter(state.Pagination); footer != "" {
					fmt.Fprintln(w)
					fmt.Fprintln(w, footer)
				}
			})
		},
	}
	flags.bind(cmd, page.DefaultRankLimit, false)
	return cmd
}

func rankingsHistoryCmd(rt *runtime) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <country-id>",
		Short: "Show the ranking history of a country, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "country")
			if err != nil {
				return err
			}
			q := rt.app.Queries.RankingHistory(id, limit)
			defer q.Close()

			state := q.Refetch(cmd.Context())
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchRankingHistoryFailed)
			}
			return renderList(rt, cmd, state, "RECORDED\tRANK\tCHANGE\tPOINTS", historyRows(state.Items))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", usecase.DefaultHistoryLimit, "number of snapshots")
	return cmd
}

// historyRows renders each snapshot with its move against the next older
// one.
func historyRows(items []country.RankingHistoryEntry) func(country.RankingHistoryEntry) string {
	older := make(map[int64]int, len(items))
	for i := 0; i+1 < len(items); i++ {
		older[items[i].ID] = items[i+1].WorldRanking
	}
	return func(e country.RankingHistoryEntry) string {
		return cells(e.RecordedAt, e.WorldRanking, ranking.ChangeOf(e.WorldRanking, older[e.ID]), e.FIFAPoints)
	}
}

func rankingsMoversCmd(rt *runtime) *cobra.Command {
	var count, pool int
	cmd := &cobra.Command{
		Use:   "movers",
		Short: "Show the biggest climbers and fallers of the world ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := rt.app.Queries.WorldRankings(nil)
			defer q.Close()

			state := q.Fetch(cmd.Context(), page.Params{}.WithInt(page.KeyLimit, pool))
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchWorldRankingsFailed)
			}
			movers, err := rt.app.Movers.TopMovers(cmd.Context(), state.Items, count)
			if err != nil {
				return err
			}
			return rt.render(cmd, movers, func(w io.Writer) {
				writeMovers(w, "Climbers", movers.Climbers)
				fmt.Fprintln(w)
				writeMovers(w, "Fallers", movers.Fallers)
				if movers.Failed > 0 {
					fmt.Fprintln(w)
					fmt.Fprintf(w, "History unavailable for %d countries.\n", movers.Failed)
				}
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", usecase.DefaultMoversCount, "movers per direction")
	cmd.Flags().IntVar(&pool, "pool", page.DefaultRankLimit, "number of top ranked countries to inspect")
	return cmd
}

func writeMovers(w io.Writer, title string, movers []usecase.Mover) {
	fmt.Fprintln(w, title)
	if len(movers) == 0 {
		fmt.Fprintln(w, "No movement.")
		return
	}
	fmt.Fprintln(w, "NAME\tNOW\tBEFORE\tCHANGE")
	for _, m := range movers {
		fmt.Fprintln(w, cells(m.Country.Name, ranking.OrdinalSuffix(m.Current), ranking.OrdinalSuffix(m.Previous), m.Change))
	}
}

func rankingsCompareCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <country-id> <country-id>",
		Short: "Compare two countries side by side",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args, "country")
			if err != nil {
				return err
			}
			cmp, err := rt.app.Client.CompareCountries(cmd.Context(), ids[0], ids[1])
			if err != nil {
				return readFailed(cmd, err, "Failed to compare countries")
			}
			a, b := cmp.Country1, cmp.Country2
			return rt.render(cmd, cmp, func(w io.Writer) {
				fmt.Fprintln(w, cells("", a.Name, b.Name))
				fmt.Fprintln(w, cells("World ranking", ranking.OrdinalSuffix(a.WorldRanking), ranking.OrdinalSuffix(b.WorldRanking)))
				fmt.Fprintln(w, cells("Confederation", a.Confederation, b.Confederation))
				fmt.Fprintln(w, cells("FIFA points", a.FIFAPoints, b.FIFAPoints))
				fmt.Fprintln(w, cells("Win percentage", a.WinPercentage.String()+"%", b.WinPercentage.String()+"%"))
				fmt.Fprintln(w, cells("Form", orDash(a.Last10Matches), orDash(b.Last10Matches)))
				if h := cmp.HeadToHead; h != nil && h.TotalMatches > 0 {
					fmt.Fprintln(w)
					fmt.Fprintln(w, cells("Head to head", strconv.Itoa(h.TotalMatches)+" matches"))
					fmt.Fprintln(w, cells("Wins", h.Country1Wins, h.Country2Wins))
					fmt.Fprintln(w, cells("Draws", h.Draws))
					fmt.Fprintln(w, cells("Goals", h.Country1Goals, h.Country2Goals))
				}
			})
		},
	}
}
