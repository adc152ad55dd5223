package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/domain/ranking"
	"github.com/riskibarqy/football-ranking/internal/domain/value"
	"github.com/riskibarqy/football-ranking/internal/usecase"
)

const countryHeader = "RANK\tNAME\tCODE\tCONFEDERATION\tPOINTS\tCHANGE\tFORM"

func countryRow(c country.Country) string {
	return cells(
		ranking.OrdinalSuffix(c.WorldRanking),
		c.Name,
		c.Code,
		c.Confederation,
		c.FIFAPoints,
		ranking.FromDelta(c.RankingChange),
		orDash(c.Last10Matches),
	)
}

type listFlags struct {
	page          int
	limit         int
	search        string
	confederation string
	sortBy        string
}

func (f *listFlags) bind(cmd *cobra.Command, defaultLimit int, withText bool) {
	cmd.Flags().IntVar(&f.page, "page", page.DefaultPage, "page number")
	cmd.Flags().IntVar(&f.limit, "limit", defaultLimit, "items per page")
	if withText {
		cmd.Flags().StringVarP(&f.search, "search", "s", "", "search text")
	}
}

// filters applies the flags in the order a user would: the page last, so
// it survives the resets caused by the other filters.
func (f listFlags) filters(defaultSort string) usecase.Filters {
	sortBy := f.sortBy
	if sortBy == "" {
		sortBy = defaultSort
	}
	return usecase.NewFilters(f.limit, sortBy).
		WithSearch(f.search).
		WithConfederation(f.confederation).
		WithPage(f.page)
}

func countriesCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "countries",
		Aliases: []string{"country"},
		Short:   "List and manage countries",
	}
	cmd.AddCommand(
		countriesListCmd(rt),
		countriesSearchCmd(rt),
		countriesGetCmd(rt),
		countriesCreateCmd(rt),
		countriesUpdateCmd(rt),
		countriesDeleteCmd(rt),
	)
	return cmd
}

func countriesListCmd(rt *runtime) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List countries with search, confederation filter and sorting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := rt.app.Queries.Countries(nil)
			defer q.Close()

			state := fetchPage[country.Country](cmd.Context(), q, flags.filters(country.SortByWorldRanking).Params())
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchCountriesFailed)
			}
			return renderList(rt, cmd, state, countryHeader, countryRow)
		},
	}
	flags.bind(cmd, page.DefaultLimit, true)
	cmd.Flags().StringVarP(&flags.confederation, "confederation", "c", "", "confederation code, e.g. UEFA")
	cmd.Flags().StringVar(&flags.sortBy, "sort", country.SortByWorldRanking, "sort by world_ranking, name or fifa_points")
	return cmd
}

// countriesSearchCmd reads search text line by line from stdin. Each line
// replaces the text in the box; results are fetched once input pauses.
func countriesSearchCmd(rt *runtime) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search countries interactively, one query per input line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			q := rt.app.Queries.Countries(nil)
			defer q.Close()

			var renderMu sync.Mutex
			var renderErr error
			box := usecase.NewSearchBox(rt.app.Config.SearchDebounce, flags.filters(country.SortByWorldRanking), func(ctx context.Context, f usecase.Filters) {
				state := fetchPage[country.Country](ctx, q, f.Params())

				renderMu.Lock()
				defer renderMu.Unlock()
				fmt.Fprintf(cmd.OutOrStdout(), "Search %q\n", f.Search)
				if state.Err != nil {
					renderErr = readFailed(cmd, state.Err, usecase.MsgFetchCountriesFailed)
					return
				}
				if err := renderList(rt, cmd, state, countryHeader, countryRow); err != nil {
					renderErr = err
				}
			})
			defer box.Close()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				box.Type(ctx, scanner.Text())
			}
			box.Flush(ctx)

			renderMu.Lock()
			defer renderMu.Unlock()
			if err := scanner.Err(); err != nil {
				return err
			}
			return renderErr
		},
	}
	flags.bind(cmd, page.DefaultLimit, false)
	cmd.Flags().StringVarP(&flags.confederation, "confederation", "c", "", "confederation code, e.g. UEFA")
	cmd.Flags().StringVar(&flags.sortBy, "sort", country.SortByWorldRanking, "sort by world_ranking, name or fifa_points")
	return cmd
}

type countryDetail struct {
	country.Country `yaml:",inline"`
	Form            []country.FormEntry `json:"form" yaml:"form"`
}

func countriesGetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "country")
			if err != nil {
				return err
			}
			q := rt.app.Queries.Country(id)
			defer q.Close()

			state := q.Fetch(cmd.Context())
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchCountryFailed)
			}
			if state.Data == nil {
				return readFailed(cmd, usecase.ErrNotFound, "Country not found")
			}

			c := *state.Data
			detail := countryDetail{Country: c, Form: country.ParseForm(c.Last10Matches)}
			return rt.render(cmd, detail, func(w io.Writer) {
				fmt.Fprintln(w, cells("Name", c.Name))
				fmt.Fprintln(w, cells("Code", c.Code))
				fmt.Fprintln(w, cells("Confederation", ranking.ConfederationName(string(c.Confederation))))
				fmt.Fprintln(w, cells("World ranking", ranking.OrdinalSuffix(c.WorldRanking)+" "+ranking.FromDelta(c.RankingChange).String()))
				fmt.Fprintln(w, cells("Confederation ranking", ranking.OrdinalSuffix(c.ConfederationRanking)))
				fmt.Fprintln(w, cells("FIFA points", c.FIFAPoints))
				fmt.Fprintln(w, cells("Win percentage", c.WinPercentage.String()+"%"))
				fmt.Fprintln(w, cells("Recent", fmt.Sprintf("%dW %dD %dL", c.RecentWins, c.RecentDraws, c.RecentLosses)))
				fmt.Fprintln(w, cells("Form", formString(detail.Form)))
				fmt.Fprintln(w, cells("Flag", orDash(c.FlagURL)))
			})
		},
	}
}

func formString(entries []country.FormEntry) string {
	if len(entries) == 0 {
		return "-"
	}
	letters := make([]string, len(entries))
	for i, entry := range entries {
		letters[i] = entry.Result
	}
	return strings.Join(letters, " ")
}

type countryFlags struct {
	name          string
	code          string
	confederation string
	flagURL       string
	points        float64
}

func (f *countryFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "country name")
	cmd.Flags().StringVar(&f.code, "code", "", "three letter code")
	cmd.Flags().StringVar(&f.confederation, "confederation", "", "confederation code")
	cmd.Flags().StringVar(&f.flagURL, "flag-url", "", "flag image URL")
	cmd.Flags().Float64Var(&f.points, "points", 0, "FIFA points")
}

// apply copies the flags the user set onto in.
func (f countryFlags) apply(cmd *cobra.Command, in country.Input) country.Input {
	changed := cmd.Flags().Changed
	if changed("name") {
		in.Name = f.name
	}
	if changed("code") {
		in.Code = f.code
	}
	if changed("confederation") {
		in.Confederation = country.Confederation(f.confederation)
	}
	if changed("flag-url") {
		in.FlagURL = f.flagURL
	}
	if changed("points") {
		in.FIFAPoints = value.Decimal(f.points)
	}
	return in.Normalize()
}

func countriesCreateCmd(rt *runtime) *cobra.Command {
	var flags countryFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := flags.apply(cmd, country.Input{})
			if err := validateInput(in); err != nil {
				return err
			}
			created, err := rt.app.State.CreateCountry(cmd.Context(), in)
			if err != nil {
				return errReported
			}
			return rt.render(cmd, created, func(w io.Writer) {
				fmt.Fprintln(w, countryHeader)
				fmt.Fprintln(w, countryRow(created))
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func countriesUpdateCmd(rt *runtime) *cobra.Command {
	var flags countryFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a country; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "country")
			if err != nil {
				return err
			}
			current, err := rt.app.Client.GetCountry(cmd.Context(), id)
			if err != nil {
				return readFailed(cmd, err, usecase.MsgFetchCountryFailed)
			}

			in := flags.apply(cmd, country.InputFrom(current))
			if err := validateInput(in); err != nil {
				return err
			}
			updated, err := rt.app.State.UpdateCountry(cmd.Context(), id, in)
			if err != nil {
				return errReported
			}
			return rt.render(cmd, updated, func(w io.Writer) {
				fmt.Fprintln(w, countryHeader)
				fmt.Fprintln(w, countryRow(updated))
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func countriesDeleteCmd(rt *runtime) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "country")
			if err != nil {
				return err
			}
			if !confirm(cmd, fmt.Sprintf("Delete country %d?", id), yes) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
				return nil
			}
			if err := rt.app.State.DeleteCountry(cmd.Context(), id); err != nil {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
