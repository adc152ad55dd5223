package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-ranking/internal/domain/competition"
	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/domain/value"
	"github.com/riskibarqy/football-ranking/internal/usecase"
)

const competitionHeader = "ID\tNAME\tTYPE\tFORMAT\tSTATUS\tYEAR\tTEAMS"

func competitionRow(c competition.Competition) string {
	return cells(c.ID, c.Name, c.Type.Label(), c.Format.Label(), c.Status.Label(), yearOf(c.Year), c.ParticipantCount)
}

func yearOf(year int) string {
	if year == 0 {
		return "-"
	}
	return fmt.Sprint(year)
}

func competitionsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "competitions",
		Aliases: []string{"competition", "comp"},
		Short:   "List and manage competitions",
	}
	cmd.AddCommand(
		competitionsListCmd(rt),
		competitionsGetCmd(rt),
		competitionsCreateCmd(rt),
		competitionsUpdateCmd(rt),
		competitionsDeleteCmd(rt),
		competitionsStandingsCmd(rt),
		competitionsStatsCmd(rt),
		competitionsMatchesCmd(rt),
		competitionsAddParticipantsCmd(rt),
		competitionsRemoveParticipantCmd(rt),
	)
	return cmd
}

func competitionsListCmd(rt *runtime) *cobra.Command {
	var (
		flags  listFlags
		kind   string
		status string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List competitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := rt.app.Queries.Competitions(nil)
			defer q.Close()

			params := flags.filters("").Params().
				With(page.KeyType, strings.TrimSpace(kind)).
				With(page.KeyStatus, strings.TrimSpace(status))
			state := fetchPage[competition.Competition](cmd.Context(), q, params)
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchCompetitionsFailed)
			}
			return renderList(rt, cmd, state, competitionHeader, competitionRow)
		},
	}
	flags.bind(cmd, page.DefaultLimit, true)
	cmd.Flags().StringVar(&kind, "type", "", "world or continental")
	cmd.Flags().StringVar(&status, "status", "", "upcoming, ongoing or completed")
	return cmd
}

func competitionsGetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one competition with its participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "competition")
			if err != nil {
				return err
			}
			q := rt.app.Queries.Competition(id)
			defer q.Close()

			state := q.Fetch(cmd.Context())
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchCompetitionFailed)
			}
			if state.Data == nil {
				return readFailed(cmd, usecase.ErrNotFound, "Competition not found")
			}

			c := *state.Data
			return rt.render(cmd, c, func(w io.Writer) {
				fmt.Fprintln(w, cells("Name", c.Name))
				fmt.Fprintln(w, cells("Type", c.Type.Label()))
				fmt.Fprintln(w, cells("Format", c.Format.Label()))
				fmt.Fprintln(w, cells("Status", c.Status.Label()))
				fmt.Fprintln(w, cells("Confederation", orDash(c.Confederation)))
				fmt.Fprintln(w, cells("Year", yearOf(c.Year)))
				fmt.Fprintln(w, cells("Dates", orDash(c.StartDate)+" to "+orDash(c.EndDate)))
				fmt.Fprintln(w, cells("Importance", c.ImportanceFactor))
				fmt.Fprintln(w, cells("Description", orDash(c.Description)))
				fmt.Fprintln(w)
				if len(c.Participants) == 0 {
					fmt.Fprintln(w, "No participants yet.")
					return
				}
				fmt.Fprintln(w, "COUNTRY\tCODE\tGROUP")
				for _, p := range c.Participants {
					fmt.Fprintln(w, cells(p.CountryName, orDash(p.CountryCode), orDash(p.GroupName)))
				}
			})
		},
	}
}

type competitionFlags struct {
	name          string
	kind          string
	format        string
	status        string
	confederation string
	year          int
	startDate     string
	endDate       string
	importance    float64
	description   string
}

func (f *competitionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "competition name")
	cmd.Flags().StringVar(&f.kind, "type", "", "world or continental")
	cmd.Flags().StringVar(&f.format, "format", "", "group, knockout, league or group_knockout")
	cmd.Flags().StringVar(&f.status, "status", "", "upcoming, ongoing or completed")
	cmd.Flags().StringVar(&f.confederation, "confederation", "", "confederation code, required for continental competitions")
	cmd.Flags().IntVar(&f.year, "year", 0, "edition year")
	cmd.Flags().StringVar(&f.startDate, "start", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.endDate, "end", "", "end date, YYYY-MM-DD")
	cmd.Flags().Float64Var(&f.importance, "importance", 0, "importance factor")
	cmd.Flags().StringVar(&f.description, "description", "", "free text description")
}

func (f competitionFlags) apply(cmd *cobra.Command, in competition.Input) competition.Input {
	changed := cmd.Flags().Changed
	if changed("name") {
		in.Name = strings.TrimSpace(f.name)
	}
	if changed("type") {
		in.Type = competition.Type(strings.ToLower(strings.TrimSpace(f.kind)))
	}
	if changed("format") {
		in.Format = competition.Format(strings.ToLower(strings.TrimSpace(f.format)))
	}
	if changed("status") {
		in.Status = competition.Status(strings.ToLower(strings.TrimSpace(f.status)))
	}
	if changed("confederation") {
		in.Confederation = strings.ToUpper(strings.TrimSpace(f.confederation))
	}
	if changed("year") {
		in.Year = f.year
	}
	if changed("start") {
		in.StartDate = strings.TrimSpace(f.startDate)
	}
	if changed("end") {
		in.EndDate = strings.TrimSpace(f.endDate)
	}
	if changed("importance") {
		in.ImportanceFactor = value.Decimal(f.importance)
	}
	if changed("description") {
		in.Description = f.description
	}
	return in
}

func inputFromCompetition(c competition.Competition) competition.Input {
	return competition.Input{
		Name:             c.Name,
		Type:             c.Type,
		Format:           c.Format,
		Status:           c.Status,
		Confederation:    c.Confederation,
		Year:             c.Year,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		ImportanceFactor: c.ImportanceFactor,
		Description:      c.Description,
	}
}

func competitionsCreateCmd(rt *runtime) *cobra.Command {
	var flags competitionFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a competition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := flags.apply(cmd, competition.Input{})
			if err := validateInput(in); err != nil {
				return err
			}
			created, err := rt.app.State.CreateCompetition(cmd.Context(), in)
			if err != nil {
				return errReported
			}
			return rt.render(cmd, created, func(w io.Writer) {
				fmt.Fprintln(w, competitionHeader)
				fmt.Fprintln(w, competitionRow(created))
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func competitionsUpdateCmd(rt *runtime) *cobra.Command {
	var flags competitionFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a competition; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "competition")
			if err != nil {
				return err
			}
			current, err := rt.app.Client.GetCompetition(cmd.Context(), id)
			if err != nil {
				return readFailed(cmd, err, usecase.MsgFetchCompetitionFailed)
			}

			in := flags.apply(cmd, inputFromCompetition(current))
			if err := validateInput(in); err != nil {
				return err
			}
			updated, err := rt.app.State.UpdateCompetition(cmd.Context(), id, in)
			if err != nil {
				return errReported
			}
			return rt.render(cmd, updated, func(w io.Writer) {
				fmt.Fprintln(w, competitionHeader)
				fmt.Fprintln(w, competitionRow(updated))
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func competitionsDeleteCmd(rt *runtime) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a competition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "competition")
			if err != nil {
				return err
			}
			if !confirm(cmd, fmt.Sprintf("Delete competition %d?", id), yes) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
				return nil
			}
			if err := rt.app.State.DeleteCompetition(cmd.Context(), id); err != nil {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

const standingHeader = "POS\tGROUP\tCOUNTRY\tP\tW\tD\tL\tGF\tGA\tGD\tPTS"

func standingRow(s competition.Standing) string {
	return cells(s.Position, orDash(s.GroupName), s.CountryName, s.Played, s.Won, s.Drawn, s.Lost,
		s.GoalsFor, s.GoalsAgainst, match.GoalDifference(s.GoalsFor, s.GoalsAgainst), s.Points)
}

func competitionsStandingsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "standings <id>",
		Short: "Show the standings table of a competition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "competition")
			if err != nil {
				return err
			}
			q := rt.app.Queries.Standings(id)
			defer q.Close()

			state := q.Refetch(cmd.Context())
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchStandingsFailed)
			}
			return renderList(rt, cmd, state, standingHeader, standingRow)
		},
	}
}

func competitionsStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "stats <id>",
		Aliases: []string{"statistics"},
		Short:   "Show match and goal statistics of a competition",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "competition")
			if err != nil {
				return err
			}
			q := rt.app.Queries.CompetitionStatistics(id)
			defer q.Close()

			state := q.Fetch(cmd.Context())
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchStatisticsFailed)
			}
			if state.Data == nil {
				return readFailed(cmd, usecase.ErrNotFound, "Competition not found")
			}

			s := *state.Data
			return rt.render(cmd, s, func(w io.Writer) {
				fmt.Fprintln(w, cells("Matches", s.TotalMatches))
				fmt.Fprintln(w, cells("Finished", s.FinishedMatches))
				fmt.Fprintln(w, cells("Goals", s.TotalGoals))
				fmt.Fprintln(w, cells("Goals per match", s.AvgGoals))
				fmt.Fprintln(w, cells("Home wins", s.HomeWins))
				fmt.Fprintln(w, cells("Away wins", s.AwayWins))
				fmt.Fprintln(w, cells("Draws", s.Draws))
			})
		},
	}
}

func competitionsMatchesCmd(rt *runtime) *cobra.Command {
	var (
		flags  listFlags
		status string
	)
	cmd := &cobra.Command{
		Use:   "matches <id>",
		Short: "List the matches of a competition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "competition")
			if err != nil {
				return err
			}
			q := rt.app.Queries.CompetitionMatches(id, nil)
			defer q.Close()

			params := flags.filters("").Params().With(page.KeyStatus, strings.TrimSpace(status))
			state := fetchPage[match.Match](cmd.Context(), q, params)
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchMatchesFailed)
			}
			return renderList(rt, cmd, state, matchHeader, matchRow)
		},
	}
	flags.bind(cmd, page.DefaultLimit, false)
	cmd.Flags().StringVar(&status, "status", "", "match status filter")
	return cmd
}

func competitionsAddParticipantsCmd(rt *runtime) *cobra.Command {
	var (
		countries []string
		group     string
	)
	cmd := &cobra.Command{
		Use:   "add-participants <id>",
		Short: "Add countries to a competition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "competition")
			if err != nil {
				return err
			}
			ids, err := parseIDs(countries, "country")
			if err != nil {
				return err
			}
			in := competition.ParticipantsInput{CountryIDs: ids, GroupName: strings.TrimSpace(group)}
			if err := validateInput(in); err != nil {
				return err
			}
			if err := rt.app.State.AddParticipants(cmd.Context(), id, in); err != nil {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&countries, "countries", nil, "comma separated country ids")
	cmd.Flags().StringVar(&group, "group", "", "group name, e.g. A")
	return cmd
}

func competitionsRemoveParticipantCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-participant <id> <country-id>",
		Short: "Remove a country from a competition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			competitionID, err := parseID(args[0], "competition")
			if err != nil {
				return err
			}
			countryID, err := parseID(args[1], "country")
			if err != nil {
				return err
			}
			if err := rt.app.State.RemoveParticipant(cmd.Context(), competitionID, countryID); err != nil {
				return errReported
			}
			return nil
		},
	}
}
