package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/domain/value"
	"github.com/riskibarqy/football-ranking/internal/usecase"
)

const matchHeader = "ID\tDATE\tHOME\tSCORE\tAWAY\tSTATUS\tCOMPETITION"

func matchRow(m match.Match) string {
	return cells(m.ID, orDash(m.MatchDate), sideName(m.HomeName, m.HomeID), m.Score(), sideName(m.AwayName, m.AwayID), m.Status, orDash(m.CompetitionName))
}

func sideName(name string, id int64) string {
	if name != "" {
		return name
	}
	return "#" + strconv.FormatInt(id, 10)
}

const eventHeader = "MIN\tEVENT\tCOUNTRY\tPLAYER\tNOTE"

func eventRow(e match.Event) string {
	return cells(strconv.Itoa(e.Minute)+"'", e.Type.Label(), sideName(e.CountryName, e.CountryID), orDash(e.PlayerName), orDash(e.Description))
}

func matchesCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "matches",
		Aliases: []string{"match"},
		Short:   "List, schedule and play matches",
	}
	cmd.AddCommand(
		matchesListCmd(rt),
		matchesGetCmd(rt),
		matchesCreateCmd(rt),
		matchesSimulateCmd(rt),
		matchesResultCmd(rt),
		matchesDeleteCmd(rt),
		matchesHeadToHeadCmd(rt),
		matchesFeedCmd(rt, "upcoming", "Show the next scheduled matches", rt.upcomingQuery),
		matchesFeedCmd(rt, "recent", "Show the latest finished matches", rt.recentQuery),
		matchesEventsCmd(rt),
		matchesAddEventCmd(rt),
	)
	return cmd
}

func matchesListCmd(rt *runtime) *cobra.Command {
	var (
		flags     listFlags
		countryID int64
		status    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List matches, optionally for one country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := rt.app.Queries.Matches(nil)
			if countryID > 0 {
				q = rt.app.Queries.CountryMatches(countryID, nil)
			}
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
	cmd.Flags().Int64Var(&countryID, "country", 0, "only matches of this country id")
	cmd.Flags().StringVar(&status, "status", "", "scheduled, live, finished, postponed or cancelled")
	return cmd
}

func matchesGetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one match with its events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "match")
			if err != nil {
				return err
			}
			q := rt.app.Queries.Match(id)
			defer q.Close()

			state := q.Fetch(cmd.Context())
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchMatchFailed)
			}
			if state.Data == nil {
				return readFailed(cmd, usecase.ErrNotFound, "Match not found")
			}

			m := *state.Data
			return rt.render(cmd, m, func(w io.Writer) {
				fmt.Fprintln(w, cells(sideName(m.HomeName, m.HomeID), m.Score(), sideName(m.AwayName, m.AwayID)))
				fmt.Fprintln(w)
				fmt.Fprintln(w, cells("Status", m.Status))
				fmt.Fprintln(w, cells("Date", orDash(m.MatchDate)))
				fmt.Fprintln(w, cells("Venue", orDash(m.Venue)))
				fmt.Fprintln(w, cells("Competition", orDash(m.CompetitionName)))
				fmt.Fprintln(w, cells("Importance", m.ImportanceFactor))
				if m.Played() {
					fmt.Fprintln(w, cells("Result", sideName(m.HomeName, m.HomeID)+" "+match.ResultFor(m, m.HomeID)))
				}
				if len(m.Events) > 0 {
					fmt.Fprintln(w)
					fmt.Fprintln(w, eventHeader)
					for _, e := range m.Events {
						fmt.Fprintln(w, eventRow(e))
					}
				}
			})
		},
	}
}

type matchFlags struct {
	home          int64
	away          int64
	date          string
	venue         string
	competitionID int64
	importance    float64
}

// matchDate accepts a date or an RFC 3339 timestamp.
func matchDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(time.DateOnly, raw); err == nil {
		return raw, nil
	}
	if _, err := time.Parse(time.RFC3339, raw); err == nil {
		return raw, nil
	}
	return "", fmt.Errorf("%w: match_date %q must be YYYY-MM-DD or RFC 3339", usecase.ErrInvalidInput, raw)
}

func matchesCreateCmd(rt *runtime) *cobra.Command {
	var flags matchFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := matchDate(flags.date)
			if err != nil {
				return err
			}
			in := match.Input{
				HomeID:           flags.home,
				AwayID:           flags.away,
				MatchDate:        date,
				Venue:            strings.TrimSpace(flags.venue),
				ImportanceFactor: value.Decimal(flags.importance),
			}
			if flags.competitionID > 0 {
				id := flags.competitionID
				in.CompetitionID = &id
			}
			if err := validateInput(in); err != nil {
				return err
			}
			created, err := rt.app.State.CreateMatch(cmd.Context(), in)
			if err != nil {
				return errReported
			}
			return rt.render(cmd, created, func(w io.Writer) {
				fmt.Fprintln(w, matchHeader)
				fmt.Fprintln(w, matchRow(created))
			})
		},
	}
	cmd.Flags().Int64Var(&flags.home, "home", 0, "home country id")
	cmd.Flags().Int64Var(&flags.away, "away", 0, "away country id")
	cmd.Flags().StringVar(&flags.date, "date", "", "match date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&flags.venue, "venue", "", "venue")
	cmd.Flags().Int64Var(&flags.competitionID, "competition", 0, "competition id")
	cmd.Flags().Float64Var(&flags.importance, "importance", match.ImportanceFriendly, "importance factor: 1 friendly, 2.5 qualification, 3 continental, 4 world cup")
	return cmd
}

func matchesSimulateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <id>",
		Short: "Let the server play a scheduled match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "match")
			if err != nil {
				return err
			}
			played, err := rt.app.State.SimulateMatch(cmd.Context(), id)
			if err != nil {
				return errReported
			}
			return rt.render(cmd, played, func(w io.Writer) {
				fmt.Fprintln(w, matchHeader)
				fmt.Fprintln(w, matchRow(played))
			})
		},
	}
}

func matchesResultCmd(rt *runtime) *cobra.Command {
	var in match.ResultInput
	cmd := &cobra.Command{
		Use:   "result <id>",
		Short: "Record the final score of a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "match")
			if err != nil {
				return err
			}
			if err := validateInput(in); err != nil {
				return err
			}
			updated, err := rt.app.State.UpdateMatchResult(cmd.Context(), id, in)
			if err != nil {
				return errReported
			}
			return rt.render(cmd, updated, func(w io.Writer) {
				fmt.Fprintln(w, matchHeader)
				fmt.Fprintln(w, matchRow(updated))
			})
		},
	}
	cmd.Flags().IntVar(&in.ScoreHome, "home-score", 0, "home goals")
	cmd.Flags().IntVar(&in.ScoreAway, "away-score", 0, "away goals")
	_ = cmd.MarkFlagRequired("home-score")
	_ = cmd.MarkFlagRequired("away-score")
	return cmd
}

func matchesDeleteCmd(rt *runtime) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "match")
			if err != nil {
				return err
			}
			if !confirm(cmd, fmt.Sprintf("Delete match %d?", id), yes) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
				return nil
			}
			if err := rt.app.State.DeleteMatch(cmd.Context(), id); err != nil {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// headToHeadView adds each side's results to the raw match list.
type headToHeadView struct {
	Matches []match.Match `json:"matches" yaml:"matches"`
	Results []string      `json:"results" yaml:"results"`
}

func matchesHeadToHeadCmd(rt *runtime) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:     "h2h <country-id> <country-id>",
		Aliases: []string{"head-to-head"},
		Short:   "Show the previous meetings of two countries",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args, "country")
			if err != nil {
				return err
			}
			q := rt.app.Queries.HeadToHead(ids[0], ids[1], limit)
			defer q.Close()

			state := q.Refetch(cmd.Context())
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchHeadToHeadFailed)
			}

			view := headToHeadView{Matches: state.Items, Results: make([]string, len(state.Items))}
			for i, m := range state.Items {
				view.Results[i] = match.ResultFor(m, ids[0])
			}
			return rt.render(cmd, view, func(w io.Writer) {
				if len(view.Matches) == 0 {
					fmt.Fprintln(w, "No previous meetings.")
					return
				}
				fmt.Fprintln(w, matchHeader+"\tRESULT")
				for i, m := range view.Matches {
					fmt.Fprintln(w, matchRow(m)+"\t"+view.Results[i])
				}
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", usecase.DefaultHeadToHeadLimit, "number of meetings")
	return cmd
}

func (rt *runtime) upcomingQuery(limit int) *usecase.ListQuery[match.Match] {
	return rt.app.Queries.UpcomingMatches(limit)
}

func (rt *runtime) recentQuery(limit int) *usecase.ListQuery[match.Match] {
	return rt.app.Queries.RecentMatches(limit)
}

func matchesFeedCmd(rt *runtime, use, short string, query func(limit int) *usecase.ListQuery[match.Match]) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := query(limit)
			defer q.Close()

			state := q.Refetch(cmd.Context())
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchMatchesFailed)
			}
			return renderList(rt, cmd, state, matchHeader, matchRow)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", usecase.DefaultFeedLimit, "number of matches")
	return cmd
}

func matchesEventsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "events <id>",
		Short: "List the events of a match by minute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "match")
			if err != nil {
				return err
			}
			q := rt.app.Queries.MatchEvents(id)
			defer q.Close()

			state := q.Refetch(cmd.Context())
			if state.Err != nil {
				return readFailed(cmd, state.Err, usecase.MsgFetchMatchEventsFailed)
			}
			return renderList(rt, cmd, state, eventHeader, eventRow)
		},
	}
}

func matchesAddEventCmd(rt *runtime) *cobra.Command {
	var (
		in        match.EventInput
		eventType string
	)
	cmd := &cobra.Command{
		Use:   "add-event <id>",
		Short: "Record a goal, card or substitution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "match")
			if err != nil {
				return err
			}
			in.Type = match.EventType(strings.ToLower(strings.TrimSpace(eventType)))
			in.PlayerName = strings.TrimSpace(in.PlayerName)
			if err := validateInput(in); err != nil {
				return err
			}
			event, err := rt.app.State.AddMatchEvent(cmd.Context(), id, in)
			if err != nil {
				return errReported
			}
			return rt.render(cmd, event, func(w io.Writer) {
				fmt.Fprintln(w, eventHeader)
				fmt.Fprintln(w, eventRow(event))
			})
		},
	}
	cmd.Flags().Int64Var(&in.CountryID, "country", 0, "country id of the team the event belongs to")
	cmd.Flags().StringVar(&eventType, "type", string(match.EventGoal), "goal, own_goal, penalty_goal, yellow_card, red_card or substitution")
	cmd.Flags().IntVar(&in.Minute, "minute", 0, "match minute")
	cmd.Flags().StringVar(&in.PlayerName, "player", "", "player name")
	cmd.Flags().StringVar(&in.Description, "note", "", "free text description")
	return cmd
}
