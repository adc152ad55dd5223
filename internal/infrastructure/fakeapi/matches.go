package fakeapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/riskibarqy/football-ranking/internal/domain/match"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/infrastructure/repository/memory"
)

const (
	msgMatchNotFound = "Match not found"
	pointsPerResult  = 5.0
)

func (s *Server) ListMatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	countryID, _ := strconv.ParseInt(q.Get(page.KeyCountryID), 10, 64)
	items, err := s.matches.List(r.Context(), memory.MatchFilter{
		CountryID: countryID,
		Status:    match.Status(q.Get(page.KeyStatus)),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writePage(w, r, items, page.DefaultLimit, nil)
}

func (s *Server) UpcomingMatches(w http.ResponseWriter, r *http.Request) {
	writeList(w, s.matches.Upcoming(r.Context(), queryInt(r, page.KeyLimit, 10)))
}

func (s *Server) RecentMatches(w http.ResponseWriter, r *http.Request) {
	writeList(w, s.matches.Recent(r.Context(), queryInt(r, page.KeyLimit, 10)))
}

func (s *Server) HeadToHead(w http.ResponseWriter, r *http.Request) {
	id1, ok1 := pathID(r, "id1")
	id2, ok2 := pathID(r, "id2")
	if !ok1 || !ok2 {
		writeError(w, http.StatusBadRequest, "Invalid country id")
		return
	}
	writeList(w, s.matches.HeadToHead(r.Context(), id1, id2, queryInt(r, page.KeyLimit, 10)))
}

func (s *Server) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid match id")
		return
	}
	item, found, err := s.matches.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, msgMatchNotFound)
		return
	}
	writeData(w, http.StatusOK, "", item)
}

func (s *Server) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var in match.Input
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(in); err != nil {
		writeValidationError(w, err)
		return
	}

	home, foundHome, _ := s.countries.GetByID(r.Context(), in.HomeID)
	away, foundAway, _ := s.countries.GetByID(r.Context(), in.AwayID)
	if !foundHome || !foundAway {
		writeError(w, http.StatusNotFound, msgCountryNotFound)
		return
	}

	item := match.Match{
		CompetitionID:    in.CompetitionID,
		HomeID:           home.ID,
		AwayID:           away.ID,
		HomeName:         home.Name,
		AwayName:         away.Name,
		MatchDate:        in.MatchDate,
		Venue:            in.Venue,
		ImportanceFactor: in.ImportanceFactor,
	}
	if item.ImportanceFactor == 0 {
		item.ImportanceFactor = match.ImportanceFriendly
	}
	if in.CompetitionID != nil {
		comp, found, _ := s.competitions.GetByID(r.Context(), *in.CompetitionID)
		if !found {
			writeError(w, http.StatusNotFound, msgCompetitionNotFound)
			return
		}
		item.CompetitionName = comp.Name
	}

	created, err := s.matches.Create(r.Context(), item)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, http.StatusCreated, "Match created successfully", created)
}

func (s *Server) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid match id")
		return
	}
	found, err := s.matches.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, msgMatchNotFound)
		return
	}
	writeData(w, http.StatusOK, "Match deleted successfully", nil)
}

// SimulateMatch derives a score from the ids and the ranking gap so repeated
// runs give the same result.
func (s *Server) SimulateMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid match id")
		return
	}
	item, found, _ := s.matches.GetByID(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, msgMatchNotFound)
		return
	}
	if item.Status == match.StatusFinished {
		writeError(w, http.StatusBadRequest, "Match already finished")
		return
	}

	home, _, _ := s.countries.GetByID(r.Context(), item.HomeID)
	away, _, _ := s.countries.GetByID(r.Context(), item.AwayID)
	scoreHome := int((item.ID*7 + item.HomeID) % 3)
	scoreAway := int((item.ID*5 + item.AwayID) % 3)
	if home.WorldRanking != 0 && away.WorldRanking != 0 && home.WorldRanking < away.WorldRanking {
		scoreHome++
	}

	s.finishMatch(w, r, id, scoreHome, scoreAway, "Match simulated successfully")
}

func (s *Server) UpdateMatchResult(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid match id")
		return
	}
	var in match.ResultInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(in); err != nil {
		writeValidationError(w, err)
		return
	}
	s.finishMatch(w, r, id, in.ScoreHome, in.ScoreAway, "Match result updated successfully")
}

func (s *Server) finishMatch(w http.ResponseWriter, r *http.Request, id int64, home, away int, message string) {
	item, found, err := s.matches.SetResult(r.Context(), id, home, away)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, msgMatchNotFound)
		return
	}
	s.applyOutcome(r.Context(), item)
	writeData(w, http.StatusOK, message, item)
}

// applyOutcome moves points and form for both sides of a finished match.
func (s *Server) applyOutcome(ctx context.Context, m match.Match) {
	delta := pointsPerResult * max(m.ImportanceFactor.Float64(), 1)
	switch {
	case *m.ScoreHome > *m.ScoreAway:
		s.countries.RecordForm(ctx, m.HomeID, "W")
		s.countries.RecordForm(ctx, m.AwayID, "L")
		s.countries.AdjustPoints(ctx, m.HomeID, delta)
		s.countries.AdjustPoints(ctx, m.AwayID, -delta)
	case *m.ScoreHome < *m.ScoreAway:
		s.countries.RecordForm(ctx, m.HomeID, "L")
		s.countries.RecordForm(ctx, m.AwayID, "W")
		s.countries.AdjustPoints(ctx, m.HomeID, -delta)
		s.countries.AdjustPoints(ctx, m.AwayID, delta)
	default:
		s.countries.RecordForm(ctx, m.HomeID, "D")
		s.countries.RecordForm(ctx, m.AwayID, "D")
	}
	s.logger.DebugContext(ctx, "match finished", "match_id", m.ID, "score", m.Score())
}

func (s *Server) MatchEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid match id")
		return
	}
	events, found := s.matches.Events(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, msgMatchNotFound)
		return
	}
	writeList(w, events)
}

func (s *Server) AddMatchEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid match id")
		return
	}
	var in match.EventInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(in); err != nil {
		writeValidationError(w, err)
		return
	}
	item, found, _ := s.matches.GetByID(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, msgMatchNotFound)
		return
	}
	if in.CountryID != item.HomeID && in.CountryID != item.AwayID {
		writeError(w, http.StatusBadRequest, "Country is not playing in this match")
		return
	}
	name := item.HomeName
	if in.CountryID == item.AwayID {
		name = item.AwayName
	}

	event, _, err := s.matches.AddEvent(r.Context(), id, match.Event{
		CountryID:   in.CountryID,
		CountryName: name,
		Type:        in.Type,
		Minute:      in.Minute,
		PlayerName:  in.PlayerName,
		Description: in.Description,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, http.StatusCreated, "Event added successfully", event)
}
