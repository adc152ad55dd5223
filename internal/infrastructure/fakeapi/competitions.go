package fakeapi

import (
	"net/http"

	"github.com/riskibarqy/football-ranking/internal/domain/competition"
	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/infrastructure/repository/memory"
)

const msgCompetitionNotFound = "Competition not found"

func (s *Server) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := s.competitions.List(r.Context(), memory.CompetitionFilter{
		Search: q.Get(page.KeySearch),
		Type:   competition.Type(q.Get(page.KeyType)),
		Status: competition.Status(q.Get(page.KeyStatus)),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writePage(w, r, items, page.DefaultLimit, nil)
}

func (s *Server) GetCompetition(w http.ResponseWriter, r *http.Request) {
	item, ok := s.competitionFromPath(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, "", item)
}

func (s *Server) competitionFromPath(w http.ResponseWriter, r *http.Request) (competition.Competition, bool) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid competition id")
		return competition.Competition{}, false
	}
	item, found, err := s.competitions.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return competition.Competition{}, false
	}
	if !found {
		writeError(w, http.StatusNotFound, msgCompetitionNotFound)
		return competition.Competition{}, false
	}
	return item, true
}

func (s *Server) CreateCompetition(w http.ResponseWriter, r *http.Request) {
	var in competition.Input
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(in); err != nil {
		writeValidationError(w, err)
		return
	}
	item, err := s.competitions.Create(r.Context(), in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, http.StatusCreated, "Competition created successfully", item)
}

func (s *Server) UpdateCompetition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid competition id")
		return
	}
	var in competition.Input
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(in); err != nil {
		writeValidationError(w, err)
		return
	}
	item, found, err := s.competitions.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, msgCompetitionNotFound)
		return
	}
	writeData(w, http.StatusOK, "Competition updated successfully", item)
}

func (s *Server) DeleteCompetition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid competition id")
		return
	}
	found, err := s.competitions.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, msgCompetitionNotFound)
		return
	}
	writeData(w, http.StatusOK, "Competition deleted successfully", nil)
}

func (s *Server) AddParticipants(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid competition id")
		return
	}
	var in competition.ParticipantsInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(in); err != nil {
		writeValidationError(w, err)
		return
	}

	countries := make([]country.Country, 0, len(in.CountryIDs))
	for _, countryID := range in.CountryIDs {
		item, found, _ := s.countries.GetByID(r.Context(), countryID)
		if !found {
			writeError(w, http.StatusNotFound, msgCountryNotFound)
			return
		}
		countries = append(countries, item)
	}

	found, err := s.competitions.AddParticipants(r.Context(), id, countries, in.GroupName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, msgCompetitionNotFound)
		return
	}
	writeData(w, http.StatusCreated, "Participants added successfully", nil)
}

func (s *Server) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	id, ok1 := pathID(r, "id")
	countryID, ok2 := pathID(r, "countryID")
	if !ok1 || !ok2 {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	found, err := s.competitions.RemoveParticipant(r.Context(), id, countryID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Participant not found")
		return
	}
	writeData(w, http.StatusOK, "Participant removed successfully", nil)
}

func (s *Server) Standings(w http.ResponseWriter, r *http.Request) {
	item, ok := s.competitionFromPath(w, r)
	if !ok {
		return
	}
	matches, err := s.matches.List(r.Context(), memory.MatchFilter{CompetitionID: item.ID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeList(w, computeStandings(item.Participants, matches))
}

func (s *Server) CompetitionStatistics(w http.ResponseWriter, r *http.Request) {
	item, ok := s.competitionFromPath(w, r)
	if !ok {
		return
	}
	matches, err := s.matches.List(r.Context(), memory.MatchFilter{CompetitionID: item.ID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, http.StatusOK, "", computeStatistics(matches))
}

func (s *Server) CompetitionMatches(w http.ResponseWriter, r *http.Request) {
	item, ok := s.competitionFromPath(w, r)
	if !ok {
		return
	}
	matches, err := s.matches.List(r.Context(), memory.MatchFilter{CompetitionID: item.ID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writePage(w, r, matches, page.DefaultLimit, nil)
}
