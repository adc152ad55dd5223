package fakeapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/riskibarqy/football-ranking/internal/domain/country"
	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/infrastructure/repository/memory"
)

const msgCountryNotFound = "Country not found"

func (s *Server) ListCountries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	confederation, _ := country.ParseConfederation(q.Get(page.KeyConfederation))
	items, err := s.countries.List(r.Context(), memory.CountryFilter{
		Search:        q.Get(page.KeySearch),
		Confederation: confederation,
		SortBy:        q.Get(page.KeySortBy),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writePage(w, r, items, page.DefaultLimit, nil)
}

func (s *Server) WorldRankings(w http.ResponseWriter, r *http.Request) {
	items, err := s.countries.List(r.Context(), memory.CountryFilter{SortBy: country.SortByWorldRanking})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writePage(w, r, items, page.DefaultRankLimit, nil)
}

// ConfederationRankings sends aggregate stats as strings, the way a SQL
// aggregate arrives from the real service.
func (s *Server) ConfederationRankings(w http.ResponseWriter, r *http.Request) {
	confederation, ok := country.ParseConfederation(chi.URLParam(r, "confederation"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid confederation")
		return
	}
	items, err := s.countries.List(r.Context(), memory.CountryFilter{Confederation: confederation})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var stats any
	if len(items) > 0 {
		total, lo, hi := 0.0, items[0].FIFAPoints.Float64(), items[0].FIFAPoints.Float64()
		for _, item := range items {
			points := item.FIFAPoints.Float64()
			total += points
			lo, hi = min(lo, points), max(hi, points)
		}
		stats = map[string]string{
			"total_countries": strconv.Itoa(len(items)),
			"avg_points":      strconv.FormatFloat(total/float64(len(items)), 'f', 2, 64),
			"max_points":      strconv.FormatFloat(hi, 'f', 2, 64),
			"min_points":      strconv.FormatFloat(lo, 'f', 2, 64),
		}
	}
	writePage(w, r, items, page.DefaultRankLimit, stats)
}

func (s *Server) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid country id")
		return
	}
	item, found, err := s.countries.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, msgCountryNotFound)
		return
	}
	writeData(w, http.StatusOK, "", item)
}

func (s *Server) CreateCountry(w http.ResponseWriter, r *http.Request) {
	in, ok := s.countryInput(w, r, 0)
	if !ok {
		return
	}
	item, err := s.countries.Create(r.Context(), in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, http.StatusCreated, "Country created successfully", item)
}

func (s *Server) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid country id")
		return
	}
	in, ok := s.countryInput(w, r, id)
	if !ok {
		return
	}
	item, found, err := s.countries.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, msgCountryNotFound)
		return
	}
	writeData(w, http.StatusOK, "Country updated successfully", item)
}

func (s *Server) countryInput(w http.ResponseWriter, r *http.Request, id int64) (country.Input, bool) {
	var in country.Input
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return country.Input{}, false
	}
	in = in.Normalize()
	if err := s.validate.Struct(in); err != nil {
		writeValidationError(w, err)
		return country.Input{}, false
	}
	if s.countries.CodeTaken(r.Context(), in.Code, id) {
		writeError(w, http.StatusConflict, "Country code already exists")
		return country.Input{}, false
	}
	return in, true
}

func (s *Server) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid country id")
		return
	}
	found, err := s.countries.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, msgCountryNotFound)
		return
	}
	writeData(w, http.StatusOK, "Country deleted successfully", nil)
}

func (s *Server) RankingHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid country id")
		return
	}
	if _, found, _ := s.countries.GetByID(r.Context(), id); !found {
		writeError(w, http.StatusNotFound, msgCountryNotFound)
		return
	}
	writeList(w, s.countries.History(r.Context(), id, queryInt(r, page.KeyLimit, 10)))
}

func (s *Server) CompareCountries(w http.ResponseWriter, r *http.Request) {
	id1, ok1 := pathID(r, "id1")
	id2, ok2 := pathID(r, "id2")
	if !ok1 || !ok2 {
		writeError(w, http.StatusBadRequest, "Invalid country id")
		return
	}
	c1, found1, _ := s.countries.GetByID(r.Context(), id1)
	c2, found2, _ := s.countries.GetByID(r.Context(), id2)
	if !found1 || !found2 {
		writeError(w, http.StatusNotFound, "One or both countries not found")
		return
	}

	stat := &country.HeadToHeadStat{}
	for _, m := range s.matches.HeadToHead(r.Context(), id1, id2, 1000) {
		if !m.Played() {
			continue
		}
		stat.TotalMatches++
		goals1, goals2 := *m.ScoreHome, *m.ScoreAway
		if m.HomeID != id1 {
			goals1, goals2 = goals2, goals1
		}
		stat.Country1Goals += goals1
		stat.Country2Goals += goals2
		switch {
		case goals1 > goals2:
			stat.Country1Wins++
		case goals2 > goals1:
			stat.Country2Wins++
		default:
			stat.Draws++
		}
	}

	writeData(w, http.StatusOK, "", country.Comparison{Country1: c1, Country2: c2, HeadToHead: stat})
}
