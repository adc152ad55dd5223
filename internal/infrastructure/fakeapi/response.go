package fakeapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-ranking/internal/domain/page"
)

type envelope struct {
	Success            bool        `json:"success"`
	Message            string      `json:"message,omitempty"`
	Data               any         `json:"data,omitempty"`
	Pagination         *pagination `json:"pagination,omitempty"`
	ConfederationStats any         `json:"confederation_stats,omitempty"`
}

type pagination struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		writeError(w, http.StatusBadRequest, "Validation failed: "+strings.ToLower(first.Field())+" "+first.Tag())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// writePage slices items by the page and limit query params.
func writePage[T any](w http.ResponseWriter, r *http.Request, items []T, defaultLimit int, stats any) {
	pageNo := queryInt(r, page.KeyPage, 1)
	limit := queryInt(r, page.KeyLimit, defaultLimit)
	if pageNo < 1 {
		pageNo = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}

	start := min((pageNo-1)*limit, len(items))
	end := min(start+limit, len(items))
	data := items[start:end]
	if data == nil {
		data = []T{}
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Pagination: &pagination{
			CurrentPage:  pageNo,
			ItemsPerPage: limit,
			TotalItems:   len(items),
			TotalPages:   (len(items) + limit - 1) / limit,
		},
		ConfederationStats: stats,
	})
}

// writeList sends a plain array without pagination metadata.
func writeList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	writeData(w, http.StatusOK, "", items)
}

func decodeBody(r *http.Request, dst any) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return errors.New("request body is required")
	}
	return sonic.Unmarshal(raw, dst)
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return fallback
	}
	out, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return out
}

func pathID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
