package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-ranking/internal/platform/notify"
)

func TestDetailQuery_EmptyIDShortCircuits(t *testing.T) {
	calls := 0
	q := NewDetailQuery(QueryConfig{Name: "item"}, 0, func(context.Context, int64) (listItem, error) {
		calls++
		return listItem{}, nil
	})

	state := q.Fetch(context.Background())
	if calls != 0 {
		t.Fatalf("expected no call for empty id")
	}
	if state.Loading || state.Err != nil || state.Data != nil {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestDetailQuery_FetchAndSwitchID(t *testing.T) {
	q := NewDetailQuery(QueryConfig{Name: "item"}, 4, func(_ context.Context, id int64) (listItem, error) {
		return listItem{ID: int(id)}, nil
	})

	if state := q.Fetch(context.Background()); state.Data == nil || state.Data.ID != 4 {
		t.Fatalf("unexpected state: %+v", state)
	}
	if state := q.SetID(context.Background(), 9); state.Data == nil || state.Data.ID != 9 {
		t.Fatalf("unexpected state after switching id: %+v", state)
	}
}

func TestDetailQuery_FailureNotifies(t *testing.T) {
	recorder := &notify.Recorder{}
	q := NewDetailQuery(QueryConfig{Name: "country", FailureMessage: MsgFetchCountryFailed, Notifier: recorder}, 1,
		func(context.Context, int64) (listItem, error) {
			return listItem{}, &APIError{StatusCode: 404, Message: "Country not found"}
		})

	state := q.Fetch(context.Background())
	if !errors.Is(state.Err, ErrNotFound) {
		t.Fatalf("expected not found error, got %v", state.Err)
	}
	if msgs := recorder.Messages(notify.LevelError); len(msgs) != 1 || msgs[0] != MsgFetchCountryFailed {
		t.Fatalf("unexpected notifications: %v", msgs)
	}
}
