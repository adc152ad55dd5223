package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/platform/notify"
)

type listItem struct {
	ID int
}

func okPage(ids ...int) page.Result[listItem] {
	items := make([]listItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, listItem{ID: id})
	}
	return page.Ok(page.Page[listItem]{Items: items, Pagination: page.Pagination{Page: 1, Limit: 20, Total: len(ids)}})
}

func TestListQuery_InitialStateIsLoading(t *testing.T) {
	q := NewListQuery(QueryConfig{Name: "items"}, func(context.Context, page.Params) page.Result[listItem] {
		return okPage()
	})

	state := q.State()
	if !state.Loading || state.Err != nil || len(state.Items) != 0 {
		t.Fatalf("unexpected initial state: %+v", state)
	}
	if state.Pagination != page.Empty(page.DefaultLimit) {
		t.Fatalf("unexpected initial pagination: %+v", state.Pagination)
	}
}

func TestListQuery_FetchSuccess(t *testing.T) {
	var got page.Params
	q := NewListQuery(QueryConfig{Name: "items", Base: page.Params{"limit": "50", "sortBy": "name"}},
		func(_ context.Context, params page.Params) page.Result[listItem] {
			got = params
			return okPage(1, 2, 3)
		})

	state := q.Fetch(context.Background(), page.Params{"page": "2", "limit": "10"})

	if state.Loading || state.Err != nil {
		t.Fatalf("unexpected state after fetch: %+v", state)
	}
	if len(state.Items) != 3 || state.Pagination.Total != 3 {
		t.Fatalf("unexpected items or pagination: %+v", state)
	}
	if got["limit"] != "10" || got["page"] != "2" || got["sortBy"] != "name" {
		t.Fatalf("expected caller params to win over base, got %v", got)
	}
}

func TestListQuery_FailureKeepsItemsAndNotifiesOnce(t *testing.T) {
	recorder := &notify.Recorder{}
	fail := false
	q := NewListQuery(QueryConfig{Name: "items", FailureMessage: "Failed to fetch items", Notifier: recorder},
		func(context.Context, page.Params) page.Result[listItem] {
			if fail {
				return page.Fail[listItem](errors.New("boom"))
			}
			return okPage(7, 8)
		})

	ctx := context.Background()
	q.Fetch(ctx, nil)
	fail = true
	state := q.Fetch(ctx, nil)

	if state.Err == nil || state.Loading {
		t.Fatalf("expected failed settled state, got %+v", state)
	}
	if len(state.Items) != 2 || state.Items[0].ID != 7 {
		t.Fatalf("expected stale items to survive, got %+v", state.Items)
	}
	msgs := recorder.Messages(notify.LevelError)
	if len(msgs) != 1 || msgs[0] != "Failed to fetch items" {
		t.Fatalf("expected one failure notification, got %v", msgs)
	}
}

func TestListQuery_RefetchRepeatsLastParams(t *testing.T) {
	var calls []page.Params
	q := NewListQuery(QueryConfig{Name: "items", Base: page.Params{"limit": "20"}},
		func(_ context.Context, params page.Params) page.Result[listItem] {
			calls = append(calls, params)
			return okPage()
		})

	ctx := context.Background()
	q.Refetch(ctx)
	q.Fetch(ctx, page.Params{"page": "3"})
	q.Refetch(ctx)

	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	if calls[0]["page"] != "" || calls[0]["limit"] != "20" {
		t.Fatalf("first refetch should use base params, got %v", calls[0])
	}
	if calls[2]["page"] != "3" || calls[2]["limit"] != "20" {
		t.Fatalf("refetch should repeat last params, got %v", calls[2])
	}
}

func TestListQuery_LatestRequestWins(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	recorder := &notify.Recorder{}

	q := NewListQuery(QueryConfig{Name: "items", Notifier: recorder},
		func(_ context.Context, params page.Params) page.Result[listItem] {
			if params["page"] == "1" {
				close(started)
				<-release
				return page.Fail[listItem](errors.New("slow and failed"))
			}
			return okPage(2)
		})

	ctx := context.Background()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		q.Fetch(ctx, page.Params{"page": "1"})
	}()
	<-started

	latest := q.Fetch(ctx, page.Params{"page": "2"})
	close(release)
	wg.Wait()

	state := q.State()
	if latest.Err != nil || state.Err != nil {
		t.Fatalf("stale failure must not surface, got %+v", state)
	}
	if len(state.Items) != 1 || state.Items[0].ID != 2 {
		t.Fatalf("expected latest items, got %+v", state.Items)
	}
	if len(recorder.All()) != 0 {
		t.Fatalf("stale response must not notify, got %v", recorder.All())
	}
}

func TestListQuery_CloseDropsInFlightResult(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	q := NewListQuery(QueryConfig{Name: "items"}, func(context.Context, page.Params) page.Result[listItem] {
		close(started)
		<-release
		return okPage(1)
	})

	done := make(chan ListState[listItem])
	go func() { done <- q.Fetch(context.Background(), nil) }()
	<-started
	q.Close()
	close(release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("fetch did not return")
	}
	if len(q.State().Items) != 0 {
		t.Fatalf("closed query must not apply results")
	}
	q.Fetch(context.Background(), nil)
}

func TestListQuery_SubscribeSeesTransitions(t *testing.T) {
	q := NewListQuery(QueryConfig{Name: "items"}, func(context.Context, page.Params) page.Result[listItem] {
		return okPage(1)
	})

	var seen []bool
	cancel := q.Subscribe(func(s ListState[listItem]) { seen = append(seen, s.Loading) })
	q.Fetch(context.Background(), nil)
	cancel()
	q.Fetch(context.Background(), nil)

	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Fatalf("expected loading then settled, got %v", seen)
	}
}
