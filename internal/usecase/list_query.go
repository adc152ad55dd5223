package usecase

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-ranking/internal/domain/page"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
	"github.com/riskibarqy/football-ranking/internal/platform/notify"
)

// Lister loads one page of a list resource.
type Lister[T any] func(ctx context.Context, params page.Params) page.Result[T]

// ListState is what a list view renders. Items survive a failed fetch.
type ListState[T any] struct {
	Items      []T
	Loading    bool
	Err        error
	Pagination page.Pagination
	Extra      any
}

// QueryConfig is shared by list and detail queries.
type QueryConfig struct {
	// Name identifies the query in logs and spans.
	Name string
	// FailureMessage is sent to the notifier when a fetch fails.
	FailureMessage string
	Base           page.Params
	DefaultLimit   int
	Notifier       notify.Notifier
	Logger         *logging.Logger
}

func (c QueryConfig) normalize() QueryConfig {
	if c.Notifier == nil {
		c.Notifier = notify.Discard
	}
	if c.Logger == nil {
		c.Logger = logging.Default()
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = page.DefaultLimit
	}
	if c.FailureMessage == "" {
		c.FailureMessage = GenericErrorMessage
	}
	c.Base = c.Base.Clone()
	return c
}

// ListQuery owns the request lifecycle of one list view. Only the most
// recently issued fetch may change the state; older responses are dropped.
type ListQuery[T any] struct {
	cfg    QueryConfig
	lister Lister[T]
	// ready, when set and false, turns Fetch into a no-op that clears Loading.
	ready func() bool

	mu         sync.Mutex
	state      ListState[T]
	seq        uint64
	lastParams page.Params
	closed     bool
	subs       map[int]func(ListState[T])
	nextSub    int
}

// NewListQuery starts in the loading state with an empty first page.
func NewListQuery[T any](cfg QueryConfig, lister Lister[T]) *ListQuery[T] {
	cfg = cfg.normalize()
	return &ListQuery[T]{
		cfg:    cfg,
		lister: lister,
		state: ListState[T]{
			Items:      []T{},
			Loading:    true,
			Pagination: page.Empty(cfg.DefaultLimit),
		},
		subs: make(map[int]func(ListState[T])),
	}
}

// State returns a copy of the current state.
func (q *ListQuery[T]) State() ListState[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// Params returns the effective parameters of the last fetch, or the base
// parameters before the first one.
func (q *ListQuery[T]) Params() page.Params {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.lastParams == nil {
		return q.cfg.Base.Clone()
	}
	return q.lastParams.Clone()
}

// Fetch loads the list with params layered over the base parameters. It
// never fails: errors end up in the returned state and the notifier.
func (q *ListQuery[T]) Fetch(ctx context.Context, params page.Params) ListState[T] {
	return q.run(ctx, page.Merge(q.cfg.Base, params))
}

// Refetch repeats the last fetch.
func (q *ListQuery[T]) Refetch(ctx context.Context) ListState[T] {
	return q.run(ctx, q.Params())
}

func (q *ListQuery[T]) run(ctx context.Context, effective page.Params) ListState[T] {
	ctx, span := startUsecaseSpan(ctx, "usecase.ListQuery."+q.cfg.Name)
	defer span.End()

	q.mu.Lock()
	if q.closed {
		snap := q.snapshotLocked()
		q.mu.Unlock()
		return snap
	}
	q.lastParams = effective.Clone()
	if q.ready != nil && !q.ready() {
		q.seq++
		q.state.Loading = false
		q.state.Err = nil
		snap := q.snapshotLocked()
		q.mu.Unlock()
		q.publish(snap)
		return snap
	}
	q.seq++
	seq := q.seq
	q.state.Loading = true
	q.state.Err = nil
	snap := q.snapshotLocked()
	q.mu.Unlock()
	q.publish(snap)

	result := q.lister(ctx, effective)

	q.mu.Lock()
	if q.closed || seq != q.seq {
		snap = q.snapshotLocked()
		q.mu.Unlock()
		q.cfg.Logger.DebugContext(ctx, "discard stale list response", "query", q.cfg.Name, "seq", seq)
		return snap
	}
	if p, err := result.Unwrap(); err != nil {
		q.state.Err = err
	} else {
		q.state.Items = p.Items
		q.state.Pagination = p.Pagination
		q.state.Extra = p.Extra
	}
	q.state.Loading = false
	snap = q.snapshotLocked()
	q.mu.Unlock()

	q.publish(snap)
	if snap.Err != nil {
		q.cfg.Logger.WarnContext(ctx, "list query failed", "query", q.cfg.Name, "params", effective.Encode(), "error", snap.Err)
		notify.Error(ctx, q.cfg.Notifier, q.cfg.FailureMessage)
	}
	return snap
}

// Subscribe registers fn for every state transition. The returned func
// removes it.
func (q *ListQuery[T]) Subscribe(fn func(ListState[T])) func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	id := q.nextSub
	q.nextSub++
	q.subs[id] = fn
	return func() {
		q.mu.Lock()
		delete(q.subs, id)
		q.mu.Unlock()
	}
}

// Close releases the query. In-flight results are dropped and later fetches
// do nothing.
func (q *ListQuery[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.subs = make(map[int]func(ListState[T]))
	q.mu.Unlock()
}

func (q *ListQuery[T]) publish(state ListState[T]) {
	q.mu.Lock()
	subs := make([]func(ListState[T]), 0, len(q.subs))
	for _, fn := range q.subs {
		subs = append(subs, fn)
	}
	q.mu.Unlock()
	for _, fn := range subs {
		fn(state)
	}
}

func (q *ListQuery[T]) snapshotLocked() ListState[T] {
	out := q.state
	out.Items = make([]T, len(q.state.Items))
	copy(out.Items, q.state.Items)
	return out
}
