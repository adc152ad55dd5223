package usecase

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-ranking/internal/platform/notify"
)

// Getter loads one entity by id.
type Getter[T any] func(ctx context.Context, id int64) (T, error)

// DetailState is what a detail view renders. Data is nil until the entity
// first loads and keeps the last value when a later fetch fails.
type DetailState[T any] struct {
	Data    *T
	Loading bool
	Err     error
}

// DetailQuery owns the request lifecycle of one detail view. An id of zero
// means nothing is selected.
type DetailQuery[T any] struct {
	cfg    QueryConfig
	getter Getter[T]

	mu      sync.Mutex
	id      int64
	state   DetailState[T]
	seq     uint64
	closed  bool
	subs    map[int]func(DetailState[T])
	nextSub int
}

func NewDetailQuery[T any](cfg QueryConfig, id int64, getter Getter[T]) *DetailQuery[T] {
	return &DetailQuery[T]{
		cfg:    cfg.normalize(),
		getter: getter,
		id:     id,
		state:  DetailState[T]{Loading: true},
		subs:   make(map[int]func(DetailState[T])),
	}
}

func (q *DetailQuery[T]) ID() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.id
}

func (q *DetailQuery[T]) State() DetailState[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// SetID switches the query to another entity and loads it.
func (q *DetailQuery[T]) SetID(ctx context.Context, id int64) DetailState[T] {
	q.mu.Lock()
	q.id = id
	q.mu.Unlock()
	return q.Fetch(ctx)
}

// Refetch reloads the current entity.
func (q *DetailQuery[T]) Refetch(ctx context.Context) DetailState[T] {
	return q.Fetch(ctx)
}

// Fetch loads the selected entity. With no id selected it clears Loading
// without calling the API.
func (q *DetailQuery[T]) Fetch(ctx context.Context) DetailState[T] {
	ctx, span := startUsecaseSpan(ctx, "usecase.DetailQuery."+q.cfg.Name)
	defer span.End()

	q.mu.Lock()
	if q.closed {
		snap := q.state
		q.mu.Unlock()
		return snap
	}
	q.seq++
	seq := q.seq
	id := q.id
	if id == 0 {
		q.state = DetailState[T]{}
		snap := q.state
		q.mu.Unlock()
		q.publish(snap)
		return snap
	}
	q.state.Loading = true
	q.state.Err = nil
	snap := q.state
	q.mu.Unlock()
	q.publish(snap)

	data, err := q.getter(ctx, id)

	q.mu.Lock()
	if q.closed || seq != q.seq {
		snap = q.state
		q.mu.Unlock()
		return snap
	}
	if err != nil {
		q.state.Err = err
	} else {
		q.state.Data = &data
	}
	q.state.Loading = false
	snap = q.state
	q.mu.Unlock()

	q.publish(snap)
	if err != nil {
		q.cfg.Logger.WarnContext(ctx, "detail query failed", "query", q.cfg.Name, "id", id, "error", err)
		notify.Error(ctx, q.cfg.Notifier, q.cfg.FailureMessage)
	}
	return snap
}

func (q *DetailQuery[T]) Subscribe(fn func(DetailState[T])) func() {
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

func (q *DetailQuery[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.subs = make(map[int]func(DetailState[T]))
	q.mu.Unlock()
}

func (q *DetailQuery[T]) publish(state DetailState[T]) {
	q.mu.Lock()
	subs := make([]func(DetailState[T]), 0, len(q.subs))
	for _, fn := range q.subs {
		subs = append(subs, fn)
	}
	q.mu.Unlock()
	for _, fn := range subs {
		fn(state)
	}
}
