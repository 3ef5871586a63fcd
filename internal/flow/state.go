package flow

import (
	"context"
	"sync"
)

// stateStore holds the current UiState and fans updated snapshots out to
// watchers with replay-latest semantics: a new watcher immediately receives
// the current snapshot, and a slow watcher only ever misses intermediate
// snapshots, never the latest one.
type stateStore struct {
	mu       sync.Mutex
	state    UiState
	watchers map[chan UiState]struct{}
}

func newStateStore() *stateStore {
	return &stateStore{watchers: make(map[chan UiState]struct{})}
}

func (s *stateStore) get() UiState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// update applies fn to the current snapshot. Watchers are notified only when
// the snapshot actually changed, so idempotent field edits stay silent.
func (s *stateStore) update(fn func(UiState) UiState) {
	s.mu.Lock()
	next := fn(s.state)
	if next == s.state {
		s.mu.Unlock()
		return
	}
	s.state = next
	for ch := range s.watchers {
		push(ch, next)
	}
	s.mu.Unlock()
}

// watch registers a watcher that receives the current snapshot immediately and
// every subsequent change until ctx is cancelled.
func (s *stateStore) watch(ctx context.Context) <-chan UiState {
	ch := make(chan UiState, 1)

	s.mu.Lock()
	ch <- s.state
	s.watchers[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, ch)
		s.mu.Unlock()
	}()

	return ch
}

// push delivers a snapshot without blocking: if the watcher has not consumed
// the previous one yet, it is replaced by the newer snapshot.
func push(ch chan UiState, st UiState) {
	for {
		select {
		case ch <- st:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
