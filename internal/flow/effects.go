package flow

import (
	"context"
	"sync"
)

// EffectBus is an ordered, single-consumer delivery channel for one-shot
// effects. Emit never blocks the emitter: effects queue up until a subscriber
// is attached. Each queued effect is delivered to the active subscriber exactly
// once, in emission order; a delivered effect is never replayed. Attaching a
// new subscriber supersedes the previous one, and effects not yet delivered
// at that point carry over to the replacement. If nobody ever subscribes the
// queue is simply dropped on Close.
type EffectBus struct {
	mu     sync.Mutex
	queue  []UiEffect
	wake   chan struct{}
	stop   context.CancelFunc
	closed bool
}

// NewEffectBus returns an empty bus with no subscriber attached.
func NewEffectBus() *EffectBus {
	return &EffectBus{wake: make(chan struct{}, 1)}
}

// Emit appends effect to the delivery queue and wakes the subscriber, if any.
// Emitting on a closed bus is a no-op.
func (b *EffectBus) Emit(effect UiEffect) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, effect)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Subscribe attaches the caller as the single active subscriber and returns a
// channel of effects in emission order. Any previously attached subscriber is
// detached first. The returned channel closes when ctx is cancelled or the bus
// is closed. An effect handed back through the channel counts as delivered and
// will not be seen again by any subscriber.
func (b *EffectBus) Subscribe(ctx context.Context) <-chan UiEffect {
	out := make(chan UiEffect)

	b.mu.Lock()
	if b.stop != nil {
		b.stop()
	}
	if b.closed {
		b.mu.Unlock()
		close(out)
		return out
	}
	subCtx, cancel := context.WithCancel(ctx)
	b.stop = cancel
	b.mu.Unlock()

	go b.deliver(subCtx, out)
	return out
}

// Close detaches the subscriber and drops any undelivered effects. Buffered
// effects are meaningful only to an active observer, so losing them here is
// acceptable. Close is idempotent.
func (b *EffectBus) Close() {
	b.mu.Lock()
	b.closed = true
	b.queue = nil
	stop := b.stop
	b.stop = nil
	b.mu.Unlock()

	if stop != nil {
		stop()
	}
}

func (b *EffectBus) deliver(ctx context.Context, out chan<- UiEffect) {
	defer close(out)

	for {
		b.mu.Lock()
		if b.closed {
			b.mu.Unlock()
			return
		}
		var next UiEffect
		if len(b.queue) > 0 {
			next = b.queue[0]
			b.queue = b.queue[1:]
		}
		b.mu.Unlock()

		if next == nil {
			select {
			case <-ctx.Done():
				return
			case <-b.wake:
			}
			continue
		}

		select {
		case out <- next:
		case <-ctx.Done():
			// Not delivered: put it back for the replacement subscriber
			// and re-signal in case it already checked an empty queue.
			b.mu.Lock()
			if !b.closed {
				b.queue = append([]UiEffect{next}, b.queue...)
			}
			b.mu.Unlock()
			select {
			case b.wake <- struct{}{}:
			default:
			}
			return
		}
	}
}
