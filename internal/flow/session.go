package flow

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-flow/internal/logger"
)

// SessionFlow is the minimal state machine behind the authenticated screen.
// Its single transition is [SignOutRequested]: the gateway session is ended
// fire-and-forget and a [NavigateToUnauthenticated] effect is emitted. There
// is no failure path: local state is considered signed out regardless of
// provider acknowledgment.
type SessionFlow struct {
	gateway IdentityGateway
	logger  *logger.Logger

	state   *stateStore
	effects *EffectBus

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionFlow constructs a session flow bound to gateway.
func NewSessionFlow(gateway IdentityGateway, log *logger.Logger) *SessionFlow {
	ctx, cancel := context.WithCancel(context.Background())
	return &SessionFlow{
		gateway: gateway,
		logger:  log,
		state:   newStateStore(),
		effects: NewEffectBus(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// State returns the current screen snapshot.
func (f *SessionFlow) State() UiState {
	return f.state.get()
}

// StateUpdates returns a replay-latest snapshot stream until ctx is cancelled.
func (f *SessionFlow) StateUpdates(ctx context.Context) <-chan UiState {
	return f.state.watch(ctx)
}

// Effects attaches the caller as the active effect subscriber.
func (f *SessionFlow) Effects(ctx context.Context) <-chan UiEffect {
	return f.effects.Subscribe(ctx)
}

// Dispatch applies a user action. Only [SignOutRequested] is meaningful here;
// everything else is ignored.
func (f *SessionFlow) Dispatch(action UiAction) {
	if _, ok := action.(SignOutRequested); !ok {
		return
	}

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		f.gateway.SignOut(f.ctx)
		f.logger.Debug().Msg("signed out")
		f.effects.Emit(NavigateToUnauthenticated{})
	}()
}

// Close cancels any in-flight sign-out and closes the effect bus.
func (f *SessionFlow) Close() {
	f.cancel()
	f.wg.Wait()
	f.effects.Close()
}
