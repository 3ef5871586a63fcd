package flow

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-flow/internal/logger"
)

// Messages surfaced through [ShowMessage] by the phone verification sub-flow.
const (
	// MsgAutoVerified is shown when the provider confirmed the phone number
	// without user entry.
	MsgAutoVerified = "Success"
	// MsgCodeSent is shown when a verification code was dispatched and its
	// identifier stored for later redemption.
	MsgCodeSent = "Code sent"
)

// LoginFlow is the state machine behind the login screen. It owns the screen's
// [UiState], interprets [UiAction] values, drives the [IdentityGateway], and
// emits [UiEffect] values through a single-consumer [EffectBus].
//
// Four sub-flows (password, sign-up, anonymous, phone) share one state and may
// be interleaved freely; each Submit* action owns its own request/response
// cycle. The only cross-request field is the verification identifier, which
// uses last-write-wins semantics: a newer code-sent event always overwrites an
// older identifier.
type LoginFlow struct {
	gateway IdentityGateway
	logger  *logger.Logger

	state   *stateStore
	effects *EffectBus

	mu             sync.Mutex
	verificationID string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLoginFlow constructs a login flow bound to gateway and starts the session
// short-circuit check: if the provider already holds a live session, exactly
// one [NavigateToAuthenticated] effect is emitted before any user action. The
// check runs once per flow instance.
func NewLoginFlow(gateway IdentityGateway, log *logger.Logger) *LoginFlow {
	ctx, cancel := context.WithCancel(context.Background())
	f := &LoginFlow{
		gateway: gateway,
		logger:  log,
		state:   newStateStore(),
		effects: NewEffectBus(),
		ctx:     ctx,
		cancel:  cancel,
	}

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		if f.gateway.IsSessionActive(f.ctx) {
			f.logger.Debug().Msg("active session found, skipping login")
			f.effects.Emit(NavigateToAuthenticated{})
		}
	}()

	return f
}

// State returns the current screen snapshot.
func (f *LoginFlow) State() UiState {
	return f.state.get()
}

// StateUpdates returns a replay-latest snapshot stream: the current state is
// delivered immediately, then every change until ctx is cancelled.
func (f *LoginFlow) StateUpdates(ctx context.Context) <-chan UiState {
	return f.state.watch(ctx)
}

// Effects attaches the caller as the active effect subscriber. See
// [EffectBus.Subscribe] for the delivery guarantees.
func (f *LoginFlow) Effects(ctx context.Context) <-chan UiEffect {
	return f.effects.Subscribe(ctx)
}

// Dispatch applies a user action. Field edits are synchronous pure state
// updates; Submit* actions start an asynchronous request against the gateway
// and always produce a terminal outcome effect. Unknown actions are ignored.
func (f *LoginFlow) Dispatch(action UiAction) {
	switch a := action.(type) {
	case ChangeEmail:
		f.state.update(func(s UiState) UiState { s.Email = a.Email; return s })
	case ChangePassword:
		f.state.update(func(s UiState) UiState { s.Password = a.Password; return s })
	case ChangePhoneNumber:
		f.state.update(func(s UiState) UiState { s.PhoneNumber = a.PhoneNumber; return s })
	case ChangeVerifyCode:
		f.state.update(func(s UiState) UiState { s.VerifyCode = a.VerifyCode; return s })
	case SubmitSignIn:
		f.submitAuth(func(ctx context.Context, s UiState) Result[string] {
			return f.gateway.SignIn(ctx, s.Email, s.Password)
		})
	case SubmitSignUp:
		f.submitAuth(func(ctx context.Context, s UiState) Result[string] {
			return f.gateway.SignUp(ctx, s.Email, s.Password)
		})
	case SubmitAnonymous:
		f.submitAuth(func(ctx context.Context, s UiState) Result[string] {
			return f.gateway.SignInAnonymously(ctx)
		})
	case SubmitSendCode:
		f.submitSendCode()
	case SubmitVerifyCode:
		// No local precondition: with no stored identifier the call goes out
		// with an empty id and the gateway reports the failure.
		f.submitAuth(func(ctx context.Context, s UiState) Result[string] {
			return f.gateway.VerifyCode(ctx, f.currentVerificationID(), s.VerifyCode)
		})
	}
}

// Close tears the flow down: in-flight requests and verification event
// sequences are cancelled (releasing provider resources) and the effect bus is
// closed. The flow must not be dispatched to afterwards.
func (f *LoginFlow) Close() {
	f.cancel()
	f.wg.Wait()
	f.effects.Close()
}

// submitAuth runs a single-shot gateway operation against the state captured
// at submit time. On success it emits the user identifier message followed by
// navigation, in that order; on failure only the cause's description. Inputs
// are preserved either way so the user can correct and retry.
func (f *LoginFlow) submitAuth(op func(context.Context, UiState) Result[string]) {
	f.setLoading(true)

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		res := op(f.ctx, f.state.get())
		f.setLoading(false)

		if res.Failed() {
			f.logger.Debug().Err(res.Cause()).Msg("auth request failed")
			f.effects.Emit(ShowMessage{Message: res.Description()})
			return
		}

		// Message before navigation: navigating may unmount the observer.
		f.effects.Emit(ShowMessage{Message: res.Value()})
		f.effects.Emit(NavigateToAuthenticated{})
	}()
}

// submitSendCode starts the phone verification event sequence and handles each
// event independently. Events from an earlier invocation are not cancelled by
// a later one; the stored verification identifier is simply overwritten by
// whichever code-sent event arrives last.
func (f *LoginFlow) submitSendCode() {
	f.setLoading(true)
	events := f.gateway.SendVerificationCode(f.ctx, f.state.get().PhoneNumber)

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer f.setLoading(false)

		for res := range events {
			switch {
			case res.Failed():
				f.logger.Debug().Err(res.Cause()).Msg("phone verification failed")
				f.effects.Emit(ShowMessage{Message: res.Description()})
			case res.Value() == "":
				f.effects.Emit(ShowMessage{Message: MsgAutoVerified})
			default:
				f.storeVerificationID(res.Value())
				f.effects.Emit(ShowMessage{Message: MsgCodeSent})
			}
		}
	}()
}

func (f *LoginFlow) storeVerificationID(id string) {
	f.mu.Lock()
	f.verificationID = id
	f.mu.Unlock()
}

func (f *LoginFlow) currentVerificationID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.verificationID
}

func (f *LoginFlow) setLoading(loading bool) {
	f.state.update(func(s UiState) UiState { s.IsLoading = loading; return s })
}
