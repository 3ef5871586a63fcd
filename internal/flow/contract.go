package flow

// UiState is the immutable screen snapshot owned by a flow. It is a pure
// function of prior state and applied actions and never carries transient
// network handles.
type UiState struct {
	// IsLoading is true while at least one Submit* request is in flight.
	IsLoading bool

	// Email and Password back the credential sub-flow inputs.
	Email    string
	Password string

	// PhoneNumber and VerifyCode back the phone verification sub-flow inputs.
	PhoneNumber string
	VerifyCode  string
}

// UiAction is the closed set of intents a user can issue against a flow.
// Each variant carries exactly the data needed to apply it.
type UiAction interface {
	isUiAction()
}

// ChangeEmail replaces the email input value.
type ChangeEmail struct{ Email string }

// ChangePassword replaces the password input value.
type ChangePassword struct{ Password string }

// ChangePhoneNumber replaces the phone number input value.
type ChangePhoneNumber struct{ PhoneNumber string }

// ChangeVerifyCode replaces the verification code input value.
type ChangeVerifyCode struct{ VerifyCode string }

// SubmitSignIn requests a password sign-in with the current email/password.
type SubmitSignIn struct{}

// SubmitSignUp requests account creation with the current email/password.
type SubmitSignUp struct{}

// SubmitAnonymous requests an anonymous sign-in.
type SubmitAnonymous struct{}

// SubmitSendCode requests a verification code for the current phone number.
type SubmitSendCode struct{}

// SubmitVerifyCode redeems the entered code against the stored verification id.
type SubmitVerifyCode struct{}

// SignOutRequested ends the current session (session flow only).
type SignOutRequested struct{}

func (ChangeEmail) isUiAction()       {}
func (ChangePassword) isUiAction()    {}
func (ChangePhoneNumber) isUiAction() {}
func (ChangeVerifyCode) isUiAction()  {}
func (SubmitSignIn) isUiAction()      {}
func (SubmitSignUp) isUiAction()      {}
func (SubmitAnonymous) isUiAction()   {}
func (SubmitSendCode) isUiAction()    {}
func (SubmitVerifyCode) isUiAction()  {}
func (SignOutRequested) isUiAction()  {}

// UiEffect is the closed set of one-shot outcomes a flow can emit. Effects are
// meaningful only to an active observer and are delivered at most once each.
type UiEffect interface {
	isUiEffect()
}

// ShowMessage asks the observer to display a transient user-visible message.
type ShowMessage struct{ Message string }

// NavigateToAuthenticated asks the observer to route to the authenticated area.
type NavigateToAuthenticated struct{}

// NavigateToUnauthenticated asks the observer to route back to the login area.
type NavigateToUnauthenticated struct{}

func (ShowMessage) isUiEffect()               {}
func (NavigateToAuthenticated) isUiEffect()   {}
func (NavigateToUnauthenticated) isUiEffect() {}
