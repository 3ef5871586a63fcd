package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-flow/internal/app"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/internal/service"
	"github.com/MKhiriev/go-auth-flow/internal/store"
	"github.com/MKhiriev/go-auth-flow/internal/utils"
	"github.com/MKhiriev/go-auth-flow/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg(app.MsgEmailAlreadyExists)
			http.Error(w, app.MsgEmailAlreadyExists, http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.writeAuthResponse(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			http.Error(w, app.MsgInvalidEmailPassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("uid", foundUser.UID).Msg("user successfully logged in")

	h.writeAuthResponse(w, r, foundUser)
}

func (h *Handler) anonymous(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	createdUser, err := h.services.AuthService.LoginAnonymous(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during anonymous login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("uid", createdUser.UID).Msg("anonymous user created")

	h.writeAuthResponse(w, r, createdUser)
}

// session reports whether the bearer token presented by the client still maps
// to an existing account. The auth middleware has already validated the token.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	uid, ok := utils.GetUserUIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user uid in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.AuthService.GetUser(ctx, uid)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("uid", uid).Msg("token maps to a deleted account")
			http.Error(w, app.MsgNoUserWasFound, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during session check")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.SessionResponse{Active: true, UserUID: foundUser.UID}, http.StatusOK)
}

// logout acknowledges the sign-out. Tokens are stateless, so there is nothing
// to revoke server-side; the client discards its copy.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	uid, _ := utils.GetUserUIDFromContext(r.Context())
	log.Info().Str("uid", uid).Msg("user signed out")

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) phoneSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PhoneSendRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	start, err := h.services.VerificationService.StartVerification(ctx, request.PhoneNumber)
	if err != nil {
		log.Err(err).Msg("starting phone verification failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if start.AutoVerified {
		utils.WriteJSON(w, models.PhoneSendResponse{AutoVerified: true, UserUID: start.User.UID}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.PhoneSendResponse{VerificationID: start.VerificationID}, http.StatusOK)
}

func (h *Handler) phoneVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PhoneVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	verifiedUser, err := h.services.VerificationService.RedeemCode(ctx, request.VerificationID, request.Code)
	if err != nil {
		log.Err(err).Str("verificationID", request.VerificationID).Msg("code redemption failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	h.writeAuthResponse(w, r, verifiedUser)
}

// writeAuthResponse issues a JWT for user and writes the standard
// authentication payload.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{UserUID: user.UID, Token: token.SignedString}, http.StatusOK)
}
