// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer implementation of the identity
// gateway used by the client application.
//
// The package ships an HTTP/REST implementation ([NewHTTPIdentityGateway])
// of [flow.IdentityGateway]. Transport and provider errors are mapped by
// mapHTTPError to the sentinel values defined in the flow package so that
// callers can use [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-flow/internal/config"
	"github.com/MKhiriev/go-auth-flow/internal/flow"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/internal/utils"
	"github.com/MKhiriev/go-auth-flow/models"
	"github.com/go-resty/resty/v2"
)

type httpIdentityGateway struct {
	client *utils.HTTPClient

	mu          sync.RWMutex
	token       string
	sessionFile string

	verifyTimeout time.Duration

	logger *logger.Logger
}

var _ flow.IdentityGateway = (*httpIdentityGateway)(nil)

// NewHTTPIdentityGateway constructs an HTTP/REST implementation of
// [flow.IdentityGateway]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, and restores a previously persisted
// session token from adapterCfg.SessionFile when the file exists.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPIdentityGateway(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (flow.IdentityGateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	g := &httpIdentityGateway{
		client:        client,
		sessionFile:   adapterCfg.SessionFile,
		verifyTimeout: appCfg.VerificationTimeout,
		logger:        logger,
	}
	g.restoreSession()

	return g, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// IsSessionActive implements [flow.IdentityGateway]. It probes
// GET /api/auth/session with the stored bearer token and reports whether the
// provider still considers the session valid. A missing token, transport
// failure, or negative provider answer all report false.
func (g *httpIdentityGateway) IsSessionActive(ctx context.Context) bool {
	if g.Token() == "" {
		return false
	}

	var session models.SessionResponse
	resp, err := g.authedRequest(ctx).
		SetResult(&session).
		Get("/api/auth/session")
	if err != nil {
		g.logger.Debug().Err(err).Msg("session probe failed")
		return false
	}
	if err = mapHTTPError(resp); err != nil {
		return false
	}

	return session.Active
}

// SignUp implements [flow.IdentityGateway]. It POSTs the credentials to
// POST /api/auth/register and on success stores the returned session token
// and yields the new user's UID.
func (g *httpIdentityGateway) SignUp(ctx context.Context, email, password string) flow.Result[string] {
	return g.authenticate(ctx, "/api/auth/register", models.Credentials{Email: email, Password: password})
}

// SignIn implements [flow.IdentityGateway]. It POSTs the credentials to
// POST /api/auth/login and on success stores the returned session token and
// yields the user's UID.
func (g *httpIdentityGateway) SignIn(ctx context.Context, email, password string) flow.Result[string] {
	return g.authenticate(ctx, "/api/auth/login", models.Credentials{Email: email, Password: password})
}

// SignInAnonymously implements [flow.IdentityGateway]. It POSTs to
// POST /api/auth/anonymous, which provisions a fresh guest account on every
// call, and on success stores the returned session token and yields the
// guest UID.
func (g *httpIdentityGateway) SignInAnonymously(ctx context.Context) flow.Result[string] {
	return g.authenticate(ctx, "/api/auth/anonymous", nil)
}

// SignOut implements [flow.IdentityGateway]. It notifies the provider via
// POST /api/auth/logout and discards the stored session token. The local
// session is dropped even when the provider call fails.
func (g *httpIdentityGateway) SignOut(ctx context.Context) {
	if g.Token() != "" {
		resp, err := g.authedRequest(ctx).Post("/api/auth/logout")
		if err != nil {
			g.logger.Debug().Err(err).Msg("logout request failed")
		} else if err = mapHTTPError(resp); err != nil {
			g.logger.Debug().Err(err).Msg("logout rejected by provider")
		}
	}

	g.clearToken()
}

// SendVerificationCode implements [flow.IdentityGateway]. It starts a phone
// verification attempt via POST /api/auth/phone/send and returns a channel
// that yields the attempt's events and then closes.
//
// The HTTP provider resolves the attempt in a single round-trip, so the
// channel carries at most one event: Success with the verification id when a
// code was sent, Success with an empty value when the number was verified
// instantly, or a failure mapped from the transport outcome. The effective
// deadline is the shorter of ctx and the configured verification timeout.
func (g *httpIdentityGateway) SendVerificationCode(ctx context.Context, phoneNumber string) <-chan flow.Result[string] {
	out := make(chan flow.Result[string], 1)

	go func() {
		defer close(out)

		sendCtx := ctx
		if g.verifyTimeout > 0 {
			var cancel context.CancelFunc
			sendCtx, cancel = context.WithTimeout(ctx, g.verifyTimeout)
			defer cancel()
		}

		var sent models.PhoneSendResponse
		resp, err := g.client.R().
			SetContext(sendCtx).
			SetHeader("Content-Type", "application/json").
			SetBody(models.PhoneSendRequest{PhoneNumber: phoneNumber}).
			SetResult(&sent).
			Post("/api/auth/phone/send")
		if err != nil {
			emit(sendCtx, out, flow.Failure[string](fmt.Errorf("send verification code: %w: %w", flow.ErrNetworkFailure, err)))
			return
		}
		if err = mapHTTPError(resp); err != nil {
			emit(sendCtx, out, flow.Failure[string](err))
			return
		}

		if sent.AutoVerified {
			// пустое значение успеха и есть сигнал авто-верификации
			g.logger.Info().Str("uid", sent.UserUID).Msg("phone number auto-verified")
			emit(sendCtx, out, flow.Success(""))
			return
		}

		emit(sendCtx, out, flow.Success(sent.VerificationID))
	}()

	return out
}

// VerifyCode implements [flow.IdentityGateway]. It redeems the code via
// POST /api/auth/phone/verify and on success stores the returned session
// token and yields the user's UID.
func (g *httpIdentityGateway) VerifyCode(ctx context.Context, verificationID, code string) flow.Result[string] {
	return g.authenticate(ctx, "/api/auth/phone/verify", models.PhoneVerifyRequest{
		VerificationID: verificationID,
		Code:           code,
	})
}

// Token returns the bearer token currently held by the gateway, or an empty
// string if none has been set.
func (g *httpIdentityGateway) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// authenticate POSTs body to path, decodes the [models.AuthResponse], stores
// the returned session token, and yields the user UID.
func (g *httpIdentityGateway) authenticate(ctx context.Context, path string, body any) flow.Result[string] {
	var auth models.AuthResponse

	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetResult(&auth)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return flow.Failure[string](fmt.Errorf("%s: %w: %w", path, flow.ErrNetworkFailure, err))
	}
	if err = mapHTTPError(resp); err != nil {
		return flow.Failure[string](err)
	}

	g.setToken(auth.Token)
	return flow.Success(auth.UserUID)
}

func (g *httpIdentityGateway) authedRequest(ctx context.Context) *resty.Request {
	req := g.client.R().SetContext(ctx)
	if token := g.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (g *httpIdentityGateway) setToken(token string) {
	g.mu.Lock()
	g.token = strings.TrimSpace(token)
	file := g.sessionFile
	value := g.token
	g.mu.Unlock()

	if file == "" || value == "" {
		return
	}
	if err := os.WriteFile(file, []byte(value), 0o600); err != nil {
		g.logger.Debug().Err(err).Msg("failed to persist session token")
	}
}

func (g *httpIdentityGateway) clearToken() {
	g.mu.Lock()
	g.token = ""
	file := g.sessionFile
	g.mu.Unlock()

	if file == "" {
		return
	}
	if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
		g.logger.Debug().Err(err).Msg("failed to remove session file")
	}
}

func (g *httpIdentityGateway) restoreSession() {
	if g.sessionFile == "" {
		return
	}

	data, err := os.ReadFile(g.sessionFile)
	if err != nil {
		return
	}

	g.mu.Lock()
	g.token = strings.TrimSpace(string(data))
	g.mu.Unlock()
}

// emit delivers r unless ctx is already done; the receiver owns the channel
// and may stop reading at any point.
func emit(ctx context.Context, out chan<- flow.Result[string], r flow.Result[string]) {
	select {
	case out <- r:
	case <-ctx.Done():
	}
}
