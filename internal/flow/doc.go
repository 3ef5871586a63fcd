// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flow contains the authentication flow core: the unified result type,
// the identity-gateway contract, the one-shot effect channel, and the state
// machines that drive the login and session screens.
//
// A flow instance owns its mutable screen state exclusively. Callers feed it
// [UiAction] values through Dispatch, observe [UiState] as a replay-latest
// snapshot stream, and consume [UiEffect] values (messages, navigation) through
// an ordered single-consumer channel. All gateway traffic goes through the
// [IdentityGateway] interface so the flows stay independent of the transport.
package flow
