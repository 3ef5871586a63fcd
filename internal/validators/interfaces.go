// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the authentication request types before any
// service work happens: credentials, phone code-send requests and code
// redemption requests. Validators are injected into services so the rules
// stay independent of transport and storage.
package validators

import "context"

// Validator validates an arbitrary input value. The optional field names
// restrict the check to those fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
