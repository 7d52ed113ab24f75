// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the forms the user fills
// in on the terminal screens.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Construct a validator with NewFormValidator.
//  2. Inject it into the services that accept user input.
//  3. Call Validate with context, value, and optional field names.
//
// Every returned error matches one of the sentinels in errors.go through
// [errors.Is]; its text is the message shown to the user.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
