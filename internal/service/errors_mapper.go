// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-writenest/internal/adapter"
)

// mapAdapterError adds the service sentinel matching the adapter error. The
// adapter error stays in the chain so the server message is kept.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrArticleNotFound, err)
	}

	return err
}

// Message returns the text to show the user for err: the transport
// placeholder for unreachable servers, the CMS message for rejected
// requests, the problems of a rejected form, or the error text itself.
func Message(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrServerUnavailable) || errors.Is(err, adapter.ErrTransport) {
		return ErrServerUnavailable.Error()
	}
	if msg := adapter.ServerMessage(err); msg != "" {
		return msg
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}

	return err.Error()
}
