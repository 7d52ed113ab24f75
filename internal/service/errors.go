package service

import (
	"errors"

	"github.com/MKhiriev/go-writenest/internal/app"
)

var (
	ErrNotAuthenticated    = errors.New(app.MsgLoginRequired)
	ErrAdminRequired       = errors.New(app.MsgAdminRequired)
	ErrNotAuthor           = errors.New(app.MsgNotAuthorized)
	ErrPermissionDenied    = errors.New("permission denied")
	ErrServerUnavailable   = errors.New(app.MsgServerUnavailable)
	ErrArticleNotFound     = errors.New("article not found")
	ErrMissingToken        = errors.New("login response carries no token")
	ErrInvalidComment      = errors.New("invalid comment")
	ErrInvalidPostForm     = errors.New("invalid post form")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNothingToExport     = errors.New(app.MsgNoArticlesToExport)
	ErrNoDraft             = errors.New("no saved draft")
)

// ValidationError carries the user-facing problems of a rejected form. It
// matches both its Kind and every validator error through [errors.Is].
type ValidationError struct {
	Kind error
	Err  error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func invalid(kind, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Kind: kind, Err: err}
}
