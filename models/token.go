package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned by [ParseToken] for an empty credential.
var ErrEmptyToken = errors.New("empty token")

// Token is the bearer credential issued by the CMS on login.
//
// The client treats the credential as opaque: its signature is never
// checked locally and nothing here grants access. When the credential
// happens to be a JWT, its registered claims are decoded so the UI can
// show when the session expires.
type Token struct {
	// RegisteredClaims are the decoded standard claims. Zero when the
	// credential is not a JWT.
	jwt.RegisteredClaims

	// SignedString is the raw credential sent in the Authorization header.
	SignedString string `json:"-"`
}

// ParseToken wraps raw into a Token and best-effort decodes its claims
// without verifying the signature.
func ParseToken(raw string) (Token, error) {
	if raw == "" {
		return Token{}, ErrEmptyToken
	}

	token := Token{SignedString: raw}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return token, fmt.Errorf("token is not a readable JWT: %w", err)
	}
	token.RegisteredClaims = claims

	return token, nil
}

// Expiry returns the "exp" claim, or the zero time when absent.
func (t Token) Expiry() time.Time {
	if t.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.RegisteredClaims.ExpiresAt.Time
}

// Expired reports whether the token carries an "exp" claim in the past.
func (t Token) Expired(now time.Time) bool {
	exp := t.Expiry()
	return !exp.IsZero() && now.After(exp)
}

// String returns the raw credential.
func (t Token) String() string {
	return t.SignedString
}
