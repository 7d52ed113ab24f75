package utils

import (
	"errors"
	"strings"
)

const bearerScheme = "Bearer"

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return bearerScheme + " " + token
}

// ParseBearerToken extracts the credential from "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
