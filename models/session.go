package models

// SessionState is the outcome of resolving the stored session.
type SessionState int

const (
	// SessionAbsent means no token is stored.
	SessionAbsent SessionState = iota
	// SessionUnverified means a token was stored but failed validation and
	// has been cleared.
	SessionUnverified
	// SessionVerified means the backend confirmed the token.
	SessionVerified
)

// String implements fmt.Stringer.
func (s SessionState) String() string {
	switch s {
	case SessionVerified:
		return "verified"
	case SessionUnverified:
		return "unverified"
	default:
		return "absent"
	}
}

// Session pairs a bearer token with the identity it was validated for.
// Both halves are stored and cleared together.
type Session struct {
	Token    Token
	Identity Identity
}

// SessionResult is returned by session resolution. Identity is only set
// when State is SessionVerified.
type SessionResult struct {
	State    SessionState
	Identity Identity
	Token    Token
}

// Verified reports whether the session was confirmed by the backend.
func (r SessionResult) Verified() bool {
	return r.State == SessionVerified
}

// IsAdmin reports whether the session is verified and belongs to an admin.
func (r SessionResult) IsAdmin() bool {
	return r.Verified() && r.Identity.IsAdmin()
}
