package store

import (
	"context"

	"github.com/MKhiriev/go-writenest/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Storage scopes. Entries in ScopeLocal survive restarts; ScopeSession is
// wiped every time the client starts.
const (
	ScopeLocal   = "local"
	ScopeSession = "session"
)

// Well-known entry keys.
const (
	KeyAuthToken   = "authToken"
	KeyCurrentUser = "currentUser"
	KeyDraftPost   = "draftPost"
	KeyEditArticle = "editArticle"
)

// Entry is a single key/value pair of a scope.
type Entry struct {
	Key    string
	Value  []byte
	Sealed bool
}

// KeyValueRepository is the low-level local key/value repository.
type KeyValueRepository interface {
	// Put upserts entries atomically.
	Put(ctx context.Context, scope string, entries ...Entry) error
	// Get returns ErrKeyNotFound when the key is absent.
	Get(ctx context.Context, scope, key string) (Entry, error)
	// Delete removes keys atomically; missing keys are ignored.
	Delete(ctx context.Context, scope string, keys ...string) error
	// Clear removes every entry of scope.
	Clear(ctx context.Context, scope string) error
}

// SessionStorage persists the bearer token and the identity it belongs to.
// Both halves are always written and removed together.
type SessionStorage interface {
	SaveSession(ctx context.Context, token string, identity models.Identity) error
	// LoadSession returns ErrSessionNotFound when no token is stored and
	// ErrSessionCorrupted when the token cannot be unsealed.
	LoadSession(ctx context.Context) (models.Session, error)
	SaveIdentity(ctx context.Context, identity models.Identity) error
	ClearSession(ctx context.Context) error
}

// DraftStorage keeps one in-progress post form.
type DraftStorage interface {
	SaveDraft(ctx context.Context, form models.PostForm) error
	// LoadDraft returns ErrDraftNotFound when nothing is saved.
	LoadDraft(ctx context.Context) (models.PostForm, error)
	ClearDraft(ctx context.Context) error
}

// HandoffStorage passes an article from the detail or admin screen to the
// editor within one client run.
type HandoffStorage interface {
	PutEditArticle(ctx context.Context, article models.Article) error
	// TakeEditArticle returns and removes the handed over article, or
	// ErrHandoffNotFound.
	TakeEditArticle(ctx context.Context) (models.Article, error)
	ClearSessionScope(ctx context.Context) error
}
