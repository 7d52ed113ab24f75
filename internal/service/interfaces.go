package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-writenest/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Access is the protection level of a screen.
type Access int

const (
	// AccessPublic screens are reachable without a session.
	AccessPublic Access = iota
	// AccessGuarded screens need a verified session.
	AccessGuarded
	// AccessAdmin screens need a verified administrator session.
	AccessAdmin
)

// SessionService resolves, creates and ends the user's session.
type SessionService interface {
	// ResolveSession validates the stored token against GET /auth/me.
	// A missing token yields SessionAbsent. Any failure of the check clears
	// the stored token and identity and yields SessionUnverified; there is
	// no retry. On success the refreshed identity is persisted.
	ResolveSession(ctx context.Context) models.SessionResult

	// Current returns the outcome of the last resolution, login or logout.
	Current() models.SessionResult

	// Authorize re-resolves the session and checks it against access.
	// It returns ErrNotAuthenticated or ErrAdminRequired on denial.
	Authorize(ctx context.Context, access Access) (models.SessionResult, error)

	// Login authenticates and stores the token and identity together.
	Login(ctx context.Context, req models.LoginRequest) (models.Identity, error)

	// Register validates form locally and creates the account. It does not
	// log the user in.
	Register(ctx context.Context, form models.RegisterForm) (models.Identity, error)

	// Logout clears the stored token and identity.
	Logout(ctx context.Context) error
}

// ArticleService reads and deletes articles.
type ArticleService interface {
	ListPublic(ctx context.Context) ([]models.Article, error)
	ListAdmin(ctx context.Context) ([]models.Article, error)
	// ListMine returns the articles of the logged in user.
	ListMine(ctx context.Context) ([]models.Article, error)
	Get(ctx context.Context, id int64) (models.Article, error)
	// RegisterView bumps the view counter. Failures are only logged.
	RegisterView(ctx context.Context, id int64)
	Categories(ctx context.Context) ([]models.Category, error)
	// Delete requires a token and returns ErrNotAuthenticated without one.
	Delete(ctx context.Context, id int64) error
}

// CommentService lists and submits comments.
type CommentService interface {
	List(ctx context.Context, articleID int64) ([]models.Comment, error)
	// Submit validates body and posts it. No request is sent when the body
	// is blank or too long.
	Submit(ctx context.Context, articleID int64, body string) error
}

// PostService backs the post editor.
type PostService interface {
	Validate(ctx context.Context, form models.PostForm) error
	Create(ctx context.Context, form models.PostForm) (models.Article, error)
	Update(ctx context.Context, id int64, form models.PostForm) (models.Article, error)

	SaveDraft(ctx context.Context, form models.PostForm) error
	// LoadDraft returns ErrNoDraft when nothing is saved.
	LoadDraft(ctx context.Context) (models.PostForm, error)
	ClearDraft(ctx context.Context) error

	// HandOff remembers article for the editor until the client exits.
	HandOff(ctx context.Context, article models.Article) error
	// OpenForEdit returns the article to edit, preferring a handed over copy
	// with the same id, and checks that identity may edit it.
	OpenForEdit(ctx context.Context, identity models.Identity, id int64) (models.Article, error)
}

// AdminService backs the admin dashboard.
type AdminService interface {
	Stats(ctx context.Context) (models.Stats, error)
	// ExportCSV writes articles to the export directory and returns the
	// file path. It returns ErrNothingToExport for an empty set.
	ExportCSV(ctx context.Context, articles []models.Article, now time.Time) (string, error)
}

// StatsRefreshJob periodically re-fetches dashboard stats while the admin
// screen is shown.
type StatsRefreshJob interface {
	// Start launches the refresh loop. Any running loop is stopped first.
	Start(ctx context.Context)
	// Stop ends the loop and waits for it to exit.
	Stop()
	// Updates delivers refresh results. Results are dropped while a
	// previous one is still unread.
	Updates() <-chan StatsUpdate
}

// StatsUpdate is one periodic stats refresh.
type StatsUpdate struct {
	Stats models.Stats
	Err   error
}
