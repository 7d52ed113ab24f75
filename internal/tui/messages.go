package tui

import (
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/models"
)

// authorizedMsg carries the outcome of a route guard check.
type authorizedMsg struct {
	target  screen
	payload int64
	result  models.SessionResult
	err     error
}

type catalogLoadedMsg struct {
	err error
}

type articleLoadedMsg struct {
	article     models.Article
	comments    []models.Comment
	err         error
	commentsErr error
}

type commentsLoadedMsg struct {
	comments []models.Comment
	err      error
}

type commentPostedMsg struct {
	err error
}

type articleDeletedMsg struct {
	origin screen
	err    error
}

type loginDoneMsg struct {
	identity models.Identity
	err      error
}

type registerDoneMsg struct {
	email string
	err   error
}

type loggedOutMsg struct {
	err error
}

type draftLoadedMsg struct {
	form  models.PostForm
	found bool
}

type editLoadedMsg struct {
	article models.Article
	err     error
}

type postSavedMsg struct {
	article models.Article
	updated bool
	err     error
}

type draftSavedMsg struct {
	err error
}

type handedOffMsg struct {
	id  int64
	err error
}

type adminLoadedMsg struct {
	stats    models.Stats
	statsErr error
	err      error
}

type statsTickMsg struct {
	update service.StatsUpdate
}

type exportedMsg struct {
	path string
	err  error
}

type profileLoadedMsg struct {
	articles []models.Article
	err      error
}

type copiedMsg struct{}

type flashErrMsg struct {
	err error
}
