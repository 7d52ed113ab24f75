// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// WriteNest CMS REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrForbidden] for 403). The human-readable
// message of the CMS error body is kept and can be recovered with
// [ServerMessage].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-writenest/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the CMS API. Implementations are
// responsible for serialisation, the bearer header, normalising response
// shapes and mapping failures to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// An empty token removes it.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter.
	Token() string

	// Login posts credentials to /auth/login and returns the token and user.
	// The token is not stored in the adapter; the caller decides.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Register posts a new account to /auth/register.
	Register(ctx context.Context, req models.RegisterRequest) (models.Identity, error)

	// Me validates the current token against /auth/me.
	Me(ctx context.Context) (models.Identity, error)

	// MyPosts lists the articles of the authenticated user.
	MyPosts(ctx context.Context) ([]models.Article, error)

	// ListPosts lists all public articles in server order.
	ListPosts(ctx context.Context) ([]models.Article, error)

	// GetPost fetches a single article.
	GetPost(ctx context.Context, id int64) (models.Article, error)

	// CreatePost creates an article.
	CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Article, error)

	// UpdatePost replaces the editable fields of an article.
	UpdatePost(ctx context.Context, id int64, req models.UpdatePostRequest) (models.Article, error)

	// DeletePost deletes an article.
	DeletePost(ctx context.Context, id int64) error

	// IncrementView bumps the view counter of an article.
	IncrementView(ctx context.Context, id int64) error

	// ListComments lists the comments of an article.
	ListComments(ctx context.Context, articleID int64) ([]models.Comment, error)

	// CreateComment posts a comment to an article.
	CreateComment(ctx context.Context, articleID int64, req models.CommentRequest) error

	// ListCategories fetches the categories endpoint.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// AdminStats fetches the dashboard summary. Admin only.
	AdminStats(ctx context.Context) (models.Stats, error)

	// AdminPosts lists every article for the dashboard. Admin only.
	AdminPosts(ctx context.Context) ([]models.Article, error)
}
