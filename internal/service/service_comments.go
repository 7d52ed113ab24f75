package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-writenest/internal/adapter"
	"github.com/MKhiriev/go-writenest/internal/validators"
	"github.com/MKhiriev/go-writenest/models"
)

type commentService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

// NewCommentService returns the [CommentService].
func NewCommentService(serverAdapter adapter.ServerAdapter, validator validators.Validator) CommentService {
	return &commentService{adapter: serverAdapter, validator: validator}
}

func (c *commentService) List(ctx context.Context, articleID int64) ([]models.Comment, error) {
	comments, err := c.adapter.ListComments(ctx, articleID)
	return comments, mapAdapterError(err)
}

func (c *commentService) Submit(ctx context.Context, articleID int64, body string) error {
	req := models.CommentRequest{Content: strings.TrimSpace(body)}
	if err := c.validator.Validate(ctx, req); err != nil {
		return invalid(ErrInvalidComment, err)
	}
	if c.adapter.Token() == "" {
		return ErrNotAuthenticated
	}

	return mapAdapterError(c.adapter.CreateComment(ctx, articleID, req))
}
