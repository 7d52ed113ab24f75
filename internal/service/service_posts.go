package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-writenest/internal/adapter"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/store"
	"github.com/MKhiriev/go-writenest/internal/validators"
	"github.com/MKhiriev/go-writenest/models"
)

type postService struct {
	adapter   adapter.ServerAdapter
	drafts    store.DraftStorage
	handoff   store.HandoffStorage
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time
}

// NewPostService returns the [PostService].
func NewPostService(serverAdapter adapter.ServerAdapter, drafts store.DraftStorage, handoff store.HandoffStorage, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		adapter:   serverAdapter,
		drafts:    drafts,
		handoff:   handoff,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

func (p *postService) Validate(ctx context.Context, form models.PostForm) error {
	return invalid(ErrInvalidPostForm, p.validator.Validate(ctx, form))
}

func (p *postService) Create(ctx context.Context, form models.PostForm) (models.Article, error) {
	if err := p.Validate(ctx, form); err != nil {
		return models.Article{}, err
	}
	if p.adapter.Token() == "" {
		return models.Article{}, ErrNotAuthenticated
	}

	article, err := p.adapter.CreatePost(ctx, models.CreatePostRequest{
		Title:    strings.TrimSpace(form.Title),
		Content:  strings.TrimSpace(form.Content),
		Category: form.Category,
		Tags:     models.ParseTags(form.Tags),
		Date:     form.PublishDate,
	})
	if err != nil {
		p.logger.Err(err).Str("func", "postService.Create").Msg("failed to publish post")
		return models.Article{}, mapAdapterError(err)
	}

	return article, nil
}

func (p *postService) Update(ctx context.Context, id int64, form models.PostForm) (models.Article, error) {
	if err := p.Validate(ctx, form); err != nil {
		return models.Article{}, err
	}
	if p.adapter.Token() == "" {
		return models.Article{}, ErrNotAuthenticated
	}

	req := models.UpdatePostRequest{
		Title:    strings.TrimSpace(form.Title),
		Content:  strings.TrimSpace(form.Content),
		Category: form.Category,
		Tags:     models.ParseTags(form.Tags),
	}
	if image := strings.TrimSpace(form.ImageURL); image != "" {
		req.ImageURL = &image
	}

	article, err := p.adapter.UpdatePost(ctx, id, req)
	if err != nil {
		p.logger.Err(err).Str("func", "postService.Update").Int64("article_id", id).Msg("failed to update post")
		return models.Article{}, mapAdapterError(err)
	}

	return article, nil
}

func (p *postService) SaveDraft(ctx context.Context, form models.PostForm) error {
	form.SavedAt = p.now().UTC().Format(time.RFC3339)
	return p.drafts.SaveDraft(ctx, form)
}

func (p *postService) LoadDraft(ctx context.Context) (models.PostForm, error) {
	form, err := p.drafts.LoadDraft(ctx)
	if errors.Is(err, store.ErrDraftNotFound) {
		return models.PostForm{}, ErrNoDraft
	}
	if err != nil {
		// an unreadable draft is as good as none
		p.logger.Warn().Err(err).Str("func", "postService.LoadDraft").Msg("discarding unreadable draft")
		return models.PostForm{}, ErrNoDraft
	}

	return form, nil
}

func (p *postService) ClearDraft(ctx context.Context) error {
	return p.drafts.ClearDraft(ctx)
}

func (p *postService) HandOff(ctx context.Context, article models.Article) error {
	return p.handoff.PutEditArticle(ctx, article)
}

func (p *postService) OpenForEdit(ctx context.Context, identity models.Identity, id int64) (models.Article, error) {
	article, err := p.handoff.TakeEditArticle(ctx)
	switch {
	case err == nil && article.ID == id:
	case err != nil && !errors.Is(err, store.ErrHandoffNotFound):
		p.logger.Warn().Err(err).Str("func", "postService.OpenForEdit").Msg("handed over article is unreadable")
		fallthrough
	default:
		article, err = p.adapter.GetPost(ctx, id)
		if err != nil {
			return models.Article{}, mapAdapterError(err)
		}
	}

	if !CanEdit(identity, article) {
		p.logger.Warn().Str("func", "postService.OpenForEdit").Int64("article_id", id).Int64("user_id", identity.ID).Msg("edit refused")
		return models.Article{}, ErrNotAuthor
	}

	return article, nil
}
