package service

import (
	"context"

	"github.com/MKhiriev/go-writenest/internal/adapter"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/models"
)

type articleService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewArticleService returns the [ArticleService].
func NewArticleService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ArticleService {
	return &articleService{adapter: serverAdapter, logger: logger}
}

func (a *articleService) ListPublic(ctx context.Context) ([]models.Article, error) {
	articles, err := a.adapter.ListPosts(ctx)
	return articles, mapAdapterError(err)
}

func (a *articleService) ListAdmin(ctx context.Context) ([]models.Article, error) {
	if a.adapter.Token() == "" {
		return nil, ErrNotAuthenticated
	}
	articles, err := a.adapter.AdminPosts(ctx)
	return articles, mapAdapterError(err)
}

func (a *articleService) ListMine(ctx context.Context) ([]models.Article, error) {
	if a.adapter.Token() == "" {
		return nil, ErrNotAuthenticated
	}
	articles, err := a.adapter.MyPosts(ctx)
	return articles, mapAdapterError(err)
}

func (a *articleService) Get(ctx context.Context, id int64) (models.Article, error) {
	article, err := a.adapter.GetPost(ctx, id)
	return article, mapAdapterError(err)
}

func (a *articleService) RegisterView(ctx context.Context, id int64) {
	if err := a.adapter.IncrementView(ctx, id); err != nil {
		a.logger.Warn().Err(err).
			Str("func", "articleService.RegisterView").
			Int64("article_id", id).
			Msg("failed to register view")
	}
}

func (a *articleService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := a.adapter.ListCategories(ctx)
	return categories, mapAdapterError(err)
}

func (a *articleService) Delete(ctx context.Context, id int64) error {
	if a.adapter.Token() == "" {
		return ErrNotAuthenticated
	}

	if err := a.adapter.DeletePost(ctx, id); err != nil {
		a.logger.Err(err).Str("func", "articleService.Delete").Int64("article_id", id).Msg("delete rejected")
		return mapAdapterError(err)
	}

	a.logger.Info().Str("func", "articleService.Delete").Int64("article_id", id).Msg("article deleted")
	return nil
}
