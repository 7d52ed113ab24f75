// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog holds the state of an article list screen: the fetched
// articles, the active filters, the categories offered for filtering and
// the derived subset that is displayed.
//
// The displayed subset is never mutated locally. After a successful delete
// the whole list is fetched again.
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/models"
)

// LoadState is the state of the article list.
type LoadState int

const (
	StateUninitialized LoadState = iota
	StateLoading
	StateLoaded
	StateLoadFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateLoadFailed:
		return "load failed"
	default:
		return "uninitialized"
	}
}

// ArticleLister fetches one article source: public, admin or the user's own.
type ArticleLister func(ctx context.Context) ([]models.Article, error)

// Backend provides the calls a catalog makes besides listing.
type Backend interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id int64) error
}

// Catalog is safe for concurrent use: loads run in background commands while
// the screen reads the state.
type Catalog struct {
	list    ArticleLister
	backend Backend
	logger  *logger.Logger

	// AfterMutation runs after every successful delete, e.g. to refresh
	// dashboard stats. It reports its own failures.
	AfterMutation func(ctx context.Context)

	mu         sync.RWMutex
	all        []models.Article
	filtered   []models.Article
	categories []string
	category   string
	search     string
	state      LoadState
	lastErr    error
}

// New returns an uninitialized catalog over list.
func New(list ArticleLister, backend Backend, logger *logger.Logger) *Catalog {
	return &Catalog{
		list:    list,
		backend: backend,
		logger:  logger,
	}
}

// LoadArticles fetches the source and recomputes the displayed subset. On
// failure the previous articles are kept, the state becomes StateLoadFailed
// and the error is recorded for the inline error panel.
func (c *Catalog) LoadArticles(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()

	articles, err := c.list(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = StateLoadFailed
		c.lastErr = err
		c.logger.Err(err).Str("func", "Catalog.LoadArticles").Msg("failed to load articles")
		return err
	}

	c.all = articles
	c.state = StateLoaded
	c.lastErr = nil
	c.filtered = Recompute(c.all, c.category, c.search)
	return nil
}

// LoadCategories fetches the category list and keeps those with at least
// one post. When the request fails the categories are derived from the
// loaded articles instead; the failure is only logged.
func (c *Catalog) LoadCategories(ctx context.Context) []string {
	categories, err := c.backend.Categories(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Warn().Err(err).Str("func", "Catalog.LoadCategories").Msg("deriving categories from articles")
		c.categories = DeriveCategories(c.all)
		return append([]string(nil), c.categories...)
	}

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		if category.PostCount > 0 && category.Name != "" {
			names = append(names, category.Name)
		}
	}
	c.categories = names

	return append([]string(nil), c.categories...)
}

// SetCategoryFilter selects one category; "" selects all.
func (c *Catalog) SetCategoryFilter(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.category = category
	c.filtered = Recompute(c.all, c.category, c.search)
}

// SetSearchFilter sets the search query. It is trimmed and lowercased.
func (c *Catalog) SetSearchFilter(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.search = NormalizeQuery(query)
	c.filtered = Recompute(c.all, c.category, c.search)
}

// DeleteArticle deletes the article on the server. On success the list is
// fetched again and AfterMutation runs; on failure the list is unchanged.
// A failed reload does not fail the delete: it leaves the catalog in
// StateLoadFailed for the view to show.
func (c *Catalog) DeleteArticle(ctx context.Context, id int64) error {
	if err := c.backend.Delete(ctx, id); err != nil {
		return err
	}

	if err := c.LoadArticles(ctx); err != nil {
		c.logger.Warn().Err(err).Int64("article_id", id).Str("func", "Catalog.DeleteArticle").Msg("reload after delete failed")
	}

	if c.AfterMutation != nil {
		c.AfterMutation(ctx)
	}
	return nil
}

// Filtered returns a copy of the displayed subset.
func (c *Catalog) Filtered() []models.Article {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Article(nil), c.filtered...)
}

// All returns a copy of every loaded article.
func (c *Catalog) All() []models.Article {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Article(nil), c.all...)
}

// Categories returns the categories offered for filtering.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.categories...)
}

// Filters returns the active category and normalised search query.
func (c *Catalog) Filters() (category, search string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.category, c.search
}

// HasFilters reports whether any filter narrows the list.
func (c *Catalog) HasFilters() bool {
	category, search := c.Filters()
	return category != "" || search != ""
}

// State returns the load state and the last load error.
func (c *Catalog) State() (LoadState, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state, c.lastErr
}

// Find returns the loaded article with id.
func (c *Catalog) Find(id int64) (models.Article, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.all {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// TotalViews sums the views of every loaded article.
func (c *Catalog) TotalViews() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int64
	for _, a := range c.all {
		total += a.Views
	}
	return total
}

// NormalizeQuery trims and lowercases a search query.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Matches reports whether a contains query in its title, author, excerpt,
// content or category, ignoring case. query must be normalised.
func Matches(a models.Article, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range []string{a.Title, a.Author, a.Excerpt, a.Content, a.Category} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Recompute returns the articles of category that match query, in their
// original order. Empty filters keep every article. It does not modify all.
func Recompute(all []models.Article, category, query string) []models.Article {
	query = NormalizeQuery(query)

	out := make([]models.Article, 0, len(all))
	for _, a := range all {
		if category != "" && a.Category != category {
			continue
		}
		if !Matches(a, query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// DeriveCategories returns the distinct non-empty categories of articles in
// first-seen order.
func DeriveCategories(articles []models.Article) []string {
	seen := make(map[string]struct{}, len(articles))
	var out []string
	for _, a := range articles {
		if a.Category == "" {
			continue
		}
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		out = append(out, a.Category)
	}
	return out
}
