package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeBackend struct {
	categories    []models.Category
	categoriesErr error
	deleteErr     error
	deleted       []int64
}

func (f *fakeBackend) Categories(_ context.Context) ([]models.Category, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeBackend) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSource struct {
	pages [][]models.Article
	err   error
	calls atomic.Int64
}

func (f *fakeSource) list(_ context.Context) ([]models.Article, error) {
	n := int(f.calls.Add(1)) - 1
	if f.err != nil {
		return nil, f.err
	}
	if n >= len(f.pages) {
		n = len(f.pages) - 1
	}
	return f.pages[n], nil
}

func sample() []models.Article {
	return []models.Article{
		{ID: 1, Title: "Go Basics", Author: "Ann", Category: "Tech", Excerpt: "Start here", Views: 10},
		{ID: 2, Title: "Cooking 101", Author: "Bob", Category: "Food", Content: "Boil water"},
		{ID: 3, Title: "Advanced Go", Author: "Cid", Category: "Tech", Content: "Generics and TITLE case", Views: 5},
		{ID: 4, Title: "Untitled", Author: "Dee", Excerpt: "Nothing here"},
	}
}

func ids(articles []models.Article) []int64 {
	out := make([]int64, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

// ─────────────────────────────────────────────
// Recompute
// ─────────────────────────────────────────────

func TestRecompute_EmptyFiltersKeepEverything(t *testing.T) {
	all := sample()
	assert.Equal(t, all, Recompute(all, "", ""))
}

func TestRecompute_CategoryScenario(t *testing.T) {
	all := []models.Article{
		{ID: 1, Title: "Go Basics", Category: "Tech"},
		{ID: 2, Title: "Cooking 101", Category: "Food"},
	}

	got := Recompute(all, "Tech", "")
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestRecompute_SearchFields(t *testing.T) {
	all := sample()

	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "title", query: "basics", want: []int64{1}},
		{name: "author", query: "bob", want: []int64{2}},
		{name: "excerpt", query: "nothing", want: []int64{4}},
		{name: "content", query: "boil", want: []int64{2}},
		{name: "category", query: "tech", want: []int64{1, 3}},
		{name: "shared substring keeps order", query: "go", want: []int64{1, 3}},
		{name: "no match", query: "rust", want: []int64{}},
		{name: "whitespace trimmed", query: "  cooking ", want: []int64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Recompute(all, "", tt.query)))
		})
	}
}

func TestRecompute_CaseInsensitive(t *testing.T) {
	all := sample()
	assert.Equal(t, Recompute(all, "", "title"), Recompute(all, "", "TITLE"))
	assert.Equal(t, []int64{3, 4}, ids(Recompute(all, "", "TITLE")))
}

func TestRecompute_CategoryIsExact(t *testing.T) {
	all := sample()
	assert.Empty(t, Recompute(all, "tech", ""))
}

func TestRecompute_AndOfPredicates(t *testing.T) {
	all := sample()
	assert.Equal(t, []int64{3}, ids(Recompute(all, "Tech", "generics")))
	assert.Empty(t, Recompute(all, "Food", "generics"))
}

func TestRecompute_IdempotentSubsequence(t *testing.T) {
	all := sample()
	for _, category := range []string{"", "Tech", "Food", "Missing"} {
		for _, query := range []string{"", "go", "E", "zzz"} {
			once := Recompute(all, category, query)
			assert.Equal(t, once, Recompute(once, category, query), "category=%q query=%q", category, query)

			// subsequence of all in the same order
			j := 0
			for _, a := range once {
				for j < len(all) && all[j].ID != a.ID {
					j++
				}
				require.Less(t, j, len(all), "result is not a subsequence")
				j++
			}
		}
	}
}

func TestRecompute_DoesNotModifyInput(t *testing.T) {
	all := sample()
	before := append([]models.Article(nil), all...)
	_ = Recompute(all, "Tech", "go")
	assert.Equal(t, before, all)
}

func TestDeriveCategories(t *testing.T) {
	assert.Equal(t, []string{"Tech", "Food"}, DeriveCategories(sample()))
	assert.Empty(t, DeriveCategories(nil))
}

// ─────────────────────────────────────────────
// Catalog
// ─────────────────────────────────────────────

func TestCatalog_LoadArticles(t *testing.T) {
	src := &fakeSource{pages: [][]models.Article{sample()}}
	c := New(src.list, &fakeBackend{}, logger.Nop())

	state, _ := c.State()
	assert.Equal(t, StateUninitialized, state)

	require.NoError(t, c.LoadArticles(context.Background()))

	state, err := c.State()
	assert.Equal(t, StateLoaded, state)
	assert.NoError(t, err)
	assert.Equal(t, sample(), c.Filtered())
	assert.Equal(t, int64(15), c.TotalViews())
}

func TestCatalog_LoadArticles_Failure(t *testing.T) {
	src := &fakeSource{err: errors.New("502 bad gateway")}
	c := New(src.list, &fakeBackend{}, logger.Nop())

	err := c.LoadArticles(context.Background())
	require.Error(t, err)

	state, lastErr := c.State()
	assert.Equal(t, StateLoadFailed, state)
	assert.Equal(t, err, lastErr)
	assert.Empty(t, c.Filtered())
}

func TestCatalog_FiltersRecompute(t *testing.T) {
	src := &fakeSource{pages: [][]models.Article{sample()}}
	c := New(src.list, &fakeBackend{}, logger.Nop())
	require.NoError(t, c.LoadArticles(context.Background()))

	c.SetCategoryFilter("Tech")
	assert.Equal(t, []int64{1, 3}, ids(c.Filtered()))

	c.SetSearchFilter("  ADVANCED ")
	assert.Equal(t, []int64{3}, ids(c.Filtered()))
	category, search := c.Filters()
	assert.Equal(t, "Tech", category)
	assert.Equal(t, "advanced", search)
	assert.True(t, c.HasFilters())

	c.SetCategoryFilter("")
	c.SetSearchFilter("")
	assert.Equal(t, sample(), c.Filtered())
	assert.False(t, c.HasFilters())
}

func TestCatalog_FiltersSurviveReload(t *testing.T) {
	src := &fakeSource{pages: [][]models.Article{sample(), sample()[1:]}}
	c := New(src.list, &fakeBackend{}, logger.Nop())
	require.NoError(t, c.LoadArticles(context.Background()))
	c.SetCategoryFilter("Tech")

	require.NoError(t, c.LoadArticles(context.Background()))
	assert.Equal(t, []int64{3}, ids(c.Filtered()))
}

func TestCatalog_LoadCategories(t *testing.T) {
	backend := &fakeBackend{categories: []models.Category{
		{Name: "Tech", PostCount: 2},
		{Name: "Empty", PostCount: 0},
		{Name: "Food", PostCount: 1},
	}}
	c := New((&fakeSource{pages: [][]models.Article{nil}}).list, backend, logger.Nop())

	assert.Equal(t, []string{"Tech", "Food"}, c.LoadCategories(context.Background()))
	assert.Equal(t, []string{"Tech", "Food"}, c.Categories())
}

func TestCatalog_LoadCategories_FallsBackSilently(t *testing.T) {
	src := &fakeSource{pages: [][]models.Article{sample()}}
	c := New(src.list, &fakeBackend{categoriesErr: errors.New("404")}, logger.Nop())
	require.NoError(t, c.LoadArticles(context.Background()))

	assert.Equal(t, []string{"Tech", "Food"}, c.LoadCategories(context.Background()))
}

func TestCatalog_DeleteArticle_RefetchesAndRunsHook(t *testing.T) {
	src := &fakeSource{pages: [][]models.Article{sample(), sample()[1:]}}
	backend := &fakeBackend{}
	c := New(src.list, backend, logger.Nop())
	require.NoError(t, c.LoadArticles(context.Background()))

	var order []string
	c.AfterMutation = func(context.Context) {
		order = append(order, "stats")
	}

	require.NoError(t, c.DeleteArticle(context.Background(), 1))
	assert.Equal(t, []int64{1}, backend.deleted)
	assert.Equal(t, int64(2), src.calls.Load(), "list must be fetched again")
	assert.Equal(t, []int64{2, 3, 4}, ids(c.Filtered()))
	assert.Equal(t, []string{"stats"}, order)
}

func TestCatalog_DeleteArticle_FailureKeepsList(t *testing.T) {
	src := &fakeSource{pages: [][]models.Article{sample()}}
	forbidden := errors.New("Not allowed")
	c := New(src.list, &fakeBackend{deleteErr: forbidden}, logger.Nop())
	require.NoError(t, c.LoadArticles(context.Background()))

	hookCalled := false
	c.AfterMutation = func(context.Context) { hookCalled = true }

	err := c.DeleteArticle(context.Background(), 1)
	assert.ErrorIs(t, err, forbidden)
	assert.Equal(t, sample(), c.Filtered())
	assert.Equal(t, int64(1), src.calls.Load())
	assert.False(t, hookCalled)
}

func TestCatalog_DeleteArticle_ReloadFailure(t *testing.T) {
	src := &fakeSource{pages: [][]models.Article{sample()}}
	backend := &fakeBackend{}
	c := New(src.list, backend, logger.Nop())
	require.NoError(t, c.LoadArticles(context.Background()))
	src.err = errors.New("timeout")

	hookCalled := false
	c.AfterMutation = func(context.Context) { hookCalled = true }

	// the delete itself went through; the failed reload is only shown inline
	require.NoError(t, c.DeleteArticle(context.Background(), 1))
	assert.Equal(t, []int64{1}, backend.deleted)
	assert.True(t, hookCalled, "stats must be refreshed after a delete even when the reload fails")

	state, lastErr := c.State()
	assert.Equal(t, StateLoadFailed, state)
	assert.EqualError(t, lastErr, "timeout")
}

func TestCatalog_Find(t *testing.T) {
	src := &fakeSource{pages: [][]models.Article{sample()}}
	c := New(src.list, &fakeBackend{}, logger.Nop())
	require.NoError(t, c.LoadArticles(context.Background()))

	a, ok := c.Find(3)
	assert.True(t, ok)
	assert.Equal(t, "Advanced Go", a.Title)

	_, ok = c.Find(99)
	assert.False(t, ok)
}

func TestLoadState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "loaded", StateLoaded.String())
	assert.Equal(t, "load failed", StateLoadFailed.String())
}
