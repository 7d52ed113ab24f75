package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/mock"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/internal/store"
	"github.com/MKhiriev/go-writenest/internal/validators"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type postMocks struct {
	adapter *mock.MockServerAdapter
	drafts  *mock.MockDraftStorage
	handoff *mock.MockHandoffStorage
}

func newTestPostSvc(t *testing.T) (service.PostService, postMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := postMocks{
		adapter: mock.NewMockServerAdapter(ctrl),
		drafts:  mock.NewMockDraftStorage(ctrl),
		handoff: mock.NewMockHandoffStorage(ctrl),
	}
	svc := service.NewPostService(m.adapter, m.drafts, m.handoff, validators.NewFormValidator(), logger.Nop())
	return svc, m
}

func validForm() models.PostForm {
	return models.PostForm{
		Title:       "  Hello Go  ",
		Category:    "Technology",
		Tags:        "go, cli,, ",
		Excerpt:     "Short",
		Content:     " Body ",
		PublishDate: "2026-03-01",
	}
}

// ── Validate / Create / Update ───────────────────────────────────────────────

func TestPostService_Validate_ReportsAllProblems(t *testing.T) {
	svc, _ := newTestPostSvc(t)

	err := svc.Validate(context.Background(), models.PostForm{})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidPostForm)
	assert.ErrorIs(t, err, validators.ErrTitleRequired)
	assert.ErrorIs(t, err, validators.ErrPublishDateRequired)
	assert.Contains(t, service.Message(err), "Content is required")
}

func TestPostService_Create(t *testing.T) {
	svc, m := newTestPostSvc(t)
	ctx := context.Background()

	m.adapter.EXPECT().Token().Return("tok")
	m.adapter.EXPECT().CreatePost(ctx, models.CreatePostRequest{
		Title:    "Hello Go",
		Content:  "Body",
		Category: "Technology",
		Tags:     []string{"go", "cli"},
		Date:     "2026-03-01",
	}).Return(models.Article{ID: 11, Title: "Hello Go"}, nil)

	article, err := svc.Create(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(11), article.ID)
}

func TestPostService_Create_InvalidSendsNothing(t *testing.T) {
	svc, _ := newTestPostSvc(t)

	form := validForm()
	form.ImageURL = "not-a-url"

	_, err := svc.Create(context.Background(), form)
	assert.ErrorIs(t, err, validators.ErrInvalidImageURL)
}

func TestPostService_Update_ImageURL(t *testing.T) {
	ctx := context.Background()

	t.Run("empty image clears it", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		m.adapter.EXPECT().Token().Return("tok")
		m.adapter.EXPECT().UpdatePost(ctx, int64(4), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, req models.UpdatePostRequest) (models.Article, error) {
				assert.Nil(t, req.ImageURL)
				assert.Equal(t, []string{"go", "cli"}, req.Tags)
				return models.Article{ID: 4}, nil
			})

		_, err := svc.Update(ctx, 4, validForm())
		require.NoError(t, err)
	})

	t.Run("image is sent", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		form := validForm()
		form.ImageURL = " https://img.example.com/a.png "

		m.adapter.EXPECT().Token().Return("tok")
		m.adapter.EXPECT().UpdatePost(ctx, int64(4), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, req models.UpdatePostRequest) (models.Article, error) {
				require.NotNil(t, req.ImageURL)
				assert.Equal(t, "https://img.example.com/a.png", *req.ImageURL)
				return models.Article{ID: 4}, nil
			})

		_, err := svc.Update(ctx, 4, form)
		require.NoError(t, err)
	})

	t.Run("no token", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		m.adapter.EXPECT().Token().Return("")

		_, err := svc.Update(ctx, 4, validForm())
		assert.ErrorIs(t, err, service.ErrNotAuthenticated)
	})
}

// ── Drafts ───────────────────────────────────────────────────────────────────

func TestPostService_SaveDraft_StampsTime(t *testing.T) {
	svc, m := newTestPostSvc(t)

	m.drafts.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form models.PostForm) error {
			assert.NotEmpty(t, form.SavedAt)
			assert.Equal(t, "  Hello Go  ", form.Title, "drafts keep the form as typed")
			return nil
		})

	require.NoError(t, svc.SaveDraft(context.Background(), validForm()))
}

func TestPostService_LoadDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		m.drafts.EXPECT().LoadDraft(ctx).Return(validForm(), nil)

		form, err := svc.LoadDraft(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Technology", form.Category)
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		m.drafts.EXPECT().LoadDraft(ctx).Return(models.PostForm{}, store.ErrDraftNotFound)

		_, err := svc.LoadDraft(ctx)
		assert.ErrorIs(t, err, service.ErrNoDraft)
	})

	t.Run("unreadable", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		m.drafts.EXPECT().LoadDraft(ctx).Return(models.PostForm{}, errors.New("decode draft"))

		_, err := svc.LoadDraft(ctx)
		assert.ErrorIs(t, err, service.ErrNoDraft)
	})
}

func TestPostService_ClearDraft(t *testing.T) {
	svc, m := newTestPostSvc(t)
	m.drafts.EXPECT().ClearDraft(gomock.Any()).Return(nil)

	assert.NoError(t, svc.ClearDraft(context.Background()))
}

// ── Edit handoff ─────────────────────────────────────────────────────────────

func TestPostService_OpenForEdit(t *testing.T) {
	ctx := context.Background()
	owned := models.Article{ID: 7, Title: "Mine", AuthorID: author.ID}

	t.Run("handed over copy is used", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		m.handoff.EXPECT().PutEditArticle(ctx, owned).Return(nil)
		m.handoff.EXPECT().TakeEditArticle(ctx).Return(owned, nil)

		require.NoError(t, svc.HandOff(ctx, owned))
		article, err := svc.OpenForEdit(ctx, author, 7)
		require.NoError(t, err)
		assert.Equal(t, owned, article)
	})

	t.Run("stale handoff falls back to the server", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		m.handoff.EXPECT().TakeEditArticle(ctx).Return(models.Article{ID: 99}, nil)
		m.adapter.EXPECT().GetPost(ctx, int64(7)).Return(owned, nil)

		article, err := svc.OpenForEdit(ctx, author, 7)
		require.NoError(t, err)
		assert.Equal(t, "Mine", article.Title)
	})

	t.Run("nothing handed over", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		m.handoff.EXPECT().TakeEditArticle(ctx).Return(models.Article{}, store.ErrHandoffNotFound)
		m.adapter.EXPECT().GetPost(ctx, int64(7)).Return(owned, nil)

		_, err := svc.OpenForEdit(ctx, author, 7)
		require.NoError(t, err)
	})

	t.Run("not the author", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		stranger := models.Identity{ID: 42, Name: "Eve", RoleID: 2}
		m.handoff.EXPECT().TakeEditArticle(ctx).Return(owned, nil)

		_, err := svc.OpenForEdit(ctx, stranger, 7)
		assert.ErrorIs(t, err, service.ErrNotAuthor)
		assert.Equal(t, "You are not authorized to edit this article", service.Message(err))
	})

	t.Run("admin may edit anything", func(t *testing.T) {
		svc, m := newTestPostSvc(t)
		m.handoff.EXPECT().TakeEditArticle(ctx).Return(owned, nil)

		_, err := svc.OpenForEdit(ctx, admin, 7)
		assert.NoError(t, err)
	})
}
