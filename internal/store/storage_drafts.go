package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-writenest/models"
)

type draftStorage struct {
	repo KeyValueRepository
}

// NewDraftStorage returns a [DraftStorage] kept in the durable scope.
func NewDraftStorage(repo KeyValueRepository) DraftStorage {
	return &draftStorage{repo: repo}
}

func (d *draftStorage) SaveDraft(ctx context.Context, form models.PostForm) error {
	payload, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	return d.repo.Put(ctx, ScopeLocal, Entry{Key: KeyDraftPost, Value: payload})
}

func (d *draftStorage) LoadDraft(ctx context.Context) (models.PostForm, error) {
	entry, err := d.repo.Get(ctx, ScopeLocal, KeyDraftPost)
	if errors.Is(err, ErrKeyNotFound) {
		return models.PostForm{}, ErrDraftNotFound
	}
	if err != nil {
		return models.PostForm{}, fmt.Errorf("load draft: %w", err)
	}

	var form models.PostForm
	if err = json.Unmarshal(entry.Value, &form); err != nil {
		return models.PostForm{}, fmt.Errorf("decode draft: %w", err)
	}

	return form, nil
}

func (d *draftStorage) ClearDraft(ctx context.Context) error {
	return d.repo.Delete(ctx, ScopeLocal, KeyDraftPost)
}

type handoffStorage struct {
	repo KeyValueRepository
}

// NewHandoffStorage returns a [HandoffStorage] kept in the session scope.
func NewHandoffStorage(repo KeyValueRepository) HandoffStorage {
	return &handoffStorage{repo: repo}
}

func (h *handoffStorage) PutEditArticle(ctx context.Context, article models.Article) error {
	payload, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("encode article: %w", err)
	}

	return h.repo.Put(ctx, ScopeSession, Entry{Key: KeyEditArticle, Value: payload})
}

func (h *handoffStorage) TakeEditArticle(ctx context.Context) (models.Article, error) {
	entry, err := h.repo.Get(ctx, ScopeSession, KeyEditArticle)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Article{}, ErrHandoffNotFound
	}
	if err != nil {
		return models.Article{}, fmt.Errorf("load handed over article: %w", err)
	}

	var article models.Article
	if err = json.Unmarshal(entry.Value, &article); err != nil {
		return models.Article{}, fmt.Errorf("decode handed over article: %w", err)
	}

	if err = h.repo.Delete(ctx, ScopeSession, KeyEditArticle); err != nil {
		return models.Article{}, err
	}

	return article, nil
}

func (h *handoffStorage) ClearSessionScope(ctx context.Context) error {
	return h.repo.Clear(ctx, ScopeSession)
}
