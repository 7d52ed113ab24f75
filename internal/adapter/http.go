package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-writenest/internal/config"
	"github.com/MKhiriev/go-writenest/internal/logger"
	"github.com/MKhiriev/go-writenest/internal/utils"
	"github.com/MKhiriev/go-writenest/models"
)

// APIBasePath is appended to the configured origin.
const APIBasePath = "/api"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. The base URL is the normalised adapterCfg.HTTPAddress plus
// "/api"; every request is bounded by adapterCfg.RequestTimeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	base := strings.TrimRight(u.String(), "/")
	if !strings.HasSuffix(base, APIBasePath) {
		base += APIBasePath
	}

	return base, nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return req
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context, authed bool, body any) *resty.Request {
	req := h.request(ctx)
	if authed {
		req = h.authedRequest(ctx)
	}
	return req.SetHeader("Content-Type", "application/json").SetBody(body)
}

func decodeBody(op string, resp *resty.Response, dst any) error {
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func postPath(id int64, suffix string) string {
	return "/posts/" + strconv.FormatInt(id, 10) + suffix
}

func (h *httpServerAdapter) do(op string, resp *resty.Response, err error) error {
	if err != nil {
		h.logger.Err(err).Str("func", "httpServerAdapter."+op).Msg("request failed")
		return transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().
			Str("func", "httpServerAdapter."+op).
			Int("status", resp.StatusCode()).
			Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
			Msg(ServerMessage(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Login implements [ServerAdapter]. POST /auth/login. The token is taken
// from the body and, when absent there, from the Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.jsonRequest(ctx, false, req).Post("/auth/login")
	if err = h.do("Login", resp, err); err != nil {
		return models.LoginResponse{}, err
	}

	var out models.LoginResponse
	if err = decodeBody("Login", resp, &out); err != nil {
		return models.LoginResponse{}, err
	}

	if out.Token == "" {
		out.Token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("Login: no token in response: %w", err)
		}
	}

	return out, nil
}

// Register implements [ServerAdapter]. POST /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Identity, error) {
	resp, err := h.jsonRequest(ctx, false, req).Post("/auth/register")
	if err = h.do("Register", resp, err); err != nil {
		return models.Identity{}, err
	}

	var out models.RegisterResponse
	if len(resp.Body()) > 0 {
		if err = decodeBody("Register", resp, &out); err != nil {
			return models.Identity{}, err
		}
	}

	return out.User, nil
}

// Me implements [ServerAdapter]. GET /auth/me with the bearer token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.Identity, error) {
	resp, err := h.authedRequest(ctx).Get("/auth/me")
	if err = h.do("Me", resp, err); err != nil {
		return models.Identity{}, err
	}

	var out models.Identity
	if err = decodeBody("Me", resp, &out); err != nil {
		return models.Identity{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) listArticles(ctx context.Context, op, path string, authed bool) ([]models.Article, error) {
	req := h.request(ctx)
	if authed {
		req = h.authedRequest(ctx)
	}

	resp, err := req.Get(path)
	if err = h.do(op, resp, err); err != nil {
		return nil, err
	}

	var out []models.Article
	if err = decodeBody(op, resp, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// MyPosts implements [ServerAdapter]. GET /auth/my-posts.
func (h *httpServerAdapter) MyPosts(ctx context.Context) ([]models.Article, error) {
	return h.listArticles(ctx, "MyPosts", "/auth/my-posts", true)
}

// ListPosts implements [ServerAdapter]. GET /posts.
func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.Article, error) {
	return h.listArticles(ctx, "ListPosts", "/posts", false)
}

// AdminPosts implements [ServerAdapter]. GET /admin/posts.
func (h *httpServerAdapter) AdminPosts(ctx context.Context) ([]models.Article, error) {
	return h.listArticles(ctx, "AdminPosts", "/admin/posts", true)
}

// GetPost implements [ServerAdapter]. GET /posts/:id.
func (h *httpServerAdapter) GetPost(ctx context.Context, id int64) (models.Article, error) {
	resp, err := h.request(ctx).Get(postPath(id, ""))
	if err = h.do("GetPost", resp, err); err != nil {
		return models.Article{}, err
	}

	var out models.Article
	if err = decodeBody("GetPost", resp, &out); err != nil {
		return models.Article{}, err
	}

	return out, nil
}

// CreatePost implements [ServerAdapter]. POST /posts.
func (h *httpServerAdapter) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Article, error) {
	resp, err := h.jsonRequest(ctx, true, req).Post("/posts")
	if err = h.do("CreatePost", resp, err); err != nil {
		return models.Article{}, err
	}

	var out models.Article
	if len(resp.Body()) > 0 {
		if err = decodeBody("CreatePost", resp, &out); err != nil {
			return models.Article{}, err
		}
	}

	return out, nil
}

// UpdatePost implements [ServerAdapter]. PUT /posts/:id.
func (h *httpServerAdapter) UpdatePost(ctx context.Context, id int64, req models.UpdatePostRequest) (models.Article, error) {
	resp, err := h.jsonRequest(ctx, true, req).Put(postPath(id, ""))
	if err = h.do("UpdatePost", resp, err); err != nil {
		return models.Article{}, err
	}

	var out models.Article
	if len(resp.Body()) > 0 {
		if err = decodeBody("UpdatePost", resp, &out); err != nil {
			return models.Article{}, err
		}
	}

	return out, nil
}

// DeletePost implements [ServerAdapter]. DELETE /posts/:id.
func (h *httpServerAdapter) DeletePost(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(postPath(id, ""))
	return h.do("DeletePost", resp, err)
}

// IncrementView implements [ServerAdapter]. POST /posts/:id/view.
func (h *httpServerAdapter) IncrementView(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).Post(postPath(id, "/view"))
	return h.do("IncrementView", resp, err)
}

// ListComments implements [ServerAdapter]. GET /posts/:id/comments.
func (h *httpServerAdapter) ListComments(ctx context.Context, articleID int64) ([]models.Comment, error) {
	resp, err := h.request(ctx).Get(postPath(articleID, "/comments"))
	if err = h.do("ListComments", resp, err); err != nil {
		return nil, err
	}

	var out []models.Comment
	if err = decodeBody("ListComments", resp, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateComment implements [ServerAdapter]. POST /posts/:id/comments.
func (h *httpServerAdapter) CreateComment(ctx context.Context, articleID int64, req models.CommentRequest) error {
	resp, err := h.jsonRequest(ctx, true, req).Post(postPath(articleID, "/comments"))
	return h.do("CreateComment", resp, err)
}

// ListCategories implements [ServerAdapter]. GET /categories.
func (h *httpServerAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	resp, err := h.request(ctx).Get("/categories")
	if err = h.do("ListCategories", resp, err); err != nil {
		return nil, err
	}

	var out []models.Category
	if err = decodeBody("ListCategories", resp, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// AdminStats implements [ServerAdapter]. GET /admin/stats.
func (h *httpServerAdapter) AdminStats(ctx context.Context) (models.Stats, error) {
	resp, err := h.authedRequest(ctx).Get("/admin/stats")
	if err = h.do("AdminStats", resp, err); err != nil {
		return models.Stats{}, err
	}

	var out models.Stats
	if err = decodeBody("AdminStats", resp, &out); err != nil {
		return models.Stats{}, err
	}

	return out, nil
}
