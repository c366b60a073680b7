package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prakan/go-content-admin/content"
	"github.com/prakan/go-content-admin/internal/domain"
	"github.com/prakan/go-content-admin/internal/logging"
	"github.com/prakan/go-content-admin/internal/payload"
	"github.com/prakan/go-content-admin/pkg/interfaces"
)

const defaultRequestTimeout = 30 * time.Second

// envelope is the backend response wrapper. Status and message are carried for
// diagnostics but only data is load-bearing.
type envelope[T any] struct {
	Data    T      `json:"data"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// listPayload is the data block of the content list response.
type listPayload struct {
	Contents []content.Summary `json:"contents"`
	Paging   PageMeta          `json:"paging"`
}

// PageMeta is the paging block returned alongside every content page.
type PageMeta struct {
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	PageSizeOptions []int `json:"pageSizeOptions"`
	TotalPage       int   `json:"totalPage"`
	TotalRow        int   `json:"totalRow"`
}

// ContentPage is one fetched page of summaries plus its paging metadata.
type ContentPage struct {
	Items []content.Summary
	Meta  PageMeta
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, mainly for tests and for
// callers that need custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLoggerProvider wires structured logging for request outcomes.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Client) {
		c.logger = logging.GatewayLogger(provider)
	}
}

// Client is the thin per-resource REST gateway. It owns network lifecycle only;
// drafts, validation, and caching live with its callers.
type Client struct {
	baseURL string
	http    *http.Client
	logger  interfaces.Logger
}

// NewClient builds a gateway client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListContents fetches one page of content summaries filtered by category.
// CategoryAll lists every family.
func (c *Client) ListContents(ctx context.Context, category domain.Category, page, pageSize int) (ContentPage, error) {
	if !category.ValidFilter() {
		return ContentPage{}, &content.UnknownCategoryError{Category: string(category)}
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))
	query.Set("category", string(category))

	var out envelope[listPayload]
	if err := c.doJSON(ctx, http.MethodGet, "/contents?"+query.Encode(), &out); err != nil {
		return ContentPage{}, err
	}
	return ContentPage{Items: out.Data.Contents, Meta: out.Data.Paging}, nil
}

// GetContent fetches the full category-specific record behind a summary.
func (c *Client) GetContent(ctx context.Context, id string) (content.Record, error) {
	if id == "" {
		return content.Record{}, content.ErrRecordIDRequired
	}
	var out envelope[content.Record]
	if err := c.doJSON(ctx, http.MethodGet, "/contents/"+url.PathEscape(id), &out); err != nil {
		return content.Record{}, err
	}
	return out.Data, nil
}

// CreateContent posts a complete multipart payload to the category resource.
func (c *Client) CreateContent(ctx context.Context, category domain.Category, p *payload.Payload) error {
	path, err := resourcePath(category)
	if err != nil {
		return err
	}
	return c.doMultipart(ctx, http.MethodPost, path, p)
}

// UpdateContent patches a record with a minimal multipart payload.
func (c *Client) UpdateContent(ctx context.Context, category domain.Category, id string, p *payload.Payload) error {
	if id == "" {
		return content.ErrRecordIDRequired
	}
	path, err := resourcePath(category)
	if err != nil {
		return err
	}
	return c.doMultipart(ctx, http.MethodPatch, path+"/"+url.PathEscape(id), p)
}

// DeleteContent removes a record by its category-specific record id.
func (c *Client) DeleteContent(ctx context.Context, category domain.Category, id string) error {
	if id == "" {
		return content.ErrRecordIDRequired
	}
	path, err := resourcePath(category)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodDelete, path+"/"+url.PathEscape(id), nil, "")
	if err != nil {
		return err
	}
	return c.send(req, nil)
}

func resourcePath(category domain.Category) (string, error) {
	if !category.Valid() {
		return "", &content.UnknownCategoryError{Category: string(category)}
	}
	return "/" + category.Path(), nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, out any) error {
	req, err := c.newRequest(ctx, method, path, nil, "")
	if err != nil {
		return err
	}
	return c.send(req, out)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, p *payload.Payload) error {
	body, contentType, err := p.Encode()
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	return c.send(req, nil)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("gateway: build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) send(req *http.Request, out any) error {
	logger := logging.WithFields(c.logger, map[string]any{
		"method": req.Method,
		"path":   req.URL.Path,
	})

	res, err := c.http.Do(req)
	if err != nil {
		logger.Error("gateway.request.failed", "error", err)
		return fmt.Errorf("gateway: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: res.StatusCode, Message: readMessage(res.Body)}
		logger.Warn("gateway.request.rejected", "status", res.StatusCode)
		return statusErr
	}

	if out == nil {
		logger.Debug("gateway.request.success")
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		logger.Error("gateway.response.decode_failed", "error", err)
		return fmt.Errorf("gateway: decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	logger.Debug("gateway.request.success")
	return nil
}

// readMessage pulls the envelope message out of an error response body when
// one is present. Bodies that are not the standard envelope yield an empty
// message, never an error.
func readMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err != nil {
		return ""
	}
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.Message
}
