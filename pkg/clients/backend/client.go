package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/shahzadali/clothshop/internal/config"
)

// Client is a resty-backed client for the cloth shop backend REST API. It
// owns the only base URL in the process; every request goes through it.
type Client struct {
	http     *resty.Client
	validate *validator.Validate
	logger   *zap.Logger
}

// New builds an API client from explicit configuration values.
func New(cfg config.BackendConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)
	restyClient.JSONMarshal = sonic.Marshal
	restyClient.JSONUnmarshal = sonic.Unmarshal

	return &Client{
		http:     restyClient,
		validate: validator.New(),
		logger:   logger,
	}
}

// APIError represents a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend api error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("backend api error: status=%d detail=%s", e.StatusCode, e.Detail)
}

// errorBody mirrors FastAPI error payloads. Detail may be a string or a
// structured validation error list.
type errorBody struct {
	Detail any `json:"detail"`
}

func (b *errorBody) message() string {
	if b == nil || b.Detail == nil {
		return ""
	}
	return fmt.Sprint(b.Detail)
}

// Ping verifies the backend is reachable, retrying with capped exponential
// backoff. It runs once at console startup; aggregation requests themselves
// never retry.
func (c *Client) Ping(ctx context.Context) error {
	attempt := func() error {
		resp, err := c.http.R().SetContext(ctx).Get("/health")
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("backend health check: status %d", resp.StatusCode())
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)
	return backoff.Retry(attempt, policy)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	apiErr := new(errorBody)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Detail: apiErr.message()}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	apiErr := new(errorBody)

	req := c.http.R().SetContext(ctx).SetBody(body).SetError(apiErr)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Detail: apiErr.message()}
	}
	return nil
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	apiErr := new(errorBody)

	req := c.http.R().SetContext(ctx).SetBody(body).SetError(apiErr)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Put(path)
	if err != nil {
		return fmt.Errorf("put %s: %w", path, err)
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Detail: apiErr.message()}
	}
	return nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	apiErr := new(errorBody)

	resp, err := c.http.R().SetContext(ctx).SetError(apiErr).Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	if resp.IsError() && resp.StatusCode() != http.StatusNoContent {
		return &APIError{StatusCode: resp.StatusCode(), Detail: apiErr.message()}
	}
	return nil
}
