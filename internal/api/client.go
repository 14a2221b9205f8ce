package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/priyanka857/Major-Project-1/internal/shared/apperr"
)

const HeaderRequestID = "X-Request-ID"

// Client talks to the storefront REST API. It is the single outbound boundary:
// every action creator performs exactly one call through it per dispatch cycle.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// WithHTTPClient overrides the underlying transport (tests).
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// do performs one JSON request. token may be empty; the client never blocks a
// call for a missing or expired token, the server is authoritative. A non-2xx
// response is normalized into *apperr.AppError carrying the server's detail
// string when the body has one.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return apperr.Wrap(err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return apperr.Wrap(err)
	}

	rid := uuid.NewString()
	req.Header.Set(HeaderRequestID, rid)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		if c.log != nil {
			c.log.Warn("api_request_failed",
				slog.String("request_id", rid),
				slog.String("method", method),
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
		return apperr.TransportErr(err)
	}
	defer res.Body.Close()

	if c.log != nil {
		c.log.Info("api_request",
			slog.String("request_id", rid),
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", res.StatusCode))
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errorFromResponse(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return apperr.DecodeErr(err)
	}
	return nil
}

// errorFromResponse expects {"detail": "..."} on any non-2xx response; absence
// of detail falls back to the status code.
func errorFromResponse(res *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err == nil && len(b) > 0 {
		_ = json.Unmarshal(b, &payload)
	}

	return apperr.ServerErr(res.StatusCode, payload.Detail)
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) put(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, token, body, out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

func pathf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
