// Package backend provides the shared HTTP plumbing for downstream service
// clients. Each backend (identity, recognition, inventory, ledger) gets a
// typed client built on Caller in its own subpackage.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "github.com/pointward/gateway/internal/errors"
	"github.com/pointward/gateway/internal/metrics"
)

// StatusMap maps expected non-2xx response statuses to domain errors.
// Statuses not in the map are unexpected and become ErrUpstreamRejected.
type StatusMap map[int]error

// Caller issues JSON-over-HTTP calls to one downstream service with a fixed
// per-call timeout. Calls are never retried, and an issued call runs to
// completion or timeout even if the inbound client disconnects: the caller
// deliberately detaches from the inbound request context.
type Caller struct {
	service  string
	baseURL  string
	timeout  time.Duration
	client   *http.Client
	logger   *slog.Logger
	upstream metrics.UpstreamMetrics
}

// NewCaller creates a Caller for one downstream service. The service name is
// used in error context, logs and metrics.
func NewCaller(service, baseURL string, timeout time.Duration, logger *slog.Logger) *Caller {
	return &Caller{
		service:  service,
		baseURL:  baseURL,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
		upstream: metrics.NewNoOpUpstreamMetrics(),
	}
}

// WithMetrics makes the caller record every downstream call and returns the
// caller for chaining.
func (c *Caller) WithMetrics(upstream metrics.UpstreamMetrics) *Caller {
	if upstream != nil {
		c.upstream = upstream
	}
	return c
}

// GetJSON issues a GET request and decodes the JSON response into out.
func (c *Caller) GetJSON(ctx context.Context, path string, query url.Values, out any, expect StatusMap) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, fullURL, nil)
	if err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("%s: failed to build request", c.service))
	}

	return c.do(req, out, expect)
}

// PostJSON issues a POST request with a JSON body and decodes the JSON
// response into out. A nil body sends an empty request body.
func (c *Caller) PostJSON(ctx context.Context, path string, body any, out any, expect StatusMap) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, fmt.Sprintf("%s: failed to encode request body", c.service))
		}
		reader = bytes.NewReader(encoded)
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("%s: failed to build request", c.service))
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out, expect)
}

// PostMultipart issues a POST request with a single file as multipart form
// data and decodes the JSON response into out.
func (c *Caller) PostMultipart(
	ctx context.Context,
	path, field, filename string,
	file io.Reader,
	out any,
	expect StatusMap,
) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("%s: failed to build multipart body", c.service))
	}
	if _, err := io.Copy(part, file); err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("%s: failed to copy file into multipart body", c.service))
	}
	if err := writer.Close(); err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("%s: failed to finalize multipart body", c.service))
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("%s: failed to build request", c.service))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, out, expect)
}

// callContext detaches the downstream call from the inbound request's
// cancellation while keeping its values, and applies the fixed timeout.
// An issued call must not be cut short by the inbound client disconnecting.
func (c *Caller) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
}

// do executes the request, classifies transport failures and maps statuses.
func (c *Caller) do(req *http.Request, out any, expect StatusMap) error {
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		// Timeouts and connection failures are indistinguishable to the
		// caller: both mean the backend is unavailable right now.
		c.logger.Warn("downstream call failed",
			slog.String("service", c.service),
			slog.String("url", req.URL.String()),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", err),
		)
		c.upstream.RecordCall(req.Context(), c.service, req.Method, "unavailable", time.Since(start))
		return apperrors.Wrap(
			apperrors.ErrUpstreamUnavailable,
			fmt.Sprintf("%s: %s %s", c.service, req.Method, req.URL.Path),
		)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("downstream call",
		slog.String("service", c.service),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)
	c.upstream.RecordCall(req.Context(), c.service, req.Method, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if mapped, ok := expect[resp.StatusCode]; ok {
			return apperrors.Wrap(mapped, fmt.Sprintf("%s returned %d", c.service, resp.StatusCode))
		}
		return apperrors.Wrap(
			apperrors.ErrUpstreamRejected,
			fmt.Sprintf("%s returned unexpected status %d", c.service, resp.StatusCode),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(
			apperrors.ErrUpstreamRejected,
			fmt.Sprintf("%s returned a malformed response body", c.service),
		)
	}
	return nil
}
