package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pointward/gateway/internal/errors"
	"github.com/pointward/gateway/internal/testutil"
)

func newTestCaller(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Caller {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewCaller("test-backend", server.URL, timeout, testutil.DiscardLogger())
}

func TestCaller_GetJSON(t *testing.T) {
	t.Run("DecodesResponse", func(t *testing.T) {
		caller := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/items", r.URL.Path)
			assert.Equal(t, "a,b", r.URL.Query().Get("ids"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"value":"ok"}`))
		}, time.Second)

		var out struct {
			Value string `json:"value"`
		}
		query := url.Values{"ids": []string{"a,b"}}
		err := caller.GetJSON(context.Background(), "/items", query, &out, nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", out.Value)
	})

	t.Run("MappedStatusBecomesDomainError", func(t *testing.T) {
		caller := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}, time.Second)

		err := caller.GetJSON(context.Background(), "/items/x", nil, nil, StatusMap{
			http.StatusNotFound: apperrors.ErrNotFound,
		})

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("UnexpectedStatusIsRejected", func(t *testing.T) {
		caller := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, time.Second)

		err := caller.GetJSON(context.Background(), "/items", nil, nil, nil)

		assert.True(t, apperrors.Is(err, apperrors.ErrUpstreamRejected))
	})

	t.Run("MalformedBodyIsRejected", func(t *testing.T) {
		caller := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}, time.Second)

		var out map[string]any
		err := caller.GetJSON(context.Background(), "/items", nil, &out, nil)

		assert.True(t, apperrors.Is(err, apperrors.ErrUpstreamRejected))
	})
}

func TestCaller_PostJSON(t *testing.T) {
	t.Run("SendsBodyAndDecodesResponse", func(t *testing.T) {
		caller := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"created"}`))
		}, time.Second)

		var out struct {
			ID string `json:"id"`
		}
		err := caller.PostJSON(context.Background(), "/things", map[string]string{"name": "x"}, &out, nil)

		require.NoError(t, err)
		assert.Equal(t, "created", out.ID)
	})

	t.Run("NilOutSkipsDecoding", func(t *testing.T) {
		caller := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ack"))
		}, time.Second)

		err := caller.PostJSON(context.Background(), "/things", nil, nil, nil)
		assert.NoError(t, err)
	})
}

func TestCaller_PostMultipart(t *testing.T) {
	caller := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()

		assert.Equal(t, "face.jpg", header.Filename)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}, time.Second)

	var out struct {
		OK bool `json:"ok"`
	}
	err := caller.PostMultipart(
		context.Background(), "/recognize", "file", "face.jpg",
		strings.NewReader("image-bytes"), &out, nil,
	)

	require.NoError(t, err)
	assert.True(t, out.OK)
}

func TestCaller_Unavailable(t *testing.T) {
	t.Run("TimeoutIsUnavailable", func(t *testing.T) {
		caller := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}, 20*time.Millisecond)

		err := caller.GetJSON(context.Background(), "/slow", nil, nil, nil)

		assert.True(t, apperrors.Is(err, apperrors.ErrUpstreamUnavailable))
	})

	t.Run("ConnectionRefusedIsUnavailable", func(t *testing.T) {
		// Closed port: the server is shut down before the call.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()
		caller := NewCaller("test-backend", server.URL, time.Second, testutil.DiscardLogger())

		err := caller.GetJSON(context.Background(), "/any", nil, nil, nil)

		assert.True(t, apperrors.Is(err, apperrors.ErrUpstreamUnavailable))
	})

	t.Run("InboundCancellationDoesNotCutTheCallShort", func(t *testing.T) {
		done := make(chan struct{}, 1)
		caller := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
			done <- struct{}{}
		}, time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // inbound client already disconnected

		var out map[string]any
		err := caller.GetJSON(ctx, "/detached", nil, &out, nil)

		require.NoError(t, err)
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("downstream call never reached the server")
		}
	})
}

type recordedCall struct {
	service string
	method  string
	status  string
}

type captureUpstreamMetrics struct {
	calls []recordedCall
}

func (c *captureUpstreamMetrics) RecordCall(_ context.Context, service, method, status string, _ time.Duration) {
	c.calls = append(c.calls, recordedCall{service: service, method: method, status: status})
}

func TestCaller_WithMetrics(t *testing.T) {
	t.Run("RecordsStatusPerCall", func(t *testing.T) {
		capture := &captureUpstreamMetrics{}
		caller := newTestCaller(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}, time.Second).WithMetrics(capture)

		_ = caller.GetJSON(context.Background(), "/items", nil, nil, nil)

		require.Len(t, capture.calls, 1)
		assert.Equal(t, recordedCall{service: "test-backend", method: http.MethodGet, status: "404"}, capture.calls[0])
	})

	t.Run("RecordsUnavailableOnTransportFailure", func(t *testing.T) {
		capture := &captureUpstreamMetrics{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()
		caller := NewCaller("test-backend", server.URL, time.Second, testutil.DiscardLogger()).
			WithMetrics(capture)

		_ = caller.PostJSON(context.Background(), "/items", nil, nil, nil)

		require.Len(t, capture.calls, 1)
		assert.Equal(t, "unavailable", capture.calls[0].status)
	})
}
