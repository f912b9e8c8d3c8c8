package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/config"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

// Envelope mirrors the SGI API response convention.
type Envelope struct {
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

const envelopeSuccess = "SUCCESS"

// Observer receives upstream timing samples for instrumentation.
type Observer interface {
	ObserveUpstream(method, path string, status int, duration time.Duration)
}

// Client performs authenticated requests against the SGI REST API.
// Exactly one attempt per call: no retries, since upstream writes carry no
// idempotency guarantee.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	observer Observer
}

// Option configures the client.
type Option func(*Client)

// WithObserver attaches an instrumentation sink.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithHTTPClient overrides the inner HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// NewClient builds the upstream client for the configured API root.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// do performs one request and decodes the envelope into out (when out is
// non-nil). A 401 invalidates the session; any non-2xx status or a 2xx
// envelope whose type is not SUCCESS becomes a typed upstream error with
// the best-effort message from the body.
func (c *Client) do(ctx context.Context, sess *Session, method, path string, body, out interface{}) error {
	if sess != nil && sess.Expired(time.Now()) {
		sess.Invalidate()
		return appErrors.ErrSessionExpired
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode upstream payload")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build upstream request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token())
		if sess.RequestID() != "" {
			req.Header.Set("X-Request-ID", sess.RequestID())
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream unreachable", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, appErrors.ErrUpstreamUnavailable.Message)
	}
	defer resp.Body.Close()

	if c.observer != nil {
		c.observer.ObserveUpstream(method, path, resp.StatusCode, time.Since(start))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "read upstream response")
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if sess != nil {
			sess.Invalidate()
		}
		return appErrors.ErrSessionExpired
	}

	env := Envelope{}
	if len(raw) > 0 {
		// Tolerate non-envelope bodies; message extraction is best effort.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("upstream returned status %d", resp.StatusCode)
		}
		return appErrors.New(appErrors.ErrUpstream.Code, resp.StatusCode, msg)
	}

	if env.Type != "" && env.Type != envelopeSuccess {
		msg := env.Message
		if msg == "" {
			msg = "upstream rejected the request"
		}
		return appErrors.Clone(appErrors.ErrUpstream, msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "decode upstream data")
		}
	}
	return nil
}

// get fetches and decodes a collection or record.
func (c *Client) get(ctx context.Context, sess *Session, path string, out interface{}) error {
	return c.do(ctx, sess, http.MethodGet, path, nil, out)
}

// mutate performs a write and folds the outcome into a Result. Transport
// failures and business rejections both surface as FAILURE with the
// extracted message; callers branch on the tag, never on an error value.
func (c *Client) mutate(ctx context.Context, sess *Session, method, path string, body interface{}) *Result {
	var data json.RawMessage
	if err := c.do(ctx, sess, method, path, body, &data); err != nil {
		return Failure(err)
	}
	return Success(data)
}
