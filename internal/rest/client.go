// Package rest executes requests against the hosted database and storage
// backend: credential and device-identity headers, connectivity gating, a
// fixed retry policy, in-flight cancellation bookkeeping, and typed
// per-endpoint operations.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	flogerrors "github.com/dangolsanat/FLog/internal/errors"
	"github.com/dangolsanat/FLog/internal/netmon"
	"github.com/dangolsanat/FLog/internal/types"
)

// PostgREST Prefer header values controlling whether a write echoes the row.
const (
	PreferMinimal        = "return=minimal"
	PreferRepresentation = "return=representation"
)

// Request describes one REST call.
type Request struct {
	Method string
	Path   string // e.g. "/rest/v1/food_entries"
	Query  url.Values
	Body   any // JSON-encoded when non-nil
	Prefer string
}

// Client executes Requests. Zero-value fields are filled by NewClient; the
// exported fields may be adjusted before first use.
type Client struct {
	HTTP     *http.Client
	BaseURL  string
	AnonKey  string
	DeviceID string
	Monitor  netmon.Monitor

	RetryAttempts int
	RetryDelay    time.Duration

	mu       sync.Mutex
	nextID   uint64
	inflight map[uint64]context.CancelFunc
}

// NewClient constructs a Client with the fixed production defaults:
// 30s request timeout, 3 attempts, 2s constant inter-attempt delay.
func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		HTTP:          &http.Client{Timeout: 30 * time.Second},
		BaseURL:       baseURL,
		AnonKey:       anonKey,
		Monitor:       netmon.Static(true),
		RetryAttempts: 3,
		RetryDelay:    2 * time.Second,
		inflight:      make(map[uint64]context.CancelFunc),
	}
}

// headers attaches the service credential set. The same static anon key
// doubles as the bearer token; there is no per-user auth in this design.
func (c *Client) headers(h http.Header, prefer string) {
	h.Set("apikey", c.AnonKey)
	h.Set("Authorization", "Bearer "+c.AnonKey)
	h.Set("Content-Type", "application/json")
	if c.DeviceID != "" {
		h.Set("x-device-id", c.DeviceID)
	}
	if prefer != "" {
		h.Set("Prefer", prefer)
	}
}

// track registers a cancellable child context in the in-flight set and
// returns it together with a release func that unregisters it.
func (c *Client) track(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	if c.inflight == nil {
		c.inflight = make(map[uint64]context.CancelFunc)
	}
	c.nextID++
	id := c.nextID
	c.inflight[id] = cancel
	c.mu.Unlock()
	return ctx, func() {
		c.mu.Lock()
		delete(c.inflight, id)
		c.mu.Unlock()
		cancel()
	}
}

// CancelAll aborts every request currently in flight through this client.
func (c *Client) CancelAll() {
	c.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(c.inflight))
	for id, cancel := range c.inflight {
		cancels = append(cancels, cancel)
		delete(c.inflight, id)
	}
	c.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

// Do executes req, retrying transient failures up to RetryAttempts with a
// constant RetryDelay between attempts, and decodes the JSON body into out.
// A nil out discards the body; that is the sentinel for calls whose
// response carries nothing meaningful (deletes, minimal-return writes).
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	if !c.Monitor.Online() {
		return flogerrors.ErrNoConnection
	}
	ctx, done := c.track(ctx)
	defer done()

	var payload []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return err
		}
		payload = b
	}

	u := c.BaseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	requestsTotal.WithLabelValues(req.Method).Inc()

	first := true
	bo := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.RetryDelay), uint64(c.RetryAttempts-1)),
		ctx,
	)
	err := backoff.Retry(func() error {
		if !first {
			retriesTotal.Inc()
		}
		first = false
		err := c.attempt(ctx, req, u, payload, out)
		if err != nil && !flogerrors.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, bo)
	if err != nil {
		failuresTotal.Inc()
		if errors.Is(ctx.Err(), context.Canceled) {
			return flogerrors.ErrCancelled
		}
		return err
	}
	return nil
}

func (c *Client) attempt(ctx context.Context, req Request, u string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return err
	}
	c.headers(httpReq.Header, req.Prefer)

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return flogerrors.ErrInvalidResponse
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return flogerrors.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &flogerrors.HTTPError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", flogerrors.ErrInvalidResponse, err)
	}
	return nil
}

// Upload posts raw image bytes to a storage object path and returns the
// key echoed by the storage service. Uploads are never retried.
func (c *Client) Upload(ctx context.Context, path string, data []byte) (string, error) {
	if !c.Monitor.Online() {
		return "", flogerrors.ErrNoConnection
	}
	ctx, done := c.track(ctx)
	defer done()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("apikey", c.AnonKey)
	httpReq.Header.Set("Authorization", "Bearer "+c.AnonKey)
	httpReq.Header.Set("Content-Type", "image/jpeg")

	uploadsTotal.Inc()

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return "", flogerrors.ErrCancelled
		}
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", flogerrors.ErrInvalidResponse
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return "", flogerrors.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(respBody) > 0 {
			return "", &flogerrors.UploadError{Message: string(respBody)}
		}
		return "", &flogerrors.HTTPError{StatusCode: resp.StatusCode}
	}

	var ur types.UploadResponse
	if err := json.Unmarshal(respBody, &ur); err != nil {
		return "", flogerrors.ErrInvalidResponse
	}
	return ur.Key, nil
}
