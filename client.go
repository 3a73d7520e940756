// Package flog is the Go client SDK for the FLog food-diary backend: a
// hosted relational database with storage buckets, spoken to over plain
// REST/RPC. The SDK has no server component of its own.
//
// A Client executes requests (credentials, retry, connectivity gating,
// cancellation bookkeeping); Feeds layer per-mode entry state on top of it;
// an Uploader moves image bytes into a storage bucket; a ProfileManager
// maintains the per-device profile row.
package flog

import (
	"errors"
	"io"
	"strings"
	"sync/atomic"

	"github.com/dangolsanat/FLog/internal/rest"
)

// DefaultBucket is the storage bucket for food photos.
const DefaultBucket = "food-images"

// DefaultMaxUploadSize caps photo uploads at 5 MiB.
const DefaultMaxUploadSize int64 = 5 * 1024 * 1024

// Client is the network access layer shared by every Feed, Uploader and
// ProfileManager. Construct one per process and inject it; the client holds
// no feed state and is safe for concurrent use.
type Client struct {
	rest      *rest.Client
	bucket    string
	maxUpload int64

	ownedMonitor io.Closer // set when the client constructed its own monitor
	closedOnce   uint32
}

// New constructs a Client for the given backend base URL and anon API key.
// Additional knobs are provided via functional options.
func New(baseURL, anonKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}
	if anonKey == "" {
		return nil, errors.New("anonKey cannot be empty")
	}

	c := &Client{
		rest:      rest.NewClient(strings.TrimSuffix(baseURL, "/"), anonKey),
		bucket:    DefaultBucket,
		maxUpload: DefaultMaxUploadSize,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewFromConfig constructs a Client from an environment-derived Config.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithDeviceID(cfg.DeviceID),
		WithHTTPTimeout(cfg.Timeout),
		WithRetryPolicy(cfg.RetryAttempts, cfg.RetryDelay),
		WithBucket(cfg.Bucket),
		WithMaxUploadSize(cfg.MaxUploadSize),
	}
	return New(cfg.BaseURL, cfg.AnonKey, append(base, opts...)...)
}

// DeviceID returns the configured device identity, or "" when none is set.
func (c *Client) DeviceID() string { return c.rest.DeviceID }

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.rest.BaseURL }

// CancelAll aborts every request currently in flight through this client,
// across all feeds and uploaders sharing it.
func (c *Client) CancelAll() { c.rest.CancelAll() }

// Close cancels outstanding requests and stops a client-owned connectivity
// monitor. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.rest.CancelAll()
	if c.ownedMonitor != nil {
		return c.ownedMonitor.Close()
	}
	return nil
}
