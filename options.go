package flog

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"time"

	"github.com/dangolsanat/FLog/internal/netmon"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithDeviceID sets the opaque, stable-per-install device identifier sent
// as the x-device-id header and stamped onto created entries. An empty id
// leaves the client usable for the all/random feeds only.
func WithDeviceID(id string) Option {
	return func(c *Client) error {
		c.rest.DeviceID = id
		return nil
	}
}

// WithHTTPTimeout sets the coarse per-request safety-net timeout covering
// connection, TLS handshake, redirects and body read. Must be > 0.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.rest.HTTP.Timeout = d
		return nil
	}
}

// WithRetryPolicy overrides the attempt count and the constant delay
// between attempts. The production contract is 3 attempts, 2s delay.
func WithRetryPolicy(attempts int, delay time.Duration) Option {
	return func(c *Client) error {
		if attempts < 1 {
			return fmt.Errorf("retry attempts must be >= 1")
		}
		if delay < 0 {
			return fmt.Errorf("retry delay must be >= 0")
		}
		c.rest.RetryAttempts = attempts
		c.rest.RetryDelay = delay
		return nil
	}
}

// WithConnectivityMonitor swaps in a caller-managed reachability monitor.
// The caller keeps ownership and is responsible for stopping it.
func WithConnectivityMonitor(m netmon.Monitor) Option {
	return func(c *Client) error {
		if m == nil {
			return fmt.Errorf("connectivity monitor must not be nil")
		}
		c.rest.Monitor = m
		return nil
	}
}

// WithInterfaceMonitoring installs a client-owned monitor that samples the
// OS interface table every interval. It is stopped by Client.Close.
func WithInterfaceMonitoring(interval time.Duration) Option {
	return func(c *Client) error {
		m := netmon.NewInterfaceMonitor(interval)
		c.rest.Monitor = m
		c.ownedMonitor = m
		return nil
	}
}

// WithBucket overrides the storage bucket used for photo uploads.
func WithBucket(bucket string) Option {
	return func(c *Client) error {
		if bucket == "" {
			return fmt.Errorf("bucket must not be empty")
		}
		c.bucket = bucket
		return nil
	}
}

// WithMaxUploadSize caps the accepted photo size in bytes.
func WithMaxUploadSize(n int64) Option {
	return func(c *Client) error {
		if n <= 0 {
			return fmt.Errorf("max upload size must be > 0")
		}
		c.maxUpload = n
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped to the log when enabled is true. Not for production use.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.rest.HTTP.Transport = &debugTransport{base: c.rest.HTTP.Transport}
		}
		return nil
	}
}
